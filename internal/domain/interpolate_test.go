package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(age int, dominantHeight *float64) YieldClassRow {
	return YieldClassRow{Age: age, DominantHeight: dominantHeight}
}

func TestInterpolateRows(t *testing.T) {
	lower := []YieldClassRow{row(10, ptr(5.0)), row(20, ptr(8.0))}
	upper := []YieldClassRow{row(10, ptr(6.0)), row(20, ptr(9.0))}

	t.Run("midpoint", func(t *testing.T) {
		out := InterpolateRows(lower, upper, 6, 6.5)

		require.Len(t, out, 2)
		assert.Equal(t, 10, out[0].Age)
		assert.Equal(t, 20, out[1].Age)
		require.NotNil(t, out[0].DominantHeight)
		assert.InDelta(t, 5.5, *out[0].DominantHeight, 1e-9)
		require.NotNil(t, out[1].DominantHeight)
		assert.InDelta(t, 8.5, *out[1].DominantHeight, 1e-9)
	})

	t.Run("converges to lower at target == lower class", func(t *testing.T) {
		out := InterpolateRows(lower, upper, 6, 6.0)
		assert.InDelta(t, 5.0, *out[0].DominantHeight, 1e-9)
		assert.InDelta(t, 8.0, *out[1].DominantHeight, 1e-9)
	})

	t.Run("converges to upper at target == upper class", func(t *testing.T) {
		out := InterpolateRows(lower, upper, 6, 7.0)
		assert.InDelta(t, 6.0, *out[0].DominantHeight, 1e-9)
		assert.InDelta(t, 9.0, *out[1].DominantHeight, 1e-9)
	})

	t.Run("stays within bounds for all fractions", func(t *testing.T) {
		for _, target := range []float64{6.1, 6.25, 6.5, 6.75, 6.9} {
			out := InterpolateRows(lower, upper, 6, target)
			for i := range out {
				v := *out[i].DominantHeight
				assert.GreaterOrEqual(t, v, *lower[i].DominantHeight, "target %v row %d", target, i)
				assert.LessOrEqual(t, v, *upper[i].DominantHeight, "target %v row %d", target, i)
			}
		}
	})

	t.Run("absent values interpolate as zero", func(t *testing.T) {
		out := InterpolateRows(
			[]YieldClassRow{row(10, nil)},
			[]YieldClassRow{row(10, ptr(4.0))},
			6, 6.5,
		)
		require.NotNil(t, out[0].DominantHeight)
		assert.InDelta(t, 2.0, *out[0].DominantHeight, 1e-9)
	})

	t.Run("pairing truncates at the shorter sequence", func(t *testing.T) {
		out := InterpolateRows(lower, upper[:1], 6, 6.5)
		require.Len(t, out, 1)
		assert.Equal(t, 10, out[0].Age)

		out = InterpolateRows(lower[:1], upper, 6, 6.5)
		require.Len(t, out, 1)
	})

	t.Run("age comes from the lower row", func(t *testing.T) {
		out := InterpolateRows(
			[]YieldClassRow{row(10, ptr(1.0))},
			[]YieldClassRow{row(15, ptr(2.0))},
			6, 6.5,
		)
		assert.Equal(t, 10, out[0].Age)
	})

	t.Run("every measurement field is interpolated", func(t *testing.T) {
		lo := YieldClassRow{
			Age:                       30,
			DominantHeight:            ptr(11.2),
			AverageHeight:             ptr(9.6),
			DBH:                       ptr(12.6),
			Taper:                     ptr(0.52),
			TreesPerHa:                ptr(2890),
			BasalArea:                 ptr(26.4),
			VolumePerHa:               ptr(118),
			AverageAnnualAgeIncrement: ptr(3.9),
			TotalGrowthPerformance:    ptr(131),
			CurrentAnnualIncrement:    ptr(7.9),
			MeanAnnualIncrement:       ptr(4.4),
		}
		hi := YieldClassRow{
			Age:                       30,
			DominantHeight:            ptr(12.3),
			AverageHeight:             ptr(10.6),
			DBH:                       ptr(13.8),
			Taper:                     ptr(0.52),
			TreesPerHa:                ptr(2690),
			BasalArea:                 ptr(29.0),
			VolumePerHa:               ptr(139),
			AverageAnnualAgeIncrement: ptr(4.6),
			TotalGrowthPerformance:    ptr(154),
			CurrentAnnualIncrement:    ptr(9.1),
			MeanAnnualIncrement:       ptr(5.1),
		}

		out := InterpolateRows([]YieldClassRow{lo}, []YieldClassRow{hi}, 6, 6.5)
		require.Len(t, out, 1)
		got := out[0]

		assert.InDelta(t, 11.75, *got.DominantHeight, 1e-9)
		assert.InDelta(t, 10.1, *got.AverageHeight, 1e-9)
		assert.InDelta(t, 13.2, *got.DBH, 1e-9)
		assert.InDelta(t, 0.52, *got.Taper, 1e-9)
		assert.InDelta(t, 2790, *got.TreesPerHa, 1e-9)
		assert.InDelta(t, 27.7, *got.BasalArea, 1e-9)
		assert.InDelta(t, 128.5, *got.VolumePerHa, 1e-9)
		assert.InDelta(t, 4.25, *got.AverageAnnualAgeIncrement, 1e-9)
		assert.InDelta(t, 142.5, *got.TotalGrowthPerformance, 1e-9)
		assert.InDelta(t, 8.5, *got.CurrentAnnualIncrement, 1e-9)
		assert.InDelta(t, 4.75, *got.MeanAnnualIncrement, 1e-9)
	})
}
