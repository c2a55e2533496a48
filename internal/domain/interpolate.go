package domain

// InterpolateRows linearly interpolates every measurement between the row
// sequences of two adjacent tabulated integer classes, lowerClass and
// lowerClass+1, at the fractional target. Rows are paired positionally and
// pairing truncates at the shorter sequence; both classes come from the
// same table's age grid, so position i corresponds across classes. The
// output row's age is the lower row's age unchanged. Absent measurements
// enter the interpolation as 0.0.
func InterpolateRows(lower, upper []YieldClassRow, lowerClass int, target float64) []YieldClassRow {
	n := len(lower)
	if len(upper) < n {
		n = len(upper)
	}

	out := make([]YieldClassRow, 0, n)
	for i := 0; i < n; i++ {
		lo, hi := lower[i], upper[i]
		out = append(out, YieldClassRow{
			Age:                       lo.Age,
			DominantHeight:            lerp(target, lowerClass, lo.DominantHeight, hi.DominantHeight),
			AverageHeight:             lerp(target, lowerClass, lo.AverageHeight, hi.AverageHeight),
			DBH:                       lerp(target, lowerClass, lo.DBH, hi.DBH),
			Taper:                     lerp(target, lowerClass, lo.Taper, hi.Taper),
			TreesPerHa:                lerp(target, lowerClass, lo.TreesPerHa, hi.TreesPerHa),
			BasalArea:                 lerp(target, lowerClass, lo.BasalArea, hi.BasalArea),
			VolumePerHa:               lerp(target, lowerClass, lo.VolumePerHa, hi.VolumePerHa),
			AverageAnnualAgeIncrement: lerp(target, lowerClass, lo.AverageAnnualAgeIncrement, hi.AverageAnnualAgeIncrement),
			TotalGrowthPerformance:    lerp(target, lowerClass, lo.TotalGrowthPerformance, hi.TotalGrowthPerformance),
			CurrentAnnualIncrement:    lerp(target, lowerClass, lo.CurrentAnnualIncrement, hi.CurrentAnnualIncrement),
			MeanAnnualIncrement:       lerp(target, lowerClass, lo.MeanAnnualIncrement, hi.MeanAnnualIncrement),
		})
	}
	return out
}

// lerp computes the two-point linear interpolation at target between
// (lowerClass, lo) and (lowerClass+1, hi). The class anchors are always
// one apart, so the divisor is 1 and the fraction is target-lowerClass.
// nil inputs count as 0.0.
func lerp(target float64, lowerClass int, lo, hi *float64) *float64 {
	loV := floatOrZero(lo)
	hiV := floatOrZero(hi)
	v := loV + (target-float64(lowerClass))*(hiV-loV)
	return &v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
