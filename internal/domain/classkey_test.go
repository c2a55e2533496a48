package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		value   float64
		integer bool
	}{
		{"integer", "6", 6, true},
		{"integer with spaces", " 12 ", 12, true},
		{"fractional", "6.5", 6.5, false},
		{"fractional below one", "0.5", 0.5, false},
		{"negative integer", "-1", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseClassKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.value, key.Float())
			assert.Equal(t, tt.integer, key.IsInteger())
		})
	}

	t.Run("non-numeric", func(t *testing.T) {
		_, err := ParseClassKey("six")
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseClassKey("")
		require.Error(t, err)
	})
}

func TestClassKeyEquality(t *testing.T) {
	// Integer 6 and fractional 6.0 are the same class; only the source
	// spelling differs.
	assert.True(t, IntKey(6).Equal(FloatKey(6.0)))
	assert.False(t, IntKey(6).Equal(FloatKey(6.5)))
	assert.True(t, FloatKey(6.5).Less(IntKey(7)))
	assert.False(t, IntKey(7).Less(FloatKey(6.5)))
}

func TestClassKeyString(t *testing.T) {
	assert.Equal(t, "6", IntKey(6).String())
	assert.Equal(t, "6.5", FloatKey(6.5).String())
	assert.Equal(t, "6", FloatKey(6.0).String())
}

func TestClassKeyJSON(t *testing.T) {
	t.Run("marshals as bare number", func(t *testing.T) {
		data, err := json.Marshal(IntKey(6))
		require.NoError(t, err)
		assert.Equal(t, "6", string(data))

		data, err = json.Marshal(FloatKey(6.5))
		require.NoError(t, err)
		assert.Equal(t, "6.5", string(data))
	})

	t.Run("round-trips", func(t *testing.T) {
		var key ClassKey
		require.NoError(t, json.Unmarshal([]byte("6.5"), &key))
		assert.Equal(t, 6.5, key.Float())
		assert.False(t, key.IsInteger())

		require.NoError(t, json.Unmarshal([]byte("7"), &key))
		assert.Equal(t, 7.0, key.Float())
		assert.True(t, key.IsInteger())
	})
}
