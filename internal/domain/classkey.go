package domain

import (
	"strconv"
	"strings"
)

// ClassKey is a yield-class number that remembers whether the source wrote
// it as an integer ("6") or a fraction ("6.5"). Ordering and equality use
// the numeric value only, so a table mixing both variants still groups and
// looks up consistently.
type ClassKey struct {
	value   float64
	integer bool
}

// IntKey returns the key for a tabulated integer yield class.
func IntKey(n int) ClassKey {
	return ClassKey{value: float64(n), integer: true}
}

// FloatKey returns the key for a fractional yield class.
func FloatKey(v float64) ClassKey {
	return ClassKey{value: v}
}

// ParseClassKey interprets a source cell as an integer key when it parses
// as one, otherwise as a fractional key.
func ParseClassKey(s string) (ClassKey, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return IntKey(n), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ClassKey{}, err
	}
	return FloatKey(v), nil
}

// Float returns the numeric value of the key.
func (k ClassKey) Float() float64 { return k.value }

// IsInteger reports whether the source wrote the key without a fraction.
func (k ClassKey) IsInteger() bool { return k.integer }

// Equal compares keys by numeric value regardless of variant.
func (k ClassKey) Equal(other ClassKey) bool { return k.value == other.value }

// Less orders keys by numeric value.
func (k ClassKey) Less(other ClassKey) bool { return k.value < other.value }

// String renders "6" for integer keys and the shortest exact decimal for
// fractional ones.
func (k ClassKey) String() string {
	if k.integer {
		return strconv.Itoa(int(k.value))
	}
	return strconv.FormatFloat(k.value, 'f', -1, 64)
}

// MarshalJSON encodes the key as a bare JSON number.
func (k ClassKey) MarshalJSON() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalJSON decodes a bare JSON number, keeping the integer/fraction
// distinction of the literal.
func (k *ClassKey) UnmarshalJSON(data []byte) error {
	parsed, err := ParseClassKey(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
