package int24

import (
	"math"
	"strconv"

	"github.com/calebcase/int24/raw"
)

// Min and Max are the smallest and largest representable values.
const (
	Min int32 = raw.Min
	Max int32 = raw.Max
)

// Int24 is a saturating 24 bit signed integer. The zero value is numeric
// zero. Values are immutable; every operation returns a new value.
type Int24 struct {
	p raw.Pattern
}

// FromRaw wraps a bit pattern.
func FromRaw(p raw.Pattern) Int24 {
	return Int24{p: p}
}

// Raw returns the underlying bit pattern.
func (v Int24) Raw() raw.Pattern {
	return v.p
}

// FromInt16 converts exactly; every 16 bit value is representable.
func FromInt16(x int16) Int24 {
	return Int24{p: raw.Pack(int32(x))}
}

// FromInt32 converts with saturation: values outside [Min, Max] clamp to
// the nearest bound.
func FromInt32(x int32) Int24 {
	return Int24{p: raw.Sat(int64(x))}
}

// Int32 returns the exact value.
func (v Int24) Int32() int32 {
	return raw.Sext(v.p)
}

// Int16 returns the value clamped to the 16 bit range.
func (v Int24) Int16() int16 {
	return int16(raw.Clamp(raw.Sext(v.p), math.MinInt16, math.MaxInt16))
}

// Cmp returns -1 if v < o, 0 if v == o, and +1 if v > o. Exactly one of
// the three outcomes holds for any pair of values.
func (v Int24) Cmp(o Int24) int {
	switch {
	case raw.Eq(v.p, o.p):
		return 0
	case raw.Ge(v.p, o.p):
		return 1
	}

	return -1
}

// Eq returns true if v == o.
func (v Int24) Eq(o Int24) bool {
	return raw.Eq(v.p, o.p)
}

// Less returns true if v < o.
func (v Int24) Less(o Int24) bool {
	return !raw.Eq(v.p, o.p) && !raw.Ge(v.p, o.p)
}

// String returns the value in decimal.
func (v Int24) String() string {
	return strconv.FormatInt(int64(raw.Sext(v.p)), 10)
}
