package int24

import "github.com/calebcase/int24/raw"

// MaxShift is the largest valid shift count.
const MaxShift = 23

// Shl returns v << count, saturated to [Min, Max]. The unclamped shifted
// value is formed in a wide working width before clamping. A count
// greater than MaxShift returns ErrShiftCount.
func (v Int24) Shl(count uint) (Int24, error) {
	if count > MaxShift {
		return Int24{}, ErrShiftCount
	}

	return Int24{p: raw.Shl(v.p, count)}, nil
}

// Shr returns v >> count with the sign preserved. The result is always
// exact. A count greater than MaxShift returns ErrShiftCount.
func (v Int24) Shr(count uint) (Int24, error) {
	if count > MaxShift {
		return Int24{}, ErrShiftCount
	}

	return Int24{p: raw.Shr(v.p, count)}, nil
}

// Shl8 returns v << 8, saturated to [Min, Max].
func (v Int24) Shl8() Int24 {
	return Int24{p: raw.Shl8(v.p)}
}

// Shr8 returns v >> 8 with the sign preserved.
func (v Int24) Shr8() Int24 {
	return Int24{p: raw.Shr8(v.p)}
}

// ShlDiv returns (v << count) / o truncated toward zero, saturated to
// [Min, Max]. The shifted intermediate is divided before any clamping,
// so rescaling by 2^count/o is exact wherever the final quotient is
// representable, even when v << count alone would saturate. A zero
// divisor returns ErrDivideByZero and a count greater than MaxShift
// returns ErrShiftCount.
func (v Int24) ShlDiv(count uint, o Int24) (Int24, error) {
	if count > MaxShift {
		return Int24{}, ErrShiftCount
	}
	if raw.Eq(o.p, raw.Pattern{}) {
		return Int24{}, ErrDivideByZero
	}

	return Int24{p: raw.ShlDiv(v.p, count, o.p)}, nil
}

// Shl8Div returns (v << 8) / o with the same contract as ShlDiv.
func (v Int24) Shl8Div(o Int24) (Int24, error) {
	return v.ShlDiv(8, o)
}
