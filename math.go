package int24

import "github.com/calebcase/int24/raw"

// Add returns v + o, saturated to [Min, Max].
func (v Int24) Add(o Int24) Int24 {
	return Int24{p: raw.Add(v.p, o.p)}
}

// Sub returns v - o, saturated to [Min, Max].
func (v Int24) Sub(o Int24) Int24 {
	return Int24{p: raw.Sub(v.p, o.p)}
}

// Mul returns v * o, saturated to [Min, Max].
func (v Int24) Mul(o Int24) Int24 {
	return Int24{p: raw.Mul(v.p, o.p)}
}

// Div returns v / o truncated toward zero. Min / -1 saturates to Max. A
// zero divisor returns ErrDivideByZero.
func (v Int24) Div(o Int24) (Int24, error) {
	if raw.Eq(o.p, raw.Pattern{}) {
		return Int24{}, ErrDivideByZero
	}

	return Int24{p: raw.Div(v.p, o.p)}, nil
}

// Neg returns -v. -Min saturates to Max.
func (v Int24) Neg() Int24 {
	return Int24{p: raw.Neg(v.p)}
}

// Abs returns the absolute value of v. |Min| saturates to Max.
func (v Int24) Abs() Int24 {
	return Int24{p: raw.Abs(v.p)}
}
