package raw

// Add returns a + b, saturated.
func Add(a, b Pattern) Pattern {
	return Sat(int64(Sext(a)) + int64(Sext(b)))
}

// Sub returns a - b, saturated. The difference is formed in the 64 bit
// width; negating within 24 bits would lose -Min.
func Sub(a, b Pattern) Pattern {
	return Sat(int64(Sext(a)) - int64(Sext(b)))
}

// Mul returns a * b, saturated. The exact product of two 24 bit values
// needs up to 48 bits, so it is formed in the 64 bit width.
func Mul(a, b Pattern) Pattern {
	return Sat(int64(Sext(a)) * int64(Sext(b)))
}

// Div returns a / b truncated toward zero, saturated. The only overflow
// is Min / -1, which clamps to Max. The divisor must not be zero.
func Div(a, b Pattern) Pattern {
	return Sat(int64(Sext(a)) / int64(Sext(b)))
}

// Neg returns -a, saturated. -Min clamps to Max.
func Neg(a Pattern) Pattern {
	return Sat(-int64(Sext(a)))
}

// Abs returns the absolute value of a, saturated. |Min| clamps to Max.
func Abs(a Pattern) Pattern {
	v := int64(Sext(a))
	if v < 0 {
		v = -v
	}

	return Sat(v)
}

// Shl returns a << count, saturated. The count must be within [0, 23].
func Shl(a Pattern, count uint) Pattern {
	return Sat(int64(Sext(a)) << count)
}

// Shr returns a >> count with the sign preserved. The result is always
// exact. The count must be within [0, 23].
func Shr(a Pattern, count uint) Pattern {
	return Pack(Sext(a) >> count)
}

// Shl8 returns a << 8, saturated.
func Shl8(a Pattern) Pattern {
	return Shl(a, 8)
}

// Shr8 returns a >> 8 with the sign preserved.
func Shr8(a Pattern) Pattern {
	return Shr(a, 8)
}

// ShlDiv returns (a << count) / b truncated toward zero, saturated. The
// shifted intermediate is held unclamped in the 64 bit width and divided
// first; only the final quotient saturates. The count must be within
// [0, 23] and the divisor must not be zero.
func ShlDiv(a Pattern, count uint, b Pattern) Pattern {
	return Sat((int64(Sext(a)) << count) / int64(Sext(b)))
}

// Eq returns true if a and b hold the same value.
func Eq(a, b Pattern) bool {
	return a == b
}

// Ge returns true if a >= b. The comparison is over the sign extended
// values; the bit patterns themselves are not monotonic.
func Ge(a, b Pattern) bool {
	return Sext(a) >= Sext(b)
}
