package raw

import "golang.org/x/exp/constraints"

// Min and Max bound the value range of a 24 bit two's complement pattern.
const (
	Min int32 = -1 << 23
	Max int32 = 1<<23 - 1
)

// Pattern is a 24 bit two's complement bit pattern, least significant
// byte first. The zero value is numeric zero.
type Pattern [3]byte

// Sext sign extends the pattern into the 32 bit working width by
// replicating bit 23 into the high byte.
func Sext(p Pattern) int32 {
	v := uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	if p[2]&0x80 != 0 {
		v |= 0xFF << 24
	}

	return int32(v)
}

// Pack truncates v to its low 24 bits. The value must already be within
// [Min, Max].
func Pack(v int32) Pattern {
	return Pattern{byte(v), byte(v >> 8), byte(v >> 16)}
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Signed](v, lo, hi T) T {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}

	return v
}

// Sat clamps v to [Min, Max] and packs it.
func Sat(v int64) Pattern {
	return Pack(int32(Clamp(v, int64(Min), int64(Max))))
}
