// Package raw provides the 24 bit two's complement bit pattern and the
// portable arithmetic kernels underneath the int24 type.
//
// Pattern
//
// A pattern is three bytes, least significant byte first:
//
//  | p[0]            | p[1]             | p[2]              |
//  |-----------------|------------------|-------------------|
//  | value bits 0..7 | value bits 8..15 | value bits 16..23 |
//
// Bit 23 is the sign bit. Sign extending the pattern into the 32 bit
// working width replicates bit 23 into bits 24..31:
//
//  | Pattern (24 bit)             | Working value (32 bit) |
//  |------------------------------|------------------------|
//  | 0b0111_1111 0xFF 0xFF        |  8388607 (Max)         |
//  | 0b0000_0000 0x00 0x01        |  1                     |
//  | 0b0000_0000 0x00 0x00        |  0                     |
//  | 0b1111_1111 0xFF 0xFF        | -1                     |
//  | 0b1000_0000 0x00 0x00        | -8388608 (Min)         |
//
// (Patterns above are shown most significant byte first for readability;
// in memory the byte order is reversed.)
//
// Kernels
//
// Every kernel follows the same plan: sign extend the operands into a
// width where the exact mathematical result fits (32 bits for shifts and
// comparison, 64 bits for sums, products, and the fused shift-divide),
// compute it there, then clamp the result into [Min, Max] before packing
// it back into a pattern. No kernel wraps around.
//
// The kernels do not validate operands. Division kernels require a
// non-zero divisor and shift kernels require a count within [0, 23]; the
// int24 package performs those checks before delegating here.
package raw
