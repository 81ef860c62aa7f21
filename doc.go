// Package int24 provides a saturating 24 bit signed two's complement
// integer.
//
// The type targets workloads where a full 32 bit integer is wasteful and
// a 16 bit integer is too small: 3 byte sample formats, sensor readings,
// and control loop state mirrored from small microcontrollers. Values
// cover [-8388608, 8388607].
//
// Saturation
//
// Operations whose exact result falls outside the representable range
// clamp to the nearest bound instead of wrapping:
//
//  | Operation      | Out of range result        |
//  |----------------|----------------------------|
//  | Add, Sub, Mul  | Min or Max                 |
//  | Neg, Abs       | Max (only -Min overflows)  |
//  | Shl, Shl8      | Min or Max                 |
//  | ShlDiv         | Min or Max                 |
//  | Div            | Max (only Min / -1)        |
//  | FromInt32      | Min or Max                 |
//  | Int16          | -32768 or 32767            |
//
// A clamped extreme preserves the direction of the error, which is safer
// in control and measurement code than a silent wraparound to a wildly
// different magnitude. Saturation is therefore never reported as an
// error.
//
// Errors
//
// Two conditions have no defensible numeric result and fail instead:
//
//  | Condition                          | Error           |
//  |------------------------------------|-----------------|
//  | Zero divisor (Div, ShlDiv, ...)    | ErrDivideByZero |
//  | Shift count outside [0, 23]        | ErrShiftCount   |
//
// Fused Shift-Divide
//
// ShlDiv computes (v << count) / d in one step. The shifted intermediate
// is held unclamped in a wide working width and divided first; only the
// final quotient saturates. Two separate saturating steps would clamp the
// intermediate for inputs near the bounds and distort the quotient. This
// makes rescaling by a rational factor 2^count/d exact wherever the final
// result is representable.
//
// Encoding
//
// A value marshals to a fixed 3 byte record, least significant byte
// first (the s24le sample layout):
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | value bits 0..7               |
//  |-------------------------------|
//  | value bits 8..15              |
//  |-------------------------------|
//  | value bits 16..23 (bit 23 is  |
//  | the sign bit)                 |
//  |---------------|---------------|
//
// Encoder and Decoder stream successive records over an io.Writer and
// io.Reader.
//
// Concurrency
//
// Int24 is a pure value type. Every operation is a function of its
// operands with no shared state, so values may be used from multiple
// goroutines without coordination.
package int24
