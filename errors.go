package int24

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("int24")

var (
	// ErrDivideByZero is returned for a zero divisor. No numeric result
	// is defensible, so this is the one arithmetic condition that fails
	// rather than saturates.
	ErrDivideByZero = Error.New("division by zero")

	// ErrShiftCount is returned for a shift count outside [0, MaxShift].
	ErrShiftCount = Error.New("shift count out of range")
)
