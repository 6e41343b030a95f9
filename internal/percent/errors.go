package percent

import "errors"

// Sentinel errors. Compare with errors.Is(); every operation wraps them with
// its own name.
var (
	// ErrDivisionByZero is returned when a denominator operand (whole,
	// value2 or the precision factor) is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrArithmeticOverflow is returned when an intermediate product, or a
	// compounding addition, does not fit in 64 bits.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// IsDivisionByZero reports whether err (or any error in its chain) is
// ErrDivisionByZero.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

// IsOverflow reports whether err (or any error in its chain) is
// ErrArithmeticOverflow.
func IsOverflow(err error) bool {
	return errors.Is(err, ErrArithmeticOverflow)
}
