package bigint

import "errors"

// The sentinel errors of the package, covering three failure kinds (parse,
// shift and domain errors), surfaced synchronously at the call site and
// matchable with errors.Is. Every failing operation leaves its
// receiver and operands untouched.
var (
	// ErrSyntax reports malformed textual input: empty string, missing
	// digits after a sign, an invalid character, or a missing hex prefix.
	ErrSyntax = errors.New("invalid number syntax")

	// ErrDivisionByZero reports a zero divisor in Div, Mod or DivMod.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeShift reports a negative shift count.
	ErrNegativeShift = errors.New("negative shift count")

	// ErrNegativeExponent reports a negative exponent in Pow.
	ErrNegativeExponent = errors.New("negative exponent")
)
