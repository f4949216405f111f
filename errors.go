package decimal

import "errors"

// Sentinel errors returned by package decimal. Every exported operation
// documents which of these it may return; callers are expected to use
// errors.Is, since the engine never wraps these in a way that breaks
// identity comparison unless it adds operand context with fmt.Errorf's
// %w verb.
var (
	// ErrInvalidLiteral is returned by Parse and ParseScale when the input
	// does not match the decimal literal grammar.
	ErrInvalidLiteral = errors.New("decimal: invalid literal")

	// ErrPrecisionLimit is returned when a declared or implied precision
	// exceeds MaxPrecision.
	ErrPrecisionLimit = errors.New("decimal: precision limit exceeded")

	// ErrInternalLimit is returned when a digit-array's limb count or
	// base-B exponent would exceed the engine's internal bounds.
	ErrInternalLimit = errors.New("decimal: internal limit exceeded")

	// ErrDivideByZero is returned by Quo, QuoRem, DivMod and Inv when the
	// divisor is zero.
	ErrDivideByZero = errors.New("decimal: division by zero")

	// ErrCannotRepresent is returned when a source value has no finite
	// exact decimal representation (e.g. a repeating fraction with no
	// precision override, or a non-finite float64).
	ErrCannotRepresent = errors.New("decimal: value cannot be represented exactly")

	// ErrUndefinedMagnitude is returned by Magnitude for a zero value.
	ErrUndefinedMagnitude = errors.New("decimal: magnitude of zero is undefined")

	// ErrInvalidRoundingMode is returned by SetDefaultRoundingMode and by
	// any operation given an unrecognized RoundingMode.
	ErrInvalidRoundingMode = errors.New("decimal: invalid rounding mode")

	// ErrInvalidFormat is returned when a format specifier does not match
	// the "[[fill]align][sign][0][width][,][.precision][type]" grammar.
	ErrInvalidFormat = errors.New("decimal: invalid format specifier")
)
