package decimal

import "fmt"

// MaxPrecision is the largest declared scale a Decimal may carry, exposed
// read-only as the package's one hard precision limit. A value can have a
// large scale with a small coefficient (e.g. 1e-65), so this is set well
// beyond the 128-bit coefficient's own ~38-39 digit range.
const MaxPrecision = 65

// maxDigitsLimbs bounds the number of base-B limbs (plus exponent) a
// digits body may carry before an operation reports ErrInternalLimit.
// 4096 limbs is 4096*19 ~= 77824 decimal digits of coefficient,
// comfortably beyond anything MaxPrecision-bounded arithmetic should ever
// need to construct; it exists to turn a pathological or adversarial
// input into a clean error instead of unbounded allocation.
const maxDigitsLimbs = 4096

// reprKind tags which of the two bodies backs a Decimal.
type reprKind uint8

const (
	reprShifted reprKind = iota
	reprDigits
)

// Decimal is the unified fixed-point value: sign * coefficient *
// 10^-scale, backed by either a 128-bit shifted-int or a heap-allocated
// base-1e19 digit array. The zero value represents 0 with scale 0 and is
// ready to use.
//
// A Decimal is logically immutable after construction: every operation
// in this package takes Decimals by value and returns a new Decimal
// rather than mutating an operand, so values may be freely shared
// between goroutines.
type Decimal struct {
	neg   bool
	scale int
	kind  reprKind
	small shiftedInt
	large digits
}

// Zero is the Decimal value 0 with scale 0.
var Zero Decimal

// isZeroMagnitude reports whether the coefficient is zero, independent of
// representation.
func (d Decimal) isZeroMagnitude() bool {
	if d.kind == reprShifted {
		return d.small.isZero()
	}
	return d.large.isZero()
}

// normalize enforces the representation invariants: a zero coefficient
// always carries sign 0 (neg=false here), and a digit-array body is
// demoted to shifted-int whenever its value fits in 128 bits (the
// preferred representation for any value that fits).
func (d Decimal) normalize() Decimal {
	if d.isZeroMagnitude() {
		return Decimal{scale: d.scale}
	}
	if d.kind == reprDigits {
		if mag, ok := d.large.magnitudeUint128(); ok {
			return Decimal{neg: d.neg, scale: d.scale, kind: reprShifted, small: shiftedInt{mag: mag}}
		}
	}
	return d
}

// Scale returns the declared number of fractional decimal digits.
func (d Decimal) Scale() int { return d.scale }

// Precision is a synonym for Scale, matching the property name used by
// the package's public API surface alongside Magnitude/AsIntegerRatio.
func (d Decimal) Precision() int { return d.scale }

// Sign returns -1, 0 or +1 as d is negative, zero or positive.
func (d Decimal) Sign() int {
	switch {
	case d.isZeroMagnitude():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool { return d.isZeroMagnitude() }

// IsNeg reports whether d is strictly negative.
func (d Decimal) IsNeg() bool { return !d.isZeroMagnitude() && d.neg }

// IsPos reports whether d is strictly positive.
func (d Decimal) IsPos() bool { return !d.isZeroMagnitude() && !d.neg }

// Neg returns -d. Flips the sign bit unless d is zero.
func (d Decimal) Neg() Decimal {
	if d.isZeroMagnitude() {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// CopySign returns a value with d's magnitude and e's sign (zero
// magnitude always reports sign 0 regardless of e).
func (d Decimal) CopySign(e Decimal) Decimal {
	if d.isZeroMagnitude() {
		return d
	}
	d.neg = e.neg
	return d
}

// coefficientDigits returns the number of decimal digits in d's
// coefficient (0 for zero), independent of representation.
func (d Decimal) coefficientDigits() int {
	if d.kind == reprShifted {
		return d.small.prec()
	}
	return d.large.decimalDigitCount()
}

// toDigits returns d's coefficient materialized as a digits value,
// promoting from shifted-int if necessary. Used by arithmetic kernels
// once they have escaped the fast path.
func (d Decimal) toDigits() digits {
	if d.kind == reprDigits {
		return d.large
	}
	return d.small.toDigits()
}

// withDigits returns a new Decimal with the given sign/scale/coefficient
// in digit-array form, normalized.
func withDigits(neg bool, scale int, coef digits) Decimal {
	return Decimal{neg: neg, scale: scale, kind: reprDigits, large: coef}.normalize()
}

// digitsOverLimit reports whether coef's limb count plus its base-B
// exponent exceeds maxDigitsLimbs.
func digitsOverLimit(coef digits) bool {
	return len(coef.limbs)+coef.exp > maxDigitsLimbs
}

// withDigitsChecked is withDigits but reports ErrInternalLimit instead of
// building a Decimal whose digit-array body would exceed the engine's
// hard limb-count limit, turning a pathological input into a clean error
// instead of unbounded work. Used for Add/Sub/Mul/Quo results and for
// rescale-driven zero padding, as opposed to withDigits, which stays
// infallible for call sites that only ever shrink a value (QuoRem/DivMod
// results, rounding in Rescale). Literal and big-integer construction
// (Parse, FromBigInt) also build through withDigits and are not checked
// against the limit.
func withDigitsChecked(neg bool, scale int, coef digits) (Decimal, error) {
	if digitsOverLimit(coef) {
		return Decimal{}, ErrInternalLimit
	}
	return withDigits(neg, scale, coef), nil
}

// withShifted returns a new Decimal with the given sign/scale/coefficient
// in shifted-int form, normalized.
func withShifted(neg bool, scale int, coef uint128) Decimal {
	return Decimal{neg: neg, scale: scale, kind: reprShifted, small: shiftedInt{mag: coef}}.normalize()
}

// GoString implements fmt.GoStringer, returning a Go-syntax constructor
// call, e.g. decimal.MustParse("3.14"). Used by %#v.
func (d Decimal) GoString() string {
	return fmt.Sprintf("decimal.MustParse(%q)", d.String())
}
