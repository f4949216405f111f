package decimal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// FromInt64 returns the exact integer value v as a Decimal with scale 0.
func FromInt64(v int64) Decimal {
	return FromBigInt(big.NewInt(v))
}

// FromBigInt returns the exact integer value z as a Decimal with scale 0.
func FromBigInt(z *BigInt) Decimal {
	neg := z.Sign() < 0
	mag := new(big.Int).Abs(z)
	return fromCoefficientString(neg, 0, mag.String())
}

// FromIntegerScale returns the exact integer value z as a Decimal with
// the given declared scale, e.g. FromIntegerScale(big.NewInt(3), 2) ==
// Decimal("3.00"). An integer is exact at any declared scale (only the
// textual presentation changes), so this never rounds; it can only fail
// on an out-of-range scale.
func FromIntegerScale(z *BigInt, scale int) (Decimal, error) {
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}
	return FromBigInt(z).Rescale(scale, HalfEven)
}

// ParseScale parses s like Parse, then adjusts the result to exactly
// scale fractional digits using mode.
func ParseScale(s string, scale int, mode RoundingMode) (Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	return d.Rescale(scale, mode)
}

// FromDecimalScale returns a Decimal equal to other but rescaled to
// scale, sharing other's representation unchanged when scale already
// matches.
func FromDecimalScale(other Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if scale == other.scale {
		return other, nil
	}
	return other.Rescale(scale, mode)
}

// FromFloat64 converts f to the Decimal denoting its exact binary value,
// erroring with ErrCannotRepresent for NaN/Inf. Every finite float64 is a
// binary fraction num/2^k, which is always an exact terminating decimal
// (num*5^k)/10^k; this builds that exact rational via big.Rat.SetFloat64
// rather than round-tripping through the lossy strconv.FormatFloat('g', ...)
// text form.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("%w: %v", ErrCannotRepresent, f)
	}
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Decimal{}, fmt.Errorf("%w: %v", ErrCannotRepresent, f)
	}

	num := new(big.Int).Set(r.Num())
	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}

	// big.Rat always normalizes a float64's denominator to a power of two
	// (or 1); count that power to get the exact decimal scale.
	den := new(big.Int).Set(r.Denom())
	one := big.NewInt(1)
	two := big.NewInt(2)
	scale := 0
	for den.Cmp(one) > 0 {
		den.Div(den, two)
		scale++
	}
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}

	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(scale)), nil)
	coef := new(big.Int).Mul(num, five)
	return fromCoefficientString(neg, scale, coef.String()), nil
}

// FromFloat64Scale converts f exactly (as FromFloat64 does) and then
// rescales to exactly scale fractional digits using mode, for callers
// that want fewer digits than f's exact binary value carries.
func FromFloat64Scale(f float64, scale int, mode RoundingMode) (Decimal, error) {
	exact, err := FromFloat64(f)
	if err != nil {
		return Decimal{}, err
	}
	return exact.Rescale(scale, mode)
}

// FromRational returns the exact value num/den as a Decimal, erroring
// with ErrCannotRepresent when the reduced fraction does not terminate
// in base 10 (e.g. 1/3). Use FromRationalScale when an inexact result
// rounded to a given scale is acceptable.
func FromRational(num, den *BigInt) (Decimal, error) {
	if den.Sign() == 0 {
		return Decimal{}, ErrDivideByZero
	}
	return FromBigInt(num).QuoExact(FromBigInt(den))
}

// FromRationalScale returns num/den rounded to exactly scale fractional
// digits using mode.
func FromRationalScale(num, den *BigInt, scale int, mode RoundingMode) (Decimal, error) {
	if den.Sign() == 0 {
		return Decimal{}, ErrDivideByZero
	}
	return FromBigInt(num).Quo(FromBigInt(den), scale, mode)
}

// FromRat returns r rounded to exactly scale fractional digits using
// mode, since a general rational has no finite exact decimal
// representation (e.g. 1/3).
func FromRat(r *big.Rat, scale int, mode RoundingMode) (Decimal, error) {
	num := FromBigInt(r.Num())
	den := FromBigInt(r.Denom())
	return num.Quo(den, scale, mode)
}

// FromReal builds a Decimal from an int, int64, *big.Int, *big.Rat,
// float64, string or Decimal, trying each type's own exact construction
// first. When exact is false and the natural conversion has no finite
// exact decimal form (ErrCannotRepresent), it retries at MaxPrecision
// fractional digits under the process default rounding mode instead of
// failing. A non-finite float64 has no rescue path at any precision and
// always fails regardless of exact.
func FromReal(r any, exact bool) (Decimal, error) {
	switch v := r.(type) {
	case Decimal:
		return v, nil
	case int:
		return FromInt64(int64(v)), nil
	case int64:
		return FromInt64(v), nil
	case *big.Int:
		return FromBigInt(v), nil
	case *big.Rat:
		d, err := FromRational(v.Num(), v.Denom())
		if err != nil && !exact && errors.Is(err, ErrCannotRepresent) {
			return FromBigInt(v.Num()).Quo(FromBigInt(v.Denom()), MaxPrecision, GetDefaultRoundingMode())
		}
		return d, err
	case float64:
		return FromFloat64(v)
	case string:
		return Parse(v)
	default:
		return Decimal{}, fmt.Errorf("%w: unsupported type %T", ErrCannotRepresent, r)
	}
}

// Float64 returns the nearest float64 to d, using the standard library's
// correctly-rounded rational-to-binary conversion (big.Rat.SetFrac over
// AsIntegerRatio followed by big.Rat.Float64, the same "construct an exact rational,
// let the well-tested stdlib path round it to the nearest float" approach
// as FromFloat64's inverse).
func (d Decimal) Float64() (f float64, exact bool) {
	num, den := d.AsIntegerRatio()
	r := new(big.Rat).SetFrac(num, den)
	return r.Float64()
}
