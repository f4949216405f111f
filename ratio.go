package decimal

import (
	"fmt"
	"hash/fnv"
	"math/big"
)

// AsIntegerRatio returns (numerator, denominator) such that d equals
// numerator/denominator exactly, in lowest terms with a strictly
// positive denominator, computed fresh on each call (this package
// deliberately does not memoize it on the Decimal value).
func (d Decimal) AsIntegerRatio() (*BigInt, *BigInt) {
	if d.IsZero() {
		return big.NewInt(0), big.NewInt(1)
	}
	coef := bigIntFromDigits(false, d.toDigits())
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.scale)), nil)
	g := new(big.Int).GCD(nil, nil, coef, den)
	if g.Sign() != 0 {
		coef.Div(coef, g)
		den.Div(den, g)
	}
	if d.neg {
		coef.Neg(coef)
	}
	return coef, den
}

// AsTuple returns d's sign (0 or 1, matching Python decimal.Decimal's
// as_tuple convention), unsigned coefficient and base-10 exponent, such
// that d == (-1)^sign * coefficient * 10^exponent.
func (d Decimal) AsTuple() (sign int, coefficient *BigInt, exponent int) {
	if d.neg {
		sign = 1
	}
	coefficient = bigIntFromDigits(false, d.toDigits())
	return sign, coefficient, -d.scale
}

// Magnitude returns the base-10 order of magnitude k such that
// 10^k <= |d| < 10^(k+1). It returns ErrUndefinedMagnitude for zero,
// which has no well-defined order of magnitude.
func (d Decimal) Magnitude() (int, error) {
	if d.IsZero() {
		return 0, ErrUndefinedMagnitude
	}
	return d.coefficientDigits() - 1 - d.scale, nil
}

// Trunc returns d truncated toward zero to an integer value (scale 0).
func (d Decimal) Trunc() (Decimal, error) {
	return d.Rescale(0, Down)
}

// Floor returns the greatest integer value (scale 0) not exceeding d.
func (d Decimal) Floor() (Decimal, error) {
	return d.Rescale(0, Floor)
}

// Ceil returns the least integer value (scale 0) not less than d.
func (d Decimal) Ceil() (Decimal, error) {
	return d.Rescale(0, Ceiling)
}

// ToInt64 returns d's integer value truncated toward zero, erroring with
// ErrCannotRepresent if it overflows int64.
func (d Decimal) ToInt64() (int64, error) {
	t, err := d.Trunc()
	if err != nil {
		return 0, err
	}
	z := bigIntFromDigits(t.neg, t.toDigits())
	if !z.IsInt64() {
		return 0, fmt.Errorf("%w: %s overflows int64", ErrCannotRepresent, d.String())
	}
	return z.Int64(), nil
}

// Hash returns a value such that two Decimals with Equal(other) == true
// always return the same Hash, computed over the reduced (numerator,
// denominator) pair so it is scale-independent -- 1, 1.0 and 1.00 all
// hash the same. This is this package's own stable hash for use in Go
// maps/sets of Decimal values, not a port of any host language's
// rational-number hash algorithm.
func (d Decimal) Hash() uint64 {
	num, den := d.AsIntegerRatio()
	h := fnv.New64a()
	h.Write(num.Bytes())
	h.Write([]byte{0})
	if num.Sign() < 0 {
		h.Write([]byte{1})
	}
	h.Write(den.Bytes())
	return h.Sum64()
}

// terminatingScale reports whether 1/den (den > 0, already in lowest
// terms against its numerator) has a finite decimal expansion -- true
// exactly when den's only prime factors are 2 and 5 -- and if so returns
// the scale (number of fractional digits) that expansion needs:
// max(count of 2s, count of 5s), following the textbook rule that a
// reduced fraction terminates in base 10 iff its denominator divides
// some power of ten.
func terminatingScale(den *big.Int) (int, bool) {
	n := new(big.Int).Set(den)
	two := big.NewInt(2)
	five := big.NewInt(5)
	var twos, fives int
	for new(big.Int).Mod(n, two).Sign() == 0 {
		n.Div(n, two)
		twos++
	}
	for new(big.Int).Mod(n, five).Sign() == 0 {
		n.Div(n, five)
		fives++
	}
	if n.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// Inv returns the exact reciprocal 1/d when it has a finite decimal
// form, and ErrCannotRepresent otherwise (e.g. 1/3, which never
// terminates in base 10). PowInt calls this directly for negative
// exponents, re-entering Decimal form whenever the reciprocal reduces to
// one.
func (d Decimal) Inv() (Decimal, error) {
	if d.IsZero() {
		return Decimal{}, ErrDivideByZero
	}
	num, den := d.AsIntegerRatio() // d == num/den, already reduced.
	recipNum, recipDen := den, num
	negRecip := recipDen.Sign() < 0
	if negRecip {
		recipNum = new(big.Int).Neg(recipNum)
		recipDen = new(big.Int).Neg(recipDen)
	}
	scale, ok := terminatingScale(recipDen)
	if !ok {
		return Decimal{}, fmt.Errorf("%w: 1/%s is not a finite decimal", ErrCannotRepresent, d.String())
	}
	return FromBigInt(recipNum).Quo(FromBigInt(recipDen), scale, HalfEven)
}

// QuoExact returns the exact quotient x/y when one exists: the reduced
// rational x/y's denominator must divide a power of ten. Returns
// ErrCannotRepresent when it does not (e.g. Decimal("1").QuoExact(
// Decimal("3"))), in which case callers should fall back to a rational
// (numerator, denominator) pair via AsIntegerRatio instead.
func (x Decimal) QuoExact(y Decimal) (Decimal, error) {
	if y.IsZero() {
		return Decimal{}, ErrDivideByZero
	}
	xn, xd := x.AsIntegerRatio()
	yn, yd := y.AsIntegerRatio()
	num := new(big.Int).Mul(xn, yd)
	den := new(big.Int).Mul(xd, yn)
	neg := den.Sign() < 0
	if neg {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Sign() != 0 {
		num.Div(num, g)
		den.Div(den, g)
	}
	scale, ok := terminatingScale(den)
	if !ok {
		return Decimal{}, fmt.Errorf("%w: %s/%s is not a finite decimal", ErrCannotRepresent, x.String(), y.String())
	}
	return FromBigInt(num).Quo(FromBigInt(den), scale, HalfEven)
}
