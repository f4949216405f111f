package decimal

import "fmt"

// commonScale returns max(x.Scale(), y.Scale()), the scale Add/Sub/Cmp
// align both operands to before combining coefficients: the
// smaller-scale operand shifts up before a same-scale limb combine.
func commonScale(x, y Decimal) int {
	if x.scale > y.scale {
		return x.scale
	}
	return y.scale
}

// alignedCoefficients rescales x and y to scale s (always exact: s is
// never smaller than either operand's own scale) and reports their
// coefficient magnitudes and signs at that common scale.
func alignedCoefficients(x, y Decimal, s int) (xa, ya Decimal, err error) {
	xa, err = x.Rescale(s, HalfEven)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	ya, err = y.Rescale(s, HalfEven)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return xa, ya, nil
}

// magnitudeCmp compares two already-scale-aligned Decimals' coefficient
// magnitudes, independent of representation: -1, 0, +1.
func magnitudeCmp(x, y Decimal) int {
	if x.kind == reprShifted && y.kind == reprShifted {
		return x.small.cmp(y.small)
	}
	return cmpLimbs(x.toDigits().plainLimbs(), y.toDigits().plainLimbs())
}

// addMagnitudes adds two same-scale, same-sign-irrelevant coefficient
// magnitudes, trying the shifted-int fast path first and escalating to
// the digit-array tier on overflow.
func addMagnitudes(x, y Decimal) (kind reprKind, small shiftedInt, large digits) {
	if x.kind == reprShifted && y.kind == reprShifted {
		if z, ok := x.small.add(y.small); ok {
			return reprShifted, z, digits{}
		}
	}
	sum := digits{limbs: addLimbs(x.toDigits().plainLimbs(), y.toDigits().plainLimbs())}.normalize()
	return reprDigits, shiftedInt{}, sum
}

// subMagnitudes computes x-y for same-scale coefficient magnitudes with
// x >= y, trying the shifted-int fast path first.
func subMagnitudes(x, y Decimal) (kind reprKind, small shiftedInt, large digits) {
	if x.kind == reprShifted && y.kind == reprShifted {
		if z, ok := x.small.sub(y.small); ok {
			return reprShifted, z, digits{}
		}
	}
	diff := digits{limbs: subLimbs(x.toDigits().plainLimbs(), y.toDigits().plainLimbs())}.normalize()
	return reprDigits, shiftedInt{}, diff
}

func fromParts(neg bool, scale int, kind reprKind, small shiftedInt, large digits) (Decimal, error) {
	if kind == reprShifted {
		return withShifted(neg, scale, small.mag), nil
	}
	return withDigitsChecked(neg, scale, large)
}

// Add returns x+y, exact: the result's scale is max(x.Scale(), y.Scale())
// and no rounding is ever applied.
func (x Decimal) Add(y Decimal) (Decimal, error) {
	s := commonScale(x, y)
	xa, ya, err := alignedCoefficients(x, y, s)
	if err != nil {
		return Decimal{}, err
	}
	if xa.neg == ya.neg {
		kind, small, large := addMagnitudes(xa, ya)
		return fromParts(xa.neg, s, kind, small, large)
	}
	switch magnitudeCmp(xa, ya) {
	case 0:
		return Decimal{scale: s}, nil
	case 1:
		kind, small, large := subMagnitudes(xa, ya)
		return fromParts(xa.neg, s, kind, small, large)
	default:
		kind, small, large := subMagnitudes(ya, xa)
		return fromParts(ya.neg, s, kind, small, large)
	}
}

// Sub returns x-y, exact.
func (x Decimal) Sub(y Decimal) (Decimal, error) {
	return x.Add(y.Neg())
}

// Cmp compares x and y by value: -1, 0, +1.
func (x Decimal) Cmp(y Decimal) (int, error) {
	if x.IsZero() && y.IsZero() {
		return 0, nil
	}
	if x.Sign() != y.Sign() {
		if x.Sign() < y.Sign() {
			return -1, nil
		}
		return 1, nil
	}
	s := commonScale(x, y)
	xa, ya, err := alignedCoefficients(x, y, s)
	if err != nil {
		return 0, err
	}
	c := magnitudeCmp(xa, ya)
	if xa.neg {
		c = -c
	}
	return c, nil
}

// Equal reports whether x and y denote the same value (regardless of
// scale, e.g. 1.0 equals 1.00).
func (x Decimal) Equal(y Decimal) bool {
	c, err := x.Cmp(y)
	return err == nil && c == 0
}

// Less, LessEqual, Greater, GreaterEqual round out the six comparisons,
// each a thin wrapper over Cmp. Cmp/Equal never fail for two plain
// Decimals (the only error path is a scale-alignment overflow past
// MaxPrecision, which cannot happen since both operands already carry a
// valid scale), so these panic rather than thread an error through every
// call site.
func (x Decimal) Less(y Decimal) bool {
	c, err := x.Cmp(y)
	if err != nil {
		panic(err)
	}
	return c < 0
}

func (x Decimal) LessEqual(y Decimal) bool {
	c, err := x.Cmp(y)
	if err != nil {
		panic(err)
	}
	return c <= 0
}

func (x Decimal) Greater(y Decimal) bool {
	c, err := x.Cmp(y)
	if err != nil {
		panic(err)
	}
	return c > 0
}

func (x Decimal) GreaterEqual(y Decimal) bool {
	c, err := x.Cmp(y)
	if err != nil {
		panic(err)
	}
	return c >= 0
}

// Mod returns the truncated-division remainder of x and y, equivalent to
// the second result of QuoRem.
func (x Decimal) Mod(y Decimal) (Decimal, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// FloorDiv returns the floored integer quotient of x and y, equivalent to
// the first result of DivMod.
func (x Decimal) FloorDiv(y Decimal) (Decimal, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mul returns x*y, exact: the result's scale is x.Scale()+y.Scale(),
// erroring with ErrPrecisionLimit if that exceeds MaxPrecision.
func (x Decimal) Mul(y Decimal) (Decimal, error) {
	scale := x.scale + y.scale
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}
	neg := x.neg != y.neg
	if x.isZeroMagnitude() || y.isZeroMagnitude() {
		return Decimal{scale: scale}, nil
	}
	if x.kind == reprShifted && y.kind == reprShifted {
		if z, ok := x.small.mul(y.small); ok {
			return withShifted(neg, scale, z.mag), nil
		}
	}
	prod := digits{limbs: mulLimbs(x.toDigits().plainLimbs(), y.toDigits().plainLimbs())}.normalize()
	return withDigitsChecked(neg, scale, prod)
}

// PowInt returns x raised to the integer power n, exact whenever the
// result has a finite decimal form. n==0 yields 1 regardless of x
// (including x==0); n>0 uses repeated squaring. n<0 computes
// PowInt(x, -n) and then falls back to the rational reciprocal (Inv),
// re-entering Decimal form whenever the reciprocal terminates and
// reporting ErrCannotRepresent otherwise (e.g. Decimal("3").PowInt(-1),
// since 1/3 never terminates in base 10).
func (x Decimal) PowInt(n int) (Decimal, error) {
	if n == 0 {
		return MustParse("1"), nil
	}
	if n < 0 {
		p, err := x.PowInt(-n)
		if err != nil {
			return Decimal{}, err
		}
		return p.Inv()
	}
	result := MustParse("1")
	base := x
	for n > 0 {
		if n&1 == 1 {
			var err error
			result, err = result.Mul(base)
			if err != nil {
				return Decimal{}, err
			}
		}
		n >>= 1
		if n == 0 {
			break
		}
		var err error
		base, err = base.Mul(base)
		if err != nil {
			return Decimal{}, err
		}
	}
	return result, nil
}

// decimalDivideRound divides the dense limb slices num by den, rounding
// the integer quotient according to mode (neg is the sign the exact
// result would carry), threading a remainder-vs-half compare and the
// quotient's last digit through the same rounding kernel every lossy
// operation in this package shares (rounding.go).
func decimalDivideRound(num, den []uint64, mode RoundingMode, neg bool) []uint64 {
	q, r := divmodLimbs(num, den)
	if len(r) == 0 {
		return q
	}

	// 2*|r| is purely transient (consumed by the very next compare), the
	// one spot in the division path where the scratch buffer never
	// escapes into a returned value, so it is safe to round-trip through
	// the injectable Allocator (alloc.go) instead of a bare make().
	scratch := getLimbs(len(r) + 1)
	var carry uint64
	for i, ri := range r {
		t := ri + carry
		s := ri + t
		carry = 0
		if s < ri || s >= digitsBase { // s < ri: the uint64 sum wrapped
			s -= digitsBase
			carry = 1
		}
		scratch[i] = s
	}
	scratch[len(r)] = carry
	cmp := remainderCmp(cmpLimbs(normalizeLimbsHigh(scratch), den))
	putLimbs(scratch)

	_, lastDigit := divmodSmall(q, 10)
	if roundQuotient(mode, neg, false, cmp, int(lastDigit)) == roundUp {
		return addSmall(q, 1)
	}
	return q
}

// Quo returns x/y rounded to exactly scale fractional digits using mode:
// the one general-purpose division operation, since an exact decimal
// quotient does not exist in general (e.g. 1/3).
func (x Decimal) Quo(y Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if y.isZeroMagnitude() {
		return Decimal{}, ErrDivideByZero
	}
	if err := validateScale(scale); err != nil {
		return Decimal{}, err
	}
	if !mode.valid() {
		return Decimal{}, fmt.Errorf("%w: %d", ErrInvalidRoundingMode, mode)
	}
	neg := x.neg != y.neg
	if x.isZeroMagnitude() {
		return Decimal{scale: scale}, nil
	}

	// x/y = (xc * 10^-xs) / (yc * 10^-ys). We want a quotient coefficient
	// rc at `scale` such that rc*10^-scale ~= (xc/yc) * 10^(ys-xs), i.e.
	// rc ~= xc * 10^(ys-xs+scale) / yc. Fold the sign of the shift into
	// whichever side (numerator or denominator) it grows.
	shift := y.scale - x.scale + scale
	num := x.toDigits().clone()
	den := y.toDigits().clone()
	if shift >= 0 {
		num = num.mulPow10(shift)
	} else {
		den = den.mulPow10(-shift)
	}
	qLimbs := decimalDivideRound(num.plainLimbs(), den.plainLimbs(), mode, neg)
	return withDigitsChecked(neg, scale, digits{limbs: qLimbs})
}

// QuoRem returns the truncated quotient (scale 0) and remainder
// (x.Scale() if that is >= y.Scale(), else y.Scale()) of x divided by y,
// satisfying x == q*y + r with sign(r) == sign(x) or r == 0 -- C/Go
// integer-division semantics.
func (x Decimal) QuoRem(y Decimal) (q, r Decimal, err error) {
	return x.divide(y, false)
}

// DivMod returns the floored quotient (scale 0) and remainder of x
// divided by y, satisfying x == q*y + r with sign(r) == sign(y) or
// r == 0 -- Python/floor-division semantics, distinct from QuoRem's
// truncated-division remainder.
func (x Decimal) DivMod(y Decimal) (q, r Decimal, err error) {
	return x.divide(y, true)
}

// divide implements both QuoRem (floor=false) and DivMod (floor=true):
// align x and y to a common scale, divide the aligned coefficients as
// plain integers, then adjust the truncated-toward-zero result by one
// when floor semantics requires crossing a sign boundary.
func (x Decimal) divide(y Decimal, floor bool) (q, r Decimal, err error) {
	if y.isZeroMagnitude() {
		return Decimal{}, Decimal{}, ErrDivideByZero
	}
	s := commonScale(x, y)
	xa, ya, err := alignedCoefficients(x, y, s)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	if xa.isZeroMagnitude() {
		return Decimal{}, Decimal{scale: s}, nil
	}

	qLimbs, rLimbs := divmodLimbs(xa.toDigits().plainLimbs(), ya.toDigits().plainLimbs())
	qNeg := xa.neg != ya.neg
	rNeg := xa.neg // truncated remainder always carries the dividend's sign

	remZero := len(normalizeLimbsHigh(rLimbs)) == 0
	if floor && !remZero && qNeg {
		// Truncated-toward-zero quotient overshoots floor by one whenever
		// the exact quotient is negative and inexact: floor(x/y) =
		// trunc(x/y) - 1, and the remainder then takes on y's sign
		// instead of x's (r_floor = r_trunc - |y|... equivalently
		// r_floor = y - r_trunc_abs, carried with y's sign).
		qLimbs = addSmall(qLimbs, 1)
		rLimbs = subLimbs(ya.toDigits().plainLimbs(), rLimbs)
		rNeg = ya.neg
	}

	qDec := withDigits(qNeg, 0, digits{limbs: qLimbs})
	rDec := withDigits(rNeg, s, digits{limbs: rLimbs})
	return qDec, rDec, nil
}
