package decimal

import "fmt"

// coefficientString renders d's unsigned coefficient as a plain decimal
// digit string ("0" for zero), independent of representation.
func (d Decimal) coefficientString() string {
	if d.kind == reprShifted {
		return digitsFromUint128(d.small.mag).decimalString()
	}
	return d.large.decimalString()
}

// fromCoefficientString builds a Decimal from a sign, scale and an
// unsigned plain decimal digit string, picking whichever of the two
// representations the value fits (withDigits' normalize handles the
// demotion), the same "always build wide, then normalize down" discipline
// value.go's withShifted/withDigits pair already uses for arithmetic
// results.
func fromCoefficientString(neg bool, scale int, s string) Decimal {
	return withDigits(neg, scale, digitsFromDecimalDigits([]byte(s)))
}

// validateScale reports an error if scale falls outside the engine's
// declared hard limits.
func validateScale(scale int) error {
	if scale < 0 || scale > MaxPrecision {
		return fmt.Errorf("%w: scale %d out of range [0, %d]", ErrPrecisionLimit, scale, MaxPrecision)
	}
	return nil
}

// rescaleShiftedDown is Rescale's shifted-int fast path for shrinking the
// scale by drop digits: it divides the magnitude by 10^drop directly
// (allocation-free) instead of round-tripping through decimal text, and
// reports false when that isn't possible (drop too large for the
// power-of-ten table, or rounding up overflows 128 bits), leaving the
// caller to fall back to the text-based path.
func (d Decimal) rescaleShiftedDown(drop, newScale int, mode RoundingMode) (Decimal, bool) {
	pow, overflow := uint128Pow10(drop)
	if overflow {
		return Decimal{}, false
	}
	q, r := d.small.rshDivmod(drop)
	doubled, carry := r.add(r)
	cmp := remainderCmp(doubled.cmp(pow))
	if carry {
		cmp = remainderMore
	}
	_, lastDigit := q.mag.divmod64(10)
	dir := roundQuotient(mode, d.neg, r.isZero(), cmp, int(lastDigit))
	if dir == roundUp {
		var ok bool
		q, ok = q.add(shiftedInt{mag: uint128One})
		if !ok {
			return Decimal{}, false
		}
	}
	return withShifted(d.neg, newScale, q.mag), true
}

// Rescale returns d adjusted to exactly newScale fractional digits,
// rounding with mode when newScale is smaller than d.Scale() and padding
// with exact trailing zeros (never rounds) when it is larger. This is the
// one place outside Quo where a rounding mode is applied; unlike Quo,
// the direction here is always toward fewer digits of the *same* value,
// never a division result.
func (d Decimal) Rescale(newScale int, mode RoundingMode) (Decimal, error) {
	if err := validateScale(newScale); err != nil {
		return Decimal{}, err
	}
	if !mode.valid() {
		return Decimal{}, fmt.Errorf("%w: %d", ErrInvalidRoundingMode, mode)
	}
	if newScale == d.scale {
		return d, nil
	}
	if d.isZeroMagnitude() {
		return Decimal{scale: newScale}, nil
	}
	if newScale > d.scale {
		shift := newScale - d.scale
		if d.kind == reprShifted {
			if z, ok := d.small.lsh(shift); ok {
				return withShifted(d.neg, newScale, z.mag), nil
			}
		}
		return withDigitsChecked(d.neg, newScale, d.toDigits().mulPow10(shift))
	}
	drop := d.scale - newScale
	if d.kind == reprShifted {
		if dec, ok := d.rescaleShiftedDown(drop, newScale, mode); ok {
			return dec, nil
		}
	}
	kept := roundDecimalDigits(d.coefficientString(), drop, mode, d.neg)
	return fromCoefficientString(d.neg, newScale, kept), nil
}

// Round returns d rounded to n fractional digits using mode, a thin
// convenience wrapper over Rescale.
func (d Decimal) Round(n int, mode RoundingMode) (Decimal, error) {
	return d.Rescale(n, mode)
}

// RoundToIntegral returns d rounded to zero fractional digits using mode.
func (d Decimal) RoundToIntegral(mode RoundingMode) (Decimal, error) {
	return d.Rescale(0, mode)
}

// Quantize returns d adjusted to have the same scale as other, rounding
// with mode.
func (d Decimal) Quantize(other Decimal, mode RoundingMode) (Decimal, error) {
	return d.Rescale(other.scale, mode)
}
