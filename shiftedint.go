package decimal

// shiftedInt is the "small value" body: a 128-bit unsigned magnitude
// interpreted, together with the owning Decimal's sign and scale, as
// sign*mag*10^-scale. Every method below returns an "(result, ok bool)"
// pair so callers can fall back to the digit-array tier on overflow
// instead of the fast path silently producing a wrong answer.
type shiftedInt struct {
	mag uint128
}

var shiftedIntZero = shiftedInt{}

// maxUint128Digits is the maximum number of decimal digits representable
// by a uint128 coefficient (10^38 < 2^128 <= 10^39).
const maxUint128Digits = 39

// add computes x+y, escaping on overflow.
func (x shiftedInt) add(y shiftedInt) (shiftedInt, bool) {
	z, overflow := x.mag.add(y.mag)
	return shiftedInt{mag: z}, !overflow
}

// sub computes x-y assuming x >= y (caller resolves sign), returning
// false (escape) only if that precondition is violated; magnitude
// subtraction of two uint128 values otherwise never overflows.
func (x shiftedInt) sub(y shiftedInt) (shiftedInt, bool) {
	z, borrow := x.mag.sub(y.mag)
	return shiftedInt{mag: z}, !borrow
}

// mul computes x*y, escaping on overflow.
func (x shiftedInt) mul(y shiftedInt) (shiftedInt, bool) {
	z, overflow := x.mag.mul128(y.mag)
	return shiftedInt{mag: z}, !overflow
}

// lsh (shift left) computes x * 10^shift, escaping on overflow.
func (x shiftedInt) lsh(shift int) (shiftedInt, bool) {
	if shift == 0 {
		return x, true
	}
	if shift < 0 {
		return shiftedIntZero, false
	}
	pow, overflow := uint128Pow10(shift)
	if overflow {
		return shiftedIntZero, false
	}
	z, overflow := x.mag.mul128(pow)
	return shiftedInt{mag: z}, !overflow
}

// cmp compares two magnitudes: -1, 0, +1.
func (x shiftedInt) cmp(y shiftedInt) int {
	return x.mag.cmp(y.mag)
}

// isZero reports whether x is zero.
func (x shiftedInt) isZero() bool {
	return x.mag.isZero()
}

// prec returns the number of decimal digits in x (0 for zero), via
// binary search over the uint128 power-of-ten table.
func (x shiftedInt) prec() int {
	if x.mag.isZero() {
		return 0
	}
	left, right := 1, maxUint128Digits
	for left < right {
		mid := (left + right) / 2
		pow, overflow := uint128Pow10(mid)
		if overflow || x.mag.cmp(pow) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// rshDivmod divides x by 10^shift, returning the truncated quotient and
// the remainder (as a magnitude, always < 10^shift). When 10^shift
// overflows the power table (shift >= maxUint128Digits), it exceeds every
// uint128, so the quotient is 0 and the remainder is x.
func (x shiftedInt) rshDivmod(shift int) (q shiftedInt, r uint128) {
	if shift <= 0 {
		return x, uint128Zero
	}
	pow, overflow := uint128Pow10(shift)
	if overflow {
		return shiftedIntZero, x.mag
	}
	// uint128 / uint128 by repeated 64-bit division when the divisor fits
	// in 64 bits (the overwhelmingly common case, shift <= 19); fall back
	// to the general digit-array division otherwise.
	if lo, fits := pow.fitsUint64(); fits {
		qq, rr := x.mag.divmod64(lo)
		return shiftedInt{mag: qq}, uint128{lo: rr}
	}
	qLimbs, rLimbs := divmodLimbs(digitsFromUint128(x.mag).plainLimbs(), digitsFromUint128(pow).plainLimbs())
	qd := digits{limbs: qLimbs}
	rd := digits{limbs: rLimbs}
	qVal, _ := qd.toUint128()
	rVal, _ := rd.toUint128()
	return shiftedInt{mag: qVal}, rVal
}

// toDigits promotes x to digit-array form.
func (x shiftedInt) toDigits() digits {
	return digitsFromUint128(x.mag)
}
