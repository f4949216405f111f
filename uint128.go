package decimal

import "math/bits"

// uint128 is an unsigned 128-bit integer stored as two 64-bit limbs. It is
// a pure value type: every method here returns a new uint128 (or an
// overflow flag) rather than mutating the receiver. These are the only
// routines where carry/overflow details live; every higher layer calls
// them and treats them as total functions on the documented domain, using
// math/bits (Add64/Sub64/Mul64/Div64) for the carry-propagating limb
// arithmetic instead of hand-written bit twiddling.
type uint128 struct {
	lo, hi uint64
}

var (
	uint128Zero = uint128{}
	uint128One  = uint128{lo: 1}
)

// maxUint128 is the largest representable uint128.
var maxUint128 = uint128{lo: ^uint64(0), hi: ^uint64(0)}

// isZero reports whether x is zero.
func (x uint128) isZero() bool { return x.lo == 0 && x.hi == 0 }

// cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x uint128) cmp(y uint128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// add returns x+y and whether it overflowed 128 bits.
func (x uint128) add(y uint128) (uint128, bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, carry := bits.Add64(x.hi, y.hi, carry)
	return uint128{lo: lo, hi: hi}, carry != 0
}

// sub returns x-y and whether it borrowed (i.e. x < y).
func (x uint128) sub(y uint128) (uint128, bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, borrow := bits.Sub64(x.hi, y.hi, borrow)
	return uint128{lo: lo, hi: hi}, borrow != 0
}

// mul64x64 computes the exact 128-bit product of two uint64 values. This
// can never overflow.
func mul64x64(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{lo: lo, hi: hi}
}

// mul multiplies x by the 64-bit y, returning the 128-bit product and
// whether it overflowed 128 bits.
func (x uint128) mul(y uint64) (uint128, bool) {
	if y == 0 || x.isZero() {
		return uint128Zero, false
	}
	hiLo, lo := bits.Mul64(x.lo, y)
	hiHi, hi := bits.Mul64(x.hi, y)
	hi, carry := bits.Add64(hi, hiLo, 0)
	overflow := carry != 0 || hiHi != 0
	return uint128{lo: lo, hi: hi}, overflow
}

// mul128 multiplies two uint128 values, returning the low 128 bits of the
// product and whether any of the discarded high bits were nonzero
// (i.e. the mathematical product does not fit in 128 bits).
func (x uint128) mul128(y uint128) (uint128, bool) {
	if x.isZero() || y.isZero() {
		return uint128Zero, false
	}
	// (x.hi*B + x.lo) * (y.hi*B + y.lo), B = 2^64.
	lowHi, lowLo := bits.Mul64(x.lo, y.lo)
	mid1Hi, mid1Lo := bits.Mul64(x.lo, y.hi)
	mid2Hi, mid2Lo := bits.Mul64(x.hi, y.lo)

	// Any product feeding the >= 2^128 term means overflow outright.
	overflow := mid1Hi != 0 || mid2Hi != 0 || (x.hi != 0 && y.hi != 0)

	mid, carry1 := bits.Add64(mid1Lo, mid2Lo, 0)
	hi, carry2 := bits.Add64(lowHi, mid, 0)
	overflow = overflow || carry1 != 0 || carry2 != 0

	return uint128{lo: lowLo, hi: hi}, overflow
}

// divmod64 divides x by the nonzero 64-bit y, returning quotient and
// remainder. Divides high limb first via bits.Div64 so the low-limb
// division never overflows its quotient.
func (x uint128) divmod64(y uint64) (q uint128, r uint64) {
	if x.hi < y {
		qLo, rLo := bits.Div64(x.hi, x.lo, y)
		return uint128{lo: qLo}, rLo
	}
	qHi, rHi := bits.Div64(0, x.hi, y)
	qLo, rLo := bits.Div64(rHi, x.lo, y)
	return uint128{lo: qLo, hi: qHi}, rLo
}

// shl returns x shifted left by n bits (0 <= n < 128) and whether any set
// bit was shifted out (overflow).
func (x uint128) shl(n uint) (uint128, bool) {
	switch {
	case n == 0:
		return x, false
	case n >= 128:
		return uint128Zero, !x.isZero()
	case n >= 64:
		hi := x.lo << (n - 64)
		overflow := x.hi != 0 || x.lo>>(128-n) != 0
		return uint128{hi: hi}, overflow
	default:
		hi := x.hi<<n | x.lo>>(64-n)
		lo := x.lo << n
		overflow := x.hi>>(64-n) != 0
		return uint128{lo: lo, hi: hi}, overflow
	}
}

// shr returns x shifted right (logical) by n bits (0 <= n < 128).
func (x uint128) shr(n uint) uint128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return uint128Zero
	case n >= 64:
		return uint128{lo: x.hi >> (n - 64)}
	default:
		lo := x.lo>>n | x.hi<<(64-n)
		hi := x.hi >> n
		return uint128{lo: lo, hi: hi}
	}
}

// fitsUint64 reports whether x fits in a uint64 and returns that value.
func (x uint128) fitsUint64() (uint64, bool) {
	return x.lo, x.hi == 0
}

// pow10Table64 caches 10^0 .. 10^18, the sub-limb powers of ten that
// digits.mulPow10 multiplies by (k % digitsBaseDigits is at most 18);
// 10^19 itself is digitsBase. The uint128 table below covers 10^0 .. 10^38.
var pow10Table64 = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000,
	10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000,
}

// pow10Table128 caches 10^0 .. 10^38 as uint128, the full range of powers
// of ten representable in 128 bits (10^38 < 2^128 <= 10^39). Built once at
// init time by repeated multiplication.
var pow10Table128 = func() [39]uint128 {
	var t [39]uint128
	t[0] = uint128One
	for i := 1; i < len(t); i++ {
		v, overflow := t[i-1].mul(10)
		if overflow {
			panic("decimal: pow10Table128 overflowed during init")
		}
		t[i] = v
	}
	return t
}()

// uint128Pow10 returns 10^n as a uint128 and whether it overflows 128
// bits (true for any n outside [0, 38]).
func uint128Pow10(n int) (uint128, bool) {
	if n < 0 || n >= len(pow10Table128) {
		return uint128Zero, true
	}
	return pow10Table128[n], false
}
