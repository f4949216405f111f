package decimal

import "math/big"

// BigInt is the arbitrary-precision integer type used for
// numerator/denominator interop at the public boundary; an alias for
// *math/big.Int plus the handful of free functions below that bridge it
// to the digits/uint128 tiers.
type BigInt = big.Int

// bigIntFromDigits converts a digits magnitude to a *big.Int, used by
// AsIntegerRatio/AsTuple to hand callers a standard-library integer
// instead of our internal limb representation.
func bigIntFromDigits(neg bool, d digits) *BigInt {
	s := d.decimalString()
	z := new(big.Int)
	z.SetString(s, 10)
	if neg {
		z.Neg(z)
	}
	return z
}
