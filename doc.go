/*
Package decimal implements a base-10 fixed-point numeric type with
correctly-rounded arithmetic, aimed at transactional and financial code
where float64's binary rounding error is unacceptable.

# Internal Representation

A Decimal is sign * coefficient * 10^-scale, where sign is a bool, scale
is a non-negative declared count of fractional digits, and coefficient is
an unsigned integer held in one of two bodies:

  - a 128-bit "shifted-int" body, used whenever the coefficient fits;
  - a heap-allocated base-1e19 digit array, used once it doesn't.

Every operation tries the 128-bit body first and escalates to the digit
array only on overflow, so the common case (coefficients under ~38
decimal digits) never allocates. A value's scale is independent of which
body holds its coefficient: 1, 1.0 and 1.00 are distinct Decimals with
scales 0, 1 and 2, all comparing equal under Cmp/Equal.

Decimals are immutable after construction and safe to share across
goroutines; every operation takes its operands by value and returns a new
Decimal.

# Constraints

MaxPrecision (65) bounds the declared scale any Decimal may carry.
Coefficient magnitude has no fixed bound beyond an internal limb-count
safety limit (maxDigitsLimbs): arithmetic on values that exceed it returns
ErrInternalLimit rather than allocating without bound.

Special values such as NaN, infinities or signed zero are not supported;
arithmetic operations either return a valid Decimal or an error.

# Arithmetic

Add, Sub, Mul, Cmp and PowInt are exact -- they never round, and their
result's scale follows directly from the operands' scales (sum for Mul,
max for Add/Sub/Cmp). Quo (true division) and Rescale (precision
adjustment, including Round/RoundToIntegral/Quantize) are the two lossy
operations; both take an explicit RoundingMode and do not consult the
process-wide default from GetDefaultRoundingMode, which is read only by
the 'f'/'F' fmt verbs and by FromReal's inexact fallback. QuoRem and
DivMod perform exact integer division with a remainder, following C/truncated and Python/floored
division conventions respectively.

# Rounding modes

Eight modes are defined: HalfEven (the zero value and process default),
HalfUp, HalfDown, Up, Down, Ceiling, Floor and ZeroFiveUp. See
RoundingMode's documentation for the exact tie-breaking rule each one
applies.

# Parsing and formatting

Parse reads the grammar "[sign] digits [\".\" digits] [(\"e\"|\"E\")
[sign] digits]", where either the integer or the fractional digits may be
empty but not both (".5" and "5." are accepted), with surrounding
whitespace ignored. String renders the exact value in plain fixed-point
notation. FormatSpec implements a richer, Python-style mini-language,
"[[fill]align][sign][0][width][,][.precision][type]", for callers that
need locale-aware grouping or a target precision at render time; Decimal
also implements fmt.Formatter for the standard 'v', 's', 'f' and 'F'
verbs.

[ANSI X3.274-1996]: https://speleotrove.com/decimal/
*/
package decimal
