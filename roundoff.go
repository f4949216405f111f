package decimal

import "strings"

// roundDecimalDigits drops the last `drop` digits of the unsigned decimal
// digit string s, applying mode's rounding rule with sign neg, and returns
// the resulting unsigned decimal digit string (which may be one digit
// longer than len(s)-drop if rounding carries out of the top, e.g. "995"
// dropping 2 digits under Up becomes "10").
//
// This works directly on decimal text rather than limb arithmetic: the
// "2*remainder vs divisor" compare the rounding kernel needs reduces, for a
// plain trailing-digit truncation, to a same-length lexicographic compare
// of the dropped digits against "5000...0" -- exactly as reliable as the
// numeric comparison and far easier to verify by inspection than
// hand-rolled multi-limb arithmetic.
func roundDecimalDigits(s string, drop int, mode RoundingMode, neg bool) string {
	if drop <= 0 {
		return s
	}
	if len(s) <= drop {
		s = strings.Repeat("0", drop-len(s)+1) + s
	}
	cut := len(s) - drop
	kept := s[:cut]
	dropped := s[cut:]

	remZero := isAllZero(dropped)
	half := "5" + strings.Repeat("0", drop-1)
	cmp := remainderCmp(strings.Compare(dropped, half))
	lastDigit := int(kept[len(kept)-1] - '0')

	dir := roundQuotient(mode, neg, remZero, cmp, lastDigit)
	if dir == roundDown {
		return trimLeadingZeros(kept)
	}
	return trimLeadingZeros(incrementDecimalDigits(kept))
}

func isAllZero(s string) bool {
	for _, c := range s {
		if c != '0' {
			return false
		}
	}
	return true
}

// trimLeadingZeros removes leading zero digits, keeping at least one
// digit ("0" for an all-zero string).
func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// incrementDecimalDigits adds 1 to an unsigned decimal digit string,
// growing its length by one on a full carry-out (e.g. "999" -> "1000").
func incrementDecimalDigits(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
