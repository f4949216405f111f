package decimal

import (
	"fmt"
	"strings"
)

// String renders d in plain fixed-point notation: an optional "-", the
// integer digits, and if Scale() > 0 a "." followed by exactly Scale()
// fractional digits. This is the exact, lossless textual round-trip used
// by GoString and the %v/%s fmt verbs; Format (and FormatSpec) implement
// the richer, possibly-rounding presentation grammar.
func (d Decimal) String() string {
	s := d.coefficientString()
	if d.scale > 0 {
		if len(s) <= d.scale {
			s = zeros(d.scale-len(s)+1) + s
		}
		cut := len(s) - d.scale
		s = s[:cut] + "." + s[cut:]
	}
	if d.neg {
		s = "-" + s
	}
	return s
}

// Format implements fmt.Formatter. It supports the standard verbs 'v' and
// 's' (equivalent to String) and 'f'/'F' (fixed-point with fmt's own
// width/precision/sign flags applied), so a Decimal participates in the
// fmt ecosystem rather than only exposing a bespoke formatter.
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		writeFormatted(state, d.String(), state.Flag('+') && !d.neg && !d.IsZero())
	case 'f', 'F':
		prec := d.scale
		if p, ok := state.Precision(); ok {
			prec = p
		}
		rounded, err := d.Rescale(prec, GetDefaultRoundingMode())
		if err != nil {
			fmt.Fprintf(state, "%%!%c(decimal: %v)", verb, err)
			return
		}
		writeFormatted(state, rounded.String(), state.Flag('+') && !rounded.neg && !rounded.IsZero())
	default:
		fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, d.String())
	}
}

// writeFormatted applies fmt.State's width (left/right padded with
// spaces, '-' flag selects left alignment) after optionally prefixing a
// '+' for non-negative values.
func writeFormatted(state fmt.State, s string, plusPrefix bool) {
	if plusPrefix {
		s = "+" + s
	}
	if width, ok := state.Width(); ok && len(s) < width {
		pad := strings.Repeat(" ", width-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	fmt.Fprint(state, s)
}

// formatAlign names the four alignment modes of the "[[fill]align]"
// prefix in FormatSpec's grammar.
type formatAlign byte

const (
	alignNone   formatAlign = 0
	alignLeft   formatAlign = '<'
	alignRight  formatAlign = '>'
	alignCenter formatAlign = '^'
	alignSign   formatAlign = '='
)

type formatSpec struct {
	fill      rune
	align     formatAlign
	sign      byte // 0, '+', '-', ' '
	zeroPad   bool
	width     int
	grouped   bool
	hasPrec   bool
	prec      int
	kind      byte // 'f', 'F', 'n', '%', 0 (default 'f')
}

// parseFormatSpec parses the
//
//	[[fill]align][sign][0][width][,][.precision][type]
//
// mini-language, where type is one of "f", "F", "n" (fixed point grouped
// by the Locale, as if "," were given) or "%" (multiply by 100 and append
// "%").
// An empty spec is valid and equivalent to "f" at the value's own scale.
func parseFormatSpec(spec string) (formatSpec, error) {
	var fs formatSpec
	r := []rune(spec)
	i := 0

	if len(r) >= 2 && isAlignChar(r[1]) {
		fs.fill = r[0]
		fs.align = formatAlign(r[1])
		i = 2
	} else if len(r) >= 1 && isAlignChar(r[0]) {
		fs.align = formatAlign(r[0])
		i = 1
	}

	if i < len(r) && (r[i] == '+' || r[i] == '-' || r[i] == ' ') {
		fs.sign = byte(r[i])
		i++
	}

	if i < len(r) && r[i] == '0' {
		fs.zeroPad = true
		i++
	}

	widthStart := i
	for i < len(r) && r[i] >= '0' && r[i] <= '9' {
		i++
	}
	if i > widthStart {
		w := 0
		for _, c := range r[widthStart:i] {
			w = w*10 + int(c-'0')
		}
		fs.width = w
	}

	if i < len(r) && r[i] == ',' {
		fs.grouped = true
		i++
	}

	if i < len(r) && r[i] == '.' {
		i++
		precStart := i
		for i < len(r) && r[i] >= '0' && r[i] <= '9' {
			i++
		}
		if i == precStart {
			return formatSpec{}, fmt.Errorf("%w: %q", ErrInvalidFormat, spec)
		}
		p := 0
		for _, c := range r[precStart:i] {
			p = p*10 + int(c-'0')
		}
		fs.hasPrec = true
		fs.prec = p
	}

	if i < len(r) {
		switch r[i] {
		case 'f', 'F', 'n', '%':
			fs.kind = byte(r[i])
			i++
		default:
			return formatSpec{}, fmt.Errorf("%w: %q", ErrInvalidFormat, spec)
		}
	}

	if i != len(r) {
		return formatSpec{}, fmt.Errorf("%w: %q", ErrInvalidFormat, spec)
	}
	return fs, nil
}

func isAlignChar(r rune) bool {
	switch r {
	case '<', '>', '^', '=':
		return true
	}
	return false
}

// FormatSpec renders d according to the "[[fill]align][sign][0][width]
// [,][.precision][type]" grammar using loc for the radix point and digit
// grouping, and mode to round when precision shrinks the scale. This is
// a Python-style mini-language, giving embedders a richer presentation
// surface than the fmt verb flags alone.
func (d Decimal) FormatSpec(spec string, loc Locale, mode RoundingMode) (string, error) {
	fs, err := parseFormatSpec(spec)
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = DefaultLocale
	}

	v := d
	if fs.kind == '%' {
		hundred := MustParse("100")
		v, err = v.Mul(hundred)
		if err != nil {
			return "", err
		}
	}

	prec := v.scale
	if fs.hasPrec {
		prec = fs.prec
	}
	v, err = v.Rescale(prec, mode)
	if err != nil {
		return "", err
	}

	digits := v.coefficientString()
	if v.scale > 0 {
		if len(digits) <= v.scale {
			digits = zeros(v.scale-len(digits)+1) + digits
		}
	}
	intPart := digits
	fracPart := ""
	if v.scale > 0 {
		cut := len(digits) - v.scale
		intPart, fracPart = digits[:cut], digits[cut:]
	}

	if (fs.grouped || fs.kind == 'n') && loc.GroupSize() > 0 {
		intPart = groupDigits(intPart, loc.GroupSeparator(), loc.GroupSize())
	}

	body := intPart
	if fracPart != "" {
		body += loc.DecimalPoint() + fracPart
	}

	sign := ""
	switch {
	case v.neg:
		sign = "-"
	case fs.sign == '+':
		sign = "+"
	case fs.sign == ' ':
		sign = " "
	}

	if fs.kind == '%' {
		body += "%"
	}

	return padFormatted(sign, body, fs, loc), nil
}

// groupDigits inserts sep every groupSize digits, counting from the
// least-significant digit, e.g. groupDigits("1234567", ",", 3) ==
// "1,234,567".
func groupDigits(s, sep string, groupSize int) string {
	if len(s) <= groupSize {
		return s
	}
	var b strings.Builder
	first := len(s) % groupSize
	if first == 0 {
		first = groupSize
	}
	b.WriteString(s[:first])
	for i := first; i < len(s); i += groupSize {
		b.WriteString(sep)
		b.WriteString(s[i : i+groupSize])
	}
	return b.String()
}

// padFormatted assembles sign+body, then applies zero-padding (sign-
// aware, placed between the sign and the digits) or fill/align padding
// to reach fs.width.
func padFormatted(sign, body string, fs formatSpec, loc Locale) string {
	total := len(sign) + len(body)
	if fs.width <= total {
		return sign + body
	}
	padLen := fs.width - total

	if fs.zeroPad && fs.align == alignNone {
		return sign + strings.Repeat("0", padLen) + body
	}

	fill := " "
	if fs.fill != 0 {
		fill = string(fs.fill)
	}
	pad := strings.Repeat(fill, padLen)

	align := fs.align
	if align == alignNone {
		align = alignRight
	}
	switch align {
	case alignLeft:
		return sign + body + pad
	case alignCenter:
		left := padLen / 2
		right := padLen - left
		return strings.Repeat(fill, left) + sign + body + strings.Repeat(fill, right)
	case alignSign:
		return sign + pad + body
	default: // alignRight
		return pad + sign + body
	}
}
