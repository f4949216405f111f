package decimal

import (
	"errors"
	"testing"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		scale int
	}{
		{"0", "0", 0},
		{"-0", "0", 0},
		{"3.14", "3.14", 2},
		{"+3.14", "3.14", 2},
		{"-3.14", "-3.14", 2},
		{"  3.14  ", "3.14", 2},
		{"1.5e2", "150", 0},
		{"15e-1", "1.5", 1},
		{"100", "100", 0},
		{".5", "0.5", 1},
		{"5.", "5", 0},
		{"1E3", "1000", 0},
	}
	for _, c := range cases {
		d, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", c.in, err)
			continue
		}
		if got := d.String(); got != c.want {
			t.Errorf("Parse(%q).String() = %q, want %q", c.in, got, c.want)
		}
		if d.Scale() != c.scale {
			t.Errorf("Parse(%q).Scale() = %d, want %d", c.in, d.Scale(), c.scale)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"", "   ", "abc", "1.2.3", "1e", "1e+", "--1", "1-", ".", "e5"}
	for _, in := range cases {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidLiteral) {
			t.Errorf("Parse(%q): got err %v, want ErrInvalidLiteral", in, err)
		}
	}
}

func TestParsePrecisionLimit(t *testing.T) {
	// A fractional part longer than MaxPrecision digits exceeds the
	// declared scale limit.
	huge := make([]byte, MaxPrecision+2)
	for i := range huge {
		huge[i] = '1'
	}
	_, err := Parse("0." + string(huge))
	if !errors.Is(err, ErrPrecisionLimit) {
		t.Errorf("Parse with oversized fractional part: got %v, want ErrPrecisionLimit", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse(invalid) did not panic")
		}
	}()
	MustParse("not-a-number")
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "123.456", "0.001", "99999999999999999999999999999999999999"} {
		d := MustParse(s)
		if got := d.String(); got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
	}
}
