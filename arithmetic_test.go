package decimal

import (
	"errors"
	"testing"
)

func TestAddSub(t *testing.T) {
	cases := []struct {
		x, y, wantAdd, wantSub string
	}{
		{"1", "2", "3", "-1"},
		{"1.1", "2.22", "3.32", "-1.12"},
		{"0.1", "0.2", "0.3", "-0.1"},
		{"-5", "3", "-2", "-8"},
		{"5", "5", "10", "0"},
	}
	for _, c := range cases {
		x, y := MustParse(c.x), MustParse(c.y)
		sum, err := x.Add(y)
		if err != nil {
			t.Fatalf("Add(%s,%s): %v", c.x, c.y, err)
		}
		if got := sum.String(); got != c.wantAdd {
			t.Errorf("%s+%s = %s, want %s", c.x, c.y, got, c.wantAdd)
		}
		diff, err := x.Sub(y)
		if err != nil {
			t.Fatalf("Sub(%s,%s): %v", c.x, c.y, err)
		}
		if got := diff.String(); got != c.wantSub {
			t.Errorf("%s-%s = %s, want %s", c.x, c.y, got, c.wantSub)
		}
	}
}

func TestAddScaleIsMax(t *testing.T) {
	x, y := MustParse("1.1"), MustParse("2.22")
	sum, err := x.Add(y)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Scale() != 2 {
		t.Errorf("Add scale = %d, want 2", sum.Scale())
	}
}

func TestMul(t *testing.T) {
	cases := []struct {
		x, y, want string
		scale      int
	}{
		{"2", "3", "6", 0},
		{"1.5", "2", "3.0", 1},
		{"0.1", "0.1", "0.01", 2},
		{"-2", "3", "-6", 0},
	}
	for _, c := range cases {
		x, y := MustParse(c.x), MustParse(c.y)
		z, err := x.Mul(y)
		if err != nil {
			t.Fatalf("Mul(%s,%s): %v", c.x, c.y, err)
		}
		if got := z.String(); got != c.want {
			t.Errorf("%s*%s = %s, want %s", c.x, c.y, got, c.want)
		}
		if z.Scale() != c.scale {
			t.Errorf("%s*%s scale = %d, want %d", c.x, c.y, z.Scale(), c.scale)
		}
	}
}

func TestMulPrecisionLimit(t *testing.T) {
	// Two operands whose combined scale exceeds MaxPrecision.
	a := MustParse("0." + repeatDigit('1', 40))
	b := MustParse("0." + repeatDigit('1', 40))
	_, err := a.Mul(b)
	if !errors.Is(err, ErrPrecisionLimit) {
		t.Errorf("Mul exceeding MaxPrecision: got %v, want ErrPrecisionLimit", err)
	}
}

func repeatDigit(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

func TestCmpAndComparisons(t *testing.T) {
	a, b := MustParse("1.00"), MustParse("1.0")
	if !a.Equal(b) {
		t.Error("1.00 should equal 1.0")
	}
	lo, hi := MustParse("1"), MustParse("2")
	if !lo.Less(hi) || hi.Less(lo) {
		t.Error("Less is wrong")
	}
	if !lo.LessEqual(hi) || !lo.LessEqual(lo) {
		t.Error("LessEqual is wrong")
	}
	if !hi.Greater(lo) || lo.Greater(hi) {
		t.Error("Greater is wrong")
	}
	if !hi.GreaterEqual(lo) || !hi.GreaterEqual(hi) {
		t.Error("GreaterEqual is wrong")
	}
}

func TestQuoRemTruncated(t *testing.T) {
	x, y := MustParse("7"), MustParse("-2")
	q, r, err := x.QuoRem(y)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "-3" || r.String() != "1" {
		t.Errorf("QuoRem(7,-2) = (%s,%s), want (-3,1)", q, r)
	}
	if r.Sign() != x.Sign() {
		t.Error("QuoRem remainder must share the dividend's sign")
	}
}

func TestDivModFloored(t *testing.T) {
	x, y := MustParse("7"), MustParse("-2")
	q, r, err := x.DivMod(y)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "-4" || r.String() != "-1" {
		t.Errorf("DivMod(7,-2) = (%s,%s), want (-4,-1)", q, r)
	}
	if r.Sign() != y.Sign() {
		t.Error("DivMod remainder must share the divisor's sign")
	}
}

func TestQuoRemPositiveOperands(t *testing.T) {
	x, y := MustParse("7"), MustParse("2")
	q, r, err := x.QuoRem(y)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "3" || r.String() != "1" {
		t.Errorf("QuoRem(7,2) = (%s,%s), want (3,1)", q, r)
	}
}

func TestDivideByZero(t *testing.T) {
	x, zero := MustParse("1"), Zero
	if _, err := x.Quo(zero, 2, HalfEven); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Quo by zero: got %v", err)
	}
	if _, _, err := x.QuoRem(zero); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("QuoRem by zero: got %v", err)
	}
	if _, _, err := x.DivMod(zero); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("DivMod by zero: got %v", err)
	}
}

func TestQuoRounding(t *testing.T) {
	one, three := MustParse("1"), MustParse("3")
	z, err := one.Quo(three, 5, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "0.33333" {
		t.Errorf("1/3 to 5 places = %s, want 0.33333", z)
	}
}

func TestModAndFloorDiv(t *testing.T) {
	x, y := MustParse("7.5"), MustParse("-2")
	m, err := x.Mod(y)
	if err != nil {
		t.Fatal(err)
	}
	if m.Sign() != x.Sign() {
		t.Error("Mod should share truncated-division remainder sign with x")
	}
	fd, err := x.FloorDiv(y)
	if err != nil {
		t.Fatal(err)
	}
	if fd.String() != "-4" {
		t.Errorf("FloorDiv(7.5,-2) = %s, want -4", fd)
	}
}

func TestPowIntPositive(t *testing.T) {
	x := MustParse("2")
	z, err := x.PowInt(10)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "1024" {
		t.Errorf("2^10 = %s, want 1024", z)
	}
}

func TestPowIntZero(t *testing.T) {
	z, err := MustParse("0").PowInt(0)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "1" {
		t.Errorf("0^0 = %s, want 1", z)
	}
}

func TestPowIntNegativeTerminating(t *testing.T) {
	x := MustParse("2")
	z, err := x.PowInt(-2)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "0.25" {
		t.Errorf("2^-2 = %s, want 0.25", z)
	}
}

func TestPowIntNegativeNonTerminating(t *testing.T) {
	x := MustParse("3")
	_, err := x.PowInt(-1)
	if !errors.Is(err, ErrCannotRepresent) {
		t.Errorf("3^-1: got %v, want ErrCannotRepresent", err)
	}
}

func TestLargeDigitArrayPath(t *testing.T) {
	// 2^200 overflows the shifted-int tier and forces the digit-array
	// escape path; confirm Sub recombines correctly across that escape.
	two := MustParse("2")
	big, err := two.PowInt(200)
	if err != nil {
		t.Fatal(err)
	}
	one := MustParse("1")
	diff, err := big.Sub(one)
	if err != nil {
		t.Fatal(err)
	}
	sum, err := diff.Add(one)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Equal(big) {
		t.Errorf("(2^200 - 1) + 1 != 2^200: got %s", sum)
	}
}
