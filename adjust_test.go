package decimal

import "testing"

func TestRescalePad(t *testing.T) {
	z, err := MustParse("1.5").Rescale(4, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "1.5000" {
		t.Errorf("Rescale pad = %s, want 1.5000", z)
	}
}

func TestRescaleRoundHalfEven(t *testing.T) {
	// 1.5 rounded to 0 digits: half_even rounds to the even neighbor, 2.
	z, err := MustParse("1.5").Rescale(0, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "2" {
		t.Errorf("Rescale(1.5, 0, HalfEven) = %s, want 2", z)
	}
}

func TestRescaleRoundHalfDown(t *testing.T) {
	z, err := MustParse("1.5").Rescale(0, HalfDown)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "1" {
		t.Errorf("Rescale(1.5, 0, HalfDown) = %s, want 1", z)
	}
}

func TestRescaleOutOfRange(t *testing.T) {
	if _, err := MustParse("1").Rescale(-1, HalfEven); err == nil {
		t.Error("negative scale should error")
	}
	if _, err := MustParse("1").Rescale(MaxPrecision+1, HalfEven); err == nil {
		t.Error("scale beyond MaxPrecision should error")
	}
}

func TestRoundAndRoundToIntegral(t *testing.T) {
	x := MustParse("3.14159")
	r, err := x.Round(2, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "3.14" {
		t.Errorf("Round(2) = %s, want 3.14", r)
	}
	ri, err := x.RoundToIntegral(HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if ri.String() != "3" {
		t.Errorf("RoundToIntegral = %s, want 3", ri)
	}
}

func TestQuantize(t *testing.T) {
	x, other := MustParse("1.5"), MustParse("0.001")
	q, err := x.Quantize(other, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if q.Scale() != other.Scale() || q.String() != "1.500" {
		t.Errorf("Quantize = %s (scale %d), want 1.500 (scale 3)", q, q.Scale())
	}
}

func TestRescaleZeroValue(t *testing.T) {
	z, err := MustParse("0").Rescale(3, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "0.000" {
		t.Errorf("Rescale(0, 3) = %s, want 0.000", z)
	}
}
