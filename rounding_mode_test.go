package decimal

import (
	"errors"
	"testing"
)

func TestRoundingModeString(t *testing.T) {
	cases := map[RoundingMode]string{
		HalfEven:   "half_even",
		HalfUp:     "half_up",
		HalfDown:   "half_down",
		Up:         "up",
		Down:       "down",
		Ceiling:    "ceiling",
		Floor:      "floor",
		ZeroFiveUp: "05up",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}

func TestSetGetDefaultRoundingMode(t *testing.T) {
	orig := GetDefaultRoundingMode()
	defer SetDefaultRoundingMode(orig)

	if err := SetDefaultRoundingMode(Ceiling); err != nil {
		t.Fatal(err)
	}
	if GetDefaultRoundingMode() != Ceiling {
		t.Error("SetDefaultRoundingMode did not take effect")
	}
	if err := SetDefaultRoundingMode(RoundingMode(99)); !errors.Is(err, ErrInvalidRoundingMode) {
		t.Errorf("SetDefaultRoundingMode(99): got %v, want ErrInvalidRoundingMode", err)
	}
}

func TestLocaleDefault(t *testing.T) {
	if DefaultLocale.DecimalPoint() != "." {
		t.Error("default locale decimal point should be \".\"")
	}
	if DefaultLocale.GroupSeparator() != "," {
		t.Error("default locale group separator should be \",\"")
	}
	if DefaultLocale.GroupSize() != 3 {
		t.Error("default locale group size should be 3")
	}
}
