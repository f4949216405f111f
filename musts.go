package decimal

import "fmt"

// MustAdd is like [Decimal.Add] but panics on error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics on error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics on error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics on error.
func (d Decimal) MustQuo(e Decimal, scale int, mode RoundingMode) Decimal {
	f, err := d.Quo(e, scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustRescale is like [Decimal.Rescale] but panics on error.
func (d Decimal) MustRescale(scale int, mode RoundingMode) Decimal {
	f, err := d.Rescale(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustRescale(%v) failed: %v", d, err))
	}
	return f
}
