package decimal

import "testing"

func TestUint128AddSub(t *testing.T) {
	x := uint128{lo: ^uint64(0), hi: 0}
	y := uint128{lo: 1}
	sum, overflow := x.add(y)
	if overflow || sum.lo != 0 || sum.hi != 1 {
		t.Fatalf("add carry: got %+v overflow=%v", sum, overflow)
	}
	back, borrow := sum.sub(y)
	if borrow || back.cmp(x) != 0 {
		t.Fatalf("sub: got %+v borrow=%v, want %+v", back, borrow, x)
	}
	if _, overflow := maxUint128.add(uint128One); !overflow {
		t.Fatal("maxUint128 + 1 should overflow")
	}
}

func TestUint128Mul64x64(t *testing.T) {
	p := mul64x64(1_000_000_000_000, 1_000_000_000_000)
	want := uint128{lo: 2003764205206896640, hi: 54210} // 10^24
	if p.cmp(want) != 0 {
		t.Fatalf("mul64x64(1e12,1e12) = %+v, want %+v", p, want)
	}
}

func TestUint128Mul128Overflow(t *testing.T) {
	big, _ := uint128Pow10(20)
	_, overflow := big.mul128(big)
	if !overflow {
		t.Fatal("10^20 * 10^20 should overflow 128 bits")
	}
	ten, _ := uint128Pow10(1)
	thirtyEight, _ := uint128Pow10(38)
	_, overflow = thirtyEight.mul128(ten)
	if !overflow {
		t.Fatal("10^38 * 10 should overflow 128 bits")
	}
}

func TestUint128Divmod64(t *testing.T) {
	x, _ := uint128Pow10(20)
	q, r := x.divmod64(digitsBase)
	wantQ, _ := uint128Pow10(1)
	if q.cmp(wantQ) != 0 || r != 0 {
		t.Fatalf("10^20 / 10^19 = %+v rem %d, want %+v rem 0", q, r, wantQ)
	}
}

func TestUint128Pow10Table(t *testing.T) {
	v, overflow := uint128Pow10(0)
	if overflow || v.cmp(uint128One) != 0 {
		t.Fatalf("10^0 = %+v overflow=%v", v, overflow)
	}
	if _, overflow := uint128Pow10(39); !overflow {
		t.Fatal("10^39 should overflow a uint128")
	}
	if _, overflow := uint128Pow10(-1); !overflow {
		t.Fatal("10^-1 should report overflow (undefined)")
	}
}

func TestUint128ShlShr(t *testing.T) {
	x := uint128{lo: 1}
	y, overflow := x.shl(64)
	if overflow || y.lo != 0 || y.hi != 1 {
		t.Fatalf("1<<64 = %+v overflow=%v", y, overflow)
	}
	back := y.shr(64)
	if back.cmp(x) != 0 {
		t.Fatalf("(1<<64)>>64 = %+v, want %+v", back, x)
	}
}

func TestUint128FitsUint64(t *testing.T) {
	x := uint128{lo: 42}
	if v, ok := x.fitsUint64(); !ok || v != 42 {
		t.Fatalf("fitsUint64() = %d, %v", v, ok)
	}
	y := uint128{lo: 1, hi: 1}
	if _, ok := y.fitsUint64(); ok {
		t.Fatal("value with nonzero hi should not fit in uint64")
	}
}
