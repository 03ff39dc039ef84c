package bigint_test

import (
	"math/big"
	"testing"

	"github.com/agbru/bigcalc/internal/bigint"
)

// The fuzz targets below compare every operation against math/big as a
// reference oracle. Operands are carved out of the raw fuzz input: the first
// byte picks the signs, the rest splits into two magnitudes.

func operandsFromBytes(data []byte) (x, y *bigint.Int, bx, by *big.Int, ok bool) {
	if len(data) < 3 {
		return nil, nil, nil, nil, false
	}
	signs := data[0]
	rest := data[1:]
	half := len(rest) / 2

	bx = new(big.Int).SetBytes(rest[:half])
	by = new(big.Int).SetBytes(rest[half:])
	if signs&1 != 0 {
		bx.Neg(bx)
	}
	if signs&2 != 0 {
		by.Neg(by)
	}

	var err error
	if x, err = bigint.ParseDecimal(bx.String()); err != nil {
		return nil, nil, nil, nil, false
	}
	if y, err = bigint.ParseDecimal(by.String()); err != nil {
		return nil, nil, nil, nil, false
	}
	return x, y, bx, by, true
}

func fuzzSeeds(f *testing.F) {
	f.Add([]byte{0, 1, 2})
	f.Add([]byte{1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{3, 0xde, 0xad, 0xbe, 0xef, 0xca, 0xfe, 0xba, 0xbe, 0x01, 0x02, 0x03, 0x04})
	for _, size := range []int{16, 64, 256, 1024} {
		data := make([]byte, 2*size+1)
		for i := range data {
			data[i] = byte(i*37 + 11)
		}
		f.Add(data)
	}
}

func FuzzAddSubOracle(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		x, y, bx, by, ok := operandsFromBytes(data)
		if !ok {
			return
		}
		if got, want := bigint.Add(x, y).String(), new(big.Int).Add(bx, by).String(); got != want {
			t.Errorf("Add: got %s, want %s", got, want)
		}
		if got, want := bigint.Sub(x, y).String(), new(big.Int).Sub(bx, by).String(); got != want {
			t.Errorf("Sub: got %s, want %s", got, want)
		}
	})
}

func FuzzMulOracle(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		x, y, bx, by, ok := operandsFromBytes(data)
		if !ok {
			return
		}
		if got, want := bigint.Mul(x, y).String(), new(big.Int).Mul(bx, by).String(); got != want {
			t.Errorf("Mul(%s, %s): got %s, want %s", bx, by, got, want)
		}
	})
}

func FuzzDivModOracle(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		x, y, bx, by, ok := operandsFromBytes(data)
		if !ok || y.IsZero() {
			return
		}
		q, r, err := bigint.DivMod(x, y)
		if err != nil {
			t.Fatalf("DivMod(%s, %s): %v", bx, by, err)
		}
		// math/big's Quo and Rem use the same truncated-toward-zero contract.
		wantQ, wantR := new(big.Int).QuoRem(bx, by, new(big.Int))
		if q.String() != wantQ.String() || r.String() != wantR.String() {
			t.Errorf("DivMod(%s, %s) = (%s, %s), want (%s, %s)", bx, by, q, r, wantQ, wantR)
		}
	})
}

func FuzzBitwiseOracle(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		x, y, bx, by, ok := operandsFromBytes(data)
		if !ok {
			return
		}
		if got, want := bigint.And(x, y).String(), new(big.Int).And(bx, by).String(); got != want {
			t.Errorf("And(%s, %s): got %s, want %s", bx, by, got, want)
		}
		if got, want := bigint.Or(x, y).String(), new(big.Int).Or(bx, by).String(); got != want {
			t.Errorf("Or(%s, %s): got %s, want %s", bx, by, got, want)
		}
		if got, want := bigint.Xor(x, y).String(), new(big.Int).Xor(bx, by).String(); got != want {
			t.Errorf("Xor(%s, %s): got %s, want %s", bx, by, got, want)
		}
		if got, want := bigint.Not(x).String(), new(big.Int).Not(bx).String(); got != want {
			t.Errorf("Not(%s): got %s, want %s", bx, got, want)
		}
	})
}

func FuzzShiftOracle(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 4 {
			return
		}
		n := int64(data[len(data)-1]) | int64(data[len(data)-2]&3)<<8
		x, _, bx, _, ok := operandsFromBytes(data[:len(data)-2])
		if !ok {
			return
		}
		left, err := bigint.Shl(x, n)
		if err != nil {
			t.Fatalf("Shl(%s, %d): %v", bx, n, err)
		}
		if want := new(big.Int).Lsh(bx, uint(n)); left.String() != want.String() {
			t.Errorf("Shl(%s, %d): got %s, want %s", bx, n, left, want)
		}
		right, err := bigint.Shr(x, n)
		if err != nil {
			t.Fatalf("Shr(%s, %d): %v", bx, n, err)
		}
		if want := new(big.Int).Rsh(bx, uint(n)); right.String() != want.String() {
			t.Errorf("Shr(%s, %d): got %s, want %s", bx, n, right, want)
		}
	})
}

func FuzzDecimalRoundTrip(f *testing.F) {
	f.Add("0")
	f.Add("-1")
	f.Add("930350724101083004")
	f.Add("-141568561781325403383098860354483467178")
	f.Fuzz(func(t *testing.T, s string) {
		x, err := bigint.ParseDecimal(s)
		oracle, ok := new(big.Int).SetString(s, 10)
		// The package accepts exactly what the oracle accepts, minus the
		// forms the grammar excludes (leading +, underscores are already
		// rejected by both).
		if err != nil {
			return
		}
		if !ok {
			t.Fatalf("ParseDecimal accepted %q but the oracle rejects it", s)
		}
		if x.String() != oracle.String() {
			t.Errorf("ParseDecimal(%q) = %s, oracle %s", s, x, oracle)
		}
	})
}
