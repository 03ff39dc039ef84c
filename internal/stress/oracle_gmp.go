//go:build gmp

// This file provides a GMP-backed oracle, conditionally compiled with the
// "gmp" build tag. The build tag architecture ensures that:
//   - Default builds need no cgo and no libgmp (math/big oracle)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// Cross-checking against a second, independently implemented bignum library
// catches the (unlikely) case of a shared bug between the engine and
// math/big's division or multiplication.

package stress

import (
	"math/big"

	"github.com/ncw/gmp"
)

// DefaultOracle returns the libgmp-backed oracle. Bitwise operators fall
// back to math/big: the gmp binding does not expose the signed
// two's-complement bitwise view.
func DefaultOracle() Oracle { return gmpOracle{} }

type gmpOracle struct {
	fallback bigOracle
}

// Name identifies the oracle.
func (gmpOracle) Name() string { return "gmp" }

// toGMP converts a math/big integer to a gmp integer.
func toGMP(x *big.Int) *gmp.Int {
	z := new(gmp.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

// fromGMP converts a gmp integer back to math/big.
func fromGMP(x *gmp.Int) *big.Int {
	z := new(big.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

// Apply evaluates one operation with libgmp, delegating the bitwise
// operators to the math/big fallback.
func (o gmpOracle) Apply(op string, x, y *big.Int) (*big.Int, error) {
	gx, gy := toGMP(x), toGMP(y)
	z := new(gmp.Int)
	switch op {
	case "+":
		z.Add(gx, gy)
	case "-":
		z.Sub(gx, gy)
	case "*":
		z.Mul(gx, gy)
	case "/":
		z.Quo(gx, gy)
	case "%":
		z.Rem(gx, gy)
	case "<<":
		z.Lsh(gx, uint(gy.Uint64()))
	case ">>":
		z.Rsh(gx, uint(gy.Uint64()))
	default:
		return o.fallback.Apply(op, x, y)
	}
	return fromGMP(z), nil
}
