//go:build !gmp

package stress

// DefaultOracle returns the math/big reference oracle. Builds with the
// "gmp" tag substitute the libgmp-backed one.
func DefaultOracle() Oracle { return bigOracle{} }
