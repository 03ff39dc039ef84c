package bigint

import "fmt"

// Pow returns base raised to exp by square-and-multiply. A negative exponent
// fails with ErrNegativeExponent; Pow(x, 0) is 1 for every x.
func Pow(base *Int, exp int64) (*Int, error) {
	if exp < 0 {
		return nil, fmt.Errorf("bigint: pow exponent %d: %w", exp, ErrNegativeExponent)
	}
	z := FromInt64(1)
	b := base.Clone()
	for exp > 0 {
		if exp&1 == 1 {
			z.Mul(b)
		}
		exp >>= 1
		if exp > 0 {
			b.Mul(b)
		}
	}
	return z, nil
}
