package bigint

import "fmt"

// Bitwise operations expose two's-complement semantics. The two's-complement
// view of a negative value is derived on the fly: while walking the limbs, a
// running borrow subtracts one from the magnitude and each limb is
// complemented, which is exactly −m = ~(m−1) streamed least-significant-limb
// first. Negative results are re-encoded to sign-magnitude with the same
// trick on the output side.

// lsh shifts z's magnitude left by n bits in place and returns z.
// The sign is untouched.
func lsh(z *Int, n uint) *Int {
	if n == 0 || len(z.chunks) == 0 {
		return z
	}
	off := int(n / 32)
	s := n % 32
	z.chunks = grow(z.chunks, len(z.chunks)+ceilDiv(int(n), 32))
	for i := len(z.chunks) - 1; i >= 0; i-- {
		var x uint32
		if i >= off {
			x = z.chunks[i-off] << s
		}
		if s != 0 && i >= off+1 {
			x |= z.chunks[i-off-1] >> (32 - s)
		}
		z.chunks[i] = x
	}
	z.normalize()
	return z
}

// rsh arithmetically shifts z right by n bits in place: the result is
// ⌊z / 2^n⌋ for either sign. For negative z the identity
// ⌊−m/2^n⌋ = −((m−1)>>n + 1) is applied by borrowing one from the magnitude
// before the logical shift and adding it back after. Shifting every bit out
// of a negative value leaves −1.
func rsh(z *Int, n uint) *Int {
	if n == 0 {
		return z
	}
	if n >= uint(len(z.chunks))*32 {
		z.chunks = z.chunks[:0]
		if z.neg {
			z.chunks = grow(z.chunks, 1)
			z.chunks[0] = 1
		}
		return z
	}
	if z.neg {
		subChunkFast(z.chunks, 0, 1)
	}
	off := int(n / 32)
	s := n % 32
	for i := range z.chunks {
		var x uint32
		if i+off < len(z.chunks) {
			x = z.chunks[i+off] >> s
		}
		if s != 0 && i+off+1 < len(z.chunks) {
			x |= z.chunks[i+off+1] << (32 - s)
		}
		z.chunks[i] = x
	}
	if z.neg {
		addChunkFast(z.chunks, 0, 1)
	}
	z.normalize()
	return z
}

// Shl shifts z left by n bits in place. Negative counts fail with
// ErrNegativeShift and leave z untouched.
func (z *Int) Shl(n int64) error {
	if n < 0 {
		return fmt.Errorf("bigint: shift by %d: %w", n, ErrNegativeShift)
	}
	lsh(z, uint(n))
	return nil
}

// Shr arithmetically shifts z right by n bits in place. Negative counts fail
// with ErrNegativeShift and leave z untouched.
func (z *Int) Shr(n int64) error {
	if n < 0 {
		return fmt.Errorf("bigint: shift by %d: %w", n, ErrNegativeShift)
	}
	rsh(z, uint(n))
	return nil
}

// Shl returns x << n. x is not modified.
func Shl(x *Int, n int64) (*Int, error) {
	z := x.Clone()
	if err := z.Shl(n); err != nil {
		return nil, err
	}
	return z, nil
}

// Shr returns x >> n. x is not modified.
func Shr(x *Int, n int64) (*Int, error) {
	z := x.Clone()
	if err := z.Shr(n); err != nil {
		return nil, err
	}
	return z, nil
}

// bitwiseAssign applies fn limb-wise over the two's-complement views of z
// and x, storing the re-encoded result in z. The sign of the result is fn
// applied to the operand sign words.
func (z *Int) bitwiseAssign(x *Int, fn func(a, b uint32) uint32) {
	var sa, sb uint32
	if z.neg {
		sa = ^uint32(0)
	}
	if x.neg {
		sb = ^uint32(0)
	}
	resNeg := fn(sa, sb) != 0

	n := max(len(z.chunks), len(x.chunks))
	if resNeg {
		// Room for the magnitude increment when re-encoding −(v+1).
		n++
	}
	z.chunks = grow(z.chunks, n)

	zBorrow, xBorrow, resBorrow := z.neg, x.neg, resNeg
	for i := range z.chunks {
		a := z.chunks[i]
		if z.neg {
			if zBorrow {
				a--
				zBorrow = a == ^uint32(0)
			}
			a = ^a
		}
		var b uint32
		if i < len(x.chunks) {
			b = x.chunks[i]
		}
		if x.neg {
			if xBorrow {
				b--
				xBorrow = b == ^uint32(0)
			}
			b = ^b
		}
		a = fn(a, b)
		if resNeg {
			if resBorrow {
				a--
				resBorrow = a == ^uint32(0)
			}
			a = ^a
		}
		z.chunks[i] = a
	}
	z.neg = resNeg
	z.normalize()
}

// And sets z to z AND x and returns z. z.And(z) is a no-op.
func (z *Int) And(x *Int) *Int {
	if z == x {
		return z
	}
	z.bitwiseAssign(x, func(a, b uint32) uint32 { return a & b })
	return z
}

// Or sets z to z OR x and returns z. z.Or(z) is a no-op.
func (z *Int) Or(x *Int) *Int {
	if z == x {
		return z
	}
	z.bitwiseAssign(x, func(a, b uint32) uint32 { return a | b })
	return z
}

// Xor sets z to z XOR x and returns z. z.Xor(z) short-circuits to zero.
func (z *Int) Xor(x *Int) *Int {
	if z == x {
		return z.setZero()
	}
	z.bitwiseAssign(x, func(a, b uint32) uint32 { return a ^ b })
	return z
}

// Not complements z in place and returns z, per the identity ~v = −(v+1).
func (z *Int) Not() *Int {
	if z.neg {
		subChunkFast(z.chunks, 0, 1)
	} else {
		z.chunks = grow(z.chunks, len(z.chunks)+1)
		addChunkFast(z.chunks, 0, 1)
	}
	z.neg = !z.neg
	z.normalize()
	return z
}

// And returns a AND b. Neither operand is modified.
func And(a, b *Int) *Int {
	if len(b.chunks) > len(a.chunks) {
		a, b = b, a
	}
	return a.Clone().And(b)
}

// Or returns a OR b. Neither operand is modified.
func Or(a, b *Int) *Int {
	if len(b.chunks) > len(a.chunks) {
		a, b = b, a
	}
	return a.Clone().Or(b)
}

// Xor returns a XOR b. Neither operand is modified.
func Xor(a, b *Int) *Int {
	if a == b {
		return New()
	}
	if len(b.chunks) > len(a.chunks) {
		a, b = b, a
	}
	return a.Clone().Xor(b)
}

// Not returns ~x. x is not modified.
func Not(x *Int) *Int { return x.Clone().Not() }
