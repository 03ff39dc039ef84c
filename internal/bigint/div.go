package bigint

import "fmt"

// Long division in base 2^32. Both operands are first shifted left so the
// divisor's top limb has its high bit set, which makes the two-limb trial
// quotient accurate to within a couple of units. Each step subtracts
// qhat·divisor from the running remainder; if the subtraction borrows past
// the remainder's top limb the trial quotient was too large, and the
// add-back loop decrements it while restoring the overshoot.

// subChunkAt is subChunk on z's limbs, extending z with zero limbs first
// when the index lies beyond the current length. The extension keeps the
// wrap-around arithmetic identical to an infinitely zero-padded magnitude.
func (z *Int) subChunkAt(i int, val uint32) bool {
	if i >= len(z.chunks) {
		z.chunks = grow(z.chunks, i+1)
	}
	return subChunk(z.chunks, i, val)
}

// addChunkAt is addChunk on z's limbs with the same zero-extension rule.
func (z *Int) addChunkAt(i int, val uint32) bool {
	if i >= len(z.chunks) {
		z.chunks = grow(z.chunks, i+1)
	}
	return addChunk(z.chunks, i, val)
}

// divMulSub subtracts x·d, aligned at limb offset i, from r's magnitude.
// It reports whether the subtraction borrowed past r's top limb, i.e.
// whether x overshot the true quotient digit.
func divMulSub(r *Int, x uint64, d *Int, i int) bool {
	borrow := false
	for ; x != 0; x >>= 32 {
		y := uint64(uint32(x))
		for j, c := range d.chunks {
			z := uint64(c) * y
			if lo := uint32(z); lo != 0 && r.subChunkAt(i+j, lo) {
				borrow = true
			}
			if hi := uint32(z >> 32); hi != 0 && r.subChunkAt(i+j+1, hi) {
				borrow = true
			}
		}
		i++
	}
	r.normalize()
	return borrow
}

// divAddBack adds d, aligned at limb offset i, back onto r's magnitude.
// It reports whether a carry ran off r's top limb, which signals that the
// earlier overshoot has been fully restored.
func divAddBack(r *Int, d *Int, i int) bool {
	carry := false
	for j, c := range d.chunks {
		if c != 0 && r.addChunkAt(i+j, c) {
			carry = true
		}
	}
	r.normalize()
	return carry
}

// divmod computes the truncated-toward-zero quotient and remainder of a/b.
// b must be non-zero; DivMod performs the check. Neither operand is
// modified.
func divmod(a, b *Int) (q, r *Int) {
	r = a.Clone()
	d := b.Clone()
	q = &Int{neg: a.neg != b.neg}

	// Normalise: shift both operands so d's top limb has its high bit set.
	s := uint(32 - bitLen32(d.chunks[len(d.chunks)-1]))
	lsh(r, s)
	lsh(d, s)

	n := len(d.chunks)
	if len(r.chunks)+1 > n {
		q.chunks = make([]uint32, len(r.chunks)+1-n)
	}
	v1 := uint64(d.chunks[n-1])

	for i := len(r.chunks) - 1; i >= n-1; i-- {
		var uu uint64
		if i < len(r.chunks) {
			uu = uint64(r.chunks[i])
		}
		if i+1 < len(r.chunks) {
			uu |= uint64(r.chunks[i+1]) << 32
		}
		qhat := uu / v1
		j := i - n + 1
		if divMulSub(r, qhat, d, j) {
			for {
				qhat--
				if divAddBack(r, d, j) {
					break
				}
			}
		}
		if lo := uint32(qhat); lo != 0 {
			addChunkFast(q.chunks, j, lo)
		}
		if hi := uint32(qhat >> 32); hi != 0 {
			addChunkFast(q.chunks, j+1, hi)
		}
	}

	q.normalize()
	r.normalize()
	// The remainder's low s bits are zero by construction, so the signed
	// shift restores the exact pre-normalisation value.
	rsh(r, s)
	return q, r
}

// DivMod returns the quotient and remainder of a/b with a = q·b + r,
// |r| < |b|, sign(q) = sign(a)·sign(b) and sign(r) = sign(a). A zero
// divisor fails with ErrDivisionByZero.
func DivMod(a, b *Int) (q, r *Int, err error) {
	if len(b.chunks) == 0 {
		return nil, nil, fmt.Errorf("bigint: divmod: %w", ErrDivisionByZero)
	}
	q, r = divmod(a, b)
	return q, r, nil
}

// Div returns a / b, truncated toward zero.
func Div(a, b *Int) (*Int, error) {
	q, _, err := DivMod(a, b)
	return q, err
}

// Mod returns a % b; the result takes the sign of a.
func Mod(a, b *Int) (*Int, error) {
	_, r, err := DivMod(a, b)
	return r, err
}

// Div divides z by x in place, truncating toward zero. A zero divisor fails
// with ErrDivisionByZero and leaves z untouched.
func (z *Int) Div(x *Int) error {
	q, _, err := DivMod(z, x)
	if err != nil {
		return err
	}
	z.chunks, z.neg = q.chunks, q.neg
	return nil
}

// Mod reduces z modulo x in place. A zero divisor fails with
// ErrDivisionByZero and leaves z untouched.
func (z *Int) Mod(x *Int) error {
	_, r, err := DivMod(z, x)
	if err != nil {
		return err
	}
	z.chunks, z.neg = r.chunks, r.neg
	return nil
}
