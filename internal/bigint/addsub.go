package bigint

// magAdd adds x's magnitude into z's. Signs are the caller's problem.
func (z *Int) magAdd(x *Int) {
	z.chunks = grow(z.chunks, max(len(z.chunks), len(x.chunks))+1)
	for i, c := range x.chunks {
		if c != 0 {
			addChunkFast(z.chunks, i, c)
		}
	}
	z.normalize()
}

// magSub subtracts x's magnitude from z's. If x's magnitude was the larger,
// the wrapped result is complemented back to a positive magnitude and z's
// sign is toggled.
func (z *Int) magSub(x *Int) {
	if len(z.chunks) <= len(x.chunks) {
		z.chunks = grow(z.chunks, len(x.chunks))
	}
	borrow := false
	for i, c := range x.chunks {
		if c != 0 && subChunk(z.chunks, i, c) {
			borrow = true
		}
	}
	if borrow {
		for i := range z.chunks {
			z.chunks[i] = ^z.chunks[i]
		}
		addChunkFast(z.chunks, 0, 1)
		z.neg = !z.neg
	}
	z.normalize()
}

// magSubFast subtracts x's magnitude from z's when z is known to have the
// strictly larger limb count: the borrow then always dies inside z.
func (z *Int) magSubFast(x *Int) {
	for i, c := range x.chunks {
		if c != 0 {
			subChunkFast(z.chunks, i, c)
		}
	}
	z.normalize()
}

// Add adds x into z and returns z. z.Add(z) is valid and doubles z.
func (z *Int) Add(x *Int) *Int {
	if z == x {
		x = x.Clone()
	}
	switch {
	case z.neg == x.neg:
		z.magAdd(x)
	case len(z.chunks) > len(x.chunks):
		z.magSubFast(x)
	default:
		z.magSub(x)
	}
	return z
}

// Sub subtracts x from z and returns z. z.Sub(z) short-circuits to zero.
func (z *Int) Sub(x *Int) *Int {
	if z == x {
		return z.setZero()
	}
	switch {
	case z.neg != x.neg:
		z.magAdd(x)
	case len(z.chunks) > len(x.chunks):
		z.magSubFast(x)
	default:
		z.magSub(x)
	}
	return z
}

// Inc adds one to z and returns z.
func (z *Int) Inc() *Int { return z.Add(one) }

// Dec subtracts one from z and returns z.
func (z *Int) Dec() *Int { return z.Sub(one) }

// Add returns a + b. Neither operand is modified.
func Add(a, b *Int) *Int {
	// Accumulate into the operand with more limbs: the ripple loop then
	// walks the shorter one.
	if len(b.chunks) > len(a.chunks) {
		a, b = b, a
	}
	return a.Clone().Add(b)
}

// Sub returns a - b. Neither operand is modified.
func Sub(a, b *Int) *Int {
	if a == b {
		return New()
	}
	if len(b.chunks) > len(a.chunks) {
		return b.Clone().Neg().Add(a)
	}
	return a.Clone().Sub(b)
}
