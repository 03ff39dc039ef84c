package bigint

// Multiplication dispatches on a crude cost score, the product of the two
// operand limb counts. Below Toom2Threshold the schoolbook loop wins on
// constant factors; between the two thresholds Toom-2 (Karatsuba) trades one
// recursive product for a handful of additions; above Toom3Threshold Toom-3
// splits three ways. The thresholds are performance knobs, not correctness
// constants: all three paths must agree on every input.

// Default crossover scores, in limb·limb units, measured on amd64.
const (
	DefaultToom2Threshold = 550
	DefaultToom3Threshold = 2200
)

var (
	toom2Threshold = DefaultToom2Threshold
	toom3Threshold = DefaultToom3Threshold
)

// SetThresholds overrides the multiplication crossover scores. Values < 1
// leave the corresponding threshold unchanged. Not safe to call concurrently
// with in-flight multiplications.
func SetThresholds(toom2, toom3 int) {
	if toom2 > 0 {
		toom2Threshold = toom2
	}
	if toom3 > 0 {
		toom3Threshold = toom3
	}
}

// Thresholds returns the active multiplication crossover scores.
func Thresholds() (toom2, toom3 int) {
	return toom2Threshold, toom3Threshold
}

// Mul returns a × b. Neither operand is modified.
func Mul(a, b *Int) *Int {
	score := len(a.chunks) * len(b.chunks)
	var z *Int
	switch {
	case score > toom3Threshold:
		z = mulToom3(a, b)
	case score > toom2Threshold:
		z = mulToom2(a, b)
	default:
		z = mulSchoolbook(a, b)
	}
	z.neg = a.neg != b.neg
	z.normalize()
	return z
}

// Mul multiplies z by x in place and returns z. z.Mul(z) squares z.
func (z *Int) Mul(x *Int) *Int {
	return z.Set(Mul(z, x))
}

// mulSchoolbook is the quadratic base case: every 32×32→64-bit partial
// product is folded into two consecutive result limbs through the carry
// primitive. Magnitude only; the caller applies the sign.
func mulSchoolbook(a, b *Int) *Int {
	z := &Int{chunks: make([]uint32, len(a.chunks)+len(b.chunks)+1)}
	for i, x := range a.chunks {
		for j, y := range b.chunks {
			prod := uint64(x) * uint64(y)
			if lo := uint32(prod); lo != 0 {
				addChunkFast(z.chunks, i+j, lo)
			}
			if hi := uint32(prod >> 32); hi != 0 {
				addChunkFast(z.chunks, i+j+1, hi)
			}
		}
	}
	return z
}

// sliceMag returns the limbs of x in [lo, hi) as an independent canonical
// value. Out-of-range windows yield zero.
func sliceMag(x *Int, lo, hi int) *Int {
	if hi > len(x.chunks) {
		hi = len(x.chunks)
	}
	z := &Int{}
	if lo < hi {
		z.chunks = append(make([]uint32, 0, hi-lo+1), x.chunks[lo:hi]...)
	}
	z.normalize()
	return z
}

// mulToom2 is Karatsuba: split both operands at limb offset s, form the
// three half-size products, and recombine
//
//	r1 = r0 + r2 − (high−low)·(high'−low')
//	a·b = r0 + r1·2^(32s) + r2·2^(64s)
//
// The middle product is signed; the recombined coefficients are not.
func mulToom2(a, b *Int) *Int {
	s := ceilDiv(max(len(a.chunks), len(b.chunks)), 2)
	pl, ph := sliceMag(a, 0, s), sliceMag(a, s, len(a.chunks))
	ql, qh := sliceMag(b, 0, s), sliceMag(b, s, len(b.chunks))

	r0 := Mul(pl, ql)
	r2 := Mul(ph, qh)
	r1 := Add(r0, r2)
	r1.Sub(Mul(ph.Sub(pl), qh.Sub(ql)))

	z := &Int{chunks: make([]uint32, len(a.chunks)+len(b.chunks)+1)}
	for k, r := range [...]*Int{r0, r1, r2} {
		for j, c := range r.chunks {
			if c != 0 {
				addChunkFast(z.chunks, s*k+j, c)
			}
		}
	}
	return z
}

// toom3Points is one operand of a Toom-3 product, evaluated at the five
// interpolation points 0, 1, −1, −2 and ∞.
type toom3Points struct {
	zero, plus1, minus1, minus2, inf *Int
}

// evalToom3 splits x's magnitude at limb offset s into coefficients
// b0, b1, b2 and evaluates b0 + b1·t + b2·t² at the five points.
func evalToom3(x *Int, s int) toom3Points {
	b0 := sliceMag(x, 0, s)
	b1 := sliceMag(x, s, 2*s)
	b2 := sliceMag(x, 2*s, len(x.chunks))

	tmp := Add(b0, b2)
	var p toom3Points
	p.zero = b0.Clone()
	p.plus1 = Add(tmp, b1)
	p.minus1 = tmp.Sub(b1)
	// P(−2) = 2·(P(−1) + b2) − b0
	minus2 := Add(p.minus1, b2)
	lsh(minus2, 1)
	p.minus2 = minus2.Sub(b0)
	p.inf = b2
	return p
}

// div2 halves an interpolation intermediate in place. The only odd value the
// recombination recipe can produce here is −1, which must collapse to zero:
// a flooring shift would keep it at −1 forever.
func div2(x *Int) *Int {
	if x.neg && len(x.chunks) == 1 && x.chunks[0] == 1 {
		return x.setZero()
	}
	rsh(x, 1)
	return x
}

// mulToom3 splits each operand three ways, multiplies the five point
// evaluations pairwise, and interpolates the product coefficients back with
// the standard closed-form recipe (one exact division by 3, two by 2).
func mulToom3(a, b *Int) *Int {
	s := ceilDiv(max(len(a.chunks), len(b.chunks)), 3)
	p := evalToom3(a, s)
	q := evalToom3(b, s)

	p0 := Mul(p.zero, q.zero)
	p1 := Mul(p.plus1, q.plus1)
	pm1 := Mul(p.minus1, q.minus1)
	pm2 := Mul(p.minus2, q.minus2)
	pinf := Mul(p.inf, q.inf)

	r0 := p0.Clone()
	r4 := pinf.Clone()
	r3, _ := divmod(pm2.Sub(p1), three) // exact: divisor is the constant 3
	r1 := div2(Sub(p1, pm1))
	r2 := pm1.Sub(p0)
	r3 = div2(Sub(r2, r3)).Add(lsh(pinf, 1))
	r2.Add(r1).Sub(r4)
	r1.Sub(r3)

	z := &Int{chunks: make([]uint32, len(a.chunks)+len(b.chunks)+1)}
	for k, r := range [...]*Int{r0, r1, r2, r3, r4} {
		for j, c := range r.chunks {
			if c != 0 {
				addChunkFast(z.chunks, s*k+j, c)
			}
		}
	}
	return z
}
