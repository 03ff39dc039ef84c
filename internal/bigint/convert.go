package bigint

import "math"

// Int64 returns the low 64 bits of x under the two's-complement view.
// Out-of-range values truncate silently.
func (x *Int) Int64() int64 {
	var res uint64
	borrow := true
	for i := 0; i < 2; i++ {
		var chunk uint32
		if i < len(x.chunks) {
			chunk = x.chunks[i]
		}
		if x.neg {
			if borrow {
				chunk--
				borrow = chunk == ^uint32(0)
			}
			chunk = ^chunk
		}
		res |= uint64(chunk) << (i * 32)
	}
	return int64(res)
}

// Float64 returns x as a double: the top three limbs are accumulated by
// repeated scaling, any remaining limbs contribute one final power-of-two
// factor. Large values overflow to ±Inf per IEEE semantics.
func (x *Int) Float64() float64 {
	res := 0.0
	for i, n := len(x.chunks)-1, 3; i >= 0 && n > 0; i, n = i-1, n-1 {
		res *= math.Pow(2, 32)
		res += float64(x.chunks[i])
	}
	if len(x.chunks) > 3 {
		res *= math.Pow(2, float64(32*(len(x.chunks)-3)))
	}
	if x.neg {
		res = -res
	}
	return res
}
