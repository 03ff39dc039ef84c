package bigint

import "math/bits"

// This file holds the limb-level carry and borrow primitives that every
// arithmetic routine is built on. The Fast variants ripple until the carry
// or borrow dies and require the caller to have reserved enough limbs; the
// bounded variants stop at the end of the slice and report what ran off.

// addChunkFast adds val into chunks[i] and ripples the carry upward.
// The caller must guarantee the carry dies before the end of the slice.
func addChunkFast(chunks []uint32, i int, val uint32) {
	chunks[i] += val
	carry := chunks[i] < val
	for i++; carry; i++ {
		chunks[i]++
		carry = chunks[i] == 0
	}
}

// addChunk adds val into chunks[i], rippling the carry no further than the
// end of the slice. It reports whether a carry ran off the end.
func addChunk(chunks []uint32, i int, val uint32) bool {
	chunks[i] += val
	carry := chunks[i] < val
	for i++; carry && i < len(chunks); i++ {
		chunks[i]++
		carry = chunks[i] == 0
	}
	return carry
}

// subChunkFast subtracts val from chunks[i] and ripples the borrow upward.
// The caller must guarantee the borrow dies before the end of the slice.
func subChunkFast(chunks []uint32, i int, val uint32) {
	prev := chunks[i]
	chunks[i] -= val
	borrow := chunks[i] > prev
	for i++; borrow; i++ {
		chunks[i]--
		borrow = chunks[i] == ^uint32(0)
	}
}

// subChunk subtracts val from chunks[i], rippling the borrow no further than
// the end of the slice. It reports whether a borrow ran off the end.
func subChunk(chunks []uint32, i int, val uint32) bool {
	prev := chunks[i]
	chunks[i] -= val
	borrow := chunks[i] > prev
	for i++; borrow && i < len(chunks); i++ {
		chunks[i]--
		borrow = chunks[i] == ^uint32(0)
	}
	return borrow
}

// grow extends chunks to length n, reusing spare capacity when available.
// New limbs are zeroed. Shorter requests return the slice unchanged.
func grow(chunks []uint32, n int) []uint32 {
	if n <= len(chunks) {
		return chunks
	}
	if n <= cap(chunks) {
		old := len(chunks)
		chunks = chunks[:n]
		clear(chunks[old:])
		return chunks
	}
	next := make([]uint32, n)
	copy(next, chunks)
	return next
}

// bitLen32 returns the number of significant bits in x; bitLen32(0) is 0.
func bitLen32(x uint32) int { return bits.Len32(x) }

// ceilDiv returns n/d rounded up. Both arguments must be non-negative.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}
