// Package bigint implements arbitrary-precision signed integers.
//
// Values are stored in sign-magnitude form: a little-endian slice of 32-bit
// limbs plus a sign flag. The canonical form has no trailing zero limb, and
// zero is the empty limb slice with a non-negative sign. Every exported
// operation preserves canonical form on every exit path.
//
// Multiplication dispatches between the schoolbook loop, Toom-2 (Karatsuba)
// and Toom-3 based on the product of the operand limb counts; the crossover
// points are tunable at runtime (see SetThresholds and the threshold
// subpackage). Division is long division in base 2^32 with a normalisation
// shift and an add-back correction. Bitwise operations expose two's-complement
// semantics over the sign-magnitude storage by streaming a running borrow
// through negative operands.
//
// Values are not safe for concurrent mutation: a *Int may be read from many
// goroutines, but mutating an instance concurrently with any other access to
// that same instance is undefined.
package bigint
