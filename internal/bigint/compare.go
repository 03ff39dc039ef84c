package bigint

import "slices"

// cmpMag compares two canonical magnitudes: longer wins, equal lengths fall
// back to a top-down limb scan.
func cmpMag(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y and returns -1, 0 or +1. The total order agrees with
// the sign of x − y.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(x.chunks, y.chunks)
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x and y hold the same value.
func (x *Int) Equal(y *Int) bool {
	return x == y || (x.neg == y.neg && slices.Equal(x.chunks, y.chunks))
}
