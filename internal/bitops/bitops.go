// Package bitops provides single-bit operations on unsigned integers.
package bitops

import "golang.org/x/exp/constraints"

// Set returns v with bit n forced to 1.
func Set[T constraints.Unsigned](v T, n uint) T {
	return v | 1<<n
}

// Clear returns v with bit n forced to 0.
func Clear[T constraints.Unsigned](v T, n uint) T {
	return v &^ (1 << n)
}

// Check returns the value of bit n, 0 or 1.
func Check[T constraints.Unsigned](v T, n uint) T {
	return v >> n & 1
}

// Assign returns v with bit n forced to match bit.
func Assign[T constraints.Unsigned](v T, n uint, bit bool) T {
	if bit {
		return Set(v, n)
	}
	return Clear(v, n)
}
