// Package floatbits converts between float32 values and their IEEE-754
// bit patterns, and fixes the byte order used to store the patterns.
package floatbits

import (
	"encoding/binary"
	"math"
)

// Size is the width of one pattern in bytes.
const Size = 4

const (
	expMask  = 0x7f800000
	fracMask = 0x007fffff
)

// Bits returns the IEEE-754 bit pattern of f.
func Bits(f float32) uint32 {
	return math.Float32bits(f)
}

// FromBits returns the float32 with bit pattern b.
// Every pattern maps to a number, possibly infinite or NaN,
// with the sign bit preserved.
func FromBits(b uint32) float32 {
	return math.Float32frombits(b)
}

// PutBytes stores b into the first 4 bytes of dst.
// The byte order is fixed to little-endian regardless of the host,
// so bytes written on one machine decode to the same pattern on any other.
func PutBytes(dst []byte, b uint32) {
	binary.LittleEndian.PutUint32(dst, b)
}

// BytesToBits reads a pattern previously stored with PutBytes.
func BytesToBits(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// IsNaN reports whether b is a NaN pattern, quiet or signaling:
// exponent all ones, mantissa nonzero.
func IsNaN(b uint32) bool {
	return b&expMask == expMask && b&fracMask != 0
}
