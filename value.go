// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package packedfloat implements a float32 that carries a boolean flag
// inside its own 32 bits, so that an annotated float still costs exactly
// 4 bytes and large arrays of them stay dense in memory.
// The flag lives in the least significant mantissa bit. Reading the
// number masks that bit out, so values whose mantissa already ends in a
// zero bit (2.0, 10.0, ±0, ±Inf) round-trip exactly, and any other
// finite value loses exactly one ULP.
// NaN has no representation here; constructors and setters reject it.
package packedfloat

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avdva/packedfloat/internal/bitops"
	"github.com/avdva/packedfloat/internal/floatbits"
)

var (
	// ErrNaN is returned when a caller supplies a NaN value.
	ErrNaN = errors.New("packedfloat: value is NaN")

	jsonParts = []string{`{"v":"`, `","f":`, `}`}
)

const (
	// Size is the storage footprint of a Value in bytes.
	Size = floatbits.Size

	flagBit = 0
)

type bits = uint32

// Value is an IEEE-754 single-precision number whose lowest mantissa bit
// is reserved for a boolean flag.
//   31      23                     0
//   _|_______|______________________
//   seeeeeeeemmmmmmmmmmmmmmmmmmmmmmg  <- bit 0 is the flag
//
// The layout is defined on the bit pattern, not on host memory, so it is
// the same on every platform. A Value is a plain 4-byte payload: copy it,
// compare it with ==, put it in slices.
// The zero Value is +0.0 with the flag cleared.
type Value bits

// New packs f and flag into a Value.
// Returns ErrNaN if f is NaN (any NaN bit pattern).
func New(f float32, flag bool) (Value, error) {
	b := floatbits.Bits(f)
	if floatbits.IsNaN(b) {
		return 0, ErrNaN
	}
	return Value(bitops.Assign(b, flagBit, flag)), nil
}

// MustNew is like New, but panics on NaN.
func MustNew(f float32, flag bool) Value {
	v, err := New(f, flag)
	if err != nil {
		panic(err)
	}
	return v
}

// FromBits reinterprets a raw bit pattern, flag bit included, as a Value.
// Returns ErrNaN if the numeric payload, with the flag bit masked out,
// is a NaN pattern. The flag bit itself never makes a pattern invalid,
// so FromBits accepts everything Bits can produce.
func FromBits(b uint32) (Value, error) {
	if floatbits.IsNaN(bitops.Clear(b, flagBit)) {
		return 0, ErrNaN
	}
	return Value(b), nil
}

// Bits returns the raw bit pattern, flag bit included.
func (v Value) Bits() uint32 {
	return bits(v)
}

// Float32 returns the stored number with the flag bit masked out.
// v itself, including the flag, is unchanged by the read.
func (v Value) Float32() float32 {
	return floatbits.FromBits(bitops.Clear(bits(v), flagBit))
}

// SetFloat32 replaces the stored number, keeping the current flag.
// On NaN it returns ErrNaN and leaves v unchanged.
func (v *Value) SetFloat32(f float32) error {
	b := floatbits.Bits(f)
	if floatbits.IsNaN(b) {
		return ErrNaN
	}
	*v = Value(bitops.Assign(b, flagBit, v.Flag()))
	return nil
}

// Flag returns the flag bit.
func (v Value) Flag() bool {
	return bitops.Check(bits(v), flagBit) == 1
}

// SetFlag stores the flag bit, leaving the numeric payload untouched.
// Toggling the flag never changes the result of Float32.
func (v *Value) SetFlag(flag bool) {
	*v = Value(bitops.Assign(bits(*v), flagBit, flag))
}

// String returns a string representation of the stored number.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {flag: %v}", v.Flag())
}

// MarshalBinary encodes v into its canonical 4-byte form.
// The byte order is fixed, so the encoding is portable across hosts.
func (v Value) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Size)
	floatbits.PutBytes(buf, bits(v))
	return buf, nil
}

// UnmarshalBinary decodes 4 bytes produced by MarshalBinary.
// NaN patterns are rejected, v is unchanged on error.
func (v *Value) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("packedfloat: invalid length %d", len(data))
	}
	value, err := FromBits(floatbits.BytesToBits(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalJSON marshals v as {"v":"<number>","f":<flag>}.
// The number is a string so that ±Inf and -0 survive the trip.
func (v Value) MarshalJSON() ([]byte, error) {
	var builder strings.Builder
	builder.WriteString(jsonParts[0])
	builder.WriteString(v.String())
	builder.WriteString(jsonParts[1])
	builder.WriteString(strconv.FormatBool(v.Flag()))
	builder.WriteString(jsonParts[2])
	return []byte(builder.String()), nil
}

// UnmarshalJSON unmarshals an object produced by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	d := struct {
		V string `json:"v"`
		F bool   `json:"f"`
	}{}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(d.V, 32)
	if err != nil {
		return err
	}
	value, err := New(float32(f), d.F)
	if err != nil {
		return err
	}
	*v = value
	return nil
}
