package bitops

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint8
		n   uint
		res uint8
	}{
		{0x00, 0, 0x01},
		{0x00, 1, 0x02},
		{0x00, 2, 0x04},
		{0xf0, 0, 0xf1},
		{0xf0, 1, 0xf2},
		{0xf0, 2, 0xf4},
		{0x01, 0, 0x01},
		{0xff, 7, 0xff},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Set(test.v, test.n))
		})
	}
}

func TestClear(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint8
		n   uint
		res uint8
	}{
		{0x00, 0, 0x00},
		{0x01, 0, 0x00},
		{0x02, 1, 0x00},
		{0x04, 2, 0x00},
		{0xf0, 0, 0xf0},
		{0xf0, 1, 0xf0},
		{0xf0, 2, 0xf0},
		{0xff, 7, 0x7f},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Clear(test.v, test.n))
		})
	}
}

func TestCheck(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint8
		n   uint
		res uint8
	}{
		{0x00, 0, 0},
		{0x00, 1, 0},
		{0x00, 2, 0},
		{0x01, 0, 1},
		{0x02, 1, 1},
		{0x04, 2, 1},
		{0xfe, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Check(test.v, test.n))
		})
	}
}

func TestAssign(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint8(0x01), Assign(uint8(0x00), 0, true))
	a.Equal(uint8(0x00), Assign(uint8(0x01), 0, false))
	a.Equal(uint8(0x01), Assign(uint8(0x01), 0, true))
	a.Equal(uint8(0x00), Assign(uint8(0x00), 0, false))
}

func TestUint32(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint32(0x80000001), Set(uint32(0x80000000), 0))
	a.Equal(uint32(0x80000000), Clear(uint32(0x80000001), 0))
	a.Equal(uint32(1), Check(uint32(0x80000000), 31))
	a.Equal(uint32(0), Check(uint32(0x80000000), 0))
}
