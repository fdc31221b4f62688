package mos6502_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	c := newCPU()
	c.LoadProgram([]byte{0xA9, 0x00}, 0x0000)
	c.Step()
	assert.Equal(t, uint8(0x00), c.A)
	assert.True(t, c.SR.IsZero())
	assert.False(t, c.SR.IsNegative())

	c2 := newCPU()
	c2.LoadProgram([]byte{0xA9, 0x80}, 0x0000)
	c2.Step()
	assert.True(t, c2.SR.IsNegative())
}

func TestLDAZeroPageX(t *testing.T) {
	c := newCPU()
	c.X = 0x01
	c.Memory.WriteByte(0x0011, 0x42)
	c.LoadProgram([]byte{0xB5, 0x10}, 0x0000)
	c.Step()
	assert.Equal(t, uint8(0x42), c.A)
}

func TestLDAAbsoluteX(t *testing.T) {
	c := newCPU()
	c.X = 0x01
	c.Memory.WriteByte(0x2001, 0x77)
	c.LoadProgram([]byte{0xBD, 0x00, 0x20}, 0x0000) // LDA $2000,X
	c.Step()
	assert.Equal(t, uint8(0x77), c.A)
}

func TestLDAIndirectXAndY(t *testing.T) {
	c := newCPU()
	c.X = 0x04
	c.Memory.WriteWord(0x0024, 0x4000)
	c.Memory.WriteByte(0x4000, 0x55)
	c.LoadProgram([]byte{0xA1, 0x20}, 0x0000) // LDA ($20,X)
	c.Step()
	assert.Equal(t, uint8(0x55), c.A)

	c2 := newCPU()
	c2.Y = 0x01
	c2.Memory.WriteWord(0x0020, 0x4000)
	c2.Memory.WriteByte(0x4001, 0x66)
	c2.LoadProgram([]byte{0xB1, 0x20}, 0x0000) // LDA ($20),Y
	c2.Step()
	assert.Equal(t, uint8(0x66), c2.A)
}
