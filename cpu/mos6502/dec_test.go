package mos6502_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDECZeroPageWraps(t *testing.T) {
	c := newCPU()
	c.Memory.WriteByte(0x0010, 0x00)
	c.LoadProgram([]byte{0xC6, 0x10}, 0x0000) // DEC $10
	c.Step()
	assert.Equal(t, uint8(0xFF), c.Memory.ReadByte(0x0010))
	assert.True(t, c.SR.IsNegative())
}

func TestDECAbsolute(t *testing.T) {
	c := newCPU()
	c.Memory.WriteByte(0x3000, 0x01)
	c.LoadProgram([]byte{0xCE, 0x00, 0x30}, 0x0000) // DEC $3000
	c.Step()
	assert.Equal(t, uint8(0x00), c.Memory.ReadByte(0x3000))
	assert.True(t, c.SR.IsZero())
}
