package mos6502_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPHAPLARoundTrip(t *testing.T) {
	c := newCPU()
	c.A = 0x42
	c.LoadProgram([]byte{
		0x48, // PHA
		0xA9, 0x00,
		0x68, // PLA
	}, 0x0000)
	c.Step()
	assert.Equal(t, uint8(0xFE), c.SP)
	c.Step()
	c.Step()
	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint8(0xFF), c.SP)
}

func TestPHPForcesBreakAndUnusedButPLPMasksThemOut(t *testing.T) {
	c := newCPU()
	c.SR.SetCarry(true)
	c.LoadProgram([]byte{
		0x08, // PHP
		0x28, // PLP
	}, 0x0000)
	c.Step()
	pushed := c.Memory.ReadByte(0x01FF)
	assert.Equal(t, uint8(0x30), pushed&0x30) // B and U forced

	c.Step()
	assert.True(t, c.SR.IsCarry())
	assert.False(t, c.SR.IsBreak())
	assert.False(t, c.SR.IsUnused())
}
