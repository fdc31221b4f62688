package mos6502_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPXImmediate(t *testing.T) {
	c := newCPU()
	c.X = 0x20
	c.LoadProgram([]byte{0xE0, 0x20}, 0x0000) // CPX #$20
	c.Step()
	assert.True(t, c.SR.IsCarry())
	assert.True(t, c.SR.IsZero())
}

func TestCPYZeroPage(t *testing.T) {
	c := newCPU()
	c.Y = 0x05
	c.Memory.WriteByte(0x0010, 0x06)
	c.LoadProgram([]byte{0xC4, 0x10}, 0x0000) // CPY $10
	c.Step()
	assert.False(t, c.SR.IsCarry())
}
