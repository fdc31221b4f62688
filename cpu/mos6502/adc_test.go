package mos6502_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestADCSetsOverflowWithoutCarryOnSignedOverflow(t *testing.T) {
	c := newCPU()
	c.A = 0x7F // +127
	c.LoadProgram([]byte{0x69, 0x01}, 0x0000) // ADC #$01
	c.Step()
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.SR.IsOverflow())
	assert.False(t, c.SR.IsCarry())
}

func TestADCCarryOutWithoutSignedOverflow(t *testing.T) {
	c := newCPU()
	c.A = 0xFF
	c.LoadProgram([]byte{0x69, 0x01}, 0x0000) // ADC #$01
	c.Step()
	assert.Equal(t, uint8(0x00), c.A)
	assert.True(t, c.SR.IsCarry())
	assert.False(t, c.SR.IsOverflow())
	assert.True(t, c.SR.IsZero())
}

func TestADCIgnoresDecimalFlag(t *testing.T) {
	c := newCPU()
	c.SR.SetDecimal(true)
	c.A = 0x09
	c.LoadProgram([]byte{0x69, 0x01}, 0x0000) // ADC #$01 — would be 0x10 in BCD
	c.Step()
	assert.Equal(t, uint8(0x0A), c.A) // pure binary add, decimal flag not honoured
}

func TestADCUsesIncomingCarry(t *testing.T) {
	c := newCPU()
	c.SR.SetCarry(true)
	c.A = 0x01
	c.LoadProgram([]byte{0x69, 0x01}, 0x0000) // ADC #$01
	c.Step()
	assert.Equal(t, uint8(0x03), c.A)
}
