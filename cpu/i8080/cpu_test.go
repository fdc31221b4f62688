package i8080_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sladek/sbc8micro/cpu/i8080"
	"github.com/stretchr/testify/assert"
)

func newCPU() *i8080.CPU {
	c := i8080.NewCPU()
	c.SetDebug(false)
	return c
}

// requireRegister asserts want against a register value, dumping full CPU
// state via spew on failure instead of a bare diff.
func requireRegister(t *testing.T, c *i8080.CPU, label string, got, want uint8) {
	t.Helper()
	if !assert.Equal(t, want, got, label) {
		t.Logf("cpu state: %s", spew.Sdump(c))
	}
}

func TestNewCPUDefaults(t *testing.T) {
	c := newCPU()
	assert.Equal(t, uint16(0x0000), c.SP)
	assert.Equal(t, uint8(0x02), c.PSW.Byte())
	assert.False(t, c.Halted())
}

func TestMVIAndMOV(t *testing.T) {
	c := newCPU()
	c.LoadProgram([]byte{0x3E, 0x42, 0x47}, 0x0000) // MVI A,42H ; MOV B,A
	c.Step()
	assert.Equal(t, uint8(0x42), c.A)
	c.Step()
	assert.Equal(t, uint8(0x42), c.B)
}

func TestLXIAndSTAXLoadsMemory(t *testing.T) {
	c := newCPU()
	c.LoadProgram([]byte{
		0x01, 0x00, 0x20, // LXI B,2000H
		0x3E, 0x99, // MVI A,99H
		0x02, // STAX B
	}, 0x0000)
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, uint8(0x99), c.Memory.ReadByte(0x2000))
}

func TestADDSetsCarryAndZero(t *testing.T) {
	c := newCPU()
	c.A = 0xFF
	c.B = 0x01
	c.LoadProgram([]byte{0x80}, 0x0000) // ADD B
	c.Step()
	assert.Equal(t, uint8(0x00), c.A)
	assert.True(t, c.PSW.IsCarry())
	assert.True(t, c.PSW.IsZero())
	assert.True(t, c.PSW.IsAuxCarry())
}

func TestSUBBorrowSetsCarry(t *testing.T) {
	c := newCPU()
	c.A = 0x00
	c.B = 0x01
	c.LoadProgram([]byte{0x90}, 0x0000) // SUB B
	c.Step()
	assert.Equal(t, uint8(0xFF), c.A)
	assert.True(t, c.PSW.IsCarry())
}

func TestCMPDoesNotChangeAccumulator(t *testing.T) {
	c := newCPU()
	c.A = 0x10
	c.B = 0x20
	c.LoadProgram([]byte{0xB8}, 0x0000) // CMP B
	c.Step()
	assert.Equal(t, uint8(0x10), c.A)
	assert.True(t, c.PSW.IsCarry())
}

func TestPushPopPSWRoundTrip(t *testing.T) {
	c := newCPU()
	c.SP = 0x2400
	c.A = 0x3C
	c.PSW.SetCarry(true)
	c.LoadProgram([]byte{
		0xF5, // PUSH PSW
		0x3E, 0x00, // MVI A,00H
		0xF1, // POP PSW
	}, 0x0000)
	c.Step()
	assert.Equal(t, uint16(0x23FE), c.SP)
	c.Step()
	assert.Equal(t, uint8(0x00), c.A)
	c.Step()
	assert.Equal(t, uint8(0x3C), c.A)
	assert.True(t, c.PSW.IsCarry())
	assert.Equal(t, uint16(0x2400), c.SP)
}

func TestConditionalJumpTakenAndNotTaken(t *testing.T) {
	c := newCPU()
	c.PSW.SetZero(true)
	c.LoadProgram([]byte{0xCA, 0x00, 0x10}, 0x0000) // JZ 1000H
	c.Step()
	assert.Equal(t, uint16(0x1000), c.PC)

	c2 := newCPU()
	c2.PSW.SetZero(false)
	c2.LoadProgram([]byte{0xCA, 0x00, 0x10}, 0x0000) // JZ 1000H, not taken
	c2.Step()
	assert.Equal(t, uint16(0x0003), c2.PC)
}

func TestCallAndReturn(t *testing.T) {
	c := newCPU()
	c.SP = 0x2400
	c.LoadProgram([]byte{0xCD, 0x10, 0x00}, 0x0000) // CALL 0010H
	c.Step()
	assert.Equal(t, uint16(0x0010), c.PC)
	assert.Equal(t, uint16(0x0003), c.Memory.ReadWord(c.SP))

	c.Memory.WriteByte(0x0010, 0xC9) // RET
	c.Step()
	assert.Equal(t, uint16(0x0003), c.PC)
	assert.Equal(t, uint16(0x2400), c.SP)
}

func TestRSTVectors(t *testing.T) {
	c := newCPU()
	c.SP = 0x2400
	c.LoadProgram([]byte{0xFF}, 0x0000) // RST 7
	c.Step()
	assert.Equal(t, uint16(0x0038), c.PC)
}

func TestHLTHalts(t *testing.T) {
	c := newCPU()
	c.LoadProgram([]byte{0x76}, 0x0000)
	c.Step()
	assert.True(t, c.Halted())
}

func TestDAAAdjustsAfterBCDAdd(t *testing.T) {
	c := newCPU()
	c.A = 0x9B
	c.LoadProgram([]byte{0x27}, 0x0000) // DAA
	c.Step()
	assert.Equal(t, uint8(0x01), c.A)
	assert.True(t, c.PSW.IsCarry())
	assert.True(t, c.PSW.IsAuxCarry())
}

func TestXCHGSwapsHLAndDE(t *testing.T) {
	c := newCPU()
	c.H, c.L = 0x01, 0x02
	c.D, c.E = 0x03, 0x04
	c.LoadProgram([]byte{0xEB}, 0x0000)
	c.Step()
	assert.Equal(t, uint8(0x03), c.H)
	assert.Equal(t, uint8(0x04), c.L)
	assert.Equal(t, uint8(0x01), c.D)
	assert.Equal(t, uint8(0x02), c.E)
}

func TestUnknownOpcodeIsNotFatal(t *testing.T) {
	c := newCPU()
	c.LoadProgram([]byte{0xED}, 0x0000) // never assigned on the 8080
	assert.NotPanics(t, func() { c.Step() })
	assert.Equal(t, uint16(0x0001), c.PC)
}

// TestHelloRoutine exercises a short, representative 8080 program that
// loads an immediate, stores it through HL, and increments before
// halting — the kind of smoke scenario the register/memory print is
// meant to surface.
func TestHelloRoutine(t *testing.T) {
	c := newCPU()
	c.LoadProgram([]byte{
		0x21, 0x00, 0x30, // LXI H,3000H
		0x3E, 0x05, // MVI A,05H
		0x77,       // MOV M,A
		0x34,       // INR M
		0x76,       // HLT
	}, 0x0000)
	for !c.Halted() {
		c.Step()
	}
	requireRegister(t, c, "A", c.A, 0x05)
	assert.Equal(t, uint8(0x06), c.Memory.ReadByte(0x3000))
}

// TestPrintRegistersGoldenOutput pins the exact fixed-format dump for one
// register/flag combination, the property any golden-output comparison
// against it depends on staying byte-for-byte stable.
func TestPrintRegistersGoldenOutput(t *testing.T) {
	c := newCPU()
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE
	c.SP, c.PC = 0x1111, 0x2222
	c.PSW.SetSign(true)
	c.PSW.SetZero(false)
	c.PSW.SetAuxCarry(true)
	c.PSW.SetParity(false)
	c.PSW.SetCarry(true)

	want := "Registers\n" +
		"--------------------------------------------------------------------------------------\n" +
		"|  A  |  B  |  C  |  D  |  E  |  H  |  L  |  SP   |  PC   | PSW | S | Z | AC | P | C |\n" +
		"|-----|-----|-----|-----|-----|-----|-----|-------|-------|-----|---|---|----|---|---|\n" +
		"| 12H | 34H | 56H | 78H | 9AH | BCH | DEH | 1111H | 2222H | 93H | 1 | 0 | 1  | 0 | 1 |\n" +
		"--------------------------------------------------------------------------------------\n"
	assert.Equal(t, want, c.PrintRegisters())
}
