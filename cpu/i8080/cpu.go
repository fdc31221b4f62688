// Package i8080 implements the Intel 8080 instruction-set-level CPU core:
// registers, flags, and a table-driven Step that fetches, decodes, and
// executes exactly one instruction against an owned Memory.
package i8080

import (
	"fmt"
	"io"

	"github.com/sladek/sbc8micro/internal/trace"
	"github.com/sladek/sbc8micro/memory"
	"github.com/sladek/sbc8micro/status/i8080"
)

// CPU holds the full architectural state of one 8080 core: the seven
// general registers, program counter, stack pointer, processor status
// word, and the Memory it exclusively owns.
type CPU struct {
	A, B, C, D, E, H, L uint8
	PC, SP              uint16
	PSW                 i8080.PSW
	Memory              *memory.Memory

	halted bool
	trace  *trace.Sink
}

// NewCPU returns a CPU with zeroed registers, SP at the unusual 0x0000
// reset value this core preserves from its source, the conventional 0x02
// PSW default, a fresh zero-filled Memory, and debug tracing on.
func NewCPU() *CPU {
	return &CPU{
		PSW:    i8080.New(),
		Memory: memory.New(),
		trace:  trace.NewSink(),
	}
}

// LoadProgram writes program into Memory at startAddr and points PC at it.
func (c *CPU) LoadProgram(program []byte, startAddr uint16) {
	c.Memory.LoadProgram(program, startAddr)
	c.PC = startAddr
}

// SetDebug toggles per-instruction trace output.
func (c *CPU) SetDebug(enabled bool) {
	c.trace.SetEnabled(enabled)
}

// SetTraceOutput redirects the debug trace sink, e.g. for test capture.
func (c *CPU) SetTraceOutput(w io.Writer) {
	c.trace.SetOutput(w)
}

// Halted reports whether HLT has run. No interrupt subsystem is modelled,
// so nothing in this core clears the flag again.
func (c *CPU) Halted() bool {
	return c.halted
}

// PrintRegisters renders a fixed-format multi-line register and flag dump.
func (c *CPU) PrintRegisters() string {
	return fmt.Sprintf(
		"Registers\n--------------------------------------------------------------------------------------\n"+
			"|  A  |  B  |  C  |  D  |  E  |  H  |  L  |  SP   |  PC   | PSW | S | Z | AC | P | C |\n"+
			"|-----|-----|-----|-----|-----|-----|-----|-------|-------|-----|---|---|----|---|---|\n"+
			"| %02XH | %02XH | %02XH | %02XH | %02XH | %02XH | %02XH | %04XH | %04XH | %02XH | %d | %d | %d  | %d | %d |\n"+
			"--------------------------------------------------------------------------------------\n",
		c.A, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC, c.PSW.Byte(),
		boolBit(c.PSW.IsSign()), boolBit(c.PSW.IsZero()), boolBit(c.PSW.IsAuxCarry()),
		boolBit(c.PSW.IsParity()), boolBit(c.PSW.IsCarry()),
	)
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Step fetches the opcode byte at PC, advances PC past it, and executes
// the decoded instruction. An opcode with no table entry traces "!byte"
// and is treated as a one-byte no-op, never a fatal error.
func (c *CPU) Step() {
	opcode := c.Memory.ReadByte(c.PC)
	startPC := c.PC
	c.PC++

	entry, ok := OpcodeTable[opcode]
	if !ok {
		c.trace.Printf("%04X  %02X          !byte %02X", startPC, opcode, opcode)
		return
	}
	entry.Exec(c)
	c.traceInstruction(startPC, opcode, entry)
}

func (c *CPU) traceInstruction(startPC uint16, opcode uint8, entry Entry) {
	if !c.trace.Enabled() {
		return
	}
	n := entry.Length
	hex := fmt.Sprintf("%02X", opcode)
	for i := uint8(1); i < n; i++ {
		hex += fmt.Sprintf(" %02X", c.Memory.ReadByte(startPC+uint16(i)))
	}
	c.trace.Printf("%04X  %-10s  %s", startPC, hex, entry.Mnemonic)
}

// --- register access by the 3-bit 8080 register code: 0=B,1=C,2=D,3=E,
// 4=H,5=L,6=M (memory at HL),7=A.

func (c *CPU) readReg(code uint8) uint8 {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.Memory.ReadByte(c.hl())
	case 7:
		return c.A
	}
	panic("unreachable register code")
}

func (c *CPU) writeReg(code uint8, v uint8) {
	switch code {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.Memory.WriteByte(c.hl(), v)
	case 7:
		c.A = v
	}
}

func regName(code uint8) string {
	return [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}[code]
}

func (c *CPU) hl() uint16 { return uint16(c.H)<<8 | uint16(c.L) }
func (c *CPU) bc() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) de() uint16 { return uint16(c.D)<<8 | uint16(c.E) }

func (c *CPU) setHL(v uint16) { c.H, c.L = uint8(v>>8), uint8(v) }
func (c *CPU) setBC(v uint16) { c.B, c.C = uint8(v>>8), uint8(v) }
func (c *CPU) setDE(v uint16) { c.D, c.E = uint8(v>>8), uint8(v) }

// --- register-pair access by the 2-bit rp code used by LXI/INX/DCX/DAD:
// 0=BC,1=DE,2=HL,3=SP.

func (c *CPU) getRP(code uint8) uint16 {
	switch code {
	case 0:
		return c.bc()
	case 1:
		return c.de()
	case 2:
		return c.hl()
	case 3:
		return c.SP
	}
	panic("unreachable rp code")
}

func (c *CPU) setRP(code uint8, v uint16) {
	switch code {
	case 0:
		c.setBC(v)
	case 1:
		c.setDE(v)
	case 2:
		c.setHL(v)
	case 3:
		c.SP = v
	}
}

func rpName(code uint8) string {
	return [4]string{"B", "D", "H", "SP"}[code]
}

// --- operand fetch helpers, each advancing PC by the bytes they consume.

func (c *CPU) fetch8() uint8 {
	v := c.Memory.ReadByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	v := c.Memory.ReadWord(c.PC)
	c.PC += 2
	return v
}

// --- stack helpers. SP grows down; a push decrements SP before writing.

func (c *CPU) push8(v uint8) {
	c.SP--
	c.Memory.WriteByte(c.SP, v)
}

func (c *CPU) pop8() uint8 {
	v := c.Memory.ReadByte(c.SP)
	c.SP++
	return v
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop8())
	hi := uint16(c.pop8())
	return hi<<8 | lo
}

// --- arithmetic/logical primitives, each updating the flags its
// instruction family is contracted to update.

// add implements the Add(value, with_carry) primitive shared by ADD/ADC
// and their immediate forms.
func (c *CPU) add(value uint8, withCarry bool) {
	carry := uint16(0)
	if withCarry && c.PSW.IsCarry() {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	c.PSW.SetAuxCarry((c.A&0xF)+(value&0xF)+uint8(carry) > 0xF)
	c.A = uint8(sum)
	c.PSW.SetCarry(sum > 0xFF)
	c.PSW.SetFromResult(c.A)
}

// sub implements the Sub(value) primitive shared by SUB/SBB/CMP and their
// immediate forms, via two's-complement add of ^value+1.
func (c *CPU) sub(value uint8) {
	c.PSW.SetCarry(value > c.A)
	complement := ^value
	sum := uint16(c.A) + uint16(complement) + 1
	c.PSW.SetAuxCarry((c.A&0xF)+(complement&0xF)+1 > 0xF)
	c.A = uint8(sum)
	c.PSW.SetFromResult(c.A)
}

// sbb is sub with the current carry folded in as an extra borrow, the
// primitive behind SBB/SBI.
func (c *CPU) sbb(value uint8) {
	borrow := uint16(0)
	if c.PSW.IsCarry() {
		borrow = 1
	}
	c.PSW.SetCarry(uint16(value)+borrow > uint16(c.A))
	complement := ^value
	sum := uint16(c.A) + uint16(complement) + 1 - borrow
	c.PSW.SetAuxCarry((c.A&0xF)+(complement&0xF)+1-uint8(borrow) > 0xF)
	c.A = uint8(sum)
	c.PSW.SetFromResult(c.A)
}

// and implements ANA/ANI, including the 8080-specific half-carry rule
// this core preserves: AC is set from (A | value) & 0x08, not from the
// nibble-carry rule ADD/SUB use.
func (c *CPU) and(value uint8) {
	ac := (c.A|value)&0x08 != 0
	c.A &= value
	c.PSW.SetCarry(false)
	c.PSW.SetAuxCarry(ac)
	c.PSW.SetFromResult(c.A)
}

func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.PSW.SetCarry(false)
	c.PSW.SetAuxCarry(false)
	c.PSW.SetFromResult(c.A)
}

func (c *CPU) or(value uint8) {
	c.A |= value
	c.PSW.SetCarry(false)
	c.PSW.SetAuxCarry(false)
	c.PSW.SetFromResult(c.A)
}

// cmp is Sub(value) with A restored afterward; flags are left as Sub set
// them.
func (c *CPU) cmp(value uint8) {
	saved := c.A
	c.sub(value)
	c.A = saved
}
