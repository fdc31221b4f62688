// Package mos6502 implements the 6502 instruction-set-level CPU core:
// registers, flags, and a table-driven Step that fetches, decodes, and
// executes exactly one instruction against an owned Memory.
package mos6502

import (
	"fmt"
	"io"

	"github.com/sladek/sbc8micro/internal/trace"
	"github.com/sladek/sbc8micro/memory"
	"github.com/sladek/sbc8micro/status/mos6502"
)

// The naming convention uses the instruction name followed by the
// addressing mode:
//
// IMM: Immediate
// ZP: Zero Page
// ZPX: Zero Page,X
// ZPY: Zero Page,Y
// ABS: Absolute
// ABX: Absolute,X
// ABY: Absolute,Y
// IND: Indirect
// INX: (Indirect,X)
// INY: (Indirect),Y
// ACC: Accumulator
// REL: Relative

const (
	LDA_IMM = 0xA9
	LDA_ZP  = 0xA5
	LDA_ZPX = 0xB5
	LDA_ABS = 0xAD
	LDA_ABX = 0xBD
	LDA_ABY = 0xB9
	LDA_INX = 0xA1
	LDA_INY = 0xB1

	LDX_IMM = 0xA2
	LDX_ZP  = 0xA6
	LDX_ZPY = 0xB6
	LDX_ABS = 0xAE
	LDX_ABY = 0xBE

	LDY_IMM = 0xA0
	LDY_ZP  = 0xA4
	LDY_ZPX = 0xB4
	LDY_ABS = 0xAC
	LDY_ABX = 0xBC

	STA_ZP  = 0x85
	STA_ZPX = 0x95
	STA_ABS = 0x8D
	STA_ABX = 0x9D
	STA_ABY = 0x99
	STA_INX = 0x81
	STA_INY = 0x91

	STX_ZP  = 0x86
	STX_ZPY = 0x96
	STX_ABS = 0x8E

	STY_ZP  = 0x84
	STY_ZPX = 0x94
	STY_ABS = 0x8C

	TAX = 0xAA
	TAY = 0xA8
	TXA = 0x8A
	TYA = 0x98
	TSX = 0xBA
	TXS = 0x9A

	PHA = 0x48
	PHP = 0x08
	PLA = 0x68
	PLP = 0x28

	AND_IMM = 0x29
	AND_ZP  = 0x25
	AND_ZPX = 0x35
	AND_ABS = 0x2D
	AND_ABX = 0x3D
	AND_ABY = 0x39
	AND_INX = 0x21
	AND_INY = 0x31

	EOR_IMM = 0x49
	EOR_ZP  = 0x45
	EOR_ZPX = 0x55
	EOR_ABS = 0x4D
	EOR_ABX = 0x5D
	EOR_ABY = 0x59
	EOR_INX = 0x41
	EOR_INY = 0x51

	ORA_IMM = 0x09
	ORA_ZP  = 0x05
	ORA_ZPX = 0x15
	ORA_ABS = 0x0D
	ORA_ABX = 0x1D
	ORA_ABY = 0x19
	ORA_INX = 0x01
	ORA_INY = 0x11

	BIT_ZP  = 0x24
	BIT_ABS = 0x2C

	ADC_IMM = 0x69
	ADC_ZP  = 0x65
	ADC_ZPX = 0x75
	ADC_ABS = 0x6D
	ADC_ABX = 0x7D
	ADC_ABY = 0x79
	ADC_INX = 0x61
	ADC_INY = 0x71

	SBC_IMM = 0xE9
	SBC_ZP  = 0xE5
	SBC_ZPX = 0xF5
	SBC_ABS = 0xED
	SBC_ABX = 0xFD
	SBC_ABY = 0xF9
	SBC_INX = 0xE1
	SBC_INY = 0xF1

	CMP_IMM = 0xC9
	CMP_ZP  = 0xC5
	CMP_ZPX = 0xD5
	CMP_ABS = 0xCD
	CMP_ABX = 0xDD
	CMP_ABY = 0xD9
	CMP_INX = 0xC1
	CMP_INY = 0xD1

	CPX_IMM = 0xE0
	CPX_ZP  = 0xE4
	CPX_ABS = 0xEC

	CPY_IMM = 0xC0
	CPY_ZP  = 0xC4
	CPY_ABS = 0xCC

	INC_ZP  = 0xE6
	INC_ZPX = 0xF6
	INC_ABS = 0xEE
	INC_ABX = 0xFE

	DEC_ZP  = 0xC6
	DEC_ZPX = 0xD6
	DEC_ABS = 0xCE
	DEC_ABX = 0xDE

	INX = 0xE8
	INY = 0xC8
	DEX = 0xCA
	DEY = 0x88

	ASL_ACC = 0x0A
	ASL_ZP  = 0x06
	ASL_ZPX = 0x16
	ASL_ABS = 0x0E
	ASL_ABX = 0x1E

	LSR_ACC = 0x4A
	LSR_ZP  = 0x46
	LSR_ZPX = 0x56
	LSR_ABS = 0x4E
	LSR_ABX = 0x5E

	ROL_ACC = 0x2A
	ROL_ZP  = 0x26
	ROL_ZPX = 0x36
	ROL_ABS = 0x2E
	ROL_ABX = 0x3E

	ROR_ACC = 0x6A
	ROR_ZP  = 0x66
	ROR_ZPX = 0x76
	ROR_ABS = 0x6E
	ROR_ABX = 0x7E

	JMP_ABS = 0x4C
	JMP_IND = 0x6C
	JSR_ABS = 0x20
	RTS     = 0x60

	BCC = 0x90
	BCS = 0xB0
	BEQ = 0xF0
	BMI = 0x30
	BNE = 0xD0
	BPL = 0x10
	BVC = 0x50
	BVS = 0x70

	CLC = 0x18
	CLD = 0xD8
	CLI = 0x58
	CLV = 0xB8
	SEC = 0x38
	SED = 0xF8
	SEI = 0x78

	BRK = 0x00
	NOP = 0xEA
	RTI = 0x40
)

// Mode is an addressing mode a Step operand can be fetched through.
type Mode int

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// Entry is one opcode table row.
type Entry struct {
	Mnemonic    string
	Mode        Mode
	Length      uint8
	Description string
	Exec        func(c *CPU)
}

// OpcodeTable maps every implemented 6502 opcode byte to its Entry. It is
// exported so the disassembler package can walk the same table Step does.
var OpcodeTable = map[uint8]Entry{}

func add6502(opcode uint8, e Entry) {
	if _, exists := OpcodeTable[opcode]; exists {
		panic(fmt.Sprintf("mos6502: duplicate opcode %02X", opcode))
	}
	OpcodeTable[opcode] = e
}

// CPU represents the 6502 processor, holding the register file, status
// register, and the Memory it exclusively owns.
type CPU struct {
	A, X, Y uint8
	PC      uint16
	SP      uint8
	SR      mos6502.SR
	Memory  *memory.Memory

	trace *trace.Sink
}

// NewCPU returns a CPU with SP at the top of the stack page, a zeroed SR
// (the default this core uses in place of the conventional 0x24 power-on
// value), a fresh zero-filled Memory, and debug tracing on.
func NewCPU() *CPU {
	return &CPU{
		SP:     0xFF,
		SR:     mos6502.New(),
		Memory: memory.New(),
		trace:  trace.NewSink(),
	}
}

// LoadProgram writes program into Memory at startAddr and points PC at it.
func (c *CPU) LoadProgram(program []byte, startAddr uint16) {
	c.Memory.LoadProgram(program, startAddr)
	c.PC = startAddr
}

// Reset loads PC from the reset vector at 0xFFFC-0xFFFD and restores the
// power-on register defaults.
func (c *CPU) Reset() {
	c.PC = c.Memory.ReadWord(0xFFFC)
	c.SP = 0xFF
	c.SR = mos6502.New()
	c.A, c.X, c.Y = 0, 0, 0
}

// SetDebug toggles per-instruction trace output.
func (c *CPU) SetDebug(enabled bool) {
	c.trace.SetEnabled(enabled)
}

// SetTraceOutput redirects the debug trace sink, e.g. for test capture.
func (c *CPU) SetTraceOutput(w io.Writer) {
	c.trace.SetOutput(w)
}

// PrintRegisters renders a fixed-format multi-line register and flag dump.
func (c *CPU) PrintRegisters() string {
	return fmt.Sprintf(
		"Registers\n--------------------------------------------------------------------------\n"+
			"|  A  |  X  |  Y  |  SP   |  PC   | SR | N | V | U | B | D | I | Z | C |\n"+
			"|-----|-----|-----|-------|-------|----|---|---|---|---|---|---|---|---|\n"+
			"| %02XH | %02XH | %02XH | 01%02XH | %04XH | %02XH | %d | %d | %d | %d | %d | %d | %d | %d |\n"+
			"--------------------------------------------------------------------------\n",
		c.A, c.X, c.Y, c.SP, c.PC, c.SR.Byte(),
		boolBit(c.SR.IsNegative()), boolBit(c.SR.IsOverflow()), boolBit(c.SR.IsUnused()),
		boolBit(c.SR.IsBreak()), boolBit(c.SR.IsDecimal()), boolBit(c.SR.IsInterrupt()),
		boolBit(c.SR.IsZero()), boolBit(c.SR.IsCarry()),
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

// fetchAddress resolves the effective address for the zero-page, absolute,
// and indexed-indirect addressing modes, consuming exactly the operand
// bytes that mode carries. Implied, Accumulator, Immediate, Relative, and
// Indirect are not handled here (JMP ($nnnn) resolves its own pointer).
func (c *CPU) fetchAddress(mode Mode) uint16 {
	switch mode {
	case ZeroPage:
		return uint16(c.fetch8())
	case ZeroPageX:
		return uint16(c.fetch8() + c.X)
	case ZeroPageY:
		return uint16(c.fetch8() + c.Y)
	case Absolute:
		return c.fetch16()
	case AbsoluteX:
		return c.fetch16() + uint16(c.X)
	case AbsoluteY:
		return c.fetch16() + uint16(c.Y)
	case IndirectX:
		zp := c.fetch8() + c.X
		return c.Memory.ReadWordZeroPage(zp)
	case IndirectY:
		zp := c.fetch8()
		return c.Memory.ReadWordZeroPage(zp) + uint16(c.Y)
	}
	panic("fetchAddress: mode has no address")
}

// operand reads the byte value an ALU instruction operates on, for any
// mode except Accumulator (which reads A directly in the instruction
// body — ASL/LSR/ROL/ROR go through rmw instead).
func (c *CPU) operand(mode Mode) uint8 {
	if mode == Immediate {
		return c.fetch8()
	}
	return c.Memory.ReadByte(c.fetchAddress(mode))
}

// storeAt writes v to the address mode resolves to.
func (c *CPU) storeAt(mode Mode, v uint8) {
	c.Memory.WriteByte(c.fetchAddress(mode), v)
}

// rmw reads, transforms, and writes back the operand of a read-modify-
// write instruction (ASL/LSR/ROL/ROR/INC/DEC), resolving the address (or
// using A directly for Accumulator mode) exactly once.
func (c *CPU) rmw(mode Mode, op func(uint8) uint8) {
	if mode == Accumulator {
		c.A = op(c.A)
		return
	}
	addr := c.fetchAddress(mode)
	c.Memory.WriteByte(addr, op(c.Memory.ReadByte(addr)))
}

// --- stack helpers. SP is an 8-bit index into page 1 (0x0100-0x01FF) and
// grows down.

func (c *CPU) push8(v uint8) {
	c.Memory.WriteByte(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop8() uint8 {
	c.SP++
	return c.Memory.ReadByte(0x0100 | uint16(c.SP))
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

// --- arithmetic primitives. Decimal mode is stored in SR but never
// honoured here: ADC/SBC always operate as pure binary adds/subtracts.

func (c *CPU) adc(value uint8) {
	carry := uint16(0)
	if c.SR.IsCarry() {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	overflow := (c.A^value)&0x80 == 0 && (c.A^uint8(sum))&0x80 != 0
	c.SR.SetCarry(sum > 0xFF)
	c.SR.SetOverflow(overflow)
	c.A = uint8(sum)
	c.SR.SetZN(c.A)
}

// sbc computes the result with signed arithmetic before A is overwritten,
// so the overflow check reads the original operands rather than a value
// already clobbered by the store.
func (c *CPU) sbc(value uint8) {
	borrow := int(0)
	if !c.SR.IsCarry() {
		borrow = 1
	}
	orig := c.A
	res := int(orig) - int(value) - borrow
	overflow := (int(orig)^int(value))&0x80 != 0 && (int(orig)^(res&0xFF))&0x80 != 0
	c.SR.SetCarry(res >= 0)
	c.SR.SetOverflow(overflow)
	c.A = uint8(res)
	c.SR.SetZN(c.A)
}

func (c *CPU) compare(reg uint8, value uint8) {
	c.SR.SetCarry(reg >= value)
	c.SR.SetZN(reg - value)
}

func (c *CPU) asl(v uint8) uint8 {
	c.SR.SetCarry(v&0x80 != 0)
	r := v << 1
	c.SR.SetZN(r)
	return r
}

func (c *CPU) lsr(v uint8) uint8 {
	c.SR.SetCarry(v&0x01 != 0)
	r := v >> 1
	c.SR.SetZN(r)
	return r
}

func (c *CPU) rol(v uint8) uint8 {
	oldCarry := c.SR.IsCarry()
	c.SR.SetCarry(v&0x80 != 0)
	r := v << 1
	if oldCarry {
		r |= 0x01
	}
	c.SR.SetZN(r)
	return r
}

func (c *CPU) ror(v uint8) uint8 {
	oldCarry := c.SR.IsCarry()
	c.SR.SetCarry(v&0x01 != 0)
	r := v >> 1
	if oldCarry {
		r |= 0x80
	}
	c.SR.SetZN(r)
	return r
}

func (c *CPU) branch(taken bool) {
	offset := int8(c.fetch8())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}
