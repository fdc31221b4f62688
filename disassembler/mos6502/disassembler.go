// Package mos6502 disassembles 6502 machine code by walking the same
// opcode table cpu/mos6502's Step executes against, so the two can never
// disagree about an instruction's mnemonic, length, or addressing mode.
package mos6502

import (
	"fmt"
	"strings"

	"github.com/sladek/sbc8micro/cpu/mos6502"
)

// Reader is the read-only memory access a disassembler needs.
type Reader interface {
	ReadByte(addr uint16) uint8
}

// formatOperand renders operandBytes (1 or 2 bytes, little-endian for
// 2-byte modes) per mode's conventional 6502 assembly syntax. pc is the
// address of the instruction's first byte, needed to resolve a Relative
// branch's absolute target.
func formatOperand(mode mos6502.Mode, pc uint16, length uint8, operandBytes []byte) string {
	switch mode {
	case mos6502.Implied:
		return ""
	case mos6502.Accumulator:
		return "A"
	case mos6502.Immediate:
		return fmt.Sprintf("#$%02X", operandBytes[0])
	case mos6502.ZeroPage:
		return fmt.Sprintf("$%02X", operandBytes[0])
	case mos6502.ZeroPageX:
		return fmt.Sprintf("$%02X,X", operandBytes[0])
	case mos6502.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", operandBytes[0])
	case mos6502.Absolute:
		return fmt.Sprintf("$%02X%02X", operandBytes[1], operandBytes[0])
	case mos6502.AbsoluteX:
		return fmt.Sprintf("$%02X%02X,X", operandBytes[1], operandBytes[0])
	case mos6502.AbsoluteY:
		return fmt.Sprintf("$%02X%02X,Y", operandBytes[1], operandBytes[0])
	case mos6502.Indirect:
		return fmt.Sprintf("($%02X%02X)", operandBytes[1], operandBytes[0])
	case mos6502.IndirectX:
		return fmt.Sprintf("($%02X,X)", operandBytes[0])
	case mos6502.IndirectY:
		return fmt.Sprintf("($%02X),Y", operandBytes[0])
	case mos6502.Relative:
		offset := int8(operandBytes[0])
		target := pc + uint16(length) + uint16(offset)
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}

// line renders one disassembled row and returns it with the instruction
// length in bytes, so the caller knows how far to advance.
func line(mem Reader, pc uint16, verbose bool) (string, uint8) {
	opcode := mem.ReadByte(pc)
	entry, ok := mos6502.OpcodeTable[opcode]
	if !ok {
		return fmt.Sprintf("%04X  %02X          !byte %02X", pc, opcode, opcode), 1
	}

	operandBytes := make([]byte, entry.Length-1)
	for i := range operandBytes {
		operandBytes[i] = mem.ReadByte(pc + 1 + uint16(i))
	}

	hex := fmt.Sprintf("%02X", opcode)
	for _, b := range operandBytes {
		hex += fmt.Sprintf(" %02X", b)
	}

	operand := formatOperand(entry.Mode, pc, entry.Length, operandBytes)
	text := entry.Mnemonic
	if operand != "" {
		text += " " + operand
	}

	row := fmt.Sprintf("%04X  %-10s  %s", pc, hex, text)
	if verbose && entry.Description != "" {
		row += "  ; " + entry.Description
	}
	return row, entry.Length
}

// Disassemble walks memory from start to end (exclusive) and returns one
// formatted line per instruction.
func Disassemble(mem Reader, start, end uint16) string {
	return disassemble(mem, start, end, false)
}

// DisassembleVerbose is Disassemble with each line's opcode description
// appended as a trailing comment.
func DisassembleVerbose(mem Reader, start, end uint16) string {
	return disassemble(mem, start, end, true)
}

func disassemble(mem Reader, start, end uint16, verbose bool) string {
	var out strings.Builder
	pc := start
	for pc < end {
		row, length := line(mem, pc, verbose)
		out.WriteString(row)
		out.WriteString("\n")
		if length == 0 {
			length = 1
		}
		pc += uint16(length)
	}
	return out.String()
}
