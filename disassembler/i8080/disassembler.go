// Package i8080 disassembles 8080 machine code by walking the same
// opcode table cpu/i8080's Step executes against, so the two can never
// disagree about an instruction's mnemonic or length.
package i8080

import (
	"fmt"
	"strings"

	"github.com/sladek/sbc8micro/cpu/i8080"
)

// Reader is the read-only memory access a disassembler needs.
type Reader interface {
	ReadByte(addr uint16) uint8
}

func formatOperand(mode i8080.Mode, operandBytes []byte) string {
	switch mode {
	case i8080.ModeImmediate8, i8080.ModeDirectPort:
		return fmt.Sprintf("%02XH", operandBytes[0])
	case i8080.ModeImmediate16, i8080.ModeDirect:
		return fmt.Sprintf("%02X%02XH", operandBytes[1], operandBytes[0])
	default:
		return ""
	}
}

// needsSpace reports whether the operand must be separated from the
// mnemonic by a space: true for the direct and port modes (JMP/CALL/
// conditional-jump/IN/OUT/STA-family), false for the immediate modes whose
// mnemonic already ends in a comma (MVI B,/ADI,) so the operand is appended
// directly.
func needsSpace(mode i8080.Mode) bool {
	return mode == i8080.ModeDirect || mode == i8080.ModeDirectPort
}

func line(mem Reader, pc uint16, verbose bool) (string, uint8) {
	opcode := mem.ReadByte(pc)
	entry, ok := i8080.OpcodeTable[opcode]
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

	operand := formatOperand(entry.Mode, operandBytes)
	text := entry.Mnemonic
	if operand != "" {
		if needsSpace(entry.Mode) {
			text += " " + operand
		} else {
			text += operand
		}
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
