// Command disasm loads a raw binary file into a flat memory image and
// prints its disassembly for either supported instruction set.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	disi8080 "github.com/sladek/sbc8micro/disassembler/i8080"
	dismos6502 "github.com/sladek/sbc8micro/disassembler/mos6502"
	"github.com/sladek/sbc8micro/memory"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble 8080 or 6502 binary images",
	}

	var addrStr string
	var verbose bool

	i8080Cmd := &cobra.Command{
		Use:   "i8080 FILE",
		Short: "Disassemble an 8080 binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseAddr(addrStr)
			if err != nil {
				return err
			}
			mem, end, err := loadBinary(args[0], start)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Print(disi8080.DisassembleVerbose(mem, start, end))
			} else {
				fmt.Print(disi8080.Disassemble(mem, start, end))
			}
			return nil
		},
	}
	i8080Cmd.Flags().StringVarP(&addrStr, "addr", "a", "0x0000", "Load address")
	i8080Cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Append each opcode's description as a trailing comment")

	var addrStr6502 string
	var verbose6502 bool
	mos6502Cmd := &cobra.Command{
		Use:   "mos6502 FILE",
		Short: "Disassemble a 6502 binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseAddr(addrStr6502)
			if err != nil {
				return err
			}
			mem, end, err := loadBinary(args[0], start)
			if err != nil {
				return err
			}
			if verbose6502 {
				fmt.Print(dismos6502.DisassembleVerbose(mem, start, end))
			} else {
				fmt.Print(dismos6502.Disassemble(mem, start, end))
			}
			return nil
		},
	}
	mos6502Cmd.Flags().StringVarP(&addrStr6502, "addr", "a", "0x0000", "Load address")
	mos6502Cmd.Flags().BoolVarP(&verbose6502, "verbose", "v", false, "Append each opcode's description as a trailing comment")

	rootCmd.AddCommand(i8080Cmd, mos6502Cmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseAddr accepts 0x-prefixed hex, $-prefixed hex, or decimal.
func parseAddr(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}

// loadBinary reads filename into a fresh Memory at start and returns the
// exclusive end address of the loaded region.
func loadBinary(filename string, start uint16) (*memory.Memory, uint16, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read binary file: %w", err)
	}
	if int(start)+len(data) > memory.Size {
		return nil, 0, fmt.Errorf("binary file too large for available memory")
	}

	mem := memory.New()
	mem.LoadProgram(data, start)
	return mem, start + uint16(len(data)), nil
}
