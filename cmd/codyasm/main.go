// codyasm assembles the built-in demo program and writes it as a
// Cody cartridge image. The asm package consumes a programmatic
// Instruction AST (per spec.md §4.G and original_source's assembler.rs
// DSL), not an assembly-text syntax, so this tool is a worked example
// of driving that AST rather than a general-purpose text assembler;
// text parsing was never implemented in original_source either.
// Follows the cobra CLI shape of oisee-z80-optimizer's cmd/z80opt.
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/codyhome/cody65c02/asm"
	"github.com/codyhome/cody65c02/cpu"
	"github.com/spf13/cobra"
)

// demoProgram exercises a branch, a load, and a BBS-style bit test
// against a forward label, the same shape spec.md §8 uses as an
// end-to-end test scenario.
func demoProgram() []asm.Instruction {
	return []asm.Instruction{
		asm.Insn(cpu.LDA, asm.Immediate(0x00)),
		asm.Insn(cpu.BRA, asm.Label("skip")),
		asm.Insn(cpu.LDA, asm.Immediate(0xFF)),
		asm.LabelledBare("skip", cpu.NOP),
		asm.Insn(cpu.LDA, asm.Immediate(0x01)),
		asm.Insn(cpu.STA, asm.Absolute(0x0010)),
		asm.Insn(cpu.BBS0, asm.List(asm.Absolute(0x0010), asm.Label("set"))),
		asm.Insn(cpu.LDX, asm.Immediate(0x00)),
		asm.LabelledBare("set", cpu.NOP),
		asm.Bare(cpu.STP),
	}
}

func main() {
	var output string

	rootCmd := &cobra.Command{
		Use:   "codyasm",
		Short: "Assemble the built-in Cody demo program into a cartridge image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return assemble(output)
		},
	}
	rootCmd.Flags().StringVarP(&output, "output", "o", "demo.cody", "output cartridge path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func assemble(output string) error {
	var body bytes.Buffer
	if err := asm.Assemble(demoProgram(), &body); err != nil {
		return fmt.Errorf("codyasm: %w", err)
	}

	const load = uint16(0xE000)
	end := load + uint16(body.Len()) - 1

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("codyasm: %w", err)
	}
	defer f.Close()

	var header [4]byte
	binary.LittleEndian.PutUint16(header[0:2], load)
	binary.LittleEndian.PutUint16(header[2:4], end)
	if _, err := f.Write(header[:]); err != nil {
		return fmt.Errorf("codyasm: %w", err)
	}
	if _, err := f.Write(body.Bytes()); err != nil {
		return fmt.Errorf("codyasm: %w", err)
	}

	fmt.Printf("wrote %d bytes to %s (load $%04X, end $%04X)\n", body.Len(), output, load, end)
	return nil
}
