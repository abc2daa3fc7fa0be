package asm

import (
	"github.com/codyhome/cody65c02/cpu"
)

// Instruction is one line of the symbolic program the assembler
// consumes: an optional label binding, a mnemonic, and its operand.
// Go has no extension-trait equivalent of the Rust MnemonicDSL, so
// construction goes through the free functions below (Insn, Bare,
// Labelled) rather than a fluent method chained off cpu.Mnemonic.
type Instruction struct {
	Label     string
	HasLabel  bool
	Mnemonic  cpu.Mnemonic
	Parameter Parameter
}

// Insn builds an unlabelled instruction.
func Insn(m cpu.Mnemonic, p Parameter) Instruction {
	return Instruction{Mnemonic: m, Parameter: p}
}

// Bare builds an unlabelled, operand-less instruction.
func Bare(m cpu.Mnemonic) Instruction {
	return Insn(m, None())
}

// Labelled builds an instruction that binds label to its address.
func Labelled(label string, m cpu.Mnemonic, p Parameter) Instruction {
	return Instruction{Label: label, HasLabel: true, Mnemonic: m, Parameter: p}
}

// LabelledBare builds a labelled, operand-less instruction.
func LabelledBare(label string, m cpu.Mnemonic) Instruction {
	return Labelled(label, m, None())
}

// String renders an Instruction for debug/trace output.
func (i Instruction) String() string {
	s := ""
	if i.HasLabel {
		s += i.Label + ": "
	}
	s += i.Mnemonic.String()
	if i.Parameter.Kind != ParamNone {
		s += " " + i.Parameter.String()
	}
	return s
}
