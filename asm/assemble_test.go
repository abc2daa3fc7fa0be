package asm

import (
	"bytes"
	"testing"

	"github.com/codyhome/cody65c02/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleBackwardBranch(t *testing.T) {
	program := []Instruction{
		LabelledBare("start", cpu.NOP),
		Insn(cpu.BRA, Label("start")),
	}

	var buf bytes.Buffer
	require.NoError(t, Assemble(program, &buf))
	assert.Equal(t, []byte{0xEA, 0x80, 0xFD}, buf.Bytes()) // NOP, BRA, -3
}

func TestAssembleForwardBranch(t *testing.T) {
	program := []Instruction{
		Insn(cpu.BRA, Label("skip")),
		Bare(cpu.NOP),
		LabelledBare("skip", cpu.NOP),
	}

	var buf bytes.Buffer
	require.NoError(t, Assemble(program, &buf))
	assert.Equal(t, []byte{0x80, 0x01, 0xEA, 0xEA}, buf.Bytes())
}

func TestAssembleZeroPageOptimization(t *testing.T) {
	program := []Instruction{
		Insn(cpu.STA, Absolute(0x0010)),
	}
	var buf bytes.Buffer
	require.NoError(t, Assemble(program, &buf))
	// STA zp, not the 3-byte absolute form.
	assert.Equal(t, []byte{0x85, 0x10}, buf.Bytes())
}

func TestAssembleDoubleLabelFails(t *testing.T) {
	program := []Instruction{
		LabelledBare("dup", cpu.NOP),
		LabelledBare("dup", cpu.NOP),
	}
	var buf bytes.Buffer
	err := Assemble(program, &buf)

	var ae *AssemblerError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrDoubleLabel, ae.Kind)
}

func TestAssembleUnknownLabelFails(t *testing.T) {
	program := []Instruction{
		Insn(cpu.BRA, Label("nowhere")),
	}
	var buf bytes.Buffer
	err := Assemble(program, &buf)

	var ae *AssemblerError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrUnknownLabel, ae.Kind)
}

func TestAssembleJumpTooFarFails(t *testing.T) {
	program := []Instruction{
		Insn(cpu.BRA, Label("far")),
	}
	for i := 0; i < 200; i++ {
		program = append(program, Bare(cpu.NOP))
	}
	program = append(program, LabelledBare("far", cpu.NOP))

	var buf bytes.Buffer
	err := Assemble(program, &buf)

	var ae *AssemblerError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrJumpTooFar, ae.Kind)
}

func TestAssembleTwoOperandBBS(t *testing.T) {
	program := []Instruction{
		Insn(cpu.BBS0, List(Absolute(0x10), Label("target"))),
		LabelledBare("target", cpu.NOP),
	}
	var buf bytes.Buffer
	require.NoError(t, Assemble(program, &buf))
	// opcode + zp addr + rel offset, then the NOP.
	assert.Equal(t, 4, buf.Len())
}
