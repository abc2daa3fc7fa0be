// Package disassemble implements a disassembler for the Cody 65C02
// opcode table. Adapted from the teacher's disassemble/disassemble.go
// Step(pc, ram) (string, int) shape, but table-driven off cpu.ByByte
// rather than a hand-written 256-case switch: the teacher's NMOS
// 6502 disassembler predates having a structured opcode catalogue in
// that codebase, whereas this repo's cpu package already is one.
package disassemble

import (
	"fmt"

	"github.com/codyhome/cody65c02/cpu"
	"github.com/codyhome/cody65c02/memory"
)

// Step disassembles the instruction at pc, returning its text and the
// number of bytes it occupies. It does not follow control flow: a
// JMP target is rendered as an address, not pursued. It reads the
// opcode byte at pc plus whatever operand bytes the opcode's
// addressing modes take (none for implied, accumulator and
// undocumented opcodes), so an instruction cut off at the end of a
// buffer reads past it.
func Step(pc uint16, mem memory.Memory) (string, int) {
	b := mem.ReadU8(pc)
	meta := cpu.ByByte(b)
	if meta == nil {
		return "???", 1
	}

	text := meta.Mnemonic.String()
	operandStart := pc + 1

	if s := formatOperand(meta.Param1, operandStart, mem); s != "" {
		text += " " + s
	}
	if meta.HasParam2 {
		operand2Start := operandStart + uint16(meta.Param1.Width())
		if s := formatOperand(meta.Param2, operand2Start, mem); s != "" {
			text += "," + s
		}
	}

	return text, meta.Width()
}

func formatOperand(mode cpu.AddressingMode, operandStart uint16, mem memory.Memory) string {
	switch mode {
	case cpu.None:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", mem.ReadU8(operandStart))
	case cpu.Absolute:
		return fmt.Sprintf("$%04X", memory.ReadU16(mem, operandStart))
	case cpu.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", memory.ReadU16(mem, operandStart))
	case cpu.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", memory.ReadU16(mem, operandStart))
	case cpu.AbsoluteIndirect:
		return fmt.Sprintf("($%04X)", memory.ReadU16(mem, operandStart))
	case cpu.AbsoluteIndexedIndirectX:
		return fmt.Sprintf("($%04X,X)", memory.ReadU16(mem, operandStart))
	case cpu.ProgramCounterRelative:
		off := int8(mem.ReadU8(operandStart))
		target := uint16(int32(operandStart) + 1 + int32(off))
		return fmt.Sprintf("$%04X", target)
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", mem.ReadU8(operandStart))
	case cpu.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", mem.ReadU8(operandStart))
	case cpu.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", mem.ReadU8(operandStart))
	case cpu.ZeroPageIndirect:
		return fmt.Sprintf("($%02X)", mem.ReadU8(operandStart))
	case cpu.ZeroPageIndexedIndirectX:
		return fmt.Sprintf("($%02X,X)", mem.ReadU8(operandStart))
	case cpu.ZeroPageIndirectIndexedY:
		return fmt.Sprintf("($%02X),Y", mem.ReadU8(operandStart))
	default:
		return ""
	}
}
