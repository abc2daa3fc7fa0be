// Package cpu implements the W65C02S instruction interpreter: the
// opcode/addressing-mode catalogue (this file), and the per-mnemonic
// execution engine (cpu.go and friends). The catalogue is transcribed
// from original_source's opcode.rs OPCODES table; base cycle counts
// follow the WDC W65C02S datasheet (not present verbatim in the Rust
// source, which never finished wiring cycle accounting).
package cpu

// OpMeta is one immutable opcode-table entry.
type OpMeta struct {
	Byte       uint8
	Mnemonic   Mnemonic
	Param1     AddressingMode
	Param2     AddressingMode
	HasParam2  bool
	BaseCycles uint8
}

// Width returns 1 (the opcode byte) plus the width of both operands.
func (m OpMeta) Width() int {
	w := 1 + m.Param1.Width()
	if m.HasParam2 {
		w += m.Param2.Width()
	}
	return w
}

func op(b uint8, mn Mnemonic, p1 AddressingMode, cycles uint8) OpMeta {
	return OpMeta{Byte: b, Mnemonic: mn, Param1: p1, BaseCycles: cycles}
}

func wop(b uint8, mn Mnemonic, p1, p2 AddressingMode, cycles uint8) OpMeta {
	return OpMeta{Byte: b, Mnemonic: mn, Param1: p1, Param2: p2, HasParam2: true, BaseCycles: cycles}
}

// opcodes is the unordered catalogue of all 212 documented W65C02S
// opcodes. Do not iterate it for byte lookup; use ByByte.
var opcodes = [212]OpMeta{
	op(0x69, ADC, Immediate, 2),
	op(0x6D, ADC, Absolute, 4),
	op(0x7D, ADC, AbsoluteIndexedX, 4),
	op(0x79, ADC, AbsoluteIndexedY, 4),
	op(0x65, ADC, ZeroPage, 3),
	op(0x75, ADC, ZeroPageIndexedX, 4),
	op(0x61, ADC, ZeroPageIndexedIndirectX, 6),
	op(0x72, ADC, ZeroPageIndirect, 5),
	op(0x71, ADC, ZeroPageIndirectIndexedY, 5),

	op(0x29, AND, Immediate, 2),
	op(0x2D, AND, Absolute, 4),
	op(0x3D, AND, AbsoluteIndexedX, 4),
	op(0x39, AND, AbsoluteIndexedY, 4),
	op(0x25, AND, ZeroPage, 3),
	op(0x35, AND, ZeroPageIndexedX, 4),
	op(0x21, AND, ZeroPageIndexedIndirectX, 6),
	op(0x32, AND, ZeroPageIndirect, 5),
	op(0x31, AND, ZeroPageIndirectIndexedY, 5),

	op(0x0A, ASL, Accumulator, 2),
	op(0x0E, ASL, Absolute, 6),
	op(0x1E, ASL, AbsoluteIndexedX, 6),
	op(0x06, ASL, ZeroPage, 5),
	op(0x16, ASL, ZeroPageIndexedX, 6),

	wop(0x0F, BBR0, ZeroPage, ProgramCounterRelative, 5),
	wop(0x1F, BBR1, ZeroPage, ProgramCounterRelative, 5),
	wop(0x2F, BBR2, ZeroPage, ProgramCounterRelative, 5),
	wop(0x3F, BBR3, ZeroPage, ProgramCounterRelative, 5),
	wop(0x4F, BBR4, ZeroPage, ProgramCounterRelative, 5),
	wop(0x5F, BBR5, ZeroPage, ProgramCounterRelative, 5),
	wop(0x6F, BBR6, ZeroPage, ProgramCounterRelative, 5),
	wop(0x7F, BBR7, ZeroPage, ProgramCounterRelative, 5),
	wop(0x8F, BBS0, ZeroPage, ProgramCounterRelative, 5),
	wop(0x9F, BBS1, ZeroPage, ProgramCounterRelative, 5),
	wop(0xAF, BBS2, ZeroPage, ProgramCounterRelative, 5),
	wop(0xBF, BBS3, ZeroPage, ProgramCounterRelative, 5),
	wop(0xCF, BBS4, ZeroPage, ProgramCounterRelative, 5),
	wop(0xDF, BBS5, ZeroPage, ProgramCounterRelative, 5),
	wop(0xEF, BBS6, ZeroPage, ProgramCounterRelative, 5),
	wop(0xFF, BBS7, ZeroPage, ProgramCounterRelative, 5),

	op(0x90, BCC, ProgramCounterRelative, 2),
	op(0xB0, BCS, ProgramCounterRelative, 2),
	op(0xF0, BEQ, ProgramCounterRelative, 2),

	op(0x89, BIT, Immediate, 2),
	op(0x2C, BIT, Absolute, 4),
	op(0x3C, BIT, AbsoluteIndexedX, 4),
	op(0x24, BIT, ZeroPage, 3),
	op(0x34, BIT, ZeroPageIndexedX, 4),

	op(0x30, BMI, ProgramCounterRelative, 2),
	op(0xD0, BNE, ProgramCounterRelative, 2),
	op(0x10, BPL, ProgramCounterRelative, 2),
	op(0x80, BRA, ProgramCounterRelative, 2),
	op(0x00, BRK, None, 7),
	op(0x50, BVC, ProgramCounterRelative, 2),
	op(0x70, BVS, ProgramCounterRelative, 2),

	op(0x18, CLC, None, 2),
	op(0xD8, CLD, None, 2),
	op(0x58, CLI, None, 2),
	op(0xB8, CLV, None, 2),

	op(0xC9, CMP, Immediate, 2),
	op(0xCD, CMP, Absolute, 4),
	op(0xDD, CMP, AbsoluteIndexedX, 4),
	op(0xD9, CMP, AbsoluteIndexedY, 4),
	op(0xC5, CMP, ZeroPage, 3),
	op(0xD5, CMP, ZeroPageIndexedX, 4),
	op(0xC1, CMP, ZeroPageIndexedIndirectX, 6),
	op(0xD2, CMP, ZeroPageIndirect, 5),
	op(0xD1, CMP, ZeroPageIndirectIndexedY, 5),

	op(0xE0, CPX, Immediate, 2),
	op(0xEC, CPX, Absolute, 4),
	op(0xE4, CPX, ZeroPage, 3),

	op(0xC0, CPY, Immediate, 2),
	op(0xCC, CPY, Absolute, 4),
	op(0xC4, CPY, ZeroPage, 3),

	op(0x3A, DEC, Accumulator, 2),
	op(0xCE, DEC, Absolute, 6),
	op(0xDE, DEC, AbsoluteIndexedX, 7),
	op(0xC6, DEC, ZeroPage, 5),
	op(0xD6, DEC, ZeroPageIndexedX, 6),

	op(0xCA, DEX, None, 2),
	op(0x88, DEY, None, 2),

	op(0x49, EOR, Immediate, 2),
	op(0x4D, EOR, Absolute, 4),
	op(0x5D, EOR, AbsoluteIndexedX, 4),
	op(0x59, EOR, AbsoluteIndexedY, 4),
	op(0x45, EOR, ZeroPage, 3),
	op(0x55, EOR, ZeroPageIndexedX, 4),
	op(0x41, EOR, ZeroPageIndexedIndirectX, 6),
	op(0x52, EOR, ZeroPageIndirect, 5),
	op(0x51, EOR, ZeroPageIndirectIndexedY, 5),

	op(0x1A, INC, Accumulator, 2),
	op(0xEE, INC, Absolute, 6),
	op(0xFE, INC, AbsoluteIndexedX, 7),
	op(0xE6, INC, ZeroPage, 5),
	op(0xF6, INC, ZeroPageIndexedX, 6),

	op(0xE8, INX, None, 2),
	op(0xC8, INY, None, 2),

	op(0x4C, JMP, Absolute, 3),
	op(0x7C, JMP, AbsoluteIndexedIndirectX, 6),
	op(0x6C, JMP, AbsoluteIndirect, 6),

	op(0x20, JSR, Absolute, 6),

	op(0xA9, LDA, Immediate, 2),
	op(0xAD, LDA, Absolute, 4),
	op(0xBD, LDA, AbsoluteIndexedX, 4),
	op(0xB9, LDA, AbsoluteIndexedY, 4),
	op(0xA5, LDA, ZeroPage, 3),
	op(0xB5, LDA, ZeroPageIndexedX, 4),
	op(0xA1, LDA, ZeroPageIndexedIndirectX, 6),
	op(0xB2, LDA, ZeroPageIndirect, 5),
	op(0xB1, LDA, ZeroPageIndirectIndexedY, 5),

	op(0xA2, LDX, Immediate, 2),
	op(0xAE, LDX, Absolute, 4),
	op(0xBE, LDX, AbsoluteIndexedY, 4),
	op(0xA6, LDX, ZeroPage, 3),
	op(0xB6, LDX, ZeroPageIndexedY, 4),

	op(0xA0, LDY, Immediate, 2),
	op(0xAC, LDY, Absolute, 4),
	op(0xBC, LDY, AbsoluteIndexedX, 4),
	op(0xA4, LDY, ZeroPage, 3),
	op(0xB4, LDY, ZeroPageIndexedX, 4),

	op(0x4A, LSR, Accumulator, 2),
	op(0x4E, LSR, Absolute, 6),
	op(0x5E, LSR, AbsoluteIndexedX, 6),
	op(0x46, LSR, ZeroPage, 5),
	op(0x56, LSR, ZeroPageIndexedX, 6),

	op(0xEA, NOP, None, 2),

	op(0x09, ORA, Immediate, 2),
	op(0x0D, ORA, Absolute, 4),
	op(0x1D, ORA, AbsoluteIndexedX, 4),
	op(0x19, ORA, AbsoluteIndexedY, 4),
	op(0x05, ORA, ZeroPage, 3),
	op(0x15, ORA, ZeroPageIndexedX, 4),
	op(0x01, ORA, ZeroPageIndexedIndirectX, 6),
	op(0x12, ORA, ZeroPageIndirect, 5),
	op(0x11, ORA, ZeroPageIndirectIndexedY, 5),

	op(0x48, PHA, None, 3),
	op(0x08, PHP, None, 3),
	op(0xDA, PHX, None, 3),
	op(0x5A, PHY, None, 3),
	op(0x68, PLA, None, 4),
	op(0x28, PLP, None, 4),
	op(0xFA, PLX, None, 4),
	op(0x7A, PLY, None, 4),

	op(0x07, RMB0, ZeroPage, 5),
	op(0x17, RMB1, ZeroPage, 5),
	op(0x27, RMB2, ZeroPage, 5),
	op(0x37, RMB3, ZeroPage, 5),
	op(0x47, RMB4, ZeroPage, 5),
	op(0x57, RMB5, ZeroPage, 5),
	op(0x67, RMB6, ZeroPage, 5),
	op(0x77, RMB7, ZeroPage, 5),

	op(0x2A, ROL, Accumulator, 2),
	op(0x2E, ROL, Absolute, 6),
	op(0x3E, ROL, AbsoluteIndexedX, 6),
	op(0x26, ROL, ZeroPage, 5),
	op(0x36, ROL, ZeroPageIndexedX, 6),

	op(0x6A, ROR, Accumulator, 2),
	op(0x6E, ROR, Absolute, 6),
	op(0x7E, ROR, AbsoluteIndexedX, 6),
	op(0x66, ROR, ZeroPage, 5),
	op(0x76, ROR, ZeroPageIndexedX, 6),

	op(0x40, RTI, None, 6),
	op(0x60, RTS, None, 6),

	op(0xE9, SBC, Immediate, 2),
	op(0xED, SBC, Absolute, 4),
	op(0xFD, SBC, AbsoluteIndexedX, 4),
	op(0xF9, SBC, AbsoluteIndexedY, 4),
	op(0xE5, SBC, ZeroPage, 3),
	op(0xF5, SBC, ZeroPageIndexedX, 4),
	op(0xE1, SBC, ZeroPageIndexedIndirectX, 6),
	op(0xF2, SBC, ZeroPageIndirect, 5),
	op(0xF1, SBC, ZeroPageIndirectIndexedY, 5),

	op(0x38, SEC, None, 2),
	op(0xF8, SED, None, 2),
	op(0x78, SEI, None, 2),

	op(0x87, SMB0, ZeroPage, 5),
	op(0x97, SMB1, ZeroPage, 5),
	op(0xA7, SMB2, ZeroPage, 5),
	op(0xB7, SMB3, ZeroPage, 5),
	op(0xC7, SMB4, ZeroPage, 5),
	op(0xD7, SMB5, ZeroPage, 5),
	op(0xE7, SMB6, ZeroPage, 5),
	op(0xF7, SMB7, ZeroPage, 5),

	op(0x8D, STA, Absolute, 4),
	op(0x9D, STA, AbsoluteIndexedX, 5),
	op(0x99, STA, AbsoluteIndexedY, 5),
	op(0x85, STA, ZeroPage, 3),
	op(0x95, STA, ZeroPageIndexedX, 4),
	op(0x81, STA, ZeroPageIndexedIndirectX, 6),
	op(0x92, STA, ZeroPageIndirect, 5),
	op(0x91, STA, ZeroPageIndirectIndexedY, 6),

	op(0xDB, STP, None, 3),

	op(0x8E, STX, Absolute, 4),
	op(0x86, STX, ZeroPage, 3),
	op(0x96, STX, ZeroPageIndexedY, 4),

	op(0x8C, STY, Absolute, 4),
	op(0x84, STY, ZeroPage, 3),
	op(0x94, STY, ZeroPageIndexedX, 4),

	op(0x9C, STZ, Absolute, 4),
	op(0x9E, STZ, AbsoluteIndexedX, 5),
	op(0x64, STZ, ZeroPage, 3),
	op(0x74, STZ, ZeroPageIndexedX, 4),

	op(0xAA, TAX, None, 2),
	op(0xA8, TAY, None, 2),

	op(0x1C, TRB, Absolute, 6),
	op(0x14, TRB, ZeroPage, 5),
	op(0x0C, TSB, Absolute, 6),
	op(0x04, TSB, ZeroPage, 5),

	op(0xBA, TSX, None, 2),
	op(0x8A, TXA, None, 2),
	op(0x9A, TXS, None, 2),
	op(0x98, TYA, None, 2),

	op(0xCB, WAI, None, 3),
}

// byByte maps each of the 256 opcode bytes to its meta, or nil for
// undocumented bytes (treated as 1-cycle NOPs per spec.md §4.A/§7).
var byByte [256]*OpMeta

// byMnemonic maps each mnemonic to the candidate encodings the
// assembler may choose among.
var byMnemonic map[Mnemonic][]*OpMeta

func init() {
	byMnemonic = make(map[Mnemonic][]*OpMeta, len(mnemonicNames))
	for i := range opcodes {
		m := &opcodes[i]
		if byByte[m.Byte] != nil {
			panic("duplicate opcode byte in table")
		}
		byByte[m.Byte] = m
		byMnemonic[m.Mnemonic] = append(byMnemonic[m.Mnemonic], m)
	}
}

// ByByte returns the opcode meta for b, or nil if b is undocumented.
func ByByte(b uint8) *OpMeta {
	return byByte[b]
}

// ByMnemonic returns every candidate encoding for mn, used by the
// assembler to select an addressing mode.
func ByMnemonic(mn Mnemonic) []*OpMeta {
	return byMnemonic[mn]
}
