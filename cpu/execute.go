package cpu

import "github.com/codyhome/cody65c02/memory"

// addressOperand consumes the operand bytes for mode and returns the
// effective address plus whether forming it crossed a page boundary.
// It panics for modes with no address (None, Accumulator, Immediate),
// which callers must special-case via valueOperand instead.
func (c *Chip) addressOperand(mode AddressingMode) (addr uint16, crossed bool) {
	switch mode {
	case Absolute:
		return c.consumeWord(), false
	case AbsoluteIndexedX:
		base := c.consumeWord()
		addr = base + uint16(c.X)
		return addr, (base >> 8) != (addr >> 8)
	case AbsoluteIndexedY:
		base := c.consumeWord()
		addr = base + uint16(c.Y)
		return addr, (base >> 8) != (addr >> 8)
	case AbsoluteIndirect:
		p := c.consumeWord()
		return memory.ReadU16(c.mem, p), false
	case AbsoluteIndexedIndirectX:
		p := c.consumeWord() + uint16(c.X)
		return memory.ReadU16(c.mem, p), false
	case ProgramCounterRelative:
		off := int8(c.consumeByte())
		return uint16(int32(c.PC) + int32(off)), false
	case ZeroPage:
		return uint16(c.consumeByte()), false
	case ZeroPageIndexedX:
		p := c.consumeByte()
		return uint16(p + c.X), false
	case ZeroPageIndexedY:
		p := c.consumeByte()
		return uint16(p + c.Y), false
	case ZeroPageIndirect:
		p := c.consumeByte()
		return memory.ReadU16ZP(c.mem, p), false
	case ZeroPageIndexedIndirectX:
		p := c.consumeByte() + c.X
		return memory.ReadU16ZP(c.mem, p), false
	case ZeroPageIndirectIndexedY:
		p := c.consumeByte()
		base := memory.ReadU16ZP(c.mem, p)
		addr = base + uint16(c.Y)
		return addr, (base >> 8) != (addr >> 8)
	default:
		panic(InvalidCPUState{Reason: "addressOperand: mode has no address"})
	}
}

// valueOperand reads the operand value for mode, consuming operand
// bytes as needed, and reports whether a page boundary was crossed
// forming an indexed address.
func (c *Chip) valueOperand(mode AddressingMode) (value uint8, crossed bool) {
	switch mode {
	case Accumulator:
		return c.A, false
	case Immediate:
		return c.consumeByte(), false
	default:
		addr, crossed := c.addressOperand(mode)
		return c.mem.ReadU8(addr), crossed
	}
}

// storeResult writes v back to either the accumulator or memory,
// depending on mode, for read-modify-write instructions.
func (c *Chip) storeResult(mode AddressingMode, addr uint16, v uint8) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.mem.WriteU8(addr, v)
}

// branch applies target to PC if taken, returning the extra cycles
// charged: 0 if not taken, 1 if taken within the same page, 2 if
// taken across a page boundary, per spec.md's cycle-cost table.
func (c *Chip) branch(taken bool, target uint16) uint8 {
	if !taken {
		return 0
	}
	old := c.PC
	c.PC = target
	if (old >> 8) != (target >> 8) {
		return 2
	}
	return 1
}

// execute dispatches and runs meta's instruction body, returning the
// extra cycles beyond meta.BaseCycles (page-crossing, branch, and
// decimal-mode penalties).
func (c *Chip) execute(meta *OpMeta) uint8 {
	switch meta.Mnemonic {

	// Loads
	case LDA:
		v, crossed := c.valueOperand(meta.Param1)
		c.A = v
		c.setNZ(v)
		return extraIfCrossed(meta, crossed)
	case LDX:
		v, crossed := c.valueOperand(meta.Param1)
		c.X = v
		c.setNZ(v)
		return extraIfCrossed(meta, crossed)
	case LDY:
		v, crossed := c.valueOperand(meta.Param1)
		c.Y = v
		c.setNZ(v)
		return extraIfCrossed(meta, crossed)

	// Stores
	case STA:
		addr, _ := c.addressOperand(meta.Param1)
		c.mem.WriteU8(addr, c.A)
		return 0
	case STX:
		addr, _ := c.addressOperand(meta.Param1)
		c.mem.WriteU8(addr, c.X)
		return 0
	case STY:
		addr, _ := c.addressOperand(meta.Param1)
		c.mem.WriteU8(addr, c.Y)
		return 0
	case STZ:
		addr, _ := c.addressOperand(meta.Param1)
		c.mem.WriteU8(addr, 0)
		return 0

	// Transfers
	case TAX:
		c.X = c.A
		c.setNZ(c.X)
		return 0
	case TAY:
		c.Y = c.A
		c.setNZ(c.Y)
		return 0
	case TXA:
		c.A = c.X
		c.setNZ(c.A)
		return 0
	case TYA:
		c.A = c.Y
		c.setNZ(c.A)
		return 0
	case TSX:
		c.X = c.S
		c.setNZ(c.X)
		return 0
	case TXS:
		c.S = c.X
		return 0

	// Stack
	case PHA:
		c.push(c.A)
		return 0
	case PHX:
		c.push(c.X)
		return 0
	case PHY:
		c.push(c.Y)
		return 0
	case PHP:
		c.pushP(true)
		return 0
	case PLA:
		c.A = c.pop()
		c.setNZ(c.A)
		return 0
	case PLX:
		c.X = c.pop()
		c.setNZ(c.X)
		return 0
	case PLY:
		c.Y = c.pop()
		c.setNZ(c.Y)
		return 0
	case PLP:
		c.popP()
		return 0

	// ALU: AND/ORA/EOR
	case AND:
		v, crossed := c.valueOperand(meta.Param1)
		c.A &= v
		c.setNZ(c.A)
		return extraIfCrossed(meta, crossed)
	case ORA:
		v, crossed := c.valueOperand(meta.Param1)
		c.A |= v
		c.setNZ(c.A)
		return extraIfCrossed(meta, crossed)
	case EOR:
		v, crossed := c.valueOperand(meta.Param1)
		c.A ^= v
		c.setNZ(c.A)
		return extraIfCrossed(meta, crossed)

	// ADC/SBC
	case ADC:
		v, crossed := c.valueOperand(meta.Param1)
		extra := extraIfCrossed(meta, crossed)
		if c.flag(flagDecimal) {
			c.adcDecimal(v)
			return extra + 1
		}
		c.adcBinary(v)
		return extra
	case SBC:
		v, crossed := c.valueOperand(meta.Param1)
		extra := extraIfCrossed(meta, crossed)
		if c.flag(flagDecimal) {
			c.sbcDecimal(v)
			return extra + 1
		}
		c.adcBinary(^v)
		return extra

	// Compares
	case CMP:
		v, crossed := c.valueOperand(meta.Param1)
		c.compare(c.A, v)
		return extraIfCrossed(meta, crossed)
	case CPX:
		v, _ := c.valueOperand(meta.Param1)
		c.compare(c.X, v)
		return 0
	case CPY:
		v, _ := c.valueOperand(meta.Param1)
		c.compare(c.Y, v)
		return 0

	// Increments/decrements of registers
	case INX:
		c.X++
		c.setNZ(c.X)
		return 0
	case INY:
		c.Y++
		c.setNZ(c.Y)
		return 0
	case DEX:
		c.X--
		c.setNZ(c.X)
		return 0
	case DEY:
		c.Y--
		c.setNZ(c.Y)
		return 0

	// Read-modify-write INC/DEC
	case INC:
		return c.rmw(meta, func(v uint8) uint8 { return v + 1 })
	case DEC:
		return c.rmw(meta, func(v uint8) uint8 { return v - 1 })

	// Shifts/rotates
	case ASL:
		return c.rmw(meta, func(v uint8) uint8 {
			c.setFlag(flagCarry, v&0x80 != 0)
			return v << 1
		})
	case LSR:
		return c.rmw(meta, func(v uint8) uint8 {
			c.setFlag(flagCarry, v&0x01 != 0)
			return v >> 1
		})
	case ROL:
		return c.rmw(meta, func(v uint8) uint8 {
			carryIn := uint8(0)
			if c.flag(flagCarry) {
				carryIn = 1
			}
			c.setFlag(flagCarry, v&0x80 != 0)
			return (v << 1) | carryIn
		})
	case ROR:
		return c.rmw(meta, func(v uint8) uint8 {
			carryIn := uint8(0)
			if c.flag(flagCarry) {
				carryIn = 1 << 7
			}
			c.setFlag(flagCarry, v&0x01 != 0)
			return (v >> 1) | carryIn
		})

	// BIT/TRB/TSB
	case BIT:
		v, _ := c.valueOperand(meta.Param1)
		c.setFlag(flagZero, c.A&v == 0)
		if meta.Param1 != Immediate {
			c.setFlag(flagNegative, v&0x80 != 0)
			c.setFlag(flagOverflow, v&0x40 != 0)
		}
		return 0
	case TRB:
		addr, _ := c.addressOperand(meta.Param1)
		v := c.mem.ReadU8(addr)
		c.setFlag(flagZero, c.A&v == 0)
		c.mem.WriteU8(addr, v&^c.A)
		return 0
	case TSB:
		addr, _ := c.addressOperand(meta.Param1)
		v := c.mem.ReadU8(addr)
		c.setFlag(flagZero, c.A&v == 0)
		c.mem.WriteU8(addr, v|c.A)
		return 0

	// RMBn/SMBn
	case RMB0, RMB1, RMB2, RMB3, RMB4, RMB5, RMB6, RMB7:
		addr, _ := c.addressOperand(meta.Param1)
		bit := rmbBit(meta.Mnemonic)
		c.mem.WriteU8(addr, c.mem.ReadU8(addr)&^(1<<bit))
		return 0
	case SMB0, SMB1, SMB2, SMB3, SMB4, SMB5, SMB6, SMB7:
		addr, _ := c.addressOperand(meta.Param1)
		bit := smbBit(meta.Mnemonic)
		c.mem.WriteU8(addr, c.mem.ReadU8(addr)|(1<<bit))
		return 0

	// BBRn/BBSn
	case BBR0, BBR1, BBR2, BBR3, BBR4, BBR5, BBR6, BBR7:
		zp, _ := c.addressOperand(meta.Param1)
		v := c.mem.ReadU8(zp)
		target, _ := c.addressOperand(meta.Param2)
		bit := bbrBit(meta.Mnemonic)
		return c.branch(v&(1<<bit) == 0, target)
	case BBS0, BBS1, BBS2, BBS3, BBS4, BBS5, BBS6, BBS7:
		zp, _ := c.addressOperand(meta.Param1)
		v := c.mem.ReadU8(zp)
		target, _ := c.addressOperand(meta.Param2)
		bit := bbsBit(meta.Mnemonic)
		return c.branch(v&(1<<bit) != 0, target)

	// Branches
	case BCC:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(!c.flag(flagCarry), target)
	case BCS:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(c.flag(flagCarry), target)
	case BEQ:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(c.flag(flagZero), target)
	case BNE:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(!c.flag(flagZero), target)
	case BMI:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(c.flag(flagNegative), target)
	case BPL:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(!c.flag(flagNegative), target)
	case BVC:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(!c.flag(flagOverflow), target)
	case BVS:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(c.flag(flagOverflow), target)
	case BRA:
		target, _ := c.addressOperand(meta.Param1)
		return c.branch(true, target)

	// Jumps/calls/returns
	case JMP:
		addr, _ := c.addressOperand(meta.Param1)
		c.PC = addr
		return 0
	case JSR:
		addr, _ := c.addressOperand(meta.Param1)
		// The return address pushed is PC-1 (the last byte of JSR),
		// per 6502/65C02 convention: RTS adds 1 back on return.
		c.PC--
		c.pushPC()
		c.PC = addr
		return 0
	case RTS:
		c.popPC()
		c.PC++
		return 0
	case RTI:
		c.popP()
		c.popPC()
		return 0
	case BRK:
		c.PC++
		c.serviceInterrupt(IRQVector, true)
		return 0

	// Flags
	case CLC:
		c.setFlag(flagCarry, false)
		return 0
	case SEC:
		c.setFlag(flagCarry, true)
		return 0
	case CLI:
		c.setFlag(flagIRQDisable, false)
		return 0
	case SEI:
		c.setFlag(flagIRQDisable, true)
		return 0
	case CLD:
		c.setFlag(flagDecimal, false)
		return 0
	case SED:
		c.setFlag(flagDecimal, true)
		return 0
	case CLV:
		c.setFlag(flagOverflow, false)
		return 0

	// Control
	case NOP:
		// The table's only NOP (0xEA) is implied; undocumented opcode
		// bytes never get here, StepInstruction handles them first.
		if meta.Param1 != None {
			c.valueOperand(meta.Param1)
		}
		return 0
	case STP:
		c.run = false
		return 0
	case WAI:
		c.wai = true
		return 0

	default:
		panic(InvalidCPUState{Reason: "unimplemented mnemonic " + meta.Mnemonic.String()})
	}
}

// extraIfCrossed returns 1 if meta's addressing mode is one that
// charges an extra cycle on a page-boundary crossing and crossed is
// true; 0 otherwise. Store instructions never call this: their fixed
// cost already reflects the worst case.
func extraIfCrossed(meta *OpMeta, crossed bool) uint8 {
	if crossed {
		return 1
	}
	return 0
}

// rmw implements the read-modify-write shape shared by INC/DEC and
// the shift/rotate family: read the operand (memory or accumulator),
// apply fn (which may also touch flags, e.g. carry), set N/Z on the
// result, and write it back.
func (c *Chip) rmw(meta *OpMeta, fn func(uint8) uint8) uint8 {
	var addr uint16
	var v uint8
	if meta.Param1 == Accumulator {
		v = c.A
	} else {
		addr, _ = c.addressOperand(meta.Param1)
		v = c.mem.ReadU8(addr)
	}
	result := fn(v)
	c.setNZ(result)
	c.storeResult(meta.Param1, addr, result)
	return 0
}

// compare implements CMP/CPX/CPY: sets N/Z from reg-value and carry
// from reg >= value, without modifying reg.
func (c *Chip) compare(reg, value uint8) {
	result := reg - value
	c.setNZ(result)
	c.setFlag(flagCarry, reg >= value)
}
