package cpu

// adcBinary implements ADC (and, via an inverted operand, SBC) in
// binary mode: standard two's-complement addition with carry in/out
// and signed overflow detection.
func (c *Chip) adcBinary(m uint8) {
	carryIn := uint16(0)
	if c.flag(flagCarry) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(m) + carryIn
	result := uint8(sum)
	overflow := (c.A^result)&(m^result)&0x80 != 0
	c.setFlag(flagCarry, sum > 0xFF)
	c.setFlag(flagOverflow, overflow)
	c.setNZ(result)
	c.A = result
}

// adcDecimal implements ADC in BCD mode. N and V are derived from the
// half-corrected intermediate (the nibble sum before the high nibble's
// final >9 adjustment), Z from the final packed BCD byte, and C from
// the decimal carry-out, per spec.md §4.F's decimal-mode note.
func (c *Chip) adcDecimal(m uint8) {
	carryIn := 0
	if c.flag(flagCarry) {
		carryIn = 1
	}

	lo := int(c.A&0x0F) + int(m&0x0F) + carryIn
	hi := int(c.A>>4) + int(m>>4)
	if lo > 9 {
		lo -= 10
		hi++
	}

	half := uint8((hi<<4)&0xF0) | uint8(lo&0x0F)
	overflow := (c.A^half)&(m^half)&0x80 != 0
	negative := half&0x80 != 0

	carryOut := false
	if hi > 9 {
		hi -= 10
		carryOut = true
	}
	result := uint8((hi<<4)&0xF0) | uint8(lo&0x0F)

	c.A = result
	c.setFlag(flagZero, result == 0)
	c.setFlag(flagNegative, negative)
	c.setFlag(flagOverflow, overflow)
	c.setFlag(flagCarry, carryOut)
}

// sbcDecimal implements SBC in BCD mode: symmetric BCD subtraction
// with borrow, mirroring adcDecimal's nibble-correction structure.
func (c *Chip) sbcDecimal(m uint8) {
	borrowIn := 1
	if c.flag(flagCarry) {
		borrowIn = 0
	}

	lo := int(c.A&0x0F) - int(m&0x0F) - borrowIn
	hi := int(c.A>>4) - int(m>>4)
	if lo < 0 {
		lo += 10
		hi--
	}

	half := uint8((hi<<4)&0xF0) | uint8(lo&0x0F)
	overflow := (c.A^half)&(^m^half)&0x80 != 0
	negative := half&0x80 != 0

	carryOut := true
	if hi < 0 {
		hi += 10
		carryOut = false
	}
	result := uint8((hi<<4)&0xF0) | uint8(lo&0x0F)

	c.A = result
	c.setFlag(flagZero, result == 0)
	c.setFlag(flagNegative, negative)
	c.setFlag(flagOverflow, overflow)
	c.setFlag(flagCarry, carryOut)
}
