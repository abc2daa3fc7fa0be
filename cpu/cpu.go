package cpu

import (
	"fmt"

	"github.com/codyhome/cody65c02/memory"
)

// Status byte bit masks, LSB first as spec.md's DATA MODEL lays them
// out: carry, zero, irq_disable, decimal, brk, _unused, overflow,
// negative.
const (
	flagCarry      uint8 = 1 << 0
	flagZero       uint8 = 1 << 1
	flagIRQDisable uint8 = 1 << 2
	flagDecimal    uint8 = 1 << 3
	flagBRK        uint8 = 1 << 4
	flagUnused     uint8 = 1 << 5
	flagOverflow   uint8 = 1 << 6
	flagNegative   uint8 = 1 << 7
)

// Vector addresses.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

// InvalidCPUState reports a condition that should be unreachable given
// the opcode table's invariants, mirroring the teacher's eponymous
// error type in cpu/cpu.go.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Chip holds the visible architectural registers of a W65C02S and
// executes one instruction per StepInstruction call, per spec.md §4.F.
// Unlike the teacher's cpu.Chip, which ticks one T-state per Tick()
// call, this core charges a whole instruction's cycles at once:
// spec.md lists sub-cycle modelling as an explicit Non-goal.
type Chip struct {
	A, X, Y uint8
	S       uint8
	PC      uint16
	P       uint8

	run   bool
	wai   bool
	cycle uint64

	mem memory.Memory

	// Debug, if true, makes Debugf() return a non-empty trace line
	// after each StepInstruction call, following the teacher's
	// Debug-bool-gated convention (e.g. pia6532.Chip.Debug).
	Debug bool
	debug string
}

// ChipDef configures a new Chip, mirroring the teacher's *Def struct
// convention (cpu.ChipDef, tia.ChipDef) as the configuration surface.
type ChipDef struct {
	// Memory is the bus the CPU transacts against. Required.
	Memory memory.Memory
	// Debug enables the Debugf() trace string.
	Debug bool
}

// Init returns a Chip wired to def.Memory, immediately reset to its
// post-power-on state.
func Init(def *ChipDef) (*Chip, error) {
	if def == nil || def.Memory == nil {
		return nil, fmt.Errorf("ChipDef.Memory must be non-nil")
	}
	c := &Chip{mem: def.Memory, Debug: def.Debug}
	c.Reset()
	return c, nil
}

// Reset re-enters the post-power-on state without reconstructing the
// Chip: A=X=Y=0, S=0xFD, P has irq_disable/brk/_unused set and the
// rest clear, PC is loaded from the reset vector, run is set and wai
// is cleared. The cycle counter is not reset; it is a free-running
// counter per spec.md's DATA MODEL.
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = flagIRQDisable | flagBRK | flagUnused
	c.run = true
	c.wai = false
	c.PC = memory.ReadU16(c.mem, ResetVector)
}

// Running reports whether the CPU will still execute instructions
// (false after STP).
func (c *Chip) Running() bool {
	return c.run
}

// Waiting reports whether the CPU is halted in WAI awaiting an
// interrupt.
func (c *Chip) Waiting() bool {
	return c.wai
}

// Cycle returns the current free-running cycle counter.
func (c *Chip) Cycle() uint64 {
	return c.cycle
}

// Debugf returns the last StepInstruction's trace line if Debug is
// set, or "" otherwise - following the teacher's Debug() string
// convention so a caller can conditionally log.Printf it.
func (c *Chip) Debugf() string {
	return c.debug
}

func (c *Chip) setFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *Chip) flag(mask uint8) bool {
	return c.P&mask != 0
}

func (c *Chip) setNZ(v uint8) {
	c.setFlag(flagZero, v == 0)
	c.setFlag(flagNegative, v&0x80 != 0)
}

// push writes v to the stack and decrements S, wrapping modulo 256.
// The stack's high byte is always 0x01 per spec.md's EXTERNAL
// INTERFACES section.
func (c *Chip) push(v uint8) {
	c.mem.WriteU8(0x0100|uint16(c.S), v)
	c.S--
}

// pop increments S and reads the stack, wrapping modulo 256.
func (c *Chip) pop() uint8 {
	c.S++
	return c.mem.ReadU8(0x0100 | uint16(c.S))
}

// pushPC pushes PC high byte then low byte.
func (c *Chip) pushPC() {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))
}

// popPC pops low byte then high byte, the inverse of pushPC.
func (c *Chip) popPC() {
	lo := c.pop()
	hi := c.pop()
	c.PC = uint16(lo) | uint16(hi)<<8
}

// pushP pushes P with _unused forced to 1 and brk set according to
// whether this push originates from BRK/PHP (true) or an IRQ/NMI
// sequence (false), per spec.md §9's push/pop distinction.
func (c *Chip) pushP(fromBRK bool) {
	v := c.P | flagUnused
	if fromBRK {
		v |= flagBRK
	} else {
		v &^= flagBRK
	}
	c.push(v)
}

// popP pops P and forces bits 4-5 (brk, _unused) to 1, per spec.md's
// DATA MODEL invariant.
func (c *Chip) popP() {
	c.P = c.pop() | flagBRK | flagUnused
}

func (c *Chip) consumeByte() uint8 {
	b := c.mem.ReadU8(c.PC)
	c.PC++
	return b
}

func (c *Chip) consumeWord() uint16 {
	lo := c.consumeByte()
	hi := c.consumeByte()
	return uint16(lo) | uint16(hi)<<8
}

// serviceInterrupt performs the shared NMI/IRQ/BRK entry sequence:
// push PC, push P (brk bit per fromBRK), set irq_disable, clear
// decimal, and load PC from vector.
func (c *Chip) serviceInterrupt(vector uint16, fromBRK bool) {
	c.pushPC()
	c.pushP(fromBRK)
	c.setFlag(flagIRQDisable, true)
	c.setFlag(flagDecimal, false)
	c.PC = memory.ReadU16(c.mem, vector)
}

// StepInstruction executes exactly one instruction (or one idle/NMI/IRQ
// step if the CPU is halted or waiting) and returns the number of
// cycles it consumed, per spec.md §4.F.
func (c *Chip) StepInstruction() uint8 {
	if !c.run {
		return 0
	}

	signal := c.mem.Tick(c.cycle)
	switch {
	case signal.NMI:
		c.wai = false
		c.serviceInterrupt(NMIVector, false)
	case signal.IRQ && !c.flag(flagIRQDisable):
		c.wai = false
		c.serviceInterrupt(IRQVector, false)
	case signal.IRQ:
		c.wai = false
	}

	if c.wai {
		c.cycle++
		if c.Debug {
			c.debug = "WAI idle"
		}
		return 1
	}

	pc := c.PC
	opcodeByte := c.consumeByte()
	meta := ByByte(opcodeByte)
	if meta == nil {
		// Undocumented opcode: silently treated as a 1-cycle NOP.
		c.cycle++
		return 1
	}

	extra := c.execute(meta)
	total := meta.BaseCycles + extra
	c.cycle += uint64(total)
	if c.Debug {
		c.debug = fmt.Sprintf("pc=%04X op=%02X (%s) a=%02X x=%02X y=%02X s=%02X p=%02X cyc=%d",
			pc, opcodeByte, meta.Mnemonic, c.A, c.X, c.Y, c.S, c.P, total)
	}
	return total
}
