// Package memory defines the basic interface for working with a Cody
// memory map. Since every bus participant (RAM, ROM, a VIA, a UART)
// needs the same uniform byte-addressed contract plus a clock tick,
// this is defined as an interface the same way the teacher's
// memory.Bank was, generalized with 16-bit convenience accessors and
// a tick hook that surfaces interrupts instead of a bare Read/Write.
package memory

import "github.com/codyhome/cody65c02/irq"

// Memory is the uniform interface every bus region and device
// implements. All addressing is modulo the relevant address space;
// callers never need to pre-mask addresses before calling through
// this interface.
type Memory interface {
	// ReadU8 returns the byte stored at addr.
	ReadU8(addr uint16) uint8
	// WriteU8 stores value at addr. Implementations for which addr is
	// read-only (ROM) silently discard the write.
	WriteU8(addr uint16, value uint8)
	// Tick advances the device's notion of the clock to cycle and
	// returns any interrupt signal it wants to assert this step.
	Tick(cycle uint64) irq.Interrupt
}

// ReadU16 performs a little-endian 16-bit read as two sequential
// ReadU8 calls. addr+1 wraps modulo 65536.
func ReadU16(m Memory, addr uint16) uint16 {
	lo := m.ReadU8(addr)
	hi := m.ReadU8(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// ReadU16ZP performs the zero-page variant of ReadU16: both bytes are
// read with addr kept inside the zero page, so reading at 0xFF fetches
// the high byte from 0x00 rather than 0x0100. This distinction matters
// for the indirect zero-page addressing modes.
func ReadU16ZP(m Memory, addr uint8) uint16 {
	lo := m.ReadU8(uint16(addr))
	hi := m.ReadU8(uint16(addr + 1))
	return uint16(lo) | uint16(hi)<<8
}

// WriteU16 performs a little-endian 16-bit write as two sequential
// WriteU8 calls.
func WriteU16(m Memory, addr uint16, value uint16) {
	m.WriteU8(addr, uint8(value))
	m.WriteU8(addr+1, uint8(value>>8))
}

// WriteU16ZP is the zero-page variant of WriteU16, keeping both byte
// addresses inside the zero page.
func WriteU16ZP(m Memory, addr uint8, value uint16) {
	m.WriteU8(uint16(addr), uint8(value))
	m.WriteU8(uint16(addr+1), uint8(value>>8))
}
