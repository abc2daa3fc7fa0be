// Package bus implements the Cody address-decoded mapped bus: an
// ordered composite of memory regions and devices, generalizing the
// ad hoc Read/Write switches the teacher hand-writes per machine (see
// atari2600.controller.Read/Write) into a reusable region list, per
// spec.md §4.D.
package bus

import "github.com/codyhome/cody65c02/irq"
import "github.com/codyhome/cody65c02/memory"

type region struct {
	start  uint16
	size   uint32 // uint32 so a full 64KiB region (size 0x10000) doesn't wrap to 0.
	memory memory.Memory
}

// contains reports whether addr falls inside [start, start+size), or
// always false for a size-0 "pure device" region (it never answers an
// address-range query, but still receives Tick).
func (r region) contains(addr uint16) bool {
	if r.size == 0 {
		return false
	}
	offset := uint32(addr) - uint32(r.start)
	if int32(offset) < 0 {
		offset += 1 << 16
	}
	return offset < r.size
}

// Mapped is an address-decoded composite bus: each access routes to
// the most-recently-added region whose range contains the address.
type Mapped struct {
	regions []region
}

// New returns an empty Mapped bus.
func New() *Mapped {
	return &Mapped{}
}

// AddMemory installs region at [start, start+size) on the bus. Later
// calls take priority over earlier ones on overlapping addresses,
// which lets a device window (e.g. the VIA) be layered over a
// generic RAM region without precomputing hole geometry.
func (m *Mapped) AddMemory(start uint16, size uint32, mem memory.Memory) {
	m.regions = append(m.regions, region{start: start, size: size, memory: mem})
}

// AddDevice installs mem as a pure device: it never matches an
// address-range query via ReadU8/WriteU8 (callers reach it some other
// way, e.g. directly) but still receives every bus Tick.
func (m *Mapped) AddDevice(mem memory.Memory) {
	m.AddMemory(0, 0, mem)
}

// find returns the index of the most-recently-added region containing
// addr, or -1 if none matches.
func (m *Mapped) find(addr uint16) int {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].contains(addr) {
			return i
		}
	}
	return -1
}

// ReadU8 returns the first (most recently added) matching region's
// read, with addr rebased to that region's start. Unmapped addresses
// read as 0.
func (m *Mapped) ReadU8(addr uint16) uint8 {
	i := m.find(addr)
	if i < 0 {
		return 0
	}
	r := m.regions[i]
	return r.memory.ReadU8(addr - r.start)
}

// WriteU8 forwards to the first matching region, rebased; it is a
// no-op for unmapped addresses.
func (m *Mapped) WriteU8(addr uint16, value uint8) {
	i := m.find(addr)
	if i < 0 {
		return
	}
	r := m.regions[i]
	r.memory.WriteU8(addr-r.start, value)
}

// Tick calls Tick on every region in insertion order and folds the
// returned interrupts together with Or.
func (m *Mapped) Tick(cycle uint64) irq.Interrupt {
	result := irq.None()
	for _, r := range m.regions {
		result = result.Or(r.memory.Tick(cycle))
	}
	return result
}

// ReadU16 is the bus-level little-endian 16-bit read.
func (m *Mapped) ReadU16(addr uint16) uint16 {
	return memory.ReadU16(m, addr)
}

// ReadU16ZP is the bus-level zero-page 16-bit read.
func (m *Mapped) ReadU16ZP(addr uint8) uint16 {
	return memory.ReadU16ZP(m, addr)
}

// WriteU16 is the bus-level little-endian 16-bit write.
func (m *Mapped) WriteU16(addr uint16, value uint16) {
	memory.WriteU16(m, addr, value)
}

// WriteU16ZP is the bus-level zero-page 16-bit write.
func (m *Mapped) WriteU16ZP(addr uint8, value uint16) {
	memory.WriteU16ZP(m, addr, value)
}
