package memory

import "github.com/codyhome/cody65c02/irq"

// Contiguous is a fixed-size byte array backing either RAM or ROM.
// Reads and writes are unchecked by the caller but taken modulo the
// array length, following original_source's Contiguous memory rather
// than the teacher's power-of-2 address masking (Cody's regions, e.g.
// the 40KiB RAM region, are not power-of-2 sized).
type Contiguous struct {
	data      []uint8
	writeable bool
}

// NewRAM allocates a read/write Contiguous region of the given size,
// zero-filled.
func NewRAM(size int) *Contiguous {
	return &Contiguous{data: make([]uint8, size), writeable: true}
}

// NewROM allocates a read-only Contiguous region of the given size,
// zero-filled. Use ForceWriteU8/ForceWriteAll to populate it before
// installing it on the bus.
func NewROM(size int) *Contiguous {
	return &Contiguous{data: make([]uint8, size), writeable: false}
}

// NewROMFromBytes allocates a read-only Contiguous region sized to len(data)
// and pre-populated with it.
func NewROMFromBytes(data []uint8) *Contiguous {
	c := NewROM(len(data))
	c.ForceWriteAll(data)
	return c
}

// ReadU8 implements memory.Memory.
func (c *Contiguous) ReadU8(addr uint16) uint8 {
	return c.data[int(addr)%len(c.data)]
}

// WriteU8 implements memory.Memory. Writes to a read-only region are
// silently discarded.
func (c *Contiguous) WriteU8(addr uint16, value uint8) {
	if !c.writeable {
		return
	}
	c.data[int(addr)%len(c.data)] = value
}

// Tick implements memory.Memory. Plain RAM/ROM never raises an
// interrupt.
func (c *Contiguous) Tick(cycle uint64) irq.Interrupt {
	return irq.None()
}

// ForceWriteU8 writes value at addr regardless of the writeable flag.
// This is intentionally not part of the Memory interface: callers must
// hold the concrete *Contiguous (typically during ROM image loading,
// before the region is installed on the bus) to reach it.
func (c *Contiguous) ForceWriteU8(addr uint16, value uint8) {
	c.data[int(addr)%len(c.data)] = value
}

// ForceWriteAll copies data into the region starting at offset 0,
// regardless of the writeable flag. len(data) must not exceed the
// region's size.
func (c *Contiguous) ForceWriteAll(data []uint8) {
	copy(c.data, data)
}

// Len returns the size of the backing array.
func (c *Contiguous) Len() int {
	return len(c.data)
}
