// Package uart implements the Cody UART: a register window with two
// 8-byte ring buffers, per spec.md §4.E. The ring buffer and register
// layout are ported directly from original_source's device/uart.rs;
// the external byte source it drains into the receive buffer is
// supplemented per SPEC_FULL.md §C.2 as the Source interface below.
package uart

import "github.com/codyhome/cody65c02/irq"

// Register offsets within the 24-byte window.
const (
	CNTL uint16 = iota
	CMND
	STAT
	_reserved
	RXHD
	RXTL
	TXHD
	TXTL
)

const (
	bufferSize = 8
	rxbf       = 8
	txbf       = rxbf + bufferSize
	// End is the first address past the UART's 24-byte window.
	End = txbf + bufferSize
)

// RingBuf is an 8-byte ring buffer with modulo head/tail indices.
// Full when (head+1) mod capacity == tail; empty when head == tail.
type RingBuf struct {
	buf  [bufferSize]uint8
	head uint8
	tail uint8
}

// Len returns the number of buffered bytes.
func (r *RingBuf) Len() uint8 {
	return (r.head - r.tail) % bufferSize
}

// IsEmpty reports whether the buffer holds no bytes.
func (r *RingBuf) IsEmpty() bool {
	return r.head == r.tail
}

// IsFull reports whether the buffer cannot accept another Push.
func (r *RingBuf) IsFull() bool {
	return (r.head+1)%bufferSize == r.tail
}

func (r *RingBuf) Head() uint8 { return r.head }
func (r *RingBuf) Tail() uint8 { return r.tail }

// SetHead sets the head index, taken modulo capacity.
func (r *RingBuf) SetHead(head uint8) { r.head = head % bufferSize }

// SetTail sets the tail index, taken modulo capacity.
func (r *RingBuf) SetTail(tail uint8) { r.tail = tail % bufferSize }

// Push appends value if the buffer has room, reporting whether it did.
func (r *RingBuf) Push(value uint8) bool {
	if r.IsFull() {
		return false
	}
	r.buf[r.head] = value
	r.head = (r.head + 1) % bufferSize
	return true
}

// Pop removes and returns the oldest byte, if any.
func (r *RingBuf) Pop() (uint8, bool) {
	if r.IsEmpty() {
		return 0, false
	}
	v := r.buf[r.tail]
	r.tail = (r.tail + 1) % bufferSize
	return v, true
}

// Get reads the byte at index (modulo capacity) without consuming it;
// used to expose the raw ring buffer through the register window.
func (r *RingBuf) Get(index uint8) uint8 {
	return r.buf[index%bufferSize]
}

// Set writes the byte at index (modulo capacity) without moving head
// or tail; used by the register window's raw-buffer writes.
func (r *RingBuf) Set(index uint8, value uint8) {
	r.buf[index%bufferSize] = value
}

// Source supplies bytes for the UART to receive, e.g. from a canned
// test fixture or a host serial port. ReadByte reports false once
// exhausted.
type Source interface {
	ReadByte() (uint8, bool)
}

// SliceSource is a Source backed by a fixed byte slice, grounded on
// original_source's UartSource (pos/source fields, has_next/read
// methods).
type SliceSource struct {
	data []uint8
	pos  int
}

// NewSliceSource returns a Source that yields data in order, then EOF.
func NewSliceSource(data []uint8) *SliceSource {
	return &SliceSource{data: data}
}

// ReadByte implements Source.
func (s *SliceSource) ReadByte() (uint8, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	v := s.data[s.pos]
	s.pos++
	return v, true
}

// Reset rewinds the source to its first byte.
func (s *SliceSource) Reset() {
	s.pos = 0
}

// emptySource never yields a byte; the default Source when none is
// supplied.
type emptySource struct{}

func (emptySource) ReadByte() (uint8, bool) { return 0, false }

// Chip is one UART instance.
type Chip struct {
	control uint8
	command uint8
	status  uint8
	rx      RingBuf
	tx      RingBuf
	source  Source
}

// New returns a UART draining source on each Tick. A nil source
// behaves as if nothing was ever received.
func New(source Source) *Chip {
	if source == nil {
		source = emptySource{}
	}
	return &Chip{source: source}
}

// IsEnabled reports whether CMND bit 0 (the enable bit) is set.
func (c *Chip) IsEnabled() bool {
	return c.command&0x1 != 0
}

func (c *Chip) updateState() {
	if c.IsEnabled() {
		// Discard all error/transmit/receive status; only report enabled.
		c.status = 0x40
	} else {
		c.status = 0
		c.rx.SetHead(0)
		c.tx.SetTail(0)
	}
}

// ReadU8 implements memory.Memory over the 24-byte register window.
func (c *Chip) ReadU8(addr uint16) uint8 {
	switch {
	case addr == CNTL:
		return c.control
	case addr == CMND:
		return c.command
	case addr == STAT:
		return c.status
	case addr == RXHD:
		return c.rx.Head()
	case addr == RXTL:
		return c.rx.Tail()
	case addr == TXHD:
		return c.tx.Head()
	case addr == TXTL:
		return c.tx.Tail()
	case addr >= rxbf && addr < txbf:
		return c.rx.Get(uint8(addr - rxbf))
	case addr >= txbf && addr < End:
		return c.tx.Get(uint8(addr - txbf))
	default:
		return 0
	}
}

// WriteU8 implements memory.Memory over the 24-byte register window.
func (c *Chip) WriteU8(addr uint16, value uint8) {
	switch {
	case addr == CNTL:
		c.control = value
	case addr == CMND:
		c.command = value
	case addr == STAT:
		// no-op
	case addr == RXHD:
		c.rx.SetHead(value)
	case addr == RXTL:
		c.rx.SetTail(value)
	case addr == TXHD:
		c.tx.SetHead(value)
	case addr == TXTL:
		c.tx.SetTail(value)
	case addr >= rxbf && addr < txbf:
		c.rx.Set(uint8(addr-rxbf), value)
	case addr >= txbf && addr < End:
		c.tx.Set(uint8(addr-txbf), value)
	}
}

// Tick implements memory.Memory: it updates the enable/disable state,
// discards any pending transmit bytes, and fills the receive buffer
// from the external source until it is full or the source is
// exhausted. The UART never asserts an interrupt; the host platform
// does not wire it to IRQ in this core.
func (c *Chip) Tick(cycle uint64) irq.Interrupt {
	c.updateState()
	if c.IsEnabled() {
		for {
			if _, ok := c.tx.Pop(); !ok {
				break
			}
		}
		for !c.rx.IsFull() {
			v, ok := c.source.ReadByte()
			if !ok {
				break
			}
			c.rx.Push(v)
		}
	}
	return irq.None()
}
