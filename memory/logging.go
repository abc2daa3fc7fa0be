package memory

import "github.com/codyhome/cody65c02/irq"

// AccessType distinguishes a logged read from a logged write.
type AccessType int

const (
	// Read marks a logged ReadU8 call.
	Read AccessType = iota
	// Write marks a logged WriteU8 call.
	Write
)

// Access is one logged bus transaction.
type Access struct {
	Type    AccessType
	Address uint16
	Value   uint8
}

// Logging decorates any Memory with an append-only access log of its
// ReadU8/WriteU8 calls in order, the record a single-step test vector
// (spec.md §6) lists per cycle. Nothing in this module wraps the bus
// with it; only memory/logging_test.go exercises it.
type Logging struct {
	inner Memory
	log   []Access
}

// NewLogging wraps inner with access logging.
func NewLogging(inner Memory) *Logging {
	return &Logging{inner: inner}
}

// ReadU8 implements memory.Memory and appends a Read record.
func (l *Logging) ReadU8(addr uint16) uint8 {
	v := l.inner.ReadU8(addr)
	l.log = append(l.log, Access{Type: Read, Address: addr, Value: v})
	return v
}

// WriteU8 implements memory.Memory and appends a Write record.
func (l *Logging) WriteU8(addr uint16, value uint8) {
	l.inner.WriteU8(addr, value)
	l.log = append(l.log, Access{Type: Write, Address: addr, Value: value})
}

// Tick implements memory.Memory, delegating to the wrapped region.
// Ticks are not logged; the harness only cares about CPU-driven
// ReadU8/WriteU8 traffic.
func (l *Logging) Tick(cycle uint64) irq.Interrupt {
	return l.inner.Tick(cycle)
}

// Log returns the accumulated access records in call order.
func (l *Logging) Log() []Access {
	return l.log
}

// ResetLog discards all accumulated records.
func (l *Logging) ResetLog() {
	l.log = nil
}
