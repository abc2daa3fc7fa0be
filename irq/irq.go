// Package irq defines the interrupt signal shared between the bus, its
// devices and the CPU core. Unlike a classic single-wire IRQ line, the
// 65C02 core in this module needs to distinguish the level-sensitive
// maskable IRQ from the edge-sensitive non-maskable NMI, so the signal
// is modelled as a pair of independent bits rather than the teacher's
// single-bit irq.Sender interface.
package irq

// Interrupt is a pair of independent interrupt bits. IRQ is
// level-sensitive and maskable via the CPU's irq_disable flag; NMI is
// edge-sensitive and never masked.
type Interrupt struct {
	IRQ bool
	NMI bool
}

// None is the zero value: no interrupt asserted.
func None() Interrupt {
	return Interrupt{}
}

// Or combines two interrupt signals. Each bit is true if either side
// asserts it, forming a monoid over (Interrupt, Or, None()).
func (i Interrupt) Or(other Interrupt) Interrupt {
	return Interrupt{
		IRQ: i.IRQ || other.IRQ,
		NMI: i.NMI || other.NMI,
	}
}

// Any reports whether either bit is asserted.
func (i Interrupt) Any() bool {
	return i.IRQ || i.NMI
}
