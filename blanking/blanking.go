// Package blanking implements the Cody vertical-blank register: a
// single read-only byte driven by simulated display frame timing, per
// spec.md §4.E. Ported directly from original_source's
// device/blanking.rs.
package blanking

import (
	"math"

	"github.com/codyhome/cody65c02/irq"
)

const (
	// fps is the display refresh rate (NTSC field rate).
	fps = 60.0 / 1.001
	// vblankRatio is the fraction of a frame spent in vertical blank:
	// 9 lines VSYNC + 12 blank lines + 21 bottom-border lines, out of
	// 262 total lines per (half-)frame.
	vblankRatio = (9.0 + 12.0 + 21.0) / 262.0
	frameTime   = 1.0 / fps
	vblankTime  = vblankRatio * frameTime
	// cycleFrequency is the CPU clock rate in Hz (the WD65C02 runs at
	// 1MHz in this target machine).
	cycleFrequency = 1000000.0
)

var (
	frameCycles  = uint64(math.Round(frameTime * cycleFrequency))
	vblankCycles = uint64(math.Round(vblankTime * cycleFrequency))
)

// Register is the single-byte vertical-blank flag.
type Register struct {
	inBlank bool
}

// New returns a blanking register in its initial (not-blanking) state.
func New() *Register {
	return &Register{}
}

// ReadU8 implements memory.Memory: reads return 1 while in the
// blanking interval, 0 otherwise, regardless of address within the
// single-byte region.
func (r *Register) ReadU8(addr uint16) uint8 {
	if r.inBlank {
		return 1
	}
	return 0
}

// WriteU8 implements memory.Memory: the register is read-only.
func (r *Register) WriteU8(addr uint16, value uint8) {}

// Tick implements memory.Memory, deriving the blanking state from the
// global cycle counter.
func (r *Register) Tick(cycle uint64) irq.Interrupt {
	frameCycle := cycle % frameCycles
	r.inBlank = frameCycle < vblankCycles
	return irq.None()
}
