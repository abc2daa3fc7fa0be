// Package cody wires the opcode table, bus, peripherals, and CPU core
// into a runnable machine, following the teacher's atari2600.Init
// wiring style (order-dependent chip construction, a *Def config
// struct, up-front validation) generalized from one fixed console
// layout to the address-decoded map spec.md §6 describes.
package cody

import (
	"fmt"

	"github.com/codyhome/cody65c02/blanking"
	"github.com/codyhome/cody65c02/bus"
	"github.com/codyhome/cody65c02/cpu"
	"github.com/codyhome/cody65c02/memory"
	"github.com/codyhome/cody65c02/uart"
	"github.com/codyhome/cody65c02/via"
)

// Memory map constants, per spec.md §6.
const (
	ramStart  uint16 = 0x0000
	ramSize          = 0xA000
	viaStart  uint16 = 0x9F00
	viaSize          = 0x100
	dispStart uint16 = 0xA000
	dispSize         = 0x4000
	blankAddr uint16 = 0xD000
	uart1Addr uint16 = 0xD480
	uart2Addr uint16 = 0xD4A0
	romStart  uint16 = 0xE000
	romSize          = 0x2000
)

// Machine is a fully wired Cody computer: CPU, bus, and peripherals.
type Machine struct {
	Bus *bus.Mapped
	CPU *cpu.Chip

	RAM     *memory.Contiguous
	Display *memory.Contiguous
	ROM     *memory.Contiguous
	VIA     *via.Chip
	UART1   *uart.Chip
	UART2   *uart.Chip
	Blank   *blanking.Register
}

// Def configures a new Machine.
type Def struct {
	// ROM is copied into the fixed 8 KiB ROM region at 0xE000. It must
	// be no longer than 8192 bytes; any remainder is zero-filled.
	ROM []uint8
	// Keys is the shared keyboard matrix the VIA reads through IORA. If
	// nil, a fresh KeyState is created.
	Keys *via.KeyState
	// UART1Source, UART2Source feed each UART's receive buffer. A nil
	// source behaves as if nothing is ever received.
	UART1Source uart.Source
	UART2Source uart.Source
	// Debug enables the CPU's Debugf() trace string.
	Debug bool
}

// Init wires a Machine per spec.md §6's memory map and resets the CPU
// from the ROM's reset vector.
func Init(def *Def) (*Machine, error) {
	if def == nil {
		return nil, fmt.Errorf("cody.Init: def must be non-nil")
	}
	if len(def.ROM) > romSize {
		return nil, fmt.Errorf("cody.Init: ROM is %d bytes, exceeds the %d-byte ROM region", len(def.ROM), romSize)
	}

	m := &Machine{
		RAM:     memory.NewRAM(ramSize),
		Display: memory.NewRAM(dispSize),
		ROM:     memory.NewROM(romSize),
		VIA:     via.New(def.Keys),
		UART1:   uart.New(def.UART1Source),
		UART2:   uart.New(def.UART2Source),
		Blank:   blanking.New(),
	}
	m.ROM.ForceWriteAll(def.ROM)

	m.Bus = bus.New()
	// Base regions first; device windows are added afterward so they
	// win the last-registered-wins overlap rule.
	m.Bus.AddMemory(ramStart, ramSize, m.RAM)
	m.Bus.AddMemory(dispStart, dispSize, m.Display)
	m.Bus.AddMemory(romStart, romSize, m.ROM)
	m.Bus.AddMemory(viaStart, viaSize, m.VIA)
	m.Bus.AddMemory(blankAddr, 1, m.Blank)
	m.Bus.AddMemory(uart1Addr, uart.End, m.UART1)
	m.Bus.AddMemory(uart2Addr, uart.End, m.UART2)

	c, err := cpu.Init(&cpu.ChipDef{Memory: m.Bus, Debug: def.Debug})
	if err != nil {
		return nil, fmt.Errorf("cody.Init: can't initialize CPU: %w", err)
	}
	m.CPU = c

	return m, nil
}

// Step runs exactly one CPU instruction and returns the cycles it
// consumed, per spec.md §4.F.
func (m *Machine) Step() uint8 {
	return m.CPU.StepInstruction()
}

// Reset re-enters the CPU's post-power-on state without rebuilding
// the bus or peripherals.
func (m *Machine) Reset() {
	m.CPU.Reset()
}
