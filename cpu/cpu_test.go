package cpu

import (
	"testing"

	"github.com/codyhome/cody65c02/irq"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// testMemory is a 64KiB flat RAM used as the test bus, following the
// teacher's flatMemory shape (cpu/cpu_test.go) but implementing this
// core's memory.Memory interface instead of the teacher's Read/Write.
// irq/nmi let a test assert an interrupt line directly.
type testMemory struct {
	data [65536]uint8
	irq  bool
	nmi  bool
}

func (m *testMemory) ReadU8(addr uint16) uint8     { return m.data[addr] }
func (m *testMemory) WriteU8(addr uint16, v uint8) { m.data[addr] = v }
func (m *testMemory) Tick(cycle uint64) irq.Interrupt {
	return irq.Interrupt{IRQ: m.irq, NMI: m.nmi}
}

// newChip wires a Chip against a fresh testMemory with the reset
// vector pointed at start.
func newChip(t *testing.T, start uint16) (*Chip, *testMemory) {
	t.Helper()
	mem := &testMemory{}
	mem.data[ResetVector] = uint8(start)
	mem.data[ResetVector+1] = uint8(start >> 8)
	c, err := Init(&ChipDef{Memory: mem})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return c, mem
}

func TestResetState(t *testing.T) {
	c, _ := newChip(t, 0x1234)
	if c.PC != 0x1234 {
		t.Errorf("PC = %04X, want 1234", c.PC)
	}
	if c.S != 0xFD {
		t.Errorf("S = %02X, want FD", c.S)
	}
	if c.P != flagIRQDisable|flagBRK|flagUnused {
		t.Errorf("P = %02X, want %02X", c.P, flagIRQDisable|flagBRK|flagUnused)
	}
	if !c.Running() || c.Waiting() {
		t.Errorf("Running/Waiting = %v/%v, want true/false", c.Running(), c.Waiting())
	}
}

func TestLDAImmediate(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[0x0200] = 0xA9 // LDA #imm
	mem.data[0x0201] = 0x80

	cycles := c.StepInstruction()
	if c.A != 0x80 {
		t.Errorf("A = %02X, want 80", c.A)
	}
	if !c.flag(flagNegative) || c.flag(flagZero) {
		t.Errorf("N/Z = %v/%v, want true/false", c.flag(flagNegative), c.flag(flagZero))
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2 spew=%s", cycles, spew.Sdump(c))
	}
}

func TestADCBinaryCarryAndOverflow(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[0x0200] = 0xA9 // LDA #$7F
	mem.data[0x0201] = 0x7F
	mem.data[0x0202] = 0x69 // ADC #$01
	mem.data[0x0203] = 0x01
	c.StepInstruction()
	c.StepInstruction()

	if c.A != 0x80 {
		t.Errorf("A = %02X, want 80", c.A)
	}
	if !c.flag(flagOverflow) {
		t.Error("overflow flag not set on 7F+01 signed overflow")
	}
	if c.flag(flagCarry) {
		t.Error("carry flag set unexpectedly")
	}
}

func TestADCDecimalMode(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[0x0200] = 0x38 // SEC
	mem.data[0x0201] = 0xF8 // SED
	mem.data[0x0202] = 0xA9 // LDA #$58
	mem.data[0x0203] = 0x58
	mem.data[0x0204] = 0x69 // ADC #$46
	mem.data[0x0205] = 0x46
	for i := 0; i < 4; i++ {
		c.StepInstruction()
	}

	// 58 + 46 + 1 (carry-in) = 105 in BCD.
	if c.A != 0x05 {
		t.Errorf("A = %02X, want 05", c.A)
	}
	if !c.flag(flagCarry) {
		t.Error("decimal carry-out not set")
	}
}

func TestBranchCycleCost(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[0x0200] = 0x80 // BRA +2
	mem.data[0x0201] = 0x02
	cycles := c.StepInstruction()
	if c.PC != 0x0204 {
		t.Errorf("PC = %04X, want 0204", c.PC)
	}
	if cycles != 3 {
		t.Errorf("taken branch cycles = %d, want 3 (base 2 + 1 taken)", cycles)
	}
}

func TestBRKThenRTI(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[IRQVector] = 0x00
	mem.data[IRQVector+1] = 0x03
	mem.data[0x0200] = 0x00 // BRK
	mem.data[0x0201] = 0x00 // signature byte BRK skips
	mem.data[0x0300] = 0x40 // RTI

	startS := c.S
	c.StepInstruction() // BRK
	if c.PC != 0x0300 {
		t.Errorf("PC after BRK = %04X, want 0300", c.PC)
	}
	if !c.flag(flagIRQDisable) {
		t.Error("irq_disable not set after BRK")
	}

	c.StepInstruction() // RTI
	if c.PC != 0x0202 {
		t.Errorf("PC after RTI = %04X, want 0202", c.PC)
	}
	if c.S != startS {
		t.Errorf("S after BRK/RTI round trip = %02X, want %02X", c.S, startS)
	}
}

func TestIRQMaskedByDisableFlag(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[0x0200] = 0xEA // NOP
	c.setFlag(flagIRQDisable, true)
	mem.irq = true

	c.StepInstruction()
	if c.PC != 0x0201 {
		t.Errorf("PC = %04X, want 0201 (IRQ should stay masked)", c.PC)
	}
}

func TestNMIAlwaysServiced(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[NMIVector] = 0x00
	mem.data[NMIVector+1] = 0x04
	mem.data[0x0200] = 0xEA // NOP
	mem.data[0x0400] = 0xEA // NOP: the handler's first instruction runs in the same step
	c.setFlag(flagIRQDisable, true)
	mem.nmi = true

	c.StepInstruction()
	if c.PC != 0x0401 {
		t.Errorf("PC = %04X, want 0401 (NMI must service even when irq_disable is set)", c.PC)
	}
}

func TestPushPopStatusBits(t *testing.T) {
	c, _ := newChip(t, 0x0200)
	c.P = flagCarry | flagZero
	c.pushP(true)
	pushed := c.mem.ReadU8(0x0100 | uint16(c.S+1))
	if pushed&flagBRK == 0 || pushed&flagUnused == 0 {
		t.Errorf("pushed P = %02X, want brk and _unused forced high", pushed)
	}

	c.popP()
	if c.P&flagBRK == 0 || c.P&flagUnused == 0 {
		t.Errorf("popped P = %02X, want bits 4-5 forced high", c.P)
	}
}

// registerSnapshot captures the architectural registers go-test/deep
// compares, following the teacher's cpu_test.go habit of diffing whole
// register snapshots rather than field-by-field assertions.
type registerSnapshot struct {
	A, X, Y, S uint8
	PC         uint16
	P          uint8
}

func snapshot(c *Chip) registerSnapshot {
	return registerSnapshot{A: c.A, X: c.X, Y: c.Y, S: c.S, PC: c.PC, P: c.P}
}

func TestLDAXYTransfersMatchSnapshot(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[0x0200] = 0xA9 // LDA #$05
	mem.data[0x0201] = 0x05
	mem.data[0x0202] = 0xAA // TAX
	mem.data[0x0203] = 0xA8 // TAY
	for i := 0; i < 3; i++ {
		c.StepInstruction()
	}

	want := registerSnapshot{A: 0x05, X: 0x05, Y: 0x05, S: 0xFD, PC: 0x0204, P: flagIRQDisable | flagBRK | flagUnused}
	if diff := deep.Equal(snapshot(c), want); diff != nil {
		t.Errorf("register snapshot diff: %v", diff)
	}
}

func TestSTPStopsExecution(t *testing.T) {
	c, mem := newChip(t, 0x0200)
	mem.data[0x0200] = 0xDB // STP
	c.StepInstruction()
	if c.Running() {
		t.Error("Running() should be false after STP")
	}
	if cycles := c.StepInstruction(); cycles != 0 {
		t.Errorf("StepInstruction after STP returned %d cycles, want 0", cycles)
	}
}
