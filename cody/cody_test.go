package cody

import "testing"

func rom() []uint8 {
	rom := make([]uint8, romSize)
	// LDA #$42 ; STA $0010 ; STP, placed at the start of ROM (0xE000).
	rom[0] = 0xA9
	rom[1] = 0x42
	rom[2] = 0x8D
	rom[3] = 0x10
	rom[4] = 0x00
	rom[5] = 0xDB
	// Reset vector (0xFFFC/0xFFFD) -> 0xE000; 0xFFFC - 0xE000 = romSize-4.
	rom[romSize-4] = 0x00
	rom[romSize-3] = 0xE0
	return rom
}

func TestMachineRunsResetVectorProgram(t *testing.T) {
	m, err := Init(&Def{ROM: rom()})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if m.CPU.PC != 0xE000 {
		t.Fatalf("PC = %04X, want E000", m.CPU.PC)
	}

	for m.CPU.Running() {
		m.Step()
	}

	if got := m.Bus.ReadU8(0x0010); got != 0x42 {
		t.Errorf("RAM[0x0010] = %02X, want 42", got)
	}
}

func TestMachineRejectsOversizedROM(t *testing.T) {
	_, err := Init(&Def{ROM: make([]uint8, romSize+1)})
	if err == nil {
		t.Fatal("expected an error for an oversized ROM image")
	}
}

func TestVIAWindowOverlaysRAM(t *testing.T) {
	m, err := Init(&Def{ROM: rom()})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	m.Bus.WriteU8(viaStart, 0xAB) // IORB register
	if got := m.VIA.ReadU8(0); got != 0xAB {
		t.Errorf("VIA.ReadU8(0) = %02X, want AB (bus write should reach the VIA)", got)
	}
}

func TestBlankingOverlaysDisplayRAM(t *testing.T) {
	m, err := Init(&Def{ROM: rom()})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	m.Blank.Tick(0)
	if got := m.Bus.ReadU8(blankAddr); got != 1 {
		t.Errorf("bus read at blankAddr = %d, want 1 at the start of a frame", got)
	}
}
