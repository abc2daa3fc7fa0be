package disassemble

import (
	"testing"

	"github.com/codyhome/cody65c02/memory"
)

func TestStepImmediate(t *testing.T) {
	mem := memory.NewROMFromBytes([]byte{0xA9, 0x42})
	text, width := Step(0, mem)
	if text != "LDA #$42" {
		t.Errorf("text = %q, want %q", text, "LDA #$42")
	}
	if width != 2 {
		t.Errorf("width = %d, want 2", width)
	}
}

func TestStepAbsoluteIndexed(t *testing.T) {
	mem := memory.NewROMFromBytes([]byte{0x9D, 0x00, 0xA0})
	text, width := Step(0, mem)
	if text != "STA $A000,X" {
		t.Errorf("text = %q, want %q", text, "STA $A000,X")
	}
	if width != 3 {
		t.Errorf("width = %d, want 3", width)
	}
}

func TestStepImpliedHasNoOperand(t *testing.T) {
	mem := memory.NewROMFromBytes([]byte{0xEA})
	text, width := Step(0, mem)
	if text != "NOP" {
		t.Errorf("text = %q, want %q", text, "NOP")
	}
	if width != 1 {
		t.Errorf("width = %d, want 1", width)
	}
}

func TestStepBranchTargetIsComputed(t *testing.T) {
	mem := memory.NewROMFromBytes([]byte{0x80, 0x02}) // BRA +2, from pc=0 lands at 4
	text, _ := Step(0, mem)
	if text != "BRA $0004" {
		t.Errorf("text = %q, want %q", text, "BRA $0004")
	}
}
