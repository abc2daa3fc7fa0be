package cartridge

import (
	"bytes"
	"testing"
)

func TestLoadRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0xE0, 0x02, 0xE0, 0xAA, 0xBB, 0xCC}
	img, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Load != 0xE000 || img.End != 0xE002 {
		t.Errorf("Load/End = %04X/%04X, want E000/E002", img.Load, img.End)
	}
	if img.Len() != 3 {
		t.Errorf("Len() = %d, want 3", img.Len())
	}
	if !bytes.Equal(img.Data, []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("Data = % X, want AA BB CC", img.Data)
	}
}

func TestLoadRejectsEndBeforeLoad(t *testing.T) {
	raw := []byte{0x10, 0xE0, 0x00, 0xE0}
	if _, err := Load(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected an error when end precedes load")
	}
}

func TestLoadRejectsTruncatedPayload(t *testing.T) {
	raw := []byte{0x00, 0xE0, 0x05, 0xE0, 0x01} // header promises 6 bytes, has 1
	if _, err := Load(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected an error on truncated payload")
	}
}
