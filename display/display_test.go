package display

import (
	"testing"

	"github.com/codyhome/cody65c02/memory"
)

func TestSnapshotRendersGrayscale(t *testing.T) {
	ram := memory.NewRAM(4)
	ram.WriteU8(0, 0x10)
	ram.WriteU8(1, 0x20)
	ram.WriteU8(2, 0x30)
	ram.WriteU8(3, 0x40)

	img := Snapshot(ram, 0, 2, 2)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", img.Bounds())
	}
	px := img.NRGBAAt(1, 0)
	if px.R != 0x20 || px.G != 0x20 || px.B != 0x20 || px.A != 0xFF {
		t.Errorf("pixel(1,0) = %+v, want R=G=B=20 A=FF", px)
	}
}

func TestScaleNearestMagnifiesAndPreservesColor(t *testing.T) {
	ram := memory.NewRAM(4)
	ram.WriteU8(0, 0x10)
	ram.WriteU8(1, 0x20)
	ram.WriteU8(2, 0x30)
	ram.WriteU8(3, 0x40)

	img := Snapshot(ram, 0, 2, 2)
	scaled := ScaleNearest(img, 3)

	if scaled.Bounds().Dx() != 6 || scaled.Bounds().Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", scaled.Bounds())
	}
	px := scaled.NRGBAAt(3, 0)
	if px.R != 0x20 || px.G != 0x20 || px.B != 0x20 || px.A != 0xFF {
		t.Errorf("pixel(3,0) = %+v, want R=G=B=20 A=FF (nearest-neighbor of source (1,0))", px)
	}
}
