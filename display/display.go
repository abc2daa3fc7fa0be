// Package display renders the Cody display/propeller RAM region
// (0xA000-0xE000, per spec.md §6) into a standard image.NRGBA for
// debugging and tooling. The pixel shader / sprite rasterizer that
// really interprets this memory is explicitly out of spec.md's scope
// (§1); this package only gives a byte-for-byte grayscale view of the
// shared region, following the teacher's FrameDone(*image.NRGBA)
// callback shape (atari2600.ChipDef.FrameDone) as the idiom for
// handing a rendered frame to a caller.
package display

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/codyhome/cody65c02/memory"
)

// FrameFunc is called with a freshly rendered snapshot, mirroring the
// teacher's atari2600.ChipDef.FrameDone convention.
type FrameFunc func(*image.NRGBA)

// Snapshot reads width*height bytes from mem starting at base and
// renders them as a grayscale image, one byte per pixel. It is a
// debugging aid, not the real display pipeline: the actual character
// ROM / sprite rasterizer that gives these bytes meaning lives in the
// frontend, out of scope per spec.md §1.
func Snapshot(mem memory.Memory, base uint16, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	addr := base
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := mem.ReadU8(addr)
			addr++
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xFF})
		}
	}
	return img
}

// ScaleNearest blows a Snapshot up by an integer factor using
// x/image/draw's nearest-neighbor scaler, the way a debug dump wants
// to enlarge a one-byte-per-pixel frame into something actually
// visible. draw.NearestNeighbor keeps the blocky, byte-exact look
// appropriate for a raw-memory dump rather than smoothing it.
func ScaleNearest(src *image.NRGBA, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
