// Package cartridge loads Cody cartridge images: a 4-byte header
// naming a load address and an inclusive end address, followed by the
// payload bytes in between. Grounded on spec.md §6; there is no
// original_source file for this format (the Rust draft never got past
// the header format note), so construction follows the teacher's
// convertprg/-style "read header, validate, read payload" shape.
package cartridge

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Image is one loaded cartridge: a load address, an inclusive end
// address, and the payload bytes for that inclusive range.
type Image struct {
	Load uint16
	End  uint16
	Data []byte
}

// Len returns the number of payload bytes, end - load + 1.
func (img *Image) Len() int {
	return len(img.Data)
}

// headerSize is the 4-byte load/end address header.
const headerSize = 4

// Load reads a cartridge image: little-endian load address, then
// little-endian inclusive end address, then exactly
// (end - load + 1) payload bytes.
func Load(r io.Reader) (*Image, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("cartridge: reading header: %w", err)
	}

	load := binary.LittleEndian.Uint16(header[0:2])
	end := binary.LittleEndian.Uint16(header[2:4])
	if end < load {
		return nil, fmt.Errorf("cartridge: end address %#04x precedes load address %#04x", end, load)
	}

	size := int(end) - int(load) + 1
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("cartridge: reading %d payload bytes: %w", size, err)
	}

	return &Image{Load: load, End: end, Data: data}, nil
}
