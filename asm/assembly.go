package asm

import "io"

// Assembly holds a program through both assembly passes: the raw
// instruction list, the label table pass 1 builds, and the resolved
// instructions pass 2 produces.
type Assembly struct {
	Instructions []Instruction
	Labels       map[string]uint16
	Assembled    []*assembledInstruction
}

// NewAssembly wraps instructions for assembly.
func NewAssembly(instructions []Instruction) *Assembly {
	return &Assembly{
		Instructions: instructions,
		Labels:       make(map[string]uint16),
	}
}

// assemble runs both passes, populating a.Labels and a.Assembled.
func (a *Assembly) assemble() error {
	// Pass 1: bind labels, select opcode encodings, assign addresses.
	address := uint16(0)
	for _, ins := range a.Instructions {
		if ins.HasLabel {
			if _, exists := a.Labels[ins.Label]; exists {
				return doubleLabel(ins.Label)
			}
			a.Labels[ins.Label] = address
		}

		assembled, err := assembleInstruction(ins)
		if err != nil {
			return err
		}

		next := uint32(address) + uint32(assembled.meta.Width())
		if next > 0xFFFF {
			return addressOverflow()
		}
		address = uint16(next)
		a.Assembled = append(a.Assembled, assembled)
	}

	// Pass 2: resolve labels. The cursor advances past each
	// instruction before resolving its own operands, since a
	// PC-relative byte is consumed at the address right after it.
	address = 0
	for _, assembled := range a.Assembled {
		address += uint16(assembled.meta.Width())
		if err := fillLabels(assembled, address, a.Labels); err != nil {
			return err
		}
	}

	return nil
}

// WriteTo emits the assembled bytes: opcode byte, then operand bytes
// in little-endian order. Every label must already be resolved.
func (a *Assembly) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, assembled := range a.Assembled {
		n, err := w.Write([]byte{assembled.meta.Byte})
		written += int64(n)
		if err != nil {
			return written, ioErr(err)
		}

		for _, p := range []*assembledParameter{assembled.param1, assembled.param2} {
			if p == nil {
				continue
			}
			var buf []byte
			switch p.kind {
			case akU8:
				buf = []byte{p.u8}
			case akU16:
				buf = []byte{uint8(p.u16), uint8(p.u16 >> 8)}
			case akLabel:
				return written, genericErr("unresolved label at emission time")
			}
			n, err := w.Write(buf)
			written += int64(n)
			if err != nil {
				return written, ioErr(err)
			}
		}
	}
	return written, nil
}

// Assemble translates instructions into machine code, writing the
// result to w. No partial output's final byte is emitted if assembly
// fails validation; I/O errors from w are still possible mid-write.
func Assemble(instructions []Instruction, w io.Writer) error {
	assembly := NewAssembly(instructions)
	if err := assembly.assemble(); err != nil {
		return err
	}
	_, err := assembly.WriteTo(w)
	return err
}
