package asm

import (
	"fmt"

	"github.com/codyhome/cody65c02/cpu"
)

// assembledKind tags what an assembledParameter currently holds.
type assembledKind int

const (
	akLabel assembledKind = iota
	akU8
	akU16
)

// assembledParameter is an operand value in progress: either still an
// unresolved label (pass 1) or a resolved byte/word (after pass 2, or
// if it never needed resolving).
type assembledParameter struct {
	kind  assembledKind
	label string
	u8    uint8
	u16   uint16
}

// assembledInstruction pairs a chosen opcode-table entry with its
// resolved-or-pending operand values.
type assembledInstruction struct {
	meta   *cpu.OpMeta
	param1 *assembledParameter
	param2 *assembledParameter
}

// parseParameters turns a high-level Parameter into the addressing
// modes and operand values candidate opcode entries are matched
// against. Mirrors assembler.rs's AssembledInstruction::parse_parameters
// arm-for-arm.
func parseParameters(p Parameter) (mode1 cpu.AddressingMode, param1 *assembledParameter, mode2 cpu.AddressingMode, param2 *assembledParameter, err error) {
	mode2 = cpu.None

	switch p.Kind {
	case ParamNone:
		return cpu.None, nil, cpu.None, nil, nil
	case ParamA:
		return cpu.Accumulator, nil, cpu.None, nil, nil
	case ParamImmediate:
		return cpu.Immediate, &assembledParameter{kind: akU8, u8: uint8(p.Value)}, cpu.None, nil, nil
	case ParamAbsolute:
		return cpu.Absolute, &assembledParameter{kind: akU16, u16: p.Value}, cpu.None, nil, nil
	case ParamLabel:
		// AddressingMode::None is a placeholder here: the real mode is
		// decided once a unique candidate encoding is found.
		return cpu.None, &assembledParameter{kind: akLabel, label: p.Text}, cpu.None, nil, nil
	case ParamIndirect:
		inner := p.Inner
		switch inner.Kind {
		case ParamAbsolute:
			return cpu.AbsoluteIndirect, &assembledParameter{kind: akU16, u16: inner.Value}, cpu.None, nil, nil
		case ParamList:
			if len(inner.Items) == 2 && inner.Items[1].Kind == ParamX {
				switch inner.Items[0].Kind {
				case ParamAbsolute:
					return cpu.AbsoluteIndexedIndirectX, &assembledParameter{kind: akU16, u16: inner.Items[0].Value}, cpu.None, nil, nil
				case ParamLabel:
					return cpu.AbsoluteIndexedIndirectX, &assembledParameter{kind: akLabel, label: inner.Items[0].Text}, cpu.None, nil, nil
				}
			}
			return cpu.None, nil, cpu.None, nil, parameterMismatch("could not match indirect parameter")
		default:
			return cpu.None, nil, cpu.None, nil, parameterMismatch("could not match indirect parameter")
		}
	case ParamList:
		items := p.Items
		switch {
		case len(items) == 2 && items[1].Kind == ParamX && items[0].Kind == ParamAbsolute:
			return cpu.AbsoluteIndexedX, &assembledParameter{kind: akU16, u16: items[0].Value}, cpu.None, nil, nil
		case len(items) == 2 && items[1].Kind == ParamX && items[0].Kind == ParamLabel:
			return cpu.AbsoluteIndexedX, &assembledParameter{kind: akLabel, label: items[0].Text}, cpu.None, nil, nil
		case len(items) == 2 && items[1].Kind == ParamY && items[0].Kind == ParamAbsolute:
			return cpu.AbsoluteIndexedY, &assembledParameter{kind: akU16, u16: items[0].Value}, cpu.None, nil, nil
		case len(items) == 2 && items[1].Kind == ParamY && items[0].Kind == ParamLabel:
			return cpu.AbsoluteIndexedY, &assembledParameter{kind: akLabel, label: items[0].Text}, cpu.None, nil, nil
		case len(items) == 2 && items[1].Kind == ParamY && items[0].Kind == ParamIndirect:
			innerInner := items[0].Inner
			if innerInner.Kind == ParamAbsolute && innerInner.Value <= 0xFF {
				return cpu.ZeroPageIndirectIndexedY, &assembledParameter{kind: akU8, u8: uint8(innerInner.Value)}, cpu.None, nil, nil
			}
			return cpu.None, nil, cpu.None, nil, parameterMismatch("could not match (zp),y parameter")
		case len(items) == 2 && items[0].Kind == ParamAbsolute && items[1].Kind == ParamLabel:
			// The two-operand BBRn/BBSn form: zero-page test address,
			// then the branch target label.
			return cpu.Absolute, &assembledParameter{kind: akU16, u16: items[0].Value},
				cpu.ProgramCounterRelative, &assembledParameter{kind: akLabel, label: items[1].Text}, nil
		default:
			return cpu.None, nil, cpu.None, nil, parameterMismatch("could not match list parameter")
		}
	default:
		return cpu.None, nil, cpu.None, nil, parameterMismatch("could not match parameter")
	}
}

func hasCandidateWithMode1(candidates []*cpu.OpMeta, mode cpu.AddressingMode) bool {
	for _, c := range candidates {
		if c.Param1 == mode {
			return true
		}
	}
	return false
}

// assembleInstruction picks the opcode-table entry matching ins and
// resolves its operands into U8/U16/Label placeholders.
func assembleInstruction(ins Instruction) (*assembledInstruction, error) {
	mode1, param1, mode2, param2, err := parseParameters(ins.Parameter)
	if err != nil {
		return nil, err
	}

	candidates := cpu.ByMnemonic(ins.Mnemonic)

	// Zero-page optimization: only ever narrows parameter_1.
	if param1 != nil && param1.kind == akU16 && param1.u16 <= 0xFF {
		zpOptimize := func(absMode, zpMode cpu.AddressingMode) {
			if mode1 == absMode && hasCandidateWithMode1(candidates, zpMode) {
				mode1 = zpMode
				param1 = &assembledParameter{kind: akU8, u8: uint8(param1.u16)}
			}
		}
		zpOptimize(cpu.Absolute, cpu.ZeroPage)
		zpOptimize(cpu.AbsoluteIndexedX, cpu.ZeroPageIndexedX)
		zpOptimize(cpu.AbsoluteIndexedY, cpu.ZeroPageIndexedY)
		zpOptimize(cpu.AbsoluteIndirect, cpu.ZeroPageIndirect)
		zpOptimize(cpu.AbsoluteIndexedIndirectX, cpu.ZeroPageIndexedIndirectX)
	}

	labelled := (param1 != nil && param1.kind == akLabel) || (param2 != nil && param2.kind == akLabel)
	if labelled {
		// Only works when there is exactly one possible encoding; we do
		// not yet disambiguate relative vs. absolute candidates sharing
		// a mnemonic.
		if len(candidates) != 1 {
			return nil, parameterMismatch(fmt.Sprintf("multiple candidates for labelled instruction %s", ins.Mnemonic))
		}
		return &assembledInstruction{meta: candidates[0], param1: param1, param2: param2}, nil
	}

	for _, candidate := range candidates {
		sameParam2 := (candidate.HasParam2 && candidate.Param2 == mode2) || (!candidate.HasParam2 && mode2 == cpu.None)
		if candidate.Param1 == mode1 && sameParam2 {
			return &assembledInstruction{meta: candidate, param1: param1, param2: param2}, nil
		}
	}

	return nil, parameterMismatch(fmt.Sprintf("could not find matching instruction for %s", ins.Mnemonic))
}

// fillLabel resolves param in place against labels, given the
// addressing mode it belongs to and the cursor address at which a
// PC-relative byte would be consumed.
func fillLabel(param *assembledParameter, mode cpu.AddressingMode, address uint16, labels map[string]uint16) error {
	if param == nil || param.kind != akLabel {
		return nil
	}
	resolved, ok := labels[param.label]
	if !ok {
		return unknownLabel(param.label)
	}

	switch mode {
	case cpu.ProgramCounterRelative:
		var diff int16
		if resolved < address {
			d := address - resolved
			if d > 128 {
				return jumpTooFar()
			}
			diff = -int16(d)
		} else {
			d := resolved - address
			if d > 127 {
				return jumpTooFar()
			}
			diff = int16(d)
		}
		param.kind = akU8
		param.u8 = uint8(int8(diff))
	case cpu.Absolute, cpu.AbsoluteIndexedX, cpu.AbsoluteIndexedY, cpu.AbsoluteIndirect, cpu.AbsoluteIndexedIndirectX:
		param.kind = akU16
		param.u16 = resolved
	default:
		return parameterMismatch(fmt.Sprintf("could not replace label with actual address: %s", mode))
	}
	return nil
}

func fillLabels(ai *assembledInstruction, address uint16, labels map[string]uint16) error {
	if err := fillLabel(ai.param1, ai.meta.Param1, address, labels); err != nil {
		return err
	}
	if err := fillLabel(ai.param2, ai.meta.Param2, address, labels); err != nil {
		return err
	}
	return nil
}
