package asm

import "fmt"

// ParamKind tags a Parameter's shape, mirroring the Rust Parameter
// enum's variants (assembler.rs).
type ParamKind int

const (
	ParamNone ParamKind = iota
	ParamA
	ParamX
	ParamY
	ParamImmediate
	ParamAbsolute
	ParamLabel
	ParamIndirect
	ParamList
)

// Parameter is the high-level operand syntax an Instruction carries,
// before addressing-mode selection. It is a closed set of shapes
// rather than a single numeric value, so that e.g. `(a),y` and `a,x`
// can be told apart during assembly.
type Parameter struct {
	Kind  ParamKind
	Value uint16      // Immediate (u8) or Absolute (u16)
	Text  string      // Label
	Inner *Parameter  // Indirect
	Items []Parameter // List
}

// None is the implied/no-operand parameter.
func None() Parameter { return Parameter{Kind: ParamNone} }

// A is the accumulator operand, e.g. `ASL A`.
func A() Parameter { return Parameter{Kind: ParamA} }

// X is the bare X register, only meaningful inside a List/Indirect.
func X() Parameter { return Parameter{Kind: ParamX} }

// Y is the bare Y register, only meaningful inside a List/Indirect.
func Y() Parameter { return Parameter{Kind: ParamY} }

// Immediate is an `#nn` operand.
func Immediate(v uint8) Parameter { return Parameter{Kind: ParamImmediate, Value: uint16(v)} }

// Absolute is a bare 16-bit (or, after zero-page optimization,
// 8-bit-valued) numeric operand.
func Absolute(v uint16) Parameter { return Parameter{Kind: ParamAbsolute, Value: v} }

// Label is an unresolved symbolic operand, filled in during pass 2.
func Label(name string) Parameter { return Parameter{Kind: ParamLabel, Text: name} }

// Indirect wraps inner in parentheses, e.g. `(a)`, `(zp,x)`, `(zp),y`.
func Indirect(inner Parameter) Parameter {
	return Parameter{Kind: ParamIndirect, Inner: &inner}
}

// List groups operands for indexed forms, e.g. List(Absolute(n), X())
// for `a,x`, or the two-operand BBRn/BBSn form List(Absolute(zp), Label(l)).
func List(items ...Parameter) Parameter {
	return Parameter{Kind: ParamList, Items: items}
}

// String renders a Parameter for debug/trace output.
func (p Parameter) String() string {
	switch p.Kind {
	case ParamNone:
		return ""
	case ParamA:
		return "A"
	case ParamX:
		return "X"
	case ParamY:
		return "Y"
	case ParamImmediate:
		return fmt.Sprintf("#%d", p.Value)
	case ParamAbsolute:
		return fmt.Sprintf("%d", p.Value)
	case ParamLabel:
		return p.Text
	case ParamIndirect:
		return fmt.Sprintf("(%s)", p.Inner.String())
	case ParamList:
		s := ""
		for i, item := range p.Items {
			if i > 0 {
				s += ","
			}
			s += item.String()
		}
		return s
	default:
		return "?"
	}
}
