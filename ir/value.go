package ir

import (
	"fmt"
	"math"
)

// Value is an operand of an instruction: empty, an immediate of a
// primitive type, a symbolic token (register, predicate, attribute,
// block label, flow test), or a reference to an instruction.
//
// A Value referencing an instruction is non-owning; the instruction
// outlives every Value pointing at it because instructions are only
// reclaimed with their Program.
type Value struct {
	typ   Type
	inst  *Inst
	label *Block
	reg   Reg
	pred  Pred
	attr  Attribute
	flow  FlowTest
	imm   uint64
}

// InstValue returns a Value referencing inst.
func InstValue(inst *Inst) Value {
	return Value{typ: TypeOpaque, inst: inst}
}

// RegValue returns a register token Value.
func RegValue(r Reg) Value {
	return Value{typ: TypeReg, reg: r}
}

// PredValue returns a predicate token Value.
func PredValue(p Pred) Value {
	return Value{typ: TypePred, pred: p}
}

// AttrValue returns an attribute token Value.
func AttrValue(a Attribute) Value {
	return Value{typ: TypeAttribute, attr: a}
}

// LabelValue returns a block label Value.
func LabelValue(b *Block) Value {
	return Value{typ: TypeLabel, label: b}
}

// FlowTestValue returns a flow-test token Value.
func FlowTestValue(f FlowTest) Value {
	return Value{typ: TypeOpaque, flow: f}
}

// ImmU1 returns an immediate boolean Value.
func ImmU1(v bool) Value {
	var bits uint64
	if v {
		bits = 1
	}
	return Value{typ: TypeU1, imm: bits}
}

// ImmU8 returns an immediate u8 Value.
func ImmU8(v uint8) Value { return Value{typ: TypeU8, imm: uint64(v)} }

// ImmU16 returns an immediate u16 Value.
func ImmU16(v uint16) Value { return Value{typ: TypeU16, imm: uint64(v)} }

// ImmU32 returns an immediate u32 Value.
func ImmU32(v uint32) Value { return Value{typ: TypeU32, imm: uint64(v)} }

// ImmU64 returns an immediate u64 Value.
func ImmU64(v uint64) Value { return Value{typ: TypeU64, imm: v} }

// ImmF16 returns an immediate f16 Value from its bit pattern.
func ImmF16(bits uint16) Value { return Value{typ: TypeF16, imm: uint64(bits)} }

// ImmF32 returns an immediate f32 Value.
func ImmF32(v float32) Value {
	return Value{typ: TypeF32, imm: uint64(math.Float32bits(v))}
}

// ImmF64 returns an immediate f64 Value.
func ImmF64(v float64) Value {
	return Value{typ: TypeF64, imm: math.Float64bits(v)}
}

// IsEmpty reports whether the value is the empty value.
func (v Value) IsEmpty() bool {
	return v.typ == TypeVoid && v.inst == nil && v.label == nil
}

// IsImmediate reports whether the value is an immediate, resolving
// through identity instructions.
func (v Value) IsImmediate() bool {
	r := v.Resolve()
	return r.inst == nil && r.label == nil && r.typ != TypeVoid &&
		r.typ != TypeReg && r.typ != TypePred && r.typ != TypeAttribute
}

// IsLabel reports whether the value is a block label.
func (v Value) IsLabel() bool { return v.label != nil }

// Inst returns the referenced instruction, or nil.
func (v Value) Inst() *Inst { return v.inst }

// InstRecursive returns the referenced instruction after resolving
// identity chains.
func (v Value) InstRecursive() *Inst { return v.Resolve().inst }

// Resolve follows identity instructions until reaching a
// non-identity value.
func (v Value) Resolve() Value {
	for v.inst != nil && v.inst.op == OpIdentity {
		v = v.inst.args[0]
	}
	return v
}

// Type returns the type of the value. For instruction references this
// is the instruction's result type.
func (v Value) Type() Type {
	if v.inst != nil {
		return v.inst.Type()
	}
	return v.typ
}

// Eq reports raw equality: same kind and same payload. Instruction
// references compare by pointer identity.
func (v Value) Eq(o Value) bool {
	return v == o
}

// Reg returns the register token.
func (v Value) Reg() Reg {
	if v.typ != TypeReg {
		panic(InvalidArgumentf("value is %v, not a register", v.typ))
	}
	return v.reg
}

// Pred returns the predicate token.
func (v Value) Pred() Pred {
	if v.typ != TypePred {
		panic(InvalidArgumentf("value is %v, not a predicate", v.typ))
	}
	return v.pred
}

// Attribute returns the attribute token.
func (v Value) Attribute() Attribute {
	if v.typ != TypeAttribute {
		panic(InvalidArgumentf("value is %v, not an attribute", v.typ))
	}
	return v.attr
}

// Label returns the block label.
func (v Value) Label() *Block {
	if v.label == nil {
		panic(InvalidArgumentf("value is %v, not a label", v.typ))
	}
	return v.label
}

// FlowTest returns the flow-test token.
func (v Value) FlowTest() FlowTest { return v.flow }

// U1 returns the immediate boolean payload.
func (v Value) U1() bool {
	r := v.Resolve()
	r.check(TypeU1)
	return r.imm != 0
}

// U8 returns the immediate u8 payload.
func (v Value) U8() uint8 {
	r := v.Resolve()
	r.check(TypeU8)
	return uint8(r.imm)
}

// U16 returns the immediate u16 payload.
func (v Value) U16() uint16 {
	r := v.Resolve()
	r.check(TypeU16)
	return uint16(r.imm)
}

// U32 returns the immediate u32 payload.
func (v Value) U32() uint32 {
	r := v.Resolve()
	r.check(TypeU32)
	return uint32(r.imm)
}

// U64 returns the immediate u64 payload.
func (v Value) U64() uint64 {
	r := v.Resolve()
	r.check(TypeU64)
	return r.imm
}

// F32 returns the immediate f32 payload.
func (v Value) F32() float32 {
	r := v.Resolve()
	r.check(TypeF32)
	return math.Float32frombits(uint32(r.imm))
}

// F64 returns the immediate f64 payload.
func (v Value) F64() float64 {
	r := v.Resolve()
	r.check(TypeF64)
	return math.Float64frombits(r.imm)
}

func (v Value) check(want Type) {
	if v.typ != want || v.inst != nil {
		panic(InvalidArgumentf("value is %v, not an immediate %v", v.typ, want))
	}
}

// String renders the value for dumps.
func (v Value) String() string {
	switch {
	case v.IsEmpty():
		return "<empty>"
	case v.inst != nil:
		return fmt.Sprintf("%%%p", v.inst)
	case v.label != nil:
		return v.label.Name()
	}
	switch v.typ {
	case TypeReg:
		return v.reg.String()
	case TypePred:
		return v.pred.String()
	case TypeAttribute:
		return v.attr.String()
	case TypeU1:
		if v.imm != 0 {
			return "true"
		}
		return "false"
	case TypeU8, TypeU16, TypeU32, TypeU64:
		return fmt.Sprintf("%d", v.imm)
	case TypeF16:
		return fmt.Sprintf("f16(%#x)", uint16(v.imm))
	case TypeF32:
		return fmt.Sprintf("%v", math.Float32frombits(uint32(v.imm)))
	case TypeF64:
		return fmt.Sprintf("%v", math.Float64frombits(v.imm))
	}
	return fmt.Sprintf("<%v>", v.typ)
}
