package ir

// Typed value wrappers. Each tags a Value with the type the emitter
// guarantees it carries, so frontend code reads like the instruction
// set it translates.
type (
	U1  struct{ Value }
	U8  struct{ Value }
	U16 struct{ Value }
	U32 struct{ Value }
	U64 struct{ Value }
	F16 struct{ Value }
	F32 struct{ Value }
	F64 struct{ Value }
)

// Emitter builds type-checked instructions into a current block
// selected by the caller.
type Emitter struct {
	Block *Block
}

// NewEmitter returns an emitter appending to block.
func NewEmitter(block *Block) *Emitter {
	return &Emitter{Block: block}
}

func (e *Emitter) inst(op Opcode, args ...Value) Value {
	return InstValue(e.Block.AppendNewInst(op, args...))
}

func (e *Emitter) instFlags(op Opcode, flags uint64, args ...Value) Value {
	inst := e.Block.AppendNewInst(op, args...)
	inst.SetFlags(flags)
	return InstValue(inst)
}

// Imm1 materializes an immediate boolean.
func (e *Emitter) Imm1(value bool) U1 { return U1{ImmU1(value)} }

// Imm8 materializes an immediate u8.
func (e *Emitter) Imm8(value uint8) U8 { return U8{ImmU8(value)} }

// Imm16 materializes an immediate u16.
func (e *Emitter) Imm16(value uint16) U16 { return U16{ImmU16(value)} }

// Imm32 materializes an immediate u32.
func (e *Emitter) Imm32(value uint32) U32 { return U32{ImmU32(value)} }

// Imm32S materializes an immediate u32 from a signed value.
func (e *Emitter) Imm32S(value int32) U32 { return U32{ImmU32(uint32(value))} }

// Imm32F materializes an immediate f32.
func (e *Emitter) Imm32F(value float32) F32 { return F32{ImmF32(value)} }

// Imm64 materializes an immediate u64.
func (e *Emitter) Imm64(value uint64) U64 { return U64{ImmU64(value)} }

// Imm64F materializes an immediate f64.
func (e *Emitter) Imm64F(value float64) F64 { return F64{ImmF64(value)} }

// Branch lays down an unconditional branch terminator and records the
// predecessor edge.
func (e *Emitter) Branch(label *Block) {
	label.AddImmediatePredecessor(e.Block)
	e.Block.SetBranch(label)
	e.inst(OpBranch, LabelValue(label))
}

// BranchConditional lays down a two-way branch terminator and records
// both predecessor edges.
func (e *Emitter) BranchConditional(condition U1, trueLabel, falseLabel *Block) {
	e.Block.SetBranches(True, trueLabel, falseLabel)
	trueLabel.AddImmediatePredecessor(e.Block)
	falseLabel.AddImmediatePredecessor(e.Block)
	e.inst(OpBranchConditional, condition.Value, LabelValue(trueLabel), LabelValue(falseLabel))
}

// LoopMerge declares the merge and continue targets of a structured
// loop headed by the current block.
func (e *Emitter) LoopMerge(merge, continueTarget *Block) {
	e.inst(OpLoopMerge, LabelValue(merge), LabelValue(continueTarget))
}

// SelectionMerge declares the merge target of a structured selection.
func (e *Emitter) SelectionMerge(merge *Block) {
	e.inst(OpSelectionMerge, LabelValue(merge))
}

// Return lays down the return terminator.
func (e *Emitter) Return() {
	e.inst(OpReturn)
}

// Join lays down a reconvergence point.
func (e *Emitter) Join() {
	e.inst(OpJoin)
}

// GetReg reads a register. RZ folds to immediate zero and never
// reaches the SSA pass.
func (e *Emitter) GetReg(reg Reg) U32 {
	if reg == RZ {
		return e.Imm32(0)
	}
	return U32{e.inst(OpGetRegister, RegValue(reg))}
}

// SetReg writes a register. Writes to RZ are dropped.
func (e *Emitter) SetReg(reg Reg, value U32) {
	if reg == RZ {
		return
	}
	e.inst(OpSetRegister, RegValue(reg), value.Value)
}

// GetPred reads a predicate, optionally negated. PT folds to an
// immediate.
func (e *Emitter) GetPred(pred Pred, isNegated bool) U1 {
	if pred == PT {
		return e.Imm1(!isNegated)
	}
	value := U1{e.inst(OpGetPred, PredValue(pred))}
	if isNegated {
		return e.LogicalNot(value)
	}
	return value
}

// SetPred writes a predicate. Writes to PT are dropped.
func (e *Emitter) SetPred(pred Pred, value U1) {
	if pred == PT {
		return
	}
	e.inst(OpSetPred, PredValue(pred), value.Value)
}

// GetGotoVariable reads the goto variable with the given label id.
func (e *Emitter) GetGotoVariable(id uint32) U1 {
	return U1{e.inst(OpGetGotoVariable, ImmU32(id))}
}

// SetGotoVariable writes the goto variable with the given label id.
func (e *Emitter) SetGotoVariable(id uint32, value U1) {
	e.inst(OpSetGotoVariable, ImmU32(id), value.Value)
}

// GetIndirectBranchVariable reads the indirect branch variable.
func (e *Emitter) GetIndirectBranchVariable() U32 {
	return U32{e.inst(OpGetIndirectBranchVariable)}
}

// SetIndirectBranchVariable writes the indirect branch variable.
func (e *Emitter) SetIndirectBranchVariable(value U32) {
	e.inst(OpSetIndirectBranchVariable, value.Value)
}

// GetCbuf reads a 32-bit word from a constant buffer.
func (e *Emitter) GetCbuf(binding, byteOffset U32) U32 {
	return U32{e.inst(OpGetCbuf, binding.Value, byteOffset.Value)}
}

// GetAttribute reads an input attribute slot.
func (e *Emitter) GetAttribute(attribute Attribute) F32 {
	return F32{e.inst(OpGetAttribute, AttrValue(attribute))}
}

// SetAttribute writes an output attribute slot.
func (e *Emitter) SetAttribute(attribute Attribute, value F32) {
	e.inst(OpSetAttribute, AttrValue(attribute), value.Value)
}

// SetFragColor writes one component of a render target color.
func (e *Emitter) SetFragColor(index, component uint32, value F32) {
	e.inst(OpSetFragColor, ImmU32(index), ImmU32(component), value.Value)
}

// SetFragDepth writes the fragment depth output.
func (e *Emitter) SetFragDepth(value F32) {
	e.inst(OpSetFragDepth, value.Value)
}

// GetZFlag reads the zero flag.
func (e *Emitter) GetZFlag() U1 { return U1{e.inst(OpGetZFlag)} }

// GetSFlag reads the sign flag.
func (e *Emitter) GetSFlag() U1 { return U1{e.inst(OpGetSFlag)} }

// GetCFlag reads the carry flag.
func (e *Emitter) GetCFlag() U1 { return U1{e.inst(OpGetCFlag)} }

// GetOFlag reads the overflow flag.
func (e *Emitter) GetOFlag() U1 { return U1{e.inst(OpGetOFlag)} }

// SetZFlag writes the zero flag.
func (e *Emitter) SetZFlag(value U1) { e.inst(OpSetZFlag, value.Value) }

// SetSFlag writes the sign flag.
func (e *Emitter) SetSFlag(value U1) { e.inst(OpSetSFlag, value.Value) }

// SetCFlag writes the carry flag.
func (e *Emitter) SetCFlag(value U1) { e.inst(OpSetCFlag, value.Value) }

// SetOFlag writes the overflow flag.
func (e *Emitter) SetOFlag(value U1) { e.inst(OpSetOFlag, value.Value) }

// flowTest lowers a flow test to a U1 condition.
func (e *Emitter) flowTest(test FlowTest) U1 {
	switch test {
	case FlowTestT:
		return e.Imm1(true)
	case FlowTestF:
		return e.Imm1(false)
	case FlowTestEQ:
		return e.GetZFlag()
	case FlowTestNE:
		return e.LogicalNot(e.GetZFlag())
	default:
		panic(NotImplementedf("flow test %v", test))
	}
}

// Condition lowers a branch condition: predicate (optionally negated)
// combined with the flow test.
func (e *Emitter) Condition(cond Condition) U1 {
	return e.LogicalAnd(e.GetPred(cond.Pred, cond.PredNegated), e.flowTest(cond.FlowTest))
}

// LogicalOr emits a boolean or.
func (e *Emitter) LogicalOr(a, b U1) U1 { return U1{e.inst(OpLogicalOr, a.Value, b.Value)} }

// LogicalAnd emits a boolean and.
func (e *Emitter) LogicalAnd(a, b U1) U1 { return U1{e.inst(OpLogicalAnd, a.Value, b.Value)} }

// LogicalXor emits a boolean exclusive or.
func (e *Emitter) LogicalXor(a, b U1) U1 { return U1{e.inst(OpLogicalXor, a.Value, b.Value)} }

// LogicalNot emits a boolean negation.
func (e *Emitter) LogicalNot(value U1) U1 { return U1{e.inst(OpLogicalNot, value.Value)} }

// Select emits a two-way select, dispatching on the operand type.
func (e *Emitter) Select(condition U1, trueValue, falseValue Value) Value {
	if trueValue.Type() != falseValue.Type() {
		panic(InvalidArgumentf("select operands mismatch: %v and %v", trueValue.Type(), falseValue.Type()))
	}
	var op Opcode
	switch trueValue.Type() {
	case TypeU1:
		op = OpSelectU1
	case TypeU8:
		op = OpSelectU8
	case TypeU16:
		op = OpSelectU16
	case TypeU32:
		op = OpSelectU32
	case TypeU64:
		op = OpSelectU64
	case TypeF16:
		op = OpSelectF16
	case TypeF32:
		op = OpSelectF32
	case TypeF64:
		op = OpSelectF64
	default:
		panic(InvalidArgumentf("invalid type %v for select", trueValue.Type()))
	}
	return e.inst(op, condition.Value, trueValue, falseValue)
}

// IAdd emits a 32-bit integer addition.
func (e *Emitter) IAdd(a, b U32) U32 { return U32{e.inst(OpIAdd32, a.Value, b.Value)} }

// ISub emits a 32-bit integer subtraction.
func (e *Emitter) ISub(a, b U32) U32 { return U32{e.inst(OpISub32, a.Value, b.Value)} }

// IMul emits a 32-bit integer multiplication.
func (e *Emitter) IMul(a, b U32) U32 { return U32{e.inst(OpIMul32, a.Value, b.Value)} }

// INeg emits a 32-bit integer negation.
func (e *Emitter) INeg(value U32) U32 { return U32{e.inst(OpINeg32, value.Value)} }

// IAbs emits a 32-bit integer absolute value.
func (e *Emitter) IAbs(value U32) U32 { return U32{e.inst(OpIAbs32, value.Value)} }

// ShiftLeftLogical emits a 32-bit left shift.
func (e *Emitter) ShiftLeftLogical(base, shift U32) U32 {
	return U32{e.inst(OpShiftLeftLogical32, base.Value, shift.Value)}
}

// ShiftRightLogical emits a 32-bit logical right shift.
func (e *Emitter) ShiftRightLogical(base, shift U32) U32 {
	return U32{e.inst(OpShiftRightLogical32, base.Value, shift.Value)}
}

// ShiftRightArithmetic emits a 32-bit arithmetic right shift.
func (e *Emitter) ShiftRightArithmetic(base, shift U32) U32 {
	return U32{e.inst(OpShiftRightArithmetic32, base.Value, shift.Value)}
}

// BitwiseAnd emits a 32-bit and.
func (e *Emitter) BitwiseAnd(a, b U32) U32 { return U32{e.inst(OpBitwiseAnd32, a.Value, b.Value)} }

// BitwiseOr emits a 32-bit or.
func (e *Emitter) BitwiseOr(a, b U32) U32 { return U32{e.inst(OpBitwiseOr32, a.Value, b.Value)} }

// BitwiseXor emits a 32-bit exclusive or.
func (e *Emitter) BitwiseXor(a, b U32) U32 { return U32{e.inst(OpBitwiseXor32, a.Value, b.Value)} }

// BitwiseNot emits a 32-bit complement.
func (e *Emitter) BitwiseNot(value U32) U32 { return U32{e.inst(OpBitwiseNot32, value.Value)} }

// BitFieldExtract extracts count bits starting at offset, sign- or
// zero-extending per isSigned.
func (e *Emitter) BitFieldExtract(base, offset, count U32, isSigned bool) U32 {
	op := OpBitFieldUExtract
	if isSigned {
		op = OpBitFieldSExtract
	}
	return U32{e.inst(op, base.Value, offset.Value, count.Value)}
}

// ILessThan emits a 32-bit integer comparison.
func (e *Emitter) ILessThan(a, b U32, isSigned bool) U1 {
	if isSigned {
		return U1{e.inst(OpSLessThan, a.Value, b.Value)}
	}
	return U1{e.inst(OpULessThan, a.Value, b.Value)}
}

// IEqual emits a 32-bit integer equality test.
func (e *Emitter) IEqual(a, b U32) U1 { return U1{e.inst(OpIEqual, a.Value, b.Value)} }

// ILessThanEqual emits a 32-bit integer comparison.
func (e *Emitter) ILessThanEqual(a, b U32, isSigned bool) U1 {
	if isSigned {
		return U1{e.inst(OpSLessThanEqual, a.Value, b.Value)}
	}
	return U1{e.inst(OpULessThanEqual, a.Value, b.Value)}
}

// IGreaterThan emits a 32-bit integer comparison.
func (e *Emitter) IGreaterThan(a, b U32, isSigned bool) U1 {
	if isSigned {
		return U1{e.inst(OpSGreaterThan, a.Value, b.Value)}
	}
	return U1{e.inst(OpUGreaterThan, a.Value, b.Value)}
}

// INotEqual emits a 32-bit integer inequality test.
func (e *Emitter) INotEqual(a, b U32) U1 { return U1{e.inst(OpINotEqual, a.Value, b.Value)} }

// IGreaterThanEqual emits a 32-bit integer comparison.
func (e *Emitter) IGreaterThanEqual(a, b U32, isSigned bool) U1 {
	if isSigned {
		return U1{e.inst(OpSGreaterThanEqual, a.Value, b.Value)}
	}
	return U1{e.inst(OpUGreaterThanEqual, a.Value, b.Value)}
}

// fpOp dispatches a polymorphic floating point opcode on the width of
// value.
func fpOp(typ Type, op16, op32, op64 Opcode) Opcode {
	switch typ {
	case TypeF16:
		if op16 == OpVoid {
			panic(InvalidArgumentf("no f16 variant for %v", op32))
		}
		return op16
	case TypeF32:
		return op32
	case TypeF64:
		return op64
	default:
		panic(InvalidArgumentf("invalid type %v for floating point op", typ))
	}
}

// FPAdd emits a floating point addition of matching widths.
func (e *Emitter) FPAdd(a, b Value, control FpControl) Value {
	if a.Type() != b.Type() {
		panic(InvalidArgumentf("mismatching types %v and %v", a.Type(), b.Type()))
	}
	return e.instFlags(fpOp(a.Type(), OpFPAdd16, OpFPAdd32, OpFPAdd64), control.Pack(), a, b)
}

// FPMul emits a floating point multiplication of matching widths.
func (e *Emitter) FPMul(a, b Value, control FpControl) Value {
	if a.Type() != b.Type() {
		panic(InvalidArgumentf("mismatching types %v and %v", a.Type(), b.Type()))
	}
	return e.instFlags(fpOp(a.Type(), OpFPMul16, OpFPMul32, OpFPMul64), control.Pack(), a, b)
}

// FPFma emits a fused multiply-add of matching widths.
func (e *Emitter) FPFma(a, b, c Value, control FpControl) Value {
	if a.Type() != b.Type() || a.Type() != c.Type() {
		panic(InvalidArgumentf("mismatching types %v, %v and %v", a.Type(), b.Type(), c.Type()))
	}
	return e.instFlags(fpOp(a.Type(), OpFPFma16, OpFPFma32, OpFPFma64), control.Pack(), a, b, c)
}

// FPAbs emits a floating point absolute value.
func (e *Emitter) FPAbs(value Value) Value {
	return e.inst(fpOp(value.Type(), OpFPAbs16, OpFPAbs32, OpFPAbs64), value)
}

// FPNeg emits a floating point negation.
func (e *Emitter) FPNeg(value Value) Value {
	return e.inst(fpOp(value.Type(), OpFPNeg16, OpFPNeg32, OpFPNeg64), value)
}

// FPSaturate clamps to [0, 1].
func (e *Emitter) FPSaturate(value Value) Value {
	return e.inst(fpOp(value.Type(), OpFPSaturate16, OpFPSaturate32, OpFPSaturate64), value)
}

// FPRecip emits a reciprocal.
func (e *Emitter) FPRecip(value Value) Value {
	return e.inst(fpOp(value.Type(), OpVoid, OpFPRecip32, OpFPRecip64), value)
}

func (e *Emitter) fpCompare(op32, op64 Opcode, lhs, rhs Value) U1 {
	if lhs.Type() != rhs.Type() {
		panic(InvalidArgumentf("mismatching types %v and %v", lhs.Type(), rhs.Type()))
	}
	switch lhs.Type() {
	case TypeF32:
		return U1{e.inst(op32, lhs, rhs)}
	case TypeF64:
		return U1{e.inst(op64, lhs, rhs)}
	default:
		panic(InvalidArgumentf("invalid type %v for floating point compare", lhs.Type()))
	}
}

// FPEqual emits an ordered or unordered floating point equality test.
func (e *Emitter) FPEqual(lhs, rhs Value, ordered bool) U1 {
	if ordered {
		return e.fpCompare(OpFPOrdEqual32, OpFPOrdEqual64, lhs, rhs)
	}
	return e.fpCompare(OpFPUnordEqual32, OpFPUnordEqual64, lhs, rhs)
}

// FPNotEqual emits an ordered or unordered inequality test.
func (e *Emitter) FPNotEqual(lhs, rhs Value, ordered bool) U1 {
	if ordered {
		return e.fpCompare(OpFPOrdNotEqual32, OpFPOrdNotEqual64, lhs, rhs)
	}
	return e.fpCompare(OpFPUnordNotEqual32, OpFPUnordNotEqual64, lhs, rhs)
}

// FPLessThan emits an ordered or unordered less-than test.
func (e *Emitter) FPLessThan(lhs, rhs Value, ordered bool) U1 {
	if ordered {
		return e.fpCompare(OpFPOrdLessThan32, OpFPOrdLessThan64, lhs, rhs)
	}
	return e.fpCompare(OpFPUnordLessThan32, OpFPUnordLessThan64, lhs, rhs)
}

// FPGreaterThan emits an ordered or unordered greater-than test.
func (e *Emitter) FPGreaterThan(lhs, rhs Value, ordered bool) U1 {
	if ordered {
		return e.fpCompare(OpFPOrdGreaterThan32, OpFPOrdGreaterThan64, lhs, rhs)
	}
	return e.fpCompare(OpFPUnordGreaterThan32, OpFPUnordGreaterThan64, lhs, rhs)
}

// FPLessThanEqual emits an ordered or unordered test.
func (e *Emitter) FPLessThanEqual(lhs, rhs Value, ordered bool) U1 {
	if ordered {
		return e.fpCompare(OpFPOrdLessThanEqual32, OpFPOrdLessThanEqual64, lhs, rhs)
	}
	return e.fpCompare(OpFPUnordLessThanEqual32, OpFPUnordLessThanEqual64, lhs, rhs)
}

// FPGreaterThanEqual emits an ordered or unordered test.
func (e *Emitter) FPGreaterThanEqual(lhs, rhs Value, ordered bool) U1 {
	if ordered {
		return e.fpCompare(OpFPOrdGreaterThanEqual32, OpFPOrdGreaterThanEqual64, lhs, rhs)
	}
	return e.fpCompare(OpFPUnordGreaterThanEqual32, OpFPUnordGreaterThanEqual64, lhs, rhs)
}

// FPIsNan tests for NaN.
func (e *Emitter) FPIsNan(value Value) U1 {
	switch value.Type() {
	case TypeF32:
		return U1{e.inst(OpFPIsNan32, value)}
	case TypeF64:
		return U1{e.inst(OpFPIsNan64, value)}
	default:
		panic(InvalidArgumentf("invalid type %v for FPIsNan", value.Type()))
	}
}

// BitCastU32 reinterprets an f32 as a u32.
func (e *Emitter) BitCastU32(value F32) U32 { return U32{e.inst(OpBitCastU32F32, value.Value)} }

// BitCastF32 reinterprets a u32 as an f32.
func (e *Emitter) BitCastF32(value U32) F32 { return F32{e.inst(OpBitCastF32U32, value.Value)} }

// ConvertIntToFloat32 converts a 32-bit integer to f32.
func (e *Emitter) ConvertIntToFloat32(value U32, isSigned bool) F32 {
	if isSigned {
		return F32{e.inst(OpConvertF32S32, value.Value)}
	}
	return F32{e.inst(OpConvertF32U32, value.Value)}
}

// ConvertFloatToInt32 converts an f32 to a 32-bit integer with
// round-toward-zero semantics encoded in control.
func (e *Emitter) ConvertFloatToInt32(value F32, isSigned bool, control FpControl) U32 {
	if isSigned {
		return U32{e.instFlags(OpConvertS32F32, control.Pack(), value.Value)}
	}
	return U32{e.instFlags(OpConvertU32F32, control.Pack(), value.Value)}
}

var compositeConstructOps = map[Type][3]Opcode{
	TypeU32: {OpCompositeConstructU32x2, OpCompositeConstructU32x3, OpCompositeConstructU32x4},
	TypeF16: {OpCompositeConstructF16x2, OpCompositeConstructF16x3, OpCompositeConstructF16x4},
	TypeF32: {OpCompositeConstructF32x2, OpCompositeConstructF32x3, OpCompositeConstructF32x4},
	TypeF64: {OpCompositeConstructF64x2, OpCompositeConstructF64x3, OpCompositeConstructF64x4},
}

// CompositeConstruct assembles 2 to 4 scalars of one element type into
// a vector.
func (e *Emitter) CompositeConstruct(elements ...Value) Value {
	if len(elements) < 2 || len(elements) > 4 {
		panic(InvalidArgumentf("invalid composite arity %d", len(elements)))
	}
	elem := elements[0].Type()
	for _, el := range elements[1:] {
		if el.Type() != elem {
			panic(InvalidArgumentf("composite element type mismatch: %v and %v", elem, el.Type()))
		}
	}
	ops, ok := compositeConstructOps[elem]
	if !ok {
		panic(InvalidArgumentf("invalid element type %v for composite", elem))
	}
	return e.inst(ops[len(elements)-2], elements...)
}

var compositeExtractOps = map[Type]struct {
	op    Opcode
	width uint32
}{
	TypeU32x2: {OpCompositeExtractU32x2, 2},
	TypeU32x3: {OpCompositeExtractU32x3, 3},
	TypeU32x4: {OpCompositeExtractU32x4, 4},
	TypeF16x2: {OpCompositeExtractF16x2, 2},
	TypeF16x3: {OpCompositeExtractF16x3, 3},
	TypeF16x4: {OpCompositeExtractF16x4, 4},
	TypeF32x2: {OpCompositeExtractF32x2, 2},
	TypeF32x3: {OpCompositeExtractF32x3, 3},
	TypeF32x4: {OpCompositeExtractF32x4, 4},
	TypeF64x2: {OpCompositeExtractF64x2, 2},
	TypeF64x3: {OpCompositeExtractF64x3, 3},
	TypeF64x4: {OpCompositeExtractF64x4, 4},
}

// CompositeExtract reads element index of a vector; the index is
// range-checked against the vector width.
func (e *Emitter) CompositeExtract(vector Value, index uint32) Value {
	entry, ok := compositeExtractOps[vector.Type()]
	if !ok {
		panic(InvalidArgumentf("invalid type %v for composite extract", vector.Type()))
	}
	if index >= entry.width {
		panic(InvalidArgumentf("out of bounds element %d for %v", index, vector.Type()))
	}
	return e.inst(entry.op, vector, ImmU32(index))
}

// WorkgroupIDComponent reads one component of the workgroup id.
func (e *Emitter) WorkgroupIDComponent(component uint32) U32 {
	return U32{e.inst(OpCompositeExtractU32x3, e.inst(OpWorkgroupID), ImmU32(component))}
}

// LocalInvocationIDComponent reads one component of the local
// invocation id.
func (e *Emitter) LocalInvocationIDComponent(component uint32) U32 {
	return U32{e.inst(OpCompositeExtractU32x3, e.inst(OpLocalInvocationID), ImmU32(component))}
}

// GetZeroFromOp extracts the zero secondary result of op.
func (e *Emitter) GetZeroFromOp(op Value) U1 { return U1{e.inst(OpGetZeroFromOp, op)} }

// GetSignFromOp extracts the sign secondary result of op.
func (e *Emitter) GetSignFromOp(op Value) U1 { return U1{e.inst(OpGetSignFromOp, op)} }

// GetCarryFromOp extracts the carry secondary result of op.
func (e *Emitter) GetCarryFromOp(op Value) U1 { return U1{e.inst(OpGetCarryFromOp, op)} }

// GetOverflowFromOp extracts the overflow secondary result of op.
func (e *Emitter) GetOverflowFromOp(op Value) U1 { return U1{e.inst(OpGetOverflowFromOp, op)} }

// GetSparseFromOp extracts the sparse residency code of a texture op.
func (e *Emitter) GetSparseFromOp(op Value) U1 { return U1{e.inst(OpGetSparseFromOp, op)} }

// ImageSampleImplicitLod samples a texture with implicit level of
// detail.
func (e *Emitter) ImageSampleImplicitLod(handle U32, coord, biasLC, offset Value, info TextureInstInfo) Value {
	return e.instFlags(OpImageSampleImplicitLod, info.Pack(), handle.Value, coord, biasLC, offset)
}

// ImageSampleExplicitLod samples a texture at an explicit level of
// detail.
func (e *Emitter) ImageSampleExplicitLod(handle U32, coord Value, lod F32, offset Value, info TextureInstInfo) Value {
	return e.instFlags(OpImageSampleExplicitLod, info.Pack(), handle.Value, coord, lod.Value, offset)
}

// ImageSampleDrefImplicitLod performs a depth-compare sample with
// implicit level of detail.
func (e *Emitter) ImageSampleDrefImplicitLod(handle U32, coord Value, dref F32, biasLC, offset Value, info TextureInstInfo) Value {
	return e.instFlags(OpImageSampleDrefImplicitLod, info.Pack(), handle.Value, coord, dref.Value, biasLC, offset)
}

// ImageSampleDrefExplicitLod performs a depth-compare sample at an
// explicit level of detail.
func (e *Emitter) ImageSampleDrefExplicitLod(handle U32, coord Value, dref, lod F32, offset Value, info TextureInstInfo) Value {
	return e.instFlags(OpImageSampleDrefExplicitLod, info.Pack(), handle.Value, coord, dref.Value, lod.Value, offset)
}

// ImageGather gathers one component from four texels.
func (e *Emitter) ImageGather(handle U32, coord, offset, offset2 Value, info TextureInstInfo) Value {
	return e.instFlags(OpImageGather, info.Pack(), handle.Value, coord, offset, offset2)
}

// ImageGatherDref gathers four depth-compare results.
func (e *Emitter) ImageGatherDref(handle U32, coord, offset, offset2 Value, dref F32, info TextureInstInfo) Value {
	return e.instFlags(OpImageGatherDref, info.Pack(), handle.Value, coord, offset, offset2, dref.Value)
}

// ImageFetch fetches a single texel by integer coordinate.
func (e *Emitter) ImageFetch(handle U32, coord, offset Value, lod, multisample U32, info TextureInstInfo) Value {
	return e.instFlags(OpImageFetch, info.Pack(), handle.Value, coord, offset, lod.Value, multisample.Value)
}

// ImageQueryDimensions queries the dimensions of a texture level.
func (e *Emitter) ImageQueryDimensions(handle U32, lod F32, info TextureInstInfo) Value {
	return e.instFlags(OpImageQueryDimensions, info.Pack(), handle.Value, lod.Value)
}

// VoteAll reduces a predicate across the warp.
func (e *Emitter) VoteAll(pred U1) U1 { return U1{e.inst(OpVoteAll, pred.Value)} }

// VoteAny reduces a predicate across the warp.
func (e *Emitter) VoteAny(pred U1) U1 { return U1{e.inst(OpVoteAny, pred.Value)} }

// VoteEqual tests predicate uniformity across the warp.
func (e *Emitter) VoteEqual(pred U1) U1 { return U1{e.inst(OpVoteEqual, pred.Value)} }

// SubgroupBallot returns the warp ballot mask of a predicate.
func (e *Emitter) SubgroupBallot(pred U1) U32 { return U32{e.inst(OpSubgroupBallot, pred.Value)} }
