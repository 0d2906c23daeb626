package maxwell

import "github.com/gogpu/maxas/ir"

// iadd lays down an integer addition, writing the Z and S condition
// code flags through pseudo-operations when the CC bit is set.
func (v *TranslatorVisitor) iadd(insn uint64, opB ir.U32) {
	opA := v.GetReg8(insn)
	if bitField(insn, 49, 1) != 0 {
		opA = v.ir.INeg(opA)
	}
	if bitField(insn, 48, 1) != 0 {
		opB = v.ir.INeg(opB)
	}
	result := v.ir.IAdd(opA, opB)
	if bitField(insn, 47, 1) != 0 {
		v.ir.SetZFlag(v.ir.GetZeroFromOp(result.Value))
		v.ir.SetSFlag(v.ir.GetSignFromOp(result.Value))
	}
	v.SetX(v.reg(insn, destRegField), result)
}

// IADDReg is the register-operand form.
func (v *TranslatorVisitor) IADDReg(insn uint64) {
	v.guardPred(insn)
	v.iadd(insn, v.GetReg20(insn))
}

// IADD32I is the 32-bit immediate form.
func (v *TranslatorVisitor) IADD32I(insn uint64) {
	v.guardPred(insn)
	opA := v.GetReg8(insn)
	result := v.ir.IAdd(opA, v.GetImm32(insn))
	v.SetX(v.reg(insn, destRegField), result)
}

// ISETPReg sets a predicate from an integer comparison combined with a
// source predicate.
func (v *TranslatorVisitor) ISETPReg(insn uint64) {
	v.guardPred(insn)
	a := v.GetReg8(insn)
	b := v.GetReg20(insn)
	isSigned := bitField(insn, 48, 1) != 0
	compareOp := ComparisonOp(bitField(insn, 49, 3))
	cmpResult := IntegerCompare(v.ir, a, b, compareOp, isSigned)
	srcPred := ir.Pred(bitField(insn, srcCRegField, 3))
	srcPredNegated := bitField(insn, 42, 1) != 0
	bop := BooleanOp(bitField(insn, 45, 2))
	combined := PredicateCombine(v.ir, cmpResult, v.ir.GetPred(srcPred, srcPredNegated), bop)
	v.ir.SetPred(ir.Pred(bitField(insn, 3, 3)), combined)
}

// SHLReg shifts left by a register amount.
func (v *TranslatorVisitor) SHLReg(insn uint64) {
	v.guardPred(insn)
	v.SetX(v.reg(insn, destRegField), v.ir.ShiftLeftLogical(v.GetReg8(insn), v.GetReg20(insn)))
}

// SHRReg shifts right, arithmetic when the signed bit is set.
func (v *TranslatorVisitor) SHRReg(insn uint64) {
	v.guardPred(insn)
	a := v.GetReg8(insn)
	shift := v.GetReg20(insn)
	var result ir.U32
	if bitField(insn, 48, 1) != 0 {
		result = v.ir.ShiftRightArithmetic(a, shift)
	} else {
		result = v.ir.ShiftRightLogical(a, shift)
	}
	v.SetX(v.reg(insn, destRegField), result)
}

// lopOperation is the 2-bit LOP selector.
type lopOperation uint8

const (
	lopAnd lopOperation = iota
	lopOr
	lopXor
	lopPassB
)

// LOPReg performs a bitwise operation with optional operand
// inversion.
func (v *TranslatorVisitor) LOPReg(insn uint64) {
	v.guardPred(insn)
	opA := v.GetReg8(insn)
	opB := v.GetReg20(insn)
	if bitField(insn, 39, 1) != 0 {
		opA = v.ir.BitwiseNot(opA)
	}
	if bitField(insn, 40, 1) != 0 {
		opB = v.ir.BitwiseNot(opB)
	}
	var result ir.U32
	switch lopOperation(bitField(insn, 41, 2)) {
	case lopAnd:
		result = v.ir.BitwiseAnd(opA, opB)
	case lopOr:
		result = v.ir.BitwiseOr(opA, opB)
	case lopXor:
		result = v.ir.BitwiseXor(opA, opB)
	case lopPassB:
		result = opB
	}
	v.SetX(v.reg(insn, destRegField), result)
}

// SELReg selects between two registers on a predicate.
func (v *TranslatorVisitor) SELReg(insn uint64) {
	v.guardPred(insn)
	pred := ir.Pred(bitField(insn, srcCRegField, 3))
	negated := bitField(insn, 42, 1) != 0
	cond := v.ir.GetPred(pred, negated)
	result := v.ir.Select(cond, v.GetReg8(insn).Value, v.GetReg20(insn).Value)
	v.SetX(v.reg(insn, destRegField), ir.U32{Value: result})
}
