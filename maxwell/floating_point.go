package maxwell

import "github.com/gogpu/maxas/ir"

func fmzMode(insn uint64, ftzBit uint) ir.FmzMode {
	if bitField(insn, ftzBit, 1) != 0 {
		return ir.FmzFTZ
	}
	return ir.FmzNone
}

// FADDReg adds two float registers with the abs/neg/sat operand
// modifiers.
func (v *TranslatorVisitor) FADDReg(insn uint64) {
	v.guardPred(insn)
	a := v.GetFloatReg8(insn)
	b := v.GetFloatReg20(insn)
	opA := ir.Value(a.Value)
	if bitField(insn, 46, 1) != 0 {
		opA = v.ir.FPAbs(opA)
	}
	if bitField(insn, 48, 1) != 0 {
		opA = v.ir.FPNeg(opA)
	}
	opB := ir.Value(b.Value)
	if bitField(insn, 49, 1) != 0 {
		opB = v.ir.FPAbs(opB)
	}
	if bitField(insn, 45, 1) != 0 {
		opB = v.ir.FPNeg(opB)
	}
	control := ir.FpControl{FmzMode: fmzMode(insn, 44)}
	result := v.ir.FPAdd(opA, opB, control)
	if bitField(insn, 50, 1) != 0 {
		result = v.ir.FPSaturate(result)
	}
	v.SetF(v.reg(insn, destRegField), ir.F32{Value: result})
}

// FMULReg multiplies two float registers.
func (v *TranslatorVisitor) FMULReg(insn uint64) {
	v.guardPred(insn)
	a := v.GetFloatReg8(insn)
	b := v.GetFloatReg20(insn)
	control := ir.FpControl{FmzMode: fmzMode(insn, 44)}
	result := v.ir.FPMul(a.Value, b.Value, control)
	if bitField(insn, 50, 1) != 0 {
		result = v.ir.FPSaturate(result)
	}
	v.SetF(v.reg(insn, destRegField), ir.F32{Value: result})
}

// FFMAReg fuses a multiply and an add.
func (v *TranslatorVisitor) FFMAReg(insn uint64) {
	v.guardPred(insn)
	a := v.GetFloatReg8(insn)
	b := v.GetFloatReg20(insn)
	c := v.GetFloatReg39(insn)
	control := ir.FpControl{FmzMode: fmzMode(insn, 44)}
	result := v.ir.FPFma(a.Value, b.Value, c.Value, control)
	v.SetF(v.reg(insn, destRegField), ir.F32{Value: result})
}

// fcmp selects between the source C register and srcA based on a
// comparison of operand against zero.
func (v *TranslatorVisitor) fcmp(insn uint64, srcA ir.U32, operand ir.F32) {
	compareOp := FPCompareOp(bitField(insn, 48, 4))
	zero := v.ir.Imm32F(0.0)
	cmpResult := FloatingPointCompare(v.ir, operand, zero, compareOp)
	srcReg := v.GetReg39(insn)
	result := v.ir.Select(cmpResult, srcReg.Value, srcA.Value)
	v.SetX(v.reg(insn, destRegField), ir.U32{Value: result})
}

// FCMPReg is the register-operand form.
func (v *TranslatorVisitor) FCMPReg(insn uint64) {
	v.guardPred(insn)
	v.fcmp(insn, v.GetReg8(insn), v.GetFloatReg20(insn))
}

// FCMPImm is the immediate-operand form.
func (v *TranslatorVisitor) FCMPImm(insn uint64) {
	v.guardPred(insn)
	v.fcmp(insn, v.GetReg8(insn), v.GetFloatImm20(insn))
}

// FSETPReg sets a predicate from a float comparison combined with a
// source predicate.
func (v *TranslatorVisitor) FSETPReg(insn uint64) {
	v.guardPred(insn)
	a := v.GetFloatReg8(insn)
	b := v.GetFloatReg20(insn)
	compareOp := FPCompareOp(bitField(insn, 48, 4))
	cmpResult := FloatingPointCompare(v.ir, a, b, compareOp)
	srcPred := ir.Pred(bitField(insn, srcCRegField, 3))
	srcPredNegated := bitField(insn, 42, 1) != 0
	bop := BooleanOp(bitField(insn, 45, 2))
	combined := PredicateCombine(v.ir, cmpResult, v.ir.GetPred(srcPred, srcPredNegated), bop)
	v.ir.SetPred(ir.Pred(bitField(insn, 3, 3)), combined)
}
