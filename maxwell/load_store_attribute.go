package maxwell

import "github.com/gogpu/maxas/ir"

type interpolationMode uint8

const (
	interpPass interpolationMode = iota
	interpMultiply
	interpConstant
	interpSc
)

type sampleMode uint8

const (
	sampleDefault sampleMode = iota
	sampleCentroid
	sampleOffset
)

// IPA reads varyings in a fragment shader. gl_FragCoord is mapped to
// the position attribute. It yields unknown results when used outside
// of the fragment shader stage.
func (v *TranslatorVisitor) IPA(insn uint64) {
	v.guardPred(insn)
	destReg := v.reg(insn, destRegField)
	indexReg := v.reg(insn, srcARegField)
	multiplier := v.reg(insn, srcBRegField)
	attribute := ir.Attribute(bitField(insn, 30, 8))
	idx := bitField(insn, 38, 1)
	saturated := bitField(insn, 51, 1) != 0
	interpMode := interpolationMode(bitField(insn, 54, 2))

	// Indexed IPAs read attributes through a runtime index register.
	isIndexed := idx != 0 && indexReg != ir.RZ
	if isIndexed {
		panic(ir.NotImplementedf("IPA.IDX"))
	}

	value := v.ir.GetAttribute(attribute)
	if ir.IsGeneric(attribute) {
		isPerspective := false
		if isPerspective {
			rcpPositionW := v.ir.FPRecip(v.ir.GetAttribute(ir.AttributePositionW).Value)
			value = ir.F32{Value: v.ir.FPMul(value.Value, rcpPositionW, ir.FpControl{})}
		}
	}

	switch interpMode {
	case interpPass:
	case interpMultiply:
		value = ir.F32{Value: v.ir.FPMul(value.Value, v.F(multiplier).Value, ir.FpControl{})}
	case interpConstant:
		panic(ir.NotImplementedf("IPA.CONSTANT"))
	case interpSc:
		panic(ir.NotImplementedf("IPA.SC"))
	}

	// Saturated IPAs are generally generated out of clamped varyings.
	if saturated {
		if attribute == ir.AttributeFrontFace {
			panic(ir.NotImplementedf("IPA.SAT on FrontFace"))
		}
		value = ir.F32{Value: v.ir.FPSaturate(value.Value)}
	}

	v.SetF(destReg, value)
}
