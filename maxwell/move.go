package maxwell

import "github.com/gogpu/maxas/ir"

// MOVReg copies a register.
func (v *TranslatorVisitor) MOVReg(insn uint64) {
	v.guardPred(insn)
	v.SetX(v.reg(insn, destRegField), v.GetReg20(insn))
}

// MOV32I materializes a 32-bit immediate.
func (v *TranslatorVisitor) MOV32I(insn uint64) {
	v.guardPred(insn)
	v.SetX(v.reg(insn, destRegField), v.GetImm32(insn))
}

// System register indices read by S2R.
const (
	sysRegTIDX   = 33
	sysRegTIDY   = 34
	sysRegTIDZ   = 35
	sysRegCTAIDX = 37
	sysRegCTAIDY = 38
	sysRegCTAIDZ = 39
)

// S2R reads a system register.
func (v *TranslatorVisitor) S2R(insn uint64) {
	v.guardPred(insn)
	dest := v.reg(insn, destRegField)
	sysReg := bitField(insn, srcBRegField, 8)
	switch sysReg {
	case sysRegTIDX, sysRegTIDY, sysRegTIDZ:
		v.SetX(dest, v.ir.LocalInvocationIDComponent(uint32(sysReg-sysRegTIDX)))
	case sysRegCTAIDX, sysRegCTAIDY, sysRegCTAIDZ:
		v.SetX(dest, v.ir.WorkgroupIDComponent(uint32(sysReg-sysRegCTAIDX)))
	default:
		panic(ir.NotImplementedf("S2R %d", sysReg))
	}
}
