package maxwell

import "github.com/gogpu/maxas/ir"

// LDC loads a word from a constant buffer. The offset can be extended
// by a register for indexed reads.
func (v *TranslatorVisitor) LDC(insn uint64) {
	v.guardPred(insn)
	dest := v.reg(insn, destRegField)
	indexReg := v.reg(insn, srcARegField)
	offset := uint32(bitField(insn, 20, 16))
	binding := uint32(bitField(insn, 36, 5))
	if binding >= MaxCbufBinding {
		panic(ir.DecodeErrorf("out of bounds constant buffer %d", binding))
	}
	byteOffset := v.ir.Imm32(offset)
	if indexReg != ir.RZ {
		byteOffset = v.ir.IAdd(v.X(indexReg), byteOffset)
	}
	v.SetX(dest, v.ir.GetCbuf(v.ir.Imm32(binding), byteOffset))
}
