package maxwell

import "github.com/gogpu/maxas/ir"

// TranslatorVisitor holds the per-block translation state: the
// environment and the emitter appending into the block being filled.
type TranslatorVisitor struct {
	env Environment
	ir  *ir.Emitter
}

func newVisitor(env Environment, block *ir.Block) *TranslatorVisitor {
	return &TranslatorVisitor{env: env, ir: ir.NewEmitter(block)}
}

// Common operand field positions shared by the three-address forms.
const (
	destRegField = 0
	srcARegField = 8
	predField    = 16
	srcBRegField = 20
	srcCRegField = 39
)

func (v *TranslatorVisitor) reg(insn uint64, pos uint) ir.Reg {
	return ir.Reg(bitField(insn, pos, 8))
}

// guardPred decodes the @Pn guard of an instruction. Only
// unconditional execution is supported; predicated instructions are
// handled by the flow recovery layer splitting them into branches.
func (v *TranslatorVisitor) guardPred(insn uint64) {
	pred := ir.Pred(bitField(insn, predField, 3))
	negated := bitField(insn, predField+3, 1) != 0
	if pred != ir.PT || negated {
		panic(ir.NotImplementedf("predicated execution @%s", pred))
	}
}

// X reads a register as an integer.
func (v *TranslatorVisitor) X(reg ir.Reg) ir.U32 {
	return v.ir.GetReg(reg)
}

// F reads a register as a float.
func (v *TranslatorVisitor) F(reg ir.Reg) ir.F32 {
	return v.ir.BitCastF32(v.X(reg))
}

// SetX writes an integer register.
func (v *TranslatorVisitor) SetX(reg ir.Reg, value ir.U32) {
	v.ir.SetReg(reg, value)
}

// SetF writes a float register.
func (v *TranslatorVisitor) SetF(reg ir.Reg, value ir.F32) {
	v.ir.SetReg(reg, v.ir.BitCastU32(value))
}

// GetReg8 reads the source A register operand.
func (v *TranslatorVisitor) GetReg8(insn uint64) ir.U32 {
	return v.X(v.reg(insn, srcARegField))
}

// GetReg20 reads the source B register operand.
func (v *TranslatorVisitor) GetReg20(insn uint64) ir.U32 {
	return v.X(v.reg(insn, srcBRegField))
}

// GetReg39 reads the source C register operand.
func (v *TranslatorVisitor) GetReg39(insn uint64) ir.U32 {
	return v.X(v.reg(insn, srcCRegField))
}

// GetFloatReg8 reads the source A register operand as a float.
func (v *TranslatorVisitor) GetFloatReg8(insn uint64) ir.F32 {
	return v.F(v.reg(insn, srcARegField))
}

// GetFloatReg20 reads the source B register operand as a float.
func (v *TranslatorVisitor) GetFloatReg20(insn uint64) ir.F32 {
	return v.F(v.reg(insn, srcBRegField))
}

// GetFloatReg39 reads the source C register operand as a float.
func (v *TranslatorVisitor) GetFloatReg39(insn uint64) ir.F32 {
	return v.F(v.reg(insn, srcCRegField))
}

// MaxCbufBinding is the number of addressable constant buffer slots;
// binding indices at or above it are rejected.
const MaxCbufBinding = 18

// cbufOperand decodes the constant buffer operand: a 5-bit binding
// index and a 14-bit word-aligned offset.
func (v *TranslatorVisitor) cbufOperand(insn uint64) (binding, byteOffset uint32) {
	offset := uint32(bitField(insn, 20, 14))
	index := uint32(bitField(insn, 34, 5))
	if index >= MaxCbufBinding {
		panic(ir.DecodeErrorf("out of bounds constant buffer %d", index))
	}
	return index, offset * 4
}

// GetCbuf reads the constant buffer operand as an integer.
func (v *TranslatorVisitor) GetCbuf(insn uint64) ir.U32 {
	binding, offset := v.cbufOperand(insn)
	return v.ir.GetCbuf(v.ir.Imm32(binding), v.ir.Imm32(offset))
}

// GetFloatCbuf reads the constant buffer operand as a float.
func (v *TranslatorVisitor) GetFloatCbuf(insn uint64) ir.F32 {
	return v.ir.BitCastF32(v.GetCbuf(insn))
}

// GetImm20 decodes the 19-bit sign-extended integer immediate.
func (v *TranslatorVisitor) GetImm20(insn uint64) ir.U32 {
	return v.ir.Imm32S(int32(signedBitField(insn, 20, 19)))
}

// GetFloatImm20 decodes the 19-bit float immediate: the top bits of an
// f32 with the sign at bit 56.
func (v *TranslatorVisitor) GetFloatImm20(insn uint64) ir.F32 {
	raw := uint32(bitField(insn, 20, 19)) << 12
	if bitField(insn, 56, 1) != 0 {
		raw |= 0x8000_0000
	}
	return v.ir.BitCastF32(v.ir.Imm32(raw))
}

// GetImm32 decodes the full 32-bit immediate of the 32I forms.
func (v *TranslatorVisitor) GetImm32(insn uint64) ir.U32 {
	return v.ir.Imm32(uint32(bitField(insn, 20, 32)))
}
