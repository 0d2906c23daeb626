package maxwell

import "github.com/gogpu/maxas/ir"

// texShape is the 3-bit shape selector of the texture instructions.
type texShape uint8

const (
	shape1D texShape = iota
	shapeArray1D
	shape2D
	shapeArray2D
	shape3D
	shapeCube
	shapeArrayCube
)

func textureType(shape texShape) ir.TextureType {
	switch shape {
	case shape1D:
		return ir.TextureColor1D
	case shapeArray1D:
		return ir.TextureColorArray1D
	case shape2D:
		return ir.TextureColor2D
	case shapeArray2D:
		return ir.TextureColorArray2D
	case shape3D:
		return ir.TextureColor3D
	case shapeCube:
		return ir.TextureColorCube
	case shapeArrayCube:
		return ir.TextureColorArrayCube
	default:
		panic(ir.DecodeErrorf("invalid texture shape %d", shape))
	}
}

func coordCount(typ ir.TextureType) int {
	switch typ {
	case ir.TextureColor1D:
		return 1
	case ir.TextureColorArray1D, ir.TextureColor2D:
		return 2
	case ir.TextureColorArray2D, ir.TextureColor3D, ir.TextureColorCube:
		return 3
	case ir.TextureColorArrayCube:
		return 4
	default:
		panic(ir.DecodeErrorf("invalid texture type %v", typ))
	}
}

// coords assembles the coordinate vector from consecutive registers
// starting at base.
func (v *TranslatorVisitor) coords(base ir.Reg, typ ir.TextureType) (ir.Value, ir.Reg) {
	count := coordCount(typ)
	if count == 1 {
		return v.F(base).Value, base + 1
	}
	elements := make([]ir.Value, count)
	for i := range elements {
		elements[i] = v.F(base + ir.Reg(i)).Value
	}
	return v.ir.CompositeConstruct(elements...), base + ir.Reg(count)
}

// TEX samples a texture. Bias, LOD clamp, depth compare, offset, and
// sparse residency variants select the operand layout.
func (v *TranslatorVisitor) TEX(insn uint64) {
	v.guardPred(insn)
	destReg := v.reg(insn, destRegField)
	coordReg := v.reg(insn, srcARegField)
	metaReg := v.reg(insn, srcCRegField)
	info := ir.TextureInstInfo{
		Type:            textureType(texShape(bitField(insn, 28, 3))),
		IsDepth:         bitField(insn, 50, 1) != 0,
		HasBias:         bitField(insn, 49, 1) != 0,
		HasLodClamp:     bitField(insn, 55, 1) != 0,
		DescriptorIndex: uint32(bitField(insn, 36, 13)),
	}
	hasOffset := bitField(insn, 54, 1) != 0
	isSparse := bitField(insn, 57, 1) != 0

	coord, nextReg := v.coords(coordReg, info.Type)

	var dref ir.F32
	if info.IsDepth {
		// The depth reference rides after the coordinates.
		dref = v.F(nextReg)
	}

	var biasLC ir.Value
	if info.HasBias || info.HasLodClamp {
		bias := v.ir.Imm32F(0.0)
		clamp := v.ir.Imm32F(0.0)
		if info.HasBias {
			bias = v.F(metaReg)
			metaReg++
		}
		if info.HasLodClamp {
			clamp = v.F(metaReg)
			metaReg++
		}
		if info.HasBias {
			biasLC = v.ir.CompositeConstruct(bias.Value, clamp.Value)
		} else {
			biasLC = v.ir.CompositeConstruct(clamp.Value, bias.Value)
		}
	}

	var offset ir.Value
	if hasOffset {
		packed := v.X(metaReg)
		metaReg++
		offset = v.unpackOffsets(packed)
	}

	handle := v.ir.Imm32(0)
	var sample ir.Value
	if info.IsDepth {
		sample = v.ir.ImageSampleDrefImplicitLod(handle, coord, dref, biasLC, offset, info)
	} else {
		sample = v.ir.ImageSampleImplicitLod(handle, coord, biasLC, offset, info)
	}

	if isSparse {
		residencyPred := ir.Pred(bitField(insn, 51, 3))
		v.ir.SetPred(residencyPred, v.ir.GetSparseFromOp(sample))
	}

	if info.IsDepth {
		v.SetF(destReg, ir.F32{Value: sample})
	} else {
		for i := 0; i < 4; i++ {
			element := v.ir.CompositeExtract(sample, uint32(i))
			v.SetF(destReg+ir.Reg(i), ir.F32{Value: element})
		}
	}
}

// TLD4 gathers one component from four texels, with up to two packed
// offset words.
func (v *TranslatorVisitor) TLD4(insn uint64) {
	v.guardPred(insn)
	destReg := v.reg(insn, destRegField)
	coordReg := v.reg(insn, srcARegField)
	offsetReg := v.reg(insn, srcCRegField)
	info := ir.TextureInstInfo{
		Type:            textureType(texShape(bitField(insn, 28, 3))),
		IsDepth:         bitField(insn, 50, 1) != 0,
		GatherComponent: uint8(bitField(insn, 52, 2)),
		DescriptorIndex: uint32(bitField(insn, 36, 13)),
	}
	offsetMode := bitField(insn, 54, 2)
	isSparse := bitField(insn, 57, 1) != 0

	coord, nextReg := v.coords(coordReg, info.Type)

	var offset, offset2 ir.Value
	switch offsetMode {
	case 0:
	case 1:
		offset = v.unpackOffsets(v.X(offsetReg))
	case 2:
		offset = v.unpackOffsets(v.X(offsetReg))
		offset2 = v.unpackOffsets(v.X(offsetReg + 1))
	default:
		panic(ir.DecodeErrorf("invalid TLD4 offset mode %d", offsetMode))
	}

	handle := v.ir.Imm32(0)
	var gather ir.Value
	if info.IsDepth {
		dref := v.F(nextReg)
		gather = v.ir.ImageGatherDref(handle, coord, offset, offset2, dref, info)
	} else {
		gather = v.ir.ImageGather(handle, coord, offset, offset2, info)
	}

	if isSparse {
		residencyPred := ir.Pred(bitField(insn, 51, 3))
		v.ir.SetPred(residencyPred, v.ir.GetSparseFromOp(gather))
	}

	for i := 0; i < 4; i++ {
		element := v.ir.CompositeExtract(gather, uint32(i))
		v.SetF(destReg+ir.Reg(i), ir.F32{Value: element})
	}
}

// unpackOffsets splits four packed signed 8-bit offsets into a vector,
// [XYXY] layout.
func (v *TranslatorVisitor) unpackOffsets(packed ir.U32) ir.Value {
	elements := make([]ir.Value, 4)
	for i := range elements {
		elements[i] = v.ir.BitFieldExtract(packed, v.ir.Imm32(uint32(i*8)), v.ir.Imm32(8), true).Value
	}
	return v.ir.CompositeConstruct(elements...)
}
