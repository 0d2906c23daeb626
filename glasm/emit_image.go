// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glasm

import (
	"fmt"

	"github.com/gogpu/maxas/ir"
)

// texture resolves the descriptor index of a texture instruction into
// the textual binding reference.
func texture(ctx *EmitContext, info ir.TextureInstInfo, index ir.Value) string {
	// FIXME: indexed reads
	_ = index
	return fmt.Sprintf("texture[%d]", ctx.TextureBinding(info))
}

// textureTypeName selects the shape suffix, folding in the shadow
// variants for depth-compare instructions.
func textureTypeName(info ir.TextureInstInfo) string {
	if info.IsDepth {
		switch info.Type {
		case ir.TextureColor1D:
			return "SHADOW1D"
		case ir.TextureColorArray1D:
			return "SHADOWARRAY1D"
		case ir.TextureColor2D:
			return "SHADOW2D"
		case ir.TextureColorArray2D:
			return "SHADOWARRAY2D"
		case ir.TextureColor3D:
			return "SHADOW3D"
		case ir.TextureColorCube:
			return "SHADOWCUBE"
		case ir.TextureColorArrayCube:
			return "SHADOWARRAYCUBE"
		case ir.TextureBuffer:
			return "SHADOWBUFFER"
		}
	} else {
		switch info.Type {
		case ir.TextureColor1D:
			return "1D"
		case ir.TextureColorArray1D:
			return "ARRAY1D"
		case ir.TextureColor2D:
			return "2D"
		case ir.TextureColorArray2D:
			return "ARRAY2D"
		case ir.TextureColor3D:
			return "3D"
		case ir.TextureColorCube:
			return "CUBE"
		case ir.TextureColorArrayCube:
			return "ARRAYCUBE"
		case ir.TextureBuffer:
			return "BUFFER"
		}
	}
	panic(ir.InvalidArgumentf("invalid texture type %v", info.Type))
}

// offsetArg renders the trailing ,offset(reg) operand, consuming the
// offset vector.
func offsetArg(ctx *EmitContext, offset ir.Value) string {
	if offset.IsEmpty() {
		return ""
	}
	return fmt.Sprintf(",offset(%s)", ctx.regAlloc.ConsumeRegister(offset))
}

// allocOffsetsRegs acquires the two swizzle scratch registers for a
// four-offset gather. They are allocated before any operand is
// consumed so they never alias a just-freed register.
func allocOffsetsRegs(ctx *EmitContext, offset2 ir.Value) (offX, offY *ScopedRegister) {
	if offset2.IsEmpty() {
		return nil, nil
	}
	return AllocScopedRegister(&ctx.regAlloc), AllocScopedRegister(&ctx.regAlloc)
}

func releaseOffsetsRegs(offX, offY *ScopedRegister) {
	if offX != nil {
		offX.Release()
	}
	if offY != nil {
		offY.Release()
	}
}

// swizzleOffsets rearranges two packed offset pairs from
// [XYXY][XYXY] into [XXXX][YYYY] layout.
func swizzleOffsets(ctx *EmitContext, offX, offY Register, offset1, offset2 ir.Value) {
	offsetsA := ctx.regAlloc.ConsumeRegister(offset1)
	offsetsB := ctx.regAlloc.ConsumeRegister(offset2)
	ctx.Add("MOV %s.x,%s.x;"+
		"MOV %s.y,%s.z;"+
		"MOV %s.z,%s.x;"+
		"MOV %s.w,%s.z;"+
		"MOV %s.x,%s.y;"+
		"MOV %s.y,%s.w;"+
		"MOV %s.z,%s.y;"+
		"MOV %s.w,%s.w;",
		offX, offsetsA, offX, offsetsA, offX, offsetsB, offX, offsetsB,
		offY, offsetsA, offY, offsetsA, offY, offsetsB, offY, offsetsB)
}

// coordOperand resolves the coordinate vector. Immediate-assembled
// coordinates are copied into a scratch register; a coordinate whose
// instruction still has other uses is moved to RC so writing an extra
// lane cannot clobber a live value.
func coordOperand(ctx *EmitContext, coord ir.Value) (string, *ScopedRegister) {
	if coord.IsImmediate() {
		scoped := AllocScopedRegister(&ctx.regAlloc)
		ctx.Add("MOV.F %s.x,%s;", scoped.Reg, ctx.regAlloc.Consume(coord))
		return scoped.Reg.String(), scoped
	}
	coordVec := ctx.regAlloc.ConsumeRegister(coord).String()
	if coord.InstRecursive().HasUses() {
		// Move non-dead coords to a separate register, although this
		// should never happen because vectors are only assembled for
		// immediate texture instructions
		ctx.Add("MOV.F RC,%s;", coordVec)
		coordVec = "RC"
	}
	return coordVec, nil
}

func releaseCoord(scoped *ScopedRegister) {
	if scoped != nil {
		scoped.Release()
	}
}

// storeSparse initializes the sparse residency register of the
// associated pseudo-op and invalidates it so it is not emitted twice.
func storeSparse(ctx *EmitContext, sparseInst *ir.Inst) {
	if sparseInst == nil {
		return
	}
	sparseRet := ctx.regAlloc.Define(sparseInst)
	ctx.Add("MOV.S %s,-1;"+
		"MOV.S %s(NONRESIDENT),0;",
		sparseRet, sparseRet)
	sparseInst.Invalidate()
}

func sparseMod(sparseInst *ir.Inst) string {
	if sparseInst != nil {
		return ".SPARSE"
	}
	return ""
}

// emitImage dispatches the texture opcode families. Returns false when
// the opcode is not a texture one.
func emitImage(ctx *EmitContext, inst *ir.Inst) bool {
	switch inst.Op() {
	case ir.OpImageSampleImplicitLod:
		var biasLC Register
		if !inst.Arg(2).IsEmpty() {
			biasLC = ctx.regAlloc.ConsumeRegister(inst.Arg(2))
		}
		emitImageSampleImplicitLod(ctx, inst, inst.Arg(0), inst.Arg(1), biasLC, inst.Arg(3))
	case ir.OpImageSampleExplicitLod:
		lod := ctx.regAlloc.Consume(inst.Arg(2))
		emitImageSampleExplicitLod(ctx, inst, inst.Arg(0), inst.Arg(1), lod, inst.Arg(3))
	case ir.OpImageSampleDrefImplicitLod:
		dref := ctx.regAlloc.Consume(inst.Arg(2))
		var biasLC Register
		if !inst.Arg(3).IsEmpty() {
			biasLC = ctx.regAlloc.ConsumeRegister(inst.Arg(3))
		}
		emitImageSampleDrefImplicitLod(ctx, inst, inst.Arg(0), inst.Arg(1), dref, biasLC, inst.Arg(4))
	case ir.OpImageSampleDrefExplicitLod:
		dref := ctx.regAlloc.Consume(inst.Arg(2))
		lod := ctx.regAlloc.Consume(inst.Arg(3))
		emitImageSampleDrefExplicitLod(ctx, inst, inst.Arg(0), inst.Arg(1), dref, lod, inst.Arg(4))
	case ir.OpImageGather:
		emitImageGather(ctx, inst, inst.Arg(0), inst.Arg(1), inst.Arg(2), inst.Arg(3))
	case ir.OpImageGatherDref:
		emitImageGatherDref(ctx, inst, inst.Arg(0), inst.Arg(1), inst.Arg(2), inst.Arg(3), inst.Arg(4))
	case ir.OpImageFetch:
		var lod, multisample ScalarValue
		if !inst.Arg(3).IsEmpty() {
			lod = ctx.regAlloc.Consume(inst.Arg(3))
		}
		hasMS := !inst.Arg(4).IsEmpty()
		if hasMS {
			multisample = ctx.regAlloc.Consume(inst.Arg(4))
		}
		emitImageFetch(ctx, inst, inst.Arg(0), inst.Arg(1), inst.Arg(2), lod, multisample, hasMS)
	case ir.OpImageQueryDimensions:
		lod := ctx.regAlloc.Consume(inst.Arg(1))
		info := inst.TextureInfo()
		ctx.Add("TXQ %s,%s,%s,%s;", ctx.regAlloc.Define(inst), lod,
			texture(ctx, info, inst.Arg(0)), textureTypeName(info))
	case ir.OpImageQueryLod, ir.OpImageGradient, ir.OpImageRead, ir.OpImageWrite:
		panic(ir.NotImplementedf("assembly instruction %v", inst.Op()))
	case ir.OpBindlessImageSampleImplicitLod, ir.OpBindlessImageSampleExplicitLod,
		ir.OpBindlessImageSampleDrefImplicitLod, ir.OpBindlessImageSampleDrefExplicitLod,
		ir.OpBindlessImageGather, ir.OpBindlessImageGatherDref,
		ir.OpBindlessImageFetch, ir.OpBindlessImageQueryDimensions,
		ir.OpBoundImageSampleImplicitLod, ir.OpBoundImageSampleExplicitLod,
		ir.OpBoundImageSampleDrefImplicitLod, ir.OpBoundImageSampleDrefExplicitLod,
		ir.OpBoundImageGather, ir.OpBoundImageGatherDref,
		ir.OpBoundImageFetch, ir.OpBoundImageQueryDimensions:
		panic(ir.LogicErrorf("unreachable instruction %v", inst.Op()))
	default:
		return false
	}
	return true
}

func emitImageSampleImplicitLod(ctx *EmitContext, inst *ir.Inst, index, coord ir.Value, biasLC Register, offset ir.Value) {
	info := inst.TextureInfo()
	sparseInst := inst.GetAssociatedPseudoOperation(ir.OpGetSparseFromOp)
	sparse := sparseMod(sparseInst)
	lodClampMod := ""
	if info.HasLodClamp {
		lodClampMod = ".LODCLAMP"
	}
	typeName := textureTypeName(info)
	tex := texture(ctx, info, index)
	offsetVec := offsetArg(ctx, offset)
	coordVec, coordAlloc := coordOperand(ctx, coord)
	defer releaseCoord(coordAlloc)
	ret := ctx.regAlloc.Define(inst)
	if info.HasBias {
		if info.Type == ir.TextureColorArrayCube {
			ctx.Add("TXB.F%s%s %s,%s,%s,%s,ARRAYCUBE%s;", lodClampMod, sparse, ret, coordVec,
				biasLC, tex, offsetVec)
		} else {
			if info.HasLodClamp {
				ctx.Add("MOV.F %s.w,%s.x;"+
					"TXB.F.LODCLAMP%s %s,%s,%s.y,%s,%s%s;",
					coordVec, biasLC, sparse, ret, coordVec, biasLC, tex, typeName, offsetVec)
			} else {
				ctx.Add("MOV.F %s.w,%s.x;"+
					"TXB.F%s %s,%s,%s,%s%s;",
					coordVec, biasLC, sparse, ret, coordVec, tex, typeName, offsetVec)
			}
		}
	} else {
		if info.HasLodClamp && info.Type == ir.TextureColorArrayCube {
			ctx.Add("TEX.F.LODCLAMP%s %s,%s,%s,%s,ARRAYCUBE%s;", sparse, ret, coordVec,
				biasLC, tex, offsetVec)
		} else {
			ctx.Add("TEX.F%s%s %s,%s,%s,%s%s;", lodClampMod, sparse, ret, coordVec, tex,
				typeName, offsetVec)
		}
	}
	storeSparse(ctx, sparseInst)
}

func emitImageSampleExplicitLod(ctx *EmitContext, inst *ir.Inst, index, coord ir.Value, lod ScalarValue, offset ir.Value) {
	info := inst.TextureInfo()
	sparseInst := inst.GetAssociatedPseudoOperation(ir.OpGetSparseFromOp)
	sparse := sparseMod(sparseInst)
	typeName := textureTypeName(info)
	tex := texture(ctx, info, index)
	offsetVec := offsetArg(ctx, offset)
	coordVec, coordAlloc := coordOperand(ctx, coord)
	defer releaseCoord(coordAlloc)
	ret := ctx.regAlloc.Define(inst)
	if info.Type == ir.TextureColorArrayCube {
		ctx.Add("TXL.F%s %s,%s,%s,%s%s;", sparse, ret, coordVec, lod, tex, offsetVec)
	} else {
		ctx.Add("MOV.F %s.w,%s;"+
			"TXL.F%s %s,%s,%s,%s%s;",
			coordVec, lod, sparse, ret, coordVec, tex, typeName, offsetVec)
	}
	storeSparse(ctx, sparseInst)
}

func emitImageSampleDrefImplicitLod(ctx *EmitContext, inst *ir.Inst, index, coord ir.Value, dref ScalarValue, biasLC Register, offset ir.Value) {
	info := inst.TextureInfo()
	sparseInst := inst.GetAssociatedPseudoOperation(ir.OpGetSparseFromOp)
	sparse := sparseMod(sparseInst)
	typeName := textureTypeName(info)
	tex := texture(ctx, info, index)
	offsetVec := offsetArg(ctx, offset)
	coordVec, coordAlloc := coordOperand(ctx, coord)
	defer releaseCoord(coordAlloc)
	ret := ctx.regAlloc.Define(inst)
	switch {
	case info.HasBias && info.HasLodClamp:
		switch info.Type {
		case ir.TextureColor1D, ir.TextureColorArray1D, ir.TextureColor2D:
			ctx.Add("MOV.F %s.z,%s;"+
				"MOV.F %s.w,%s.x;"+
				"TXB.F.LODCLAMP%s %s,%s,%s.y,%s,%s%s;",
				coordVec, dref, coordVec, biasLC, sparse, ret, coordVec, biasLC,
				tex, typeName, offsetVec)
		case ir.TextureColorArray2D, ir.TextureColorCube:
			ctx.Add("MOV.F %s.w,%s;"+
				"TXB.F.LODCLAMP%s %s,%s,%s,%s,%s%s;",
				coordVec, dref, sparse, ret, coordVec, biasLC, tex, typeName, offsetVec)
		default:
			panic(ir.NotImplementedf("invalid type %v with bias and lod clamp", info.Type))
		}
	case info.HasBias:
		switch info.Type {
		case ir.TextureColor1D, ir.TextureColorArray1D, ir.TextureColor2D:
			ctx.Add("MOV.F %s.z,%s;"+
				"MOV.F %s.w,%s.x;"+
				"TXB.F%s %s,%s,%s,%s%s;",
				coordVec, dref, coordVec, biasLC, sparse, ret, coordVec, tex,
				typeName, offsetVec)
		case ir.TextureColorArray2D, ir.TextureColorCube:
			ctx.Add("MOV.F %s.w,%s;"+
				"TXB.F%s %s,%s,%s,%s,%s%s;",
				coordVec, dref, sparse, ret, coordVec, biasLC, tex, typeName, offsetVec)
		case ir.TextureColorArrayCube:
			pair := AllocScopedRegister(&ctx.regAlloc)
			defer pair.Release()
			ctx.Add("MOV.F %s.x,%s;"+
				"MOV.F %s.y,%s.x;"+
				"TXB.F%s %s,%s,%s,%s,%s%s;",
				pair.Reg, dref, pair.Reg, biasLC, sparse, ret, coordVec, pair.Reg,
				tex, typeName, offsetVec)
		default:
			panic(ir.NotImplementedf("invalid type %v", info.Type))
		}
	case info.HasLodClamp:
		if info.Type != ir.TextureColorArrayCube {
			drefSwizzle := byte('z')
			if info.Type == ir.TextureColorArray2D || info.Type == ir.TextureColorCube {
				drefSwizzle = 'w'
			}
			ctx.Add("MOV.F %s.%c,%s;"+
				"TEX.F.LODCLAMP%s %s,%s,%s,%s,%s%s;",
				coordVec, drefSwizzle, dref, sparse, ret, coordVec, biasLC, tex,
				typeName, offsetVec)
		} else {
			pair := AllocScopedRegister(&ctx.regAlloc)
			defer pair.Release()
			ctx.Add("MOV.F %s.x,%s;"+
				"MOV.F %s.y,%s;"+
				"TEX.F.LODCLAMP%s %s,%s,%s,%s,%s%s;",
				pair.Reg, dref, pair.Reg, biasLC, sparse, ret, coordVec, pair.Reg,
				tex, typeName, offsetVec)
		}
	default:
		if info.Type != ir.TextureColorArrayCube {
			drefSwizzle := byte('z')
			if info.Type == ir.TextureColorArray2D || info.Type == ir.TextureColorCube {
				drefSwizzle = 'w'
			}
			ctx.Add("MOV.F %s.%c,%s;"+
				"TEX.F%s %s,%s,%s,%s%s;",
				coordVec, drefSwizzle, dref, sparse, ret, coordVec, tex, typeName, offsetVec)
		} else {
			ctx.Add("TEX.F%s %s,%s,%s,%s,%s%s;", sparse, ret, coordVec, dref, tex,
				typeName, offsetVec)
		}
	}
	storeSparse(ctx, sparseInst)
}

func emitImageSampleDrefExplicitLod(ctx *EmitContext, inst *ir.Inst, index, coord ir.Value, dref, lod ScalarValue, offset ir.Value) {
	info := inst.TextureInfo()
	sparseInst := inst.GetAssociatedPseudoOperation(ir.OpGetSparseFromOp)
	sparse := sparseMod(sparseInst)
	typeName := textureTypeName(info)
	tex := texture(ctx, info, index)
	offsetVec := offsetArg(ctx, offset)
	coordVec, coordAlloc := coordOperand(ctx, coord)
	defer releaseCoord(coordAlloc)
	ret := ctx.regAlloc.Define(inst)
	switch info.Type {
	case ir.TextureColor1D, ir.TextureColorArray1D, ir.TextureColor2D:
		ctx.Add("MOV.F %s.z,%s;"+
			"MOV.F %s.w,%s;"+
			"TXL.F%s %s,%s,%s,%s%s;",
			coordVec, dref, coordVec, lod, sparse, ret, coordVec, tex, typeName, offsetVec)
	case ir.TextureColorArray2D, ir.TextureColorCube:
		ctx.Add("MOV.F %s.w,%s;"+
			"TXL.F%s %s,%s,%s,%s,%s%s;",
			coordVec, dref, sparse, ret, coordVec, lod, tex, typeName, offsetVec)
	case ir.TextureColorArrayCube:
		pair := AllocScopedRegister(&ctx.regAlloc)
		defer pair.Release()
		ctx.Add("MOV.F %s.x,%s;"+
			"MOV.F %s.y,%s;"+
			"TXL.F%s %s,%s,%s,%s,%s%s;",
			pair.Reg, dref, pair.Reg, lod, sparse, ret, coordVec, pair.Reg, tex,
			typeName, offsetVec)
	default:
		panic(ir.NotImplementedf("invalid type %v", info.Type))
	}
	storeSparse(ctx, sparseInst)
}

func emitImageGather(ctx *EmitContext, inst *ir.Inst, index, coord, offset, offset2 ir.Value) {
	// Allocate offsets early so they don't overwrite any consumed register
	offX, offY := allocOffsetsRegs(ctx, offset2)
	defer releaseOffsetsRegs(offX, offY)
	info := inst.TextureInfo()
	comp := "xyzw"[info.GatherComponent]
	sparseInst := inst.GetAssociatedPseudoOperation(ir.OpGetSparseFromOp)
	sparse := sparseMod(sparseInst)
	typeName := textureTypeName(info)
	tex := texture(ctx, info, index)
	coordVec := ctx.regAlloc.ConsumeRegister(coord)
	ret := ctx.regAlloc.Define(inst)
	if offset2.IsEmpty() {
		offsetVec := offsetArg(ctx, offset)
		ctx.Add("TXG.F%s %s,%s,%s.%c,%s%s;", sparse, ret, coordVec, tex, comp, typeName, offsetVec)
	} else {
		swizzleOffsets(ctx, offX.Reg, offY.Reg, offset, offset2)
		ctx.Add("TXGO.F%s %s,%s,%s,%s,%s.%c,%s;", sparse, ret, coordVec, offX.Reg, offY.Reg,
			tex, comp, typeName)
	}
	storeSparse(ctx, sparseInst)
}

func emitImageGatherDref(ctx *EmitContext, inst *ir.Inst, index, coord, offset, offset2, dref ir.Value) {
	// FIXME: This instruction is not working as expected

	// Allocate offsets early so they don't overwrite any consumed register
	offX, offY := allocOffsetsRegs(ctx, offset2)
	defer releaseOffsetsRegs(offX, offY)
	info := inst.TextureInfo()
	sparseInst := inst.GetAssociatedPseudoOperation(ir.OpGetSparseFromOp)
	sparse := sparseMod(sparseInst)
	typeName := textureTypeName(info)
	tex := texture(ctx, info, index)
	coordVec := ctx.regAlloc.ConsumeRegister(coord)
	drefValue := ctx.regAlloc.Consume(dref)
	ret := ctx.regAlloc.Define(inst)
	var args string
	switch info.Type {
	case ir.TextureColor2D:
		ctx.Add("MOV.F %s.z,%s;", coordVec, drefValue)
		args = coordVec.String()
	case ir.TextureColorArray2D, ir.TextureColorCube:
		ctx.Add("MOV.F %s.w,%s;", coordVec, drefValue)
		args = coordVec.String()
	case ir.TextureColorArrayCube:
		args = fmt.Sprintf("%s,%s", coordVec, drefValue)
	default:
		panic(ir.NotImplementedf("invalid type %v", info.Type))
	}
	if offset2.IsEmpty() {
		offsetVec := offsetArg(ctx, offset)
		ctx.Add("TXG.F%s %s,%s,%s,%s%s;", sparse, ret, args, tex, typeName, offsetVec)
	} else {
		swizzleOffsets(ctx, offX.Reg, offY.Reg, offset, offset2)
		ctx.Add("TXGO.F%s %s,%s,%s,%s,%s,%s;", sparse, ret, args, offX.Reg, offY.Reg, tex, typeName)
	}
	storeSparse(ctx, sparseInst)
}

func emitImageFetch(ctx *EmitContext, inst *ir.Inst, index, coord, offset ir.Value, lod, multisample ScalarValue, hasMS bool) {
	info := inst.TextureInfo()
	sparseInst := inst.GetAssociatedPseudoOperation(ir.OpGetSparseFromOp)
	sparse := sparseMod(sparseInst)
	typeName := textureTypeName(info)
	tex := texture(ctx, info, index)
	offsetVec := offsetArg(ctx, offset)
	coordVec, coordAlloc := coordOperand(ctx, coord)
	defer releaseCoord(coordAlloc)
	ret := ctx.regAlloc.Define(inst)
	switch {
	case info.Type == ir.TextureBuffer:
		ctx.Add("TXF.F%s %s,%s,%s,%s%s;", sparse, ret, coordVec, tex, typeName, offsetVec)
	case hasMS:
		ctx.Add("MOV.S %s.w,%s;"+
			"TXFMS.F%s %s,%s,%s,%s%s;",
			coordVec, multisample, sparse, ret, coordVec, tex, typeName, offsetVec)
	default:
		ctx.Add("MOV.S %s.w,%s;"+
			"TXF.F%s %s,%s,%s,%s%s;",
			coordVec, lod, sparse, ret, coordVec, tex, typeName, offsetVec)
	}
	storeSparse(ctx, sparseInst)
}
