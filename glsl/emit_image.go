// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/maxas/ir"
)

// textureName resolves a descriptor index into the declared sampler
// variable.
func textureName(ctx *EmitContext, info ir.TextureInstInfo) string {
	// The binding table validates the index; the variable is named by
	// the descriptor index itself.
	_ = ctx.TextureBinding(info)
	if info.Type == ir.TextureBuffer {
		return fmt.Sprintf("texbuf%d", info.DescriptorIndex)
	}
	return fmt.Sprintf("tex%d", info.DescriptorIndex)
}

// emitImage dispatches the texture opcode families. Returns false when
// the opcode is not a texture one.
func emitImage(ctx *EmitContext, inst *ir.Inst) bool {
	switch inst.Op() {
	case ir.OpImageSampleImplicitLod:
		emitImageSampleImplicitLod(ctx, inst)
	case ir.OpImageSampleExplicitLod:
		emitImageSampleExplicitLod(ctx, inst)
	case ir.OpImageSampleDrefImplicitLod:
		emitImageSampleDrefImplicitLod(ctx, inst)
	case ir.OpImageGather:
		emitImageGather(ctx, inst)
	case ir.OpImageFetch:
		emitImageFetch(ctx, inst)
	case ir.OpImageQueryDimensions:
		info := inst.TextureInfo()
		lod := ctx.regAlloc.Consume(inst.Arg(1))
		ctx.AddAssign(inst, "uvec4(textureSize(%s, int(%s)), 0, 0)", textureName(ctx, info), lod)
	case ir.OpImageSampleDrefExplicitLod, ir.OpImageGatherDref, ir.OpImageQueryLod,
		ir.OpImageGradient, ir.OpImageRead, ir.OpImageWrite:
		panic(ir.NotImplementedf("GLSL instruction %v", inst.Op()))
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

func checkSparse(inst *ir.Inst) {
	if inst.GetAssociatedPseudoOperation(ir.OpGetSparseFromOp) != nil {
		panic(ir.NotImplementedf("sparse residency in the GLSL backend"))
	}
}

func emitImageSampleImplicitLod(ctx *EmitContext, inst *ir.Inst) {
	checkSparse(inst)
	info := inst.TextureInfo()
	tex := textureName(ctx, info)
	coord := ctx.regAlloc.Consume(inst.Arg(1))
	if !inst.Arg(3).IsEmpty() {
		panic(ir.NotImplementedf("GLSL sample offsets"))
	}
	if info.HasBias {
		biasLC := ctx.regAlloc.Consume(inst.Arg(2))
		ctx.AddAssign(inst, "texture(%s, %s, %s.x)", tex, coord, biasLC)
	} else {
		if !inst.Arg(2).IsEmpty() {
			ctx.regAlloc.Consume(inst.Arg(2))
		}
		ctx.AddAssign(inst, "texture(%s, %s)", tex, coord)
	}
}

func emitImageSampleExplicitLod(ctx *EmitContext, inst *ir.Inst) {
	checkSparse(inst)
	info := inst.TextureInfo()
	tex := textureName(ctx, info)
	coord := ctx.regAlloc.Consume(inst.Arg(1))
	lod := ctx.regAlloc.Consume(inst.Arg(2))
	if !inst.Arg(3).IsEmpty() {
		panic(ir.NotImplementedf("GLSL sample offsets"))
	}
	ctx.AddAssign(inst, "textureLod(%s, %s, %s)", tex, coord, lod)
}

func emitImageSampleDrefImplicitLod(ctx *EmitContext, inst *ir.Inst) {
	checkSparse(inst)
	info := inst.TextureInfo()
	tex := textureName(ctx, info)
	coord := ctx.regAlloc.Consume(inst.Arg(1))
	dref := ctx.regAlloc.Consume(inst.Arg(2))
	if !inst.Arg(3).IsEmpty() || !inst.Arg(4).IsEmpty() {
		panic(ir.NotImplementedf("GLSL depth compare with bias or offset"))
	}
	switch info.Type {
	case ir.TextureColor2D:
		ctx.AddAssign(inst, "texture(%s, vec3(%s, %s))", tex, coord, dref)
	case ir.TextureColorCube, ir.TextureColorArray2D:
		ctx.AddAssign(inst, "texture(%s, vec4(%s, %s))", tex, coord, dref)
	default:
		panic(ir.NotImplementedf("GLSL depth compare on %v", info.Type))
	}
}

func emitImageGather(ctx *EmitContext, inst *ir.Inst) {
	checkSparse(inst)
	info := inst.TextureInfo()
	tex := textureName(ctx, info)
	coord := ctx.regAlloc.Consume(inst.Arg(1))
	if !inst.Arg(3).IsEmpty() {
		panic(ir.NotImplementedf("GLSL gather with four offsets"))
	}
	if !inst.Arg(2).IsEmpty() {
		offset := ctx.regAlloc.Consume(inst.Arg(2))
		ctx.AddAssign(inst, "textureGatherOffset(%s, %s, ivec2(%s), %d)",
			tex, coord, offset, info.GatherComponent)
	} else {
		ctx.AddAssign(inst, "textureGather(%s, %s, %d)", tex, coord, info.GatherComponent)
	}
}

func emitImageFetch(ctx *EmitContext, inst *ir.Inst) {
	checkSparse(inst)
	info := inst.TextureInfo()
	tex := textureName(ctx, info)
	coord := ctx.regAlloc.Consume(inst.Arg(1))
	if !inst.Arg(2).IsEmpty() {
		panic(ir.NotImplementedf("GLSL fetch offsets"))
	}
	if info.Type == ir.TextureBuffer {
		ctx.AddAssign(inst, "texelFetch(%s, int(%s))", tex, coord)
		return
	}
	lod := ctx.regAlloc.Consume(inst.Arg(3))
	if !inst.Arg(4).IsEmpty() {
		ctx.regAlloc.Consume(inst.Arg(4))
		panic(ir.NotImplementedf("GLSL multisample fetch"))
	}
	ctx.AddAssign(inst, "texelFetch(%s, ivec2(%s), int(%s))", tex, coord, lod)
}
