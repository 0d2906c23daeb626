// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/gogpu/maxas/ir"
)

// emitProgram walks each function's structured regions starting at the
// entry block.
func emitProgram(ctx *EmitContext, program *ir.Program) {
	for _, fn := range program.Functions {
		if len(fn.Blocks) == 0 {
			continue
		}
		emitRegion(ctx, fn.Blocks[0], nil)
	}
}

// emitRegion emits the chain of blocks from block until stop, nesting
// into structured selections as merge hints direct.
func emitRegion(ctx *EmitContext, block, stop *ir.Block) {
	for block != nil && block != stop {
		block = emitBlock(ctx, block, stop)
	}
}

// emitBlock emits one block's instructions and returns the next block
// of the region, or nil when the region ends.
func emitBlock(ctx *EmitContext, block, stop *ir.Block) *ir.Block {
	var selectionMerge *ir.Block
	for _, inst := range block.Instructions() {
		switch inst.Op() {
		case ir.OpSelectionMerge:
			selectionMerge = inst.Arg(0).Label()
		case ir.OpLoopMerge:
			panic(ir.NotImplementedf("GLSL loop emission"))
		case ir.OpBranch:
			target := inst.Arg(0).Label()
			emitPhiMoves(ctx, block, target)
			return target
		case ir.OpBranchConditional:
			if selectionMerge == nil {
				panic(ir.NotImplementedf("unstructured conditional branch in GLSL"))
			}
			trueLabel := inst.Arg(1).Label()
			falseLabel := inst.Arg(2).Label()
			emitPhiMoves(ctx, block, trueLabel)
			emitPhiMoves(ctx, block, falseLabel)
			// Consume after the phi moves: a move's Define may recycle
			// the variable the condition would be freed from.
			cond := ctx.regAlloc.Consume(inst.Arg(0))
			ctx.Add("if (%s) {", cond)
			ctx.indent++
			emitRegion(ctx, trueLabel, selectionMerge)
			ctx.indent--
			if falseLabel != selectionMerge {
				ctx.Add("} else {")
				ctx.indent++
				emitRegion(ctx, falseLabel, selectionMerge)
				ctx.indent--
			}
			ctx.Add("}")
			return selectionMerge
		case ir.OpReturn:
			ctx.Add("return;")
			return nil
		default:
			emitInst(ctx, inst)
		}
	}
	return nil
}

// emitPhiMoves assigns this block's operand of every phi in target
// before the edge is taken.
func emitPhiMoves(ctx *EmitContext, block, target *ir.Block) {
	if target == nil {
		return
	}
	for _, inst := range target.Instructions() {
		if inst.Op() != ir.OpPhi {
			break
		}
		for _, op := range inst.PhiOperands() {
			if op.Predecessor != block {
				continue
			}
			name := ctx.regAlloc.Define(inst)
			ctx.Add("%s = %s;", name, ctx.regAlloc.Consume(op.Value))
		}
	}
}

func emitInst(ctx *EmitContext, inst *ir.Inst) {
	switch inst.Op() {
	case ir.OpVoid, ir.OpJoin:
	case ir.OpPhi:
		ctx.regAlloc.Define(inst)
	case ir.OpIdentity:
		panic(ir.LogicErrorf("identity instruction after identity removal"))

	case ir.OpGetRegister, ir.OpSetRegister, ir.OpGetPred, ir.OpSetPred,
		ir.OpGetGotoVariable, ir.OpSetGotoVariable,
		ir.OpGetIndirectBranchVariable, ir.OpSetIndirectBranchVariable,
		ir.OpGetZFlag, ir.OpGetSFlag, ir.OpGetCFlag, ir.OpGetOFlag,
		ir.OpSetZFlag, ir.OpSetSFlag, ir.OpSetCFlag, ir.OpSetOFlag:
		panic(ir.LogicErrorf("%v after SSA rewrite", inst.Op()))

	case ir.OpGetZeroFromOp, ir.OpGetSignFromOp, ir.OpGetCarryFromOp,
		ir.OpGetOverflowFromOp, ir.OpGetSparseFromOp:
		panic(ir.LogicErrorf("pseudo-op %v not consumed by its producer", inst.Op()))

	case ir.OpGetCbuf:
		binding := inst.Arg(0)
		if !binding.IsImmediate() {
			panic(ir.NotImplementedf("indirect constant buffer access"))
		}
		offset := ctx.regAlloc.Consume(inst.Arg(1))
		ctx.AddAssign(inst, "cbuf%d[(%s)>>4][((%s)>>2)&3u]", binding.U32(), offset, offset)
	case ir.OpGetAttribute:
		emitGetAttribute(ctx, inst)
	case ir.OpSetAttribute:
		emitSetAttribute(ctx, inst)
	case ir.OpSetFragColor:
		value := ctx.regAlloc.Consume(inst.Arg(2))
		ctx.Add("frag_color%d.%c = %s;", inst.Arg(0).U32(), "xyzw"[inst.Arg(1).U32()], value)
	case ir.OpSetFragDepth:
		ctx.Add("gl_FragDepth = %s;", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpWorkgroupID:
		ctx.AddAssign(inst, "gl_WorkGroupID")
	case ir.OpLocalInvocationID:
		ctx.AddAssign(inst, "gl_LocalInvocationID")

	case ir.OpUndefU1:
		ctx.AddAssign(inst, "false")
	case ir.OpUndefU8, ir.OpUndefU16, ir.OpUndefU32:
		ctx.AddAssign(inst, "0u")

	case ir.OpCompositeConstructU32x2:
		emitCompositeConstruct(ctx, inst, "uvec2")
	case ir.OpCompositeConstructU32x3:
		emitCompositeConstruct(ctx, inst, "uvec3")
	case ir.OpCompositeConstructU32x4:
		emitCompositeConstruct(ctx, inst, "uvec4")
	case ir.OpCompositeConstructF32x2:
		emitCompositeConstruct(ctx, inst, "vec2")
	case ir.OpCompositeConstructF32x3:
		emitCompositeConstruct(ctx, inst, "vec3")
	case ir.OpCompositeConstructF32x4:
		emitCompositeConstruct(ctx, inst, "vec4")
	case ir.OpCompositeExtractU32x2, ir.OpCompositeExtractU32x3, ir.OpCompositeExtractU32x4,
		ir.OpCompositeExtractF32x2, ir.OpCompositeExtractF32x3, ir.OpCompositeExtractF32x4:
		vector := ctx.regAlloc.Consume(inst.Arg(0))
		ctx.AddAssign(inst, "%s.%c", vector, "xyzw"[inst.Arg(1).U32()])
	case ir.OpCompositeInsertU32x2, ir.OpCompositeInsertU32x3, ir.OpCompositeInsertU32x4,
		ir.OpCompositeInsertF32x2, ir.OpCompositeInsertF32x3, ir.OpCompositeInsertF32x4:
		vector := ctx.regAlloc.Consume(inst.Arg(0))
		value := ctx.regAlloc.Consume(inst.Arg(1))
		name := ctx.regAlloc.Define(inst)
		ctx.Add("%s = %s;", name, vector)
		ctx.Add("%s.%c = %s;", name, "xyzw"[inst.Arg(2).U32()], value)

	case ir.OpSelectU1, ir.OpSelectU32, ir.OpSelectF32:
		cond := ctx.regAlloc.Consume(inst.Arg(0))
		trueValue := ctx.regAlloc.Consume(inst.Arg(1))
		falseValue := ctx.regAlloc.Consume(inst.Arg(2))
		ctx.AddAssign(inst, "%s ? %s : %s", cond, trueValue, falseValue)

	case ir.OpBitCastU32F32:
		ctx.AddAssign(inst, "floatBitsToUint(%s)", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpBitCastF32U32:
		ctx.AddAssign(inst, "uintBitsToFloat(%s)", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpPackHalf2x16:
		ctx.AddAssign(inst, "packHalf2x16(%s)", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpUnpackHalf2x16:
		ctx.AddAssign(inst, "unpackHalf2x16(%s)", ctx.regAlloc.Consume(inst.Arg(0)))

	default:
		if !emitArithmetic(ctx, inst) && !emitImage(ctx, inst) {
			panic(ir.NotImplementedf("GLSL lowering of %v", inst.Op()))
		}
	}
}

func emitGetAttribute(ctx *EmitContext, inst *ir.Inst) {
	attr := inst.Arg(0).Attribute()
	switch {
	case ir.IsGeneric(attr):
		ctx.AddAssign(inst, "in_attr%d.%c", ir.GenericAttributeIndex(attr),
			"xyzw"[ir.GenericAttributeElement(attr)])
	case attr >= ir.AttributePositionX && attr <= ir.AttributePositionW:
		ctx.AddAssign(inst, "gl_FragCoord.%c", "xyzw"[attr-ir.AttributePositionX])
	case attr == ir.AttributeFrontFace:
		ctx.AddAssign(inst, "gl_FrontFacing ? -1.0f : 0.0f")
	default:
		panic(ir.NotImplementedf("get attribute %v", attr))
	}
}

func emitSetAttribute(ctx *EmitContext, inst *ir.Inst) {
	attr := inst.Arg(0).Attribute()
	value := ctx.regAlloc.Consume(inst.Arg(1))
	switch {
	case ir.IsGeneric(attr):
		ctx.Add("out_attr%d.%c = %s;", ir.GenericAttributeIndex(attr),
			"xyzw"[ir.GenericAttributeElement(attr)], value)
	case attr >= ir.AttributePositionX && attr <= ir.AttributePositionW:
		ctx.Add("gl_Position.%c = %s;", "xyzw"[attr-ir.AttributePositionX], value)
	case attr == ir.AttributePointSize:
		ctx.Add("gl_PointSize = %s;", value)
	default:
		panic(ir.NotImplementedf("set attribute %v", attr))
	}
}

func emitCompositeConstruct(ctx *EmitContext, inst *ir.Inst, constructor string) {
	elements := make([]string, inst.NumArgs())
	for i := range elements {
		elements[i] = ctx.regAlloc.Consume(inst.Arg(i))
	}
	switch len(elements) {
	case 2:
		ctx.AddAssign(inst, "%s(%s, %s)", constructor, elements[0], elements[1])
	case 3:
		ctx.AddAssign(inst, "%s(%s, %s, %s)", constructor, elements[0], elements[1], elements[2])
	default:
		ctx.AddAssign(inst, "%s(%s, %s, %s, %s)", constructor, elements[0], elements[1], elements[2], elements[3])
	}
}

// emitArithmetic lowers the scalar arithmetic, comparison, and
// conversion families. Returns false when the opcode is not one of
// them.
func emitArithmetic(ctx *EmitContext, inst *ir.Inst) bool {
	switch inst.Op() {
	case ir.OpFPAdd32:
		emitInfix(ctx, inst, "+")
	case ir.OpFPMul32:
		emitInfix(ctx, inst, "*")
	case ir.OpFPFma32:
		a := ctx.regAlloc.Consume(inst.Arg(0))
		b := ctx.regAlloc.Consume(inst.Arg(1))
		c := ctx.regAlloc.Consume(inst.Arg(2))
		ctx.AddAssign(inst, "fma(%s, %s, %s)", a, b, c)
	case ir.OpFPMin32:
		emitCall2(ctx, inst, "min")
	case ir.OpFPMax32:
		emitCall2(ctx, inst, "max")
	case ir.OpFPAbs32:
		emitCall1(ctx, inst, "abs")
	case ir.OpFPNeg32:
		ctx.AddAssign(inst, "-(%s)", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpFPSaturate32:
		ctx.AddAssign(inst, "clamp(%s, 0.0f, 1.0f)", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpFPClamp32:
		if ctx.profile != nil && ctx.profile.HasBrokenSpirvClamp {
			value := ctx.regAlloc.Consume(inst.Arg(0))
			minValue := ctx.regAlloc.Consume(inst.Arg(1))
			maxValue := ctx.regAlloc.Consume(inst.Arg(2))
			ctx.AddAssign(inst, "min(max(%s, %s), %s)", value, minValue, maxValue)
		} else {
			value := ctx.regAlloc.Consume(inst.Arg(0))
			minValue := ctx.regAlloc.Consume(inst.Arg(1))
			maxValue := ctx.regAlloc.Consume(inst.Arg(2))
			ctx.AddAssign(inst, "clamp(%s, %s, %s)", value, minValue, maxValue)
		}
	case ir.OpFPRecip32:
		ctx.AddAssign(inst, "1.0f / %s", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpFPRecipSqrt32:
		emitCall1(ctx, inst, "inversesqrt")
	case ir.OpFPSqrt:
		emitCall1(ctx, inst, "sqrt")
	case ir.OpFPSin:
		emitCall1(ctx, inst, "sin")
	case ir.OpFPCos:
		emitCall1(ctx, inst, "cos")
	case ir.OpFPExp2:
		emitCall1(ctx, inst, "exp2")
	case ir.OpFPLog2:
		emitCall1(ctx, inst, "log2")
	case ir.OpFPRoundEven32:
		emitCall1(ctx, inst, "roundEven")
	case ir.OpFPFloor32:
		emitCall1(ctx, inst, "floor")
	case ir.OpFPCeil32:
		emitCall1(ctx, inst, "ceil")
	case ir.OpFPTrunc32:
		emitCall1(ctx, inst, "trunc")
	case ir.OpFPOrdEqual32:
		emitInfix(ctx, inst, "==")
	case ir.OpFPOrdNotEqual32:
		emitInfix(ctx, inst, "!=")
	case ir.OpFPOrdLessThan32:
		emitInfix(ctx, inst, "<")
	case ir.OpFPOrdGreaterThan32:
		emitInfix(ctx, inst, ">")
	case ir.OpFPOrdLessThanEqual32:
		emitInfix(ctx, inst, "<=")
	case ir.OpFPOrdGreaterThanEqual32:
		emitInfix(ctx, inst, ">=")
	case ir.OpFPIsNan32:
		emitCall1(ctx, inst, "isnan")
	case ir.OpIAdd32:
		emitInfix(ctx, inst, "+")
	case ir.OpISub32:
		emitInfix(ctx, inst, "-")
	case ir.OpIMul32:
		emitInfix(ctx, inst, "*")
	case ir.OpINeg32:
		ctx.AddAssign(inst, "uint(-int(%s))", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpIAbs32:
		ctx.AddAssign(inst, "uint(abs(int(%s)))", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpShiftLeftLogical32:
		emitInfix(ctx, inst, "<<")
	case ir.OpShiftRightLogical32:
		emitInfix(ctx, inst, ">>")
	case ir.OpShiftRightArithmetic32:
		a := ctx.regAlloc.Consume(inst.Arg(0))
		b := ctx.regAlloc.Consume(inst.Arg(1))
		ctx.AddAssign(inst, "uint(int(%s) >> %s)", a, b)
	case ir.OpBitwiseAnd32:
		emitInfix(ctx, inst, "&")
	case ir.OpBitwiseOr32:
		emitInfix(ctx, inst, "|")
	case ir.OpBitwiseXor32:
		emitInfix(ctx, inst, "^")
	case ir.OpBitwiseNot32:
		ctx.AddAssign(inst, "~%s", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpLogicalAnd:
		emitInfix(ctx, inst, "&&")
	case ir.OpLogicalOr:
		emitInfix(ctx, inst, "||")
	case ir.OpLogicalXor:
		emitInfix(ctx, inst, "!=")
	case ir.OpLogicalNot:
		ctx.AddAssign(inst, "!%s", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpSLessThan:
		emitSignedCompare(ctx, inst, "<")
	case ir.OpULessThan:
		emitInfix(ctx, inst, "<")
	case ir.OpIEqual:
		emitInfix(ctx, inst, "==")
	case ir.OpINotEqual:
		emitInfix(ctx, inst, "!=")
	case ir.OpSLessThanEqual:
		emitSignedCompare(ctx, inst, "<=")
	case ir.OpULessThanEqual:
		emitInfix(ctx, inst, "<=")
	case ir.OpSGreaterThan:
		emitSignedCompare(ctx, inst, ">")
	case ir.OpUGreaterThan:
		emitInfix(ctx, inst, ">")
	case ir.OpSGreaterThanEqual:
		emitSignedCompare(ctx, inst, ">=")
	case ir.OpUGreaterThanEqual:
		emitInfix(ctx, inst, ">=")
	case ir.OpConvertS32F32:
		ctx.AddAssign(inst, "uint(int(%s))", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpConvertU32F32:
		ctx.AddAssign(inst, "uint(%s)", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpConvertF32S32:
		ctx.AddAssign(inst, "float(int(%s))", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpConvertF32U32:
		ctx.AddAssign(inst, "float(%s)", ctx.regAlloc.Consume(inst.Arg(0)))
	default:
		return false
	}
	return true
}

func emitInfix(ctx *EmitContext, inst *ir.Inst, op string) {
	a := ctx.regAlloc.Consume(inst.Arg(0))
	b := ctx.regAlloc.Consume(inst.Arg(1))
	ctx.AddAssign(inst, "%s %s %s", a, op, b)
}

func emitSignedCompare(ctx *EmitContext, inst *ir.Inst, op string) {
	a := ctx.regAlloc.Consume(inst.Arg(0))
	b := ctx.regAlloc.Consume(inst.Arg(1))
	ctx.AddAssign(inst, "int(%s) %s int(%s)", a, op, b)
}

func emitCall1(ctx *EmitContext, inst *ir.Inst, fn string) {
	ctx.AddAssign(inst, "%s(%s)", fn, ctx.regAlloc.Consume(inst.Arg(0)))
}

func emitCall2(ctx *EmitContext, inst *ir.Inst, fn string) {
	a := ctx.regAlloc.Consume(inst.Arg(0))
	b := ctx.regAlloc.Consume(inst.Arg(1))
	ctx.AddAssign(inst, "%s(%s, %s)", fn, a, b)
}
