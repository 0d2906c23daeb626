// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glasm

import "github.com/gogpu/maxas/ir"

// emitProgram walks blocks in layout order and instructions in block
// order. The orderings are contractual: register frees are driven by
// use-count decrements in exactly this order.
func emitProgram(ctx *EmitContext, program *ir.Program) {
	index := 0
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			block.SetIndex(index)
			index++
		}
	}
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			ctx.Add("%s:", block.Name())
			for _, inst := range block.Instructions() {
				emitInst(ctx, block, inst)
			}
		}
	}
}

// emitPhiMoves copies this block's operand of every phi in target into
// the phi's register before the branch is taken.
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
			phiReg := ctx.regAlloc.Define(inst)
			ctx.Add("MOV.U %s.x,%s;", phiReg, ctx.regAlloc.Consume(op.Value))
		}
	}
}

func emitInst(ctx *EmitContext, block *ir.Block, inst *ir.Inst) {
	switch inst.Op() {
	case ir.OpVoid:
	case ir.OpPhi:
		// Definition only; moves are emitted at the predecessors.
		ctx.regAlloc.Define(inst)
	case ir.OpIdentity:
		panic(ir.LogicErrorf("identity instruction after identity removal"))

	case ir.OpBranch:
		emitPhiMoves(ctx, block, inst.Arg(0).Label())
		ctx.Add("BRA %s;", inst.Arg(0).Label().Name())
	case ir.OpBranchConditional:
		// Capture the condition in RC before the phi moves: a move's
		// Define may recycle the register the condition was freed
		// from.
		cond := ctx.regAlloc.Consume(inst.Arg(0))
		ctx.Add("MOV.S.CC RC.x,%s;", cond)
		trueLabel := inst.Arg(1).Label()
		falseLabel := inst.Arg(2).Label()
		emitPhiMoves(ctx, block, trueLabel)
		emitPhiMoves(ctx, block, falseLabel)
		ctx.Add("BRA %s (NE.x);", trueLabel.Name())
		ctx.Add("BRA %s;", falseLabel.Name())
	case ir.OpLoopMerge, ir.OpSelectionMerge, ir.OpJoin:
		// Structure hints carry no assembly.
	case ir.OpReturn:
		ctx.Add("RET;")
	case ir.OpUnreachable:
		ctx.Add("KIL TR;")
	case ir.OpDemoteToHelperInvocation:
		ctx.Add("KIL TR.x;")

	case ir.OpBarrier:
		ctx.Add("BAR;")
	case ir.OpWorkgroupMemoryBarrier:
		ctx.Add("MEMBAR.CTA;")
	case ir.OpDeviceMemoryBarrier:
		ctx.Add("MEMBAR;")

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
		binding := ctx.regAlloc.Consume(inst.Arg(0))
		offset := ctx.regAlloc.Consume(inst.Arg(1))
		ctx.Add("MOV.U %s.x,c%s[%s];", ctx.regAlloc.Define(inst), binding, offset)
	case ir.OpGetAttribute:
		emitGetAttribute(ctx, inst)
	case ir.OpSetAttribute:
		emitSetAttribute(ctx, inst)
	case ir.OpSetFragColor:
		index := inst.Arg(0).U32()
		component := inst.Arg(1).U32()
		value := ctx.regAlloc.Consume(inst.Arg(2))
		ctx.Add("MOV.F result.color[%d].%c,%s;", index, "xyzw"[component], value)
	case ir.OpSetFragDepth:
		ctx.Add("MOV.F result.depth.z,%s;", ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpWorkgroupID:
		ctx.Add("MOV.U %s,invocation.groupid;", ctx.regAlloc.Define(inst))
	case ir.OpLocalInvocationID:
		ctx.Add("MOV.U %s,invocation.localid;", ctx.regAlloc.Define(inst))

	case ir.OpUndefU1, ir.OpUndefU8, ir.OpUndefU16, ir.OpUndefU32:
		ctx.Add("MOV.S %s.x,0;", ctx.regAlloc.Define(inst))

	case ir.OpLoadStorage32:
		binding := ctx.regAlloc.Consume(inst.Arg(0))
		offset := ctx.regAlloc.Consume(inst.Arg(1))
		ctx.Add("LDB.U32 %s.x,program.buffer[%s][%s];", ctx.regAlloc.Define(inst), binding, offset)
	case ir.OpWriteStorage32:
		binding := ctx.regAlloc.Consume(inst.Arg(0))
		offset := ctx.regAlloc.Consume(inst.Arg(1))
		value := ctx.regAlloc.Consume(inst.Arg(2))
		ctx.Add("STB.U32 %s,program.buffer[%s][%s];", value, binding, offset)

	case ir.OpCompositeConstructU32x2, ir.OpCompositeConstructU32x3, ir.OpCompositeConstructU32x4,
		ir.OpCompositeConstructF32x2, ir.OpCompositeConstructF32x3, ir.OpCompositeConstructF32x4:
		emitCompositeConstruct(ctx, inst)
	case ir.OpCompositeExtractU32x2, ir.OpCompositeExtractU32x3, ir.OpCompositeExtractU32x4,
		ir.OpCompositeExtractF32x2, ir.OpCompositeExtractF32x3, ir.OpCompositeExtractF32x4:
		emitCompositeExtract(ctx, inst)
	case ir.OpCompositeInsertU32x2, ir.OpCompositeInsertU32x3, ir.OpCompositeInsertU32x4,
		ir.OpCompositeInsertF32x2, ir.OpCompositeInsertF32x3, ir.OpCompositeInsertF32x4:
		emitCompositeInsert(ctx, inst)

	case ir.OpSelectU1, ir.OpSelectU32, ir.OpSelectF32:
		cond := ctx.regAlloc.Consume(inst.Arg(0))
		trueValue := ctx.regAlloc.Consume(inst.Arg(1))
		falseValue := ctx.regAlloc.Consume(inst.Arg(2))
		ctx.Add("CMP.S %s.x,%s,%s,%s;", ctx.regAlloc.Define(inst), cond, trueValue, falseValue)

	case ir.OpBitCastU32F32, ir.OpBitCastF32U32:
		ctx.Add("MOV.U %s.x,%s;", ctx.regAlloc.Define(inst), ctx.regAlloc.Consume(inst.Arg(0)))
	case ir.OpPackHalf2x16:
		ctx.Add("PK2H %s.x,%s;", ctx.regAlloc.Define(inst), ctx.regAlloc.ConsumeRegister(inst.Arg(0)))
	case ir.OpUnpackHalf2x16:
		ctx.Add("UP2H %s.xy,%s;", ctx.regAlloc.Define(inst), ctx.regAlloc.Consume(inst.Arg(0)))

	default:
		if !emitFloatingPoint(ctx, inst) && !emitInteger(ctx, inst) && !emitImage(ctx, inst) {
			panic(ir.NotImplementedf("assembly lowering of %v", inst.Op()))
		}
	}
}

func attributeComponent(attr ir.Attribute) byte {
	return "xyzw"[uint32(attr)%4]
}

func emitGetAttribute(ctx *EmitContext, inst *ir.Inst) {
	attr := inst.Arg(0).Attribute()
	ret := ctx.regAlloc.Define(inst)
	switch {
	case ir.IsGeneric(attr):
		source := "vertex"
		if ctx.program.Stage == ir.StageFragment {
			source = "fragment"
		}
		ctx.Add("MOV.F %s.x,%s.attrib[%d].%c;", ret, source, ir.GenericAttributeIndex(attr), attributeComponent(attr))
	case attr >= ir.AttributePositionX && attr <= ir.AttributePositionW:
		// gl_FragCoord maps to the position attribute.
		ctx.Add("MOV.F %s.x,fragment.position.%c;", ret, "xyzw"[attr-ir.AttributePositionX])
	case attr == ir.AttributeFrontFace:
		ctx.Add("MOV.F %s.x,fragment.facing.x;", ret)
	default:
		panic(ir.NotImplementedf("get attribute %v", attr))
	}
}

func emitSetAttribute(ctx *EmitContext, inst *ir.Inst) {
	attr := inst.Arg(0).Attribute()
	value := ctx.regAlloc.Consume(inst.Arg(1))
	switch {
	case ir.IsGeneric(attr):
		ctx.Add("MOV.F result.attrib[%d].%c,%s;", ir.GenericAttributeIndex(attr), attributeComponent(attr), value)
	case attr >= ir.AttributePositionX && attr <= ir.AttributePositionW:
		ctx.Add("MOV.F result.position.%c,%s;", "xyzw"[attr-ir.AttributePositionX], value)
	case attr == ir.AttributePointSize:
		ctx.Add("MOV.F result.pointsize.x,%s;", value)
	default:
		panic(ir.NotImplementedf("set attribute %v", attr))
	}
}

func compositeMoveMod(op ir.Opcode) string {
	switch op {
	case ir.OpCompositeConstructF32x2, ir.OpCompositeConstructF32x3, ir.OpCompositeConstructF32x4,
		ir.OpCompositeExtractF32x2, ir.OpCompositeExtractF32x3, ir.OpCompositeExtractF32x4,
		ir.OpCompositeInsertF32x2, ir.OpCompositeInsertF32x3, ir.OpCompositeInsertF32x4:
		return "F"
	}
	return "U"
}

func emitCompositeConstruct(ctx *EmitContext, inst *ir.Inst) {
	mod := compositeMoveMod(inst.Op())
	elements := make([]ScalarValue, inst.NumArgs())
	for i := range elements {
		elements[i] = ctx.regAlloc.Consume(inst.Arg(i))
	}
	ret := ctx.regAlloc.Define(inst)
	for i, element := range elements {
		ctx.Add("MOV.%s %s.%c,%s;", mod, ret, "xyzw"[i], element)
	}
}

func emitCompositeExtract(ctx *EmitContext, inst *ir.Inst) {
	mod := compositeMoveMod(inst.Op())
	vector := ctx.regAlloc.ConsumeRegister(inst.Arg(0))
	component := inst.Arg(1).U32()
	ctx.Add("MOV.%s %s.x,%s.%c;", mod, ctx.regAlloc.Define(inst), vector, "xyzw"[component])
}

func emitCompositeInsert(ctx *EmitContext, inst *ir.Inst) {
	mod := compositeMoveMod(inst.Op())
	vector := ctx.regAlloc.ConsumeRegister(inst.Arg(0))
	value := ctx.regAlloc.Consume(inst.Arg(1))
	component := inst.Arg(2).U32()
	ret := ctx.regAlloc.Define(inst)
	if ret != vector {
		ctx.Add("MOV.%s %s,%s;", mod, ret, vector)
	}
	ctx.Add("MOV.%s %s.%c,%s;", mod, ret, "xyzw"[component], value)
}
