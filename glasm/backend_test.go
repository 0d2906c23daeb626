// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glasm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/maxas/ir"
	"github.com/gogpu/maxas/opt"
)

func newProgram(blocks ...*ir.Block) *ir.Program {
	fn := &ir.Function{
		Blocks:          blocks,
		PostOrderBlocks: ir.PostOrder(blocks[0]),
	}
	return &ir.Program{Functions: []*ir.Function{fn}, Stage: ir.StageFragment}
}

func compile(t *testing.T, program *ir.Program) string {
	t.Helper()
	opt.Optimize(program)
	code, _, err := Compile(program, &ir.Profile{}, DefaultOptions())
	require.NoError(t, err)
	return code
}

// =============================================================================
// Test: straight-line arithmetic emission
// =============================================================================

func TestCompileStraightLine(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	sum := e.FPAdd(e.Imm32F(1).Value, e.Imm32F(2).Value, ir.FpControl{})
	e.SetFragColor(0, 0, ir.F32{Value: sum})
	e.Return()

	code := compile(t, newProgram(b0))
	require.Contains(t, code, "!!NVfp5.0")
	require.Contains(t, code, "TEMP R0,RC;")
	require.Contains(t, code, "ADD.F R0.x,1,2;")
	require.Contains(t, code, "MOV.F result.color[0].x,R0.x;")
	require.Contains(t, code, "RET;")
	require.True(t, strings.HasSuffix(code, "END\n"))
}

// =============================================================================
// Scenario: 2D sample with bias, LOD clamp, offset, and sparse residency
// =============================================================================

func TestCompileTextureSampleSparseLodClamp(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)

	coord := e.CompositeConstruct(e.Imm32F(0.25).Value, e.Imm32F(0.75).Value)
	biasLC := e.CompositeConstruct(e.Imm32F(1.5).Value, e.Imm32F(2.0).Value)
	offset := e.CompositeConstruct(e.Imm32(1).Value, e.Imm32(2).Value)
	info := ir.TextureInstInfo{
		Type:            ir.TextureColor2D,
		HasBias:         true,
		HasLodClamp:     true,
		DescriptorIndex: 5,
	}
	sample := e.ImageSampleImplicitLod(e.Imm32(0), coord, biasLC, offset, info)
	sparse := e.GetSparseFromOp(sample)
	sparseInst := sparse.Inst()
	e.SetFragColor(0, 0, ir.F32{Value: e.CompositeExtract(sample, 0)})
	e.SetFragColor(0, 1, ir.F32{Value: e.Select(sparse, e.Imm32F(1).Value, e.Imm32F(0).Value)})
	e.Return()

	code := compile(t, newProgram(b0))

	// Opcode variant resolution over the modifier dimensions.
	require.Contains(t, code, "TXB.F.LODCLAMP.SPARSE ")
	// Bias packed into the coordinate w lane before the sample.
	require.Contains(t, code, ".w,")
	// Descriptor 5 resolved through the binding table.
	require.Contains(t, code, "texture[5]")
	// Trailing offset operand.
	require.Contains(t, code, ",offset(")
	// Sparse residency initialization pair.
	require.Contains(t, code, ",-1;")
	require.Contains(t, code, "(NONRESIDENT),0;")
	// The pseudo-op was consumed by the producer's emission.
	require.True(t, sparseInst.IsVoided(), "sparse pseudo-op must be invalidated")
}

// =============================================================================
// Scenario: gather with four offsets
// =============================================================================

func TestCompileGatherFourOffsets(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)

	coord := e.CompositeConstruct(e.Imm32F(0.25).Value, e.Imm32F(0.75).Value)
	offset1 := e.CompositeConstruct(
		e.Imm32(1).Value, e.Imm32(2).Value, e.Imm32(3).Value, e.Imm32(4).Value)
	offset2 := e.CompositeConstruct(
		e.Imm32(5).Value, e.Imm32(6).Value, e.Imm32(7).Value, e.Imm32(8).Value)
	info := ir.TextureInstInfo{Type: ir.TextureColor2D, GatherComponent: 1, DescriptorIndex: 0}
	gather := e.ImageGather(e.Imm32(0), coord, offset1, offset2, info)
	e.SetFragColor(0, 0, ir.F32{Value: e.CompositeExtract(gather, 0)})
	e.Return()

	code := compile(t, newProgram(b0))

	require.Contains(t, code, "TXGO.F ")
	require.Contains(t, code, ".y,2D;", "gather component selects the texture swizzle")
	// The offset pre-swizzle rearranges [XYXY][XYXY] into [XXXX][YYYY].
	swizzleMoves := strings.Count(code, "MOV R")
	require.GreaterOrEqual(t, swizzleMoves, 8, "expected the eight-element swizzle:\n%s", code)
}

// =============================================================================
// Test: descriptor indices outside the binding table fail fast
// =============================================================================

func TestCompileTextureDescriptorOutOfRange(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	coord := e.CompositeConstruct(e.Imm32F(0).Value, e.Imm32F(0).Value)
	info := ir.TextureInstInfo{Type: ir.TextureColor2D, DescriptorIndex: 7}
	sample := e.ImageSampleImplicitLod(e.Imm32(0), coord, ir.Value{}, ir.Value{}, info)
	e.SetFragColor(0, 0, ir.F32{Value: e.CompositeExtract(sample, 0)})
	e.Return()

	// No descriptor collection ran, so the binding table is empty.
	program := newProgram(b0)
	opt.SSARewrite(program)
	opt.IdentityRemoval(program)
	opt.DeadCodeElimination(program)

	_, _, err := Compile(program, &ir.Profile{}, DefaultOptions())
	require.Error(t, err)
	require.True(t, errors.Is(err, ir.ErrInvalidArgument), "err = %v", err)
}

// =============================================================================
// Test: unreachable bindless paths report logic errors
// =============================================================================

func TestCompileBindlessIsLogicError(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	coord := e.CompositeConstruct(e.Imm32F(0).Value, e.Imm32F(0).Value)
	inst := b0.AppendNewInst(ir.OpBindlessImageSampleImplicitLod,
		ir.ImmU32(0), coord, ir.Value{}, ir.Value{})
	e.SetFragColor(0, 0, ir.F32{Value: e.CompositeExtract(ir.InstValue(inst), 0)})
	e.Return()

	program := newProgram(b0)
	_, _, err := Compile(program, &ir.Profile{}, DefaultOptions())
	require.True(t, errors.Is(err, ir.ErrLogicError), "err = %v", err)
}

// =============================================================================
// Test: phi values move at the predecessors
// =============================================================================

func TestCompilePhiMoves(t *testing.T) {
	b0 := ir.NewBlock(0, 8)
	b1 := ir.NewBlock(8, 16)
	b2 := ir.NewBlock(16, 24)
	b3 := ir.NewBlock(24, 32)

	e0 := ir.NewEmitter(b0)
	e0.BranchConditional(e0.Imm1(true), b1, b2)
	e1 := ir.NewEmitter(b1)
	e1.SetReg(ir.R1, e1.Imm32(1))
	e1.Branch(b3)
	e2 := ir.NewEmitter(b2)
	e2.SetReg(ir.R1, e2.Imm32(2))
	e2.Branch(b3)
	e3 := ir.NewEmitter(b3)
	e3.SetFragColor(0, 0, e3.BitCastF32(e3.GetReg(ir.R1)))
	e3.Return()

	code := compile(t, newProgram(b0, b1, b2, b3))
	require.Contains(t, code, "BRA L3;")
	require.Contains(t, code, "MOV.S.CC RC.x,")
	require.Contains(t, code, "MOV.U R0.x,1;")
	require.Contains(t, code, "MOV.U R0.x,2;")
}
