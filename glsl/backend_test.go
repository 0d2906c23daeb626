// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
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
// Test: straight-line emission with attribute input
// =============================================================================

func TestCompileStraightLine(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	attr := e.GetAttribute(ir.AttributeGeneric0X)
	sum := e.FPAdd(attr.Value, e.Imm32F(1).Value, ir.FpControl{})
	e.SetFragColor(0, 0, ir.F32{Value: sum})
	e.Return()

	code := compile(t, newProgram(b0))
	require.Contains(t, code, "#version 450")
	require.Contains(t, code, "layout(location=0) in vec4 in_attr0;")
	require.Contains(t, code, "layout(location=0) out vec4 frag_color0;")
	require.Contains(t, code, "void main() {")
	require.Contains(t, code, "float reg_")
	require.Contains(t, code, "= in_attr0.x;")
	require.Contains(t, code, "+ 1.0f;")
	require.Contains(t, code, "frag_color0.x = ")
	require.True(t, strings.HasSuffix(code, "}\n"))
}

// =============================================================================
// Test: structured selection with a phi at the merge
// =============================================================================

func TestCompileSelection(t *testing.T) {
	b0 := ir.NewBlock(0, 8)
	b1 := ir.NewBlock(8, 16)
	b2 := ir.NewBlock(16, 24)
	b3 := ir.NewBlock(24, 32)

	e0 := ir.NewEmitter(b0)
	e0.SelectionMerge(b3)
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
	require.Contains(t, code, "if (true) {")
	require.Contains(t, code, "} else {")
	require.Contains(t, code, "= 1u;")
	require.Contains(t, code, "= 2u;")
	require.Contains(t, code, "return;")
}

// =============================================================================
// Test: texture sampling calls
// =============================================================================

func TestCompileTextureSample(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	coord := e.CompositeConstruct(e.Imm32F(0.5).Value, e.Imm32F(0.5).Value)
	info := ir.TextureInstInfo{Type: ir.TextureColor2D, DescriptorIndex: 0}
	sample := e.ImageSampleImplicitLod(e.Imm32(0), coord, ir.Value{}, ir.Value{}, info)
	e.SetFragColor(0, 0, ir.F32{Value: e.CompositeExtract(sample, 0)})
	e.Return()

	code := compile(t, newProgram(b0))
	require.Contains(t, code, "layout(binding=0) uniform sampler2D tex0;")
	require.Contains(t, code, "texture(tex0, ")
}

// =============================================================================
// Test: declarations cover every defined variable
// =============================================================================

func TestCompileDeclarations(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	sum := e.IAdd(e.Imm32(1), e.Imm32(2))
	e.SetFragColor(0, 0, e.BitCastF32(sum))
	e.Return()

	code := compile(t, newProgram(b0))
	require.Contains(t, code, "uint reg_0;")
	require.Contains(t, code, "float reg_")
}
