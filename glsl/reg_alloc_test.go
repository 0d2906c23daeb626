// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"testing"

	"github.com/gogpu/maxas/ir"
)

// =============================================================================
// Test: Id bit packing
// =============================================================================

func TestIdPacking(t *testing.T) {
	id := makeID(1234, true)
	if !id.IsValid() {
		t.Error("id should be valid")
	}
	if !id.IsLong() {
		t.Error("id should be long")
	}
	if id.IsSpill() || id.IsConditionCode() || id.IsNull() {
		t.Error("unset flags leaked")
	}
	if got := id.Index(); got != 1234 {
		t.Errorf("index = %d, want 1234", got)
	}
}

func TestIdZeroIsInvalid(t *testing.T) {
	if Id(0).IsValid() {
		t.Error("the zero id must be invalid")
	}
}

// =============================================================================
// Test: define/consume discipline over typed variables
// =============================================================================

func TestVarDefineConsume(t *testing.T) {
	block := ir.NewBlock(0, 0)
	e := ir.NewEmitter(block)
	sum := e.IAdd(e.Imm32(1), e.Imm32(2))
	e.SetReg(ir.R1, sum)

	var ra RegAlloc
	name := ra.Define(sum.Inst())
	if name != "reg_0" {
		t.Errorf("name = %q, want reg_0", name)
	}
	if got := ra.Consume(sum.Value); got != "reg_0" {
		t.Errorf("consume = %q, want reg_0", got)
	}
	if ra.NumUsed() != 0 {
		t.Error("variable not freed on last use")
	}
}

func TestVarImmediates(t *testing.T) {
	var ra RegAlloc
	if got := ra.Consume(ir.ImmU32(7)); got != "7u" {
		t.Errorf("u32 = %q", got)
	}
	if got := ra.Consume(ir.ImmF32(1)); got != "1.0f" {
		t.Errorf("f32 = %q", got)
	}
	if got := ra.Consume(ir.ImmU1(true)); got != "true" {
		t.Errorf("bool = %q", got)
	}
}

// A freed slot keeps its declared type: a different type allocates a
// fresh slot instead of redeclaring.
func TestVarTypeStability(t *testing.T) {
	block := ir.NewBlock(0, 0)
	e := ir.NewEmitter(block)
	a := e.IAdd(e.Imm32(1), e.Imm32(2))
	e.SetReg(ir.R1, a)
	b := e.FPAdd(e.Imm32F(1).Value, e.Imm32F(2).Value, ir.FpControl{})
	e.SetFragColor(0, 0, ir.F32{Value: b})

	var ra RegAlloc
	ra.Define(a.Inst())
	ra.Consume(a.Value)
	if got := ra.Define(b.InstRecursive()); got != "reg_1" {
		t.Errorf("float define reused a uint slot: %q", got)
	}
}
