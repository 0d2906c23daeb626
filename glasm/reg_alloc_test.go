// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glasm

import (
	"errors"
	"testing"

	"github.com/gogpu/maxas/ir"
)

func catch(f func()) (err error) {
	defer ir.Recover(&err)
	f()
	return nil
}

// =============================================================================
// Test: define/consume balance returns the pool to its initial state
// =============================================================================

func TestRegAllocDefineConsume(t *testing.T) {
	block := ir.NewBlock(0, 0)
	e := ir.NewEmitter(block)
	sum := e.IAdd(e.Imm32(1), e.Imm32(2))
	e.SetReg(ir.R1, sum)
	e.SetReg(ir.R2, sum)

	var ra RegAlloc
	reg := ra.Define(sum.Inst())
	if ra.NumUsed() != 1 {
		t.Fatalf("used = %d, want 1", ra.NumUsed())
	}

	first := ra.Consume(sum.Value)
	if !first.IsRegister() || first.Register() != reg {
		t.Fatalf("consume = %v, want %v", first, reg)
	}
	if ra.NumUsed() != 1 {
		t.Fatal("register freed before the last use")
	}

	ra.Consume(sum.Value)
	if ra.NumUsed() != 0 {
		t.Fatal("register not freed on the last use")
	}
}

func TestRegAllocImmediates(t *testing.T) {
	var ra RegAlloc
	if got := ra.Consume(ir.ImmU32(42)).String(); got != "42" {
		t.Errorf("u32 immediate = %q", got)
	}
	if got := ra.Consume(ir.ImmF32(0.5)).String(); got != "0.5" {
		t.Errorf("f32 immediate = %q", got)
	}
	if got := ra.Consume(ir.ImmU1(true)).String(); got != "-1" {
		t.Errorf("bool immediate = %q", got)
	}
	if ra.NumUsed() != 0 {
		t.Error("immediates must not consume registers")
	}
}

func TestRegAllocExhaustion(t *testing.T) {
	var ra RegAlloc
	for i := 0; i < NumRegs; i++ {
		ra.AllocReg()
	}
	err := catch(func() { ra.AllocReg() })
	if !errors.Is(err, ir.ErrResourceExhausted) {
		t.Errorf("err = %v, want resource exhausted", err)
	}
}

// =============================================================================
// Test: scoped registers release on every exit path
// =============================================================================

func TestScopedRegisterRelease(t *testing.T) {
	var ra RegAlloc
	scoped := AllocScopedRegister(&ra)
	if ra.NumUsed() != 1 {
		t.Fatal("scoped register not acquired")
	}
	scoped.Release()
	scoped.Release()
	if ra.NumUsed() != 0 {
		t.Fatal("scoped register not released")
	}
}

func TestScopedRegisterReleaseOnPanic(t *testing.T) {
	var ra RegAlloc
	func() {
		defer func() { recover() }()
		scoped := AllocScopedRegister(&ra)
		defer scoped.Release()
		panic("unwound")
	}()
	if ra.NumUsed() != 0 {
		t.Fatal("scoped register leaked across unwind")
	}
}
