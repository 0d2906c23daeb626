// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glasm

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/gogpu/maxas/ir"
)

// NumRegs is the size of the backend register pool.
const NumRegs = 4096

// Register names one four-component backend register.
type Register struct {
	index int
}

func (r Register) String() string {
	return fmt.Sprintf("R%d", r.index)
}

// operandKind discriminates a resolved scalar operand.
type operandKind uint8

const (
	operandRegister operandKind = iota
	operandImmU32
	operandImmS32
	operandImmF32
)

// ScalarValue is a consumed scalar operand: the x component of a
// backend register, or an immediate rendered inline.
type ScalarValue struct {
	kind operandKind
	reg  Register
	imm  uint64
}

// ScalarRegister wraps a register as a scalar operand.
func ScalarRegister(reg Register) ScalarValue {
	return ScalarValue{kind: operandRegister, reg: reg}
}

// IsRegister reports whether the operand lives in a register.
func (s ScalarValue) IsRegister() bool { return s.kind == operandRegister }

// Register returns the backing register of a register operand.
func (s ScalarValue) Register() Register { return s.reg }

func (s ScalarValue) String() string {
	switch s.kind {
	case operandRegister:
		return s.reg.String() + ".x"
	case operandImmU32:
		return fmt.Sprintf("%d", uint32(s.imm))
	case operandImmS32:
		return fmt.Sprintf("%d", int32(s.imm))
	default:
		f := math.Float32frombits(uint32(s.imm))
		return fmt.Sprintf("%g", f)
	}
}

// RegAlloc manages the backend register pool. Definitions hold a
// register until the last Consume of the defining instruction; scoped
// registers are acquired and released explicitly by the emitters.
type RegAlloc struct {
	registerUse     [NumRegs / 64]uint64
	registerDefined [NumRegs / 64]uint64
	numUsed         int
	maxDefined      int
}

// Define assigns a fresh register to the result of inst and remembers
// it on the instruction. The register stays reserved until the last
// use of inst has been consumed.
func (ra *RegAlloc) Define(inst *ir.Inst) Register {
	if inst.Definition() != 0 {
		return Register{index: int(inst.Definition()) - 1}
	}
	reg := ra.AllocReg()
	inst.SetDefinition(uint32(reg.index) + 1)
	return reg
}

// Consume resolves a value operand. Instruction results return their
// defined register and decrement the use count, freeing the register
// on the last use. Immediates are materialized inline and do not
// consume a register.
func (ra *RegAlloc) Consume(value ir.Value) ScalarValue {
	if !value.IsImmediate() {
		return ScalarRegister(ra.consumeInst(value.InstRecursive()))
	}
	switch value.Type() {
	case ir.TypeU1:
		// Booleans are all-ones or zero integers.
		if value.U1() {
			return ScalarValue{kind: operandImmS32, imm: uint64(uint32(0xFFFFFFFF))}
		}
		return ScalarValue{kind: operandImmS32, imm: 0}
	case ir.TypeU8:
		return ScalarValue{kind: operandImmU32, imm: uint64(value.U8())}
	case ir.TypeU16:
		return ScalarValue{kind: operandImmU32, imm: uint64(value.U16())}
	case ir.TypeU32:
		return ScalarValue{kind: operandImmU32, imm: uint64(value.U32())}
	case ir.TypeF32:
		return ScalarValue{kind: operandImmF32, imm: uint64(math.Float32bits(value.F32()))}
	default:
		panic(ir.NotImplementedf("immediate type %v in assembly backend", value.Type()))
	}
}

// ConsumeRegister resolves a value that must live in a register,
// such as a coordinate vector.
func (ra *RegAlloc) ConsumeRegister(value ir.Value) Register {
	if value.IsImmediate() {
		panic(ir.LogicErrorf("immediate value consumed as a register"))
	}
	return ra.consumeInst(value.InstRecursive())
}

func (ra *RegAlloc) consumeInst(inst *ir.Inst) Register {
	def := inst.Definition()
	if def == 0 {
		panic(ir.LogicErrorf("consuming %v with no definition", inst.Op()))
	}
	inst.DestructiveRemoveUsage()
	reg := Register{index: int(def) - 1}
	if !inst.HasUses() {
		ra.FreeReg(reg)
	}
	return reg
}

// AllocReg acquires a register outside the definition discipline. The
// caller owns it until FreeReg.
func (ra *RegAlloc) AllocReg() Register {
	for word := range ra.registerUse {
		free := ^ra.registerUse[word]
		if free == 0 {
			continue
		}
		bit := bits.TrailingZeros64(free)
		index := word*64 + bit
		ra.registerUse[word] |= 1 << bit
		ra.registerDefined[word] |= 1 << bit
		ra.numUsed++
		if index+1 > ra.maxDefined {
			ra.maxDefined = index + 1
		}
		return Register{index: index}
	}
	panic(ir.ResourceExhaustedf("register pool exhausted (%d registers)", NumRegs))
}

// FreeReg returns a register to the pool.
func (ra *RegAlloc) FreeReg(reg Register) {
	word, bit := reg.index/64, uint(reg.index%64)
	if ra.registerUse[word]&(1<<bit) == 0 {
		panic(ir.LogicErrorf("double free of register %v", reg))
	}
	ra.registerUse[word] &^= 1 << bit
	ra.numUsed--
}

// NumUsed returns the registers currently held. Zero at end of emit.
func (ra *RegAlloc) NumUsed() int { return ra.numUsed }

// NumDefined returns the high-water register count for preamble
// declarations.
func (ra *RegAlloc) NumDefined() int { return ra.maxDefined }

// ScopedRegister holds a scratch register released on scope exit. The
// caller must defer Release immediately after acquisition; Release is
// idempotent so early release before an error return is safe.
type ScopedRegister struct {
	regAlloc *RegAlloc
	Reg      Register
	held     bool
}

// AllocScopedRegister acquires a scratch register tied to the current
// scope.
func AllocScopedRegister(regAlloc *RegAlloc) *ScopedRegister {
	return &ScopedRegister{regAlloc: regAlloc, Reg: regAlloc.AllocReg(), held: true}
}

// Release frees the register. Safe to call more than once.
func (s *ScopedRegister) Release() {
	if s.held {
		s.regAlloc.FreeReg(s.Reg)
		s.held = false
	}
}
