// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/gogpu/maxas/ir"
)

// Type is the storage class of a backend register variable.
type Type uint32

const (
	U1 Type = iota
	F16x2
	S32
	U32
	F32
	S64
	U64
	F64
	U32x2
	F32x2
	U32x3
	F32x3
	U32x4
	F32x4
	Void
)

// Id identifies one backend register. The flags and index pack into a
// single 32-bit word: valid, long, spill, and condition-code bits, a
// null bit for the discard register, and the pool index.
type Id uint32

const (
	idValidBit         = 0
	idLongBit          = 1
	idSpillBit         = 2
	idConditionCodeBit = 3
	idNullBit          = 4
	idIndexShift       = 5
)

// IsValid reports whether the id names a live register.
func (id Id) IsValid() bool { return id&(1<<idValidBit) != 0 }

// IsLong reports whether the register is a 64-bit scalar.
func (id Id) IsLong() bool { return id&(1<<idLongBit) != 0 }

// IsSpill reports whether the register is spilled.
func (id Id) IsSpill() bool { return id&(1<<idSpillBit) != 0 }

// IsConditionCode reports whether the register aliases the condition
// code.
func (id Id) IsConditionCode() bool { return id&(1<<idConditionCodeBit) != 0 }

// IsNull reports whether the register is the write-discard register.
func (id Id) IsNull() bool { return id&(1<<idNullBit) != 0 }

// Index returns the pool index.
func (id Id) Index() uint32 { return uint32(id) >> idIndexShift }

func makeID(index uint32, long bool) Id {
	id := Id(1<<idValidBit) | Id(index)<<idIndexShift
	if long {
		id |= 1 << idLongBit
	}
	return id
}

// RegAlloc manages typed register variables. Define assigns a fresh
// variable to an instruction result; Consume returns the operand text,
// freeing the variable after its last use.
type RegAlloc struct {
	registerUse     [NumRegs / 64]uint64
	registerDefined [NumRegs / 64]uint64
	registerTypes   [NumRegs]Type
	numUsed         int
}

// NumRegs is the size of the backend register pool.
const NumRegs = 4096

// RegType maps an IR result type to the register storage class.
func RegType(typ ir.Type) Type {
	switch typ {
	case ir.TypeU1:
		return U1
	case ir.TypeU8, ir.TypeU16, ir.TypeU32:
		return U32
	case ir.TypeF16:
		return F16x2
	case ir.TypeF32:
		return F32
	case ir.TypeU64:
		return U64
	case ir.TypeF64:
		return F64
	case ir.TypeU32x2:
		return U32x2
	case ir.TypeU32x3:
		return U32x3
	case ir.TypeU32x4:
		return U32x4
	case ir.TypeF32x2:
		return F32x2
	case ir.TypeF32x3:
		return F32x3
	case ir.TypeF32x4:
		return F32x4
	case ir.TypeVoid:
		return Void
	default:
		panic(ir.NotImplementedf("register type for %v", typ))
	}
}

// GlslType renders the GLSL declaration type of a storage class.
func GlslType(typ Type) string {
	switch typ {
	case U1:
		return "bool"
	case F16x2:
		return "uint"
	case S32:
		return "int"
	case U32:
		return "uint"
	case F32:
		return "float"
	case S64:
		return "int64_t"
	case U64:
		return "uint64_t"
	case F64:
		return "double"
	case U32x2:
		return "uvec2"
	case F32x2:
		return "vec2"
	case U32x3:
		return "uvec3"
	case F32x3:
		return "vec3"
	case U32x4:
		return "uvec4"
	case F32x4:
		return "vec4"
	default:
		panic(ir.InvalidArgumentf("invalid register type %d", typ))
	}
}

// Name renders the variable name of an id.
func Name(id Id) string {
	if id.IsNull() {
		return "reg_null"
	}
	if id.IsSpill() {
		return fmt.Sprintf("spill_%d", id.Index())
	}
	return fmt.Sprintf("reg_%d", id.Index())
}

// Define assigns a register variable to the result of inst, derived
// from the instruction's result type.
func (ra *RegAlloc) Define(inst *ir.Inst) string {
	return ra.DefineTyped(inst, RegType(inst.Type()))
}

// DefineTyped assigns a register variable of an explicit storage
// class.
func (ra *RegAlloc) DefineTyped(inst *ir.Inst, typ Type) string {
	if inst.Definition() != 0 {
		return Name(Id(inst.Definition()))
	}
	id := ra.alloc(typ)
	inst.SetDefinition(uint32(id))
	return Name(id)
}

// Consume resolves a value operand to GLSL text. Immediates render
// inline; instruction results return their variable and free it on
// the last use.
func (ra *RegAlloc) Consume(value ir.Value) string {
	if !value.IsImmediate() {
		return ra.consumeInst(value.InstRecursive())
	}
	switch value.Type() {
	case ir.TypeU1:
		if value.U1() {
			return "true"
		}
		return "false"
	case ir.TypeU8:
		return fmt.Sprintf("%du", value.U8())
	case ir.TypeU16:
		return fmt.Sprintf("%du", value.U16())
	case ir.TypeU32:
		return fmt.Sprintf("%du", value.U32())
	case ir.TypeF32:
		return formatFloat(value.F32())
	case ir.TypeU64:
		return fmt.Sprintf("%dul", value.U64())
	case ir.TypeF64:
		return fmt.Sprintf("%g", value.F64())
	default:
		panic(ir.NotImplementedf("immediate type %v in GLSL backend", value.Type()))
	}
}

func formatFloat(f float32) string {
	if f == float32(math.Trunc(float64(f))) && !math.IsInf(float64(f), 0) {
		return fmt.Sprintf("%.1ff", f)
	}
	s := fmt.Sprintf("%g", f)
	if strings.ContainsAny(s, ".e") {
		return s + "f"
	}
	return s + ".0f"
}

func (ra *RegAlloc) consumeInst(inst *ir.Inst) string {
	def := Id(inst.Definition())
	if !def.IsValid() {
		panic(ir.LogicErrorf("consuming %v with no definition", inst.Op()))
	}
	inst.DestructiveRemoveUsage()
	if !inst.HasUses() {
		ra.free(def)
	}
	return Name(def)
}

func (ra *RegAlloc) alloc(typ Type) Id {
	for word := range ra.registerUse {
		freeBits := ^ra.registerUse[word]
		for freeBits != 0 {
			bit := bits.TrailingZeros64(freeBits)
			freeBits &^= 1 << bit
			index := word*64 + bit
			if ra.registerDefined[word]&(1<<bit) != 0 && ra.registerTypes[index] != typ {
				// A freed variable keeps its declared type; skip
				// mismatches instead of redeclaring.
				continue
			}
			ra.registerUse[word] |= 1 << bit
			ra.registerDefined[word] |= 1 << bit
			ra.registerTypes[index] = typ
			ra.numUsed++
			return makeID(uint32(index), typ == U64 || typ == F64 || typ == S64)
		}
	}
	panic(ir.ResourceExhaustedf("register pool exhausted (%d registers)", NumRegs))
}

func (ra *RegAlloc) free(id Id) {
	index := id.Index()
	word, bit := index/64, index%64
	if ra.registerUse[word]&(1<<bit) == 0 {
		panic(ir.LogicErrorf("double free of %s", Name(id)))
	}
	ra.registerUse[word] &^= 1 << bit
	ra.numUsed--
}

// NumUsed returns the variables currently held. Zero at end of emit.
func (ra *RegAlloc) NumUsed() int { return ra.numUsed }

// Declarations renders the variable declarations for every register
// the body ever defined.
func (ra *RegAlloc) Declarations(indent string) string {
	var sb strings.Builder
	for word := range ra.registerDefined {
		defined := ra.registerDefined[word]
		for defined != 0 {
			bit := bits.TrailingZeros64(defined)
			defined &^= 1 << bit
			index := word*64 + bit
			typ := ra.registerTypes[index]
			if typ == Void {
				continue
			}
			fmt.Fprintf(&sb, "%s%s reg_%d;\n", indent, GlslType(typ), index)
		}
	}
	return sb.String()
}
