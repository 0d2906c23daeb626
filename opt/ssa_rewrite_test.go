package opt

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/maxas/ir"
)

func newProgram(blocks ...*ir.Block) *ir.Program {
	fn := &ir.Function{
		Blocks:          blocks,
		PostOrderBlocks: ir.PostOrder(blocks[0]),
	}
	return &ir.Program{Functions: []*ir.Function{fn}, Stage: ir.StageFragment}
}

// anchor stores a register read into a render target so the value
// chain stays live through dead code elimination.
func anchor(e *ir.Emitter, value ir.U32) {
	e.SetFragColor(0, 0, e.BitCastF32(value))
}

func findInst(t *testing.T, program *ir.Program, op ir.Opcode) *ir.Inst {
	t.Helper()
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			for _, inst := range block.Instructions() {
				if inst.Op() == op {
					return inst
				}
			}
		}
	}
	t.Fatalf("no %v instruction found:\n%s", op, ir.DumpProgram(program))
	return nil
}

var resourceOps = []ir.Opcode{
	ir.OpGetRegister, ir.OpSetRegister, ir.OpGetPred, ir.OpSetPred,
	ir.OpGetZFlag, ir.OpGetSFlag, ir.OpGetCFlag, ir.OpGetOFlag,
	ir.OpSetZFlag, ir.OpSetSFlag, ir.OpSetCFlag, ir.OpSetOFlag,
	ir.OpGetGotoVariable, ir.OpSetGotoVariable,
	ir.OpGetIndirectBranchVariable, ir.OpSetIndirectBranchVariable,
}

func requireNoResourceOps(t *testing.T, program *ir.Program) {
	t.Helper()
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			for _, inst := range block.Instructions() {
				for _, op := range resourceOps {
					if inst.Op() == op {
						t.Fatalf("%v survived the SSA pass:\n%s", op, ir.DumpProgram(program))
					}
				}
			}
		}
	}
}

func requirePhiInvariants(t *testing.T, program *ir.Program) {
	t.Helper()
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			sawNonPhi := false
			for _, inst := range block.Instructions() {
				if inst.Op() != ir.OpPhi {
					sawNonPhi = true
					continue
				}
				require.False(t, sawNonPhi, "phi after non-phi instruction:\n%s", ir.DumpProgram(program))
				preds := block.ImmediatePredecessors()
				require.Equal(t, len(preds), inst.NumArgs(), "phi arity != predecessor count")
				distinct := map[ir.Value]struct{}{}
				for i := range preds {
					require.Same(t, preds[i], inst.PhiBlock(i), "phi operand %d block mismatch", i)
					op := inst.Arg(i).Resolve()
					if op != ir.InstValue(inst) {
						distinct[op] = struct{}{}
					}
				}
				require.Greater(t, len(distinct), 1, "trivial phi survived:\n%s", ir.DumpProgram(program))
			}
		}
	}
}

func requireUseCounts(t *testing.T, program *ir.Program) {
	t.Helper()
	counts := map[*ir.Inst]int{}
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			for _, inst := range block.Instructions() {
				for i := 0; i < inst.NumArgs(); i++ {
					if ref := inst.Arg(i).Inst(); ref != nil {
						counts[ref]++
					}
				}
			}
		}
	}
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			for _, inst := range block.Instructions() {
				require.Equal(t, counts[inst], inst.UseCount(),
					"use count mismatch on %v: %s", inst.Op(), spew.Sdump(inst.Op()))
			}
		}
	}
}

// =============================================================================
// Scenario: straight-line add
// =============================================================================

func TestSSAStraightLineAdd(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	e.SetReg(ir.R1, e.Imm32(3))
	e.SetReg(ir.R2, e.Imm32(4))
	sum := e.IAdd(e.GetReg(ir.R1), e.GetReg(ir.R2))
	e.SetReg(ir.R3, sum)
	anchor(e, sum)
	e.Return()

	program := newProgram(b0)
	SSARewrite(program)

	requireNoResourceOps(t, program)
	add := findInst(t, program, ir.OpIAdd32)
	require.Equal(t, ir.ImmU32(3), add.Arg(0).Resolve())
	require.Equal(t, ir.ImmU32(4), add.Arg(1).Resolve())
	for _, inst := range b0.Instructions() {
		require.NotEqual(t, ir.OpPhi, inst.Op(), "straight-line code needs no phi")
	}
}

// =============================================================================
// Scenario: if-then-else merge
// =============================================================================

func buildDiamond(value1, value2 uint32) (*ir.Program, [4]*ir.Block) {
	b0 := ir.NewBlock(0, 8)
	b1 := ir.NewBlock(8, 16)
	b2 := ir.NewBlock(16, 24)
	b3 := ir.NewBlock(24, 32)

	e0 := ir.NewEmitter(b0)
	e0.BranchConditional(e0.Imm1(true), b1, b2)

	e1 := ir.NewEmitter(b1)
	e1.SetReg(ir.R1, e1.Imm32(value1))
	e1.Branch(b3)

	e2 := ir.NewEmitter(b2)
	e2.SetReg(ir.R1, e2.Imm32(value2))
	e2.Branch(b3)

	e3 := ir.NewEmitter(b3)
	anchor(e3, e3.GetReg(ir.R1))
	e3.Return()

	return newProgram(b0, b1, b2, b3), [4]*ir.Block{b0, b1, b2, b3}
}

func TestSSAIfThenElseMerge(t *testing.T) {
	program, blocks := buildDiamond(1, 2)
	SSARewrite(program)

	requireNoResourceOps(t, program)

	b1, b2, b3 := blocks[1], blocks[2], blocks[3]
	phi := b3.Instructions()[0]
	require.Equal(t, ir.OpPhi, phi.Op(), "merge block must begin with a phi")
	require.Equal(t, 2, phi.NumArgs())
	require.Same(t, b1, phi.PhiBlock(0))
	require.Same(t, b2, phi.PhiBlock(1))
	require.Equal(t, ir.ImmU32(1), phi.Arg(0).Resolve())
	require.Equal(t, ir.ImmU32(2), phi.Arg(1).Resolve())

	bitcast := findInst(t, program, ir.OpBitCastF32U32)
	require.Same(t, phi, bitcast.Arg(0).InstRecursive(), "merge use must be the phi")
}

// =============================================================================
// Scenario: loop with carried value
// =============================================================================

func TestSSALoopCarriedValue(t *testing.T) {
	b0 := ir.NewBlock(0, 8)
	b1 := ir.NewBlock(8, 16)
	b2 := ir.NewBlock(16, 24)
	b3 := ir.NewBlock(24, 32)

	e0 := ir.NewEmitter(b0)
	e0.SetReg(ir.R1, e0.Imm32(0))
	e0.Branch(b1)

	e1 := ir.NewEmitter(b1)
	e1.BranchConditional(e1.Imm1(true), b2, b3)

	e2 := ir.NewEmitter(b2)
	sum := e2.IAdd(e2.GetReg(ir.R1), e2.Imm32(1))
	e2.SetReg(ir.R1, sum)
	e2.Branch(b1)

	e3 := ir.NewEmitter(b3)
	anchor(e3, e3.GetReg(ir.R1))
	e3.Return()

	program := newProgram(b0, b1, b2, b3)
	SSARewrite(program)

	requireNoResourceOps(t, program)

	phi := b1.Instructions()[0]
	require.Equal(t, ir.OpPhi, phi.Op(), "loop header must begin with a phi")
	require.Equal(t, 2, phi.NumArgs())
	require.Same(t, b0, phi.PhiBlock(0))
	require.Same(t, b2, phi.PhiBlock(1))
	require.Equal(t, ir.ImmU32(0), phi.Arg(0).Resolve())

	add := findInst(t, program, ir.OpIAdd32)
	require.Same(t, add, phi.Arg(1).InstRecursive(), "back edge operand must be the increment")
	require.Same(t, phi, add.Arg(0).InstRecursive(), "increment must consume the phi")
}

// =============================================================================
// Scenario: trivial phi collapse
// =============================================================================

func TestSSATrivialPhiCollapse(t *testing.T) {
	program, _ := buildDiamond(5, 5)
	SSARewrite(program)
	IdentityRemoval(program)

	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			for _, inst := range block.Instructions() {
				require.NotEqual(t, ir.OpPhi, inst.Op(), "trivial phi should collapse:\n%s",
					ir.DumpProgram(program))
			}
		}
	}
	bitcast := findInst(t, program, ir.OpBitCastF32U32)
	require.Equal(t, ir.ImmU32(5), bitcast.Arg(0))
}

// =============================================================================
// Boundary: reads with no definition yield Undef of the variable type
// =============================================================================

func TestSSAUndefRegisterRead(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	anchor(e, e.GetReg(ir.R1))
	e.Return()

	program := newProgram(b0)
	SSARewrite(program)

	require.Equal(t, ir.OpUndefU32, b0.Instructions()[0].Op(),
		"undef must land at the first non-phi position:\n%s", ir.DumpProgram(program))
	bitcast := findInst(t, program, ir.OpBitCastF32U32)
	require.Equal(t, ir.OpUndefU32, bitcast.Arg(0).InstRecursive().Op())
}

func TestSSAUndefPredicateRead(t *testing.T) {
	b0 := ir.NewBlock(0, 0)
	e := ir.NewEmitter(b0)
	read := e.GetPred(ir.P0, false)
	anchor(e, ir.U32{Value: e.Select(read, e.Imm32(1).Value, e.Imm32(0).Value)})
	e.Return()

	program := newProgram(b0)
	SSARewrite(program)

	findInst(t, program, ir.OpUndefU1)
}

// =============================================================================
// Flags and goto variables travel through the same key space
// =============================================================================

func TestSSAFlagsAcrossBlocks(t *testing.T) {
	b0 := ir.NewBlock(0, 8)
	b1 := ir.NewBlock(8, 16)

	e0 := ir.NewEmitter(b0)
	e0.SetZFlag(e0.Imm1(true))
	e0.SetGotoVariable(3, e0.Imm1(false))
	e0.Branch(b1)

	e1 := ir.NewEmitter(b1)
	cond := e1.LogicalAnd(e1.GetZFlag(), e1.LogicalNot(e1.GetGotoVariable(3)))
	anchor(e1, ir.U32{Value: e1.Select(cond, e1.Imm32(1).Value, e1.Imm32(0).Value)})
	e1.Return()

	program := newProgram(b0, b1)
	SSARewrite(program)

	requireNoResourceOps(t, program)
	and := findInst(t, program, ir.OpLogicalAnd)
	require.Equal(t, ir.ImmU1(true), and.Arg(0).Resolve())
	not := findInst(t, program, ir.OpLogicalNot)
	require.Equal(t, ir.ImmU1(false), not.Arg(0).Resolve())
}

// =============================================================================
// Idempotence and whole-pipeline invariants
// =============================================================================

func TestSSAIdempotent(t *testing.T) {
	program, _ := buildDiamond(1, 2)
	SSARewrite(program)
	first := ir.DumpProgram(program)
	SSARewrite(program)
	second := ir.DumpProgram(program)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second SSA run changed the program (-first +second):\n%s", diff)
	}
}

func TestOptimizePipelineInvariants(t *testing.T) {
	program, _ := buildDiamond(1, 2)
	Optimize(program)

	requireNoResourceOps(t, program)
	requirePhiInvariants(t, program)
	requireUseCounts(t, program)
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			for _, inst := range block.Instructions() {
				require.False(t, inst.IsVoided(), "voided instruction left in block")
				require.False(t, inst.IsIdentity(), "identity instruction left in block")
			}
		}
	}
}
