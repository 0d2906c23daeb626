package ir

import (
	"errors"
	"testing"
)

// catch runs f and converts a panicked CompileError into a normal
// error, the way the compile entry points do.
func catch(f func()) (err error) {
	defer Recover(&err)
	f()
	return nil
}

// =============================================================================
// Test: opcode table completeness
// =============================================================================

func TestOpcodeTableComplete(t *testing.T) {
	for op := Opcode(0); op < numOpcodes; op++ {
		if opcodeTable[op].name == "" {
			t.Errorf("opcode %d has no table entry", op)
		}
	}
}

func TestOpcodeSignatures(t *testing.T) {
	if got := NumArgsOf(OpFPFma32); got != 3 {
		t.Errorf("FPFma32 arity = %d, want 3", got)
	}
	if got := TypeOf(OpGetRegister); got != TypeU32 {
		t.Errorf("GetRegister type = %v, want U32", got)
	}
	if got := ArgTypeOf(OpSetPred, 0); got != TypePred {
		t.Errorf("SetPred arg 0 = %v, want Pred", got)
	}
}

// =============================================================================
// Test: manual use counts
// =============================================================================

func TestUseCounts(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)

	a := e.GetReg(R1)
	sum := e.IAdd(a, e.Imm32(1))
	if got := a.Inst().UseCount(); got != 1 {
		t.Fatalf("GetReg use count = %d, want 1", got)
	}
	if got := sum.Inst().UseCount(); got != 0 {
		t.Fatalf("IAdd use count = %d, want 0", got)
	}

	e.SetReg(R2, sum)
	if got := sum.Inst().UseCount(); got != 1 {
		t.Fatalf("IAdd use count after store = %d, want 1", got)
	}
}

func TestReplaceUsesWith(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)

	a := e.GetReg(R1)
	sum := e.IAdd(a, a)
	if got := a.Inst().UseCount(); got != 2 {
		t.Fatalf("use count = %d, want 2", got)
	}

	a.Inst().ReplaceUsesWith(ImmU32(7))
	if !a.Inst().IsIdentity() {
		t.Error("replaced instruction should be an identity")
	}
	for i := 0; i < 2; i++ {
		if got := sum.Inst().Arg(i).Resolve(); got != ImmU32(7) {
			t.Errorf("arg %d resolves to %v, want 7", i, got)
		}
	}
}

func TestInvalidateIdempotent(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)

	a := e.GetReg(R1)
	sum := e.IAdd(a, e.Imm32(1))
	if got := a.Inst().UseCount(); got != 1 {
		t.Fatalf("use count = %d, want 1", got)
	}

	sum.Inst().Invalidate()
	sum.Inst().Invalidate()
	if got := a.Inst().UseCount(); got != 0 {
		t.Errorf("use count after double invalidate = %d, want 0", got)
	}
	if !sum.Inst().IsVoided() {
		t.Error("invalidated instruction should be voided")
	}
}

// =============================================================================
// Test: builder violations fail loudly
// =============================================================================

func TestBuilderViolationArity(t *testing.T) {
	block := NewBlock(0, 0)
	err := catch(func() {
		block.AppendNewInst(OpIAdd32, ImmU32(1))
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want invalid argument", err)
	}
}

func TestBuilderViolationType(t *testing.T) {
	block := NewBlock(0, 0)
	err := catch(func() {
		block.AppendNewInst(OpIAdd32, ImmU32(1), ImmF32(2.0))
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want invalid argument", err)
	}
}

func TestCompositeElementMismatch(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)
	err := catch(func() {
		e.CompositeConstruct(ImmF32(1.0), ImmU32(2))
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want invalid argument", err)
	}
}

func TestCompositeExtractRange(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)
	vec := e.CompositeConstruct(ImmF32(1.0), ImmF32(2.0))
	err := catch(func() {
		e.CompositeExtract(vec, 2)
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want invalid argument", err)
	}
}

// =============================================================================
// Test: phi prefix invariant
// =============================================================================

func TestPhiPrefix(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)
	e.IAdd(e.Imm32(1), e.Imm32(2))

	phi := block.PrependNewPhi()
	if block.Instructions()[0] != phi {
		t.Error("phi should lead the block")
	}
	if got := block.FirstNonPhi(); got != 1 {
		t.Errorf("first non-phi = %d, want 1", got)
	}
}

// =============================================================================
// Test: pseudo-operation association
// =============================================================================

func TestPseudoOpAssociation(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)

	sum := e.IAdd(e.GetReg(R1), e.Imm32(1))
	zero := e.GetZeroFromOp(sum.Value)

	if got := sum.Inst().GetAssociatedPseudoOperation(OpGetZeroFromOp); got != zero.Inst() {
		t.Fatal("zero pseudo-op not associated with its producer")
	}
	if got := sum.Inst().GetAssociatedPseudoOperation(OpGetSparseFromOp); got != nil {
		t.Fatal("sparse pseudo-op should be absent")
	}

	zero.Inst().Invalidate()
	if got := sum.Inst().GetAssociatedPseudoOperation(OpGetZeroFromOp); got != nil {
		t.Error("invalidated pseudo-op should no longer be associated")
	}
}

func TestPseudoOpDoubleAssociation(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)
	sum := e.IAdd(e.GetReg(R1), e.Imm32(1))
	e.GetZeroFromOp(sum.Value)
	err := catch(func() {
		e.GetZeroFromOp(sum.Value)
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want invalid argument", err)
	}
}
