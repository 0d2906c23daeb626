package ir

import "testing"

// =============================================================================
// Test: RZ and PT fold at emission time, before any pass runs
// =============================================================================

func TestZeroRegisterFolds(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)

	value := e.GetReg(RZ)
	if !value.IsImmediate() || value.U32() != 0 {
		t.Errorf("RZ read = %v, want immediate 0", value.Value)
	}
	if len(block.Instructions()) != 0 {
		t.Error("RZ read should not emit an instruction")
	}

	e.SetReg(RZ, e.Imm32(5))
	if len(block.Instructions()) != 0 {
		t.Error("RZ write should be dropped")
	}
}

func TestTruePredicateFolds(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)

	if got := e.GetPred(PT, false); !got.IsImmediate() || !got.U1() {
		t.Errorf("PT read = %v, want immediate true", got.Value)
	}
	if got := e.GetPred(PT, true); !got.IsImmediate() || got.U1() {
		t.Errorf("negated PT read = %v, want immediate false", got.Value)
	}

	e.SetPred(PT, e.Imm1(false))
	if len(block.Instructions()) != 0 {
		t.Error("PT write should be dropped")
	}
}

// =============================================================================
// Test: polymorphic opcode dispatch by operand width
// =============================================================================

func TestFPAddWidthDispatch(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)

	e.FPAdd(ImmF32(1), ImmF32(2), FpControl{})
	insts := block.Instructions()
	if got := insts[len(insts)-1].Op(); got != OpFPAdd32 {
		t.Errorf("f32 add lowered to %v", got)
	}

	e.FPAdd(ImmF64(1), ImmF64(2), FpControl{})
	insts = block.Instructions()
	if got := insts[len(insts)-1].Op(); got != OpFPAdd64 {
		t.Errorf("f64 add lowered to %v", got)
	}
}

func TestFPAddMismatchedWidths(t *testing.T) {
	block := NewBlock(0, 0)
	e := NewEmitter(block)
	err := catch(func() {
		e.FPAdd(ImmF32(1), ImmF64(2), FpControl{})
	})
	if err == nil {
		t.Error("mismatched widths should fail")
	}
}

// =============================================================================
// Test: branch helpers record predecessor edges
// =============================================================================

func TestBranchRecordsPredecessor(t *testing.T) {
	b0 := NewBlock(0, 8)
	b1 := NewBlock(8, 16)
	e := NewEmitter(b0)
	e.Branch(b1)

	preds := b1.ImmediatePredecessors()
	if len(preds) != 1 || preds[0] != b0 {
		t.Fatalf("predecessors = %v, want [b0]", preds)
	}
	if b0.TrueBranch() != b1 {
		t.Error("branch target not recorded")
	}
}

func TestBranchConditionalRecordsBothEdges(t *testing.T) {
	b0 := NewBlock(0, 8)
	b1 := NewBlock(8, 16)
	b2 := NewBlock(16, 24)
	e := NewEmitter(b0)
	e.BranchConditional(e.Imm1(true), b1, b2)

	if len(b1.ImmediatePredecessors()) != 1 || len(b2.ImmediatePredecessors()) != 1 {
		t.Error("both successors should record the predecessor edge")
	}
}

// =============================================================================
// Test: flags payloads round-trip through the packed word
// =============================================================================

func TestFpControlPack(t *testing.T) {
	control := FpControl{NoContraction: true, Rounding: RoundTowardZero, FmzMode: FmzFTZ}
	if got := UnpackFpControl(control.Pack()); got != control {
		t.Errorf("round trip = %+v, want %+v", got, control)
	}
}

func TestTextureInstInfoPack(t *testing.T) {
	info := TextureInstInfo{
		Type:            TextureColorArrayCube,
		IsDepth:         true,
		HasBias:         true,
		HasLodClamp:     true,
		GatherComponent: 2,
		DescriptorIndex: 0x12345,
	}
	if got := UnpackTextureInstInfo(info.Pack()); got != info {
		t.Errorf("round trip = %+v, want %+v", got, info)
	}
}
