package maxwell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/maxas/ir"
	"github.com/gogpu/maxas/opt"
)

// testEnv serves instruction words from a slice.
type testEnv struct {
	words []uint64
	stage ir.Stage
}

func (e *testEnv) ReadInstruction(address uint32) uint64 { return e.words[address/8] }
func (e *testEnv) Stage() ir.Stage                       { return e.stage }

// ptGuard sets the @PT guard every unpredicated instruction carries.
const ptGuard = 7 << predField

func block(words int) []FlowBlock {
	return []FlowBlock{{
		Begin:      0,
		End:        uint32(words * 8),
		TrueIndex:  -1,
		FalseIndex: -1,
		MergeIndex: -1,
	}}
}

// =============================================================================
// Test: decoding
// =============================================================================

func TestDecode(t *testing.T) {
	cases := []struct {
		insn uint64
		want Opcode
	}{
		{0x5C98_0000_0000_0000, OpMOVReg},
		{0x0100_0000_0000_0000, OpMOV32I},
		{0x5C58_0000_0000_0000, OpFADDReg},
		{0x5C10_0000_0000_0000, OpIADDReg},
		{0xE300_0000_0000_0000, OpEXIT},
		{0xC038_0000_0000_0000, OpTEX},
		{0xC838_0000_0000_0000, OpTLD4},
	}
	for _, tc := range cases {
		got, err := Decode(tc.insn)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "insn %#x", tc.insn)
	}
}

func TestDecodeUnknown(t *testing.T) {
	_, err := Decode(0xFFFF_FFFF_FFFF_FFFF)
	require.True(t, errors.Is(err, ir.ErrDecodeError), "err = %v", err)
}

// =============================================================================
// Test: straight-line translation feeds the SSA pass
// =============================================================================

func TestTranslateStraightLineAdd(t *testing.T) {
	// MOV32I R1,3; MOV32I R2,4; IADD R3,R1,R2; EXIT
	env := &testEnv{
		stage: ir.StageCompute,
		words: []uint64{
			0x0100_0000_0000_0000 | ptGuard | 3<<20 | 1,
			0x0100_0000_0000_0000 | ptGuard | 4<<20 | 2,
			0x5C10_0000_0000_0000 | ptGuard | 1<<srcARegField | 2<<srcBRegField | 3,
			0xE300_0000_0000_0000 | ptGuard,
		},
	}
	program, err := TranslateProgram(env, block(4))
	require.NoError(t, err)

	opt.SSARewrite(program)

	var add *ir.Inst
	for _, inst := range program.Functions[0].Blocks[0].Instructions() {
		if inst.Op() == ir.OpIAdd32 {
			add = inst
		}
	}
	require.NotNil(t, add, "no IAdd32 translated:\n%s", ir.DumpProgram(program))
	require.Equal(t, ir.ImmU32(3), add.Arg(0).Resolve())
	require.Equal(t, ir.ImmU32(4), add.Arg(1).Resolve())
}

// =============================================================================
// Test: source bit-fields outside their range are decode errors
// =============================================================================

func TestTranslateCbufBindingOutOfRange(t *testing.T) {
	// LDC R0,c18[0]
	env := &testEnv{
		stage: ir.StageCompute,
		words: []uint64{
			0xEF90_0000_0000_0000 | ptGuard | 18<<36 | 0xFF<<srcARegField,
		},
	}
	_, err := TranslateProgram(env, block(1))
	require.True(t, errors.Is(err, ir.ErrDecodeError), "err = %v", err)
}

// =============================================================================
// Test: predicated execution is rejected, not mistranslated
// =============================================================================

func TestTranslatePredicatedInstruction(t *testing.T) {
	env := &testEnv{
		stage: ir.StageCompute,
		words: []uint64{
			// MOV32I under @P0
			0x0100_0000_0000_0000 | 0<<predField | 3<<20 | 1,
		},
	}
	_, err := TranslateProgram(env, block(1))
	require.True(t, errors.Is(err, ir.ErrNotImplemented), "err = %v", err)
}

// =============================================================================
// Test: IPA reads varyings, EXIT epilogue stores render targets
// =============================================================================

func TestTranslateFragmentVarying(t *testing.T) {
	env := &testEnv{
		stage: ir.StageFragment,
		words: []uint64{
			// IPA R0, attribute Generic0X
			0xE000_0000_0000_0000 | ptGuard | uint64(ir.AttributeGeneric0X)<<30 | 0xFF<<srcARegField,
			0xE300_0000_0000_0000 | ptGuard,
		},
	}
	program, err := TranslateProgram(env, block(2))
	require.NoError(t, err)

	var sawGetAttribute, sawSetFragColor bool
	for _, inst := range program.Functions[0].Blocks[0].Instructions() {
		switch inst.Op() {
		case ir.OpGetAttribute:
			sawGetAttribute = true
		case ir.OpSetFragColor:
			sawSetFragColor = true
		}
	}
	require.True(t, sawGetAttribute, "IPA should read the attribute")
	require.True(t, sawSetFragColor, "fragment exit should store render targets")
}

// =============================================================================
// Test: conditional flow graphs lay merge hints and terminators
// =============================================================================

func TestTranslateConditionalFlow(t *testing.T) {
	nop := uint64(0x50B0_0000_0000_0000) | ptGuard
	env := &testEnv{
		stage: ir.StageCompute,
		words: []uint64{nop, nop, nop, nop},
	}
	flow := []FlowBlock{
		{Begin: 0, End: 8, Cond: ir.Condition{FlowTest: ir.FlowTestT, Pred: ir.P0}, TrueIndex: 1, FalseIndex: 2, MergeIndex: 3},
		{Begin: 8, End: 16, Cond: ir.True, TrueIndex: 3, FalseIndex: -1, MergeIndex: -1},
		{Begin: 16, End: 24, Cond: ir.True, TrueIndex: 3, FalseIndex: -1, MergeIndex: -1},
		{Begin: 24, End: 32, TrueIndex: -1, FalseIndex: -1, MergeIndex: -1},
	}
	program, err := TranslateProgram(env, flow)
	require.NoError(t, err)

	blocks := program.Functions[0].Blocks
	require.Len(t, blocks, 4)
	require.Len(t, blocks[3].ImmediatePredecessors(), 2)
	require.Equal(t, 4, len(program.Functions[0].PostOrderBlocks))

	var sawMerge bool
	for _, inst := range blocks[0].Instructions() {
		if inst.Op() == ir.OpSelectionMerge {
			sawMerge = true
		}
	}
	require.True(t, sawMerge, "merge hint should be laid before the conditional")
}
