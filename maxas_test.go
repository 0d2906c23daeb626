package maxas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/maxas/ir"
	"github.com/gogpu/maxas/maxwell"
)

type testEnv struct {
	words []uint64
	stage ir.Stage
}

func (e *testEnv) ReadInstruction(address uint32) uint64 { return e.words[address/8] }
func (e *testEnv) Stage() ir.Stage                       { return e.stage }

// A fragment shader that forwards one varying component to the render
// target: IPA R0, attr0.x; EXIT.
func fragmentPassthrough() (*testEnv, []maxwell.FlowBlock) {
	const ptGuard = 7 << 16
	env := &testEnv{
		stage: ir.StageFragment,
		words: []uint64{
			0xE000_0000_0000_0000 | ptGuard | uint64(ir.AttributeGeneric0X)<<30 | 0xFF<<8,
			0xE300_0000_0000_0000 | ptGuard,
		},
	}
	flow := []maxwell.FlowBlock{{
		Begin:      0,
		End:        16,
		TrueIndex:  -1,
		FalseIndex: -1,
		MergeIndex: -1,
	}}
	return env, flow
}

// =============================================================================
// Test: end-to-end recompilation to the assembly target
// =============================================================================

func TestRecompileGLASM(t *testing.T) {
	env, flow := fragmentPassthrough()
	code, info, err := Recompile(env, flow, DefaultOptions())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(code, "!!NVfp5.0\n"))
	require.Contains(t, code, "fragment.attrib[0].x")
	require.Contains(t, code, "result.color[0]")
	require.True(t, strings.HasSuffix(code, "END\n"))
	require.True(t, info.InputGenerics[0], "varying usage should be collected")
}

// =============================================================================
// Test: end-to-end recompilation to GLSL
// =============================================================================

func TestRecompileGLSL(t *testing.T) {
	env, flow := fragmentPassthrough()
	options := DefaultOptions()
	options.Language = LanguageGLSL
	code, _, err := Recompile(env, flow, options)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(code, "#version 450\n"))
	require.Contains(t, code, "in vec4 in_attr0;")
	require.Contains(t, code, "frag_color0")
	require.Contains(t, code, "return;")
}

// =============================================================================
// Test: failures abort the compile without partial output
// =============================================================================

func TestRecompileFailFast(t *testing.T) {
	env := &testEnv{
		stage: ir.StageFragment,
		words: []uint64{0xFFFF_FFFF_FFFF_FFFF},
	}
	flow := []maxwell.FlowBlock{{Begin: 0, End: 8, TrueIndex: -1, FalseIndex: -1, MergeIndex: -1}}
	code, _, err := Recompile(env, flow, DefaultOptions())
	require.Error(t, err)
	require.Empty(t, code, "no partial code on failure")
}
