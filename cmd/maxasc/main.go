// Command maxasc recompiles a raw Maxwell shader blob and prints the
// generated code.
//
// Usage:
//
//	maxasc [-lang glasm|glsl] [-stage vertex|fragment|compute] shader.bin
//
// The whole blob is treated as one straight-line block ending in an
// implicit return; control flow recovery is the embedding driver's
// job, so this tool is only useful for inspecting linear shaders and
// backend output.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/maxas"
	"github.com/gogpu/maxas/ir"
	"github.com/gogpu/maxas/maxwell"
)

type blobEnvironment struct {
	words []uint64
	stage ir.Stage
}

func (e *blobEnvironment) ReadInstruction(address uint32) uint64 {
	return e.words[address/8]
}

func (e *blobEnvironment) Stage() ir.Stage { return e.stage }

func main() {
	lang := flag.String("lang", "glasm", "output language: glasm or glsl")
	stage := flag.String("stage", "fragment", "shader stage: vertex, fragment, or compute")
	dumpIR := flag.Bool("dump-ir", false, "dump the optimized IR instead of emitting code")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: maxasc [-lang glasm|glsl] [-stage vertex|fragment|compute] shader.bin")
		os.Exit(2)
	}

	blob, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(blob)%8 != 0 {
		fmt.Fprintln(os.Stderr, "shader blob is not a whole number of instructions")
		os.Exit(1)
	}

	env := &blobEnvironment{stage: parseStage(*stage)}
	for i := 0; i+8 <= len(blob); i += 8 {
		env.words = append(env.words, binary.LittleEndian.Uint64(blob[i:]))
	}

	flow := []maxwell.FlowBlock{{
		Begin:      0,
		End:        uint32(len(blob)),
		TrueIndex:  -1,
		FalseIndex: -1,
		MergeIndex: -1,
	}}

	if *dumpIR {
		program, err := maxas.Translate(env, flow)
		if err == nil {
			err = maxas.Optimize(program)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(ir.DumpProgram(program))
		return
	}

	options := maxas.DefaultOptions()
	if *lang == "glsl" {
		options.Language = maxas.LanguageGLSL
	}
	code, _, err := maxas.Recompile(env, flow, options)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(code)
}

func parseStage(name string) ir.Stage {
	switch name {
	case "vertex":
		return ir.StageVertex
	case "compute":
		return ir.StageCompute
	default:
		return ir.StageFragment
	}
}
