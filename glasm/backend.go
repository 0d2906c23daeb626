// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glasm lowers optimized IR to an NV_gpu_program5-style
// assembly dialect: whitespace-delimited instructions with
// ';'-terminated statements, headers and TEMP declarations preceding
// body code.
package glasm

import (
	"fmt"

	"github.com/gogpu/maxas/ir"
)

// Options configures assembly generation.
type Options struct {
	// TextureBindingBase offsets every texture binding slot.
	TextureBindingBase uint32
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{}
}

// TranslationInfo contains metadata about the emission.
type TranslationInfo struct {
	// NumRegisters is the high-water count of backend registers the
	// shader declares.
	NumRegisters int
}

// Compile lowers a program that has been through the opt pipeline into
// assembly text.
func Compile(program *ir.Program, profile *ir.Profile, options Options) (code string, info TranslationInfo, err error) {
	defer ir.Recover(&err)

	ctx := newEmitContext(program, profile, &options)
	emitProgram(ctx, program)

	if used := ctx.regAlloc.NumUsed(); used != 0 {
		return "", TranslationInfo{}, fmt.Errorf("glasm: %w",
			ir.LogicErrorf("%d registers leaked at end of emission", used))
	}

	var header string
	switch program.Stage {
	case ir.StageVertex:
		header = "!!NVvp5.0"
	case ir.StageFragment:
		header = "!!NVfp5.0"
	case ir.StageCompute:
		header = "!!NVcp5.0"
	default:
		return "", TranslationInfo{}, fmt.Errorf("glasm: %w",
			ir.NotImplementedf("stage %v", program.Stage))
	}

	text := header + "\n" + declarations(ctx) + ctx.code.String() + "END\n"
	return text, TranslationInfo{NumRegisters: ctx.regAlloc.NumDefined()}, nil
}

// declarations renders the TEMP preamble for every register the body
// ever defines, plus the RC scratch register.
func declarations(ctx *EmitContext) string {
	num := ctx.regAlloc.NumDefined()
	if num == 0 {
		return "TEMP RC;\n"
	}
	decl := "TEMP "
	for i := 0; i < num; i++ {
		decl += fmt.Sprintf("R%d,", i)
	}
	return decl + "RC;\n"
}
