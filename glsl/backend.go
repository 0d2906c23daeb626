// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/maxas/ir"
)

// Options configures GLSL code generation.
type Options struct {
	// UniformBindingBase offsets every uniform buffer binding slot.
	UniformBindingBase uint32

	// TextureBindingBase offsets every texture binding slot.
	TextureBindingBase uint32
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{}
}

// TranslationInfo contains metadata about the emission.
type TranslationInfo struct {
	// UsedExtensions lists GLSL extensions required by the shader.
	UsedExtensions []string
}

// Compile lowers a program that has been through the opt pipeline into
// GLSL source text.
func Compile(program *ir.Program, profile *ir.Profile, options Options) (code string, info TranslationInfo, err error) {
	defer ir.Recover(&err)

	ctx := newEmitContext(program, profile, &options)
	emitProgram(ctx, program)

	if used := ctx.regAlloc.NumUsed(); used != 0 {
		return "", TranslationInfo{}, fmt.Errorf("glsl: %w",
			ir.LogicErrorf("%d registers leaked at end of emission", used))
	}

	text := header(ctx) +
		"void main() {\n" +
		ctx.regAlloc.Declarations("    ") +
		ctx.body.String() +
		"}\n"
	if ctx.usesSparse {
		info.UsedExtensions = append(info.UsedExtensions, "GL_ARB_sparse_texture2")
	}
	return text, info, nil
}
