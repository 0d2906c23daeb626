// Package maxas recompiles Maxwell GPU shaders into host shading
// languages.
//
// The pipeline translates raw instruction words into a typed SSA IR,
// optimizes it, and lowers the result to text:
//
//  1. Translate Maxwell instructions to IR (maxwell package)
//  2. Rewrite naive register accesses into SSA form (opt package)
//  3. Emit assembly or GLSL text (glasm and glsl packages)
//
// Example usage:
//
//	code, info, err := maxas.Recompile(env, flow, maxas.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Each call owns its IR and emission state exclusively; separate
// shaders may be recompiled concurrently from different goroutines.
package maxas

import (
	"fmt"

	"github.com/gogpu/maxas/glasm"
	"github.com/gogpu/maxas/glsl"
	"github.com/gogpu/maxas/ir"
	"github.com/gogpu/maxas/maxwell"
	"github.com/gogpu/maxas/opt"
)

// Language selects the output shading language.
type Language uint8

const (
	// LanguageGLASM selects the assembly-style backend.
	LanguageGLASM Language = iota

	// LanguageGLSL selects the high-level backend.
	LanguageGLSL
)

// Options configures a recompilation.
type Options struct {
	// Language is the target shading language.
	Language Language

	// Profile enumerates host capabilities and workarounds.
	Profile ir.Profile

	// GlasmOptions configures the assembly backend.
	GlasmOptions glasm.Options

	// GlslOptions configures the GLSL backend.
	GlslOptions glsl.Options
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Language:     LanguageGLASM,
		GlasmOptions: glasm.DefaultOptions(),
		GlslOptions:  glsl.DefaultOptions(),
	}
}

// Recompile runs the whole pipeline for one shader: translation, SSA
// construction, optimization, and emission. It returns the target
// language text and the resource usage summary the driver plumbs into
// pipeline state.
//
// The compile is fail-fast: the first error aborts it and no partial
// code is returned.
func Recompile(env maxwell.Environment, flow []maxwell.FlowBlock, options Options) (string, ir.Info, error) {
	program, err := Translate(env, flow)
	if err != nil {
		return "", ir.Info{}, fmt.Errorf("translation error: %w", err)
	}
	if err := Optimize(program); err != nil {
		return "", ir.Info{}, fmt.Errorf("optimization error: %w", err)
	}
	code, err := Emit(program, options)
	if err != nil {
		return "", ir.Info{}, fmt.Errorf("emission error: %w", err)
	}
	return code, program.Info, nil
}

// Translate lowers raw instruction words into a naive IR program using
// the recovered control flow graph.
func Translate(env maxwell.Environment, flow []maxwell.FlowBlock) (*ir.Program, error) {
	return maxwell.TranslateProgram(env, flow)
}

// Optimize rewrites the program into SSA form and runs the standard
// cleanup passes. The backends require this to have run.
func Optimize(program *ir.Program) (err error) {
	defer ir.Recover(&err)
	opt.Optimize(program)
	return nil
}

// Emit lowers an optimized program to text in the selected language.
func Emit(program *ir.Program, options Options) (string, error) {
	switch options.Language {
	case LanguageGLASM:
		code, _, err := glasm.Compile(program, &options.Profile, options.GlasmOptions)
		return code, err
	case LanguageGLSL:
		code, _, err := glsl.Compile(program, &options.Profile, options.GlslOptions)
		return code, err
	default:
		return "", ir.InvalidArgumentf("invalid language %d", options.Language)
	}
}
