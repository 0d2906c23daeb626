// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glasm

import (
	"fmt"
	"strings"

	"github.com/gogpu/maxas/ir"
)

// EmitContext carries the mutable state of one assembly emission: the
// output buffer, the register allocator, and the binding tables
// resolved from the program's resource summary.
type EmitContext struct {
	code     strings.Builder
	regAlloc RegAlloc

	program *ir.Program
	profile *ir.Profile
	options *Options

	// Binding tables translating a texture descriptor index into the
	// host binding slot referenced by the emitted text.
	textureBindings       []uint32
	textureBufferBindings []uint32
}

func newEmitContext(program *ir.Program, profile *ir.Profile, options *Options) *EmitContext {
	ctx := &EmitContext{
		program: program,
		profile: profile,
		options: options,
	}
	binding := options.TextureBindingBase
	for range program.Info.TextureDescriptors {
		ctx.textureBindings = append(ctx.textureBindings, binding)
		binding++
	}
	for range program.Info.TextureBufferDescriptors {
		ctx.textureBufferBindings = append(ctx.textureBufferBindings, binding)
		binding++
	}
	return ctx
}

// Add appends one formatted statement line. Statements are
// ';'-terminated by their format strings; multi-instruction sequences
// pack several statements into one line.
func (ctx *EmitContext) Add(format string, args ...any) {
	fmt.Fprintf(&ctx.code, format, args...)
	ctx.code.WriteByte('\n')
}

// TextureBinding resolves a descriptor index through the binding
// table selected by the texture type.
func (ctx *EmitContext) TextureBinding(info ir.TextureInstInfo) uint32 {
	table := ctx.textureBindings
	if info.Type == ir.TextureBuffer {
		table = ctx.textureBufferBindings
	}
	if info.DescriptorIndex >= uint32(len(table)) {
		panic(ir.InvalidArgumentf("texture descriptor %d out of range (%d bindings)",
			info.DescriptorIndex, len(table)))
	}
	return table[info.DescriptorIndex]
}
