// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/gogpu/maxas/ir"
)

// EmitContext carries the mutable state of one GLSL emission.
type EmitContext struct {
	body     strings.Builder
	regAlloc RegAlloc
	indent   int

	program *ir.Program
	profile *ir.Profile
	options *Options

	textureBindings       []uint32
	textureBufferBindings []uint32

	usesSparse bool
}

func newEmitContext(program *ir.Program, profile *ir.Profile, options *Options) *EmitContext {
	ctx := &EmitContext{
		program: program,
		profile: profile,
		options: options,
		indent:  1,
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

// Add appends one formatted statement at the current indentation.
func (ctx *EmitContext) Add(format string, args ...any) {
	for i := 0; i < ctx.indent; i++ {
		ctx.body.WriteString("    ")
	}
	fmt.Fprintf(&ctx.body, format, args...)
	ctx.body.WriteByte('\n')
}

// AddAssign defines the result variable of inst and assigns the
// formatted expression to it.
func (ctx *EmitContext) AddAssign(inst *ir.Inst, format string, args ...any) {
	name := ctx.regAlloc.Define(inst)
	ctx.Add("%s = %s;", name, fmt.Sprintf(format, args...))
}

// TextureBinding resolves a descriptor index through the binding table
// selected by the texture type.
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

// header renders the version directive, extensions, and resource
// declarations.
func header(ctx *EmitContext) string {
	var sb strings.Builder
	sb.WriteString("#version 450\n")
	if ctx.usesSparse {
		sb.WriteString("#extension GL_ARB_sparse_texture2 : enable\n")
	}
	info := &ctx.program.Info

	mask := info.ConstantBufferMask
	for mask != 0 {
		index := bits.TrailingZeros32(mask)
		mask &^= 1 << index
		fmt.Fprintf(&sb, "layout(std140,binding=%d) uniform cbuf_block_%d { uvec4 cbuf%d[4096]; };\n",
			ctx.options.UniformBindingBase+uint32(index), index, index)
	}
	for i, desc := range info.TextureDescriptors {
		fmt.Fprintf(&sb, "layout(binding=%d) uniform %s tex%d;\n",
			ctx.textureBindings[i], samplerTypeName(desc), i)
	}
	for i, desc := range info.TextureBufferDescriptors {
		fmt.Fprintf(&sb, "layout(binding=%d) uniform %s texbuf%d;\n",
			ctx.textureBufferBindings[i], samplerTypeName(desc), i)
	}
	for index, used := range info.InputGenerics {
		if used {
			fmt.Fprintf(&sb, "layout(location=%d) in vec4 in_attr%d;\n", index, index)
		}
	}
	for index, stored := range info.StoresGenerics {
		if stored {
			fmt.Fprintf(&sb, "layout(location=%d) out vec4 out_attr%d;\n", index, index)
		}
	}
	if ctx.program.Stage == ir.StageFragment {
		sb.WriteString("layout(location=0) out vec4 frag_color0;\n")
	}
	return sb.String()
}

func samplerTypeName(desc ir.TextureDescriptor) string {
	var name string
	switch desc.Type {
	case ir.TextureColor1D:
		name = "sampler1D"
	case ir.TextureColorArray1D:
		name = "sampler1DArray"
	case ir.TextureColor2D:
		name = "sampler2D"
	case ir.TextureColorArray2D:
		name = "sampler2DArray"
	case ir.TextureColor3D:
		name = "sampler3D"
	case ir.TextureColorCube:
		name = "samplerCube"
	case ir.TextureColorArrayCube:
		name = "samplerCubeArray"
	case ir.TextureBuffer:
		name = "samplerBuffer"
	default:
		panic(ir.InvalidArgumentf("invalid texture type %v", desc.Type))
	}
	if desc.IsDepth {
		name += "Shadow"
	}
	return name
}
