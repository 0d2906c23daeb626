package ir

import (
	"fmt"
	"strings"
)

// Stage identifies the shader stage being recompiled.
type Stage uint8

const (
	StageVertex Stage = iota
	StageTessellationControl
	StageTessellationEval
	StageGeometry
	StageFragment
	StageCompute
)

var stageNames = [...]string{
	"vertex", "tess_control", "tess_eval", "geometry", "fragment", "compute",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// Function owns an ordered set of blocks. Blocks[0] is the entry.
type Function struct {
	Blocks          []*Block
	PostOrderBlocks []*Block
}

// Program is the unit of compilation: one entry function plus any
// utility functions, and the resource usage summary the driver plumbs
// into pipeline state.
type Program struct {
	Functions []*Function
	Info      Info
	Stage     Stage
}

// TextureDescriptor describes one texture binding used by the shader.
type TextureDescriptor struct {
	Type       TextureType
	IsDepth    bool
	CbufIndex  uint32
	CbufOffset uint32
	Count      uint32
}

// Info summarizes the resources a program touches.
type Info struct {
	ConstantBufferMask    uint32
	StorageBuffersUsed    uint32
	InputGenerics         [NumGenerics]bool
	StoresGenerics        [NumGenerics]bool
	StoresPosition        bool
	StoresFragDepth       bool
	UsesWorkgroupID       bool
	UsesLocalInvocationID bool
	UsesSubgroupVote      bool
	WorkgroupSize         [3]uint32

	TextureDescriptors       []TextureDescriptor
	TextureBufferDescriptors []TextureDescriptor
}

// PostOrder computes the post-order linearization of the graph rooted
// at entry. The traversal is iterative; shader CFGs can be deep.
func PostOrder(entry *Block) []*Block {
	type frame struct {
		block *Block
		next  int
	}
	visited := map[*Block]bool{entry: true}
	var order []*Block
	stack := []frame{{block: entry}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		succ := successors(top.block)
		if top.next < len(succ) {
			s := succ[top.next]
			top.next++
			if s != nil && !visited[s] {
				visited[s] = true
				stack = append(stack, frame{block: s})
			}
			continue
		}
		order = append(order, top.block)
		stack = stack[:len(stack)-1]
	}
	return order
}

func successors(b *Block) []*Block {
	switch {
	case b.branchTrue == nil:
		return nil
	case b.branchFalse == nil:
		return []*Block{b.branchTrue}
	}
	return []*Block{b.branchTrue, b.branchFalse}
}

// DumpProgram renders a program for debugging and tests.
func DumpProgram(program *Program) string {
	var sb strings.Builder
	ids := make(map[*Inst]int)
	next := 0
	id := func(inst *Inst) int {
		if n, ok := ids[inst]; ok {
			return n
		}
		ids[inst] = next
		next++
		return ids[inst]
	}
	dumpValue := func(v Value) string {
		if inst := v.Inst(); inst != nil {
			return fmt.Sprintf("%%%d", id(inst))
		}
		return v.String()
	}
	for fi, fn := range program.Functions {
		fmt.Fprintf(&sb, "function %d\n", fi)
		for _, block := range fn.Blocks {
			fmt.Fprintf(&sb, "%s: // preds:", block.Name())
			for _, pred := range block.ImmediatePredecessors() {
				fmt.Fprintf(&sb, " %s", pred.Name())
			}
			sb.WriteByte('\n')
			for _, inst := range block.Instructions() {
				if inst.IsVoided() {
					continue
				}
				sb.WriteString("    ")
				if inst.Type() != TypeVoid {
					fmt.Fprintf(&sb, "%%%d = ", id(inst))
				}
				sb.WriteString(inst.Op().String())
				if inst.Op() == OpPhi {
					for _, op := range inst.PhiOperands() {
						fmt.Fprintf(&sb, " [%s, %s]", op.Predecessor.Name(), dumpValue(op.Value))
					}
				} else {
					for i := 0; i < inst.NumArgs(); i++ {
						if i > 0 {
							sb.WriteByte(',')
						}
						sb.WriteByte(' ')
						sb.WriteString(dumpValue(inst.Arg(i)))
					}
				}
				if inst.UseCount() > 0 {
					fmt.Fprintf(&sb, " (uses: %d)", inst.UseCount())
				}
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
