package opt

import "github.com/gogpu/maxas/ir"

// DeadCodeElimination removes instructions with no uses and no side
// effects. Blocks are visited in post-order and instructions in
// reverse so that removing a use can kill its operands in the same
// sweep.
func DeadCodeElimination(program *ir.Program) {
	for _, fn := range program.Functions {
		for _, block := range fn.PostOrderBlocks {
			insts := block.Instructions()
			for i := len(insts) - 1; i >= 0; i-- {
				inst := insts[i]
				if !inst.HasUses() && !inst.MayHaveSideEffects() {
					inst.Invalidate()
				}
			}
			kept := insts[:0]
			for _, inst := range insts {
				if !inst.IsVoided() {
					kept = append(kept, inst)
				}
			}
			block.SetInstructions(kept)
		}
	}
}
