package opt

import "github.com/gogpu/maxas/ir"

// IdentityRemoval rewrites every operand through identity chains and
// strips identity and voided instructions from the blocks, so the
// backends only ever see canonical values. Invalidation happens after
// the whole function is rewritten: identity chains cross blocks.
func IdentityRemoval(program *ir.Program) {
	for _, fn := range program.Functions {
		var toInvalidate []*ir.Inst
		for _, block := range fn.Blocks {
			kept := block.Instructions()[:0]
			for _, inst := range block.Instructions() {
				if inst.IsIdentity() || inst.IsVoided() {
					toInvalidate = append(toInvalidate, inst)
					continue
				}
				for i := 0; i < inst.NumArgs(); i++ {
					arg := inst.Arg(i)
					if arg.Inst() != nil {
						if resolved := arg.Resolve(); resolved != arg {
							inst.SetArg(i, resolved)
						}
					}
				}
				kept = append(kept, inst)
			}
			block.SetInstructions(kept)
		}
		for _, inst := range toInvalidate {
			inst.Invalidate()
		}
	}
}
