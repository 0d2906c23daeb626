package opt

import "github.com/gogpu/maxas/ir"

// Optimize runs the standard pass pipeline over a freshly translated
// program: SSA construction, identity stripping, dead code removal,
// and resource usage collection. Backends require this pipeline to
// have run.
func Optimize(program *ir.Program) {
	SSARewrite(program)
	IdentityRemoval(program)
	DeadCodeElimination(program)
	CollectInfo(program)
}
