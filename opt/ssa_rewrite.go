// Package opt: SSA rewriting.
//
// This file implements the SSA construction algorithm proposed in
//
//	Simple and Efficient Construction of Static Single Assignment Form.
//	Braun M., Buchwald S., Hack S., Leiba R., Mallon C., Zwinkau A. (2013)
//	In: Jhala R., De Bosschere K. (eds)
//	Compiler Construction. CC 2013.
//	Lecture Notes in Computer Science, vol 7791.
//	Springer, Berlin, Heidelberg
//
//	https://link.springer.com/chapter/10.1007/978-3-642-37051-9_6
//
// The frontend writes registers, predicates, condition code flags, and
// control flow bookkeeping variables as naive GetX/SetX instructions.
// This pass rewrites them into pure SSA with phi nodes, visiting blocks
// in reverse post-order and sealing each block once all of its
// predecessors have been visited.
//
// readVariable is iterative with an explicit frame stack. Real shaders
// produce block chains deep enough to overflow the goroutine stack
// under the textbook recursive formulation, so the recursion is
// required to be eliminated here.
package opt

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/gogpu/maxas/ir"
)

type varKind uint8

const (
	varReg varKind = iota
	varPred
	varGoto
	varIndirectBranch
	varZeroFlag
	varSignFlag
	varCarryFlag
	varOverflowFlag
)

// variable is the SSA key: one of the eight resource spaces the
// frontend reads and writes. index is the register number, predicate
// number, or goto label id; it is zero for the singleton spaces.
type variable struct {
	kind  varKind
	index uint32
}

// undefOpcode returns the opcode materializing an undefined value of
// the variable's type.
func (v variable) undefOpcode() ir.Opcode {
	switch v.kind {
	case varReg, varIndirectBranch:
		return ir.OpUndefU32
	default:
		// Predicates, flags, and goto variables are single bits.
		return ir.OpUndefU1
	}
}

type valueMap = map[*ir.Block]ir.Value

// defTable holds the most recent definition of every variable per
// block. Registers and predicates are dense arrays; the goto variable
// space is sparse and keyed by its u32 label id.
type defTable struct {
	regs     [ir.NumUserRegs]valueMap
	preds    [ir.NumUserPreds]valueMap
	gotoVars map[uint32]valueMap
	indirect valueMap
	zeroFlag valueMap
	signFlag valueMap
	carry    valueMap
	overflow valueMap
}

func (t *defTable) get(v variable) valueMap {
	var slot *valueMap
	switch v.kind {
	case varReg:
		slot = &t.regs[v.index]
	case varPred:
		slot = &t.preds[v.index]
	case varGoto:
		if t.gotoVars == nil {
			t.gotoVars = make(map[uint32]valueMap)
		}
		m, ok := t.gotoVars[v.index]
		if !ok {
			m = make(valueMap)
			t.gotoVars[v.index] = m
		}
		return m
	case varIndirectBranch:
		slot = &t.indirect
	case varZeroFlag:
		slot = &t.zeroFlag
	case varSignFlag:
		slot = &t.signFlag
	case varCarryFlag:
		slot = &t.carry
	case varOverflowFlag:
		slot = &t.overflow
	}
	if *slot == nil {
		*slot = make(valueMap)
	}
	return *slot
}

// status drives one frame of the iterative readVariable traversal.
type status uint8

const (
	statusStart status = iota
	statusSetValue
	statusPreparePhiArgument
	statusPushPhiArgument
)

// readState is one frame of the explicit work stack: the block being
// resolved, the running result, the phi being filled, and a cursor
// over the block's immediate predecessors.
type readState struct {
	block   *ir.Block
	result  ir.Value
	phi     *ir.Inst
	predIdx int
	predEnd int
	pc      status
}

// pass carries the SSA construction state for one program.
type pass struct {
	sealedBlocks   mapset.Set[*ir.Block]
	incompletePhis map[*ir.Block]*incompletePhiList
	currentDef     defTable
}

// incompletePhiList records the operand-less phis of an unsealed block
// in insertion order, so sealing fills them deterministically.
type incompletePhiList struct {
	order []variable
	phis  map[variable]*ir.Inst
}

func (l *incompletePhiList) insertOrAssign(v variable, phi *ir.Inst) {
	if _, ok := l.phis[v]; !ok {
		l.order = append(l.order, v)
	}
	l.phis[v] = phi
}

func newPass() *pass {
	return &pass{
		sealedBlocks:   mapset.NewThreadUnsafeSet[*ir.Block](),
		incompletePhis: make(map[*ir.Block]*incompletePhiList),
	}
}

func (p *pass) writeVariable(v variable, block *ir.Block, value ir.Value) {
	p.currentDef.get(v)[block] = value
}

// readVariable resolves the reaching definition of v at rootBlock,
// inserting phis as needed. The traversal is iterative; each frame's
// pc walks Start -> SetValue or Start -> (PreparePhiArgument /
// PushPhiArgument)* as phi operands are produced by child frames.
func (p *pass) readVariable(v variable, rootBlock *ir.Block) ir.Value {
	stack := make([]readState, 2, 64)
	stack[1] = readState{block: rootBlock}

	preparePhiOperand := func() {
		top := &stack[len(stack)-1]
		if top.predIdx == top.predEnd {
			phi := top.phi
			block := top.block
			result := p.tryRemoveTrivialPhi(phi, block, v.undefOpcode())
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].result = result
			p.writeVariable(v, block, result)
		} else {
			immPred := top.block.ImmediatePredecessors()[top.predIdx]
			top.pc = statusPushPhiArgument
			stack = append(stack, readState{block: immPred})
		}
	}

	for len(stack) > 1 {
		top := &stack[len(stack)-1]
		block := top.block
		switch top.pc {
		case statusStart:
			def := p.currentDef.get(v)
			if value, ok := def[block]; ok {
				top.result = value
			} else if !p.sealedBlocks.Contains(block) {
				// Incomplete CFG
				phi := block.PrependNewPhi()
				list := p.incompletePhis[block]
				if list == nil {
					list = &incompletePhiList{phis: make(map[variable]*ir.Inst)}
					p.incompletePhis[block] = list
				}
				list.insertOrAssign(v, phi)
				top.result = ir.InstValue(phi)
			} else if immPreds := block.ImmediatePredecessors(); len(immPreds) == 1 {
				// Optimize the common case of one predecessor: no phi needed
				top.pc = statusSetValue
				stack = append(stack, readState{block: immPreds[0]})
				continue
			} else {
				// Break potential cycles with an operand-less phi
				phi := block.PrependNewPhi()
				p.writeVariable(v, block, ir.InstValue(phi))

				top.phi = phi
				top.predIdx = 0
				top.predEnd = len(immPreds)
				preparePhiOperand()
				continue
			}
			fallthrough
		case statusSetValue:
			result := stack[len(stack)-1].result
			p.writeVariable(v, block, result)
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].result = result
		case statusPushPhiArgument:
			top.phi.AddPhiOperand(block.ImmediatePredecessors()[top.predIdx], top.result)
			top.predIdx++
			fallthrough
		case statusPreparePhiArgument:
			preparePhiOperand()
		}
	}
	return stack[0].result
}

// sealBlock marks the block's predecessor list as final, filling the
// operands of every phi created while it was unsealed.
func (p *pass) sealBlock(block *ir.Block) {
	if list, ok := p.incompletePhis[block]; ok {
		for _, v := range list.order {
			p.addPhiOperands(v, list.phis[v], block)
		}
		delete(p.incompletePhis, block)
	}
	p.sealedBlocks.Add(block)
}

func (p *pass) addPhiOperands(v variable, phi *ir.Inst, block *ir.Block) ir.Value {
	for _, immPred := range block.ImmediatePredecessors() {
		phi.AddPhiOperand(immPred, p.readVariable(v, immPred))
	}
	return p.tryRemoveTrivialPhi(phi, block, v.undefOpcode())
}

// tryRemoveTrivialPhi folds a phi with at most one distinct non-self
// operand into that operand. A phi with no distinct operand is
// unreachable or sits in the entry block; it folds to a fresh Undef
// placed at the first non-phi position, and the phi itself is
// re-inserted past the phi prefix before being reduced to an identity.
func (p *pass) tryRemoveTrivialPhi(phi *ir.Inst, block *ir.Block, undefOpcode ir.Opcode) ir.Value {
	var same ir.Value
	numArgs := phi.NumArgs()
	for argIndex := 0; argIndex < numArgs; argIndex++ {
		op := phi.Arg(argIndex)
		if op.Resolve() == same.Resolve() || op == ir.InstValue(phi) {
			// Unique value or self-reference
			continue
		}
		if !same.IsEmpty() {
			// The phi merges at least two values: not trivial
			return ir.InstValue(phi)
		}
		same = op
	}
	if same.IsEmpty() {
		// The phi is unreachable or in the start block
		// First remove the phi node from the block, it will be reinserted
		block.RemoveInst(phi)

		// Insert an undef instruction after all phi nodes (to keep phi instructions on top)
		firstNotPhi := block.FirstNonPhi()
		same = ir.InstValue(block.PrependNewInst(firstNotPhi, undefOpcode))

		// Insert the phi node after the undef opcode, this will be replaced with an identity
		block.InsertInst(firstNotPhi+1, phi)
	}
	// Reroute all uses of phi to same and remove phi
	phi.ReplaceUsesWith(same)
	return same
}

// visitInst records writes into the def table and reroutes reads to
// their reaching definitions. Set instructions are invalidated once
// recorded: the definition lives on in the def table, and no resource
// access survives the pass.
func visitInst(p *pass, block *ir.Block, inst *ir.Inst) {
	switch inst.Op() {
	case ir.OpSetRegister:
		if reg := inst.Arg(0).Reg(); reg != ir.RZ {
			p.writeVariable(variable{kind: varReg, index: uint32(reg)}, block, inst.Arg(1))
		}
		inst.Invalidate()
	case ir.OpSetPred:
		if pred := inst.Arg(0).Pred(); pred != ir.PT {
			p.writeVariable(variable{kind: varPred, index: uint32(pred)}, block, inst.Arg(1))
		}
		inst.Invalidate()
	case ir.OpSetGotoVariable:
		p.writeVariable(variable{kind: varGoto, index: inst.Arg(0).U32()}, block, inst.Arg(1))
		inst.Invalidate()
	case ir.OpSetIndirectBranchVariable:
		p.writeVariable(variable{kind: varIndirectBranch}, block, inst.Arg(0))
		inst.Invalidate()
	case ir.OpSetZFlag:
		p.writeVariable(variable{kind: varZeroFlag}, block, inst.Arg(0))
		inst.Invalidate()
	case ir.OpSetSFlag:
		p.writeVariable(variable{kind: varSignFlag}, block, inst.Arg(0))
		inst.Invalidate()
	case ir.OpSetCFlag:
		p.writeVariable(variable{kind: varCarryFlag}, block, inst.Arg(0))
		inst.Invalidate()
	case ir.OpSetOFlag:
		p.writeVariable(variable{kind: varOverflowFlag}, block, inst.Arg(0))
		inst.Invalidate()
	case ir.OpGetRegister:
		if reg := inst.Arg(0).Reg(); reg != ir.RZ {
			inst.ReplaceUsesWith(p.readVariable(variable{kind: varReg, index: uint32(reg)}, block))
		}
	case ir.OpGetPred:
		if pred := inst.Arg(0).Pred(); pred != ir.PT {
			inst.ReplaceUsesWith(p.readVariable(variable{kind: varPred, index: uint32(pred)}, block))
		}
	case ir.OpGetGotoVariable:
		inst.ReplaceUsesWith(p.readVariable(variable{kind: varGoto, index: inst.Arg(0).U32()}, block))
	case ir.OpGetIndirectBranchVariable:
		inst.ReplaceUsesWith(p.readVariable(variable{kind: varIndirectBranch}, block))
	case ir.OpGetZFlag:
		inst.ReplaceUsesWith(p.readVariable(variable{kind: varZeroFlag}, block))
	case ir.OpGetSFlag:
		inst.ReplaceUsesWith(p.readVariable(variable{kind: varSignFlag}, block))
	case ir.OpGetCFlag:
		inst.ReplaceUsesWith(p.readVariable(variable{kind: varCarryFlag}, block))
	case ir.OpGetOFlag:
		inst.ReplaceUsesWith(p.readVariable(variable{kind: varOverflowFlag}, block))
	}
}

func visitBlock(p *pass, block *ir.Block) {
	for _, inst := range block.Instructions() {
		visitInst(p, block, inst)
	}
}

// SSARewrite converts the naive resource accesses of every function in
// the program into SSA form. Running the pass on a program already in
// SSA form is a no-op.
func SSARewrite(program *ir.Program) {
	for _, fn := range program.Functions {
		p := newPass()
		postOrder := fn.PostOrderBlocks
		filled := mapset.NewThreadUnsafeSet[*ir.Block]()
		for i := len(postOrder) - 1; i >= 0; i-- {
			visitBlock(p, postOrder[i])
			filled.Add(postOrder[i])
			// Seal every block whose predecessors are all filled; a loop
			// header waits until the block of its back edge is filled.
			for j := len(postOrder) - 1; j >= i; j-- {
				block := postOrder[j]
				if !p.sealedBlocks.Contains(block) && filled.Contains(block.ImmediatePredecessors()...) {
					p.sealBlock(block)
				}
			}
		}
		for _, block := range postOrder {
			if !p.sealedBlocks.Contains(block) {
				p.sealBlock(block)
			}
		}
	}
}
