package ir

import (
	"fmt"
	"slices"
)

// Block is a basic block: an ordered instruction list, the set of
// immediate predecessors recorded as branches are laid down, and at
// most two successor labels. Phi instructions always form a contiguous
// prefix of the list.
type Block struct {
	insts []*Inst

	immPredecessors []*Block

	// Branch layout, set by the emitter when the terminator is laid
	// down.
	cond        Condition
	branchTrue  *Block
	branchFalse *Block

	// Source code range covered by this block.
	locBegin uint32
	locEnd   uint32

	index int
}

// NewBlock creates a block covering the source range [begin, end).
func NewBlock(begin, end uint32) *Block {
	return &Block{locBegin: begin, locEnd: end, index: -1}
}

// Name returns a stable label for dumps and backend emission.
func (b *Block) Name() string {
	if b.index >= 0 {
		return fmt.Sprintf("L%d", b.index)
	}
	return fmt.Sprintf("L%p", b)
}

// SetIndex assigns the layout index used for naming.
func (b *Block) SetIndex(index int) { b.index = index }

// Index returns the layout index, or -1 when unset.
func (b *Block) Index() int { return b.index }

// LocationBegin returns the first source offset covered by the block.
func (b *Block) LocationBegin() uint32 { return b.locBegin }

// LocationEnd returns one past the last source offset covered.
func (b *Block) LocationEnd() uint32 { return b.locEnd }

// Instructions returns the instruction list in order. The returned
// slice is the live list; callers must not retain it across
// insertions.
func (b *Block) Instructions() []*Inst { return b.insts }

// SetInstructions replaces the instruction list. Used by passes that
// filter instructions in place.
func (b *Block) SetInstructions(insts []*Inst) { b.insts = insts }

// Empty reports whether the block holds no instructions.
func (b *Block) Empty() bool { return len(b.insts) == 0 }

// AppendNewInst constructs a type-checked instruction and appends it.
func (b *Block) AppendNewInst(op Opcode, args ...Value) *Inst {
	inst := newInst(op, args)
	b.insts = append(b.insts, inst)
	return inst
}

// PrependNewInst constructs an instruction and inserts it before
// position index.
func (b *Block) PrependNewInst(index int, op Opcode, args ...Value) *Inst {
	inst := newInst(op, args)
	b.insts = slices.Insert(b.insts, index, inst)
	return inst
}

// PrependNewPhi inserts an operand-less phi at the head of the block,
// keeping the phi prefix contiguous.
func (b *Block) PrependNewPhi() *Inst {
	return b.PrependNewInst(0, OpPhi)
}

// FirstNonPhi returns the index of the first instruction past the phi
// prefix.
func (b *Block) FirstNonPhi() int {
	for i, inst := range b.insts {
		if inst.Op() != OpPhi {
			return i
		}
	}
	return len(b.insts)
}

// RemoveInst unlinks inst from the list without invalidating it.
func (b *Block) RemoveInst(inst *Inst) {
	i := slices.Index(b.insts, inst)
	if i < 0 {
		panic(LogicErrorf("instruction not present in block %s", b.Name()))
	}
	b.insts = slices.Delete(b.insts, i, i+1)
}

// InsertInst links an existing instruction before position index.
func (b *Block) InsertInst(index int, inst *Inst) {
	b.insts = slices.Insert(b.insts, index, inst)
}

// AddImmediatePredecessor records pred as an immediate predecessor.
// Recording the same edge twice is a no-op.
func (b *Block) AddImmediatePredecessor(pred *Block) {
	if !slices.Contains(b.immPredecessors, pred) {
		b.immPredecessors = append(b.immPredecessors, pred)
	}
}

// ImmediatePredecessors returns the predecessor list in recording
// order.
func (b *Block) ImmediatePredecessors() []*Block { return b.immPredecessors }

// SetBranch records an unconditional branch to label.
func (b *Block) SetBranch(label *Block) {
	b.cond = True
	b.branchTrue = label
	b.branchFalse = nil
}

// SetBranches records a conditional branch.
func (b *Block) SetBranches(cond Condition, trueLabel, falseLabel *Block) {
	b.cond = cond
	b.branchTrue = trueLabel
	b.branchFalse = falseLabel
}

// TrueBranch returns the taken successor, or nil for return blocks.
func (b *Block) TrueBranch() *Block { return b.branchTrue }

// FalseBranch returns the not-taken successor, or nil.
func (b *Block) FalseBranch() *Block { return b.branchFalse }

// BranchCondition returns the recorded branch condition.
func (b *Block) BranchCondition() Condition { return b.cond }
