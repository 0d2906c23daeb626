package ir

// MaxArgs is the fixed operand capacity of non-phi instructions.
const MaxArgs = 5

// PhiOperand pairs a phi operand with the predecessor block it flows
// in from. Operand order matches the block's immediate predecessor
// order.
type PhiOperand struct {
	Predecessor *Block
	Value       Value
}

// Inst is a single IR instruction. Instructions are created through a
// Block and stay at a stable address for the lifetime of the compile.
type Inst struct {
	op         Opcode
	flags      uint64
	numArgs    int
	args       [MaxArgs]Value
	phiArgs    []PhiOperand
	uses       int
	definition uint32

	// Pseudo-operations associated with this instruction, at most one
	// per kind. The backend consults and then invalidates them so a
	// secondary result is never emitted twice.
	assoc *associatedInsts

	// For pseudo-op instructions, the producer they are attached to.
	producer *Inst
}

type associatedInsts struct {
	zero     *Inst
	sign     *Inst
	carry    *Inst
	overflow *Inst
	sparse   *Inst
}

// newInst builds a type-checked instruction. Argument arity and types
// must match the opcode table; violations panic with an
// InvalidArgument CompileError.
func newInst(op Opcode, inArgs []Value) *Inst {
	inst := &Inst{op: op}
	if op == OpPhi {
		if len(inArgs) != 0 {
			panic(InvalidArgumentf("phi instructions take no construction operands"))
		}
		return inst
	}
	want := NumArgsOf(op)
	if len(inArgs) != want {
		panic(InvalidArgumentf("invalid number of arguments %d for %v, expected %d",
			len(inArgs), op, want))
	}
	if want > MaxArgs {
		panic(InvalidArgumentf("opcode %v declares %d operands, capacity is %d", op, want, MaxArgs))
	}
	for i, arg := range inArgs {
		if !Compatible(arg.Type(), ArgTypeOf(op, i)) {
			panic(InvalidArgumentf("invalid type %v for argument %d of %v, expected %v",
				arg.Type(), i, op, ArgTypeOf(op, i)))
		}
	}
	inst.numArgs = len(inArgs)
	for i, arg := range inArgs {
		inst.setArgInternal(i, arg)
	}
	inst.associatePseudo()
	return inst
}

// associatePseudo links a pseudo-operation to its producing
// instruction.
func (i *Inst) associatePseudo() {
	var slot **Inst
	switch i.op {
	case OpGetZeroFromOp, OpGetSignFromOp, OpGetCarryFromOp, OpGetOverflowFromOp, OpGetSparseFromOp:
	default:
		return
	}
	producer := i.args[0].Inst()
	if producer == nil {
		panic(InvalidArgumentf("pseudo-op %v requires an instruction operand", i.op))
	}
	if producer.assoc == nil {
		producer.assoc = &associatedInsts{}
	}
	switch i.op {
	case OpGetZeroFromOp:
		slot = &producer.assoc.zero
	case OpGetSignFromOp:
		slot = &producer.assoc.sign
	case OpGetCarryFromOp:
		slot = &producer.assoc.carry
	case OpGetOverflowFromOp:
		slot = &producer.assoc.overflow
	case OpGetSparseFromOp:
		slot = &producer.assoc.sparse
	}
	if *slot != nil {
		panic(InvalidArgumentf("%v is already associated with its producer", i.op))
	}
	*slot = i
	i.producer = producer
}

// Op returns the opcode.
func (i *Inst) Op() Opcode { return i.op }

// Type returns the result type. Phi instructions take the type of
// their operands; identity instructions forward their argument's type.
func (i *Inst) Type() Type {
	switch i.op {
	case OpPhi:
		if len(i.phiArgs) > 0 {
			return i.phiArgs[0].Value.Type()
		}
		return TypeOpaque
	case OpIdentity:
		return i.args[0].Type()
	}
	return TypeOf(i.op)
}

// NumArgs returns the operand count, including phi operands.
func (i *Inst) NumArgs() int {
	if i.op == OpPhi {
		return len(i.phiArgs)
	}
	return i.numArgs
}

// Arg returns operand index. For phi instructions this is the value of
// phi operand index.
func (i *Inst) Arg(index int) Value {
	if i.op == OpPhi {
		return i.phiArgs[index].Value
	}
	if index >= i.numArgs {
		panic(InvalidArgumentf("argument %d out of range for %v with %d operands", index, i.op, i.numArgs))
	}
	return i.args[index]
}

// SetArg replaces operand index, adjusting use counts.
func (i *Inst) SetArg(index int, value Value) {
	if i.op == OpPhi {
		old := i.phiArgs[index].Value
		if inst := old.Inst(); inst != nil {
			inst.uses--
		}
		if inst := value.Inst(); inst != nil {
			inst.uses++
		}
		i.phiArgs[index].Value = value
		return
	}
	if index >= i.numArgs {
		panic(InvalidArgumentf("argument %d out of range for %v with %d operands", index, i.op, i.numArgs))
	}
	if old := i.args[index].Inst(); old != nil {
		old.uses--
	}
	i.setArgInternal(index, value)
}

func (i *Inst) setArgInternal(index int, value Value) {
	if inst := value.Inst(); inst != nil {
		inst.uses++
	}
	i.args[index] = value
}

// PhiOperands returns the phi operand list.
func (i *Inst) PhiOperands() []PhiOperand {
	return i.phiArgs
}

// PhiBlock returns the predecessor block of phi operand index.
func (i *Inst) PhiBlock(index int) *Block {
	return i.phiArgs[index].Predecessor
}

// AddPhiOperand appends (predecessor, value) to a phi.
func (i *Inst) AddPhiOperand(predecessor *Block, value Value) {
	if i.op != OpPhi {
		panic(InvalidArgumentf("%v is not a phi", i.op))
	}
	if inst := value.Inst(); inst != nil {
		inst.uses++
	}
	i.phiArgs = append(i.phiArgs, PhiOperand{Predecessor: predecessor, Value: value})
}

// UseCount returns the number of live argument edges pointing at this
// instruction.
func (i *Inst) UseCount() int { return i.uses }

// DestructiveRemoveUsage decrements the use count without touching an
// argument edge. The backends call it when consuming a value operand,
// so the register allocators can free a result register on its last
// use.
func (i *Inst) DestructiveRemoveUsage() { i.uses-- }

// HasUses reports whether any live instruction still references this
// one.
func (i *Inst) HasUses() bool { return i.uses > 0 }

// IsIdentity reports whether the instruction has been folded to an
// alias of another value.
func (i *Inst) IsIdentity() bool { return i.op == OpIdentity }

// IsVoided reports whether the instruction has been invalidated.
func (i *Inst) IsVoided() bool { return i.op == OpVoid }

// MayHaveSideEffects reports whether the instruction must survive dead
// code elimination regardless of uses.
func (i *Inst) MayHaveSideEffects() bool {
	return opcodeTable[i.op].sideEffects
}

// AreAllArgsImmediates reports whether every operand is an immediate.
func (i *Inst) AreAllArgsImmediates() bool {
	if i.op == OpPhi {
		return false
	}
	for idx := 0; idx < i.numArgs; idx++ {
		if !i.args[idx].IsImmediate() {
			return false
		}
	}
	return true
}

// Flags returns the opcode-specific flags payload.
func (i *Inst) Flags() uint64 { return i.flags }

// SetFlags stores the opcode-specific flags payload.
func (i *Inst) SetFlags(flags uint64) { i.flags = flags }

// FpControl unpacks the floating point control payload.
func (i *Inst) FpControl() FpControl { return UnpackFpControl(i.flags) }

// TextureInfo unpacks the texture instruction payload.
func (i *Inst) TextureInfo() TextureInstInfo { return UnpackTextureInstInfo(i.flags) }

// Definition returns the backend-assigned definition token.
func (i *Inst) Definition() uint32 { return i.definition }

// SetDefinition stores the backend-assigned definition token.
func (i *Inst) SetDefinition(def uint32) { i.definition = def }

// GetAssociatedPseudoOperation returns the live pseudo-op of the given
// kind attached to this instruction, or nil.
func (i *Inst) GetAssociatedPseudoOperation(op Opcode) *Inst {
	if i.assoc == nil {
		return nil
	}
	var pseudo *Inst
	switch op {
	case OpGetZeroFromOp:
		pseudo = i.assoc.zero
	case OpGetSignFromOp:
		pseudo = i.assoc.sign
	case OpGetCarryFromOp:
		pseudo = i.assoc.carry
	case OpGetOverflowFromOp:
		pseudo = i.assoc.overflow
	case OpGetSparseFromOp:
		pseudo = i.assoc.sparse
	default:
		panic(InvalidArgumentf("%v is not a pseudo-operation", op))
	}
	if pseudo != nil && pseudo.IsVoided() {
		return nil
	}
	return pseudo
}

// Invalidate clears the arguments, decrements operand use counts, and
// turns the instruction into a Void placeholder. Invalidating an
// already-invalid instruction is a no-op.
func (i *Inst) Invalidate() {
	if i.op == OpVoid {
		return
	}
	i.detachPseudo()
	if i.op == OpPhi {
		for idx := range i.phiArgs {
			if inst := i.phiArgs[idx].Value.Inst(); inst != nil {
				inst.uses--
			}
		}
		i.phiArgs = nil
	} else {
		for idx := 0; idx < i.numArgs; idx++ {
			if inst := i.args[idx].Inst(); inst != nil {
				inst.uses--
			}
			i.args[idx] = Value{}
		}
		i.numArgs = 0
	}
	i.op = OpVoid
	i.flags = 0
}

// detachPseudo unlinks a pseudo-op from its producer when the
// pseudo-op itself dies.
func (i *Inst) detachPseudo() {
	if i.producer == nil || i.producer.assoc == nil {
		return
	}
	a := i.producer.assoc
	switch i.op {
	case OpGetZeroFromOp:
		a.zero = nil
	case OpGetSignFromOp:
		a.sign = nil
	case OpGetCarryFromOp:
		a.carry = nil
	case OpGetOverflowFromOp:
		a.overflow = nil
	case OpGetSparseFromOp:
		a.sparse = nil
	}
	i.producer = nil
}

// ReplaceUsesWith reroutes every use of this instruction to value by
// folding the instruction into an identity alias. Consumers resolve
// through identities with Value.Resolve, so use edges transfer without
// walking the whole program.
func (i *Inst) ReplaceUsesWith(value Value) {
	i.Invalidate()
	i.op = OpIdentity
	i.numArgs = 1
	i.setArgInternal(0, value)
}

// ReplaceOpcode swaps the opcode without touching operands. Only legal
// between opcodes of identical signatures.
func (i *Inst) ReplaceOpcode(op Opcode) {
	if NumArgsOf(op) != i.numArgs {
		panic(InvalidArgumentf("cannot replace %v with %v: arity mismatch", i.op, op))
	}
	i.op = op
}
