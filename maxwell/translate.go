package maxwell

import "github.com/gogpu/maxas/ir"

// FlowBlock describes one node of the externally recovered control
// flow graph: the instruction range it covers and where it branches.
// Indices refer to positions in the block list; a negative index means
// the block returns.
type FlowBlock struct {
	Begin uint32
	End   uint32

	// Cond guards the branch; ir.True makes it unconditional.
	Cond ir.Condition

	TrueIndex  int
	FalseIndex int

	// MergeIndex marks the reconvergence block of a conditional, used
	// by the structured backends. Negative when unknown.
	MergeIndex int
}

// Translate fills one block with the IR of its instruction range.
func Translate(env Environment, block *ir.Block) {
	visitor := newVisitor(env, block)
	for pc := block.LocationBegin(); pc < block.LocationEnd(); pc += 8 {
		insn := env.ReadInstruction(pc)
		opcode, err := Decode(insn)
		if err != nil {
			panic(err)
		}
		visitor.visit(opcode, insn)
	}
}

func (v *TranslatorVisitor) visit(opcode Opcode, insn uint64) {
	switch opcode {
	case OpMOVReg:
		v.MOVReg(insn)
	case OpMOV32I:
		v.MOV32I(insn)
	case OpS2R:
		v.S2R(insn)
	case OpFADDReg:
		v.FADDReg(insn)
	case OpFMULReg:
		v.FMULReg(insn)
	case OpFFMAReg:
		v.FFMAReg(insn)
	case OpFCMPReg:
		v.FCMPReg(insn)
	case OpFCMPImm:
		v.FCMPImm(insn)
	case OpFSETPReg:
		v.FSETPReg(insn)
	case OpIADDReg:
		v.IADDReg(insn)
	case OpIADD32I:
		v.IADD32I(insn)
	case OpISETPReg:
		v.ISETPReg(insn)
	case OpSHLReg:
		v.SHLReg(insn)
	case OpSHRReg:
		v.SHRReg(insn)
	case OpLOPReg:
		v.LOPReg(insn)
	case OpSELReg:
		v.SELReg(insn)
	case OpIPA:
		v.IPA(insn)
	case OpLDC:
		v.LDC(insn)
	case OpTEX:
		v.TEX(insn)
	case OpTLD4:
		v.TLD4(insn)
	case OpBRA:
		v.BRA(insn)
	case OpEXIT:
		v.EXIT(insn)
	case OpNOP:
		v.NOP(insn)
	default:
		panic(ir.LogicErrorf("invalid opcode %v", opcode))
	}
}

// TranslateProgram translates every block of the recovered flow graph,
// lays down the terminators the graph describes, and computes the
// post-order linearization the optimizer iterates.
func TranslateProgram(env Environment, flow []FlowBlock) (program *ir.Program, err error) {
	defer ir.Recover(&err)

	if len(flow) == 0 {
		return nil, ir.InvalidArgumentf("empty flow graph")
	}
	blocks := make([]*ir.Block, len(flow))
	for i, node := range flow {
		blocks[i] = ir.NewBlock(node.Begin, node.End)
	}
	for i, node := range flow {
		block := blocks[i]
		Translate(env, block)
		emitter := ir.NewEmitter(block)
		switch {
		case node.TrueIndex < 0:
			if env.Stage() == ir.StageFragment {
				emitFragmentEpilogue(emitter)
			}
			emitter.Return()
		case node.Cond == ir.True:
			emitter.Branch(blocks[node.TrueIndex])
		default:
			if node.FalseIndex < 0 {
				return nil, ir.InvalidArgumentf("conditional block %d without a false edge", i)
			}
			if node.MergeIndex >= 0 {
				emitter.SelectionMerge(blocks[node.MergeIndex])
			}
			cond := emitter.Condition(node.Cond)
			emitter.BranchConditional(cond, blocks[node.TrueIndex], blocks[node.FalseIndex])
		}
	}

	fn := &ir.Function{
		Blocks:          blocks,
		PostOrderBlocks: ir.PostOrder(blocks[0]),
	}
	program = &ir.Program{
		Functions: []*ir.Function{fn},
		Stage:     env.Stage(),
	}
	return program, nil
}

// emitFragmentEpilogue stores the render target color from the ABI
// registers R0..R3 when the shader exits.
func emitFragmentEpilogue(e *ir.Emitter) {
	for component := uint32(0); component < 4; component++ {
		value := e.BitCastF32(e.GetReg(ir.Reg(component)))
		e.SetFragColor(component/4, component%4, value)
	}
}
