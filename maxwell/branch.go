package maxwell

// Flow control instructions are consumed by the external control flow
// recovery layer before translation; the block graph it hands to
// TranslateProgram already encodes their effect, so the translator
// treats them as padding.

// BRA is handled by the flow layer.
func (v *TranslatorVisitor) BRA(insn uint64) {}

// EXIT is handled by the flow layer.
func (v *TranslatorVisitor) EXIT(insn uint64) {}

// NOP does nothing.
func (v *TranslatorVisitor) NOP(insn uint64) {}
