package maxwell

import "github.com/gogpu/maxas/ir"

// Environment is the translator's window into the guest shader: raw
// instruction words and the pipeline metadata that came with them.
type Environment interface {
	// ReadInstruction returns the 64-bit instruction word at a byte
	// address.
	ReadInstruction(address uint32) uint64

	// Stage returns the shader stage being translated.
	Stage() ir.Stage
}
