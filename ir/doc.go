// Package ir defines the intermediate representation for maxas.
//
// The IR is a typed, value-based SSA representation with a
// block-structured control flow graph. The Maxwell frontend emits naive
// register and predicate accesses into it, the opt package rewrites
// those into proper SSA form, and the glasm and glsl backends lower the
// result to text.
//
// Instructions are allocated individually and referenced by pointer for
// the whole lifetime of a compile; a Value holding an instruction
// reference stays valid until the owning Program is dropped. Values
// compare by pointer identity for instruction references.
package ir
