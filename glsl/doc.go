// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl lowers optimized IR to GLSL 4.5 source text.
//
// The backend shares the register allocation contract of the assembly
// backend: instruction results are defined once, operands are consumed
// on use, and the pool returns to its initial state at the end of
// emission. Registers here are typed GLSL variables identified by a
// bit-packed Id.
//
// Control flow emission is driven by the structure hints the frontend
// lays down (SelectionMerge); unstructured branches are not expressible
// in GLSL and are rejected.
package glsl
