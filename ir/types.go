package ir

import "strings"

// Type identifies the type of a Value. Types are bit flags so that an
// opcode signature can accept a union of types (for example a texture
// coordinate that may be any vector width).
type Type uint32

const (
	TypeVoid   Type = 0
	TypeOpaque Type = 1 << iota
	TypeLabel
	TypeReg
	TypePred
	TypeAttribute
	TypeU1
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeF16
	TypeF32
	TypeF64
	TypeU32x2
	TypeU32x3
	TypeU32x4
	TypeF16x2
	TypeF16x3
	TypeF16x4
	TypeF32x2
	TypeF32x3
	TypeF32x4
	TypeF64x2
	TypeF64x3
	TypeF64x4
)

var typeNames = map[Type]string{
	TypeVoid:      "Void",
	TypeOpaque:    "Opaque",
	TypeLabel:     "Label",
	TypeReg:       "Reg",
	TypePred:      "Pred",
	TypeAttribute: "Attribute",
	TypeU1:        "U1",
	TypeU8:        "U8",
	TypeU16:       "U16",
	TypeU32:       "U32",
	TypeU64:       "U64",
	TypeF16:       "F16",
	TypeF32:       "F32",
	TypeF64:       "F64",
	TypeU32x2:     "U32x2",
	TypeU32x3:     "U32x3",
	TypeU32x4:     "U32x4",
	TypeF16x2:     "F16x2",
	TypeF16x3:     "F16x3",
	TypeF16x4:     "F16x4",
	TypeF32x2:     "F32x2",
	TypeF32x3:     "F32x3",
	TypeF32x4:     "F32x4",
	TypeF64x2:     "F64x2",
	TypeF64x3:     "F64x3",
	TypeF64x4:     "F64x4",
}

// String returns a readable name for the type. Union types are joined
// with "|".
func (t Type) String() string {
	if t == TypeVoid {
		return "Void"
	}
	if name, ok := typeNames[t]; ok {
		return name
	}
	var parts []string
	for bit := Type(1); bit != 0 && bit <= t; bit <<= 1 {
		if t&bit != 0 {
			parts = append(parts, typeNames[bit])
		}
	}
	return strings.Join(parts, "|")
}

// Compatible reports whether a value of type t can be passed where want
// is expected. TypeOpaque accepts any type.
func Compatible(t, want Type) bool {
	if want == TypeOpaque || t == TypeOpaque {
		return true
	}
	if want == TypeVoid {
		return t == TypeVoid
	}
	return t&want != 0
}
