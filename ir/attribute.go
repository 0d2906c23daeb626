package ir

import "fmt"

// Attribute names a hardware input/output attribute slot. Generic
// varyings occupy four consecutive scalar slots per vector starting at
// Generic0X.
type Attribute uint16

const (
	AttributePointSize Attribute = 0x04

	AttributePositionX Attribute = 0x1C
	AttributePositionY Attribute = 0x1D
	AttributePositionZ Attribute = 0x1E
	AttributePositionW Attribute = 0x1F

	AttributeGeneric0X Attribute = 0x20

	AttributeFrontFace Attribute = 0xFF

	// NumGenerics is the count of generic vec4 varyings.
	NumGenerics = 32
)

// IsGeneric reports whether the attribute is a generic varying slot.
func IsGeneric(a Attribute) bool {
	return a >= AttributeGeneric0X && a < AttributeGeneric0X+NumGenerics*4
}

// GenericAttributeIndex returns the varying index of a generic slot.
func GenericAttributeIndex(a Attribute) uint32 {
	if !IsGeneric(a) {
		panic(InvalidArgumentf("attribute %v is not generic", a))
	}
	return uint32(a-AttributeGeneric0X) / 4
}

// GenericAttributeElement returns the component (0=x .. 3=w) of a
// generic slot.
func GenericAttributeElement(a Attribute) uint32 {
	return uint32(a) % 4
}

func (a Attribute) String() string {
	switch a {
	case AttributePointSize:
		return "PointSize"
	case AttributePositionX, AttributePositionY, AttributePositionZ, AttributePositionW:
		return fmt.Sprintf("Position%c", "XYZW"[a-AttributePositionX])
	case AttributeFrontFace:
		return "FrontFace"
	}
	if IsGeneric(a) {
		return fmt.Sprintf("Generic%d%c", GenericAttributeIndex(a), "XYZW"[GenericAttributeElement(a)])
	}
	return fmt.Sprintf("Attribute(%#x)", uint16(a))
}
