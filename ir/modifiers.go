package ir

// FmzMode controls denormal flushing of a floating point operation.
type FmzMode uint8

const (
	FmzNone FmzMode = iota
	FmzFTZ
	FmzFMZ
)

// FpRounding selects the rounding mode of a floating point operation.
type FpRounding uint8

const (
	RoundNearestEven FpRounding = iota
	RoundTowardZero
	RoundTowardPositive
	RoundTowardNegative
)

// FpControl is the flags payload of floating point opcodes.
type FpControl struct {
	NoContraction bool
	Rounding      FpRounding
	FmzMode       FmzMode
}

// Pack encodes the control into an instruction flags word.
func (c FpControl) Pack() uint64 {
	raw := uint64(c.Rounding)<<1 | uint64(c.FmzMode)<<3
	if c.NoContraction {
		raw |= 1
	}
	return raw
}

// UnpackFpControl decodes an instruction flags word.
func UnpackFpControl(raw uint64) FpControl {
	return FpControl{
		NoContraction: raw&1 != 0,
		Rounding:      FpRounding(raw >> 1 & 3),
		FmzMode:       FmzMode(raw >> 3 & 3),
	}
}

// TextureType is the shape dimension of a texture instruction.
type TextureType uint8

const (
	TextureColor1D TextureType = iota
	TextureColorArray1D
	TextureColor2D
	TextureColorArray2D
	TextureColor3D
	TextureColorCube
	TextureColorArrayCube
	TextureBuffer
)

var textureTypeNames = [...]string{
	"Color1D", "ColorArray1D", "Color2D", "ColorArray2D",
	"Color3D", "ColorCube", "ColorArrayCube", "Buffer",
}

func (t TextureType) String() string {
	if int(t) < len(textureTypeNames) {
		return textureTypeNames[t]
	}
	return "TextureType(?)"
}

// TextureInstInfo is the flags payload of texture opcodes.
type TextureInstInfo struct {
	Type            TextureType
	IsDepth         bool
	HasBias         bool
	HasLodClamp     bool
	GatherComponent uint8
	DescriptorIndex uint32
}

// Pack encodes the info into an instruction flags word.
func (t TextureInstInfo) Pack() uint64 {
	raw := uint64(t.Type) | uint64(t.GatherComponent&3)<<7 | uint64(t.DescriptorIndex)<<9
	if t.IsDepth {
		raw |= 1 << 4
	}
	if t.HasBias {
		raw |= 1 << 5
	}
	if t.HasLodClamp {
		raw |= 1 << 6
	}
	return raw
}

// UnpackTextureInstInfo decodes an instruction flags word.
func UnpackTextureInstInfo(raw uint64) TextureInstInfo {
	return TextureInstInfo{
		Type:            TextureType(raw & 0xF),
		IsDepth:         raw&(1<<4) != 0,
		HasBias:         raw&(1<<5) != 0,
		HasLodClamp:     raw&(1<<6) != 0,
		GatherComponent: uint8(raw >> 7 & 3),
		DescriptorIndex: uint32(raw >> 9),
	}
}
