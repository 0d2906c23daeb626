package maxwell

import "github.com/gogpu/maxas/ir"

// Opcode enumerates the decoded Maxwell instructions the translator
// understands.
type Opcode uint16

const (
	OpMOVReg Opcode = iota
	OpMOV32I
	OpS2R
	OpFADDReg
	OpFMULReg
	OpFFMAReg
	OpFCMPReg
	OpFCMPImm
	OpFSETPReg
	OpIADDReg
	OpIADD32I
	OpISETPReg
	OpSHLReg
	OpSHRReg
	OpLOPReg
	OpSELReg
	OpIPA
	OpLDC
	OpTEX
	OpTLD4
	OpBRA
	OpEXIT
	OpNOP

	numMaxwellOpcodes
)

var opcodeNames = [numMaxwellOpcodes]string{
	"MOV_reg", "MOV32I", "S2R", "FADD_reg", "FMUL_reg", "FFMA_reg",
	"FCMP_reg", "FCMP_imm", "FSETP_reg", "IADD_reg", "IADD32I",
	"ISETP_reg", "SHL_reg", "SHR_reg", "LOP_reg", "SEL_reg", "IPA",
	"LDC", "TEX", "TLD4", "BRA", "EXIT", "NOP",
}

func (op Opcode) String() string {
	if op < numMaxwellOpcodes {
		return opcodeNames[op]
	}
	return "Opcode(?)"
}

// instEncoding matches one instruction: (word & mask) == value.
type instEncoding struct {
	opcode Opcode
	mask   uint64
	value  uint64
}

// The encoding table. Patterns are matched top to bottom; more
// specific masks come first.
var encodings = []instEncoding{
	{OpMOV32I, 0xFF00_0000_0000_0000, 0x0100_0000_0000_0000},
	{OpIADD32I, 0xFC00_0000_0000_0000, 0x1C00_0000_0000_0000},
	{OpFCMPImm, 0xFFF8_0000_0000_0000, 0x36A8_0000_0000_0000},
	{OpFFMAReg, 0xFFF8_0000_0000_0000, 0x59A0_0000_0000_0000},
	{OpFSETPReg, 0xFFF8_0000_0000_0000, 0x5BB0_0000_0000_0000},
	{OpFCMPReg, 0xFFF8_0000_0000_0000, 0x5BA0_0000_0000_0000},
	{OpISETPReg, 0xFFF8_0000_0000_0000, 0x5B60_0000_0000_0000},
	{OpIADDReg, 0xFFF8_0000_0000_0000, 0x5C10_0000_0000_0000},
	{OpSHRReg, 0xFFF8_0000_0000_0000, 0x5C28_0000_0000_0000},
	{OpLOPReg, 0xFFF8_0000_0000_0000, 0x5C40_0000_0000_0000},
	{OpSHLReg, 0xFFF8_0000_0000_0000, 0x5C48_0000_0000_0000},
	{OpFADDReg, 0xFFF8_0000_0000_0000, 0x5C58_0000_0000_0000},
	{OpFMULReg, 0xFFF8_0000_0000_0000, 0x5C68_0000_0000_0000},
	{OpMOVReg, 0xFFF8_0000_0000_0000, 0x5C98_0000_0000_0000},
	{OpSELReg, 0xFFF8_0000_0000_0000, 0x5CA0_0000_0000_0000},
	{OpTLD4, 0xFFF8_0000_0000_0000, 0xC838_0000_0000_0000},
	{OpTEX, 0xFC00_0000_0000_0000, 0xC000_0000_0000_0000},
	{OpIPA, 0xFF00_0000_0000_0000, 0xE000_0000_0000_0000},
	{OpBRA, 0xFFF0_0000_0000_0000, 0xE240_0000_0000_0000},
	{OpEXIT, 0xFFF0_0000_0000_0000, 0xE300_0000_0000_0000},
	{OpLDC, 0xFFF8_0000_0000_0000, 0xEF90_0000_0000_0000},
	{OpNOP, 0xFFF8_0000_0000_0000, 0x50B0_0000_0000_0000},
}

// Decode matches an instruction word against the encoding table.
func Decode(insn uint64) (Opcode, error) {
	for _, enc := range encodings {
		if insn&enc.mask == enc.value {
			return enc.opcode, nil
		}
	}
	return 0, ir.DecodeErrorf("unknown instruction %#016x", insn)
}

// bitField extracts count bits starting at position pos.
func bitField(insn uint64, pos, count uint) uint64 {
	return (insn >> pos) & (1<<count - 1)
}

// signedBitField extracts a sign-extended field.
func signedBitField(insn uint64, pos, count uint) int64 {
	raw := bitField(insn, pos, count)
	sign := uint64(1) << (count - 1)
	return int64(raw^sign) - int64(sign)
}
