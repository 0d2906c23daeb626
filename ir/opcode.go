package ir

import "fmt"

// Opcode enumerates every IR operation.
type Opcode uint16

const (
	OpVoid Opcode = iota
	OpIdentity
	OpPhi

	// Control flow
	OpBranch
	OpBranchConditional
	OpLoopMerge
	OpSelectionMerge
	OpReturn
	OpJoin
	OpUnreachable
	OpDemoteToHelperInvocation

	// Barriers
	OpBarrier
	OpWorkgroupMemoryBarrier
	OpDeviceMemoryBarrier

	// Context getters and setters
	OpGetRegister
	OpSetRegister
	OpGetPred
	OpSetPred
	OpGetGotoVariable
	OpSetGotoVariable
	OpGetIndirectBranchVariable
	OpSetIndirectBranchVariable
	OpGetCbuf
	OpGetAttribute
	OpSetAttribute
	OpGetZFlag
	OpGetSFlag
	OpGetCFlag
	OpGetOFlag
	OpSetZFlag
	OpSetSFlag
	OpSetCFlag
	OpSetOFlag
	OpSetFragColor
	OpSetFragDepth
	OpWorkgroupID
	OpLocalInvocationID
	OpInvocationID
	OpIsHelperInvocation

	// Undefined
	OpUndefU1
	OpUndefU8
	OpUndefU16
	OpUndefU32
	OpUndefU64

	// Global memory
	OpLoadGlobalU8
	OpLoadGlobalS8
	OpLoadGlobalU16
	OpLoadGlobalS16
	OpLoadGlobal32
	OpLoadGlobal64
	OpLoadGlobal128
	OpWriteGlobalU8
	OpWriteGlobalS8
	OpWriteGlobalU16
	OpWriteGlobalS16
	OpWriteGlobal32
	OpWriteGlobal64
	OpWriteGlobal128

	// Storage buffers
	OpLoadStorageU8
	OpLoadStorageS8
	OpLoadStorageU16
	OpLoadStorageS16
	OpLoadStorage32
	OpLoadStorage64
	OpLoadStorage128
	OpWriteStorageU8
	OpWriteStorageS8
	OpWriteStorageU16
	OpWriteStorageS16
	OpWriteStorage32
	OpWriteStorage64
	OpWriteStorage128

	// Local and shared memory
	OpLoadLocal
	OpWriteLocal
	OpLoadShared32
	OpWriteShared32

	// Composites
	OpCompositeConstructU32x2
	OpCompositeConstructU32x3
	OpCompositeConstructU32x4
	OpCompositeExtractU32x2
	OpCompositeExtractU32x3
	OpCompositeExtractU32x4
	OpCompositeInsertU32x2
	OpCompositeInsertU32x3
	OpCompositeInsertU32x4
	OpCompositeConstructF16x2
	OpCompositeConstructF16x3
	OpCompositeConstructF16x4
	OpCompositeExtractF16x2
	OpCompositeExtractF16x3
	OpCompositeExtractF16x4
	OpCompositeInsertF16x2
	OpCompositeInsertF16x3
	OpCompositeInsertF16x4
	OpCompositeConstructF32x2
	OpCompositeConstructF32x3
	OpCompositeConstructF32x4
	OpCompositeExtractF32x2
	OpCompositeExtractF32x3
	OpCompositeExtractF32x4
	OpCompositeInsertF32x2
	OpCompositeInsertF32x3
	OpCompositeInsertF32x4
	OpCompositeConstructF64x2
	OpCompositeConstructF64x3
	OpCompositeConstructF64x4
	OpCompositeExtractF64x2
	OpCompositeExtractF64x3
	OpCompositeExtractF64x4
	OpCompositeInsertF64x2
	OpCompositeInsertF64x3
	OpCompositeInsertF64x4

	// Select
	OpSelectU1
	OpSelectU8
	OpSelectU16
	OpSelectU32
	OpSelectU64
	OpSelectF16
	OpSelectF32
	OpSelectF64

	// Bitcasts and packs
	OpBitCastU16F16
	OpBitCastU32F32
	OpBitCastU64F64
	OpBitCastF16U16
	OpBitCastF32U32
	OpBitCastF64U64
	OpPackUint2x32
	OpUnpackUint2x32
	OpPackFloat2x16
	OpUnpackFloat2x16
	OpPackHalf2x16
	OpUnpackHalf2x16
	OpPackDouble2x32
	OpUnpackDouble2x32

	// Pseudo-operations: secondary results of a producing instruction
	OpGetZeroFromOp
	OpGetSignFromOp
	OpGetCarryFromOp
	OpGetOverflowFromOp
	OpGetSparseFromOp

	// Floating point
	OpFPAbs16
	OpFPAbs32
	OpFPAbs64
	OpFPAdd16
	OpFPAdd32
	OpFPAdd64
	OpFPFma16
	OpFPFma32
	OpFPFma64
	OpFPMax32
	OpFPMax64
	OpFPMin32
	OpFPMin64
	OpFPMul16
	OpFPMul32
	OpFPMul64
	OpFPNeg16
	OpFPNeg32
	OpFPNeg64
	OpFPRecip32
	OpFPRecip64
	OpFPRecipSqrt32
	OpFPRecipSqrt64
	OpFPSqrt
	OpFPSin
	OpFPCos
	OpFPExp2
	OpFPLog2
	OpFPSaturate16
	OpFPSaturate32
	OpFPSaturate64
	OpFPClamp16
	OpFPClamp32
	OpFPClamp64
	OpFPRoundEven16
	OpFPRoundEven32
	OpFPRoundEven64
	OpFPFloor16
	OpFPFloor32
	OpFPFloor64
	OpFPCeil16
	OpFPCeil32
	OpFPCeil64
	OpFPTrunc16
	OpFPTrunc32
	OpFPTrunc64

	// Floating point comparisons
	OpFPOrdEqual32
	OpFPOrdEqual64
	OpFPUnordEqual32
	OpFPUnordEqual64
	OpFPOrdNotEqual32
	OpFPOrdNotEqual64
	OpFPUnordNotEqual32
	OpFPUnordNotEqual64
	OpFPOrdLessThan32
	OpFPOrdLessThan64
	OpFPUnordLessThan32
	OpFPUnordLessThan64
	OpFPOrdGreaterThan32
	OpFPOrdGreaterThan64
	OpFPUnordGreaterThan32
	OpFPUnordGreaterThan64
	OpFPOrdLessThanEqual32
	OpFPOrdLessThanEqual64
	OpFPUnordLessThanEqual32
	OpFPUnordLessThanEqual64
	OpFPOrdGreaterThanEqual32
	OpFPOrdGreaterThanEqual64
	OpFPUnordGreaterThanEqual32
	OpFPUnordGreaterThanEqual64
	OpFPIsNan32
	OpFPIsNan64

	// Integer
	OpIAdd32
	OpIAdd64
	OpISub32
	OpISub64
	OpIMul32
	OpINeg32
	OpINeg64
	OpIAbs32
	OpShiftLeftLogical32
	OpShiftLeftLogical64
	OpShiftRightLogical32
	OpShiftRightLogical64
	OpShiftRightArithmetic32
	OpShiftRightArithmetic64
	OpBitwiseAnd32
	OpBitwiseOr32
	OpBitwiseXor32
	OpBitwiseNot32
	OpBitFieldInsert
	OpBitFieldSExtract
	OpBitFieldUExtract
	OpBitReverse32
	OpPopCount32
	OpFindSMsb32
	OpFindUMsb32
	OpSMin32
	OpUMin32
	OpSMax32
	OpUMax32
	OpSClamp32
	OpUClamp32

	// Integer comparisons
	OpSLessThan
	OpULessThan
	OpIEqual
	OpSLessThanEqual
	OpULessThanEqual
	OpSGreaterThan
	OpUGreaterThan
	OpINotEqual
	OpSGreaterThanEqual
	OpUGreaterThanEqual

	// Logical
	OpLogicalOr
	OpLogicalAnd
	OpLogicalXor
	OpLogicalNot

	// Conversions
	OpConvertS32F32
	OpConvertS32F64
	OpConvertU32F32
	OpConvertU32F64
	OpConvertF32S32
	OpConvertF32U32
	OpConvertF64S32
	OpConvertF64U32
	OpConvertF16F32
	OpConvertF32F16
	OpConvertF32F64
	OpConvertF64F32
	OpConvertU32U64
	OpConvertU64U32

	// Textures
	OpBindlessImageSampleImplicitLod
	OpBindlessImageSampleExplicitLod
	OpBindlessImageSampleDrefImplicitLod
	OpBindlessImageSampleDrefExplicitLod
	OpBindlessImageGather
	OpBindlessImageGatherDref
	OpBindlessImageFetch
	OpBindlessImageQueryDimensions
	OpBoundImageSampleImplicitLod
	OpBoundImageSampleExplicitLod
	OpBoundImageSampleDrefImplicitLod
	OpBoundImageSampleDrefExplicitLod
	OpBoundImageGather
	OpBoundImageGatherDref
	OpBoundImageFetch
	OpBoundImageQueryDimensions
	OpImageSampleImplicitLod
	OpImageSampleExplicitLod
	OpImageSampleDrefImplicitLod
	OpImageSampleDrefExplicitLod
	OpImageGather
	OpImageGatherDref
	OpImageFetch
	OpImageQueryDimensions
	OpImageQueryLod
	OpImageGradient
	OpImageRead
	OpImageWrite

	// Warp operations
	OpVoteAll
	OpVoteAny
	OpVoteEqual
	OpSubgroupBallot

	numOpcodes
)

// opcodeInfo declares the signature of an opcode: its result type, its
// operand types, and whether it has observable side effects (and so
// must survive dead code elimination).
type opcodeInfo struct {
	name        string
	typ         Type
	args        []Type
	sideEffects bool
}

// Shorthands keep the table readable.
const (
	tV     = TypeVoid
	tOpq   = TypeOpaque
	tLbl   = TypeLabel
	tR     = TypeReg
	tP     = TypePred
	tA     = TypeAttribute
	tU1    = TypeU1
	tU8    = TypeU8
	tU16   = TypeU16
	tU32   = TypeU32
	tU64   = TypeU64
	tF16   = TypeF16
	tF32   = TypeF32
	tF64   = TypeF64
	tU32x2 = TypeU32x2
	tU32x3 = TypeU32x3
	tU32x4 = TypeU32x4
	tF16x2 = TypeF16x2
	tF16x3 = TypeF16x3
	tF16x4 = TypeF16x4
	tF32x2 = TypeF32x2
	tF32x3 = TypeF32x3
	tF32x4 = TypeF32x4
	tF64x2 = TypeF64x2
	tF64x3 = TypeF64x3
	tF64x4 = TypeF64x4
)

func args(a ...Type) []Type { return a }

var opcodeTable = [numOpcodes]opcodeInfo{
	OpVoid:     {name: "Void", typ: tV},
	OpIdentity: {name: "Identity", typ: tOpq, args: args(tOpq)},
	OpPhi:      {name: "Phi", typ: tOpq},

	OpBranch:                   {name: "Branch", typ: tV, args: args(tLbl), sideEffects: true},
	OpBranchConditional:        {name: "BranchConditional", typ: tV, args: args(tU1, tLbl, tLbl), sideEffects: true},
	OpLoopMerge:                {name: "LoopMerge", typ: tV, args: args(tLbl, tLbl), sideEffects: true},
	OpSelectionMerge:           {name: "SelectionMerge", typ: tV, args: args(tLbl), sideEffects: true},
	OpReturn:                   {name: "Return", typ: tV, sideEffects: true},
	OpJoin:                     {name: "Join", typ: tV, sideEffects: true},
	OpUnreachable:              {name: "Unreachable", typ: tV, sideEffects: true},
	OpDemoteToHelperInvocation: {name: "DemoteToHelperInvocation", typ: tV, sideEffects: true},

	OpBarrier:                {name: "Barrier", typ: tV, sideEffects: true},
	OpWorkgroupMemoryBarrier: {name: "WorkgroupMemoryBarrier", typ: tV, sideEffects: true},
	OpDeviceMemoryBarrier:    {name: "DeviceMemoryBarrier", typ: tV, sideEffects: true},

	OpGetRegister:               {name: "GetRegister", typ: tU32, args: args(tR)},
	OpSetRegister:               {name: "SetRegister", typ: tV, args: args(tR, tU32), sideEffects: true},
	OpGetPred:                   {name: "GetPred", typ: tU1, args: args(tP)},
	OpSetPred:                   {name: "SetPred", typ: tV, args: args(tP, tU1), sideEffects: true},
	OpGetGotoVariable:           {name: "GetGotoVariable", typ: tU1, args: args(tU32)},
	OpSetGotoVariable:           {name: "SetGotoVariable", typ: tV, args: args(tU32, tU1), sideEffects: true},
	OpGetIndirectBranchVariable: {name: "GetIndirectBranchVariable", typ: tU32},
	OpSetIndirectBranchVariable: {name: "SetIndirectBranchVariable", typ: tV, args: args(tU32), sideEffects: true},
	OpGetCbuf:                   {name: "GetCbuf", typ: tU32, args: args(tU32, tU32)},
	OpGetAttribute:              {name: "GetAttribute", typ: tF32, args: args(tA)},
	OpSetAttribute:              {name: "SetAttribute", typ: tV, args: args(tA, tF32), sideEffects: true},
	OpGetZFlag:                  {name: "GetZFlag", typ: tU1},
	OpGetSFlag:                  {name: "GetSFlag", typ: tU1},
	OpGetCFlag:                  {name: "GetCFlag", typ: tU1},
	OpGetOFlag:                  {name: "GetOFlag", typ: tU1},
	OpSetZFlag:                  {name: "SetZFlag", typ: tV, args: args(tU1), sideEffects: true},
	OpSetSFlag:                  {name: "SetSFlag", typ: tV, args: args(tU1), sideEffects: true},
	OpSetCFlag:                  {name: "SetCFlag", typ: tV, args: args(tU1), sideEffects: true},
	OpSetOFlag:                  {name: "SetOFlag", typ: tV, args: args(tU1), sideEffects: true},
	OpSetFragColor:              {name: "SetFragColor", typ: tV, args: args(tU32, tU32, tF32), sideEffects: true},
	OpSetFragDepth:              {name: "SetFragDepth", typ: tV, args: args(tF32), sideEffects: true},
	OpWorkgroupID:               {name: "WorkgroupID", typ: tU32x3},
	OpLocalInvocationID:         {name: "LocalInvocationID", typ: tU32x3},
	OpInvocationID:              {name: "InvocationID", typ: tU32},
	OpIsHelperInvocation:        {name: "IsHelperInvocation", typ: tU1},

	OpUndefU1:  {name: "UndefU1", typ: tU1},
	OpUndefU8:  {name: "UndefU8", typ: tU8},
	OpUndefU16: {name: "UndefU16", typ: tU16},
	OpUndefU32: {name: "UndefU32", typ: tU32},
	OpUndefU64: {name: "UndefU64", typ: tU64},

	OpLoadGlobalU8:   {name: "LoadGlobalU8", typ: tU32, args: args(tU64)},
	OpLoadGlobalS8:   {name: "LoadGlobalS8", typ: tU32, args: args(tU64)},
	OpLoadGlobalU16:  {name: "LoadGlobalU16", typ: tU32, args: args(tU64)},
	OpLoadGlobalS16:  {name: "LoadGlobalS16", typ: tU32, args: args(tU64)},
	OpLoadGlobal32:   {name: "LoadGlobal32", typ: tU32, args: args(tU64)},
	OpLoadGlobal64:   {name: "LoadGlobal64", typ: tU32x2, args: args(tU64)},
	OpLoadGlobal128:  {name: "LoadGlobal128", typ: tU32x4, args: args(tU64)},
	OpWriteGlobalU8:  {name: "WriteGlobalU8", typ: tV, args: args(tU64, tU32), sideEffects: true},
	OpWriteGlobalS8:  {name: "WriteGlobalS8", typ: tV, args: args(tU64, tU32), sideEffects: true},
	OpWriteGlobalU16: {name: "WriteGlobalU16", typ: tV, args: args(tU64, tU32), sideEffects: true},
	OpWriteGlobalS16: {name: "WriteGlobalS16", typ: tV, args: args(tU64, tU32), sideEffects: true},
	OpWriteGlobal32:  {name: "WriteGlobal32", typ: tV, args: args(tU64, tU32), sideEffects: true},
	OpWriteGlobal64:  {name: "WriteGlobal64", typ: tV, args: args(tU64, tU32x2), sideEffects: true},
	OpWriteGlobal128: {name: "WriteGlobal128", typ: tV, args: args(tU64, tU32x4), sideEffects: true},

	OpLoadStorageU8:   {name: "LoadStorageU8", typ: tU32, args: args(tU32, tU32)},
	OpLoadStorageS8:   {name: "LoadStorageS8", typ: tU32, args: args(tU32, tU32)},
	OpLoadStorageU16:  {name: "LoadStorageU16", typ: tU32, args: args(tU32, tU32)},
	OpLoadStorageS16:  {name: "LoadStorageS16", typ: tU32, args: args(tU32, tU32)},
	OpLoadStorage32:   {name: "LoadStorage32", typ: tU32, args: args(tU32, tU32)},
	OpLoadStorage64:   {name: "LoadStorage64", typ: tU32x2, args: args(tU32, tU32)},
	OpLoadStorage128:  {name: "LoadStorage128", typ: tU32x4, args: args(tU32, tU32)},
	OpWriteStorageU8:  {name: "WriteStorageU8", typ: tV, args: args(tU32, tU32, tU32), sideEffects: true},
	OpWriteStorageS8:  {name: "WriteStorageS8", typ: tV, args: args(tU32, tU32, tU32), sideEffects: true},
	OpWriteStorageU16: {name: "WriteStorageU16", typ: tV, args: args(tU32, tU32, tU32), sideEffects: true},
	OpWriteStorageS16: {name: "WriteStorageS16", typ: tV, args: args(tU32, tU32, tU32), sideEffects: true},
	OpWriteStorage32:  {name: "WriteStorage32", typ: tV, args: args(tU32, tU32, tU32), sideEffects: true},
	OpWriteStorage64:  {name: "WriteStorage64", typ: tV, args: args(tU32, tU32, tU32x2), sideEffects: true},
	OpWriteStorage128: {name: "WriteStorage128", typ: tV, args: args(tU32, tU32, tU32x4), sideEffects: true},

	OpLoadLocal:     {name: "LoadLocal", typ: tU32, args: args(tU32)},
	OpWriteLocal:    {name: "WriteLocal", typ: tV, args: args(tU32, tU32), sideEffects: true},
	OpLoadShared32:  {name: "LoadShared32", typ: tU32, args: args(tU32)},
	OpWriteShared32: {name: "WriteShared32", typ: tV, args: args(tU32, tU32), sideEffects: true},

	OpCompositeConstructU32x2: {name: "CompositeConstructU32x2", typ: tU32x2, args: args(tU32, tU32)},
	OpCompositeConstructU32x3: {name: "CompositeConstructU32x3", typ: tU32x3, args: args(tU32, tU32, tU32)},
	OpCompositeConstructU32x4: {name: "CompositeConstructU32x4", typ: tU32x4, args: args(tU32, tU32, tU32, tU32)},
	OpCompositeExtractU32x2:   {name: "CompositeExtractU32x2", typ: tU32, args: args(tU32x2, tU32)},
	OpCompositeExtractU32x3:   {name: "CompositeExtractU32x3", typ: tU32, args: args(tU32x3, tU32)},
	OpCompositeExtractU32x4:   {name: "CompositeExtractU32x4", typ: tU32, args: args(tU32x4, tU32)},
	OpCompositeInsertU32x2:    {name: "CompositeInsertU32x2", typ: tU32x2, args: args(tU32x2, tU32, tU32)},
	OpCompositeInsertU32x3:    {name: "CompositeInsertU32x3", typ: tU32x3, args: args(tU32x3, tU32, tU32)},
	OpCompositeInsertU32x4:    {name: "CompositeInsertU32x4", typ: tU32x4, args: args(tU32x4, tU32, tU32)},
	OpCompositeConstructF16x2: {name: "CompositeConstructF16x2", typ: tF16x2, args: args(tF16, tF16)},
	OpCompositeConstructF16x3: {name: "CompositeConstructF16x3", typ: tF16x3, args: args(tF16, tF16, tF16)},
	OpCompositeConstructF16x4: {name: "CompositeConstructF16x4", typ: tF16x4, args: args(tF16, tF16, tF16, tF16)},
	OpCompositeExtractF16x2:   {name: "CompositeExtractF16x2", typ: tF16, args: args(tF16x2, tU32)},
	OpCompositeExtractF16x3:   {name: "CompositeExtractF16x3", typ: tF16, args: args(tF16x3, tU32)},
	OpCompositeExtractF16x4:   {name: "CompositeExtractF16x4", typ: tF16, args: args(tF16x4, tU32)},
	OpCompositeInsertF16x2:    {name: "CompositeInsertF16x2", typ: tF16x2, args: args(tF16x2, tF16, tU32)},
	OpCompositeInsertF16x3:    {name: "CompositeInsertF16x3", typ: tF16x3, args: args(tF16x3, tF16, tU32)},
	OpCompositeInsertF16x4:    {name: "CompositeInsertF16x4", typ: tF16x4, args: args(tF16x4, tF16, tU32)},
	OpCompositeConstructF32x2: {name: "CompositeConstructF32x2", typ: tF32x2, args: args(tF32, tF32)},
	OpCompositeConstructF32x3: {name: "CompositeConstructF32x3", typ: tF32x3, args: args(tF32, tF32, tF32)},
	OpCompositeConstructF32x4: {name: "CompositeConstructF32x4", typ: tF32x4, args: args(tF32, tF32, tF32, tF32)},
	OpCompositeExtractF32x2:   {name: "CompositeExtractF32x2", typ: tF32, args: args(tF32x2, tU32)},
	OpCompositeExtractF32x3:   {name: "CompositeExtractF32x3", typ: tF32, args: args(tF32x3, tU32)},
	OpCompositeExtractF32x4:   {name: "CompositeExtractF32x4", typ: tF32, args: args(tF32x4, tU32)},
	OpCompositeInsertF32x2:    {name: "CompositeInsertF32x2", typ: tF32x2, args: args(tF32x2, tF32, tU32)},
	OpCompositeInsertF32x3:    {name: "CompositeInsertF32x3", typ: tF32x3, args: args(tF32x3, tF32, tU32)},
	OpCompositeInsertF32x4:    {name: "CompositeInsertF32x4", typ: tF32x4, args: args(tF32x4, tF32, tU32)},
	OpCompositeConstructF64x2: {name: "CompositeConstructF64x2", typ: tF64x2, args: args(tF64, tF64)},
	OpCompositeConstructF64x3: {name: "CompositeConstructF64x3", typ: tF64x3, args: args(tF64, tF64, tF64)},
	OpCompositeConstructF64x4: {name: "CompositeConstructF64x4", typ: tF64x4, args: args(tF64, tF64, tF64, tF64)},
	OpCompositeExtractF64x2:   {name: "CompositeExtractF64x2", typ: tF64, args: args(tF64x2, tU32)},
	OpCompositeExtractF64x3:   {name: "CompositeExtractF64x3", typ: tF64, args: args(tF64x3, tU32)},
	OpCompositeExtractF64x4:   {name: "CompositeExtractF64x4", typ: tF64, args: args(tF64x4, tU32)},
	OpCompositeInsertF64x2:    {name: "CompositeInsertF64x2", typ: tF64x2, args: args(tF64x2, tF64, tU32)},
	OpCompositeInsertF64x3:    {name: "CompositeInsertF64x3", typ: tF64x3, args: args(tF64x3, tF64, tU32)},
	OpCompositeInsertF64x4:    {name: "CompositeInsertF64x4", typ: tF64x4, args: args(tF64x4, tF64, tU32)},

	OpSelectU1:  {name: "SelectU1", typ: tU1, args: args(tU1, tU1, tU1)},
	OpSelectU8:  {name: "SelectU8", typ: tU8, args: args(tU1, tU8, tU8)},
	OpSelectU16: {name: "SelectU16", typ: tU16, args: args(tU1, tU16, tU16)},
	OpSelectU32: {name: "SelectU32", typ: tU32, args: args(tU1, tU32, tU32)},
	OpSelectU64: {name: "SelectU64", typ: tU64, args: args(tU1, tU64, tU64)},
	OpSelectF16: {name: "SelectF16", typ: tF16, args: args(tU1, tF16, tF16)},
	OpSelectF32: {name: "SelectF32", typ: tF32, args: args(tU1, tF32, tF32)},
	OpSelectF64: {name: "SelectF64", typ: tF64, args: args(tU1, tF64, tF64)},

	OpBitCastU16F16:    {name: "BitCastU16F16", typ: tU16, args: args(tF16)},
	OpBitCastU32F32:    {name: "BitCastU32F32", typ: tU32, args: args(tF32)},
	OpBitCastU64F64:    {name: "BitCastU64F64", typ: tU64, args: args(tF64)},
	OpBitCastF16U16:    {name: "BitCastF16U16", typ: tF16, args: args(tU16)},
	OpBitCastF32U32:    {name: "BitCastF32U32", typ: tF32, args: args(tU32)},
	OpBitCastF64U64:    {name: "BitCastF64U64", typ: tF64, args: args(tU64)},
	OpPackUint2x32:     {name: "PackUint2x32", typ: tU64, args: args(tU32x2)},
	OpUnpackUint2x32:   {name: "UnpackUint2x32", typ: tU32x2, args: args(tU64)},
	OpPackFloat2x16:    {name: "PackFloat2x16", typ: tU32, args: args(tF16x2)},
	OpUnpackFloat2x16:  {name: "UnpackFloat2x16", typ: tF16x2, args: args(tU32)},
	OpPackHalf2x16:     {name: "PackHalf2x16", typ: tU32, args: args(tF32x2)},
	OpUnpackHalf2x16:   {name: "UnpackHalf2x16", typ: tF32x2, args: args(tU32)},
	OpPackDouble2x32:   {name: "PackDouble2x32", typ: tF64, args: args(tU32x2)},
	OpUnpackDouble2x32: {name: "UnpackDouble2x32", typ: tU32x2, args: args(tF64)},

	OpGetZeroFromOp:     {name: "GetZeroFromOp", typ: tU1, args: args(tOpq)},
	OpGetSignFromOp:     {name: "GetSignFromOp", typ: tU1, args: args(tOpq)},
	OpGetCarryFromOp:    {name: "GetCarryFromOp", typ: tU1, args: args(tOpq)},
	OpGetOverflowFromOp: {name: "GetOverflowFromOp", typ: tU1, args: args(tOpq)},
	OpGetSparseFromOp:   {name: "GetSparseFromOp", typ: tU1, args: args(tOpq)},

	OpFPAbs16:       {name: "FPAbs16", typ: tF16, args: args(tF16)},
	OpFPAbs32:       {name: "FPAbs32", typ: tF32, args: args(tF32)},
	OpFPAbs64:       {name: "FPAbs64", typ: tF64, args: args(tF64)},
	OpFPAdd16:       {name: "FPAdd16", typ: tF16, args: args(tF16, tF16)},
	OpFPAdd32:       {name: "FPAdd32", typ: tF32, args: args(tF32, tF32)},
	OpFPAdd64:       {name: "FPAdd64", typ: tF64, args: args(tF64, tF64)},
	OpFPFma16:       {name: "FPFma16", typ: tF16, args: args(tF16, tF16, tF16)},
	OpFPFma32:       {name: "FPFma32", typ: tF32, args: args(tF32, tF32, tF32)},
	OpFPFma64:       {name: "FPFma64", typ: tF64, args: args(tF64, tF64, tF64)},
	OpFPMax32:       {name: "FPMax32", typ: tF32, args: args(tF32, tF32)},
	OpFPMax64:       {name: "FPMax64", typ: tF64, args: args(tF64, tF64)},
	OpFPMin32:       {name: "FPMin32", typ: tF32, args: args(tF32, tF32)},
	OpFPMin64:       {name: "FPMin64", typ: tF64, args: args(tF64, tF64)},
	OpFPMul16:       {name: "FPMul16", typ: tF16, args: args(tF16, tF16)},
	OpFPMul32:       {name: "FPMul32", typ: tF32, args: args(tF32, tF32)},
	OpFPMul64:       {name: "FPMul64", typ: tF64, args: args(tF64, tF64)},
	OpFPNeg16:       {name: "FPNeg16", typ: tF16, args: args(tF16)},
	OpFPNeg32:       {name: "FPNeg32", typ: tF32, args: args(tF32)},
	OpFPNeg64:       {name: "FPNeg64", typ: tF64, args: args(tF64)},
	OpFPRecip32:     {name: "FPRecip32", typ: tF32, args: args(tF32)},
	OpFPRecip64:     {name: "FPRecip64", typ: tF64, args: args(tF64)},
	OpFPRecipSqrt32: {name: "FPRecipSqrt32", typ: tF32, args: args(tF32)},
	OpFPRecipSqrt64: {name: "FPRecipSqrt64", typ: tF64, args: args(tF64)},
	OpFPSqrt:        {name: "FPSqrt", typ: tF32, args: args(tF32)},
	OpFPSin:         {name: "FPSin", typ: tF32, args: args(tF32)},
	OpFPCos:         {name: "FPCos", typ: tF32, args: args(tF32)},
	OpFPExp2:        {name: "FPExp2", typ: tF32, args: args(tF32)},
	OpFPLog2:        {name: "FPLog2", typ: tF32, args: args(tF32)},
	OpFPSaturate16:  {name: "FPSaturate16", typ: tF16, args: args(tF16)},
	OpFPSaturate32:  {name: "FPSaturate32", typ: tF32, args: args(tF32)},
	OpFPSaturate64:  {name: "FPSaturate64", typ: tF64, args: args(tF64)},
	OpFPClamp16:     {name: "FPClamp16", typ: tF16, args: args(tF16, tF16, tF16)},
	OpFPClamp32:     {name: "FPClamp32", typ: tF32, args: args(tF32, tF32, tF32)},
	OpFPClamp64:     {name: "FPClamp64", typ: tF64, args: args(tF64, tF64, tF64)},
	OpFPRoundEven16: {name: "FPRoundEven16", typ: tF16, args: args(tF16)},
	OpFPRoundEven32: {name: "FPRoundEven32", typ: tF32, args: args(tF32)},
	OpFPRoundEven64: {name: "FPRoundEven64", typ: tF64, args: args(tF64)},
	OpFPFloor16:     {name: "FPFloor16", typ: tF16, args: args(tF16)},
	OpFPFloor32:     {name: "FPFloor32", typ: tF32, args: args(tF32)},
	OpFPFloor64:     {name: "FPFloor64", typ: tF64, args: args(tF64)},
	OpFPCeil16:      {name: "FPCeil16", typ: tF16, args: args(tF16)},
	OpFPCeil32:      {name: "FPCeil32", typ: tF32, args: args(tF32)},
	OpFPCeil64:      {name: "FPCeil64", typ: tF64, args: args(tF64)},
	OpFPTrunc16:     {name: "FPTrunc16", typ: tF16, args: args(tF16)},
	OpFPTrunc32:     {name: "FPTrunc32", typ: tF32, args: args(tF32)},
	OpFPTrunc64:     {name: "FPTrunc64", typ: tF64, args: args(tF64)},

	OpFPOrdEqual32:              {name: "FPOrdEqual32", typ: tU1, args: args(tF32, tF32)},
	OpFPOrdEqual64:              {name: "FPOrdEqual64", typ: tU1, args: args(tF64, tF64)},
	OpFPUnordEqual32:            {name: "FPUnordEqual32", typ: tU1, args: args(tF32, tF32)},
	OpFPUnordEqual64:            {name: "FPUnordEqual64", typ: tU1, args: args(tF64, tF64)},
	OpFPOrdNotEqual32:           {name: "FPOrdNotEqual32", typ: tU1, args: args(tF32, tF32)},
	OpFPOrdNotEqual64:           {name: "FPOrdNotEqual64", typ: tU1, args: args(tF64, tF64)},
	OpFPUnordNotEqual32:         {name: "FPUnordNotEqual32", typ: tU1, args: args(tF32, tF32)},
	OpFPUnordNotEqual64:         {name: "FPUnordNotEqual64", typ: tU1, args: args(tF64, tF64)},
	OpFPOrdLessThan32:           {name: "FPOrdLessThan32", typ: tU1, args: args(tF32, tF32)},
	OpFPOrdLessThan64:           {name: "FPOrdLessThan64", typ: tU1, args: args(tF64, tF64)},
	OpFPUnordLessThan32:         {name: "FPUnordLessThan32", typ: tU1, args: args(tF32, tF32)},
	OpFPUnordLessThan64:         {name: "FPUnordLessThan64", typ: tU1, args: args(tF64, tF64)},
	OpFPOrdGreaterThan32:        {name: "FPOrdGreaterThan32", typ: tU1, args: args(tF32, tF32)},
	OpFPOrdGreaterThan64:        {name: "FPOrdGreaterThan64", typ: tU1, args: args(tF64, tF64)},
	OpFPUnordGreaterThan32:      {name: "FPUnordGreaterThan32", typ: tU1, args: args(tF32, tF32)},
	OpFPUnordGreaterThan64:      {name: "FPUnordGreaterThan64", typ: tU1, args: args(tF64, tF64)},
	OpFPOrdLessThanEqual32:      {name: "FPOrdLessThanEqual32", typ: tU1, args: args(tF32, tF32)},
	OpFPOrdLessThanEqual64:      {name: "FPOrdLessThanEqual64", typ: tU1, args: args(tF64, tF64)},
	OpFPUnordLessThanEqual32:    {name: "FPUnordLessThanEqual32", typ: tU1, args: args(tF32, tF32)},
	OpFPUnordLessThanEqual64:    {name: "FPUnordLessThanEqual64", typ: tU1, args: args(tF64, tF64)},
	OpFPOrdGreaterThanEqual32:   {name: "FPOrdGreaterThanEqual32", typ: tU1, args: args(tF32, tF32)},
	OpFPOrdGreaterThanEqual64:   {name: "FPOrdGreaterThanEqual64", typ: tU1, args: args(tF64, tF64)},
	OpFPUnordGreaterThanEqual32: {name: "FPUnordGreaterThanEqual32", typ: tU1, args: args(tF32, tF32)},
	OpFPUnordGreaterThanEqual64: {name: "FPUnordGreaterThanEqual64", typ: tU1, args: args(tF64, tF64)},
	OpFPIsNan32:                 {name: "FPIsNan32", typ: tU1, args: args(tF32)},
	OpFPIsNan64:                 {name: "FPIsNan64", typ: tU1, args: args(tF64)},

	OpIAdd32:                 {name: "IAdd32", typ: tU32, args: args(tU32, tU32)},
	OpIAdd64:                 {name: "IAdd64", typ: tU64, args: args(tU64, tU64)},
	OpISub32:                 {name: "ISub32", typ: tU32, args: args(tU32, tU32)},
	OpISub64:                 {name: "ISub64", typ: tU64, args: args(tU64, tU64)},
	OpIMul32:                 {name: "IMul32", typ: tU32, args: args(tU32, tU32)},
	OpINeg32:                 {name: "INeg32", typ: tU32, args: args(tU32)},
	OpINeg64:                 {name: "INeg64", typ: tU64, args: args(tU64)},
	OpIAbs32:                 {name: "IAbs32", typ: tU32, args: args(tU32)},
	OpShiftLeftLogical32:     {name: "ShiftLeftLogical32", typ: tU32, args: args(tU32, tU32)},
	OpShiftLeftLogical64:     {name: "ShiftLeftLogical64", typ: tU64, args: args(tU64, tU32)},
	OpShiftRightLogical32:    {name: "ShiftRightLogical32", typ: tU32, args: args(tU32, tU32)},
	OpShiftRightLogical64:    {name: "ShiftRightLogical64", typ: tU64, args: args(tU64, tU32)},
	OpShiftRightArithmetic32: {name: "ShiftRightArithmetic32", typ: tU32, args: args(tU32, tU32)},
	OpShiftRightArithmetic64: {name: "ShiftRightArithmetic64", typ: tU64, args: args(tU64, tU32)},
	OpBitwiseAnd32:           {name: "BitwiseAnd32", typ: tU32, args: args(tU32, tU32)},
	OpBitwiseOr32:            {name: "BitwiseOr32", typ: tU32, args: args(tU32, tU32)},
	OpBitwiseXor32:           {name: "BitwiseXor32", typ: tU32, args: args(tU32, tU32)},
	OpBitwiseNot32:           {name: "BitwiseNot32", typ: tU32, args: args(tU32)},
	OpBitFieldInsert:         {name: "BitFieldInsert", typ: tU32, args: args(tU32, tU32, tU32, tU32)},
	OpBitFieldSExtract:       {name: "BitFieldSExtract", typ: tU32, args: args(tU32, tU32, tU32)},
	OpBitFieldUExtract:       {name: "BitFieldUExtract", typ: tU32, args: args(tU32, tU32, tU32)},
	OpBitReverse32:           {name: "BitReverse32", typ: tU32, args: args(tU32)},
	OpPopCount32:             {name: "PopCount32", typ: tU32, args: args(tU32)},
	OpFindSMsb32:             {name: "FindSMsb32", typ: tU32, args: args(tU32)},
	OpFindUMsb32:             {name: "FindUMsb32", typ: tU32, args: args(tU32)},
	OpSMin32:                 {name: "SMin32", typ: tU32, args: args(tU32, tU32)},
	OpUMin32:                 {name: "UMin32", typ: tU32, args: args(tU32, tU32)},
	OpSMax32:                 {name: "SMax32", typ: tU32, args: args(tU32, tU32)},
	OpUMax32:                 {name: "UMax32", typ: tU32, args: args(tU32, tU32)},
	OpSClamp32:               {name: "SClamp32", typ: tU32, args: args(tU32, tU32, tU32)},
	OpUClamp32:               {name: "UClamp32", typ: tU32, args: args(tU32, tU32, tU32)},

	OpSLessThan:         {name: "SLessThan", typ: tU1, args: args(tU32, tU32)},
	OpULessThan:         {name: "ULessThan", typ: tU1, args: args(tU32, tU32)},
	OpIEqual:            {name: "IEqual", typ: tU1, args: args(tU32, tU32)},
	OpSLessThanEqual:    {name: "SLessThanEqual", typ: tU1, args: args(tU32, tU32)},
	OpULessThanEqual:    {name: "ULessThanEqual", typ: tU1, args: args(tU32, tU32)},
	OpSGreaterThan:      {name: "SGreaterThan", typ: tU1, args: args(tU32, tU32)},
	OpUGreaterThan:      {name: "UGreaterThan", typ: tU1, args: args(tU32, tU32)},
	OpINotEqual:         {name: "INotEqual", typ: tU1, args: args(tU32, tU32)},
	OpSGreaterThanEqual: {name: "SGreaterThanEqual", typ: tU1, args: args(tU32, tU32)},
	OpUGreaterThanEqual: {name: "UGreaterThanEqual", typ: tU1, args: args(tU32, tU32)},

	OpLogicalOr:  {name: "LogicalOr", typ: tU1, args: args(tU1, tU1)},
	OpLogicalAnd: {name: "LogicalAnd", typ: tU1, args: args(tU1, tU1)},
	OpLogicalXor: {name: "LogicalXor", typ: tU1, args: args(tU1, tU1)},
	OpLogicalNot: {name: "LogicalNot", typ: tU1, args: args(tU1)},

	OpConvertS32F32: {name: "ConvertS32F32", typ: tU32, args: args(tF32)},
	OpConvertS32F64: {name: "ConvertS32F64", typ: tU32, args: args(tF64)},
	OpConvertU32F32: {name: "ConvertU32F32", typ: tU32, args: args(tF32)},
	OpConvertU32F64: {name: "ConvertU32F64", typ: tU32, args: args(tF64)},
	OpConvertF32S32: {name: "ConvertF32S32", typ: tF32, args: args(tU32)},
	OpConvertF32U32: {name: "ConvertF32U32", typ: tF32, args: args(tU32)},
	OpConvertF64S32: {name: "ConvertF64S32", typ: tF64, args: args(tU32)},
	OpConvertF64U32: {name: "ConvertF64U32", typ: tF64, args: args(tU32)},
	OpConvertF16F32: {name: "ConvertF16F32", typ: tF16, args: args(tF32)},
	OpConvertF32F16: {name: "ConvertF32F16", typ: tF32, args: args(tF16)},
	OpConvertF32F64: {name: "ConvertF32F64", typ: tF32, args: args(tF64)},
	OpConvertF64F32: {name: "ConvertF64F32", typ: tF64, args: args(tF32)},
	OpConvertU32U64: {name: "ConvertU32U64", typ: tU32, args: args(tU64)},
	OpConvertU64U32: {name: "ConvertU64U32", typ: tU64, args: args(tU32)},

	OpBindlessImageSampleImplicitLod:     {name: "BindlessImageSampleImplicitLod", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq)},
	OpBindlessImageSampleExplicitLod:     {name: "BindlessImageSampleExplicitLod", typ: tF32x4, args: args(tU32, tOpq, tF32, tOpq)},
	OpBindlessImageSampleDrefImplicitLod: {name: "BindlessImageSampleDrefImplicitLod", typ: tF32, args: args(tU32, tOpq, tF32, tOpq, tOpq)},
	OpBindlessImageSampleDrefExplicitLod: {name: "BindlessImageSampleDrefExplicitLod", typ: tF32, args: args(tU32, tOpq, tF32, tF32, tOpq)},
	OpBindlessImageGather:                {name: "BindlessImageGather", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq)},
	OpBindlessImageGatherDref:            {name: "BindlessImageGatherDref", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq, tF32)},
	OpBindlessImageFetch:                 {name: "BindlessImageFetch", typ: tF32x4, args: args(tU32, tOpq, tOpq, tU32, tU32)},
	OpBindlessImageQueryDimensions:       {name: "BindlessImageQueryDimensions", typ: tU32x4, args: args(tU32, tU32)},
	OpBoundImageSampleImplicitLod:        {name: "BoundImageSampleImplicitLod", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq)},
	OpBoundImageSampleExplicitLod:        {name: "BoundImageSampleExplicitLod", typ: tF32x4, args: args(tU32, tOpq, tF32, tOpq)},
	OpBoundImageSampleDrefImplicitLod:    {name: "BoundImageSampleDrefImplicitLod", typ: tF32, args: args(tU32, tOpq, tF32, tOpq, tOpq)},
	OpBoundImageSampleDrefExplicitLod:    {name: "BoundImageSampleDrefExplicitLod", typ: tF32, args: args(tU32, tOpq, tF32, tF32, tOpq)},
	OpBoundImageGather:                   {name: "BoundImageGather", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq)},
	OpBoundImageGatherDref:               {name: "BoundImageGatherDref", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq, tF32)},
	OpBoundImageFetch:                    {name: "BoundImageFetch", typ: tF32x4, args: args(tU32, tOpq, tOpq, tU32, tU32)},
	OpBoundImageQueryDimensions:          {name: "BoundImageQueryDimensions", typ: tU32x4, args: args(tU32, tU32)},
	OpImageSampleImplicitLod:             {name: "ImageSampleImplicitLod", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq)},
	OpImageSampleExplicitLod:             {name: "ImageSampleExplicitLod", typ: tF32x4, args: args(tU32, tOpq, tF32, tOpq)},
	OpImageSampleDrefImplicitLod:         {name: "ImageSampleDrefImplicitLod", typ: tF32, args: args(tU32, tOpq, tF32, tOpq, tOpq)},
	OpImageSampleDrefExplicitLod:         {name: "ImageSampleDrefExplicitLod", typ: tF32, args: args(tU32, tOpq, tF32, tF32, tOpq)},
	OpImageGather:                        {name: "ImageGather", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq)},
	OpImageGatherDref:                    {name: "ImageGatherDref", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq, tF32)},
	OpImageFetch:                         {name: "ImageFetch", typ: tF32x4, args: args(tU32, tOpq, tOpq, tU32, tU32)},
	OpImageQueryDimensions:               {name: "ImageQueryDimensions", typ: tU32x4, args: args(tU32, tF32)},
	OpImageQueryLod:                      {name: "ImageQueryLod", typ: tF32x4, args: args(tU32, tOpq)},
	OpImageGradient:                      {name: "ImageGradient", typ: tF32x4, args: args(tU32, tOpq, tOpq, tOpq, tOpq)},
	OpImageRead:                          {name: "ImageRead", typ: tU32x4, args: args(tU32, tOpq)},
	OpImageWrite:                         {name: "ImageWrite", typ: tV, args: args(tU32, tOpq, tU32x4), sideEffects: true},

	OpVoteAll:        {name: "VoteAll", typ: tU1, args: args(tU1)},
	OpVoteAny:        {name: "VoteAny", typ: tU1, args: args(tU1)},
	OpVoteEqual:      {name: "VoteEqual", typ: tU1, args: args(tU1)},
	OpSubgroupBallot: {name: "SubgroupBallot", typ: tU32, args: args(tU1)},
}

// String returns the opcode mnemonic.
func (op Opcode) String() string {
	if op < numOpcodes {
		return opcodeTable[op].name
	}
	return fmt.Sprintf("Opcode(%d)", uint16(op))
}

// TypeOf returns the result type of an opcode.
func TypeOf(op Opcode) Type {
	return opcodeTable[op].typ
}

// NumArgsOf returns the declared operand count of an opcode. Phi is
// variable arity and reports zero.
func NumArgsOf(op Opcode) int {
	return len(opcodeTable[op].args)
}

// ArgTypeOf returns the declared type of operand index of an opcode.
func ArgTypeOf(op Opcode, index int) Type {
	return opcodeTable[op].args[index]
}
