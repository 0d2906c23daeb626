package maxwell

import "github.com/gogpu/maxas/ir"

// FPCompareOp is the 4-bit floating point comparison selector.
type FPCompareOp uint8

const (
	FPCompareF FPCompareOp = iota
	FPCompareLT
	FPCompareEQ
	FPCompareLE
	FPCompareGT
	FPCompareNE
	FPCompareGE
	FPCompareNum
	FPCompareNan
	FPCompareLTU
	FPCompareEQU
	FPCompareLEU
	FPCompareGTU
	FPCompareNEU
	FPCompareGEU
	FPCompareT
)

// ComparisonOp is the 3-bit integer comparison selector.
type ComparisonOp uint8

const (
	CompareF ComparisonOp = iota
	CompareLT
	CompareEQ
	CompareLE
	CompareGT
	CompareNE
	CompareGE
	CompareT
)

// BooleanOp combines a comparison with a source predicate.
type BooleanOp uint8

const (
	BooleanAnd BooleanOp = iota
	BooleanOr
	BooleanXor
)

// FloatingPointCompare lowers a floating point comparison, honoring
// the ordered/unordered split of the operator table.
func FloatingPointCompare(e *ir.Emitter, lhs, rhs ir.F32, compareOp FPCompareOp) ir.U1 {
	switch compareOp {
	case FPCompareF:
		return e.Imm1(false)
	case FPCompareLT:
		return e.FPLessThan(lhs.Value, rhs.Value, true)
	case FPCompareEQ:
		return e.FPEqual(lhs.Value, rhs.Value, true)
	case FPCompareLE:
		return e.FPLessThanEqual(lhs.Value, rhs.Value, true)
	case FPCompareGT:
		return e.FPGreaterThan(lhs.Value, rhs.Value, true)
	case FPCompareNE:
		return e.FPNotEqual(lhs.Value, rhs.Value, true)
	case FPCompareGE:
		return e.FPGreaterThanEqual(lhs.Value, rhs.Value, true)
	case FPCompareNum:
		return e.LogicalAnd(e.LogicalNot(e.FPIsNan(lhs.Value)), e.LogicalNot(e.FPIsNan(rhs.Value)))
	case FPCompareNan:
		return e.LogicalOr(e.FPIsNan(lhs.Value), e.FPIsNan(rhs.Value))
	case FPCompareLTU:
		return e.FPLessThan(lhs.Value, rhs.Value, false)
	case FPCompareEQU:
		return e.FPEqual(lhs.Value, rhs.Value, false)
	case FPCompareLEU:
		return e.FPLessThanEqual(lhs.Value, rhs.Value, false)
	case FPCompareGTU:
		return e.FPGreaterThan(lhs.Value, rhs.Value, false)
	case FPCompareNEU:
		return e.FPNotEqual(lhs.Value, rhs.Value, false)
	case FPCompareGEU:
		return e.FPGreaterThanEqual(lhs.Value, rhs.Value, false)
	case FPCompareT:
		return e.Imm1(true)
	default:
		panic(ir.NotImplementedf("FP compare op %d", compareOp))
	}
}

// IntegerCompare lowers an integer comparison.
func IntegerCompare(e *ir.Emitter, operand1, operand2 ir.U32, compareOp ComparisonOp, isSigned bool) ir.U1 {
	switch compareOp {
	case CompareF:
		return e.Imm1(false)
	case CompareLT:
		return e.ILessThan(operand1, operand2, isSigned)
	case CompareEQ:
		return e.IEqual(operand1, operand2)
	case CompareLE:
		return e.ILessThanEqual(operand1, operand2, isSigned)
	case CompareGT:
		return e.IGreaterThan(operand1, operand2, isSigned)
	case CompareNE:
		return e.INotEqual(operand1, operand2)
	case CompareGE:
		return e.IGreaterThanEqual(operand1, operand2, isSigned)
	case CompareT:
		return e.Imm1(true)
	default:
		panic(ir.NotImplementedf("integer compare op %d", compareOp))
	}
}

// PredicateCombine merges a comparison result with a source predicate.
func PredicateCombine(e *ir.Emitter, predicate1, predicate2 ir.U1, bop BooleanOp) ir.U1 {
	switch bop {
	case BooleanAnd:
		return e.LogicalAnd(predicate1, predicate2)
	case BooleanOr:
		return e.LogicalOr(predicate1, predicate2)
	case BooleanXor:
		return e.LogicalXor(predicate1, predicate2)
	default:
		panic(ir.NotImplementedf("boolean op %d", bop))
	}
}
