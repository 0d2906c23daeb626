package ir

import "fmt"

// Reg is a Maxwell general purpose register name. R0 through R254 are
// user registers; RZ reads as zero and discards writes.
type Reg uint16

const (
	R0 Reg = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7

	// NumUserRegs is the count of allocatable registers; RZ sits one
	// past the last user register.
	NumUserRegs     = 255
	RZ          Reg = 255
)

// String returns the assembly name of the register.
func (r Reg) String() string {
	if r == RZ {
		return "RZ"
	}
	return fmt.Sprintf("R%d", uint16(r))
}

// RegIndex returns the def-table index of a user register.
func RegIndex(r Reg) int {
	return int(r)
}

// Pred is a Maxwell predicate register name. P0 through P6 are user
// predicates; PT reads as true and discards writes.
type Pred uint16

const (
	P0 Pred = iota
	P1
	P2
	P3
	P4
	P5
	P6
	PT

	// NumUserPreds is the count of assignable predicates.
	NumUserPreds = 7
)

// String returns the assembly name of the predicate.
func (p Pred) String() string {
	if p == PT {
		return "PT"
	}
	return fmt.Sprintf("P%d", uint16(p))
}

// PredIndex returns the def-table index of a user predicate.
func PredIndex(p Pred) int {
	return int(p)
}

// FlowTest is a Maxwell condition-code test used by flow control
// instructions.
type FlowTest uint8

const (
	FlowTestF FlowTest = iota
	FlowTestLT
	FlowTestEQ
	FlowTestLE
	FlowTestGT
	FlowTestNE
	FlowTestGE
	FlowTestT
)

var flowTestNames = [...]string{"F", "LT", "EQ", "LE", "GT", "NE", "GE", "T"}

func (f FlowTest) String() string {
	if int(f) < len(flowTestNames) {
		return flowTestNames[f]
	}
	return fmt.Sprintf("FlowTest(%d)", uint8(f))
}

// Condition packs the predicate, its negation bit, and the flow test of
// a conditional branch.
type Condition struct {
	FlowTest    FlowTest
	Pred        Pred
	PredNegated bool
}

// True is the always-taken condition.
var True = Condition{FlowTest: FlowTestT, Pred: PT}

func (c Condition) String() string {
	neg := ""
	if c.PredNegated {
		neg = "!"
	}
	return fmt.Sprintf("%s%s:%s", neg, c.Pred, c.FlowTest)
}
