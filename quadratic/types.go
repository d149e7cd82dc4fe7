package quadratic

import (
	"fmt"
	"math"
)

// InfiniteRootSentinel is what SmallerRoot/LargerRoot report for the zero
// polynomial, where every x is a root and no single value is meaningful.
// It is a convention, not a real root.
const InfiniteRootSentinel = -math.MaxFloat64

// RootCount classifies how many real roots an expression has.
// The integer values are stable and part of the API.
type RootCount int

const (
	// NoRoots means a nonzero constant or a negative discriminant.
	NoRoots RootCount = 0

	// OneRoot means a linear expression or a repeated root (zero discriminant).
	OneRoot RootCount = 1

	// TwoRoots means two distinct real roots.
	TwoRoots RootCount = 2

	// InfiniteRoots means the zero polynomial, where every x is a root.
	InfiniteRoots RootCount = 3
)

// String renders the count as ZERO, ONE, TWO or INFINITE.
func (rc RootCount) String() string {
	switch rc {
	case NoRoots:
		return "ZERO"
	case OneRoot:
		return "ONE"
	case TwoRoots:
		return "TWO"
	case InfiniteRoots:
		return "INFINITE"
	default:
		return fmt.Sprintf("RootCount(%d)", int(rc))
	}
}

// Expression is the quadratic a·x² + b·x + c.
//
// The zero value is the zero polynomial and is ready to use. A nil *Expression
// reads as the zero polynomial in every read-only method and package function;
// writing through a nil pointer (setters, in-place Add) panics.
type Expression struct {
	a, b, c float64
}
