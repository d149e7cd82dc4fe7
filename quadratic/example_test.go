package quadratic_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quadra/quadratic"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleExpression_Roots
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	x² − 3x + 2 = (x − 1)(x − 2)
//
// Complexity: O(1)
func ExampleExpression_Roots() {
	q := quadratic.New(1, -3, 2)
	lo, hi, err := q.Roots()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(q)
	fmt.Println(q.NumberOfRoots(), lo, hi)
	// Output:
	// 1.0x^2 + -3.0x + 2.0
	// TWO 1 2
}

// ExampleExpression_SmallerRoot shows the no-real-root error.
func ExampleExpression_SmallerRoot() {
	_, err := quadratic.New(1, 0, 1).SmallerRoot()
	fmt.Println(errors.Is(err, quadratic.ErrNoRealRoot))
	fmt.Println(err)
	// Output:
	// true
	// SmallerRoot: quadratic: no real root
}

// ExampleWithLegacyDiscriminant compares the two discriminant formulas on x² + 4x.
func ExampleWithLegacyDiscriminant() {
	q := quadratic.New(1, 4, 0)

	lo, hi, _ := q.Roots()
	fmt.Println("corrected:", lo, hi)

	lo, hi, _ = q.Roots(quadratic.WithLegacyDiscriminant())
	fmt.Println("legacy:   ", lo, hi)
	// Output:
	// corrected: -4 0
	// legacy:    -3 -1
}

// ExampleAdd contrasts the functional and in-place sums.
func ExampleAdd() {
	p := quadratic.New(1, 0, 0)
	q := quadratic.New(0, 2, 1)

	fmt.Println(quadratic.Add(p, q), "|", p)
	p.Add(q)
	fmt.Println(p)
	// Output:
	// 1.0x^2 + 2.0x + 1.0 | 1.0x^2 + 0.0x + 0.0
	// 1.0x^2 + 2.0x + 1.0
}
