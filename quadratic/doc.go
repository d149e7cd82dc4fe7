// Package quadratic models a single quadratic expression a·x² + b·x + c with
// float64 coefficients and the operations commonly needed on it.
//
// The package provides:
//
//   - Construction: New(a, b, c), Zero(), or simply the zero value Expression{}.
//   - Mutation: SetA, SetB, SetC and the in-place (*Expression).Add.
//   - Functional arithmetic: Scale, Add, Sub, Neg return new expressions and
//     never touch their inputs.
//   - Analysis: Evaluate, Discriminant, NumberOfRoots, SmallerRoot, LargerRoot,
//     Roots, Vertex, Derivative, Degree.
//   - Comparison: exact Equal/EqualAny and tolerance-based ApproxEqual.
//
// Root counting:
//
//	a = b = c = 0          → InfiniteRoots (every x is a root)
//	a = b = 0, or D < 0    → NoRoots
//	a = 0, or D = 0        → OneRoot
//	otherwise              → TwoRoots
//
// where D = b² − 4ac. The historical formula sqrt(b) − 4ac is still available
// through WithLegacyDiscriminant for callers that must reproduce old results.
//
// Error policy:
//
//	SmallerRoot/LargerRoot return ErrNoRealRoot when there is nothing to report,
//	and InfiniteRootSentinel (-math.MaxFloat64) for the zero polynomial.
//	Linear expressions (a = 0, b ≠ 0) are solved as −c/b; the quadratic formula
//	never divides by 2a = 0.
//
// Concurrency:
//
//	Expression carries no locks. Read-only calls on a shared value are safe;
//	concurrent mutation of one instance is not.
//
// Usage:
//
//	q := quadratic.New(1, -3, 2)
//	lo, _ := q.SmallerRoot() // 1
//	hi, _ := q.LargerRoot()  // 2
package quadratic
