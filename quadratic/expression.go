package quadratic

import (
	"math"
	"strconv"
	"strings"
)

// New returns the expression a·x² + b·x + c. Any real triple is accepted,
// including a = 0.
func New(a, b, c float64) *Expression {
	return &Expression{a: a, b: b, c: c}
}

// Zero returns the zero polynomial 0x² + 0x + 0.
func Zero() *Expression {
	return &Expression{}
}

// FromCoefficients builds an expression from [a, b, c].
func FromCoefficients(abc [3]float64) *Expression {
	return New(abc[0], abc[1], abc[2])
}

// coeffs returns (a, b, c), treating a nil receiver as the zero polynomial.
func (q *Expression) coeffs() (float64, float64, float64) {
	if q == nil {
		return 0, 0, 0
	}

	return q.a, q.b, q.c
}

// A returns the x² coefficient.
func (q *Expression) A() float64 {
	a, _, _ := q.coeffs()

	return a
}

// B returns the x coefficient.
func (q *Expression) B() float64 {
	_, b, _ := q.coeffs()

	return b
}

// C returns the constant term.
func (q *Expression) C() float64 {
	_, _, c := q.coeffs()

	return c
}

// Coefficients returns [a, b, c].
func (q *Expression) Coefficients() [3]float64 {
	a, b, c := q.coeffs()

	return [3]float64{a, b, c}
}

// SetA replaces a and returns the receiver.
func (q *Expression) SetA(a float64) *Expression {
	q.a = a

	return q
}

// SetB replaces b and returns the receiver.
func (q *Expression) SetB(b float64) *Expression {
	q.b = b

	return q
}

// SetC replaces c and returns the receiver.
func (q *Expression) SetC(c float64) *Expression {
	q.c = c

	return q
}

// String renders "<a>x^2 + <b>x + <c>" with no term trimming and no sign
// normalization, e.g. "2.0x^2 + -3.0x + 1.0".
func (q *Expression) String() string {
	a, b, c := q.coeffs()

	var sb strings.Builder
	sb.WriteString(formatCoefficient(a))
	sb.WriteString("x^2 + ")
	sb.WriteString(formatCoefficient(b))
	sb.WriteString("x + ")
	sb.WriteString(formatCoefficient(c))

	return sb.String()
}

// formatCoefficient prints the shortest round-tripping decimal for v.
// Plain notation is used for 1e-3 ≤ |v| < 1e7 (and zero), where integral values
// keep a trailing ".0"; other magnitudes use exponent notation.
func formatCoefficient(v float64) string {
	if isNonFinite(v) {
		return strconv.FormatFloat(v, 'g', -1, 64) // NaN, +Inf, -Inf
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Evaluate returns a·x² + b·x + c.
func (q *Expression) Evaluate(x float64) float64 {
	a, b, c := q.coeffs()

	return a*x*x + b*x + c
}

// Clone returns an independent copy; later mutation of either side does not
// affect the other.
func (q *Expression) Clone() *Expression {
	return New(q.coeffs())
}

// Equal reports exact equality of all three coefficients.
// The same pointer (including two nils) is always equal; a nil on one side only
// is never equal. No tolerance is applied, so NaN coefficients never compare
// equal unless the pointers are identical.
func (q *Expression) Equal(o *Expression) bool {
	if q == o {
		return true
	}
	if q == nil || o == nil {
		return false
	}

	return q.a == o.a && q.b == o.b && q.c == o.c
}

// EqualAny is Equal for dynamically typed values: anything other than an
// Expression or *Expression compares unequal.
func (q *Expression) EqualAny(v any) bool {
	switch o := v.(type) {
	case *Expression:
		return q.Equal(o)
	case Expression:
		return q != nil && q.Equal(&o)
	default:
		return false
	}
}

// ApproxEqual reports |Δa|, |Δb|, |Δc| ≤ eps, with eps from WithEpsilon
// (DefaultEpsilon otherwise). A nil side reads as the zero polynomial.
func (q *Expression) ApproxEqual(o *Expression, opts ...Option) bool {
	cfg := gatherOptions(opts...)
	a1, b1, c1 := q.coeffs()
	a2, b2, c2 := o.coeffs()

	return withinTol(a1, a2, cfg.eps) &&
		withinTol(b1, b2, cfg.eps) &&
		withinTol(c1, c2, cfg.eps)
}

// Degree returns 2, 1 or 0 by the highest nonzero coefficient, and -1 for the
// zero polynomial.
func (q *Expression) Degree() int {
	a, b, c := q.coeffs()
	switch {
	case a != 0:
		return 2
	case b != 0:
		return 1
	case c != 0:
		return 0
	default:
		return -1
	}
}

// Derivative returns the coefficients of d/dx = slope·x + intercept,
// i.e. (2a, b).
func (q *Expression) Derivative() (slope, intercept float64) {
	a, b, _ := q.coeffs()

	return 2 * a, b
}
