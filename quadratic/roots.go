package quadratic

import "math"

// Root finding for a·x² + b·x + c.
//
// Algorithm Outline:
//  1. Reject non-finite coefficients (ErrNaNInf).
//  2. Classify via NumberOfRoots:
//     NoRoots       → ErrNoRealRoot
//     InfiniteRoots → InfiniteRootSentinel
//  3. a = 0 (linear, b ≠ 0 guaranteed by step 2) → x = −c/b.
//  4. Corrected formula: scale (a, b, c) by 2^-e so the largest |coefficient|
//     lies in [0.5, 1). The scaling is exact, keeps the roots and the sign of D,
//     and stops b² − 4ac from overflowing or underflowing. Then
//     |D| ≤ tol → x = −b/(2a) for both roots;
//     else h = −(b + sign(b)·sqrt(D))/2, r1 = h/a, r2 = c/h, ordered.
//  5. Legacy formula: term = D itself, unscaled:
//     term = 0 → x = −b/(2a);
//     else r1 = (−b + term)/(2a), r2 = (−b − term)/(2a), ordered.
//
// Complexity: O(1) time and memory.

// Discriminant returns D = b² − 4ac, or sqrt(b) − 4ac under
// WithLegacyDiscriminant (NaN when b < 0). D is computed on the raw
// coefficients and may overflow for extreme magnitudes; NumberOfRoots and the
// root functions work on scaled coefficients and are not affected.
func (q *Expression) Discriminant(opts ...Option) float64 {
	a, b, c := q.coeffs()

	return discriminant(a, b, c, gatherOptions(opts...))
}

func discriminant(a, b, c float64, o Options) float64 {
	if o.legacy {
		return math.Sqrt(b) - 4*a*c
	}

	return b*b - 4*a*c
}

// normalize scales (a, b, c) by 2^-e, where 2^e bounds the largest
// |coefficient| from above, and returns e. D scales by 2^-2e.
// Non-finite input is returned unscaled with e = 0.
func normalize(a, b, c float64) (na, nb, nc float64, e int) {
	m := math.Max(math.Abs(a), math.Max(math.Abs(b), math.Abs(c)))
	if m == 0 || isNonFinite(m) {
		return a, b, c, 0
	}
	_, e = math.Frexp(m)

	return math.Ldexp(a, -e), math.Ldexp(b, -e), math.Ldexp(c, -e), e
}

// scaledDiscriminant returns D and the zero tolerance in matching units.
// The corrected formula is evaluated on normalized coefficients; the legacy
// formula is not homogeneous and is evaluated as is.
func scaledDiscriminant(a, b, c float64, o Options) (d, tol float64) {
	if o.legacy {
		return discriminant(a, b, c, o), o.zeroTol
	}
	na, nb, nc, e := normalize(a, b, c)

	return discriminant(na, nb, nc, o), math.Ldexp(o.zeroTol, -2*e)
}

// NumberOfRoots classifies the expression:
//
//	a = b = c = 0            → InfiniteRoots
//	a = b = 0, or D < −tol   → NoRoots
//	a = 0, or |D| ≤ tol      → OneRoot
//	otherwise                → TwoRoots
//
// tol comes from WithZeroTolerance (0 by default, i.e. exact comparison).
// A NaN discriminant (legacy formula, b < 0) fails every comparison and is
// classified as TwoRoots.
func (q *Expression) NumberOfRoots(opts ...Option) RootCount {
	a, b, c := q.coeffs()

	return classify(a, b, c, gatherOptions(opts...))
}

func classify(a, b, c float64, o Options) RootCount {
	if a == 0 && b == 0 && c == 0 {
		return InfiniteRoots
	}

	d, tol := scaledDiscriminant(a, b, c, o)
	if (a == 0 && b == 0) || d < -tol {
		return NoRoots
	}
	if a == 0 || math.Abs(d) <= tol {
		return OneRoot
	}

	return TwoRoots
}

// SmallerRoot returns the smaller real root.
//
// Errors:
//   - ErrNaNInf     — a coefficient is NaN or ±Inf.
//   - ErrNoRealRoot — NumberOfRoots() == NoRoots.
//
// The zero polynomial yields InfiniteRootSentinel with a nil error.
func (q *Expression) SmallerRoot(opts ...Option) (float64, error) {
	lo, _, err := q.roots("SmallerRoot", gatherOptions(opts...))

	return lo, err
}

// LargerRoot returns the larger real root. Errors and the zero-polynomial
// convention are the same as for SmallerRoot.
func (q *Expression) LargerRoot(opts ...Option) (float64, error) {
	_, hi, err := q.roots("LargerRoot", gatherOptions(opts...))

	return hi, err
}

// Roots returns both real roots ordered lo ≤ hi; lo == hi for OneRoot.
func (q *Expression) Roots(opts ...Option) (lo, hi float64, err error) {
	return q.roots("Roots", gatherOptions(opts...))
}

func (q *Expression) roots(op string, o Options) (lo, hi float64, err error) {
	a, b, c := q.coeffs()
	if err = validateFinite(a, b, c); err != nil {
		return 0, 0, opErrorf(op, err)
	}

	switch classify(a, b, c, o) {
	case NoRoots:
		return 0, 0, opErrorf(op, ErrNoRealRoot)
	case InfiniteRoots:
		return InfiniteRootSentinel, InfiniteRootSentinel, nil
	}

	// Linear: b ≠ 0 here, otherwise classify would have returned above.
	if a == 0 {
		x := -c / b

		return x, x, nil
	}

	if o.legacy {
		lo, hi = legacyRoots(a, b, c, o)
	} else {
		lo, hi = stableRoots(a, b, c, o)
	}

	return lo, hi, nil
}

// stableRoots solves a ≠ 0 with at least one real root on normalized
// coefficients, avoiding the cancellation of −b ± sqrt(D) for |b| ≫ |ac|.
func stableRoots(a, b, c float64, o Options) (lo, hi float64) {
	na, nb, nc, e := normalize(a, b, c)
	d := discriminant(na, nb, nc, o)
	if math.Abs(d) <= math.Ldexp(o.zeroTol, -2*e) {
		x := -(nb / (2 * na))

		return x, x
	}

	s := math.Sqrt(d)
	if nb < 0 {
		s = -s
	}
	h := -(nb + s) / 2 // h ≠ 0: D > 0 here
	r1, r2 := h/na, nc/h
	if r2 == 0 {
		r2 = 0 // c = 0 yields −0
	}
	if r1 < r2 {
		return r1, r2
	}

	return r2, r1
}

// legacyRoots reproduces the historical formula, D = sqrt(b) − 4ac entering
// the quadratic formula directly.
func legacyRoots(a, b, c float64, o Options) (lo, hi float64) {
	term := discriminant(a, b, c, o)
	if math.Abs(term) <= o.zeroTol {
		term = 0
	}

	if term == 0 {
		x := -(b / (2 * a))

		return x, x
	}

	r1 := (-b + term) / (2 * a)
	r2 := (-b - term) / (2 * a)
	if r1 < r2 {
		return r1, r2
	}

	return r2, r1
}

// Vertex returns the extremum (x, y) of the parabola, x = −b/(2a).
// Returns ErrDegenerate when a = 0 and ErrNaNInf for non-finite coefficients.
func (q *Expression) Vertex() (x, y float64, err error) {
	a, b, c := q.coeffs()
	if err = validateFinite(a, b, c); err != nil {
		return 0, 0, opErrorf("Vertex", err)
	}
	if a == 0 {
		return 0, 0, opErrorf("Vertex", ErrDegenerate)
	}
	x = -(b / (2 * a))

	return x, q.Evaluate(x), nil
}
