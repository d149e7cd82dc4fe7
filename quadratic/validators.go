// SPDX-License-Identifier: MIT
// Package: quadratic
//
// Purpose:
//  - Single source of truth for numeric guards shared by root finding.
//  - Return plain sentinels wrapped with an operation tag so call sites stay uniform.

package quadratic

import (
	"fmt"
	"math"
)

// opErrorf tags err with the operation that produced it.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// validateFinite returns ErrNaNInf if any coefficient is NaN or ±Inf.
func validateFinite(a, b, c float64) error {
	if isNonFinite(a) || isNonFinite(b) || isNonFinite(c) {
		return ErrNaNInf
	}

	return nil
}

// withinTol reports |x − y| ≤ tol.
func withinTol(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol
}
