// SPDX-License-Identifier: MIT
// Package quadratic: sentinel error set.
// All operations return these sentinels (optionally wrapped with operation
// context) and tests match them via errors.Is. Panics are reserved for
// programmer errors in option constructors.

package quadratic

import "errors"

var (
	// ErrNoRealRoot is returned by root extraction when the expression has no
	// real root (NumberOfRoots() == NoRoots).
	ErrNoRealRoot = errors.New("quadratic: no real root")

	// ErrNaNInf signals a NaN or ±Inf coefficient where finite values are required.
	ErrNaNInf = errors.New("quadratic: NaN or Inf coefficient")

	// ErrDegenerate signals an operation that needs a ≠ 0 (e.g. Vertex).
	ErrDegenerate = errors.New("quadratic: degenerate expression (a = 0)")
)
