// SPDX-License-Identifier: MIT

// Package quadratic: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Defaults reproduce exact comparisons: ZeroTolerance = 0 means the
//     discriminant must be exactly 0 to count as a repeated root.
//   - Epsilon is used only by ApproxEqual; Equal is always exact.
package quadratic

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the per-coefficient tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultZeroTolerance is the band |D| ≤ tol within which the discriminant
	// is treated as zero by NumberOfRoots and the root functions.
	DefaultZeroTolerance = 0.0

	// DefaultLegacyDiscriminant selects the discriminant formula.
	// false ⇒ D = b² − 4ac.
	// true  ⇒ D = sqrt(b) − 4ac, the historical formula (NaN for b < 0).
	DefaultLegacyDiscriminant = false
)

const (
	panicEpsilonInvalid       = "quadratic: WithEpsilon: eps must be finite, non-negative"
	panicZeroToleranceInvalid = "quadratic: WithZeroTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	zeroTol float64 // >= 0; DefaultZeroTolerance
	legacy  bool    // DefaultLegacyDiscriminant
}

// WithEpsilon sets the tolerance used by ApproxEqual.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithZeroTolerance treats any discriminant with |D| ≤ tol as zero.
// Useful when coefficients come from noisy measurements and a repeated root
// would otherwise be split into two very close roots or lost entirely.
// Panics when tol is NaN, ±Inf or negative.
func WithZeroTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicZeroToleranceInvalid)
	}

	return func(o *Options) { o.zeroTol = tol }
}

// WithLegacyDiscriminant switches to D = sqrt(b) − 4ac, reproducing the
// classification and root values of the historical implementation bit-for-bit,
// except that linear expressions (a = 0) use −c/b instead of dividing by 2a.
// In this mode D itself (not its square root) enters the quadratic formula.
func WithLegacyDiscriminant() Option {
	return func(o *Options) { o.legacy = true }
}

// WithCorrectedDiscriminant restores the default D = b² − 4ac.
func WithCorrectedDiscriminant() Option {
	return func(o *Options) { o.legacy = false }
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		zeroTol: DefaultZeroTolerance,
		legacy:  DefaultLegacyDiscriminant,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
