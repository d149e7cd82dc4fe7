package quadratic

// Test bridge: exposes an immutable view of the resolved Options to the
// external quadratic_test package without widening the production API.

// OptionsSnapshot is a read-only copy of Options for tests.
type OptionsSnapshot struct {
	Eps     float64
	ZeroTol float64
	Legacy  bool
}

// GatherOptionsSnapshot resolves opts exactly as public entry points do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ZeroTol: o.zeroTol, Legacy: o.legacy}
}

// FormatCoefficient exposes formatCoefficient.
var FormatCoefficient = formatCoefficient
