// Package quadra is a small numeric toolkit around the quadratic expression
// a·x² + b·x + c.
//
// 🚀 What is quadra?
//
//	A zero-dependency, pure-Go library that brings together:
//		• A value type for a single quadratic expression (construct, mutate, clone)
//		• Arithmetic: evaluation, scaling, summation (functional and in-place)
//		• Analysis: discriminant, root counting, smaller/larger real root, vertex
//
// ✨ Why choose quadra?
//
//   - Beginner-friendly – tiny API, intuitive naming
//   - Explicit numeric policy – exact equality by default, opt-in tolerances
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything lives in one subpackage:
//
//	quadratic/ — Expression type, root finding, options and sentinel errors
//	examples/  — a runnable walkthrough
//
// Quick ASCII example:
//
//	        │
//	   ╲    │    ╱      x² − 3x + 2
//	    ╲   │   ╱       roots at x = 1 and x = 2
//	─────●──┼──●─────
//	      ╲_│_╱
//
//	go get github.com/katalvlaran/quadra/quadratic
package quadra
