// Copyright 2026 Tangent ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package forward provides the public API for forward-mode automatic
// differentiation: derivatives, gradients, and Jacobians of user-supplied
// functions over dual numbers.
//
// Forward mode evaluates the function once per active input dimension,
// seeding one input tangent to 1 per pass. Cost therefore scales with the
// input dimension and is independent of the output dimension.
//
// Example:
//
//	f := func(x dual.Number) dual.Number {
//	    return dual.Pow(x, 3)
//	}
//	fmt.Println(forward.Derivative(f, 2.5)) // 18.75
//
//	g := func(v []dual.Number) dual.Number {
//	    return dual.Sin(v[0].Div(v[1])).Add(dual.Pow(v[2], 3))
//	}
//	grad := forward.Gradient(g, []float64{math.Pi, 0.5, 0.9286})
//
// The engine keeps no state between calls; separate calls may run in
// parallel. Faults in user functions (panics, out-of-range access on a
// mismatched arity) propagate unchanged to the caller.
package forward

import (
	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/forward"
	"github.com/tangent-ml/tangent/internal/vec"
)

// Fn is a scalar function of one dual-number variable.
type Fn = forward.Fn

// ScalarFn is a scalar-valued function of a vector of dual-number variables.
type ScalarFn = forward.ScalarFn

// VectorFn is a vector-valued function of a vector of dual-number variables.
type VectorFn = forward.VectorFn

// Evaluate evaluates f at u with the input seeded as (u, 1): the result
// carries f(u) in its primal component and f'(u) in its dual component.
func Evaluate(f Fn, u float64) dual.Number {
	return forward.Evaluate(f, u)
}

// Derivative returns f'(u).
//
// Example:
//
//	df := forward.Derivative(func(x dual.Number) dual.Number {
//	    return dual.Sin(x.MulFloat(2))
//	}, math.Pi/2) // -2
func Derivative(f Fn, u float64) float64 {
	return forward.Derivative(f, u)
}

// EvaluateAt evaluates f once per input dimension at the point u; entry i of
// the result carries f(u) and ∂f/∂u_i.
func EvaluateAt(f ScalarFn, u []float64) []dual.Number {
	return forward.EvaluateAt(f, u)
}

// EvaluateVec is EvaluateAt with the evaluation point supplied as a container.
func EvaluateVec(f ScalarFn, u *vec.Vector[float64]) *vec.Vector[dual.Number] {
	return forward.EvaluateVec(f, u)
}

// Gradient returns the gradient of f at u, invoking f exactly len(u) times.
func Gradient(f ScalarFn, u []float64) []float64 {
	return forward.Gradient(f, u)
}

// GradientVec is Gradient with the evaluation point supplied as a container.
func GradientVec(f ScalarFn, u *vec.Vector[float64]) *vec.Vector[float64] {
	return forward.GradientVec(f, u)
}

// Jacobian returns the m×n Jacobian of the m scalar-valued functions fs at
// the n-dimensional point u, one gradient per row.
func Jacobian(fs []ScalarFn, u []float64) *vec.Matrix[float64] {
	return forward.Jacobian(fs, u)
}

// JacobianVec is Jacobian with the evaluation point supplied as a container.
func JacobianVec(fs []ScalarFn, u *vec.Vector[float64]) *vec.Matrix[float64] {
	return forward.JacobianVec(fs, u)
}

// JacobianOf returns the m×n Jacobian of the vector-valued function f at u
// in len(u) evaluations total, amortizing each seed pass across all outputs.
// Prefer it over Jacobian when the function is genuinely vector-valued.
func JacobianOf(f VectorFn, u []float64) *vec.Matrix[float64] {
	return forward.JacobianOf(f, u)
}

// JacobianOfVec is JacobianOf with the evaluation point supplied as a
// container.
func JacobianOfVec(f VectorFn, u *vec.Vector[float64]) *vec.Matrix[float64] {
	return forward.JacobianOfVec(f, u)
}
