// Package forward implements the forward-mode evaluation engine: seeding and
// extraction logic that turns dual-number arithmetic into derivatives,
// gradients, and Jacobians.
//
// Every entry point is a self-contained seed/evaluate/extract cycle with no
// state retained between calls. A gradient or Jacobian over n inputs builds
// one seed vector and mutates it in place across the n passes: pass i sets
// tangent i to 1, evaluates, then resets it to 0 before pass i+1. The seed
// vector is single-owner for the duration of the call; separate calls are
// independent and safe to run concurrently.
//
// The engine performs no recovery: a fault in the user function (panic,
// out-of-range access) propagates unchanged, and numeric edge cases propagate
// IEEE-754 inf/nan through the result.
package forward

import (
	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/vec"
)

// Fn is a scalar function of one dual-number variable.
type Fn func(dual.Number) dual.Number

// ScalarFn is a scalar-valued function of a vector of dual-number variables.
//
// The engine invokes it with a seed slice it owns; implementations must not
// retain the slice past the call.
type ScalarFn func([]dual.Number) dual.Number

// VectorFn is a vector-valued function of a vector of dual-number variables.
// It must return the same output length on every invocation at a given point.
type VectorFn func([]dual.Number) []dual.Number

// Evaluate evaluates f at u with the input seeded as (u, 1). The result's
// primal component is f(u) and its dual component is f'(u).
func Evaluate(f Fn, u float64) dual.Number {
	return f(dual.New(u, 1))
}

// Derivative returns f'(u), the dual component of Evaluate(f, u).
func Derivative(f Fn, u float64) float64 {
	return Evaluate(f, u).Dual()
}

// EvaluateAt evaluates f once per input dimension at the point u.
//
// Entry i of the result is f evaluated with tangent i seeded to 1 and all
// other tangents 0: its primal component is f(u) and its dual component is
// ∂f/∂u_i. The cost is exactly len(u) invocations of f, independent of
// anything about f's output.
func EvaluateAt(f ScalarFn, u []float64) []dual.Number {
	seed := seedVector(u)
	evaluations := make([]dual.Number, len(u))
	for i := range seed {
		seed[i].SetDual(1)
		evaluations[i] = f(seed)
		seed[i].SetDual(0)
	}
	return evaluations
}

// EvaluateVec is EvaluateAt with the evaluation point supplied as a
// container; the per-direction evaluations come back as a container too.
func EvaluateVec(f ScalarFn, u *vec.Vector[float64]) *vec.Vector[dual.Number] {
	return vec.FromSlice(EvaluateAt(f, u.Data()))
}

// Gradient returns the gradient of f at u: entry i is ∂f/∂u_i.
// f is invoked exactly len(u) times.
func Gradient(f ScalarFn, u []float64) []float64 {
	evaluations := EvaluateAt(f, u)
	grad := make([]float64, len(evaluations))
	for i, e := range evaluations {
		grad[i] = e.Dual()
	}
	return grad
}

// GradientVec is Gradient with the evaluation point supplied as a container.
func GradientVec(f ScalarFn, u *vec.Vector[float64]) *vec.Vector[float64] {
	return vec.FromSlice(Gradient(f, u.Data()))
}

// Jacobian returns the m×n Jacobian of the m scalar-valued functions fs at
// the n-dimensional point u, one gradient per row.
//
// Each function costs n evaluations, n·m in total. For a genuinely
// vector-valued function prefer JacobianOf, which amortizes seeding across
// outputs and needs only n evaluations.
func Jacobian(fs []ScalarFn, u []float64) *vec.Matrix[float64] {
	jac, err := vec.NewMatrix[float64](len(fs), len(u))
	if err != nil {
		panic(err) // unreachable: dimensions are slice lengths
	}
	for i, f := range fs {
		if err := jac.SetRow(i, Gradient(f, u)); err != nil {
			panic(err)
		}
	}
	return jac
}

// JacobianVec is Jacobian with the evaluation point supplied as a container.
func JacobianVec(fs []ScalarFn, u *vec.Vector[float64]) *vec.Matrix[float64] {
	return Jacobian(fs, u.Data())
}

// JacobianOf returns the m×n Jacobian of the vector-valued function f at
// the n-dimensional point u.
//
// One seed pass per input dimension extracts all m output tangents at once,
// so f is invoked exactly len(u) times regardless of m. The output length m
// is taken from the first pass; a function whose output length varies
// between passes is a caller arity fault and panics on extraction.
//
// An empty point yields an empty 0×0 Jacobian without invoking f.
func JacobianOf(f VectorFn, u []float64) *vec.Matrix[float64] {
	if len(u) == 0 {
		jac, _ := vec.NewMatrix[float64](0, 0)
		return jac
	}

	seed := seedVector(u)
	var jac *vec.Matrix[float64]
	for i := range seed {
		seed[i].SetDual(1)
		result := f(seed)
		seed[i].SetDual(0)

		if jac == nil {
			var err error
			jac, err = vec.NewMatrix[float64](len(result), len(u))
			if err != nil {
				panic(err)
			}
		}
		for j := 0; j < jac.Rows(); j++ {
			jac.Set(j, i, result[j].Dual())
		}
	}
	return jac
}

// JacobianOfVec is JacobianOf with the evaluation point supplied as a
// container.
func JacobianOfVec(f VectorFn, u *vec.Vector[float64]) *vec.Matrix[float64] {
	return JacobianOf(f, u.Data())
}

// seedVector converts a point to dual numbers with all tangents zero.
func seedVector(u []float64) []dual.Number {
	seed := make([]dual.Number, len(u))
	for i, x := range u {
		seed[i] = dual.New(x, 0)
	}
	return seed
}
