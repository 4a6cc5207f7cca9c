// Copyright 2026 Tangent ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides the public API for dual-number arithmetic in the
// Tangent framework.
//
// A dual number is an algebraic extension of the reals with an infinitesimal
// unit ε where ε² = 0: the value a + a′ε carries a function value (primal)
// and its derivative (tangent) together. Evaluating ordinary arithmetic and
// the elementary functions in this package over dual numbers propagates
// derivatives exactly by the chain, product, and quotient rules.
//
// Example:
//
//	x := dual.New(2.0, 1.0)            // seed: value 2, derivative 1
//	y := dual.Pow(x, 3).AddFloat(1.0)  // y = x³ + 1
//	fmt.Println(y.Primal(), y.Dual())  // 9 12
//
// Numeric edge cases (division by a zero primal, log of a non-positive
// value, inverse trig outside its domain) are not errors: they propagate
// IEEE-754 inf/nan exactly as the underlying float64 math would.
package dual

import (
	"github.com/tangent-ml/tangent/internal/dual"
)

// Number is a dual number: an ordered (primal, dual) pair of float64.
//
// Number is a plain value with no shared backing storage. The zero value is
// (0, 0). Equality via Equal is tolerance-based and not transitive; see the
// method documentation.
type Number = dual.Number

// New returns the dual number (primal, dual).
//
// Example:
//
//	x := dual.New(3.0, 1.0)
func New(primal, dualComponent float64) Number {
	return dual.New(primal, dualComponent)
}

// FromFloat returns the dual number (primal, 0), treating the scalar as a
// constant.
func FromFloat(primal float64) Number {
	return dual.FromFloat(primal)
}

// Primal returns the primal component of x. Useful with generic containers.
func Primal(x Number) float64 { return dual.Primal(x) }

// DualPart returns the dual component of x. Useful with generic containers.
func DualPart(x Number) float64 { return dual.DualPart(x) }

// FloatAdd returns s + x.
func FloatAdd(s float64, x Number) Number { return dual.FloatAdd(s, x) }

// FloatSub returns s - x.
func FloatSub(s float64, x Number) Number { return dual.FloatSub(s, x) }

// FloatMul returns s * x.
func FloatMul(s float64, x Number) Number { return dual.FloatMul(s, x) }

// FloatDiv returns s / x, computed as s * Inverse(x).
func FloatDiv(s float64, x Number) Number { return dual.FloatDiv(s, x) }

// Elementary functions. Each returns (g(a), g'(a)·a'): the scalar function
// applied to the primal and the analytic derivative, scaled by the incoming
// tangent, applied to the dual component.

// Abs returns the absolute value of x (of the primal, not a magnitude).
func Abs(x Number) Number { return dual.Abs(x) }

// Inverse returns 1/x.
func Inverse(x Number) Number { return dual.Inverse(x) }

// Conj returns the conjugate of x: (a, -a').
func Conj(x Number) Number { return dual.Conj(x) }

// Abs2 returns the norm of x, which for dual numbers is x * x.
func Abs2(x Number) Number { return dual.Abs2(x) }

// Norm returns the norm of x, which for dual numbers is x * x.
func Norm(x Number) Number { return dual.Norm(x) }

// Pow returns x raised to a constant exponent.
func Pow(x Number, exponent float64) Number { return dual.Pow(x, exponent) }

// PowDual returns x raised to a dual-number exponent, with the exponent's
// own tangent included via the full two-variable chain rule.
func PowDual(x, exponent Number) Number { return dual.PowDual(x, exponent) }

// Sqrt returns the square root of x.
func Sqrt(x Number) Number { return dual.Sqrt(x) }

// Exp returns e**x.
func Exp(x Number) Number { return dual.Exp(x) }

// Exp2 returns 2**x.
func Exp2(x Number) Number { return dual.Exp2(x) }

// Log returns the natural logarithm of x.
func Log(x Number) Number { return dual.Log(x) }

// Log2 returns the base-2 logarithm of x.
func Log2(x Number) Number { return dual.Log2(x) }

// Log10 returns the base-10 logarithm of x.
func Log10(x Number) Number { return dual.Log10(x) }

// LogBase returns the logarithm of x in the given base.
func LogBase(x Number, base float64) Number { return dual.LogBase(x, base) }

// Sin returns the sine of x.
func Sin(x Number) Number { return dual.Sin(x) }

// Cos returns the cosine of x.
func Cos(x Number) Number { return dual.Cos(x) }

// Tan returns the tangent of x.
func Tan(x Number) Number { return dual.Tan(x) }

// Asin returns the inverse sine of x.
func Asin(x Number) Number { return dual.Asin(x) }

// Acos returns the inverse cosine of x.
func Acos(x Number) Number { return dual.Acos(x) }

// Atan returns the inverse tangent of x.
func Atan(x Number) Number { return dual.Atan(x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x Number) Number { return dual.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Number) Number { return dual.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Number) Number { return dual.Tanh(x) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x Number) Number { return dual.Asinh(x) }

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh(x Number) Number { return dual.Acosh(x) }

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh(x Number) Number { return dual.Atanh(x) }
