// Package dual implements the dual-number algebra used for forward-mode
// automatic differentiation.
//
// A dual number carries a primal (value) component and a dual (tangent)
// component. Arithmetic on dual numbers propagates tangents by the chain,
// product, and quotient rules, so a function evaluated on dual inputs
// computes its own exact first derivative as a by-product.
package dual

import "math"

// epsilon is the absolute tolerance used by Equal on both components.
// One machine epsilon for float64.
const epsilon = 2.220446049250313e-16

// Number is a dual number: a primal component and a dual (tangent) component.
//
// Number is a plain value. The zero value is (0, 0). Copying is free and all
// arithmetic methods are pure; only the explicit Set*/Assign forms mutate.
type Number struct {
	primal float64
	dual   float64
}

// New returns the dual number (primal, dual).
func New(primal, dual float64) Number {
	return Number{primal: primal, dual: dual}
}

// FromFloat returns the dual number (primal, 0), treating the scalar as a
// constant with no derivative contribution.
func FromFloat(primal float64) Number {
	return Number{primal: primal}
}

// Primal returns the primal component.
func (n Number) Primal() float64 { return n.primal }

// Dual returns the dual component.
func (n Number) Dual() float64 { return n.dual }

// SetPrimal sets the primal component.
func (n *Number) SetPrimal(v float64) { n.primal = v }

// SetDual sets the dual component.
func (n *Number) SetDual(v float64) { n.dual = v }

// Real returns the primal component. Alias for Primal, for use with code
// that expects complex-style accessors.
func (n Number) Real() float64 { return n.primal }

// Imag returns the dual component. Alias for Dual, for use with code that
// expects complex-style accessors.
func (n Number) Imag() float64 { return n.dual }

// Primal returns the primal component of x.
func Primal(x Number) float64 { return x.primal }

// DualPart returns the dual component of x.
func DualPart(x Number) float64 { return x.dual }

// Neg returns -n: both components negated.
func (n Number) Neg() Number {
	return Number{primal: -n.primal, dual: -n.dual}
}

// Equal reports whether n and other are equal within a fixed absolute
// tolerance of one machine epsilon on each component.
//
// This is an approximate-equality convenience, not bit equality. It is not
// transitive under accumulated floating error, and an absolute tolerance is
// fragile for large-magnitude values; the behavior is kept as-is because
// callers rely on it.
func (n Number) Equal(other Number) bool {
	return math.Abs(n.primal-other.primal) < epsilon &&
		math.Abs(n.dual-other.dual) < epsilon
}

// NotEqual reports whether n and other differ beyond Equal's tolerance.
func (n Number) NotEqual(other Number) bool {
	return !n.Equal(other)
}

// Add returns n + other.
func (n Number) Add(other Number) Number {
	return Number{primal: n.primal + other.primal, dual: n.dual + other.dual}
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return Number{primal: n.primal - other.primal, dual: n.dual - other.dual}
}

// Mul returns n * other by the product rule:
// (a, a')(b, b') = (ab, ab' + a'b).
func (n Number) Mul(other Number) Number {
	return Number{
		primal: n.primal * other.primal,
		dual:   n.primal*other.dual + n.dual*other.primal,
	}
}

// Div returns n / other by the quotient rule:
// (a, a')/(b, b') = (a/b, (a'b - ab')/b²).
//
// Division by a Number with zero primal propagates IEEE-754 inf/nan in the
// result, exactly as plain float division would; it is not trapped.
func (n Number) Div(other Number) Number {
	return Number{
		primal: n.primal / other.primal,
		dual: (n.dual*other.primal - n.primal*other.dual) /
			(other.primal * other.primal),
	}
}

// AddFloat returns n + s, treating s as a constant (dual component 0).
func (n Number) AddFloat(s float64) Number {
	return Number{primal: n.primal + s, dual: n.dual}
}

// SubFloat returns n - s, treating s as a constant.
func (n Number) SubFloat(s float64) Number {
	return Number{primal: n.primal - s, dual: n.dual}
}

// MulFloat returns n * s, treating s as a constant.
func (n Number) MulFloat(s float64) Number {
	return Number{primal: n.primal * s, dual: n.dual * s}
}

// DivFloat returns n / s, treating s as a constant.
func (n Number) DivFloat(s float64) Number {
	return Number{primal: n.primal / s, dual: n.dual / s}
}

// FloatAdd returns s + x.
func FloatAdd(s float64, x Number) Number {
	return x.AddFloat(s)
}

// FloatSub returns s - x. The result carries the negated dual component of x.
func FloatSub(s float64, x Number) Number {
	return Number{primal: s - x.primal, dual: -x.dual}
}

// FloatMul returns s * x.
func FloatMul(s float64, x Number) Number {
	return x.MulFloat(s)
}

// FloatDiv returns s / x, computed as s * Inverse(x).
func FloatDiv(s float64, x Number) Number {
	return Inverse(x).MulFloat(s)
}

// AddAssign sets n to n + other.
func (n *Number) AddAssign(other Number) {
	n.primal += other.primal
	n.dual += other.dual
}

// SubAssign sets n to n - other.
func (n *Number) SubAssign(other Number) {
	n.primal -= other.primal
	n.dual -= other.dual
}

// MulAssign sets n to n * other by the product rule.
func (n *Number) MulAssign(other Number) {
	primal := n.primal
	dual := n.dual
	n.primal = primal * other.primal
	n.dual = primal*other.dual + dual*other.primal
}

// DivAssign sets n to n / other by the quotient rule.
func (n *Number) DivAssign(other Number) {
	primal := n.primal
	dual := n.dual
	n.primal = primal / other.primal
	n.dual = (dual*other.primal - primal*other.dual) /
		(other.primal * other.primal)
}

// AddFloatAssign sets n to n + s, treating s as a constant.
func (n *Number) AddFloatAssign(s float64) {
	n.primal += s
}

// SubFloatAssign sets n to n - s, treating s as a constant.
func (n *Number) SubFloatAssign(s float64) {
	n.primal -= s
}

// MulFloatAssign sets n to n * s, treating s as a constant.
func (n *Number) MulFloatAssign(s float64) {
	n.primal *= s
	n.dual *= s
}

// DivFloatAssign sets n to n / s, treating s as a constant.
func (n *Number) DivFloatAssign(s float64) {
	n.primal /= s
	n.dual /= s
}
