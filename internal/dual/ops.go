package dual

import "math"

// Elementary functions over Number. Each one applies the scalar function to
// the primal component and the analytic derivative, scaled by the incoming
// dual component, to the dual component: g(a, a') = (g(a), g'(a)·a').
//
// None of these validate their domain. Out-of-domain inputs (log of a
// non-positive primal, acos outside [-1, 1], ...) propagate nan/inf exactly
// as the underlying math routines do.

// Abs returns the absolute value of x.
//
// This is the absolute value of the primal component, not a magnitude.
// d|a|/da = a/|a|, undefined (nan) at a = 0.
func Abs(x Number) Number {
	return Number{
		primal: math.Abs(x.primal),
		dual:   x.dual * x.primal / math.Abs(x.primal),
	}
}

// Inverse returns 1/x, computed as Pow(x, -1).
func Inverse(x Number) Number {
	return Pow(x, -1)
}

// Conj returns the conjugate of x: (a, -a').
func Conj(x Number) Number {
	return Number{primal: x.primal, dual: -x.dual}
}

// Abs2 returns the norm of x, which for dual numbers is x * x.
func Abs2(x Number) Number {
	return x.Mul(x)
}

// Norm returns the norm of x, which for dual numbers is x * x.
func Norm(x Number) Number {
	return x.Mul(x)
}

// Pow returns x raised to a constant exponent.
//
// d(a^k)/da = k·a^(k-1).
func Pow(x Number, exponent float64) Number {
	return Number{
		primal: math.Pow(x.primal, exponent),
		dual:   exponent * x.dual * math.Pow(x.primal, exponent-1),
	}
}

// PowDual returns x raised to a dual-number exponent, applying the full
// two-variable chain rule so the exponent's own tangent contributes:
//
//	d(a^b) = a^b · (b'·ln a + a'·b/a)
func PowDual(x, exponent Number) Number {
	primal := math.Pow(x.primal, exponent.primal)
	return Number{
		primal: primal,
		dual: primal * (exponent.dual*math.Log(x.primal) +
			x.dual*exponent.primal/x.primal),
	}
}

// Sqrt returns the square root of x, computed as Pow(x, 0.5).
func Sqrt(x Number) Number {
	return Pow(x, 0.5)
}

// Exp returns e raised to x. d(e^a)/da = e^a.
func Exp(x Number) Number {
	primal := math.Exp(x.primal)
	return Number{primal: primal, dual: x.dual * primal}
}

// Exp2 returns 2 raised to x, computed as Exp(ln2 · x).
func Exp2(x Number) Number {
	return Exp(x.MulFloat(math.Ln2))
}

// Log returns the natural logarithm of x. d(ln a)/da = 1/a.
func Log(x Number) Number {
	return Number{primal: math.Log(x.primal), dual: x.dual / x.primal}
}

// Log2 returns the base-2 logarithm of x, as Log(x)/ln2.
func Log2(x Number) Number {
	return Log(x).DivFloat(math.Ln2)
}

// Log10 returns the base-10 logarithm of x, as Log(x)/ln10.
func Log10(x Number) Number {
	return Log(x).DivFloat(math.Log(10))
}

// LogBase returns the logarithm of x in the given base, as Log(x)/ln(base).
func LogBase(x Number, base float64) Number {
	return Log(x).DivFloat(math.Log(base))
}

// Sin returns the sine of x. d(sin a)/da = cos a.
func Sin(x Number) Number {
	return Number{
		primal: math.Sin(x.primal),
		dual:   math.Cos(x.primal) * x.dual,
	}
}

// Cos returns the cosine of x. d(cos a)/da = -sin a.
func Cos(x Number) Number {
	return Number{
		primal: math.Cos(x.primal),
		dual:   -math.Sin(x.primal) * x.dual,
	}
}

// Tan returns the tangent of x. d(tan a)/da = 1/cos²a.
func Tan(x Number) Number {
	cosPrimal := math.Cos(x.primal)
	return Number{
		primal: math.Tan(x.primal),
		dual:   x.dual / (cosPrimal * cosPrimal),
	}
}

// Asin returns the inverse sine of x. d(asin a)/da = 1/√(1-a²).
func Asin(x Number) Number {
	return Number{
		primal: math.Asin(x.primal),
		dual:   x.dual / math.Sqrt(1-x.primal*x.primal),
	}
}

// Acos returns the inverse cosine of x. d(acos a)/da = -1/√(1-a²).
func Acos(x Number) Number {
	return Number{
		primal: math.Acos(x.primal),
		dual:   -x.dual / math.Sqrt(1-x.primal*x.primal),
	}
}

// Atan returns the inverse tangent of x. d(atan a)/da = 1/(1+a²).
func Atan(x Number) Number {
	return Number{
		primal: math.Atan(x.primal),
		dual:   x.dual / (1 + x.primal*x.primal),
	}
}

// Sinh returns the hyperbolic sine of x. d(sinh a)/da = cosh a.
func Sinh(x Number) Number {
	return Number{
		primal: math.Sinh(x.primal),
		dual:   math.Cosh(x.primal) * x.dual,
	}
}

// Cosh returns the hyperbolic cosine of x. d(cosh a)/da = sinh a.
func Cosh(x Number) Number {
	return Number{
		primal: math.Cosh(x.primal),
		dual:   math.Sinh(x.primal) * x.dual,
	}
}

// Tanh returns the hyperbolic tangent of x. d(tanh a)/da = 1/cosh²a.
func Tanh(x Number) Number {
	coshPrimal := math.Cosh(x.primal)
	return Number{
		primal: math.Tanh(x.primal),
		dual:   x.dual / (coshPrimal * coshPrimal),
	}
}

// Asinh returns the inverse hyperbolic sine of x. d(asinh a)/da = 1/√(a²+1).
func Asinh(x Number) Number {
	return Number{
		primal: math.Asinh(x.primal),
		dual:   x.dual / math.Sqrt(x.primal*x.primal+1),
	}
}

// Acosh returns the inverse hyperbolic cosine of x. d(acosh a)/da = 1/√(a²-1).
func Acosh(x Number) Number {
	return Number{
		primal: math.Acosh(x.primal),
		dual:   x.dual / math.Sqrt(x.primal*x.primal-1),
	}
}

// Atanh returns the inverse hyperbolic tangent of x. d(atanh a)/da = 1/(1-a²).
func Atanh(x Number) Number {
	return Number{
		primal: math.Atanh(x.primal),
		dual:   x.dual / (1 - x.primal*x.primal),
	}
}
