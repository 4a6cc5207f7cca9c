package forward_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangent-ml/tangent/dual"
	"github.com/tangent-ml/tangent/forward"
	"github.com/tangent-ml/tangent/vec"
)

// End-to-end checks through the public API surface.

func TestPublicAPI_DerivativeAndEvaluate(t *testing.T) {
	cube := func(x dual.Number) dual.Number { return dual.Pow(x, 3) }

	assert.InDelta(t, 18.75, forward.Derivative(cube, 2.5), 1e-12)

	y := forward.Evaluate(cube, 2.5)
	assert.InDelta(t, 15.625, y.Primal(), 1e-12)
	assert.InDelta(t, 18.75, y.Dual(), 1e-12)
}

func TestPublicAPI_GradientForms(t *testing.T) {
	f := func(v []dual.Number) dual.Number {
		return dual.Sin(v[0].Div(v[1])).Add(dual.Pow(v[2], 3))
	}
	point := []float64{math.Pi, 0.5, 0.9286}
	want := []float64{2.0, -4 * math.Pi, 3 * 0.9286 * 0.9286}

	grad := forward.Gradient(f, point)
	require.Len(t, grad, 3)
	for i := range want {
		assert.InDelta(t, want[i], grad[i], 1e-9)
	}

	gradVec := forward.GradientVec(f, vec.FromSlice(point))
	require.Equal(t, 3, gradVec.Len())
	for i := range want {
		assert.InDelta(t, want[i], gradVec.At(i), 1e-9)
	}
}

func TestPublicAPI_JacobianForms(t *testing.T) {
	point := []float64{1.25, math.Pi / 3}

	fs := []forward.ScalarFn{
		func(v []dual.Number) dual.Number { return v[0].Mul(v[0]).Mul(v[1]) },
		func(v []dual.Number) dual.Number { return v[0].MulFloat(5).Add(dual.Sin(v[1])) },
		func(v []dual.Number) dual.Number { return v[0].Mul(v[0]).Mul(dual.Exp(v[1].Neg())) },
	}
	vf := func(v []dual.Number) []dual.Number {
		return []dual.Number{fs[0](v), fs[1](v), fs[2](v)}
	}

	fromFns := forward.Jacobian(fs, point)
	fromVec := forward.JacobianOf(vf, point)
	fromAt := forward.JacobianOfVec(vf, vec.FromSlice(point))

	require.Equal(t, 3, fromFns.Rows())
	require.Equal(t, 2, fromFns.Cols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, fromFns.At(i, j), fromVec.At(i, j), 1e-12,
				"vector-valued form must agree with per-function form")
			assert.InDelta(t, fromFns.At(i, j), fromAt.At(i, j), 1e-12)
		}
	}
}
