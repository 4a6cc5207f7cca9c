package vec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/vec"
)

func TestVector_Basics(t *testing.T) {
	v := vec.NewVector[float64](3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 0.0, v.At(1), "NewVector zero-initializes")

	v.Set(1, 2.5)
	assert.Equal(t, 2.5, v.At(1))
}

func TestVector_FromSliceCopies(t *testing.T) {
	data := []float64{1, 2, 3}
	v := vec.FromSlice(data)
	data[0] = 99
	assert.Equal(t, 1.0, v.At(0), "FromSlice must copy its input")

	clone := v.Clone()
	clone.Set(0, -1)
	assert.Equal(t, 1.0, v.At(0), "Clone must not share storage")
}

func TestVector_OutOfRangePanics(t *testing.T) {
	v := vec.NewVector[float64](2)
	assert.Panics(t, func() { v.At(5) })
}

func TestMatrix_Basics(t *testing.T) {
	m, err := vec.NewMatrix[float64](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	m.Set(1, 2, 7.5)
	assert.Equal(t, 7.5, m.At(1, 2))

	require.NoError(t, m.SetRow(0, []float64{1, 2, 3}))
	assert.Equal(t, []float64{1, 2, 3}, m.Row(0))

	row := m.Row(0)
	row[0] = 42
	assert.Equal(t, 1.0, m.At(0, 0), "Row returns a copy")
}

func TestMatrix_InvalidDimensions(t *testing.T) {
	_, err := vec.NewMatrix[float64](-1, 2)
	assert.Error(t, err)

	m, err := vec.NewMatrix[float64](2, 2)
	require.NoError(t, err)
	assert.Error(t, m.SetRow(0, []float64{1, 2, 3}), "row length must match columns")
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Row(-1) })
}

func TestDot_DualNumbers(t *testing.T) {
	a := vec.FromSlice([]dual.Number{dual.New(1, 1), dual.New(2, 0)})
	b := vec.FromSlice([]dual.Number{dual.New(3, 0), dual.New(4, 0)})

	got, err := vec.Dot(a, b)
	require.NoError(t, err)

	// 1·3 + 2·4 with the first factor carrying a unit tangent: d/da0 = 3.
	assert.InDelta(t, 11.0, got.Primal(), 1e-12)
	assert.InDelta(t, 3.0, got.Dual(), 1e-12)

	_, err = vec.Dot(a, vec.NewVector[dual.Number](3))
	assert.Error(t, err)
}

func TestMatVec_DualNumbers(t *testing.T) {
	m, err := vec.NewMatrix[dual.Number](2, 2)
	require.NoError(t, err)
	m.Set(0, 0, dual.FromFloat(1))
	m.Set(0, 1, dual.FromFloat(2))
	m.Set(1, 0, dual.FromFloat(3))
	m.Set(1, 1, dual.FromFloat(4))

	// v = (x, 5) seeded with dx = 1.
	v := vec.FromSlice([]dual.Number{dual.New(2, 1), dual.FromFloat(5)})

	out, err := vec.MatVec(m, v)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	assert.InDelta(t, 12.0, out.At(0).Primal(), 1e-12)
	assert.InDelta(t, 1.0, out.At(0).Dual(), 1e-12, "d(x+10)/dx")
	assert.InDelta(t, 26.0, out.At(1).Primal(), 1e-12)
	assert.InDelta(t, 3.0, out.At(1).Dual(), 1e-12, "d(3x+20)/dx")

	_, err = vec.MatVec(m, vec.NewVector[dual.Number](3))
	assert.Error(t, err)
}
