// Copyright 2026 Tangent ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec provides the public API for the generic dense vector and
// matrix containers used by the Tangent framework.
//
// Containers are generic over any element type; algebra (Dot, MatVec) is
// available for element types that declare the Scalar capability. The
// dual-number type declares it, so vectors and matrices of dual numbers
// compose with generic container operations without special cases.
//
// Example:
//
//	v := vec.FromSlice([]dual.Number{dual.New(1, 0), dual.New(2, 1)})
//	w := v.Clone()
//	d, err := vec.Dot(v, w)
package vec

import (
	"github.com/tangent-ml/tangent/internal/vec"
)

// Scalar is the capability an element type declares so containers of it
// compose with generic algebra. Mixing with a plain float64 promotes to T.
type Scalar[T any] = vec.Scalar[T]

// NumTraits describes a scalar type to generic container code: kind flags
// and rough operation costs.
type NumTraits = vec.NumTraits

// TraitsProvider is implemented by scalar types that publish their NumTraits.
type TraitsProvider = vec.TraitsProvider

// Vector is a dynamic-length dense vector of T.
type Vector[T any] = vec.Vector[T]

// Matrix is a dense row-major matrix of T.
type Matrix[T any] = vec.Matrix[T]

// NewVector returns a zero-initialized vector of length n.
func NewVector[T any](n int) *Vector[T] {
	return vec.NewVector[T](n)
}

// FromSlice returns a vector backed by a copy of data.
func FromSlice[T any](data []T) *Vector[T] {
	return vec.FromSlice(data)
}

// NewMatrix returns a zero-initialized rows×cols matrix.
func NewMatrix[T any](rows, cols int) (*Matrix[T], error) {
	return vec.NewMatrix[T](rows, cols)
}

// Dot returns the inner product of a and b.
func Dot[T Scalar[T]](a, b *Vector[T]) (T, error) {
	return vec.Dot(a, b)
}

// MatVec returns the matrix-vector product m·v.
func MatVec[T Scalar[T]](m *Matrix[T], v *Vector[T]) (*Vector[T], error) {
	return vec.MatVec(m, v)
}
