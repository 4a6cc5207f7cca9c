package vec

import "fmt"

// Vector is a dynamic-length dense vector of T.
//
// Indexing out of range panics with the runtime's natural bounds error;
// validating indices is the caller's responsibility.
type Vector[T any] struct {
	data []T
}

// NewVector returns a zero-initialized vector of length n.
func NewVector[T any](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, n)}
}

// FromSlice returns a vector backed by a copy of data.
func FromSlice[T any](data []T) *Vector[T] {
	d := make([]T, len(data))
	copy(d, data)
	return &Vector[T]{data: d}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns the element at index i.
func (v *Vector[T]) At(i int) T { return v.data[i] }

// Set stores val at index i.
func (v *Vector[T]) Set(i int, val T) { v.data[i] = val }

// Data returns the underlying slice.
//
// The slice is the vector's own storage; modifications through it modify the
// vector.
func (v *Vector[T]) Data() []T { return v.data }

// Clone returns a copy of v with its own storage.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.data)
}

// Dot returns the inner product of a and b.
// Returns an error if the lengths differ.
func Dot[T Scalar[T]](a, b *Vector[T]) (T, error) {
	var sum T
	if a.Len() != b.Len() {
		return sum, fmt.Errorf("vec: dot of length %d with length %d", a.Len(), b.Len())
	}
	for i := range a.data {
		sum = sum.Add(a.data[i].Mul(b.data[i]))
	}
	return sum, nil
}
