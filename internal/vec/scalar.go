// Package vec provides generic dense vector and matrix containers over any
// scalar type, plus the capability interfaces a custom scalar declares to
// participate in container algebra.
//
// The containers hold plain values and never share backing storage between
// distinct instances; Clone copies.
package vec

// Scalar is the capability a custom scalar type declares so containers of it
// compose with generic algebra (Dot, MatVec).
//
// All methods are pure. AddFloat and MulFloat define scalar promotion: mixing
// a T with a plain float64 under a binary operation yields a T.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Equal(T) bool
	AddFloat(float64) T
	MulFloat(float64) T
}

// NumTraits describes a scalar type to generic container code: its kind and
// rough operation costs. This is a declaration only; vec itself stores any T
// and consults traits for nothing, but algorithm layers built on top may.
type NumTraits struct {
	IsComplex             bool
	IsInteger             bool
	IsSigned              bool
	RequireInitialization bool
	ReadCost              int
	AddCost               int
	MulCost               int
}

// TraitsProvider is implemented by scalar types that publish their NumTraits.
type TraitsProvider interface {
	NumTraits() NumTraits
}
