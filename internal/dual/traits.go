package dual

import "github.com/tangent-ml/tangent/internal/vec"

// Number participates in generic container algebra as a real-valued scalar.
// The declaration is capability only; no algorithms live here.
var _ vec.Scalar[Number] = Number{}
var _ vec.TraitsProvider = Number{}

// NumTraits declares Number to generic container code: a real (non-complex),
// non-integer, signed scalar that requires explicit zero-initialization.
// Add and Mul each touch both components plus a cross term, hence cost 3
// relative to a plain float read.
func (Number) NumTraits() vec.NumTraits {
	return vec.NumTraits{
		IsComplex:             false,
		IsInteger:             false,
		IsSigned:              true,
		RequireInitialization: true,
		ReadCost:              1,
		AddCost:               3,
		MulCost:               3,
	}
}
