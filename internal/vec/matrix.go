package vec

import "fmt"

// Matrix is a dense row-major matrix of T.
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a zero-initialized rows×cols matrix.
// Returns an error if either dimension is negative.
func NewMatrix[T any](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("vec: invalid matrix dimensions %dx%d", rows, cols)
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores val at row i, column j.
func (m *Matrix[T]) Set(i, j int, val T) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = val
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("vec: row index %d out of range [0, %d)", i, m.rows))
	}
	row := make([]T, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row
}

// SetRow copies row into row i.
// Returns an error if len(row) does not equal the number of columns.
func (m *Matrix[T]) SetRow(i int, row []T) error {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("vec: row index %d out of range [0, %d)", i, m.rows))
	}
	if len(row) != m.cols {
		return fmt.Errorf("vec: row of length %d into matrix with %d columns", len(row), m.cols)
	}
	copy(m.data[i*m.cols:(i+1)*m.cols], row)
	return nil
}

func (m *Matrix[T]) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("vec: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// MatVec returns the matrix-vector product m·v.
// Returns an error if v's length does not equal m's column count.
func MatVec[T Scalar[T]](m *Matrix[T], v *Vector[T]) (*Vector[T], error) {
	if v.Len() != m.cols {
		return nil, fmt.Errorf("vec: %dx%d matrix times vector of length %d", m.rows, m.cols, v.Len())
	}
	out := NewVector[T](m.rows)
	for i := 0; i < m.rows; i++ {
		var sum T
		for j := 0; j < m.cols; j++ {
			sum = sum.Add(m.data[i*m.cols+j].Mul(v.data[j]))
		}
		out.data[i] = sum
	}
	return out, nil
}
