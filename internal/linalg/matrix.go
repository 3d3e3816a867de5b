package linalg

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a row × col matrix stored as col column vectors of length row.
//
// Interpreted as a linear map it takes an R^col input to an R^row output.
// A Matrix owns its columns exclusively; every constructor deep-copies.
type Matrix struct {
	row  int
	col  int
	cols []*Vector
}

// NewMatrix creates a row × col matrix.
//
// If columns is nil the matrix is zero-filled. Otherwise columns must hold
// exactly col vectors of length row; each one is deep-copied.
func NewMatrix(row, col int, columns []*Vector) (*Matrix, error) {
	if row < 0 || col < 0 {
		return nil, fmt.Errorf("NewMatrix: %w: %dx%d", ErrInvalidSize, row, col)
	}
	if columns != nil && len(columns) != col {
		return nil, shapeErr("NewMatrix", []int{len(columns)}, []int{col})
	}

	cols := make([]*Vector, col)
	for j := range cols {
		if columns == nil {
			cols[j] = Zeros(row)
			continue
		}
		if columns[j].Len() != row {
			return nil, shapeErr(fmt.Sprintf("NewMatrix: column %d", j),
				[]int{columns[j].Len()}, []int{row})
		}
		cols[j] = columns[j].Copy()
	}

	return &Matrix{row: row, col: col, cols: cols}, nil
}

// Outer returns the outer product v1 ⊗ v2.
//
// The result has shape (v1.Len(), v2.Len()) and column j equals v1 scaled
// by v2[j].
func Outer(v1, v2 *Vector) *Matrix {
	cols := make([]*Vector, v2.Len())
	for j := range cols {
		c := v1.Copy()
		c.Scale(v2.At(j))
		cols[j] = c
	}
	return &Matrix{row: v1.Len(), col: v2.Len(), cols: cols}
}

// Rows returns the length of each column.
func (m *Matrix) Rows() int {
	return m.row
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.col
}

// Column returns the j-th column. The vector is owned by m.
func (m *Matrix) Column(j int) *Vector {
	return m.cols[j]
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.cols[j].At(i)
}

// Clear sets every element to zero.
func (m *Matrix) Clear() {
	for _, c := range m.cols {
		c.Clear()
	}
}

// RandUniform fills the matrix with independent draws from U[lo, hi).
func (m *Matrix) RandUniform(src rand.Source, lo, hi float64) {
	for _, c := range m.cols {
		c.RandUniform(src, lo, hi)
	}
}

// Transpose replaces m with its transpose in place.
//
// The column list is rebuilt; vectors previously returned by Column no
// longer belong to m.
func (m *Matrix) Transpose() {
	cols := make([]*Vector, m.row)
	for i := range cols {
		c := Zeros(m.col)
		for j, src := range m.cols {
			c.data[j] = src.data[i]
		}
		cols[i] = c
	}
	m.row, m.col, m.cols = m.col, m.row, cols
}

// Act applies m to target in place: target ← Σ_j column[j] · target[j].
//
// target must have length col; on return it has length row.
func (m *Matrix) Act(target *Vector) error {
	if target.Len() != m.col {
		return shapeErr("Matrix.Act", []int{target.Len()}, []int{m.col})
	}
	res := make([]float64, m.row)
	for j, c := range m.cols {
		floats.AddScaled(res, target.data[j], c.data)
	}
	return target.Set(m.row, res)
}

// Add adds o to m element-wise.
func (m *Matrix) Add(o *Matrix) error {
	if err := m.sameShape("Matrix.Add", o); err != nil {
		return err
	}
	for j, c := range m.cols {
		floats.Add(c.data, o.cols[j].data)
	}
	return nil
}

// Sub subtracts o from m element-wise.
func (m *Matrix) Sub(o *Matrix) error {
	if err := m.sameShape("Matrix.Sub", o); err != nil {
		return err
	}
	for j, c := range m.cols {
		floats.Sub(c.data, o.cols[j].data)
	}
	return nil
}

// Scale multiplies every element by k.
func (m *Matrix) Scale(k float64) {
	for _, c := range m.cols {
		c.Scale(k)
	}
}

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	cols := make([]*Vector, m.col)
	for j, c := range m.cols {
		cols[j] = c.Copy()
	}
	return &Matrix{row: m.row, col: m.col, cols: cols}
}

// Equal reports whether m and o have the same shape and identical elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.row != o.row || m.col != o.col {
		return false
	}
	for j, c := range m.cols {
		if !c.Equal(o.cols[j]) {
			return false
		}
	}
	return true
}

// Dense returns a gonum copy of m with the same row × col layout.
func (m *Matrix) Dense() *mat.Dense {
	if m.row == 0 || m.col == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.row, m.col, nil)
	for j, c := range m.cols {
		d.SetCol(j, c.data)
	}
	return d
}

func (m *Matrix) sameShape(op string, o *Matrix) error {
	if m.row != o.row || m.col != o.col {
		return shapeErr(op, []int{o.row, o.col}, []int{m.row, m.col})
	}
	return nil
}
