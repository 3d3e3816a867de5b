package linalg

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func cols(vals ...[]float64) []*Vector {
	out := make([]*Vector, len(vals))
	for i, v := range vals {
		out[i] = FromSlice(v)
	}
	return out
}

func randMatrix(t *testing.T, r *rand.Rand, row, col int) *Matrix {
	t.Helper()
	m, err := NewMatrix(row, col, nil)
	require.NoError(t, err)
	m.RandUniform(r, -1, 1)
	return m
}

func TestNewMatrix_Shape(t *testing.T) {
	m, err := NewMatrix(2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for j := 0; j < 3; j++ {
		assert.Equal(t, 2, m.Column(j).Len())
	}
}

func TestNewMatrix_CopiesColumns(t *testing.T) {
	in := cols([]float64{1, 2}, []float64{3, 4})
	m, err := NewMatrix(2, 2, in)
	require.NoError(t, err)

	in[0].SetAt(0, 99)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestNewMatrix_Errors(t *testing.T) {
	_, err := NewMatrix(2, 3, cols([]float64{1, 2}))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewMatrix(2, 2, cols([]float64{1, 2}, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewMatrix(-1, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMatrix_ActHandComputed(t *testing.T) {
	// row=2, col=3: columns [1,2], [3,4], [5,6].
	m, err := NewMatrix(2, 3, cols([]float64{1, 2}, []float64{3, 4}, []float64{5, 6}))
	require.NoError(t, err)

	target := FromSlice([]float64{1, 1, 1})
	require.NoError(t, m.Act(target))
	assert.Equal(t, []float64{9, 12}, target.Data())
}

func TestMatrix_ActMatchesGonum(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	m := randMatrix(t, r, 4, 7)
	x := Zeros(7)
	x.RandUniform(r, -1, 1)

	var want mat.VecDense
	want.MulVec(m.Dense(), mat.NewVecDense(7, x.Copy().Data()))

	require.NoError(t, m.Act(x))
	require.Equal(t, 4, x.Len())
	assert.True(t, floats.EqualApprox(want.RawVector().Data, x.Data(), 1e-12))
}

func TestMatrix_ActShapeMismatch(t *testing.T) {
	m, err := NewMatrix(2, 3, nil)
	require.NoError(t, err)
	target := FromSlice([]float64{1, 2})
	assert.ErrorIs(t, m.Act(target), ErrShapeMismatch)
	assert.Equal(t, []float64{1, 2}, target.Data())
}

func TestMatrix_TransposeTwice(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	m := randMatrix(t, r, 3, 5)
	orig := m.Copy()

	m.Transpose()
	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			assert.Equal(t, orig.At(i, j), m.At(j, i))
		}
	}

	m.Transpose()
	assert.True(t, m.Equal(orig))
}

func TestMatrix_AddSubScale(t *testing.T) {
	a, err := NewMatrix(2, 2, cols([]float64{1, 2}, []float64{3, 4}))
	require.NoError(t, err)
	b, err := NewMatrix(2, 2, cols([]float64{10, 20}, []float64{30, 40}))
	require.NoError(t, err)

	require.NoError(t, a.Add(b))
	assert.Equal(t, []float64{11, 22}, a.Column(0).Data())
	assert.Equal(t, []float64{33, 44}, a.Column(1).Data())

	require.NoError(t, a.Sub(b))
	a.Scale(2)
	assert.Equal(t, []float64{2, 4}, a.Column(0).Data())
	assert.Equal(t, []float64{6, 8}, a.Column(1).Data())

	c, err := NewMatrix(2, 3, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Add(c), ErrShapeMismatch)
	assert.ErrorIs(t, a.Sub(c), ErrShapeMismatch)
}

func TestMatrix_CopyIsDeep(t *testing.T) {
	a, err := NewMatrix(1, 1, cols([]float64{1}))
	require.NoError(t, err)
	c := a.Copy()
	c.Column(0).SetAt(0, 5)
	assert.Equal(t, 1.0, a.At(0, 0))
}

func TestOuter(t *testing.T) {
	v1 := FromSlice([]float64{1, 2, 3})
	v2 := FromSlice([]float64{4, -1})
	m := Outer(v1, v2)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	for j := 0; j < v2.Len(); j++ {
		want := v1.Copy()
		want.Scale(v2.At(j))
		assert.True(t, m.Column(j).Equal(want), "column %d", j)
	}

	// Entry (i, j) = v1[i] * v2[j].
	var ref mat.Dense
	ref.Outer(1, mat.NewVecDense(3, v1.Copy().Data()), mat.NewVecDense(2, v2.Copy().Data()))
	assert.True(t, mat.Equal(&ref, m.Dense()))
}

func TestOuter_DoesNotAliasInputs(t *testing.T) {
	v1 := FromSlice([]float64{1, 2})
	m := Outer(v1, FromSlice([]float64{1}))
	v1.SetAt(0, 9)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestMatrix_ClearRandUniform(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	m := randMatrix(t, r, 3, 3)
	m.Clear()
	for j := 0; j < 3; j++ {
		assert.Equal(t, []float64{0, 0, 0}, m.Column(j).Data())
	}
}
