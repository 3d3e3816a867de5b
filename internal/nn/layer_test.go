package nn

import (
	"testing"

	"github.com/born-ml/mlp/internal/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrix(t *testing.T, row, col int, columns ...[]float64) *linalg.Matrix {
	t.Helper()
	cols := make([]*linalg.Vector, len(columns))
	for i, c := range columns {
		cols[i] = linalg.FromSlice(c)
	}
	m, err := linalg.NewMatrix(row, col, cols)
	require.NoError(t, err)
	return m
}

func TestFCLayer_Forward(t *testing.T) {
	// W = [[1, 3, 5], [2, 4, 6]], b = [0.5, -1]
	w := matrix(t, 2, 3, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	l, err := NewFCLayer(3, 2, w, vec(0.5, -1), Identity)
	require.NoError(t, err)

	input := vec(1, 1, 1)
	require.NoError(t, l.Forward(input))

	assert.Equal(t, []float64{1, 1, 1}, l.Node().Data())
	assert.Equal(t, []float64{9.5, 11}, l.Pre().Data())
	assert.Equal(t, []float64{9.5, 11}, l.Out().Data())
	assert.Equal(t, []float64{1, 1, 1}, input.Data(), "forward must not modify the input")

	input.SetAt(0, 7)
	assert.Equal(t, 1.0, l.Node().At(0), "node must be a copy of the input")
}

func TestFCLayer_ForwardActivation(t *testing.T) {
	w := matrix(t, 2, 1, []float64{1, -1})
	l, err := NewFCLayer(1, 2, w, nil, ReLU)
	require.NoError(t, err)

	require.NoError(t, l.Forward(vec(3)))
	assert.Equal(t, []float64{3, -3}, l.Pre().Data())
	assert.Equal(t, []float64{3, 0}, l.Out().Data())
}

func TestFCLayer_ForwardShapeMismatch(t *testing.T) {
	l, err := NewFCLayer(3, 2, nil, nil, Sigmoid)
	require.NoError(t, err)
	err = l.Forward(vec(1, 2))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "FCLayer.Forward")
}

func TestNewFCLayer_Validation(t *testing.T) {
	_, err := NewFCLayer(3, 2, matrix(t, 3, 2, []float64{1, 2, 3}, []float64{4, 5, 6}), nil, Sigmoid)
	assert.ErrorIs(t, err, linalg.ErrShapeMismatch)

	_, err = NewFCLayer(3, 2, nil, vec(1, 2, 3), Sigmoid)
	assert.ErrorIs(t, err, linalg.ErrShapeMismatch)

	_, err = NewFCLayer(0, 2, nil, nil, Sigmoid)
	assert.ErrorIs(t, err, linalg.ErrInvalidSize)
}

func TestNewFCLayer_OwnsParameters(t *testing.T) {
	w := matrix(t, 1, 2, []float64{1}, []float64{2})
	b := vec(3)
	l, err := NewFCLayer(2, 1, w, b, Identity)
	require.NoError(t, err)

	w.Scale(10)
	b.SetAt(0, 30)
	assert.Equal(t, 1.0, l.Weight().At(0, 0))
	assert.Equal(t, 2.0, l.Weight().At(0, 1))
	assert.Equal(t, 3.0, l.Bias().At(0))
}

func TestFCLayer_ArithmeticAndCopy(t *testing.T) {
	a, err := NewFCLayer(2, 1, matrix(t, 1, 2, []float64{1}, []float64{2}), vec(3), Sigmoid)
	require.NoError(t, err)
	b := a.Copy()
	b.Scale(2)

	require.NoError(t, a.Add(b))
	assert.Equal(t, 3.0, a.Weight().At(0, 0))
	assert.Equal(t, 9.0, a.Bias().At(0))

	require.NoError(t, a.Sub(b))
	assert.Equal(t, 1.0, a.Weight().At(0, 0))
	assert.Equal(t, 3.0, a.Bias().At(0))
	assert.Equal(t, Sigmoid, b.Activation())

	other, err := NewFCLayer(3, 1, nil, nil, Sigmoid)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Add(other), linalg.ErrShapeMismatch)

	a.Clear()
	assert.Equal(t, 0.0, a.Weight().At(0, 1))
	assert.Equal(t, 0.0, a.Bias().At(0))
}
