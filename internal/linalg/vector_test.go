package linalg

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestNewVector_CopiesInput(t *testing.T) {
	values := []float64{1, 2, 3}
	v, err := NewVector(3, values)
	require.NoError(t, err)

	values[0] = 100
	assert.Equal(t, 1.0, v.At(0), "vector must not alias caller slice")
}

func TestNewVector_NilIsZeroFilled(t *testing.T) {
	v, err := NewVector(4, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, v.Data())
}

func TestNewVector_Errors(t *testing.T) {
	_, err := NewVector(3, []float64{1, 2})
	require.ErrorIs(t, err, ErrShapeMismatch)

	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "NewVector", se.Op)
	assert.Equal(t, []int{2}, se.Got)
	assert.Equal(t, []int{3}, se.Want)

	_, err = NewVector(-1, nil)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestVector_Set(t *testing.T) {
	v := FromSlice([]float64{1, 2})

	// Same size keeps the backing array.
	before := &v.Data()[0]
	require.NoError(t, v.Set(2, []float64{5, 6}))
	assert.Same(t, before, &v.Data()[0])
	assert.Equal(t, []float64{5, 6}, v.Data())

	// Resize reallocates and fully overwrites.
	src := []float64{7, 8, 9}
	require.NoError(t, v.Set(3, src))
	assert.Equal(t, 3, v.Len())
	src[1] = 0
	assert.Equal(t, []float64{7, 8, 9}, v.Data())

	require.ErrorIs(t, v.Set(4, src), ErrShapeMismatch)
}

func TestVector_AddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 20; n++ {
		a := Zeros(n)
		b := Zeros(n)
		a.RandUniform(r, -10, 10)
		b.RandUniform(r, -10, 10)
		orig := a.Copy()

		require.NoError(t, a.Add(b))
		require.NoError(t, a.Sub(b))
		assert.True(t, floats.EqualApprox(orig.Data(), a.Data(), 1e-12))
	}
}

func TestVector_ShapeMismatch(t *testing.T) {
	a := Zeros(3)
	b := Zeros(2)
	assert.ErrorIs(t, a.Add(b), ErrShapeMismatch)
	assert.ErrorIs(t, a.Sub(b), ErrShapeMismatch)
	assert.ErrorIs(t, a.MulElem(b), ErrShapeMismatch)
	assert.Equal(t, []float64{0, 0, 0}, a.Data(), "failed op must not touch receiver")
}

func TestVector_ScaleRoundTrip(t *testing.T) {
	a := FromSlice([]float64{1.5, -2.25, 3, 0})
	orig := a.Copy()
	for _, k := range []float64{2, -0.5, 1e-3, 7} {
		a.Scale(k)
		a.Scale(1 / k)
		assert.True(t, floats.EqualApprox(orig.Data(), a.Data(), 1e-12), "k=%v", k)
	}
}

func TestVector_MulElem(t *testing.T) {
	a := FromSlice([]float64{1, 2, 3})
	require.NoError(t, a.MulElem(FromSlice([]float64{4, 5, -1})))
	assert.Equal(t, []float64{4, 10, -3}, a.Data())
}

func TestVector_Map(t *testing.T) {
	a := FromSlice([]float64{1, 4, 9})
	a.Map(math.Sqrt)
	assert.Equal(t, []float64{1, 2, 3}, a.Data())
}

func TestVector_CopyIsDeep(t *testing.T) {
	a := FromSlice([]float64{1, 2})
	c := a.Copy()
	c.SetAt(0, 42)
	assert.Equal(t, 1.0, a.At(0))
}

func TestVector_Clear(t *testing.T) {
	a := FromSlice([]float64{1, -2, 3})
	a.Clear()
	assert.Equal(t, []float64{0, 0, 0}, a.Data())
}

func TestVector_HasNegative(t *testing.T) {
	assert.False(t, FromSlice([]float64{0, 1, 2}).HasNegative())
	assert.True(t, FromSlice([]float64{0, -1, 2}).HasNegative())
	assert.True(t, FromSlice([]float64{1, math.Copysign(0, -1)}).HasNegative(), "negative zero has its sign bit set")
	assert.False(t, Zeros(0).HasNegative())
}

func TestVector_RandUniformRange(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	v := Zeros(10000)
	v.RandUniform(r, -0.5, 2)
	for _, x := range v.Data() {
		require.GreaterOrEqual(t, x, -0.5)
		require.Less(t, x, 2.0)
	}
}

func TestVector_RandUniformDeterministic(t *testing.T) {
	a := Zeros(16)
	b := Zeros(16)
	a.RandUniform(rand.NewPCG(3, 4), 0, 1)
	b.RandUniform(rand.NewPCG(3, 4), 0, 1)
	assert.True(t, a.Equal(b))
}

func TestVector_SumArgMax(t *testing.T) {
	v := FromSlice([]float64{0.1, 0.7, 0.7, 0.2})
	assert.InDelta(t, 1.7, v.Sum(), 1e-12)
	assert.Equal(t, 1, v.ArgMax())
	assert.Equal(t, -1, Zeros(0).ArgMax())
}
