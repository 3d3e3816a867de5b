// Package linalg provides the dense vector and matrix primitives used by the
// MLP engine.
package linalg

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Vector is a fixed-length, mutable sequence of float64 values.
//
// A Vector always owns its backing storage: constructors and Set copy
// the caller's slice, so later changes to that slice are never observed.
// Length only changes through Set, which reallocates when needed.
type Vector struct {
	data []float64
}

// NewVector creates a vector of the given size.
//
// If values is nil the vector is zero-filled; otherwise values must hold
// exactly size elements and is deep-copied.
func NewVector(size int, values []float64) (*Vector, error) {
	if size < 0 {
		return nil, fmt.Errorf("NewVector: %w: %d", ErrInvalidSize, size)
	}
	if values != nil && len(values) != size {
		return nil, shapeErr("NewVector", []int{len(values)}, []int{size})
	}
	v := &Vector{data: make([]float64, size)}
	copy(v.data, values)
	return v, nil
}

// Zeros returns a zero-filled vector of the given size.
// It panics if size is negative.
func Zeros(size int) *Vector {
	v, err := NewVector(size, nil)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSlice returns a vector holding a copy of values.
func FromSlice(values []float64) *Vector {
	v := &Vector{data: make([]float64, len(values))}
	copy(v.data, values)
	return v
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// At returns the i-th element.
func (v *Vector) At(i int) float64 {
	return v.data[i]
}

// SetAt overwrites the i-th element.
func (v *Vector) SetAt(i int, x float64) {
	v.data[i] = x
}

// Data returns the backing slice. Writes through it modify the vector.
func (v *Vector) Data() []float64 {
	return v.data
}

// Set resizes the vector to size and overwrites it with values.
// The backing storage is reallocated only when the size changes.
func (v *Vector) Set(size int, values []float64) error {
	if size < 0 {
		return fmt.Errorf("Vector.Set: %w: %d", ErrInvalidSize, size)
	}
	if len(values) != size {
		return shapeErr("Vector.Set", []int{len(values)}, []int{size})
	}
	if len(v.data) != size {
		v.data = make([]float64, size)
	}
	copy(v.data, values)
	return nil
}

// Clear sets every element to zero.
func (v *Vector) Clear() {
	clear(v.data)
}

// RandUniform fills the vector with independent draws from U[lo, hi).
// A nil src falls back to the global math/rand/v2 source.
func (v *Vector) RandUniform(src rand.Source, lo, hi float64) {
	u := distuv.Uniform{Min: lo, Max: hi, Src: src}
	for i := range v.data {
		v.data[i] = u.Rand()
	}
}

// Add adds o to v element-wise.
func (v *Vector) Add(o *Vector) error {
	if len(v.data) != len(o.data) {
		return shapeErr("Vector.Add", []int{len(o.data)}, []int{len(v.data)})
	}
	floats.Add(v.data, o.data)
	return nil
}

// Sub subtracts o from v element-wise.
func (v *Vector) Sub(o *Vector) error {
	if len(v.data) != len(o.data) {
		return shapeErr("Vector.Sub", []int{len(o.data)}, []int{len(v.data)})
	}
	floats.Sub(v.data, o.data)
	return nil
}

// MulElem multiplies v by o element-wise (Hadamard product).
func (v *Vector) MulElem(o *Vector) error {
	if len(v.data) != len(o.data) {
		return shapeErr("Vector.MulElem", []int{len(o.data)}, []int{len(v.data)})
	}
	floats.Mul(v.data, o.data)
	return nil
}

// Scale multiplies every element by k.
func (v *Vector) Scale(k float64) {
	floats.Scale(k, v.data)
}

// Map replaces every element x with f(x).
func (v *Vector) Map(f func(float64) float64) {
	for i, x := range v.data {
		v.data[i] = f(x)
	}
}

// Copy returns a deep copy of v.
func (v *Vector) Copy() *Vector {
	return FromSlice(v.data)
}

// HasNegative reports whether any element has its sign bit set.
// Negative zero counts as negative.
func (v *Vector) HasNegative() bool {
	for _, x := range v.data {
		if math.Signbit(x) {
			return true
		}
	}
	return false
}

// Sum returns the sum of all elements.
func (v *Vector) Sum() float64 {
	return floats.Sum(v.data)
}

// ArgMax returns the index of the largest element, the first one on ties.
// It returns -1 for an empty vector.
func (v *Vector) ArgMax() int {
	if len(v.data) == 0 {
		return -1
	}
	return floats.MaxIdx(v.data)
}

// Equal reports whether v and o have the same length and identical elements.
func (v *Vector) Equal(o *Vector) bool {
	return floats.Equal(v.data, o.data)
}
