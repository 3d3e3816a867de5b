// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/mlp/internal/linalg"
)

// Vector is a dense float64 vector.
type Vector = linalg.Vector

// Matrix is a dense column-major float64 matrix.
type Matrix = linalg.Matrix

// ShapeError describes operands of incompatible shape.
type ShapeError = linalg.ShapeError

// Common errors.
var (
	ErrShapeMismatch = linalg.ErrShapeMismatch
	ErrInvalidSize   = linalg.ErrInvalidSize
)

// NewVector creates a vector of the given size. values may be nil (zeros)
// or exactly size long; it is copied.
func NewVector(size int, values []float64) (*Vector, error) {
	return linalg.NewVector(size, values)
}

// Zeros creates a zero vector of the given size.
func Zeros(size int) *Vector {
	return linalg.Zeros(size)
}

// FromSlice creates a vector holding a copy of values.
func FromSlice(values []float64) *Vector {
	return linalg.FromSlice(values)
}

// NewMatrix creates a row×col matrix from col column vectors of length row.
// A nil columns slice yields a zero matrix.
//
// Example:
//
//	// [[1, 3],
//	//  [2, 4]]
//	m, err := linalg.NewMatrix(2, 2, []*linalg.Vector{
//	    linalg.FromSlice([]float64{1, 2}),
//	    linalg.FromSlice([]float64{3, 4}),
//	})
func NewMatrix(row, col int, columns []*Vector) (*Matrix, error) {
	return linalg.NewMatrix(row, col, columns)
}

// Outer returns the len(v1)×len(v2) matrix v1·v2ᵀ.
func Outer(v1, v2 *Vector) *Matrix {
	return linalg.Outer(v1, v2)
}
