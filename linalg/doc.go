// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the dense float64 vectors and matrices the MLP
// engine is built on.
//
// # Overview
//
// This package contains:
//   - Vector: a fixed-length float64 vector with element-wise arithmetic
//   - Matrix: a column-major matrix with matrix-vector product (Act)
//   - Outer: the outer product of two vectors
//   - ShapeError: the error returned by every size mismatch
//
// # Basic Usage
//
//	w, err := linalg.NewMatrix(2, 3, []*linalg.Vector{
//	    linalg.FromSlice([]float64{1, 2}),
//	    linalg.FromSlice([]float64{3, 4}),
//	    linalg.FromSlice([]float64{5, 6}),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	x := linalg.FromSlice([]float64{1, 1, 1})
//	if err := w.Act(x); err != nil { // x becomes W·x = [9, 12]
//	    log.Fatal(err)
//	}
//	fmt.Println(x)
//
// # Storage
//
// A Matrix stores one Vector per column. Column(j) returns that vector
// without copying, so writes through it change the matrix.
//
// # Errors
//
// Operations on mismatched sizes return a *ShapeError that matches
// ErrShapeMismatch under errors.Is:
//
//	if err := a.Add(b); errors.Is(err, linalg.ErrShapeMismatch) {
//	    // ...
//	}
package linalg
