package linalg

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidSize   = errors.New("invalid size")
)

// ShapeError describes an operation that received operands of incompatible shape.
type ShapeError struct {
	Op   string // Operation name (e.g., "Vector.Add", "Matrix.Act")
	Got  []int  // Shape that was received
	Want []int  // Shape that was expected
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: got %v, want %v", e.Op, ErrShapeMismatch, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func shapeErr(op string, got, want []int) error {
	return &ShapeError{Op: op, Got: got, Want: want}
}
