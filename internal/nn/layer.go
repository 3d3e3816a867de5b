package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/linalg"
)

// FCLayer implements a fully connected (dense) layer.
//
// Performs the transformation: out = act(W·x + b)
// where:
//   - x is the input vector with length size
//   - W is the weight matrix with shape [nextSize, size]
//   - b is the bias vector with length nextSize
//   - out is the output vector with length nextSize
//
// The layer caches the last input (node), the pre-activation (pre) and the
// post-activation (out) of its most recent Forward call; backprop reads them.
// It exclusively owns every vector and matrix it holds.
//
// Example:
//
//	layer, err := nn.NewFCLayer(784, 16, nil, nil, nn.Sigmoid)
//	if err != nil {
//	    return err
//	}
//	if err := layer.Forward(image); err != nil {
//	    return err
//	}
//	fmt.Println(layer.Out())
type FCLayer struct {
	size     int
	nextSize int
	node     *linalg.Vector // [size]
	weight   *linalg.Matrix // [nextSize, size]
	bias     *linalg.Vector // [nextSize]
	pre      *linalg.Vector // [nextSize]
	out      *linalg.Vector // [nextSize]
	act      Activation
}

// NewFCLayer creates a new fully connected layer.
//
// Parameters:
//   - size: Input width
//   - nextSize: Output width
//   - weight: Initial weights with shape [nextSize, size], or nil for zeros
//   - bias: Initial bias with length nextSize, or nil for zeros
//   - act: Activation applied to the pre-activation
//
// weight and bias are deep-copied; the caller keeps ownership of them.
func NewFCLayer(size, nextSize int, weight *linalg.Matrix, bias *linalg.Vector, act Activation) (*FCLayer, error) {
	if size <= 0 || nextSize <= 0 {
		return nil, fmt.Errorf("NewFCLayer: %w: %d -> %d", linalg.ErrInvalidSize, size, nextSize)
	}

	var w *linalg.Matrix
	if weight != nil {
		if weight.Rows() != nextSize || weight.Cols() != size {
			return nil, &linalg.ShapeError{
				Op:   "NewFCLayer: weight",
				Got:  []int{weight.Rows(), weight.Cols()},
				Want: []int{nextSize, size},
			}
		}
		w = weight.Copy()
	} else {
		var err error
		if w, err = linalg.NewMatrix(nextSize, size, nil); err != nil {
			return nil, err
		}
	}

	var b *linalg.Vector
	if bias != nil {
		if bias.Len() != nextSize {
			return nil, &linalg.ShapeError{
				Op:   "NewFCLayer: bias",
				Got:  []int{bias.Len()},
				Want: []int{nextSize},
			}
		}
		b = bias.Copy()
	} else {
		b = linalg.Zeros(nextSize)
	}

	return &FCLayer{
		size:     size,
		nextSize: nextSize,
		node:     linalg.Zeros(size),
		weight:   w,
		bias:     b,
		pre:      linalg.Zeros(nextSize),
		out:      linalg.Zeros(nextSize),
		act:      act,
	}, nil
}

// Forward computes the layer output for input.
//
// Performs: node ← input, pre ← W·node + b, out ← act(pre).
//
// Returns an error wrapping linalg.ErrShapeMismatch when input does not have
// length Size(); the layer state is left untouched in that case.
func (l *FCLayer) Forward(input *linalg.Vector) error {
	if input.Len() != l.size {
		return &linalg.ShapeError{
			Op:   "FCLayer.Forward",
			Got:  []int{input.Len()},
			Want: []int{l.size},
		}
	}

	tmp := input.Copy()
	if err := l.node.Set(l.size, tmp.Data()); err != nil {
		return err
	}
	if err := l.weight.Act(tmp); err != nil {
		return err
	}
	if err := tmp.Add(l.bias); err != nil {
		return err
	}
	if err := l.pre.Set(l.nextSize, tmp.Data()); err != nil {
		return err
	}
	tmp.Map(l.act.Apply)
	return l.out.Set(l.nextSize, tmp.Data())
}

// Clear zeroes the parameters and the cached vectors.
func (l *FCLayer) Clear() {
	l.node.Clear()
	l.weight.Clear()
	l.bias.Clear()
	l.pre.Clear()
	l.out.Clear()
}

// Add adds o's weight and bias to l's.
func (l *FCLayer) Add(o *FCLayer) error {
	if err := l.weight.Add(o.weight); err != nil {
		return err
	}
	return l.bias.Add(o.bias)
}

// Sub subtracts o's weight and bias from l's.
func (l *FCLayer) Sub(o *FCLayer) error {
	if err := l.weight.Sub(o.weight); err != nil {
		return err
	}
	return l.bias.Sub(o.bias)
}

// Scale multiplies weight and bias by k.
func (l *FCLayer) Scale(k float64) {
	l.weight.Scale(k)
	l.bias.Scale(k)
}

// Copy returns a layer with copies of l's parameters and fresh caches.
func (l *FCLayer) Copy() *FCLayer {
	return &FCLayer{
		size:     l.size,
		nextSize: l.nextSize,
		node:     linalg.Zeros(l.size),
		weight:   l.weight.Copy(),
		bias:     l.bias.Copy(),
		pre:      linalg.Zeros(l.nextSize),
		out:      linalg.Zeros(l.nextSize),
		act:      l.act,
	}
}

// Size returns the input width.
func (l *FCLayer) Size() int {
	return l.size
}

// NextSize returns the output width.
func (l *FCLayer) NextSize() int {
	return l.nextSize
}

// Activation returns the layer's activation.
func (l *FCLayer) Activation() Activation {
	return l.act
}

// Node returns the cached input of the last Forward call.
func (l *FCLayer) Node() *linalg.Vector {
	return l.node
}

// Weight returns the weight matrix. It is owned by the layer.
func (l *FCLayer) Weight() *linalg.Matrix {
	return l.weight
}

// Bias returns the bias vector. It is owned by the layer.
func (l *FCLayer) Bias() *linalg.Vector {
	return l.bias
}

// Pre returns the cached pre-activation W·node + b.
func (l *FCLayer) Pre() *linalg.Vector {
	return l.pre
}

// Out returns the cached post-activation output.
func (l *FCLayer) Out() *linalg.Vector {
	return l.out
}
