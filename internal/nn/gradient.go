package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/linalg"
)

// LayerGrad holds the gradients of one FCLayer.
//
// Weight and Bias are the parameter gradients consumed by MLP.Update. Pre,
// Node and Out are backward bookkeeping: the gradients with respect to the
// layer's pre-activation, input and output for the most recent sample.
type LayerGrad struct {
	Weight *linalg.Matrix // [nextSize, size]
	Bias   *linalg.Vector // [nextSize]
	Pre    *linalg.Vector // [nextSize]
	Node   *linalg.Vector // [size]
	Out    *linalg.Vector // [nextSize]
}

func newLayerGrad(size, nextSize int) *LayerGrad {
	w, err := linalg.NewMatrix(nextSize, size, nil)
	if err != nil {
		panic(err)
	}
	return &LayerGrad{
		Weight: w,
		Bias:   linalg.Zeros(nextSize),
		Pre:    linalg.Zeros(nextSize),
		Node:   linalg.Zeros(size),
		Out:    linalg.Zeros(nextSize),
	}
}

// params views g as an FCLayer so layer arithmetic applies to gradients.
func (g *LayerGrad) params() *FCLayer {
	return &FCLayer{
		size:     g.Weight.Cols(),
		nextSize: g.Weight.Rows(),
		node:     g.Node,
		weight:   g.Weight,
		bias:     g.Bias,
		pre:      g.Pre,
		out:      g.Out,
	}
}

func (g *LayerGrad) clear() {
	g.params().Clear()
}

// check reports whether g holds gradients for a size→nextSize layer.
func (g *LayerGrad) check(op string, i, size, nextSize int) error {
	if g.Weight.Rows() != nextSize || g.Weight.Cols() != size || g.Bias.Len() != nextSize {
		return &linalg.ShapeError{
			Op:   fmt.Sprintf("%s: layer %d", op, i),
			Got:  []int{g.Weight.Rows(), g.Weight.Cols(), g.Bias.Len()},
			Want: []int{nextSize, size, nextSize},
		}
	}
	return nil
}

// Gradient mirrors an MLP's layer shapes and holds gradients instead of
// parameters.
//
// A Gradient is typically used two ways during mini-batch training: one
// instance receives the single most recent sample's gradient from MLP.Grad,
// and a second accumulates those per-sample gradients across the batch.
//
// Example:
//
//	scratch := nn.NewGradient(net)
//	acc := nn.NewGradient(net)
//	for _, s := range batch {
//	    _ = net.Forward(s.Image)
//	    _ = net.Grad(s.Label, scratch)
//	    _ = acc.Add(scratch)
//	}
//	acc.Scale(lr / float64(len(batch)))
//	_ = net.Update(acc)
//	acc.Clear()
type Gradient struct {
	layers []*LayerGrad
}

// NewGradient creates a zero gradient shaped like net.
func NewGradient(net *MLP) *Gradient {
	layers := make([]*LayerGrad, len(net.layers))
	for i, l := range net.layers {
		layers[i] = newLayerGrad(l.size, l.nextSize)
	}
	return &Gradient{layers: layers}
}

// Len returns the number of layers.
func (g *Gradient) Len() int {
	return len(g.layers)
}

// Layer returns the i-th layer's gradient.
func (g *Gradient) Layer(i int) *LayerGrad {
	return g.layers[i]
}

// Clear zeroes every layer.
func (g *Gradient) Clear() {
	for _, l := range g.layers {
		l.clear()
	}
}

// Add accumulates o's weight and bias gradients into g.
//
// Every layer's shape is checked before anything is added, so g is left
// untouched on error.
func (g *Gradient) Add(o *Gradient) error {
	if len(g.layers) != len(o.layers) {
		return &linalg.ShapeError{Op: "Gradient.Add", Got: []int{len(o.layers)}, Want: []int{len(g.layers)}}
	}
	for i, l := range g.layers {
		if err := o.layers[i].check("Gradient.Add", i, l.Weight.Cols(), l.Weight.Rows()); err != nil {
			return err
		}
	}
	for i, l := range g.layers {
		if err := l.params().Add(o.layers[i].params()); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

// Scale multiplies every weight and bias gradient by k.
func (g *Gradient) Scale(k float64) {
	for _, l := range g.layers {
		l.params().Scale(k)
	}
}

// Equal reports whether g and o hold identical weight and bias gradients.
func (g *Gradient) Equal(o *Gradient) bool {
	if len(g.layers) != len(o.layers) {
		return false
	}
	for i, l := range g.layers {
		if !l.Weight.Equal(o.layers[i].Weight) || !l.Bias.Equal(o.layers[i].Bias) {
			return false
		}
	}
	return true
}
