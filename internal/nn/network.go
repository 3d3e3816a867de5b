package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/linalg"
)

// MLP is a multilayer perceptron: an ordered chain of FCLayers plus the loss
// evaluated against the last layer's output.
//
// layers[0] consumes the external input and layers[len-1] produces the
// prediction. Consecutive layers are always shape-compatible.
//
// Example:
//
//	hidden, _ := nn.NewFCLayer(784, 16, nil, nil, nn.Sigmoid)
//	output, _ := nn.NewFCLayer(16, 10, nil, nil, nn.Sigmoid)
//	net, err := nn.NewMLP([]*nn.FCLayer{hidden, output}, nn.MSE)
//	if err != nil {
//	    return err
//	}
//	net.InitXavier(rand.NewPCG(1, 2))
//
//	grad := nn.NewGradient(net)
//	_ = net.Forward(image)
//	_ = net.Grad(label, grad)
type MLP struct {
	layers []*FCLayer
	loss   Loss
}

// NewMLP creates a network from layers.
//
// Parameters:
//   - layers: Layers in forward order; each is deep-copied
//   - loss: Loss evaluated against the final output
//
// Returns ErrEmptyNetwork for an empty slice and an error wrapping
// linalg.ErrShapeMismatch when layers[i].NextSize() != layers[i+1].Size().
func NewMLP(layers []*FCLayer, loss Loss) (*MLP, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyNetwork
	}
	own := make([]*FCLayer, len(layers))
	for i, l := range layers {
		if i > 0 && layers[i-1].nextSize != l.size {
			return nil, &linalg.ShapeError{
				Op:   fmt.Sprintf("NewMLP: layer %d input", i),
				Got:  []int{l.size},
				Want: []int{layers[i-1].nextSize},
			}
		}
		own[i] = l.Copy()
	}
	return &MLP{layers: own, loss: loss}, nil
}

// Len returns the number of layers.
func (n *MLP) Len() int {
	return len(n.layers)
}

// Layers returns the layers in forward order. They are owned by the network.
func (n *MLP) Layers() []*FCLayer {
	return n.layers
}

// Layer returns the i-th layer. It is owned by the network.
func (n *MLP) Layer(i int) *FCLayer {
	return n.layers[i]
}

// LossFunc returns the loss the network trains against.
func (n *MLP) LossFunc() Loss {
	return n.loss
}

// InputSize returns the width of the external input.
func (n *MLP) InputSize() int {
	return n.layers[0].size
}

// OutputSize returns the width of the prediction.
func (n *MLP) OutputSize() int {
	return n.layers[len(n.layers)-1].nextSize
}

// Output returns the last layer's output from the most recent Forward.
func (n *MLP) Output() *linalg.Vector {
	return n.layers[len(n.layers)-1].out
}

// Forward runs input through every layer; the result is available via Output.
func (n *MLP) Forward(input *linalg.Vector) error {
	for i, l := range n.layers {
		if err := l.Forward(input); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		input = l.out
	}
	return nil
}

// Loss evaluates the loss of the current Output against label.
func (n *MLP) Loss(label *linalg.Vector) (float64, error) {
	return n.loss.Value(n.Output(), label)
}

// Predict runs Forward and returns the index of the largest output.
func (n *MLP) Predict(input *linalg.Vector) (int, error) {
	if err := n.Forward(input); err != nil {
		return -1, err
	}
	return n.Output().ArgMax(), nil
}

// Grad backpropagates the loss of the current Output against label and
// writes the per-sample gradient into g, overwriting its previous contents.
//
// Forward must have been called with the sample that label belongs to.
// A g shaped for another network is rejected before it is written to.
//
// Parameters:
//   - label: Target vector with length OutputSize()
//   - g: Gradient created by NewGradient for this network
func (n *MLP) Grad(label *linalg.Vector, g *Gradient) error {
	if err := n.compatible("MLP.Grad", g); err != nil {
		return err
	}
	outGrad, err := n.loss.Gradient(n.Output(), label)
	if err != nil {
		return err
	}
	for i := len(n.layers) - 1; i >= 0; i-- {
		if err := backward(n.layers[i], g.layers[i], outGrad); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		outGrad = g.layers[i].Node
	}
	return nil
}

// Update subtracts g's weight and bias gradients from the parameters.
//
// This is a raw descent step: callers pre-scale g by the learning rate and,
// for mini-batches, by 1/batchSize. The parameters are unchanged on error.
func (n *MLP) Update(g *Gradient) error {
	if err := n.compatible("MLP.Update", g); err != nil {
		return err
	}
	for i, l := range n.layers {
		if err := l.Sub(g.layers[i].params()); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

// compatible checks that g has one layer per network layer and that each
// holds [nextSize, size] weights and nextSize biases.
func (n *MLP) compatible(op string, g *Gradient) error {
	if len(g.layers) != len(n.layers) {
		return &linalg.ShapeError{Op: op, Got: []int{len(g.layers)}, Want: []int{len(n.layers)}}
	}
	for i, l := range n.layers {
		if err := g.layers[i].check(op, i, l.size, l.nextSize); err != nil {
			return err
		}
	}
	return nil
}
