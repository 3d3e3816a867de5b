// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/linalg"
)

// Activation is an element-wise activation function.
type Activation = nn.Activation

// Activations.
const (
	Sigmoid  = nn.Sigmoid
	Identity = nn.Identity
	ReLU     = nn.ReLU
	Tanh     = nn.Tanh
)

// ParseActivation returns the activation with the given name
// ("sigmoid", "identity", "relu", "tanh").
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Loss is a loss function over an output and a label vector.
type Loss = nn.Loss

// Loss functions.
const (
	MSE                 = nn.MSE
	CrossEntropy        = nn.CrossEntropy
	SoftmaxCrossEntropy = nn.SoftmaxCrossEntropy
)

// ParseLoss returns the loss with the given name ("mse", "ce", "softmax_ce").
func ParseLoss(name string) (Loss, error) {
	return nn.ParseLoss(name)
}

// Softmax returns exp(x_i) / Σ exp(x_j) as a new vector.
func Softmax(x *linalg.Vector) *linalg.Vector {
	return nn.Softmax(x)
}

// Common errors.
var (
	ErrNumericDomain   = nn.ErrNumericDomain
	ErrUnknownFunction = nn.ErrUnknownFunction
	ErrEmptyNetwork    = nn.ErrEmptyNetwork
)

// Layers

// FCLayer is a fully connected layer with its own activation.
type FCLayer = nn.FCLayer

// NewFCLayer creates a size→nextSize layer. Nil weight or bias start at
// zero; non-nil ones are copied.
//
// Example:
//
//	layer, err := nn.NewFCLayer(784, 16, nil, nil, nn.Sigmoid)
func NewFCLayer(size, nextSize int, weight *linalg.Matrix, bias *linalg.Vector, act Activation) (*FCLayer, error) {
	return nn.NewFCLayer(size, nextSize, weight, bias, act)
}

// Networks

// MLP is a chain of fully connected layers with a loss function.
type MLP = nn.MLP

// NewMLP creates a network from copies of layers.
func NewMLP(layers []*FCLayer, loss Loss) (*MLP, error) {
	return nn.NewMLP(layers, loss)
}

// Gradients

// Gradient holds one LayerGrad per network layer.
type Gradient = nn.Gradient

// LayerGrad holds the gradients of one layer.
type LayerGrad = nn.LayerGrad

// NewGradient creates a zero gradient shaped like net.
func NewGradient(net *MLP) *Gradient {
	return nn.NewGradient(net)
}

// Initialization

// XavierBound returns sqrt(6 / (fanIn + fanOut)).
func XavierBound(fanIn, fanOut int) float64 {
	return nn.XavierBound(fanIn, fanOut)
}

// InitXavier draws every weight of net uniformly from ±XavierBound and
// zeroes the biases.
func InitXavier(net *MLP, src rand.Source) {
	net.InitXavier(src)
}
