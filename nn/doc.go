// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides fully connected layers, activations, losses and the
// multilayer perceptron built from them.
//
// # Overview
//
// This package contains:
//   - Layers: FCLayer (weight, bias and one activation)
//   - Activations: Sigmoid, Identity, ReLU, Tanh
//   - Loss functions: MSE, CrossEntropy, SoftmaxCrossEntropy
//   - Networks: MLP with Forward, Grad and Update
//   - Gradients: Gradient, one LayerGrad per layer
//   - Initialization: Xavier uniform
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/mlp/linalg"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    l1, _ := nn.NewFCLayer(784, 16, nil, nil, nn.Sigmoid)
//	    l2, _ := nn.NewFCLayer(16, 10, nil, nil, nn.Sigmoid)
//	    net, _ := nn.NewMLP([]*nn.FCLayer{l1, l2}, nn.MSE)
//	    net.InitXavier(rand.NewPCG(1, 2))
//
//	    // Forward pass
//	    if err := net.Forward(input); err != nil {
//	        log.Fatal(err)
//	    }
//	    loss, _ := net.Loss(label)
//	}
//
// # Backpropagation
//
// Grad writes the gradient of the loss of the last forward pass into a
// Gradient shaped like the network. It overwrites, so a batch is summed
// into a separate accumulator:
//
//	scratch := nn.NewGradient(net)
//	acc := nn.NewGradient(net)
//	for i := range batch {
//	    net.Forward(inputs[i])
//	    net.Grad(labels[i], scratch)
//	    acc.Add(scratch)
//	}
//	acc.Scale(lr / float64(len(batch)))
//	net.Update(acc)
//
// # Loss Functions
//
// CrossEntropy expects strictly positive outputs and reports
// ErrNumericDomain otherwise. SoftmaxCrossEntropy applies softmax to raw
// outputs first; its gradient is softmax(out) - label.
package nn
