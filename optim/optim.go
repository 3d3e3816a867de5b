// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/linalg"
	"github.com/born-ml/mlp/nn"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// ErrInvalidBatch is returned by Step for a non-positive batch size.
var ErrInvalidBatch = optim.ErrInvalidBatch

// SGD (Stochastic Gradient Descent)

// SGD represents plain mini-batch gradient descent.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.5})
//	if err := optimizer.Step(net, acc, batchSize); err != nil {
//	    return err
//	}
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Accumulate runs one sample through net, adds its gradient to acc and
// returns the sample's loss. scratch is overwritten.
func Accumulate(net *nn.MLP, acc, scratch *nn.Gradient, input, label *linalg.Vector) (float64, error) {
	return optim.Accumulate(net, acc, scratch, input, label)
}
