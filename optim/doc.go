// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the update step for training an MLP with
// mini-batch gradient descent.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent averaged over a batch
//   - Accumulate: forward, loss and backward for one sample, summed into a batch gradient
//   - Optimizer interface for custom update rules
//
// # Training Loop Pattern
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 5})
//	scratch := nn.NewGradient(net)
//	acc := nn.NewGradient(net)
//
//	for epoch := range numEpochs {
//	    for _, batch := range batches {
//	        // 1. Sum per-sample gradients
//	        for _, i := range batch {
//	            optim.Accumulate(net, acc, scratch, inputs[i], labels[i])
//	        }
//
//	        // 2. Apply lr / len(batch) of the sum and clear acc
//	        sgd.Step(net, acc, len(batch))
//	    }
//	}
package optim
