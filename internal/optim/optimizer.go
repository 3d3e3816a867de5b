// Package optim implements the parameter update step for training an MLP.
//
// This package provides:
//   - Optimizer interface: Base interface for update rules
//   - SGD: Plain mini-batch gradient descent
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5})
//	scratch := nn.NewGradient(net)
//	acc := nn.NewGradient(net)
//
//	for _, batch := range batches {
//	    for _, i := range batch {
//	        if _, err := optim.Accumulate(net, acc, scratch, images[i], labels[i]); err != nil {
//	            return err
//	        }
//	    }
//	    if err := sgd.Step(net, acc, len(batch)); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"fmt"

	"github.com/born-ml/mlp/internal/linalg"
	"github.com/born-ml/mlp/internal/nn"
)

// Optimizer is the base interface for update rules.
//
// All optimizers must implement:
//   - Step: Apply an accumulated batch gradient to the network
//   - LR: Report the current learning rate (for logging)
type Optimizer interface {
	// Step applies acc, the sum of batchSize per-sample gradients, to net
	// and leaves acc cleared for the next batch.
	Step(net *nn.MLP, acc *nn.Gradient, batchSize int) error

	// LR returns the learning rate.
	LR() float64
}

// Accumulate runs one sample through net and folds its gradient into acc.
//
// Parameters:
//   - net: Network to evaluate
//   - acc: Batch accumulator
//   - scratch: Per-sample gradient buffer; its contents are overwritten
//   - input, label: The training sample
//
// Returns the sample's loss, measured before any update.
func Accumulate(net *nn.MLP, acc, scratch *nn.Gradient, input, label *linalg.Vector) (float64, error) {
	if err := net.Forward(input); err != nil {
		return 0, fmt.Errorf("forward: %w", err)
	}
	loss, err := net.Loss(label)
	if err != nil {
		return 0, fmt.Errorf("loss: %w", err)
	}
	if err := net.Grad(label, scratch); err != nil {
		return 0, fmt.Errorf("backward: %w", err)
	}
	if err := acc.Add(scratch); err != nil {
		return 0, fmt.Errorf("accumulate: %w", err)
	}
	return loss, nil
}
