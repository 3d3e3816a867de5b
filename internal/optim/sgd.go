package optim

import (
	"errors"
	"fmt"

	"github.com/born-ml/mlp/internal/nn"
)

// ErrInvalidBatch is returned when Step is called with a non-positive batch size.
var ErrInvalidBatch = errors.New("batch size must be > 0")

// SGD implements mini-batch gradient descent.
//
// Update rule:
//
//	param = param - lr * (Σ gradient) / batchSize
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 5})
//	// ... accumulate batchSize samples into acc ...
//	if err := optimizer.Step(net, acc, batchSize); err != nil {
//	    return err
//	}
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step scales acc by lr/batchSize, subtracts it from net's parameters and
// clears acc.
func (s *SGD) Step(net *nn.MLP, acc *nn.Gradient, batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("SGD.Step: %w: %d", ErrInvalidBatch, batchSize)
	}
	acc.Scale(s.lr / float64(batchSize))
	if err := net.Update(acc); err != nil {
		return fmt.Errorf("SGD.Step: %w", err)
	}
	acc.Clear()
	return nil
}

// LR returns the learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}
