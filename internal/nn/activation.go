package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation selects the element-wise nonlinearity applied by a layer.
//
// Each activation resolves to a pair of scalar functions: Apply for the
// forward pass and Derivative for the backward pass. Derivative takes the
// pre-activation value, so backprop can evaluate f'(pre[i]) directly.
//
// Example:
//
//	act := nn.Sigmoid
//	y := act.Apply(0.5)       // σ(0.5)
//	dy := act.Derivative(0.5) // σ(0.5)·(1-σ(0.5))
type Activation uint8

// Supported activations.
const (
	// Sigmoid applies σ(x) = 1 / (1 + exp(-x)).
	Sigmoid Activation = iota
	// Identity passes values through unchanged.
	Identity
	// ReLU applies max(0, x). Its derivative at 0 is taken to be 0.
	ReLU
	// Tanh applies the hyperbolic tangent.
	Tanh
)

var activationNames = [...]string{
	Sigmoid:  "sigmoid",
	Identity: "identity",
	ReLU:     "relu",
	Tanh:     "tanh",
}

// ParseActivation resolves a case-insensitive activation name.
func ParseActivation(name string) (Activation, error) {
	for a, n := range activationNames {
		if strings.EqualFold(name, n) {
			return Activation(a), nil
		}
	}
	return 0, fmt.Errorf("%w: activation %q", ErrUnknownFunction, name)
}

// String returns the activation name.
func (a Activation) String() string {
	if int(a) < len(activationNames) {
		return activationNames[a]
	}
	return fmt.Sprintf("Activation(%d)", uint8(a))
}

// Apply evaluates the activation at x.
func (a Activation) Apply(x float64) float64 {
	switch a {
	case Sigmoid:
		return sigmoid(x)
	case Identity:
		return x
	case ReLU:
		return math.Max(0, x)
	case Tanh:
		return math.Tanh(x)
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", uint8(a)))
	}
}

// Derivative evaluates the activation's derivative at x.
func (a Activation) Derivative(x float64) float64 {
	switch a {
	case Sigmoid:
		s := sigmoid(x)
		return s * (1 - s)
	case Identity:
		return 1
	case ReLU:
		if x > 0 {
			return 1
		}
		return 0
	case Tanh:
		th := math.Tanh(x)
		return 1 - th*th
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", uint8(a)))
	}
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
