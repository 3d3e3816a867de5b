package nn

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/mlp/internal/linalg"
)

// Loss selects the loss function evaluated against the network output.
//
// Each loss provides the scalar value and its gradient with respect to the
// output vector. Losses are only used at the output layer.
//
// Example:
//
//	l := nn.MSE
//	value, err := l.Value(out, label)
//	grad, err := l.Gradient(out, label) // ∂loss/∂out
type Loss uint8

// Supported losses.
const (
	// MSE is the summed squared error Σ(out_i − label_i)².
	MSE Loss = iota
	// CrossEntropy is −Σ label_i·ln(out_i). Every output must be strictly
	// positive.
	CrossEntropy
	// SoftmaxCrossEntropy applies Softmax to the output before CrossEntropy.
	// Its gradient is computed directly as softmax(out) − label.
	SoftmaxCrossEntropy
)

var lossNames = [...]string{
	MSE:                 "mse",
	CrossEntropy:        "ce",
	SoftmaxCrossEntropy: "softmax_ce",
}

// ParseLoss resolves a case-insensitive loss name ("mse", "ce", "softmax_ce").
func ParseLoss(name string) (Loss, error) {
	for l, n := range lossNames {
		if strings.EqualFold(name, n) {
			return Loss(l), nil
		}
	}
	return 0, fmt.Errorf("%w: loss %q", ErrUnknownFunction, name)
}

// String returns the loss name.
func (l Loss) String() string {
	if int(l) < len(lossNames) {
		return lossNames[l]
	}
	return fmt.Sprintf("Loss(%d)", uint8(l))
}

// Value computes the scalar loss of out against label.
//
// Parameters:
//   - out: Network output
//   - label: Target vector with the same length as out
//
// Returns the loss, or an error wrapping linalg.ErrShapeMismatch on a length
// mismatch or ErrNumericDomain when a cross-entropy input is not strictly
// positive.
func (l Loss) Value(out, label *linalg.Vector) (float64, error) {
	if err := checkLossShape(l, out, label); err != nil {
		return 0, err
	}
	switch l {
	case MSE:
		var sum float64
		for i, o := range out.Data() {
			d := o - label.At(i)
			sum += d * d
		}
		return sum, nil
	case CrossEntropy:
		return crossEntropy(out, label)
	case SoftmaxCrossEntropy:
		return crossEntropy(Softmax(out), label)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFunction, l)
	}
}

// Gradient computes ∂loss/∂out as a new vector.
//
// Parameters:
//   - out: Network output
//   - label: Target vector with the same length as out
//
// Returns the gradient, or the same errors as Value.
func (l Loss) Gradient(out, label *linalg.Vector) (*linalg.Vector, error) {
	if err := checkLossShape(l, out, label); err != nil {
		return nil, err
	}
	switch l {
	case MSE:
		g := out.Copy()
		if err := g.Sub(label); err != nil {
			return nil, err
		}
		g.Scale(2)
		return g, nil
	case CrossEntropy:
		g := linalg.Zeros(out.Len())
		for i, o := range out.Data() {
			if o <= 0 {
				return nil, domainErr(i, o)
			}
			g.SetAt(i, -label.At(i)/o)
		}
		return g, nil
	case SoftmaxCrossEntropy:
		g := Softmax(out)
		if err := g.Sub(label); err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, l)
	}
}

// Softmax returns exp(x_i) / Σ_j exp(x_j) as a new vector.
//
// The exponentials are taken directly without subtracting max(x), so very
// large inputs overflow to +Inf and the result becomes NaN.
func Softmax(x *linalg.Vector) *linalg.Vector {
	out := x.Copy()
	out.Map(math.Exp)
	out.Scale(1 / out.Sum())
	return out
}

func crossEntropy(out, label *linalg.Vector) (float64, error) {
	var sum float64
	for i, o := range out.Data() {
		if o <= 0 {
			return 0, domainErr(i, o)
		}
		sum -= label.At(i) * math.Log(o)
	}
	return sum, nil
}

func checkLossShape(l Loss, out, label *linalg.Vector) error {
	if out.Len() != label.Len() {
		return &linalg.ShapeError{
			Op:   "Loss(" + l.String() + ")",
			Got:  []int{label.Len()},
			Want: []int{out.Len()},
		}
	}
	return nil
}

func domainErr(i int, x float64) error {
	return fmt.Errorf("cross-entropy: %w: output[%d] = %g, must be > 0", ErrNumericDomain, i, x)
}
