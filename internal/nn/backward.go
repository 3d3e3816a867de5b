package nn

import (
	"github.com/born-ml/mlp/internal/linalg"
)

// backward runs the chain rule through one layer.
//
// Given outGrad = ∂L/∂out it writes into g:
//
//	g.Out    = outGrad
//	g.Pre    = act'(pre) ⊙ outGrad
//	g.Bias   = g.Pre
//	g.Weight = g.Pre ⊗ node
//	g.Node   = Wᵀ·g.Pre
//
// g.Node is ∂L/∂node and becomes outGrad for the preceding layer.
func backward(l *FCLayer, g *LayerGrad, outGrad *linalg.Vector) error {
	if err := g.Out.Set(outGrad.Len(), outGrad.Data()); err != nil {
		return err
	}

	pre := l.pre.Copy()
	pre.Map(l.act.Derivative)
	if err := pre.MulElem(g.Out); err != nil {
		return err
	}
	g.Pre = pre

	g.Bias = pre.Copy()
	g.Weight = linalg.Outer(pre, l.node)

	wt := l.weight.Copy()
	wt.Transpose()
	node := pre.Copy()
	if err := wt.Act(node); err != nil {
		return err
	}
	g.Node = node
	return nil
}
