package nn

import (
	"math"
	"math/rand/v2"
)

// XavierBound returns the Xavier (Glorot) uniform bound sqrt(6 / (fanIn + fanOut)).
func XavierBound(fanIn, fanOut int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}

// InitXavier initializes every layer with Xavier (Glorot) uniform weights.
//
// Weights are drawn from U(-b, b) with b = XavierBound(size, nextSize) and
// biases are set to zero. This keeps the variance of activations roughly
// constant across layers.
//
// Parameters:
//   - src: Random source; nil uses the global math/rand/v2 source
func (n *MLP) InitXavier(src rand.Source) {
	for _, l := range n.layers {
		b := XavierBound(l.size, l.nextSize)
		l.weight.RandUniform(src, -b, b)
		l.bias.Clear()
	}
}
