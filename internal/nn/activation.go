package nn

import "github.com/cyron-ml/cyron/internal/kernel"

// Activation names the nonlinearity applied to a layer's dot products.
//
// The known set is Identity, Sigmoid, ReLU, Tanh and Softmax. Any other tag
// is accepted and behaves like Identity, so files written with unfamiliar
// tags still load and evaluate.
type Activation string

// Known activations.
const (
	Identity Activation = "identity"
	Sigmoid  Activation = "sigmoid"
	ReLU     Activation = "relu"
	Tanh     Activation = "tanh"
	Softmax  Activation = "softmax"
)

// DefaultActivation is used when AddLayer is given an empty tag.
const DefaultActivation = Sigmoid

// elementwise maps each per-node activation to its kernel function.
// Softmax is absent: it operates on the whole layer output.
var elementwise = map[Activation]func(float64) float64{
	Identity: func(x float64) float64 { return x },
	Sigmoid:  kernel.Sigmoid,
	ReLU:     kernel.ReLU,
	Tanh:     kernel.Tanh,
}

// Known reports whether a is one of the predefined activations.
func (a Activation) Known() bool {
	_, ok := elementwise[a]
	return ok || a == Softmax
}

// Apply evaluates a on a single value. Softmax and unknown tags return x unchanged.
func (a Activation) Apply(x float64) float64 {
	if f, ok := elementwise[a]; ok {
		return f(x)
	}
	return x
}

// String implements fmt.Stringer.
func (a Activation) String() string {
	return string(a)
}
