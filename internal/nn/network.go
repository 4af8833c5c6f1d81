package nn

import (
	"fmt"
	"math/rand"
)

// Network is an ordered stack of fully connected layers.
//
// Each layer's output becomes the next layer's input. Layers are only ever
// appended; Load replaces the whole stack.
//
// Example:
//
//	net := nn.NewNetwork(nn.WithSeed(42))
//	_ = net.AddLayer(3, 4, nn.ReLU)
//	_ = net.AddLayer(4, 2, nn.Softmax)
//
//	probs, err := net.Forward([]float64{0.1, 0.2, 0.3})
type Network struct {
	layers []*Layer
	rng    *rand.Rand
}

// Option configures a Network.
type Option func(*Network)

// WithRand sets the random source used to initialize new layers.
func WithRand(rng *rand.Rand) Option {
	return func(n *Network) {
		n.rng = rng
	}
}

// WithSeed initializes new layers from a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return WithRand(rand.New(rand.NewSource(seed)))
}

// NewNetwork creates an empty network.
func NewNetwork(opts ...Option) *Network {
	n := &Network{}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = newRand()
	}
	return n
}

// AddLayer appends a randomly initialized layer.
//
// An empty act means DefaultActivation. Returns ErrShapeMismatch if
// inputSize differs from the previous layer's output size.
func (n *Network) AddLayer(inputSize, outputSize int, act Activation) error {
	if act == "" {
		act = DefaultActivation
	}
	if last := n.last(); last != nil && last.outputSize != inputSize {
		return fmt.Errorf("%w: layer %d input_size %d, previous output_size %d",
			ErrShapeMismatch, len(n.layers), inputSize, last.outputSize)
	}

	layer, err := NewLayer(inputSize, outputSize, act, n.rng)
	if err != nil {
		return err
	}
	n.layers = append(n.layers, layer)
	return nil
}

// Forward feeds input through every layer in order and returns the last output.
//
// An empty network returns a copy of input. A wrong-sized input fails with
// kernel.ErrLengthMismatch.
func (n *Network) Forward(input []float64) ([]float64, error) {
	current := append([]float64(nil), input...)

	for i, layer := range n.layers {
		out, err := layer.Forward(current)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		current = out
	}

	return current, nil
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns layer i, or nil if i is out of range.
func (n *Network) Layer(i int) *Layer {
	if i < 0 || i >= len(n.layers) {
		return nil
	}
	return n.layers[i]
}

// Layers returns the layers in order. The slice is a copy; the layers are shared.
func (n *Network) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

func (n *Network) last() *Layer {
	if len(n.layers) == 0 {
		return nil
	}
	return n.layers[len(n.layers)-1]
}
