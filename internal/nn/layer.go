package nn

import (
	"fmt"
	"math/rand"

	"github.com/cyron-ml/cyron/internal/kernel"
)

// Layer is a fully connected layer without bias.
//
// It holds one weight vector per output node:
//   - nodes has OutputSize entries
//   - every entry has InputSize values
//
// Output node j computes act(dot(input, nodes[j])). For Softmax the raw dot
// products of all nodes are normalized together.
type Layer struct {
	activation Activation
	inputSize  int
	outputSize int
	nodes      [][]float64 // [output_size][input_size]
}

// NewLayer creates a layer with weights drawn uniformly from [-1, 1].
//
// rng supplies the randomness; nil uses a time-seeded source.
// Returns ErrInvalidShape if either size is less than 1.
func NewLayer(inputSize, outputSize int, act Activation, rng *rand.Rand) (*Layer, error) {
	if inputSize < 1 || outputSize < 1 {
		return nil, fmt.Errorf("%w: input_size=%d, output_size=%d", ErrInvalidShape, inputSize, outputSize)
	}
	if rng == nil {
		rng = newRand()
	}

	nodes := make([][]float64, outputSize)
	for j := range nodes {
		nodes[j] = Uniform(rng, inputSize, -1, 1)
	}

	return &Layer{
		activation: act,
		inputSize:  inputSize,
		outputSize: outputSize,
		nodes:      nodes,
	}, nil
}

// NewLayerWithWeights creates a layer from explicit weights, one vector per node.
// The weights are copied.
func NewLayerWithWeights(act Activation, inputSize, outputSize int, weights [][]float64) (*Layer, error) {
	if inputSize < 1 || outputSize < 1 {
		return nil, fmt.Errorf("%w: input_size=%d, output_size=%d", ErrInvalidShape, inputSize, outputSize)
	}
	if len(weights) != outputSize {
		return nil, fmt.Errorf("%w: got %d nodes, output_size %d", ErrShapeMismatch, len(weights), outputSize)
	}

	nodes := make([][]float64, outputSize)
	for j, w := range weights {
		if len(w) != inputSize {
			return nil, fmt.Errorf("%w: node %d has %d weights, input_size %d", ErrShapeMismatch, j, len(w), inputSize)
		}
		nodes[j] = append([]float64(nil), w...)
	}

	return &Layer{
		activation: act,
		inputSize:  inputSize,
		outputSize: outputSize,
		nodes:      nodes,
	}, nil
}

// Activation returns the layer's activation tag.
func (l *Layer) Activation() Activation { return l.activation }

// InputSize returns the length of each weight vector.
func (l *Layer) InputSize() int { return l.inputSize }

// OutputSize returns the number of nodes.
func (l *Layer) OutputSize() int { return l.outputSize }

// Weights returns a copy of all weight vectors.
func (l *Layer) Weights() [][]float64 {
	out := make([][]float64, len(l.nodes))
	for j, w := range l.nodes {
		out[j] = append([]float64(nil), w...)
	}
	return out
}

// Node returns a copy of node j's weights.
func (l *Layer) Node(j int) ([]float64, error) {
	if j < 0 || j >= len(l.nodes) {
		return nil, fmt.Errorf("%w: %d (layer has %d nodes)", ErrNodeIndex, j, len(l.nodes))
	}
	return append([]float64(nil), l.nodes[j]...), nil
}

// SetWeights replaces node j's weights with a copy of w.
//
// Must not be called while a forward pass over the owning network is running.
func (l *Layer) SetWeights(j int, w []float64) error {
	if j < 0 || j >= len(l.nodes) {
		return fmt.Errorf("%w: %d (layer has %d nodes)", ErrNodeIndex, j, len(l.nodes))
	}
	if len(w) != l.inputSize {
		return fmt.Errorf("%w: got %d weights, input_size %d", ErrShapeMismatch, len(w), l.inputSize)
	}
	copy(l.nodes[j], w)
	return nil
}

// Forward computes the layer's output for one input vector.
//
// The input length is not checked here; a mismatch surfaces as
// kernel.ErrLengthMismatch from the first dot product.
func (l *Layer) Forward(input []float64) ([]float64, error) {
	out := make([]float64, len(l.nodes))
	for j, w := range l.nodes {
		v, err := kernel.Dot(input, w)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", j, err)
		}
		out[j] = l.activation.Apply(v)
	}

	if l.activation == Softmax {
		return kernel.Softmax(out), nil
	}
	return out, nil
}
