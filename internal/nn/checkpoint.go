package nn

import (
	"fmt"

	"github.com/cyron-ml/cyron/internal/serialization"
)

// Save records the network's current weights in the versioned file at path.
//
// The first save to a path stores every node's weights as its base. Each
// later save appends one delta per node: the current weights minus the
// weights reconstructed from the file. A file that is not valid JSON is
// treated as absent and overwritten with a fresh lineage. A file that parses
// but fails validation is left untouched and Save returns
// serialization.ErrParse.
//
// The file is rewritten in place and not atomically. Save and Load must not
// run concurrently against the same path; callers serialize access.
//
// Example:
//
//	if err := net.Save("weights.json"); err != nil {
//	    log.Fatal(err)
//	}
func (n *Network) Save(path string) error {
	existing, err := serialization.ReadFileLenient(path)
	if err != nil {
		return fmt.Errorf("failed to read existing weights: %w", err)
	}

	updated, err := serialization.Encode(existing, n.snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}

	if err := serialization.WriteFile(path, updated); err != nil {
		return fmt.Errorf("failed to save weights: %w", err)
	}

	return nil
}

// Load replaces the network's layers with the latest version stored at path.
func (n *Network) Load(path string) error {
	return n.LoadVersion(path, serialization.Latest)
}

// LoadVersion replaces the network's layers with the given version stored at path.
//
// Version 0 is the first save; version k applies the first k deltas.
// A version beyond the recorded history loads the latest state.
//
// Returns serialization.ErrNotFound if path does not exist,
// serialization.ErrParse if it is corrupt, and
// serialization.ErrInvalidVersion for negative versions other than
// serialization.Latest. On error the network is left unchanged.
func (n *Network) LoadVersion(path string, version int) error {
	file, err := serialization.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load weights: %w", err)
	}

	snapshots, err := serialization.Decode(file, version)
	if err != nil {
		return fmt.Errorf("failed to decode weights: %w", err)
	}

	layers := make([]*Layer, len(snapshots))
	for i, s := range snapshots {
		layer, err := NewLayerWithWeights(Activation(s.Activation), s.InputSize, s.OutputSize, s.Weights)
		if err != nil {
			return fmt.Errorf("%w: layer %d: %w", serialization.ErrParse, i, err)
		}
		if i > 0 && layers[i-1].outputSize != layer.inputSize {
			return fmt.Errorf("%w: layer %d: %w: input_size %d, previous output_size %d",
				serialization.ErrParse, i, ErrShapeMismatch, layer.inputSize, layers[i-1].outputSize)
		}
		layers[i] = layer
	}

	n.layers = layers
	return nil
}

// snapshot exposes every layer to the codec. Weights are shared, not copied;
// Encode never retains or modifies them.
func (n *Network) snapshot() []serialization.LayerSnapshot {
	out := make([]serialization.LayerSnapshot, len(n.layers))
	for i, l := range n.layers {
		out[i] = serialization.LayerSnapshot{
			Activation: string(l.activation),
			InputSize:  l.inputSize,
			OutputSize: l.outputSize,
			Weights:    l.nodes,
		}
	}
	return out
}
