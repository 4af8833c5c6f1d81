package serialization

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Reconstruct returns the weights of h at the given version.
//
// version is the number of deltas to apply on top of the base. Latest
// applies all of them; values above the recorded count are clamped to it.
// The returned slice is freshly allocated.
func Reconstruct(h NodeHistory, version int) ([]float64, error) {
	if version < 0 && version != Latest {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, version)
	}
	if len(h) == 0 {
		return nil, &ValidationError{Type: "empty_history", Node: -1, Details: "missing base vector"}
	}

	deltas := h.Deltas()
	if version != Latest && version < len(deltas) {
		deltas = deltas[:version]
	}

	w := append([]float64(nil), h.Base()...)
	for k, d := range deltas {
		if len(d) != len(w) {
			return nil, &ValidationError{
				Type:    "length_mismatch",
				Node:    -1,
				Details: fmt.Sprintf("delta %d has %d values, base has %d", k+1, len(d), len(w)),
			}
		}
		floats.Add(w, d)
	}

	return w, nil
}

// Encode folds the current layer weights into an existing versioned file and
// returns the updated file. existing is not modified.
//
// Layers without a record get one whose histories hold only the base. Layers
// with a record get one delta per node, current minus the latest
// reconstructed weights; nodes the record has no history for start a fresh
// history. The static fields of every record are taken from layers, and
// records beyond len(layers) are dropped.
func Encode(existing VersionedFile, layers []LayerSnapshot) (VersionedFile, error) {
	out := make(VersionedFile, 0, len(layers))

	for i, layer := range layers {
		rec := LayerRecord{
			Activation:     layer.Activation,
			InputSize:      layer.InputSize,
			OutputSize:     layer.OutputSize,
			WeightsHistory: make([]NodeHistory, len(layer.Weights)),
		}

		var prev []NodeHistory
		if i < len(existing) {
			prev = existing[i].WeightsHistory
		}

		for j, current := range layer.Weights {
			if j >= len(prev) {
				rec.WeightsHistory[j] = NodeHistory{append([]float64(nil), current...)}
				continue
			}

			h, err := appendDelta(prev[j], current)
			if err != nil {
				var ve *ValidationError
				if errors.As(err, &ve) {
					ve.Layer, ve.Node = i, j
				}
				return nil, err
			}
			rec.WeightsHistory[j] = h
		}

		out = append(out, rec)
	}

	return out, nil
}

// appendDelta returns a copy of h extended by current minus its latest state.
func appendDelta(h NodeHistory, current []float64) (NodeHistory, error) {
	last, err := Reconstruct(h, Latest)
	if err != nil {
		return nil, err
	}
	if len(last) != len(current) {
		return nil, &ValidationError{
			Type:    "shape_mismatch",
			Details: fmt.Sprintf("current weights have %d values, saved history has %d: "+
				"the saved lineage is incompatible with this layer, save to a new file", len(current), len(last)),
		}
	}

	delta := make([]float64, len(current))
	floats.SubTo(delta, current, last)

	next := make(NodeHistory, len(h), len(h)+1)
	copy(next, h)
	return append(next, delta), nil
}

// Decode reconstructs every layer of f at the given version.
// See Reconstruct for the meaning of version.
//
// The OutputSize of each snapshot is the number of stored node histories,
// which may differ from the record's output_size.
func Decode(f VersionedFile, version int) ([]LayerSnapshot, error) {
	if version < 0 && version != Latest {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, version)
	}

	layers := make([]LayerSnapshot, len(f))
	for i, rec := range f {
		weights := make([][]float64, len(rec.WeightsHistory))
		for j, h := range rec.WeightsHistory {
			w, err := Reconstruct(h, version)
			if err != nil {
				var ve *ValidationError
				if errors.As(err, &ve) {
					ve.Layer, ve.Node = i, j
				}
				return nil, err
			}
			weights[j] = w
		}

		layers[i] = LayerSnapshot{
			Activation: rec.Activation,
			InputSize:  rec.InputSize,
			OutputSize: len(weights),
			Weights:    weights,
		}
	}

	return layers, nil
}
