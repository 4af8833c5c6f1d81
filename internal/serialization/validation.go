package serialization

import "fmt"

// ValidateFile checks that every record in f is structurally sound:
// positive sizes, at least one node history, and every vector in a history
// sized to the layer's input.
//
// output_size is not compared with the number of histories. A layer that
// gained nodes between saves keeps its original output_size in files written
// by older tools; the node count is len(weights_history).
func ValidateFile(f VersionedFile) error {
	for i, rec := range f {
		if err := ValidateRecord(i, rec); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRecord checks a single layer record. layer is used for error reporting.
func ValidateRecord(layer int, rec LayerRecord) error {
	if rec.InputSize < 1 || rec.OutputSize < 1 {
		return &ValidationError{
			Type:    "invalid_shape",
			Layer:   layer,
			Node:    -1,
			Details: fmt.Sprintf("input_size=%d, output_size=%d (must be positive)", rec.InputSize, rec.OutputSize),
		}
	}

	if len(rec.WeightsHistory) == 0 {
		return &ValidationError{
			Type:    "node_count",
			Layer:   layer,
			Node:    -1,
			Details: "no node histories",
		}
	}

	for j, h := range rec.WeightsHistory {
		if err := validateHistory(layer, j, h, rec.InputSize); err != nil {
			return err
		}
	}

	return nil
}

// validateHistory checks that h has a base and that every entry has size elements.
func validateHistory(layer, node int, h NodeHistory, size int) error {
	if len(h) == 0 {
		return &ValidationError{
			Type:    "empty_history",
			Layer:   layer,
			Node:    node,
			Details: "missing base vector",
		}
	}

	for k, v := range h {
		if len(v) != size {
			return &ValidationError{
				Type:    "length_mismatch",
				Layer:   layer,
				Node:    node,
				Details: fmt.Sprintf("entry %d has %d values, expected %d", k, len(v), size),
			}
		}
	}

	return nil
}
