package serialization

import (
	"strings"
	"testing"
)

func validRecord() LayerRecord {
	return LayerRecord{
		Activation:     "sigmoid",
		InputSize:      2,
		OutputSize:     2,
		WeightsHistory: []NodeHistory{{{1, 2}, {0, 1}}, {{3, 4}}},
	}
}

// TestValidateFile_Valid verifies that a well-formed file passes validation.
func TestValidateFile_Valid(t *testing.T) {
	f := VersionedFile{validRecord(), validRecord()}
	if err := ValidateFile(f); err != nil {
		t.Errorf("Expected no error for valid file, got: %v", err)
	}
	if err := ValidateFile(nil); err != nil {
		t.Errorf("Expected no error for empty file, got: %v", err)
	}
}

// TestValidateRecord_Invalid detects each kind of structural damage.
func TestValidateRecord_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*LayerRecord)
		wantType string
		wantNode int
	}{
		{
			name:     "zero input size",
			mutate:   func(r *LayerRecord) { r.InputSize = 0 },
			wantType: "invalid_shape",
			wantNode: -1,
		},
		{
			name:     "negative output size",
			mutate:   func(r *LayerRecord) { r.OutputSize = -1 },
			wantType: "invalid_shape",
			wantNode: -1,
		},
		{
			name:     "no histories",
			mutate:   func(r *LayerRecord) { r.WeightsHistory = nil },
			wantType: "node_count",
			wantNode: -1,
		},
		{
			name:     "empty history",
			mutate:   func(r *LayerRecord) { r.WeightsHistory[1] = NodeHistory{} },
			wantType: "empty_history",
			wantNode: 1,
		},
		{
			name:     "short base",
			mutate:   func(r *LayerRecord) { r.WeightsHistory[1] = NodeHistory{{3}} },
			wantType: "length_mismatch",
			wantNode: 1,
		},
		{
			name:     "long delta",
			mutate:   func(r *LayerRecord) { r.WeightsHistory[0][1] = []float64{0, 1, 2} },
			wantType: "length_mismatch",
			wantNode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := ValidateRecord(3, rec)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if ve.Type != tt.wantType {
				t.Errorf("Expected type %q, got %q", tt.wantType, ve.Type)
			}
			if ve.Layer != 3 || ve.Node != tt.wantNode {
				t.Errorf("Expected layer 3 node %d, got layer %d node %d", tt.wantNode, ve.Layer, ve.Node)
			}
		})
	}
}

// TestValidateRecord_StaleOutputSize accepts records whose output_size lags
// behind the number of stored histories, and the reverse.
func TestValidateRecord_StaleOutputSize(t *testing.T) {
	grown := validRecord()
	grown.OutputSize = 1
	if err := ValidateRecord(0, grown); err != nil {
		t.Errorf("Expected no error for grown layer, got: %v", err)
	}

	shrunk := validRecord()
	shrunk.WeightsHistory = shrunk.WeightsHistory[:1]
	if err := ValidateRecord(0, shrunk); err != nil {
		t.Errorf("Expected no error for shrunk layer, got: %v", err)
	}
}

// TestValidationError_Message checks the error formatting.
func TestValidationError_Message(t *testing.T) {
	withNode := (&ValidationError{Type: "empty_history", Layer: 1, Node: 2, Details: "missing base vector"}).Error()
	if withNode != "empty_history: layer 1 node 2: missing base vector" {
		t.Errorf("Unexpected message: %s", withNode)
	}

	layerOnly := (&ValidationError{Type: "node_count", Layer: 0, Node: -1, Details: "x"}).Error()
	if !strings.HasPrefix(layerOnly, "node_count: layer 0:") {
		t.Errorf("Unexpected message: %s", layerOnly)
	}
}
