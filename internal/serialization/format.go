package serialization

// Latest selects the newest version when decoding.
const Latest = -1

// NodeHistory is the saved lineage of one node's weights.
// Index 0 is the base vector; the remaining entries are deltas.
type NodeHistory [][]float64

// Base returns the first-ever saved weights.
func (h NodeHistory) Base() []float64 {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// Deltas returns the recorded deltas in save order.
func (h NodeHistory) Deltas() [][]float64 {
	if len(h) < 2 {
		return nil
	}
	return h[1:]
}

// LayerRecord is one layer's entry in a versioned file.
type LayerRecord struct {
	Activation     string        `json:"activation"`      // Activation tag (e.g., "relu", "softmax")
	InputSize      int           `json:"input_size"`      // Length of every weight vector
	OutputSize     int           `json:"output_size"`     // Number of nodes
	WeightsHistory []NodeHistory `json:"weights_history"` // One history per node
}

// VersionedFile is the full lineage of a network: one record per layer.
type VersionedFile []LayerRecord

// LayerSnapshot is a point-in-time copy of a layer's static fields and weights.
// It is what the codec consumes on encode and produces on decode.
type LayerSnapshot struct {
	Activation string
	InputSize  int
	OutputSize int
	Weights    [][]float64 // [OutputSize][InputSize]
}

// Versions returns the number of saved updates in f: the largest delta
// count over all nodes. A file written by a single save has zero versions.
func Versions(f VersionedFile) int {
	n := 0
	for _, rec := range f {
		for _, h := range rec.WeightsHistory {
			n = max(n, len(h.Deltas()))
		}
	}
	return n
}
