// Copyright 2025 Cyron ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feedforward inference with versioned weight checkpoints.
//
// # Overview
//
// This package contains:
//   - Network: ordered stack of fully connected layers
//   - Layer: one weight vector per output node, plus an activation
//   - Activations: Identity, Sigmoid, ReLU, Tanh, Softmax
//   - Batch inference: ForwardBatch over a fixed worker pool
//   - Checkpoints: Save, Load, LoadVersion on a delta-encoded JSON file
//
// # Basic Usage
//
//	import "github.com/cyron-ml/cyron/nn"
//
//	func main() {
//	    net := nn.NewNetwork(nn.WithSeed(42))
//	    if err := net.AddLayer(3, 4, nn.ReLU); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := net.AddLayer(4, 2, nn.Softmax); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    probs, err := net.Forward([]float64{0.1, 0.2, 0.3})
//	}
//
// # Batch Inference
//
// ForwardBatch evaluates many inputs concurrently and returns results in
// input order. The first failing input aborts the batch:
//
//	outputs, err := net.ForwardBatch(inputs, 4)
//
// # Checkpoints
//
// The first Save to a path stores each node's weights as a base vector.
// Every later Save appends one delta per node, so all earlier states remain
// reachable:
//
//	_ = net.Save("weights.json")       // version 0
//	// ... modify weights ...
//	_ = net.Save("weights.json")       // version 1
//
//	v0 := nn.NewNetwork()
//	_ = v0.LoadVersion("weights.json", 0)
//
// Asking for a version past the end of the history loads the latest one.
// Save treats a file that is not valid JSON as absent and refuses to touch one
// that parses but is malformed; Load reports ErrParse for both.
// Neither locks the file, so callers must not run them concurrently on one path.
package nn
