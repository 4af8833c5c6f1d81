// Package nn implements the feedforward inference engine.
//
// This package provides:
//   - Activation: string-tagged activation kinds (identity, sigmoid, relu, tanh, softmax)
//   - Layer: fully connected layer storing one weight vector per output node
//   - Network: ordered stack of layers with single and batch forward passes
//   - Save/Load: versioned delta checkpoints via internal/serialization
//
// A Network is not safe for concurrent mutation. Forward and ForwardBatch
// only read weights and may run concurrently with each other.
package nn

import "errors"

// Common errors.
var (
	ErrInvalidShape  = errors.New("layer sizes must be positive")
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrNodeIndex     = errors.New("node index out of range")
)
