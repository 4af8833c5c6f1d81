// Copyright 2025 Cyron ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/cyron-ml/cyron/internal/kernel"
	"github.com/cyron-ml/cyron/internal/nn"
	"github.com/cyron-ml/cyron/internal/parallel"
	"github.com/cyron-ml/cyron/internal/serialization"
)

// Network is an ordered stack of fully connected layers.
type Network = nn.Network

// Option configures a Network.
type Option = nn.Option

// NewNetwork creates an empty network.
//
// Example:
//
//	net := nn.NewNetwork(nn.WithSeed(1))
func NewNetwork(opts ...Option) *Network {
	return nn.NewNetwork(opts...)
}

// WithRand sets the random source used to initialize new layers.
func WithRand(rng *rand.Rand) Option {
	return nn.WithRand(rng)
}

// WithSeed initializes new layers deterministically from seed.
func WithSeed(seed int64) Option {
	return nn.WithSeed(seed)
}

// Layers

// Layer is a fully connected layer without bias.
type Layer = nn.Layer

// NewLayer creates a layer with weights drawn uniformly from [-1, 1].
func NewLayer(inputSize, outputSize int, act Activation, rng *rand.Rand) (*Layer, error) {
	return nn.NewLayer(inputSize, outputSize, act, rng)
}

// NewLayerWithWeights creates a layer from explicit weights, one vector per node.
func NewLayerWithWeights(act Activation, inputSize, outputSize int, weights [][]float64) (*Layer, error) {
	return nn.NewLayerWithWeights(act, inputSize, outputSize, weights)
}

// Activations

// Activation names the nonlinearity applied by a layer.
type Activation = nn.Activation

// Known activations.
const (
	Identity = nn.Identity
	Sigmoid  = nn.Sigmoid
	ReLU     = nn.ReLU
	Tanh     = nn.Tanh
	Softmax  = nn.Softmax

	DefaultActivation = nn.DefaultActivation
)

// Checkpoints

// Latest selects the newest version in LoadVersion.
const Latest = serialization.Latest

// ValidationError describes a structural problem in a weights file.
type ValidationError = serialization.ValidationError

// Errors

var (
	ErrLengthMismatch = kernel.ErrLengthMismatch
	ErrInvalidShape   = nn.ErrInvalidShape
	ErrShapeMismatch  = nn.ErrShapeMismatch
	ErrNodeIndex      = nn.ErrNodeIndex
	ErrInvalidWorkers = parallel.ErrInvalidWorkers
	ErrNotFound       = serialization.ErrNotFound
	ErrParse          = serialization.ErrParse
	ErrInvalidVersion = serialization.ErrInvalidVersion
)
