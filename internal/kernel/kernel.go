// Package kernel provides the scalar and vector primitives used by the
// inference engine: dot product, elementwise activations and softmax.
//
// All functions are pure and safe for concurrent use.
package kernel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is returned when two vectors that must be the same
// length are not.
var ErrLengthMismatch = errors.New("vector length mismatch")

// Dot returns the inner product of a and b.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	// floats.Dot panics on mismatched lengths, checked above.
	return floats.Dot(a, b), nil
}

// Sigmoid computes 1 / (1 + exp(-x)).
//
// The negative branch is evaluated as exp(x) / (1 + exp(x)) so large
// magnitudes saturate to 0 or 1 instead of producing Inf/Inf.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// Tanh computes the hyperbolic tangent of x.
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// ReLU computes max(0, x).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Softmax returns exp(v_i - max(v)) / sum_j exp(v_j - max(v)).
//
// The result always has len(v) elements; an empty input yields an empty slice.
// When some scores are +Inf they share the probability mass equally and every
// finite score gets 0. All -Inf scores give a uniform result. NaN scores
// propagate.
func Softmax(v []float64) []float64 {
	out := make([]float64, len(v))
	if len(v) == 0 {
		return out
	}

	maxVal := floats.Max(v)
	switch {
	case math.IsInf(maxVal, 1):
		for i, x := range v {
			if math.IsInf(x, 1) {
				out[i] = 1
			}
		}
	case math.IsInf(maxVal, -1):
		for i := range out {
			out[i] = 1
		}
	default:
		for i, x := range v {
			out[i] = math.Exp(x - maxVal)
		}
	}
	floats.Scale(1/floats.Sum(out), out)

	return out
}
