package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	got, err := Dot([]float64{1, 2, 3}, []float64{0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)
}

func TestDot_Empty(t *testing.T) {
	got, err := Dot(nil, []float64{})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestDot_LengthMismatch(t *testing.T) {
	_, err := Dot([]float64{1, 2}, []float64{0.5, 0.5, 0.5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "2 != 3")
}

func TestSigmoid(t *testing.T) {
	assert.InDelta(t, 0.5, Sigmoid(0), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(-2)), Sigmoid(2), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(2)), Sigmoid(-2), 1e-12)

	// Saturation instead of overflow.
	assert.InDelta(t, 1.0, Sigmoid(710), 1e-12)
	assert.InDelta(t, 0.0, Sigmoid(-710), 1e-12)
	assert.False(t, math.IsNaN(Sigmoid(-1e308)))
	assert.False(t, math.IsNaN(Sigmoid(1e308)))
}

func TestTanh(t *testing.T) {
	assert.InDelta(t, 0.0, Tanh(0), 1e-12)
	assert.InDelta(t, math.Tanh(10), Tanh(10), 1e-12)
	assert.InDelta(t, math.Tanh(-10), Tanh(-10), 1e-12)
	assert.Equal(t, 1.0, Tanh(1000))
	assert.Equal(t, -1.0, Tanh(-1000))
}

func TestReLU(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{10, 10},
		{-10, 0},
		{0, 0},
		{0.25, 0.25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReLU(tt.in), "ReLU(%v)", tt.in)
	}
}

func TestSoftmax(t *testing.T) {
	got := Softmax([]float64{1, 2, 3})
	require.Len(t, got, 3)

	sum := 0.0
	for _, v := range got {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Greater(t, got[2], got[1])
	assert.Greater(t, got[1], got[0])
}

func TestSoftmax_NumericalStability(t *testing.T) {
	got := Softmax([]float64{1000, 1001, 1002})
	for _, v := range got {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
	// Shift invariance.
	ref := Softmax([]float64{0, 1, 2})
	for i := range got {
		assert.InDelta(t, ref[i], got[i], 1e-12)
	}
}

func TestSoftmax_Infinite(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"one +Inf", []float64{1, inf, -3}, []float64{0, 1, 0}},
		{"two +Inf", []float64{inf, 0, inf}, []float64{0.5, 0, 0.5}},
		{"all -Inf", []float64{-inf, -inf}, []float64{0.5, 0.5}},
		{"finite and -Inf", []float64{0, -inf}, []float64{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDeltaSlice(t, tt.want, Softmax(tt.in), 1e-12)
		})
	}
}

func TestSoftmax_Empty(t *testing.T) {
	assert.Empty(t, Softmax(nil))
}

func TestSoftmax_DoesNotModifyInput(t *testing.T) {
	in := []float64{3, 1, 2}
	_ = Softmax(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}
