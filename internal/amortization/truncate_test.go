package amortization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		digits int
		want   float64
	}{
		{name: "float representation below half", value: 1.005, digits: 2, want: 1.00},
		{name: "would round up", value: 1.999, digits: 2, want: 1.99},
		{name: "exact cents survive scaling error", value: 0.29, digits: 2, want: 0.29},
		{name: "already truncated", value: 1135.58, digits: 2, want: 1135.58},
		{name: "zero digits", value: 7.9, digits: 0, want: 7},
		{name: "more digits", value: 3.14159, digits: 4, want: 3.1415},
		{name: "negative would round away", value: -1.999, digits: 2, want: -1.99},
		{name: "negative exact", value: -0.29, digits: 2, want: -0.29},
		{name: "zero", value: 0, digits: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.value, tt.digits))
		})
	}
}

func TestTruncate_NeverExceedsMagnitude(t *testing.T) {
	// Sweep both signs through values with long binary expansions
	for i := 0; i < 20000; i++ {
		for _, sign := range []float64{1, -1} {
			value := sign * float64(i) * 0.0137
			got := Truncate(value, 2)
			assert.LessOrEqual(t, math.Abs(got), math.Abs(value), "Truncate(%v, 2)", value)
			assert.Less(t, math.Abs(value)-math.Abs(got), 0.01+1e-12, "Truncate(%v, 2) dropped more than a cent", value)
		}
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 916.67, Round(916.6666666, 2))
	assert.Equal(t, 916.66, Round(916.6649, 2))
	assert.Equal(t, -2.5, Round(-2.45, 1))
	assert.Equal(t, 3.0, Round(2.5, 0))
}
