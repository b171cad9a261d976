package amortization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyRate(t *testing.T) {
	assert.InDelta(t, 0.055/12, MonthlyRate(0.055, Nominal), 1e-15)
	assert.InDelta(t, math.Pow(1.055, 1.0/12)-1, MonthlyRate(0.055, Effective), 1e-15)

	// Twelve effective months compound back to the annual rate
	monthly := MonthlyRate(0.08, Effective)
	assert.InDelta(t, 0.08, math.Pow(1+monthly, 12)-1, 1e-12)
}

func TestMonthlyRate_EffectiveBelowNominal(t *testing.T) {
	for _, apr := range []float64{0.01, 0.03, 0.055, 0.12, 0.5, 2} {
		nominal := MonthlyRate(apr, Nominal)
		effective := MonthlyRate(apr, Effective)
		assert.Less(t, effective, nominal, "apr=%v", apr)

		nominalPlan := ComputePlan(200000, nominal, 360)
		effectivePlan := ComputePlan(200000, effective, 360)
		assert.Less(t, effectivePlan.IdenticalPaymentAmount, nominalPlan.IdenticalPaymentAmount, "apr=%v", apr)
	}
}

func TestParseRatePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    RatePolicy
		wantErr bool
	}{
		{input: "nominal", want: Nominal},
		{input: " Effective ", want: Effective},
		{input: "", want: Nominal},
		{input: "compound", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRatePolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
