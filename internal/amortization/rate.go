package amortization

import (
	"fmt"
	"math"
	"strings"
)

// RatePolicy selects how an annual percentage rate becomes a monthly rate
type RatePolicy string

const (
	// Nominal divides the annual rate evenly across twelve months
	Nominal RatePolicy = "nominal"
	// Effective treats the annual rate as effective and takes its twelfth root
	Effective RatePolicy = "effective"
)

// ParseRatePolicy converts a string to a RatePolicy
func ParseRatePolicy(s string) (RatePolicy, error) {
	policy := RatePolicy(strings.ToLower(strings.TrimSpace(s)))
	switch policy {
	case Nominal, Effective:
		return policy, nil
	case "":
		return Nominal, nil
	default:
		return "", fmt.Errorf("invalid rate policy: %s", s)
	}
}

// MonthlyRate derives the periodic monthly rate from annualRate, a decimal
// fraction (0.055 for 5.5%). Callers guarantee annualRate > 0.
func MonthlyRate(annualRate float64, policy RatePolicy) float64 {
	if policy == Effective {
		return math.Pow(1+annualRate, 1.0/12) - 1
	}
	return annualRate / 12
}
