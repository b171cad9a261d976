package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber reads a calculator operand
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	return n, nil
}

// ParseAmount reads a money amount such as "$250,000.00". A leading dollar
// sign and thousands separators are allowed; the amount must be positive.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	d, err := parseDecimal(cleaned)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// ParseRate reads an annual percentage rate and returns it as a decimal
// fraction. "5.5%" and "5.5" both mean 0.055; values below one without a
// percent sign, such as "0.055", are already fractions.
func ParseRate(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	percent := strings.HasSuffix(cleaned, "%")
	cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "%"))

	d, err := parseDecimal(cleaned)
	if err != nil {
		return 0, err
	}
	if percent || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		d = d.Div(decimal.NewFromInt(100))
	}
	return d.InexactFloat64(), nil
}

// parseDecimal parses a strictly positive decimal
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, ErrEmpty
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNotPositive, s)
	}
	return d, nil
}
