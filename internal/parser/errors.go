package parser

import "errors"

var (
	// ErrEmpty is returned for blank input
	ErrEmpty = errors.New("input is empty")
	// ErrNotNumber is returned when input does not read as a number
	ErrNotNumber = errors.New("not a number")
	// ErrNotPositive is returned when a value must be greater than zero
	ErrNotPositive = errors.New("must be greater than zero")
	// ErrInvalidPeriod is returned when a repayment period does not match the period grammar
	ErrInvalidPeriod = errors.New("invalid repayment period")
)
