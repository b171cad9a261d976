package calculator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDivideByZero is returned when dividing by zero
	ErrDivideByZero = errors.New("division by zero")
	// ErrUnknownOperation is returned for selectors outside the menu
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation is one of the four calculator operations
type Operation int

const (
	Add Operation = iota + 1
	Subtract
	Multiply
	Divide
)

// Operations lists every operation in menu order
var Operations = []Operation{Add, Subtract, Multiply, Divide}

// String returns the operation's name
func (op Operation) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// Symbol returns the arithmetic symbol for the operation
func (op Operation) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return "?"
}

// ParseOperation accepts a menu selector ("1".."4"), a name or a symbol
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, op := range Operations {
		if key == fmt.Sprint(i+1) || key == op.String() || key == op.Symbol() {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Apply performs op on a and b
func Apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
}
