package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rail44/lessons/internal/calculator"
	"github.com/rail44/lessons/internal/formatter"
	"github.com/rail44/lessons/internal/messages"
	"github.com/rail44/lessons/internal/parser"
)

// CalculatorSession is the four-function calculator
type CalculatorSession struct {
	Env
}

// NewCalculatorSession creates a calculator session
func NewCalculatorSession(env Env) *CalculatorSession {
	return &CalculatorSession{Env: env}
}

// Run performs calculations until the user declines another one
func (s *CalculatorSession) Run(ctx context.Context) error {
	s.Prompter.Say(s.text(messages.CalcWelcome))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.calculate(); err != nil {
			return err
		}

		again, err := s.askAgain(messages.CalcAgain)
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	s.Prompter.Say(s.text(messages.Goodbye))
	return nil
}

func (s *CalculatorSession) calculate() error {
	a, err := s.askNumber(messages.CalcFirstNumber)
	if err != nil {
		return err
	}
	b, err := s.askNumber(messages.CalcSecondNumber)
	if err != nil {
		return err
	}

	var op calculator.Operation
	_, err = s.Prompter.AskUntil(s.text(messages.CalcOperation), s.text(messages.CalcInvalidOperation), func(answer string) error {
		parsed, err := calculator.ParseOperation(answer)
		op = parsed
		return err
	})
	if err != nil {
		return err
	}

	result, err := calculator.Apply(op, a, b)
	for errors.Is(err, calculator.ErrDivideByZero) {
		s.Prompter.Warn(s.text(messages.CalcDivideByZero))
		if b, err = s.askNumber(messages.CalcSecondNumber); err != nil {
			return err
		}
		result, err = calculator.Apply(op, a, b)
	}
	if err != nil {
		return err
	}

	s.logger().Debug("calculated",
		slog.Float64("a", a),
		slog.String("operation", op.String()),
		slog.Float64("b", b),
		slog.Float64("result", result))
	s.Prompter.Result(s.text(messages.CalcResult, formatter.Number(result, 10, s.Locale)))
	return nil
}

// askNumber asks question until the answer is a number
func (s *CalculatorSession) askNumber(question messages.ID) (float64, error) {
	var n float64
	_, err := s.Prompter.AskUntil(s.text(question), s.text(messages.CalcInvalidNumber), func(answer string) error {
		var err error
		n, err = parser.ParseNumber(answer)
		return err
	})
	return n, err
}
