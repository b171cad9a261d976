package app

import (
	"context"
	"log/slog"

	"github.com/rail44/lessons/internal/amortization"
	"github.com/rail44/lessons/internal/formatter"
	"github.com/rail44/lessons/internal/messages"
	"github.com/rail44/lessons/internal/parser"
)

// MortgageSession is the mortgage calculator
type MortgageSession struct {
	Env
	Policy       amortization.RatePolicy
	ShowSchedule bool
}

// NewMortgageSession creates a mortgage session converting APRs with policy
func NewMortgageSession(env Env, policy amortization.RatePolicy, showSchedule bool) *MortgageSession {
	return &MortgageSession{
		Env:          env,
		Policy:       policy,
		ShowSchedule: showSchedule,
	}
}

// Loan is a validated loan request
type Loan struct {
	Principal  float64
	AnnualRate float64
	Period     parser.Period
}

// Run calculates loans until the user declines another one
func (s *MortgageSession) Run(ctx context.Context) error {
	s.Prompter.Say(s.text(messages.MortgageWelcome))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		loan, err := s.askLoan()
		if err != nil {
			return err
		}
		s.show(loan)

		again, err := s.askAgain(messages.MortgageAgain)
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

func (s *MortgageSession) askLoan() (Loan, error) {
	var loan Loan

	_, err := s.Prompter.AskUntil(s.text(messages.MortgagePrincipal), s.text(messages.MortgageInvalidPrincipal), func(answer string) error {
		v, err := parser.ParseAmount(answer)
		loan.Principal = v
		return err
	})
	if err != nil {
		return Loan{}, err
	}

	_, err = s.Prompter.AskUntil(s.text(messages.MortgageAPR), s.text(messages.MortgageInvalidAPR), func(answer string) error {
		v, err := parser.ParseRate(answer)
		loan.AnnualRate = v
		return err
	})
	if err != nil {
		return Loan{}, err
	}

	_, err = s.Prompter.AskUntil(s.text(messages.MortgagePeriod), s.text(messages.MortgageInvalidPeriod), func(answer string) error {
		v, err := parser.ParsePeriod(answer)
		loan.Period = v
		return err
	})
	if err != nil {
		return Loan{}, err
	}

	return loan, nil
}

func (s *MortgageSession) show(loan Loan) {
	monthlyRate := amortization.MonthlyRate(loan.AnnualRate, s.Policy)
	plan := amortization.ComputePlan(loan.Principal, monthlyRate, loan.Period.TotalMonths())

	s.logger().Debug("computed plan",
		slog.String("policy", string(s.Policy)),
		slog.Float64("monthly_rate", monthlyRate),
		slog.String("period", loan.Period.String()),
		slog.Float64("payment", plan.IdenticalPaymentAmount),
		slog.Float64("final_payment", plan.FinalPaymentAmount))

	for _, line := range formatter.PlanSummary(plan, loan.Principal, monthlyRate, s.Locale, s.Lang) {
		s.Prompter.Result(line)
	}

	if s.ShowSchedule {
		rows := amortization.Schedule(loan.Principal, monthlyRate, plan)
		s.Prompter.Println(formatter.ScheduleTable(rows, s.Locale, s.Lang))
	}
}
