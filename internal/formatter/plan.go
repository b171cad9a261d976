package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rail44/lessons/internal/amortization"
	"github.com/rail44/lessons/internal/messages"
)

// PlanSummary renders the lines describing a payment plan
func PlanSummary(plan amortization.Plan, principal, monthlyRate float64, loc Locale, lang messages.Lang) []string {
	lines := []string{messages.Get(lang, messages.MortgageMonthlyRate, Percent(monthlyRate, 4, loc))}

	if plan.IdenticalPaymentCount == 0 {
		lines = append(lines, messages.Get(lang, messages.MortgageSinglePayment, Money(plan.FinalPaymentAmount, loc)))
	} else {
		lines = append(lines,
			messages.Get(lang, messages.MortgagePayments, plan.IdenticalPaymentCount, Money(plan.IdenticalPaymentAmount, loc)),
			messages.Get(lang, messages.MortgageFinalPayment, Money(plan.FinalPaymentAmount, loc)),
		)
	}

	lines = append(lines, messages.Get(lang, messages.MortgageTotals,
		Money(plan.TotalPaid(), loc), Money(plan.TotalInterest(principal), loc)))
	return lines
}

// ScheduleTable renders an amortization schedule as a bordered table
func ScheduleTable(rows []amortization.Row, loc Locale, lang messages.Lang) string {
	headers := strings.Split(messages.Get(lang, messages.MortgageScheduleHeader), "|")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style.Align(lipgloss.Right)
		})

	for _, r := range rows {
		t.Row(
			Number(float64(r.Period), 0, loc),
			Money(r.Payment, loc),
			Money(r.Interest, loc),
			Money(r.Principal, loc),
			Money(r.Balance, loc),
		)
	}
	return t.Render()
}
