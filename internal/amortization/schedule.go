package amortization

import "math"

// Row is one month of an amortization schedule
type Row struct {
	Period    int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}

// Schedule replays plan against principal and reports every period. The
// accrual rule is the one ComputePlan uses, so the last row's balance is zero.
func Schedule(principal, monthlyRate float64, plan Plan) []Row {
	rows := make([]Row, 0, plan.TermMonths)
	balance := principal

	for period := 1; period <= plan.TermMonths; period++ {
		payment := plan.IdenticalPaymentAmount
		if period == plan.TermMonths {
			payment = plan.FinalPaymentAmount
		}

		interest := Round(balance*monthlyRate, 2)
		balance = balance + interest - payment
		if period == plan.TermMonths && math.Abs(balance) < Epsilon {
			balance = 0
		}

		rows = append(rows, Row{
			Period:    period,
			Payment:   payment,
			Interest:  interest,
			Principal: payment - interest,
			Balance:   balance,
		})
	}

	return rows
}
