package amortization

import "math"

// Epsilon is the tolerance under which a remaining balance counts as paid off
const Epsilon = 1e-9

// Plan is the payment plan for a loan: IdenticalPaymentCount payments of
// IdenticalPaymentAmount followed by a single FinalPaymentAmount.
type Plan struct {
	TermMonths             int
	IdenticalPaymentCount  int
	IdenticalPaymentAmount float64
	// FinalPaymentAmount absorbs the cents lost to payment truncation and
	// interest rounding, so it can sit slightly above or below the flat amount.
	FinalPaymentAmount float64
}

// ComputePlan computes the flat monthly payment for a loan and simulates its
// balance month by month to find the final payment that clears it.
//
// Inputs are not validated: principal > 0, monthlyRate >= 0 and
// termMonths >= 1 are the caller's responsibility.
func ComputePlan(principal, monthlyRate float64, termMonths int) Plan {
	payment := FlatPayment(principal, monthlyRate, termMonths)

	balance := principal
	for period := 0; period < termMonths; period++ {
		balance += Round(balance*monthlyRate, 2)
		balance -= payment
	}

	return Plan{
		TermMonths:             termMonths,
		IdenticalPaymentCount:  termMonths - 1,
		IdenticalPaymentAmount: payment,
		FinalPaymentAmount:     payment + balance,
	}
}

// FlatPayment returns the annuity payment truncated to cents
func FlatPayment(principal, monthlyRate float64, termMonths int) float64 {
	// The annuity formula degenerates to 0/0 at a zero rate
	if monthlyRate == 0 {
		return Truncate(principal/float64(termMonths), 2)
	}
	n := float64(termMonths)
	return Truncate(principal*monthlyRate/(1-math.Pow(1+monthlyRate, -n)), 2)
}

// TotalPaid returns the sum of every payment in the plan
func (p Plan) TotalPaid() float64 {
	return float64(p.IdenticalPaymentCount)*p.IdenticalPaymentAmount + p.FinalPaymentAmount
}

// TotalInterest returns how much of the plan's payments is interest
func (p Plan) TotalInterest(principal float64) float64 {
	return p.TotalPaid() - principal
}
