package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rail44/lessons/internal/amortization"
	"github.com/rail44/lessons/internal/app"
)

var (
	ratePolicy   string
	showSchedule bool
)

var mortgageCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Calculate the monthly payments of a loan",
	Long: `Mortgage asks for a loan amount, an annual percentage rate and a repayment
period, then prints the flat monthly payment and the final payment that
clears the loan.

Amounts may include "$" and thousands separators, rates may be given as 5.5%,
5.5 or 0.055, and periods as months (360) or years and months (5y 6m).

The nominal rate policy divides the APR by twelve; the effective policy takes
the twelfth root of (1 + APR).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newMortgageSession(cmd)
		if err != nil {
			return err
		}
		return runSession(cmd.Context(), session)
	},
}

func init() {
	mortgageCmd.Flags().StringVar(&ratePolicy, "rate-policy", "", "APR conversion: nominal or effective (default from config)")
	mortgageCmd.Flags().BoolVar(&showSchedule, "schedule", false, "print the full amortization schedule")
	rootCmd.AddCommand(mortgageCmd)
	sessions["mortgage"] = newMortgageSession
}

func newMortgageSession(cmd *cobra.Command) (app.Session, error) {
	policy := cfg.RatePolicy()
	if ratePolicy != "" {
		parsed, err := amortization.ParseRatePolicy(ratePolicy)
		if err != nil {
			return nil, err
		}
		policy = parsed
	}

	schedule := cfg.Mortgage.Schedule
	if cmd.Flags().Changed("schedule") {
		schedule = showSchedule
	}

	return app.NewMortgageSession(newEnv(cmd), policy, schedule), nil
}
