package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rail44/lessons/internal/app"
)

var calculatorCmd = &cobra.Command{
	Use:   "calculator",
	Short: "Add, subtract, multiply or divide two numbers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newCalculatorSession(cmd)
		if err != nil {
			return err
		}
		return runSession(cmd.Context(), session)
	},
}

func init() {
	rootCmd.AddCommand(calculatorCmd)
	sessions["calculator"] = newCalculatorSession
}

func newCalculatorSession(cmd *cobra.Command) (app.Session, error) {
	return app.NewCalculatorSession(newEnv(cmd)), nil
}
