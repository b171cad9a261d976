package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rail44/lessons/internal/app"
)

var scopeCmd = &cobra.Command{
	Use:   "scope",
	Short: "Show how for loops scope their variables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newScopeDemo(cmd)
		if err != nil {
			return err
		}
		return runSession(cmd.Context(), session)
	},
}

func init() {
	rootCmd.AddCommand(scopeCmd)
	sessions["scope"] = newScopeDemo
}

func newScopeDemo(cmd *cobra.Command) (app.Session, error) {
	return app.NewScopeDemo(newEnv(cmd)), nil
}
