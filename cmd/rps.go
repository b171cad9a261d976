package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/rail44/lessons/internal/app"
	"github.com/rail44/lessons/internal/config"
	"github.com/rail44/lessons/internal/rps"
)

var (
	roundsToWin int
	bestOfFive  string
	seed        uint64
)

var rpsCmd = &cobra.Command{
	Use:   "rps",
	Short: "Play rock, paper, scissors, lizard, spock",
	Long: `Play rock, paper, scissors, lizard, spock against the computer, either
round by round or as a best-of-five match. Choices may be abbreviated to the
shortest unambiguous prefix, e.g. "r" for rock or "sp" for spock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newRPSSession(cmd)
		if err != nil {
			return err
		}
		return runSession(cmd.Context(), session)
	},
}

func init() {
	rpsCmd.Flags().IntVar(&roundsToWin, "rounds", 0, "wins needed to take a best-of-five match (default from config)")
	rpsCmd.Flags().StringVar(&bestOfFive, "best-of-five", "", "ask, always or never (default from config)")
	rpsCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the computer's choices, 0 for random")
	rootCmd.AddCommand(rpsCmd)
	sessions["rps"] = newRPSSession
}

func newRPSSession(cmd *cobra.Command) (app.Session, error) {
	rounds := cfg.RPS.RoundsToWin
	if cmd.Flags().Changed("rounds") {
		if roundsToWin < 1 {
			return nil, fmt.Errorf("--rounds must be at least 1, got %d", roundsToWin)
		}
		rounds = roundsToWin
	}

	mode := cfg.RPS.BestOfFive
	if bestOfFive != "" {
		switch bestOfFive {
		case config.BestOfFiveAsk, config.BestOfFiveAlways, config.BestOfFiveNever:
			mode = bestOfFive
		default:
			return nil, fmt.Errorf("--best-of-five must be ask, always or never, got %q", bestOfFive)
		}
	}

	src := rand.NewPCG(rand.Uint64(), rand.Uint64())
	if seed != 0 {
		src = rand.NewPCG(seed, seed)
	}

	return app.NewRPSSession(newEnv(cmd), rps.NewGame(rps.Classic, src), rounds, mode), nil
}
