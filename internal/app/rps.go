package app

import (
	"context"
	"strings"

	"github.com/rail44/lessons/internal/config"
	"github.com/rail44/lessons/internal/messages"
	"github.com/rail44/lessons/internal/rps"
)

// RPSSession is rock, paper, scissors, lizard, spock against the computer
type RPSSession struct {
	Env
	Game        *rps.Game
	RoundsToWin int
	BestOfFive  string
}

// NewRPSSession creates a game session. bestOfFive is one of the
// config.BestOfFive modes.
func NewRPSSession(env Env, game *rps.Game, roundsToWin int, bestOfFive string) *RPSSession {
	return &RPSSession{
		Env:         env,
		Game:        game,
		RoundsToWin: roundsToWin,
		BestOfFive:  bestOfFive,
	}
}

// Run plays either a best-of-five match or single rounds until the user stops
func (s *RPSSession) Run(ctx context.Context) error {
	s.Prompter.Clear()
	s.Prompter.Say(s.text(messages.RPSWelcome, s.title()))

	bestOfFive, err := s.wantsBestOfFive()
	if err != nil {
		return err
	}

	if bestOfFive {
		err = s.playMatch(ctx)
	} else {
		err = s.playRounds(ctx)
	}
	if err != nil {
		return err
	}

	s.Prompter.Say(s.text(messages.Goodbye))
	return nil
}

func (s *RPSSession) wantsBestOfFive() (bool, error) {
	switch s.BestOfFive {
	case config.BestOfFiveAlways:
		return true, nil
	case config.BestOfFiveNever:
		return false, nil
	}
	return s.askAgain(messages.RPSBestOfFive)
}

func (s *RPSSession) playMatch(ctx context.Context) error {
	var score rps.Scorecard
	for !score.MatchOver(s.RoundsToWin) {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, err := s.playRound()
		if err != nil {
			return err
		}
		score.Record(outcome)
		s.Prompter.Say(s.text(messages.RPSScore, score.User, score.Computer))
	}

	if score.Winner() == rps.ComputerWins {
		s.Prompter.Result(s.text(messages.RPSMatchComputerWins))
	} else {
		s.Prompter.Result(s.text(messages.RPSMatchUserWins))
	}
	return nil
}

func (s *RPSSession) playRounds(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.Prompter.Clear()
		if _, err := s.playRound(); err != nil {
			return err
		}

		again, err := s.askAgain(messages.RPSPlayAgain)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// playRound asks for the user's choice, draws the computer's and reports
// the outcome
func (s *RPSSession) playRound() (rps.Outcome, error) {
	question := s.text(messages.RPSChoose, s.Game.Rules.FormatChoices())

	var choice string
	_, err := s.Prompter.AskUntil(question, s.text(messages.InvalidReply, question), func(answer string) error {
		resolved, err := s.Game.Rules.Resolve(answer)
		choice = resolved
		return err
	})
	if err != nil {
		return rps.Undefined, err
	}

	computer, outcome := s.Game.Play(choice)
	s.Prompter.Say(s.text(messages.RPSChoices, choice, computer))
	s.logger().Debug("round played", "user", choice, "computer", computer, "outcome", outcome.String())

	switch outcome {
	case rps.UserWins:
		s.Prompter.Result(s.text(messages.RPSUserWins))
	case rps.ComputerWins:
		s.Prompter.Result(s.text(messages.RPSComputerWins))
	case rps.Tie:
		s.Prompter.Result(s.text(messages.RPSTie))
	default:
		s.Prompter.Warn(s.text(messages.RPSUndefined))
	}
	s.Prompter.Println("")
	return outcome, nil
}

// title joins the capitalized choice names, e.g. "Rock, Paper, Scissors"
func (s *RPSSession) title() string {
	names := s.Game.Rules.Names()
	for i, name := range names {
		names[i] = strings.ToUpper(name[:1]) + name[1:]
	}
	return strings.Join(names, ", ")
}
