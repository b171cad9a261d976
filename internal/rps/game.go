package rps

import "math/rand/v2"

// Outcome is the result of a single round
type Outcome int

const (
	Undefined Outcome = iota
	Tie
	UserWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case UserWins:
		return "user"
	case ComputerWins:
		return "computer"
	}
	return "undefined"
}

// DetermineWinner decides a round. Undefined means the rules never say who
// wins between the two choices.
func (r Rules) DetermineWinner(user, computer string) Outcome {
	switch {
	case user == computer:
		return Tie
	case r.beats(user, computer):
		return UserWins
	case r.beats(computer, user):
		return ComputerWins
	default:
		return Undefined
	}
}

// Scorecard tracks match wins for the user and the computer
type Scorecard struct {
	User     int
	Computer int
}

// Record counts a round; ties and undefined outcomes score nothing
func (s *Scorecard) Record(o Outcome) {
	switch o {
	case UserWins:
		s.User++
	case ComputerWins:
		s.Computer++
	}
}

// MatchOver reports whether either side reached roundsToWin
func (s *Scorecard) MatchOver(roundsToWin int) bool {
	return s.User >= roundsToWin || s.Computer >= roundsToWin
}

// Winner returns who leads the match, Tie when level
func (s *Scorecard) Winner() Outcome {
	switch {
	case s.User > s.Computer:
		return UserWins
	case s.Computer > s.User:
		return ComputerWins
	default:
		return Tie
	}
}

// Game plays rounds under a rule set against a random opponent
type Game struct {
	Rules Rules
	rng   *rand.Rand
}

// NewGame creates a game drawing the computer's choices from src
func NewGame(rules Rules, src rand.Source) *Game {
	return &Game{
		Rules: rules,
		rng:   rand.New(src),
	}
}

// ComputerChoice picks a choice uniformly at random
func (g *Game) ComputerChoice() string {
	return g.Rules[g.rng.IntN(len(g.Rules))].Name
}

// Play resolves one round for the user's choice
func (g *Game) Play(user string) (computer string, outcome Outcome) {
	computer = g.ComputerChoice()
	return computer, g.Rules.DetermineWinner(user, computer)
}
