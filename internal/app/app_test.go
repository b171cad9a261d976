package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail44/lessons/internal/amortization"
	"github.com/rail44/lessons/internal/config"
	"github.com/rail44/lessons/internal/formatter"
	"github.com/rail44/lessons/internal/messages"
	"github.com/rail44/lessons/internal/prompt"
	"github.com/rail44/lessons/internal/rps"
)

func newEnv(input string, lang messages.Lang) (Env, *bytes.Buffer) {
	var out bytes.Buffer
	return Env{
		Prompter: prompt.New(strings.NewReader(input), &out),
		Lang:     lang,
		Locale:   formatter.DefaultLocale,
	}, &out
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// firstChoice always draws the first rule, so the computer plays rock
type firstChoice struct{}

func (firstChoice) Uint64() uint64 { return 1 << 32 }

func TestCalculatorSession(t *testing.T) {
	env, out := newEnv(script("abc", "4", "0", "5", "4", "2", "y", "3", "3", "1", "n"), messages.English)

	require.NoError(t, NewCalculatorSession(env).Run(context.Background()))

	got := out.String()
	for _, want := range []string{
		"=> Welcome to Calculator!",
		"=> Hmm... that doesn't look like a valid number.",
		"=> Must choose 1, 2, 3, or 4",
		"=> Can't divide by zero.",
		"=> The result is: 2\n",
		"=> The result is: 6\n",
		"=> Goodbye!",
	} {
		assert.Contains(t, got, want)
	}
}

func TestCalculatorSession_Spanish(t *testing.T) {
	env, out := newEnv(script("1.5", "2", "3", "x", "n"), messages.Spanish)

	require.NoError(t, NewCalculatorSession(env).Run(context.Background()))

	assert.Contains(t, out.String(), "=> El resultado es: 3\n")
	assert.Contains(t, out.String(), "=> La respuesta debe ser s o n.")
	assert.Contains(t, out.String(), "=> ¡Adiós!")
}

func TestCalculatorSession_InputClosed(t *testing.T) {
	env, _ := newEnv(script("1"), messages.English)

	err := NewCalculatorSession(env).Run(context.Background())
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
}

func TestCalculatorSession_Cancelled(t *testing.T) {
	env, _ := newEnv(script("1", "2", "1", "n"), messages.English)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewCalculatorSession(env).Run(ctx), context.Canceled)
}

func TestMortgageSession(t *testing.T) {
	env, out := newEnv(script("$200,000", "5.5%", "30y", "n"), messages.English)

	session := NewMortgageSession(env, amortization.Nominal, false)
	require.NoError(t, session.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "=> Monthly interest rate: 0.4583%")
	assert.Contains(t, got, "=> 359 monthly payments of $1,135.57")
	assert.Contains(t, got, "=> followed by a final payment of $1,143.09")
	assert.NotContains(t, got, "Balance")
}

func TestMortgageSession_RetriesAndSchedule(t *testing.T) {
	env, out := newEnv(script("-5", "$1,000", "abc", "12%", "5q", "3", "y", "1000", "0.06", "1m", "n"), messages.English)

	session := NewMortgageSession(env, amortization.Nominal, true)
	require.NoError(t, session.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "=> The loan amount must be a positive number")
	assert.Contains(t, got, "=> The rate must be a positive number")
	assert.Contains(t, got, "=> The period must be in months")
	assert.Contains(t, got, "=> 2 monthly payments of $340.02")
	assert.Contains(t, got, "Balance")
	// 1000 at 0.5% for one month
	assert.Contains(t, got, "=> A single payment of $1,005.00")
}

func TestMortgageSession_RejectsOverlongPeriod(t *testing.T) {
	env, out := newEnv(script("1000", "5%", "99999999999y", "12", "n"), messages.English)

	require.NoError(t, NewMortgageSession(env, amortization.Nominal, false).Run(context.Background()))

	assert.Contains(t, out.String(), "=> The period must be in months (360) or years and months (5y 6m), up to 100 years.")
	assert.Contains(t, out.String(), "=> 11 monthly payments of")
}

func TestMortgageSession_EffectivePolicyPaysLess(t *testing.T) {
	nominalEnv, nominalOut := newEnv(script("200000", "5.5", "360", "n"), messages.English)
	require.NoError(t, NewMortgageSession(nominalEnv, amortization.Nominal, false).Run(context.Background()))

	effectiveEnv, effectiveOut := newEnv(script("200000", "5.5", "360", "n"), messages.English)
	require.NoError(t, NewMortgageSession(effectiveEnv, amortization.Effective, false).Run(context.Background()))

	assert.Contains(t, nominalOut.String(), "359 monthly payments of $1,135.57")
	assert.Contains(t, effectiveOut.String(), "359 monthly payments of $1,118.82")
}

func TestRPSSession_BestOfFive(t *testing.T) {
	env, out := newEnv(script("x", "p", "rock", "paper", "p"), messages.English)
	game := rps.NewGame(rps.Classic, firstChoice{})

	session := NewRPSSession(env, game, 3, config.BestOfFiveAlways)
	require.NoError(t, session.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "=> Welcome to Rock, Paper, Scissors, Lizard, Spock")
	assert.Contains(t, got, "=> Invalid response, try again. Choose one: rock (r), paper (p)")
	assert.Contains(t, got, "=> You chose paper, computer chose rock")
	assert.Contains(t, got, "=> It's a tie!")
	assert.Contains(t, got, "=> The best of five score is user: 3, computer: 0")
	assert.Contains(t, got, "=> The match is over. You are the winner!")
	assert.NotContains(t, got, "best-of-five mode?")
}

func TestRPSSession_ComputerWinsMatch(t *testing.T) {
	env, out := newEnv(script("sc", "l"), messages.English)
	game := rps.NewGame(rps.Classic, firstChoice{})

	require.NoError(t, NewRPSSession(env, game, 2, config.BestOfFiveAlways).Run(context.Background()))

	assert.Contains(t, out.String(), "=> The match is over. The computer is the winner!")
}

func TestRPSSession_SingleRounds(t *testing.T) {
	env, out := newEnv(script("n", "sc", "y", "rock", "n"), messages.English)
	game := rps.NewGame(rps.Classic, firstChoice{})

	require.NoError(t, NewRPSSession(env, game, 3, config.BestOfFiveAsk).Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "=> Would you like to play in best-of-five mode? (y/n)")
	assert.Contains(t, got, "=> Computer wins!")
	assert.Contains(t, got, "=> It's a tie!")
	assert.Equal(t, 2, strings.Count(got, "=> Do you want to play again (y/n)?"))
	assert.NotContains(t, got, "best of five score")
}

func TestScopeDemo(t *testing.T) {
	env, out := newEnv("", messages.English)

	require.NoError(t, NewScopeDemo(env).Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Variable scope in for loops")
	assert.Contains(t, got, "=> Using an outer variable as the loop iterator\n0\n1\n2\n3\n4\n")
	assert.Contains(t, got, "=> The loop header and the loop body are separate scopes\n0\n1\n1\n1\n0\n")
}
