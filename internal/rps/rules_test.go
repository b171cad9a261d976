package rps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinDistinctPrefixes(t *testing.T) {
	got := MinDistinctPrefixes(Classic.Names())

	assert.Equal(t, map[string]int{
		"rock":     1,
		"paper":    1,
		"scissors": 2,
		"lizard":   1,
		"spock":    2,
	}, got)
}

func TestMinDistinctPrefixes_WordIsPrefix(t *testing.T) {
	got := MinDistinctPrefixes([]string{"rock", "rocket", "paper"})

	assert.Equal(t, 4, got["rock"])
	assert.Equal(t, 5, got["rocket"])
	assert.Equal(t, 1, got["paper"])
}

func TestFormatChoices(t *testing.T) {
	assert.Equal(t, "rock (r), paper (p), scissors (sc), lizard (l), spock (sp)", Classic.FormatChoices())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "rock", want: "rock"},
		{input: "R", want: "rock"},
		{input: "sc", want: "scissors"},
		{input: " SP ", want: "spock"},
		{input: "l", want: "lizard"},
		{input: "s", wantErr: true},
		{input: "banana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Classic.Resolve(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownChoice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		user, computer string
		want           Outcome
	}{
		{user: "rock", computer: "rock", want: Tie},
		{user: "rock", computer: "scissors", want: UserWins},
		{user: "rock", computer: "paper", want: ComputerWins},
		{user: "spock", computer: "scissors", want: UserWins},
		{user: "lizard", computer: "spock", want: UserWins},
		{user: "paper", computer: "lizard", want: ComputerWins},
	}

	for _, tt := range tests {
		t.Run(tt.user+"_vs_"+tt.computer, func(t *testing.T) {
			assert.Equal(t, tt.want, Classic.DetermineWinner(tt.user, tt.computer))
		})
	}
}

func TestDetermineWinner_EveryPairDecided(t *testing.T) {
	for _, a := range Classic.Names() {
		for _, b := range Classic.Names() {
			outcome := Classic.DetermineWinner(a, b)
			assert.NotEqual(t, Undefined, outcome, "%s vs %s", a, b)
			if a != b {
				assert.NotEqual(t, outcome, Classic.DetermineWinner(b, a), "%s vs %s is not antisymmetric", a, b)
			}
		}
	}
}

func TestDetermineWinner_Undefined(t *testing.T) {
	rules := Rules{{Name: "rock"}, {Name: "paper"}}
	assert.Equal(t, Undefined, rules.DetermineWinner("rock", "paper"))
}
