package rps

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownChoice is returned for input that names no choice
var ErrUnknownChoice = errors.New("unknown choice")

// Rule is one choice and the choices it beats
type Rule struct {
	Name  string
	Beats []string
}

// Rules is an ordered set of choices. Adding a choice only takes a new Rule
// and updated Beats lists.
type Rules []Rule

// Classic is rock, paper, scissors, lizard, spock
var Classic = Rules{
	{Name: "rock", Beats: []string{"scissors", "lizard"}},
	{Name: "paper", Beats: []string{"rock", "spock"}},
	{Name: "scissors", Beats: []string{"paper", "lizard"}},
	{Name: "lizard", Beats: []string{"spock", "paper"}},
	{Name: "spock", Beats: []string{"rock", "scissors"}},
}

// Names returns the choice names in order
func (r Rules) Names() []string {
	names := make([]string, len(r))
	for i, rule := range r {
		names[i] = rule.Name
	}
	return names
}

// beats reports whether choice a beats choice b
func (r Rules) beats(a, b string) bool {
	for _, rule := range r {
		if rule.Name == a {
			return slices.Contains(rule.Beats, b)
		}
	}
	return false
}

// Inputs maps every accepted input, full names and abbreviations, to its choice
func (r Rules) Inputs() map[string]string {
	names := r.Names()
	prefixes := MinDistinctPrefixes(names)

	inputs := make(map[string]string, len(names)*2)
	for _, name := range names {
		inputs[name] = name
		inputs[name[:prefixes[name]]] = name
	}
	return inputs
}

// Resolve converts user input to a choice name
func (r Rules) Resolve(input string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(input))
	if choice, ok := r.Inputs()[key]; ok {
		return choice, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChoice, input)
}

// FormatChoices lists every choice with its abbreviation, e.g.
// "rock (r), paper (p), scissors (sc), lizard (l), spock (sp)"
func (r Rules) FormatChoices() string {
	names := r.Names()
	prefixes := MinDistinctPrefixes(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%s)", name, name[:prefixes[name]])
	}
	return strings.Join(parts, ", ")
}

// MinDistinctPrefixes returns, for each word, the number of leading
// characters needed to tell it apart from every other word. A word that is a
// prefix of another needs its full length.
func MinDistinctPrefixes(words []string) map[string]int {
	prefixes := make(map[string]int, len(words))
	for _, word := range words {
		prefixes[word] = 1
		for _, other := range words {
			if other == word {
				continue
			}
			if n := distinctAt(word, other); n > prefixes[word] {
				prefixes[word] = n
			}
		}
	}
	return prefixes
}

// distinctAt returns the shortest prefix length of word that other does not share
func distinctAt(word, other string) int {
	for n := 1; n <= len(word); n++ {
		if n > len(other) || word[:n] != other[:n] {
			return n
		}
	}
	return len(word)
}
