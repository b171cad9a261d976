package formatter

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Locale selects number conventions and the currency amounts are shown in.
// It is passed to every formatting call; there is no process-wide formatter.
type Locale struct {
	Tag      language.Tag
	Currency currency.Unit
}

// DefaultLocale is US English with US dollars
var DefaultLocale = Locale{Tag: language.AmericanEnglish, Currency: currency.USD}

// ParseLocale builds a Locale from a BCP-47 tag and an ISO-4217 code. An empty
// code picks the currency of the tag's region.
func ParseLocale(tag, code string) (Locale, error) {
	loc := DefaultLocale

	if tag != "" {
		t, err := language.Parse(tag)
		if err != nil {
			return Locale{}, fmt.Errorf("invalid locale %q: %w", tag, err)
		}
		loc.Tag = t
		if code == "" {
			if unit, conf := currency.FromTag(t); conf != language.No {
				loc.Currency = unit
			}
		}
	}

	if code != "" {
		unit, err := currency.ParseISO(strings.ToUpper(code))
		if err != nil {
			return Locale{}, fmt.Errorf("invalid currency %q: %w", code, err)
		}
		loc.Currency = unit
	}

	return loc, nil
}
