package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Period is a repayment period split into years and months
type Period struct {
	Years  int
	Months int
}

// TotalMonths returns the period length in months
func (p Period) TotalMonths() int {
	return p.Years*12 + p.Months
}

// String formats the period in the same shorthand ParsePeriod accepts
func (p Period) String() string {
	switch {
	case p.Years == 0:
		return fmt.Sprintf("%dm", p.Months)
	case p.Months == 0:
		return fmt.Sprintf("%dy", p.Years)
	default:
		return fmt.Sprintf("%dy %dm", p.Years, p.Months)
	}
}

// MaxMonths is the longest repayment period accepted, one hundred years
const MaxMonths = 1200

var (
	yearUnits  = map[string]bool{"y": true, "yr": true, "yrs": true, "year": true, "years": true}
	monthUnits = map[string]bool{"m": true, "mo": true, "mos": true, "month": true, "months": true}
)

// ParsePeriod reads a repayment period. A bare integer is a number of months;
// otherwise an optional years component is followed by an optional months
// component, e.g. "30y", "5y 6m", "18 months".
func ParsePeriod(s string) (Period, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" {
		return Period{}, ErrEmpty
	}

	if months, err := strconv.Atoi(input); err == nil {
		if months < 1 {
			return Period{}, fmt.Errorf("%w: %s", ErrNotPositive, s)
		}
		if months > MaxMonths {
			return Period{}, fmt.Errorf("%w: %s is longer than %d months", ErrInvalidPeriod, s, MaxMonths)
		}
		return Period{Months: months}, nil
	}

	var (
		period    Period
		seenYears bool
		seenMonth bool
	)
	sc := &scanner{input: input}
	for {
		sc.skipSpace()
		if sc.done() {
			break
		}

		value, ok := sc.integer()
		if !ok {
			return Period{}, fmt.Errorf("%w: expected a number in %q", ErrInvalidPeriod, s)
		}
		sc.skipSpace()
		unit := sc.word()
		// Bounded per component so Years*12 cannot overflow
		if value > MaxMonths {
			return Period{}, fmt.Errorf("%w: %s is longer than %d months", ErrInvalidPeriod, s, MaxMonths)
		}

		switch {
		case yearUnits[unit] && !seenYears && !seenMonth:
			period.Years = value
			seenYears = true
		case monthUnits[unit] && !seenMonth:
			period.Months = value
			seenMonth = true
		default:
			return Period{}, fmt.Errorf("%w: unexpected unit %q in %q", ErrInvalidPeriod, unit, s)
		}
	}

	total := period.TotalMonths()
	if total < 1 {
		return Period{}, fmt.Errorf("%w: %s", ErrNotPositive, s)
	}
	if total > MaxMonths {
		return Period{}, fmt.Errorf("%w: %s is longer than %d months", ErrInvalidPeriod, s, MaxMonths)
	}
	return period, nil
}

// scanner walks a period string one token at a time
type scanner struct {
	input string
	pos   int
}

func (sc *scanner) done() bool {
	return sc.pos >= len(sc.input)
}

func (sc *scanner) skipSpace() {
	for !sc.done() && (sc.input[sc.pos] == ' ' || sc.input[sc.pos] == '\t' || sc.input[sc.pos] == ',') {
		sc.pos++
	}
}

func (sc *scanner) integer() (int, bool) {
	start := sc.pos
	for !sc.done() && unicode.IsDigit(rune(sc.input[sc.pos])) {
		sc.pos++
	}
	if start == sc.pos {
		return 0, false
	}
	n, err := strconv.Atoi(sc.input[start:sc.pos])
	return n, err == nil
}

func (sc *scanner) word() string {
	start := sc.pos
	for !sc.done() && unicode.IsLetter(rune(sc.input[sc.pos])) {
		sc.pos++
	}
	return sc.input[start:sc.pos]
}
