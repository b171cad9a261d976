package formatter

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbol returns the narrow symbol of loc's currency as written in loc's
// language, e.g. "$" or "€". Currencies without one fall back to their ISO
// code, followed by a space so the code does not run into the amount.
func Symbol(loc Locale) string {
	sym := message.NewPrinter(loc.Tag).Sprint(currency.NarrowSymbol(loc.Currency))
	if r, _ := utf8.DecodeLastRuneInString(sym); unicode.IsLetter(r) {
		sym += " "
	}
	return sym
}

// Money formats amount in loc's currency using loc's digit grouping and
// decimal separator, e.g. "$1,135.58". The symbol always leads, as with
// x/text's own currency formatting, so German amounts read "€1.234,50".
func Money(amount float64, loc Locale) string {
	scale, _ := currency.Standard.Rounding(loc.Currency)
	p := message.NewPrinter(loc.Tag)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + Symbol(loc) + p.Sprint(number.Decimal(amount, number.Scale(scale)))
}

// Number formats a plain number with up to maxFraction fractional digits
func Number(value float64, maxFraction int, loc Locale) string {
	p := message.NewPrinter(loc.Tag)
	return p.Sprint(number.Decimal(value, number.MaxFractionDigits(maxFraction)))
}

// Percent formats a rate given as a fraction, e.g. 0.055 as "5.5%"
func Percent(rate float64, digits int, loc Locale) string {
	p := message.NewPrinter(loc.Tag)
	return p.Sprint(number.Percent(rate, number.MaxFractionDigits(digits)))
}
