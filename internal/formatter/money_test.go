package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	loc, err := ParseLocale("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, loc)

	loc, err = ParseLocale("de-DE", "")
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, loc.Currency)

	loc, err = ParseLocale("en-GB", "usd")
	require.NoError(t, err)
	assert.Equal(t, currency.USD, loc.Currency)
	assert.Equal(t, language.BritishEnglish, loc.Tag)

	_, err = ParseLocale("not a tag!", "")
	assert.Error(t, err)

	_, err = ParseLocale("en", "ZZZZ")
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,135.58", Money(1135.58, DefaultLocale))
	assert.Equal(t, "$100.00", Money(100, DefaultLocale))
	assert.Equal(t, "$1,135.58", Money(1135.5800000001, DefaultLocale))
	assert.Equal(t, "-$0.25", Money(-0.25, DefaultLocale))

	german := Locale{Tag: language.German, Currency: currency.EUR}
	assert.Equal(t, "€1.234,50", Money(1234.5, german))
}

func TestMoney_CurrencyWithoutCents(t *testing.T) {
	yen := Locale{Tag: language.AmericanEnglish, Currency: currency.JPY}
	assert.Equal(t, "¥1,500", Money(1500, yen))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol(DefaultLocale))
	assert.Equal(t, "€", Symbol(Locale{Tag: language.German, Currency: currency.EUR}))
	assert.Equal(t, "XTS ", Symbol(Locale{Tag: language.AmericanEnglish, Currency: currency.XTS}))
}

func TestMoney_CodeWithoutSymbol(t *testing.T) {
	codeOnly := Locale{Tag: language.AmericanEnglish, Currency: currency.XTS}
	assert.Equal(t, "XTS 12.05", Money(12.05, codeOnly))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5.5%", Percent(0.055, 4, DefaultLocale))
	assert.Equal(t, "0.4583%", Percent(0.055/12, 4, DefaultLocale))
}
