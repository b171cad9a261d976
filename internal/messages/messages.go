// Package messages holds the user-facing text of every exercise, per language.
package messages

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Lang identifies a message catalog
type Lang string

// Tag returns the language tag messages in lang are printed with
func (l Lang) Tag() language.Tag {
	if l == Spanish {
		return language.Spanish
	}
	return language.English
}

const (
	English Lang = "en"
	Spanish Lang = "es"
)

// ID identifies a message within a catalog
type ID string

const (
	Goodbye      ID = "goodbye"
	AnswerYesNo  ID = "answer_yes_no"
	InvalidReply ID = "invalid_reply"

	CalcWelcome          ID = "calc.welcome"
	CalcFirstNumber      ID = "calc.first_number"
	CalcSecondNumber     ID = "calc.second_number"
	CalcInvalidNumber    ID = "calc.invalid_number"
	CalcOperation        ID = "calc.operation"
	CalcInvalidOperation ID = "calc.invalid_operation"
	CalcDivideByZero     ID = "calc.divide_by_zero"
	CalcResult           ID = "calc.result"
	CalcAgain            ID = "calc.again"

	MortgageWelcome          ID = "mortgage.welcome"
	MortgagePrincipal        ID = "mortgage.principal"
	MortgageInvalidPrincipal ID = "mortgage.invalid_principal"
	MortgageAPR              ID = "mortgage.apr"
	MortgageInvalidAPR       ID = "mortgage.invalid_apr"
	MortgagePeriod           ID = "mortgage.period"
	MortgageInvalidPeriod    ID = "mortgage.invalid_period"
	MortgageMonthlyRate      ID = "mortgage.monthly_rate"
	MortgagePayments         ID = "mortgage.payments"
	MortgageSinglePayment    ID = "mortgage.single_payment"
	MortgageFinalPayment     ID = "mortgage.final_payment"
	MortgageTotals           ID = "mortgage.totals"
	MortgageScheduleHeader   ID = "mortgage.schedule_header"
	MortgageAgain            ID = "mortgage.again"

	RPSWelcome           ID = "rps.welcome"
	RPSBestOfFive        ID = "rps.best_of_five"
	RPSChoose            ID = "rps.choose"
	RPSChoices           ID = "rps.choices"
	RPSUserWins          ID = "rps.user_wins"
	RPSComputerWins      ID = "rps.computer_wins"
	RPSTie               ID = "rps.tie"
	RPSUndefined         ID = "rps.undefined"
	RPSScore             ID = "rps.score"
	RPSMatchUserWins     ID = "rps.match_user_wins"
	RPSMatchComputerWins ID = "rps.match_computer_wins"
	RPSPlayAgain         ID = "rps.play_again"

	ScopeTitle ID = "scope.title"
)

// translations is the source text of every message, per language
var translations = map[Lang]map[ID]string{
	English: {
		Goodbye:      "Goodbye!",
		AnswerYesNo:  "Answer must be y or n.",
		InvalidReply: "Invalid response, try again. %s",

		CalcWelcome:          "Welcome to Calculator!",
		CalcFirstNumber:      "What's the first number?",
		CalcSecondNumber:     "What's the second number?",
		CalcInvalidNumber:    "Hmm... that doesn't look like a valid number.",
		CalcOperation:        "What operation would you like to perform?\n1) Add 2) Subtract 3) Multiply 4) Divide",
		CalcInvalidOperation: "Must choose 1, 2, 3, or 4",
		CalcDivideByZero:     "Can't divide by zero.",
		CalcResult:           "The result is: %s",
		CalcAgain:            "Would you like to perform another calculation? (y/n)",

		MortgageWelcome:          "Welcome to the Mortgage Calculator!",
		MortgagePrincipal:        "Please enter the loan amount (e.g. $250,000):",
		MortgageInvalidPrincipal: "The loan amount must be a positive number, like 250000 or $250,000.",
		MortgageAPR:              "Please enter the annual percentage rate (e.g. 5.5%%):",
		MortgageInvalidAPR:       "The rate must be a positive number, like 5.5%% or 0.055.",
		MortgagePeriod:           "Please enter the repayment period (e.g. 30y, 5y 6m or 360):",
		MortgageInvalidPeriod:    "The period must be in months (360) or years and months (5y 6m), up to 100 years.",
		MortgageMonthlyRate:      "Monthly interest rate: %s",
		MortgagePayments:         "%d monthly payments of %s",
		MortgageSinglePayment:    "A single payment of %s",
		MortgageFinalPayment:     "followed by a final payment of %s",
		MortgageTotals:           "Total paid: %s, of which interest: %s",
		MortgageScheduleHeader:   "Month|Payment|Interest|Principal|Balance",
		MortgageAgain:            "Would you like to calculate another loan? (y/n)",

		RPSWelcome:           "Welcome to %s",
		RPSBestOfFive:        "Would you like to play in best-of-five mode? (y/n)",
		RPSChoose:            "Choose one: %s",
		RPSChoices:           "You chose %s, computer chose %s",
		RPSUserWins:          "You win!",
		RPSComputerWins:      "Computer wins!",
		RPSTie:               "It's a tie!",
		RPSUndefined:         "There's been an error and the outcome is undefined.",
		RPSScore:             "The best of five score is user: %d, computer: %d",
		RPSMatchUserWins:     "The match is over. You are the winner!",
		RPSMatchComputerWins: "The match is over. The computer is the winner!",
		RPSPlayAgain:         "Do you want to play again (y/n)?",

		ScopeTitle: "Variable scope in for loops",
	},
	Spanish: {
		Goodbye:      "¡Adiós!",
		AnswerYesNo:  "La respuesta debe ser s o n.",
		InvalidReply: "Respuesta no válida, inténtalo de nuevo. %s",

		CalcWelcome:          "¡Bienvenido a la Calculadora!",
		CalcFirstNumber:      "¿Cuál es el primer número?",
		CalcSecondNumber:     "¿Cuál es el segundo número?",
		CalcInvalidNumber:    "Hmm... eso no parece un número válido.",
		CalcOperation:        "¿Qué operación quieres realizar?\n1) Sumar 2) Restar 3) Multiplicar 4) Dividir",
		CalcInvalidOperation: "Debes elegir 1, 2, 3 o 4",
		CalcDivideByZero:     "No se puede dividir entre cero.",
		CalcResult:           "El resultado es: %s",
		CalcAgain:            "¿Quieres hacer otro cálculo? (s/n)",

		MortgageWelcome:          "¡Bienvenido a la Calculadora de Hipotecas!",
		MortgagePrincipal:        "Introduce el importe del préstamo (p. ej. $250,000):",
		MortgageInvalidPrincipal: "El importe debe ser un número positivo, como 250000 o $250,000.",
		MortgageAPR:              "Introduce la tasa anual (p. ej. 5.5%%):",
		MortgageInvalidAPR:       "La tasa debe ser un número positivo, como 5.5%% o 0.055.",
		MortgagePeriod:           "Introduce el plazo (p. ej. 30y, 5y 6m o 360):",
		MortgageInvalidPeriod:    "El plazo debe ir en meses (360) o en años y meses (5y 6m), hasta 100 años.",
		MortgageMonthlyRate:      "Tasa de interés mensual: %s",
		MortgagePayments:         "%d pagos mensuales de %s",
		MortgageSinglePayment:    "Un único pago de %s",
		MortgageFinalPayment:     "seguidos de un pago final de %s",
		MortgageTotals:           "Total pagado: %s, de los cuales intereses: %s",
		MortgageScheduleHeader:   "Mes|Pago|Interés|Capital|Saldo",
		MortgageAgain:            "¿Quieres calcular otro préstamo? (s/n)",

		RPSWelcome:           "Bienvenido a %s",
		RPSBestOfFive:        "¿Quieres jugar al mejor de cinco? (s/n)",
		RPSChoose:            "Elige uno: %s",
		RPSChoices:           "Elegiste %s, la computadora eligió %s",
		RPSUserWins:          "¡Ganas tú!",
		RPSComputerWins:      "¡Gana la computadora!",
		RPSTie:               "¡Empate!",
		RPSUndefined:         "Ha ocurrido un error y el resultado no está definido.",
		RPSScore:             "Marcador al mejor de cinco, tú: %d, computadora: %d",
		RPSMatchUserWins:     "La partida ha terminado. ¡Has ganado!",
		RPSMatchComputerWins: "La partida ha terminado. ¡Ha ganado la computadora!",
		RPSPlayAgain:         "¿Quieres volver a jugar? (s/n)",

		ScopeTitle: "Ámbito de variables en bucles for",
	},
}

// cat holds the translations. Messages missing from a language are filled in
// from English.
var cat = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, entries := range translations {
		for id, text := range translations[English] {
			if translated, ok := entries[id]; ok {
				text = translated
			}
			if err := b.SetString(lang.Tag(), string(id), text); err != nil {
				panic(fmt.Sprintf("messages: %s %s: %v", lang, id, err))
			}
		}
	}
	return b
}

// yes holds the affirmative answer for each language
var yes = map[Lang]string{
	English: "y",
	Spanish: "s",
}

// ParseLang converts a string such as "en" or "es-MX" to a Lang
func ParseLang(s string) (Lang, error) {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")
	if base == "" {
		return English, nil
	}
	lang := Lang(base)
	if _, ok := translations[lang]; !ok {
		return "", fmt.Errorf("unsupported language: %s (supported: %s)", s, strings.Join(Names(), ", "))
	}
	return lang, nil
}

// Langs returns the supported languages, sorted
func Langs() []Lang {
	langs := make([]Lang, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Names returns the codes of the supported languages, sorted
func Names() []string {
	var names []string
	for _, lang := range Langs() {
		names = append(names, string(lang))
	}
	return names
}

// Printer returns a printer for messages in lang. Numbers passed as
// arguments are formatted for the language, e.g. 1,199 in English.
func Printer(lang Lang) *message.Printer {
	return message.NewPrinter(lang.Tag(), message.Catalog(cat))
}

// Get returns message id in lang with args substituted. Unknown languages
// print in English and unknown ids print as themselves.
func Get(lang Lang, id ID, args ...any) string {
	return Printer(lang).Sprintf(string(id), args...)
}

// YesNo returns the affirmative and negative single-letter answers for lang
func YesNo(lang Lang) (string, string) {
	y, ok := yes[lang]
	if !ok {
		y = yes[English]
	}
	return y, "n"
}
