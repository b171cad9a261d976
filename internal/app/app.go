// Package app runs the interactive exercise sessions.
package app

import (
	"context"
	"log/slog"

	"github.com/rail44/lessons/internal/formatter"
	"github.com/rail44/lessons/internal/messages"
	"github.com/rail44/lessons/internal/prompt"
)

// Session is an interactive exercise
type Session interface {
	Run(ctx context.Context) error
}

// Env is what every session needs to talk to the user
type Env struct {
	Prompter *prompt.Prompter
	Lang     messages.Lang
	Locale   formatter.Locale
	Logger   *slog.Logger
}

// text looks up a message in the session language
func (e *Env) text(id messages.ID, args ...any) string {
	return messages.Get(e.Lang, id, args...)
}

// askAgain asks a yes/no question and reports whether the answer was yes
func (e *Env) askAgain(question messages.ID) (bool, error) {
	yes, no := messages.YesNo(e.Lang)
	answer, err := e.Prompter.AskChoice(e.text(question), e.text(messages.AnswerYesNo), yes, no)
	if err != nil {
		return false, err
	}
	return answer == yes, nil
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
