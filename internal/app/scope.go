package app

import (
	"context"
	"strings"

	"github.com/rail44/lessons/internal/messages"
	"github.com/rail44/lessons/internal/scope"
)

// ScopeDemo prints the loop scoping demonstrations
type ScopeDemo struct {
	Env
}

// NewScopeDemo creates the demonstration
func NewScopeDemo(env Env) *ScopeDemo {
	return &ScopeDemo{Env: env}
}

// Run prints every example and its output
func (d *ScopeDemo) Run(ctx context.Context) error {
	d.Prompter.Title(d.text(messages.ScopeTitle))

	for i, example := range scope.Examples() {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Prompter.Println("")
		d.Prompter.Say(example.Title)
		d.Prompter.Println(strings.Join(example.Lines, "\n"))
		d.logger().Debug("example shown", "index", i+1, "lines", len(example.Lines))
	}
	return nil
}
