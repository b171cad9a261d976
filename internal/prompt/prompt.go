// Package prompt is the line-oriented console shell the exercises talk through.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInputClosed is returned when input ends before a valid answer
var ErrInputClosed = errors.New("input closed")

// Styles holds the styles used for each kind of line
type Styles struct {
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Title  lipgloss.Style
}

// DefaultStyles returns the colored styles, bound to the renderer for out
func DefaultStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		Prompt: r.NewStyle().Foreground(lipgloss.Color("12")),
		Result: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("9")),
		Title:  r.NewStyle().Bold(true).Underline(true),
	}
}

// Prompter reads answers from an input and writes prompts to an output
type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	styles *Styles
	clear  bool
}

// Option configures a Prompter
type Option func(*Prompter)

// WithStyles colors output with styles
func WithStyles(styles Styles) Option {
	return func(p *Prompter) {
		p.styles = &styles
	}
}

// WithClearScreen lets Clear erase the terminal
func WithClearScreen() Option {
	return func(p *Prompter) {
		p.clear = true
	}
}

// New creates a Prompter. Output is plain text unless WithStyles is given.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// render applies style to each line of s separately, so multi-line messages
// are not padded to a common width.
func (p *Prompter) render(pick func(Styles) lipgloss.Style, s string) string {
	if p.styles == nil {
		return s
	}
	style := pick(*p.styles)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Say writes a prompt line, prefixed with "=> "
func (p *Prompter) Say(msg string) {
	fmt.Fprintln(p.out, p.render(func(s Styles) lipgloss.Style { return s.Prompt }, "=> "+msg))
}

// Result writes an emphasized line
func (p *Prompter) Result(msg string) {
	fmt.Fprintln(p.out, p.render(func(s Styles) lipgloss.Style { return s.Result }, "=> "+msg))
}

// Warn writes an error line
func (p *Prompter) Warn(msg string) {
	fmt.Fprintln(p.out, p.render(func(s Styles) lipgloss.Style { return s.Error }, "=> "+msg))
}

// Title writes a heading
func (p *Prompter) Title(msg string) {
	fmt.Fprintln(p.out, p.render(func(s Styles) lipgloss.Style { return s.Title }, msg))
}

// Println writes text as is
func (p *Prompter) Println(text string) {
	fmt.Fprintln(p.out, text)
}

// Clear erases the screen when enabled
func (p *Prompter) Clear() {
	if p.clear {
		fmt.Fprint(p.out, "\x1b[H\x1b[2J")
	}
}

// readLine returns the next trimmed input line
func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Ask writes question and returns the answer
func (p *Prompter) Ask(question string) (string, error) {
	p.Say(question)
	return p.readLine()
}

// AskUntil asks question and repeats retry until accept returns nil. The
// error accept returned is not shown; retry is expected to explain.
func (p *Prompter) AskUntil(question, retry string, accept func(string) error) (string, error) {
	answer, err := p.Ask(question)
	for {
		if err != nil {
			return "", err
		}
		if accept(answer) == nil {
			return answer, nil
		}
		p.Warn(retry)
		answer, err = p.readLine()
	}
}

// AskChoice asks until the answer, compared case-insensitively, is one of
// options. The matching option is returned.
func (p *Prompter) AskChoice(question, retry string, options ...string) (string, error) {
	answer, err := p.AskUntil(question, retry, func(s string) error {
		if !slices.Contains(options, strings.ToLower(s)) {
			return errors.New("not an option")
		}
		return nil
	})
	return strings.ToLower(answer), err
}
