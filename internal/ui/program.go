package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RunMenu shows menu on out, reading keys from in, and returns the item the
// user picked. ok is false when the user quit without choosing.
func RunMenu(menu Menu, in io.Reader, out io.Writer) (item Item, ok bool, err error) {
	p := tea.NewProgram(menu, tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return Item{}, false, fmt.Errorf("failed to run menu: %w", err)
	}

	m, isMenu := final.(Menu)
	if !isMenu {
		return Item{}, false, nil
	}
	item, ok = m.Selected()
	return item, ok, nil
}
