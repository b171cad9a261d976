package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one entry of a Menu
type Item struct {
	Key         string
	Title       string
	Description string
}

// Menu is a Bubble Tea model for picking one item from a list
type Menu struct {
	title  string
	items  []Item
	cursor int
	chosen int
	done   bool
}

// NewMenu creates a menu with the cursor on the first item
func NewMenu(title string, items []Item) Menu {
	return Menu{
		title:  title,
		items:  items,
		chosen: -1,
	}
}

// Init initializes the model
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.chosen = m.cursor
		m.done = true
		return m, tea.Quit
	default:
		// Number keys pick an item directly
		for i := range m.items {
			if key.String() == fmt.Sprint(i+1) {
				m.cursor = i
				m.chosen = i
				m.done = true
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	itemStyle     = lipgloss.NewStyle()
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// View renders the menu
func (m Menu) View() string {
	if m.done {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(m.title))
	s.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		style := itemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		s.WriteString(style.Render(fmt.Sprintf("%s%d) %s", cursor, i+1, item.Title)))
		if item.Description != "" {
			s.WriteString(" " + descStyle.Render(item.Description))
		}
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("up/down to move, enter to start, q to quit"))
	s.WriteString("\n")
	return s.String()
}

// Selected returns the chosen item, if any
func (m Menu) Selected() (Item, bool) {
	if m.chosen < 0 || m.chosen >= len(m.items) {
		return Item{}, false
	}
	return m.items[m.chosen], true
}
