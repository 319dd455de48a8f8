package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prabhanj08/pybasics/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu. Disabled
// items are rendered dimmed and skipped during navigation.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = firstEnabled(items)
	return m
}

func firstEnabled(items []MenuItem) int {
	for i, item := range items {
		if !item.Disabled {
			return i
		}
	}
	return 0
}

// SetItems replaces the menu items, keeping the selection on the same
// index when it is still enabled.
func (m *Menu) SetItems(items []MenuItem) {
	m.Items = items
	if m.Selected >= len(items) || (len(items) > 0 && items[m.Selected].Disabled) {
		m.Selected = firstEnabled(items)
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			s += theme.Locked.Render("    "+item.Label) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render("  ▸ ") + lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render(item.Label)
			if item.Detail != "" {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + item.Detail)
			}
			s += "\n"
		default:
			s += "    " + lipgloss.NewStyle().Foreground(theme.Text).Render(item.Label)
			if item.Detail != "" {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + item.Detail)
			}
			s += "\n"
		}
	}
	return s
}
