package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prabhanj08/pybasics/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput for inline filtering of lists.
type FilterInput struct {
	Model  textinput.Model
	active bool
}

// NewFilterInput creates a new styled filter input.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	return FilterInput{Model: ti}
}

// Activate focuses the input and starts capturing keystrokes.
func (f *FilterInput) Activate() tea.Cmd {
	f.active = true
	return f.Model.Focus()
}

// Deactivate blurs the input, keeping the current value as the filter.
func (f *FilterInput) Deactivate() {
	f.active = false
	f.Model.Blur()
}

// Clear deactivates and empties the input.
func (f *FilterInput) Clear() {
	f.Deactivate()
	f.Model.SetValue("")
}

// Active reports whether the input is capturing keystrokes.
func (f FilterInput) Active() bool {
	return f.active
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}

// Update handles messages while the input is active.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the filter input with a leading slash marker.
func (f FilterInput) View() string {
	marker := lipgloss.NewStyle().Foreground(theme.Secondary).Render("/")
	return marker + " " + f.Model.View()
}
