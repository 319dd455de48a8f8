// Package overview renders the learner's progress across the course:
// one bar per unit plus overall totals.
package overview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/screen"
	"github.com/prabhanj08/pybasics/internal/session"
	"github.com/prabhanj08/pybasics/internal/ui/components"
	"github.com/prabhanj08/pybasics/internal/ui/layout"
	"github.com/prabhanj08/pybasics/internal/ui/theme"
)

// OverviewScreen displays per-unit and overall completion.
type OverviewScreen struct {
	session *session.Session
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates a new OverviewScreen.
func New(sess *session.Session) *OverviewScreen {
	return &OverviewScreen{session: sess}
}

func (s *OverviewScreen) Init() tea.Cmd {
	return nil
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *OverviewScreen) Title() string {
	return "Progress"
}

// KeyHints returns the key binding hints for the footer.
func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *OverviewScreen) View(width, height int) string {
	cat := s.session.Catalog()
	tracker := s.session.Tracker()

	barWidth := min(width-8, 64)
	labelWidth := 0
	for _, u := range catalog.AllUnits() {
		if w := len(catalog.UnitDisplayName(u)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Course progress"))
	b.WriteString("\n\n")

	for _, unit := range catalog.AllUnits() {
		lessons := cat.ByUnit(unit)
		if len(lessons) == 0 {
			continue
		}
		done := 0
		for _, l := range lessons {
			if tracker.IsCompleted(l.ID) {
				done++
			}
		}

		label := fmt.Sprintf("%-*s", labelWidth, catalog.UnitDisplayName(unit))
		bar := components.NewProgressBar(label, float64(done)/float64(len(lessons)), false, barWidth)
		count := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", done, len(lessons)))

		b.WriteString("  " + bar.View() + count + "\n")
	}

	b.WriteString("\n")
	total := components.NewProgressBar(
		fmt.Sprintf("%-*s", labelWidth, "Overall"), tracker.Percent(cat), true, barWidth)
	b.WriteString("  " + total.View() + "\n\n")

	// What to study next.
	next := tracker.NextAvailable(cat)
	if len(next) == 0 {
		b.WriteString(theme.Completed.Render("  Course complete — well done! 🎉"))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Up next:"))
		b.WriteString("\n")
		limit := min(len(next), 3)
		for _, l := range next[:limit] {
			b.WriteString(fmt.Sprintf("    • %s (%s)\n",
				theme.Body.Render(l.Title),
				catalog.UnitDisplayName(l.Unit)))
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
