package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prabhanj08/pybasics/internal/router"
	"github.com/prabhanj08/pybasics/internal/screen"
	lessonscreen "github.com/prabhanj08/pybasics/internal/screens/lesson"
	"github.com/prabhanj08/pybasics/internal/screens/lessons"
	"github.com/prabhanj08/pybasics/internal/screens/overview"
	"github.com/prabhanj08/pybasics/internal/session"
	"github.com/prabhanj08/pybasics/internal/ui/components"
	"github.com/prabhanj08/pybasics/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	session *session.Session
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sess *session.Session) *HomeScreen {
	h := &HomeScreen{session: sess}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

// buildItems recomputes the menu from current progress, so the
// "continue" entry always points at the next unlocked lesson.
func (h *HomeScreen) buildItems() []components.MenuItem {
	cat := h.session.Catalog()
	tracker := h.session.Tracker()

	next := tracker.NextAvailable(cat)

	continueItem := components.MenuItem{
		Label:    "CONTINUE LEARNING",
		Detail:   "course complete!",
		Disabled: true,
	}
	if len(next) > 0 {
		lesson := next[0]
		continueItem = components.MenuItem{
			Label:  "CONTINUE LEARNING",
			Detail: lesson.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lessonscreen.New(h.session, lesson)}
				}
			},
		}
	}

	return []components.MenuItem{
		continueItem,
		{Label: "BROWSE LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessons.New(h.session)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: overview.New(h.session)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Progress may have changed while a pushed screen was active.
	h.menu.SetItems(h.buildItems())

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cat := h.session.Catalog()
	tracker := h.session.Tracker()

	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("PyBasics"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"A terminal course on Python fundamentals"))
	sections = append(sections, "")

	bar := components.NewProgressBar("", tracker.Percent(cat), true, min(width-8, 50))
	statsLine := fmt.Sprintf("%d of %d lessons completed", tracker.CompletedCount(cat), cat.Len())
	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()),
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine)),
		"",
	)

	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
