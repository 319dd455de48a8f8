package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/progress"
	"github.com/prabhanj08/pybasics/internal/router"
	"github.com/prabhanj08/pybasics/internal/screen"
	lessonscreen "github.com/prabhanj08/pybasics/internal/screens/lesson"
	"github.com/prabhanj08/pybasics/internal/session"
	"github.com/prabhanj08/pybasics/internal/ui/components"
	"github.com/prabhanj08/pybasics/internal/ui/layout"
	"github.com/prabhanj08/pybasics/internal/ui/theme"
)

type rowKind int

const (
	rowUnitHeader rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	unit   catalog.Unit
	lesson *catalog.Lesson
}

// LessonsScreen displays the course catalog organized by unit.
type LessonsScreen struct {
	session      *session.Session
	rows         []row
	cursor       int
	scrollOffset int
	filter       components.FilterInput
	notice       string
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)
var _ screen.EscCapturer = (*LessonsScreen)(nil)

// New creates a new LessonsScreen.
func New(sess *session.Session) *LessonsScreen {
	s := &LessonsScreen{
		session: sess,
		filter:  components.NewFilterInput("filter lessons"),
	}
	s.rebuildRows()
	return s
}

// rebuildRows recomputes visible rows from the catalog and the current
// filter text. Units with no matching lessons are omitted.
func (s *LessonsScreen) rebuildRows() {
	cat := s.session.Catalog()
	query := strings.ToLower(s.filter.Value())

	s.rows = s.rows[:0]
	for _, unit := range catalog.AllUnits() {
		lessons := cat.ByUnit(unit)
		var matched []row
		for i := range lessons {
			if query != "" && !strings.Contains(strings.ToLower(lessons[i].Title), query) {
				continue
			}
			matched = append(matched, row{kind: rowLesson, unit: unit, lesson: &lessons[i]})
		}
		if len(matched) == 0 {
			continue
		}
		s.rows = append(s.rows, row{kind: rowUnitHeader, unit: unit})
		s.rows = append(s.rows, matched...)
	}

	// Cursor starts on (or clamps back to) a lesson row.
	if s.cursor >= len(s.rows) {
		s.cursor = 0
	}
	if len(s.rows) > 0 && s.rows[s.cursor].kind != rowLesson {
		s.moveCursor(1)
	}
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.filter.Active() {
		switch kmsg.String() {
		case "enter":
			s.filter.Deactivate()
		case "esc":
			s.filter.Clear()
			s.rebuildRows()
		default:
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			s.rebuildRows()
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "tab":
		s.nextUnit()
	case "shift+tab":
		s.prevUnit()
	case "/":
		return s, s.filter.Activate()
	case "esc":
		// Reachable only while a filter is applied; otherwise the app
		// pops the screen before the key arrives here.
		s.filter.Clear()
		s.rebuildRows()
	case "enter":
		return s, s.openSelected()
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// openSelected pushes the lesson screen for the cursor row when the
// lesson is unlocked; locked lessons set an explanatory notice instead.
func (s *LessonsScreen) openSelected() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowLesson {
		return nil
	}
	lesson := *s.rows[s.cursor].lesson

	tracker := s.session.Tracker()
	cat := s.session.Catalog()
	if tracker.State(cat, lesson.ID) == progress.StateLocked {
		var missing []string
		for _, p := range cat.Prerequisites(lesson.ID) {
			if !tracker.IsCompleted(p.ID) {
				missing = append(missing, p.Title)
			}
		}
		s.notice = fmt.Sprintf("Locked — finish %s first", strings.Join(missing, ", "))
		return nil
	}

	s.notice = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: lessonscreen.New(s.session, lesson)}
	}
}

func (s *LessonsScreen) View(width, height int) string {
	if len(s.rows) == 0 && s.filter.Value() == "" {
		return ""
	}

	var header []string
	if s.filter.Active() || s.filter.Value() != "" {
		header = append(header, "  "+s.filter.View(), "")
	}
	if s.notice != "" {
		header = append(header,
			"  "+lipgloss.NewStyle().Foreground(theme.Error).Render(s.notice), "")
	}

	listHeight := height - len(header)
	if listHeight < 1 {
		listHeight = 1
	}
	s.adjustScroll(listHeight)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}
		switch r.kind {
		case rowUnitHeader:
			lines = append(lines, s.renderUnitHeader(r.unit, width))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r, i == s.cursor, width))
		}
		visible++
	}

	if len(s.rows) == 0 {
		lines = append(lines, theme.Hint.Render("  No lessons match the filter."))
	}

	return strings.Join(append(header, lines...), "\n")
}

func (s *LessonsScreen) Title() string {
	return "Lessons"
}

// WantsEsc claims the esc key while a filter is being typed or applied,
// so esc clears the filter before it navigates back.
func (s *LessonsScreen) WantsEsc() bool {
	return s.filter.Active() || s.filter.Value() != ""
}

// KeyHints returns the key binding hints for the footer.
func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	if s.filter.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	escHint := layout.KeyHint{Key: "Esc", Description: "Back"}
	if s.filter.Value() != "" {
		escHint = layout.KeyHint{Key: "Esc", Description: "Clear filter"}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Unit"},
		{Key: "/", Description: "Filter"},
		{Key: "Enter", Description: "Open"},
		escHint,
	}
}

// moveCursor moves the cursor by delta, skipping unit headers.
func (s *LessonsScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextUnit jumps to the first lesson of the following unit.
func (s *LessonsScreen) nextUnit() {
	current := s.currentUnit()
	passed := false
	for i, r := range s.rows {
		if r.kind != rowLesson {
			continue
		}
		if r.unit != current {
			if passed || i > s.cursor {
				s.cursor = i
				return
			}
		}
		if i == s.cursor {
			passed = true
		}
	}
}

// prevUnit jumps to the first lesson of the preceding unit.
func (s *LessonsScreen) prevUnit() {
	current := s.currentUnit()
	lastFirst := -1
	var lastUnit catalog.Unit
	for i, r := range s.rows {
		if r.kind != rowLesson {
			continue
		}
		if i >= s.cursor {
			break
		}
		if r.unit != lastUnit {
			lastUnit = r.unit
			lastFirst = i
		}
	}
	if lastFirst >= 0 && lastUnit != current {
		s.cursor = lastFirst
	}
}

func (s *LessonsScreen) currentUnit() catalog.Unit {
	if s.cursor >= 0 && s.cursor < len(s.rows) {
		return s.rows[s.cursor].unit
	}
	return ""
}

// adjustScroll keeps the cursor row inside the visible window.
func (s *LessonsScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

func (s *LessonsScreen) renderUnitHeader(u catalog.Unit, width int) string {
	name := catalog.UnitDisplayName(u)
	line := fmt.Sprintf("  %s %s", theme.UnitHeading.Render(name),
		lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", max(0, width-lipgloss.Width(name)-6))))
	return line
}

func (s *LessonsScreen) renderLessonRow(r row, selected bool, width int) string {
	cat := s.session.Catalog()
	tracker := s.session.Tracker()
	lesson := *r.lesson
	state := tracker.State(cat, lesson.ID)

	cursor := "    "
	if selected {
		cursor = theme.Selected.Render("  ▸ ")
	}

	title := lesson.Title
	style := theme.Unselected
	switch {
	case state == progress.StateLocked:
		style = theme.Locked
	case state == progress.StateCompleted:
		style = theme.Completed
	}
	if selected {
		style = style.Bold(true)
	}

	mins := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  ~%d min", lesson.EstimatedMins))

	return fmt.Sprintf("%s%s %s%s", cursor, state.Icon(), style.Render(title), mins)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
