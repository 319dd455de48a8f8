package lesson

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/content"
	"github.com/prabhanj08/pybasics/internal/progress"
	"github.com/prabhanj08/pybasics/internal/screen"
	"github.com/prabhanj08/pybasics/internal/session"
	"github.com/prabhanj08/pybasics/internal/ui/layout"
	"github.com/prabhanj08/pybasics/internal/ui/theme"
)

// maxBodyWidth caps the rendered markdown so long lines stay readable
// on wide terminals.
const maxBodyWidth = 88

// LessonScreen displays one lesson's content and lets the learner mark
// it complete.
type LessonScreen struct {
	session *session.Session
	lesson  catalog.Lesson

	bodyLines     []string
	renderedWidth int
	scrollOffset  int
	notice        string
	noticeIsErr   bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the given lesson.
func New(sess *session.Session, lesson catalog.Lesson) *LessonScreen {
	sess.OpenLesson(context.Background(), lesson.ID)
	return &LessonScreen{session: sess, lesson: lesson}
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.scroll(-1)
	case "down", "j":
		s.scroll(1)
	case "pgup", "b":
		s.scroll(-10)
	case "pgdown", "f", " ":
		s.scroll(10)
	case "g":
		s.scrollOffset = 0
	case "shift+g":
		s.scrollOffset = len(s.bodyLines) // clamped at render time
	case "c":
		s.markComplete()
	}
	return s, nil
}

// markComplete drives the session and turns tracker errors into an
// on-screen notice rather than failing the app.
func (s *LessonScreen) markComplete() {
	err := s.session.CompleteLesson(context.Background(), s.lesson.ID)
	if err == nil {
		s.notice = "Lesson completed ✅"
		s.noticeIsErr = false
		return
	}

	var prereqErr *progress.PrerequisiteError
	if errors.As(err, &prereqErr) {
		titles := make([]string, 0, len(prereqErr.Missing))
		for _, id := range prereqErr.Missing {
			if l, err := s.session.Catalog().Get(id); err == nil {
				titles = append(titles, l.Title)
			} else {
				titles = append(titles, id)
			}
		}
		s.notice = "Finish these first: " + strings.Join(titles, ", ")
		s.noticeIsErr = true
		return
	}

	s.notice = err.Error()
	s.noticeIsErr = true
}

func (s *LessonScreen) View(width, height int) string {
	s.renderBody(width)

	meta := s.renderMeta(width)
	metaHeight := lipgloss.Height(meta) + 1

	bodyHeight := height - metaHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	maxOffset := len(s.bodyLines) - bodyHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}

	end := s.scrollOffset + bodyHeight
	if end > len(s.bodyLines) {
		end = len(s.bodyLines)
	}
	body := strings.Join(s.bodyLines[s.scrollOffset:end], "\n")

	return meta + "\n" + body
}

// renderBody runs the markdown through glamour, re-rendering only when
// the width changes.
func (s *LessonScreen) renderBody(width int) {
	bodyWidth := width - 4
	if bodyWidth > maxBodyWidth {
		bodyWidth = maxBodyWidth
	}
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	if s.renderedWidth == bodyWidth {
		return
	}
	s.renderedWidth = bodyWidth

	raw, err := content.Body(s.lesson.ID)
	if err != nil {
		s.bodyLines = []string{theme.Hint.Render("  Lesson content unavailable: " + err.Error())}
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(bodyWidth),
	)
	if err != nil {
		s.bodyLines = strings.Split(raw, "\n")
		return
	}

	rendered, err := renderer.Render(raw)
	if err != nil {
		s.bodyLines = strings.Split(raw, "\n")
		return
	}
	s.bodyLines = strings.Split(strings.TrimRight(rendered, "\n"), "\n")
}

// renderMeta renders the lesson header block above the body.
func (s *LessonScreen) renderMeta(width int) string {
	cat := s.session.Catalog()
	tracker := s.session.Tracker()
	state := tracker.State(cat, s.lesson.ID)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", state.Icon(), s.lesson.Title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s · ~%d min · %s",
			catalog.UnitDisplayName(s.lesson.Unit), s.lesson.EstimatedMins, state.Label())))

	if s.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(theme.Success)
		if s.noticeIsErr {
			noticeStyle = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render("  " + s.notice))
	}
	b.WriteString("\n")

	return b.String()
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

// KeyHints returns the key binding hints for the footer.
func (s *LessonScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "C", Description: "Mark complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonScreen) scroll(delta int) {
	s.scrollOffset += delta
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}
