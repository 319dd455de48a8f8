package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/prabhanj08/pybasics/internal/ui/layout"
)

// Screen is the interface all application screens implement.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that want custom
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscCapturer is an optional interface for screens that consume the esc
// key themselves, e.g. to dismiss an inline filter. While WantsEsc
// reports true, esc is forwarded to the screen instead of navigating
// back.
type EscCapturer interface {
	WantsEsc() bool
}
