package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/smartanki/smartanki/internal/ui/layout"
)

// Screen is one page of the study TUI.
type Screen interface {
	// Init returns a command to run when the screen becomes active.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
