// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mixtape/internal/ui/styles"
)

// Result is sent once the user answers.
type Result struct {
	Confirmed bool
	Context   any // passed through from Show
}

// Model is a yes/no confirmation popup.
type Model struct {
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the popup. context is handed back in the Result.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Update handles a key while the popup is shown.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	var confirmed bool
	switch keyMsg.String() {
	case "enter", "y", "Y":
		confirmed = true
	case "esc", "n", "N":
	default:
		return nil
	}

	m.active = false
	res := Result{Confirmed: confirmed, Context: m.context}
	m.context = nil
	return func() tea.Msg { return res }
}

// View renders the popup, or nothing when inactive.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()
	content := s.Playing.Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		s.Subtle.Render("Enter/Y: confirm, Esc/N: cancel")
	return styles.PopupStyle().Render(content)
}
