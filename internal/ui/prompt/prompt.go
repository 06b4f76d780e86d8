// Package prompt provides a single-line text entry popup.
package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mixtape/internal/ui/styles"
)

// inputLimit leaves room for long file paths.
const inputLimit = 1024

// Result is sent when the prompt is submitted or canceled.
type Result struct {
	Text     string
	Canceled bool
	Context  any
}

// Model is a text prompt popup.
type Model struct {
	title   string
	input   textinput.Model
	context any
	active  bool
}

// New creates a new prompt.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = inputLimit
	ti.Width = 40
	return Model{input: ti}
}

// Show opens the prompt with initial text and returns the cursor blink
// command.
func (m *Model) Show(title, initial string, context any) tea.Cmd {
	m.title = title
	m.context = context
	m.active = true
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Active returns whether the prompt is shown.
func (m Model) Active() bool {
	return m.active
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Update feeds msg to the text input. Enter submits, Esc cancels.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			return m.finish(Result{Text: m.input.Value()})
		case tea.KeyEsc:
			return m.finish(Result{Canceled: true})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) finish(res Result) tea.Cmd {
	res.Context = m.context
	m.active = false
	m.context = nil
	m.input.Blur()
	m.input.Reset()
	return func() tea.Msg { return res }
}

// View renders the popup, or nothing when inactive.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()
	content := s.Playing.Render(m.title) + "\n\n" +
		m.input.View() + "\n\n" +
		s.Subtle.Render("Enter: confirm, Esc: cancel")
	return styles.PopupStyle().Render(content)
}
