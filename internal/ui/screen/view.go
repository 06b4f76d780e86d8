package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mixtape/internal/ui/layout"
	"github.com/llehouerou/mixtape/internal/ui/overlay"
	"github.com/llehouerou/mixtape/internal/ui/playerbar"
	"github.com/llehouerou/mixtape/internal/ui/render"
	"github.com/llehouerou/mixtape/internal/ui/styles"
)

const appTitle = "mixtape"

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	content := m.renderPanels()
	if popup := m.popup(); popup != "" {
		content = overlay.Center(content, popup, m.width, lipgloss.Height(content))
	}

	return strings.Join([]string{
		m.renderHeader(),
		content,
		playerbar.Render(m.bar, m.width),
		m.help.View(m.keys),
	}, "\n")
}

func (m Model) renderHeader() string {
	left := styles.Gradient(appTitle) + "  " + styles.T().S().Title.Render(render.Sanitize(m.view.Title))
	right := styles.T().S().Muted.Render(m.view.Status)
	return render.Row(left, right, m.width)
}

func (m Model) renderPanels() string {
	if layout.IsNarrowMode(m.width) {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.playlists.View(),
			m.tracks.View(),
			m.history.View(),
		)
	}
	left := lipgloss.JoinVertical(lipgloss.Left, m.playlists.View(), m.history.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.tracks.View())
}

// popup returns the modal on top, if any. The error notice wins.
func (m Model) popup() string {
	switch {
	case m.notice != "":
		s := styles.T().S()
		return styles.PopupStyle().Render(
			s.Error.Render(m.notice) + "\n\n" + s.Subtle.Render("Press any key"),
		)
	case m.confirm.Active():
		return m.confirm.View()
	case m.prompt.Active():
		return m.prompt.View()
	}
	return ""
}
