// Package listpanel renders a bordered, scrollable list of view rows with a
// cursor.
package listpanel

import (
	"strings"

	"github.com/llehouerou/mixtape/internal/ui"
	"github.com/llehouerou/mixtape/internal/ui/render"
	"github.com/llehouerou/mixtape/internal/ui/styles"
	"github.com/llehouerou/mixtape/internal/view"
)

const markerWidth = 2

// Model is one list panel.
type Model struct {
	ui.Base
	title string
	empty string
	rows  []view.Row

	pos    int // cursor row
	offset int // first visible row
}

// New creates a panel. empty is shown when there are no rows.
func New(title, empty string) Model {
	return Model{title: title, empty: empty}
}

// SetTitle replaces the panel title.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetRows replaces the rows, keeping the cursor in bounds.
func (m *Model) SetRows(rows []view.Row) {
	m.rows = rows
	m.pos = clamp(m.pos, len(rows)-1)
	m.ensureVisible()
}

// Len returns the number of rows.
func (m Model) Len() int {
	return len(m.rows)
}

// Cursor returns the cursor row, or -1 when the panel is empty.
func (m Model) Cursor() int {
	if len(m.rows) == 0 {
		return -1
	}
	return m.pos
}

// Offset returns the first visible row.
func (m Model) Offset() int {
	return m.offset
}

// Select moves the cursor to i, clamped to the rows.
func (m *Model) Select(i int) {
	m.pos = clamp(i, len(m.rows)-1)
	m.ensureVisible()
}

// HandleKey moves the cursor for the list navigation keys and reports
// whether key was one of them.
func (m *Model) HandleKey(key string) bool {
	page := max(m.listHeight()/2, 1)
	switch key {
	case "j", "down":
		m.Select(m.pos + 1)
	case "k", "up":
		m.Select(m.pos - 1)
	case "g", "home":
		m.Select(0)
	case "G", "end":
		m.Select(len(m.rows) - 1)
	case "ctrl+d", "pgdown":
		m.Select(m.pos + page)
	case "ctrl+u", "pgup":
		m.Select(m.pos - page)
	default:
		return false
	}
	return true
}

func (m *Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

func (m *Model) ensureVisible() {
	height := m.listHeight()
	if height <= 0 || len(m.rows) == 0 {
		m.offset = 0
		return
	}
	margin := min(ui.ScrollMargin, (height-1)/2)
	if m.pos < m.offset+margin {
		m.offset = m.pos - margin
	}
	if m.pos >= m.offset+height-margin {
		m.offset = m.pos - height + margin + 1
	}
	m.offset = clamp(m.offset, len(m.rows)-height)
}

// View renders the panel at its full size, border included.
func (m Model) View() string {
	innerW := m.Width() - ui.BorderWidth
	innerH := m.Height() - ui.BorderHeight
	if innerW <= 0 || innerH <= 0 {
		return ""
	}
	s := styles.T().S()

	lines := make([]string, 0, innerH)
	lines = append(lines,
		s.Title.Render(render.Fit(render.Sanitize(m.title), innerW)),
		s.Subtle.Render(render.Separator(innerW)),
	)

	if len(m.rows) == 0 {
		lines = append(lines, s.Muted.Render(render.Fit(m.empty, innerW)))
	}

	end := min(m.offset+m.listHeight(), len(m.rows))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i, innerW))
	}

	for len(lines) < innerH {
		lines = append(lines, "")
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines[:innerH], "\n"))
}

func (m Model) renderRow(i, width int) string {
	s := styles.T().S()
	r := m.rows[i]

	marker := strings.Repeat(" ", markerWidth)
	label := render.Sanitize(r.Label)
	if r.Marked {
		marker = s.Playing.Render("▶ ")
		label = s.Playing.Render(label)
	}
	line := render.Row(marker+label, s.Muted.Render(r.Detail), width)

	if i == m.pos && m.IsFocused() {
		return s.Cursor.Render(line)
	}
	return line
}

func clamp(v, hi int) int {
	return max(min(v, hi), 0)
}
