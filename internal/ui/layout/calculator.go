// Package layout provides pure functions for screen dimension calculations.
package layout

import "github.com/llehouerou/mixtape/internal/ui"

const (
	// HeaderHeight is the title line.
	HeaderHeight = 1

	// PlayerBarHeight is the now-playing line.
	PlayerBarHeight = 1

	// NarrowThreshold is the width below which panels stack vertically.
	NarrowThreshold = 80

	// DetailWidth is the cells reserved after a row label for its detail.
	DetailWidth = 22

	markerWidth = 2
)

// Panels holds the outer size of every panel.
type Panels struct {
	PlaylistsWidth, PlaylistsHeight int
	HistoryWidth, HistoryHeight     int
	TracksWidth, TracksHeight       int
}

// ContentHeight is what is left for panels once the fixed lines and the
// footer are taken out.
func ContentHeight(windowHeight, footerHeight int) int {
	return max(windowHeight-HeaderHeight-PlayerBarHeight-footerHeight, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// Compute sizes the panels. Wide: playlists above history on the left,
// tracks on the right. Narrow: all three stacked. History is sized to show
// historyLimit entries when there is room.
func Compute(width, contentHeight, historyLimit int) Panels {
	historyHeight := min(historyLimit+ui.PanelOverhead, contentHeight/3)

	if IsNarrowMode(width) {
		rest := contentHeight - historyHeight
		return Panels{
			PlaylistsWidth:  width,
			PlaylistsHeight: rest / 2,
			HistoryWidth:    width,
			HistoryHeight:   historyHeight,
			TracksWidth:     width,
			TracksHeight:    rest - rest/2,
		}
	}

	left := width * 2 / 5
	return Panels{
		PlaylistsWidth:  left,
		PlaylistsHeight: contentHeight - historyHeight,
		HistoryWidth:    left,
		HistoryHeight:   historyHeight,
		TracksWidth:     width - left,
		TracksHeight:    contentHeight,
	}
}

// LabelWidth is the label column of a row inside a panel of panelWidth.
func LabelWidth(panelWidth int) int {
	return max(panelWidth-ui.BorderWidth-markerWidth-DetailWidth-1, 0)
}
