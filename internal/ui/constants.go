// Package ui provides shared UI constants and building blocks.
package ui

// Layout constants shared by the panels.
const (
	// ScrollMargin is the number of items kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a panel border.
	BorderWidth = 2

	// HeaderHeight is the space for a panel title + separator.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead of a panel.
	// listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)
