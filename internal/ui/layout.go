package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the stage panel and the caption side by side, with the
// menu bar on top and the status bar at the bottom. An empty caption leaves
// the stage full width.
func ComposeLayout(menuBar, stagePanel, caption, statusBar string) string {
	middle := stagePanel
	if caption != "" {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, stagePanel, caption)
	}
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
