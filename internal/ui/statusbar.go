package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the status bar reports about the running scene.
type StatusInfo struct {
	Paused    bool
	Elapsed   float64 // animation seconds
	FPS       float64 // measured frames per second
	Particles int
	Lamps     int
	Layers    int
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	status := StyleStatusLive.Render("[GLOWING]")
	if info.Paused {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	text := fmt.Sprintf(" t=%s  fps: %.0f  particles: %d  lamps: %d  layers: %d",
		formatElapsed(info.Elapsed), info.FPS, info.Particles, info.Lamps, info.Layers)

	content := status + StyleStatusBar.Render(text)

	gap := width - lipgloss.Width(content) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).MaxHeight(1).Render(content + strings.Repeat(" ", gap))
}

// formatElapsed formats seconds as MM:SS.
func formatElapsed(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	total := int(sec)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
