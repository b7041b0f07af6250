package ui

import (
	"fmt"
	"strings"

	"diya-scene.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// MenuKey is one key hint shown in the menu bar.
type MenuKey struct {
	Key, Label string
}

// RenderMenuBar renders the top menu bar: app name, key hints and whether the
// animation is running.
func RenderMenuBar(width int, title string, keys []MenuKey, paused bool) string {
	name := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.Key+"]") + StyleMenuLabel.Render(k.Label)
	}

	status := StyleStatusLive.Render("LIVE")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}

	left := StyleMenuKey.Render(name) + menu
	right := status + "  " + StyleMenuLabel.Render(title) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
		right = status + " "
	}

	return StyleMenuBar.Width(width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}
