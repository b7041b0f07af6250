package ui

import "strings"

// TooSmallMessage is shown when the terminal cannot hold the scene.
const TooSmallMessage = "Enlarge the terminal to see the ceremony"

// RenderStagePanel wraps the rendered stage with a styled border.
// The stage itself is rasterized externally to avoid import cycles.
func RenderStagePanel(width, height int, stage string) string {
	if stage == "" {
		pad := max((width-2-len(TooSmallMessage))/2, 0)
		stage = strings.Repeat(" ", pad) + StyleHelp.Render(TooSmallMessage)
	}
	return StylePanelBorder.Width(width - 2).Height(height - 2).MaxHeight(height).Render(stage)
}
