package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MinCaptionWidth is the narrowest caption panel worth drawing.
const MinCaptionWidth = 24

// RenderCaption renders the aside panel with the scene heading and body text
// wrapped to the panel width. Output is exactly height lines tall.
func RenderCaption(width, height int, heading, body string) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StyleCaptionHeading.Render(ansi.Truncate(heading, innerW, "…"))
	sep := StyleHelp.Render(strings.Repeat("~", innerW))
	text := StyleCaptionBody.Width(innerW).Render(body)

	lines := append([]string{title, sep, ""}, strings.Split(text, "\n")...)
	return boxLines(StylePanelActive, width, height, lines)
}

// RenderHelp renders the key reference in place of the caption.
func RenderHelp(width, height int, keys []MenuKey) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	lines := []string{
		StyleCaptionHeading.Render("KEYS"),
		StyleHelp.Render(strings.Repeat("~", innerW)),
		"",
	}
	for _, k := range keys {
		line := StyleHelpKey.Render(ansi.Truncate(k.Key, 8, "")) +
			strings.Repeat(" ", max(0, 9-lipgloss.Width(k.Key))) +
			StyleHelp.Render(k.Label)
		lines = append(lines, ansi.Truncate(line, innerW, "…"))
	}
	return boxLines(StylePanelActive, width, height, lines)
}

// boxLines pads or clamps lines to fit the inner height of a bordered box and
// renders it. lipgloss Height() only sets a minimum, so overflow is cut here.
func boxLines(style lipgloss.Style, width, height int, lines []string) string {
	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	return style.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}
