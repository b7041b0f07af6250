package ui

import (
	"diya-scene.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Palace palette
var (
	ColorGold       = lipgloss.Color(config.ColorGold)
	ColorFlame      = lipgloss.Color(config.ColorFlame)
	ColorMarigold   = lipgloss.Color(config.ColorMarigold)
	ColorEmber      = lipgloss.Color(config.ColorEmber)
	ColorStone      = lipgloss.Color(config.ColorStone)
	ColorStoneLight = lipgloss.Color(config.ColorStoneLight)
	ColorNight      = lipgloss.Color(config.ColorNight)
	ColorBar        = lipgloss.Color("#2A0E12")
	ColorRose       = lipgloss.Color(config.ColorRose)
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorStoneLight)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorStoneLight).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorFlame).
			Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorEmber).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorStone)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(ColorGold)

	StyleCaptionHeading = lipgloss.NewStyle().
				Foreground(ColorGold).
				Bold(true)

	StyleCaptionBody = lipgloss.NewStyle().
				Foreground(ColorFlame)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorStoneLight)

	StyleHelpKey = lipgloss.NewStyle().
			Foreground(ColorMarigold).
			Bold(true)
)
