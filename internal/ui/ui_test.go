package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const body = "An Indian royal couple honours the birth of their first child with a sacred ghee lamp ceremony."

func TestRenderCaptionHeight(t *testing.T) {
	for _, h := range []int{4, 10, 30} {
		out := RenderCaption(30, h, "Royal Blessing of Light", body)
		if got := lipgloss.Height(out); got != h {
			t.Errorf("height %d: got %d lines", h, got)
		}
		if got := lipgloss.Width(out); got != 30 {
			t.Errorf("height %d: expected width 30, got %d", h, got)
		}
	}
}

func TestRenderCaptionTruncatesHeading(t *testing.T) {
	out := ansi.Strip(RenderCaption(MinCaptionWidth, 12, "Royal Blessing of Light", body))
	if !strings.Contains(out, "Royal Blessing of") || !strings.Contains(out, "…") {
		t.Errorf("Expected a truncated heading, got:\n%s", out)
	}
}

func TestRenderHelp(t *testing.T) {
	keys := []MenuKey{{Key: "space", Label: "pause/resume"}, {Key: "q", Label: "quit"}}
	out := ansi.Strip(RenderHelp(30, 10, keys))
	for _, want := range []string{"KEYS", "space", "pause/resume", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected help to contain %q", want)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	tests := []struct {
		name string
		info StatusInfo
		want []string
	}{
		{"live", StatusInfo{Elapsed: 125, FPS: 29.6, Particles: 36, Lamps: 26, Layers: 30},
			[]string{"[GLOWING]", "t=02:05", "fps: 30", "particles: 36", "lamps: 26"}},
		{"paused", StatusInfo{Paused: true}, []string{"[PAUSED]", "t=00:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(RenderStatusBar(100, tt.info))
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Expected %q in %q", want, out)
				}
			}
		})
	}
}

func TestRenderMenuBar(t *testing.T) {
	keys := []MenuKey{{Key: "P", Label: "ause"}, {Key: "Q", Label: "uit"}}

	out := ansi.Strip(RenderMenuBar(100, "Royal Ghee Lamp Ceremony", keys, false))
	for _, want := range []string{"DIYA-SCENE", "[P]ause", "LIVE", "Royal Ghee Lamp Ceremony"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}

	narrow := RenderMenuBar(30, "Royal Ghee Lamp Ceremony", keys, true)
	if got := lipgloss.Height(narrow); got != 1 {
		t.Errorf("Expected a single line when narrow, got %d", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0, "00:00"},
		{59.9, "00:59"},
		{125, "02:05"},
		{-3, "00:00"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.sec); got != tt.want {
			t.Errorf("formatElapsed(%v): expected %s, got %s", tt.sec, tt.want, got)
		}
	}
}

func TestComposeLayout(t *testing.T) {
	full := ComposeLayout("menu", "stage", "", "status")
	if got := lipgloss.Height(full); got != 3 {
		t.Errorf("Expected 3 lines without caption, got %d", got)
	}

	split := ansi.Strip(ComposeLayout("menu", "stage", "aside", "status"))
	lines := strings.Split(split, "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "stageaside") {
		t.Errorf("Expected stage and caption side by side, got %q", lines)
	}
}

func TestRenderStagePanelTooSmall(t *testing.T) {
	out := ansi.Strip(RenderStagePanel(60, 8, ""))
	if !strings.Contains(out, TooSmallMessage) {
		t.Errorf("Expected %q in the panel", TooSmallMessage)
	}
}
