package app

import (
	"diya-scene.klederson.com/internal/ui"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit    key.Binding
	Pause   key.Binding
	Caption key.Binding
	Help    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "Q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		Pause:   key.NewBinding(key.WithKeys(" ", "space", "p", "P"), key.WithHelp("space", "pause/resume")),
		Caption: key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "caption")),
		Help:    key.NewBinding(key.WithKeys("?", "h", "H"), key.WithHelp("?", "help")),
	}
}

// menu returns the short hints shown in the menu bar.
func (k keyMap) menu() []ui.MenuKey {
	return []ui.MenuKey{
		{Key: "P", Label: "ause"},
		{Key: "C", Label: "aption"},
		{Key: "?", Label: "help"},
		{Key: "Q", Label: "uit"},
	}
}

// help returns the full key reference from the bindings' help text.
func (k keyMap) help() []ui.MenuKey {
	var out []ui.MenuKey
	for _, b := range []key.Binding{k.Pause, k.Caption, k.Help, k.Quit} {
		h := b.Help()
		out = append(out, ui.MenuKey{Key: h.Key, Label: h.Desc})
	}
	return out
}
