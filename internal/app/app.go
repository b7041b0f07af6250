package app

import (
	"log"
	"time"

	"diya-scene.klederson.com/internal/config"
	"diya-scene.klederson.com/internal/scene"
	"diya-scene.klederson.com/internal/stage"
	"diya-scene.klederson.com/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	stage     *stage.Stage
	clock     *stage.Clock
	frames    *FrameRing
	lastFrame time.Time
}

// AppModel is the root Bubble Tea model for the lamp ceremony.
type AppModel struct {
	width  int
	height int

	fps         int
	showCaption bool
	showHelp    bool
	keys        keyMap

	// Composed once at construction and never recomposed.
	desc    scene.Description
	summary ui.StatusInfo

	shared *shared
}

// New composes the scene and creates the model.
func New(settings config.Settings) AppModel {
	return newWithClock(settings, stage.NewClock())
}

func newWithClock(settings config.Settings, clock *stage.Clock) AppModel {
	desc := scene.Compose()

	layers := 0
	scene.Walk(desc.Layers, func(scene.Layer) { layers++ })
	summary := ui.StatusInfo{
		Particles: len(desc.Elements(scene.FamilyParticle)),
		Lamps: len(desc.Elements(scene.FamilyBackgroundLamp)) +
			len(desc.Elements(scene.FamilyForegroundLamp)) +
			len(desc.Elements(scene.FamilyTrayLamp)),
		Layers: layers,
	}
	log.Printf("scene composed: %d particles, %d lamps, %d layers",
		summary.Particles, summary.Lamps, summary.Layers)

	fps := settings.FPS
	if fps < config.MinFPS || fps > config.MaxFPS {
		fps = config.DefaultFPS
	}

	return AppModel{
		fps:         fps,
		showCaption: settings.Caption,
		keys:        newKeyMap(),
		desc:        desc,
		summary:     summary,
		shared: &shared{
			stage:  stage.New(desc),
			clock:  clock,
			frames: NewFrameRing(config.FrameHistory),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		now := time.Time(msg)
		if !m.shared.lastFrame.IsZero() {
			m.shared.frames.Push(now.Sub(m.shared.lastFrame))
		}
		m.shared.lastFrame = now
		m.shared.clock.Update()
		return m, tickCmd(m.fps)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		log.Printf("exit after %.1fs of animation", m.shared.clock.Seconds())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.shared.clock.Toggle() {
			log.Printf("paused at %.1fs", m.shared.clock.Seconds())
		} else {
			log.Printf("resumed at %.1fs", m.shared.clock.Seconds())
		}

	case key.Matches(msg, m.keys.Caption):
		m.showCaption = !m.showCaption

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Lighting the lamps..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	side := ""
	stageW := m.width
	if m.showCaption || m.showHelp {
		sideW := m.width / 3
		if sideW < ui.MinCaptionWidth {
			sideW = ui.MinCaptionWidth
		}
		if m.width-sideW >= 30 {
			stageW = m.width - sideW
			if m.showHelp {
				side = ui.RenderHelp(sideW, bodyH, m.keys.help())
			} else {
				side = ui.RenderCaption(sideW, bodyH, m.desc.Caption.Heading, m.desc.Caption.Body)
			}
		}
	}

	menuBar := ui.RenderMenuBar(m.width, m.desc.Title, m.keys.menu(), m.shared.clock.Paused())

	innerW := stageW - 2
	innerH := bodyH - 2
	frame := m.shared.stage.Render(innerW, innerH, m.shared.clock.Seconds())
	stagePanel := ui.RenderStagePanel(stageW, bodyH, frame)

	info := m.summary
	info.Paused = m.shared.clock.Paused()
	info.Elapsed = m.shared.clock.Seconds()
	info.FPS = m.shared.frames.FPS()
	statusBar := ui.RenderStatusBar(m.width, info)

	return ui.ComposeLayout(menuBar, stagePanel, side, statusBar)
}

// Description returns the composed scene.
func (m AppModel) Description() scene.Description {
	return m.desc
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
