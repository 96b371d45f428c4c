package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/IlikeChooros/go-hanoi/pkg/game"
)

// Zone ids of the clickable buttons
const (
	zoneAutoplay = "autoplay"
	zoneReset    = "reset"
	zoneQuit     = "quit"
)

func pegZone(peg int) string {
	return fmt.Sprintf("peg-%d", peg)
}

type tickMsg time.Time

// Model is the bubbletea model of the game, every frame is a tick of the controller.
// The controller is only touched from Update and View.
type Model struct {
	controller *game.Controller
	zones      *zone.Manager
	styles     Styles
	fps        int
	ctx        context.Context
	width      int
	height     int
}

type Option func(*Model)

// Frames per second, each frame ticks the controller once
func WithFPS(fps int) Option {
	return func(m *Model) {
		m.fps = max(fps, 1)
	}
}

// Zone manager used for mouse hit-testing, defaults to a fresh one
func WithZones(zones *zone.Manager) Option {
	return func(m *Model) {
		if zones != nil {
			m.zones = zones
		}
	}
}

// Renderer the styles are built on, its colour profile decides the output
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		if r != nil {
			m.styles = NewStyles(r)
		}
	}
}

// Context passed to the solver when autoplay starts
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

func New(controller *game.Controller, opts ...Option) Model {
	m := Model{
		controller: controller,
		styles:     NewStyles(lipgloss.DefaultRenderer()),
		fps:        game.DefaultFPS,
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.zones == nil {
		m.zones = zone.New()
	}
	return m
}

func (m Model) Controller() *game.Controller {
	return m.controller
}

func (m Model) Zones() *zone.Manager {
	return m.zones
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		m.controller.Tick()
		cmd = m.tick()
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}

	if m.controller.Quitting() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		m.controller.Quit()
	case "a", " ":
		m.controller.ToggleAutoplay(m.ctx)
	case "r":
		m.controller.Reset()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.controller.SelectPeg(int(key[0] - '1'))
	}
}

// Clicks are handled on release, once the zones of the last frame are known
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}

	switch {
	case m.inZone(zoneAutoplay, msg):
		m.controller.ToggleAutoplay(m.ctx)
		return
	case m.inZone(zoneReset, msg):
		m.controller.Reset()
		return
	case m.inZone(zoneQuit, msg):
		m.controller.Quit()
		return
	}

	pegs := m.controller.Session().Board.Pegs()
	for peg := 0; peg < pegs; peg++ {
		if m.inZone(pegZone(peg), msg) {
			m.controller.SelectPeg(peg)
			return
		}
	}
}

func (m Model) inZone(id string, msg tea.MouseMsg) bool {
	info := m.zones.Get(id)
	return info != nil && !info.IsZero() && info.InBounds(msg)
}
