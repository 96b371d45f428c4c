package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-hanoi/pkg/game"
)

func newTestModel(t *testing.T, opts ...game.Option) Model {
	t.Helper()

	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.Ascii)

	zones := zone.New()
	t.Cleanup(zones.Close)

	opts = append([]game.Option{
		game.WithDisks(3),
		game.WithPegs(3),
		game.WithTicksPerMove(2),
		game.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	return New(game.NewController(opts...), WithRenderer(renderer), WithZones(zones), WithFPS(30))
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeysMoveDisks(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('1'))
	assert.Equal(t, 0, m.Controller().Snapshot().Selected)

	m, _ = update(t, m, runeKey('3'))
	snap := m.Controller().Snapshot()
	assert.Equal(t, game.NoSelection, snap.Selected)
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, [][]int{{3, 2}, {}, {1}}, snap.Pegs)

	// pegs past the board are ignored
	m, _ = update(t, m, runeKey('9'))
	assert.Equal(t, game.NoSelection, m.Controller().Snapshot().Selected)
}

func TestAutoplayPlaysOnTicks(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('a'))
	snap := m.Controller().Snapshot()
	require.True(t, snap.Autoplay)
	assert.Equal(t, 7, snap.SolutionLen)
	assert.Equal(t, game.AutoplayStopLabel, snap.AutoplayLabel)

	var cmd tea.Cmd
	for i := 0; i < 2*7; i++ {
		m, cmd = update(t, m, tickMsg(time.Now()))
		assert.NotNil(t, cmd, "tick must schedule the next frame")
	}

	snap = m.Controller().Snapshot()
	assert.True(t, snap.Won)
	assert.False(t, snap.Autoplay)
	assert.Equal(t, 7, snap.Moves)
	assert.Contains(t, m.View(), "solved in 7 moves!")
}

func TestResetKey(t *testing.T) {
	m := newTestModel(t)
	id := m.Controller().Session().ID

	m, _ = update(t, m, runeKey('1'))
	m, _ = update(t, m, runeKey('2'))
	require.Equal(t, 1, m.Controller().Snapshot().Moves)

	m, _ = update(t, m, runeKey('r'))
	assert.Equal(t, 0, m.Controller().Snapshot().Moves)
	assert.NotEqual(t, id, m.Controller().Session().ID)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t)
			m, cmd := update(t, m, msg)
			assert.True(t, isQuit(cmd))
			assert.True(t, m.Controller().Quitting())
			assert.Empty(t, m.View())
		})
	}
}

func TestInitSchedulesTick(t *testing.T) {
	m := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Tower of Hanoi")
	assert.Contains(t, view, "moves: 0")
	assert.Contains(t, view, "autoplay: start")
	assert.Contains(t, view, "[1]")
	assert.Contains(t, view, "[3]")
	assert.Contains(t, view, "█████")

	m, _ = update(t, m, runeKey('1'))
	assert.Contains(t, m.View(), ">1<")
}

func TestRenderPeg(t *testing.T) {
	m := newTestModel(t)

	peg := m.renderPeg(0, []int{3, 1}, 3, false)
	lines := strings.Split(peg, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{
		"   │   ",
		"   │   ",
		"   █   ",
		" █████ ",
		"▀▀▀▀▀▀▀",
		"  [1]  ",
	}, lines)
}

func TestMouseClicks(t *testing.T) {
	m := newTestModel(t)
	_ = m.View()

	// zones are registered in the background after Scan
	require.Eventually(t, func() bool {
		for _, id := range []string{pegZone(0), pegZone(2), zoneReset} {
			if info := m.Zones().Get(id); info == nil || info.IsZero() {
				return false
			}
		}
		return true
	}, time.Second, 5*time.Millisecond)

	click := func(id string) tea.MouseMsg {
		info := m.Zones().Get(id)
		return tea.MouseMsg{
			X:      info.StartX,
			Y:      info.StartY,
			Action: tea.MouseActionRelease,
			Button: tea.MouseButtonLeft,
		}
	}

	// presses are ignored, only releases count
	press := click(pegZone(0))
	press.Action = tea.MouseActionPress
	m, _ = update(t, m, press)
	assert.Equal(t, game.NoSelection, m.Controller().Snapshot().Selected)

	m, _ = update(t, m, click(pegZone(0)))
	assert.Equal(t, 0, m.Controller().Snapshot().Selected)

	m, _ = update(t, m, click(pegZone(2)))
	assert.Equal(t, 1, m.Controller().Snapshot().Moves)

	m, _ = update(t, m, click(zoneReset))
	assert.Equal(t, 0, m.Controller().Snapshot().Moves)

	// outside every zone
	m, _ = update(t, m, tea.MouseMsg{X: 1000, Y: 1000, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, game.NoSelection, m.Controller().Snapshot().Selected)
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}
