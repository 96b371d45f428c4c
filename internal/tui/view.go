package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/IlikeChooros/go-hanoi/pkg/game"
)

const (
	diskChar = "█"
	poleChar = "│"
	baseChar = "▀"
)

func (m Model) View() string {
	snap := m.controller.Snapshot()
	if snap.Quit {
		return ""
	}

	disks := 0
	for _, stack := range snap.Pegs {
		disks += len(stack)
	}

	pegs := make([]string, len(snap.Pegs))
	for i, stack := range snap.Pegs {
		pegs[i] = m.zones.Mark(pegZone(i), m.renderPeg(i, stack, disks, snap.Selected == i))
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(snap),
		"",
		lipgloss.JoinHorizontal(lipgloss.Bottom, pegs...),
		"",
		m.renderButtons(snap),
		m.styles.Help.Render("1-9 select peg, a autoplay, r reset, q quit"),
	)
	return m.zones.Scan(view)
}

func (m Model) renderHeader(snap game.Snapshot) string {
	title := m.styles.Title.Render("Tower of Hanoi")
	status := m.styles.Status.Render(fmt.Sprintf("moves: %d", snap.Moves))
	if snap.Won {
		status = m.styles.Won.Render(fmt.Sprintf("solved in %d moves!", snap.Moves))
	} else if snap.SolutionLen > 0 {
		status += m.styles.Status.Render(fmt.Sprintf("  plan: %d/%d", snap.SolutionIndex, snap.SolutionLen))
	}
	return title + "  " + status
}

// A peg is drawn as a column wide enough for the largest disk, the pole sticks
// one row above a full stack
func (m Model) renderPeg(peg int, stack []int, disks int, selected bool) string {
	width := 2*disks + 1
	rows := make([]string, 0, disks+3)

	for level := disks; level >= 0; level-- {
		if level < len(stack) {
			size := stack[level]
			disk := m.styles.Disk(size).Render(strings.Repeat(diskChar, 2*size-1))
			rows = append(rows, center(disk, 2*size-1, width))
		} else {
			rows = append(rows, center(m.styles.Pole.Render(poleChar), 1, width))
		}
	}
	rows = append(rows, m.styles.Base.Render(strings.Repeat(baseChar, width)))

	label := fmt.Sprintf("[%d]", peg+1)
	style := m.styles.Label
	if selected {
		label = fmt.Sprintf(">%d<", peg+1)
		style = m.styles.Selected
	}
	rows = append(rows, center(style.Render(label), len(label), width))

	return strings.Join(rows, "\n")
}

func (m Model) renderButtons(snap game.Snapshot) string {
	autoplay := m.styles.Button
	if snap.Autoplay {
		autoplay = m.styles.Active
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.zones.Mark(zoneAutoplay, autoplay.Render("autoplay: "+snap.AutoplayLabel)),
		" ",
		m.zones.Mark(zoneReset, m.styles.Button.Render("reset")),
		" ",
		m.zones.Mark(zoneQuit, m.styles.Button.Render("quit")),
	)
}

// Pads the styled 's' of printable width 'w' to 'width' columns
func center(s string, w, width int) string {
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
