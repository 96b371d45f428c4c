package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// One colour per disk size, cycled for larger towers
var diskPalette = []lipgloss.Color{
	"#E06C75",
	"#E5C07B",
	"#98C379",
	"#56B6C2",
	"#61AFEF",
	"#C678DD",
	"#D19A66",
	"#BE5046",
}

type Styles struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Won      lipgloss.Style
	Pole     lipgloss.Style
	Base     lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Active   lipgloss.Style
	Help     lipgloss.Style
	disks    []lipgloss.Style
}

// NewStyles builds the styles on 'r', so the colour profile of its output applies
func NewStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#61AFEF")),
		Status:   r.NewStyle().Foreground(lipgloss.Color("#ABB2BF")),
		Won:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#98C379")),
		Pole:     r.NewStyle().Foreground(lipgloss.Color("#5C6370")),
		Base:     r.NewStyle().Foreground(lipgloss.Color("#5C6370")),
		Label:    r.NewStyle().Foreground(lipgloss.Color("#ABB2BF")),
		Selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5C07B")),
		Button:   r.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5C6370")),
		Active:   r.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#E5C07B")),
		Help:     r.NewStyle().Faint(true),
	}

	s.disks = make([]lipgloss.Style, len(diskPalette))
	for i, color := range diskPalette {
		s.disks[i] = r.NewStyle().Foreground(color)
	}
	return s
}

// Style of the disk with size 'size' (1 is the smallest)
func (s Styles) Disk(size int) lipgloss.Style {
	return s.disks[(size-1)%len(s.disks)]
}
