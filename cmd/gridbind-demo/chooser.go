package main

import (
	"slices"
	"strings"

	"github.com/kungfusheep/gridbind"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	popupStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
)

// popup is a pick-one list drawn at the anchor of the cell being edited.
type popup struct {
	req       gridbind.ChoiceRequest
	cursor    int
	cancelled bool
}

func (p *popup) Init() tea.Cmd { return nil }

func (p *popup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.req.Options)-1 {
			p.cursor++
		}
	case "enter":
		return p, tea.Quit
	case "esc", "q", "ctrl+c":
		p.cancelled = true
		return p, tea.Quit
	}
	return p, nil
}

func (p *popup) View() string {
	width := p.req.Width
	for _, o := range p.req.Options {
		width = max(width, runewidth.StringWidth(o)+2)
	}
	var b strings.Builder
	for i, o := range p.req.Options {
		line := runewidth.FillRight(" "+o, width)
		if i == p.cursor {
			line = selectedStyle.Render(line)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	box := popupStyle.Render(b.String())

	// sheet units are terminal cells, so the anchor is a cursor position
	indent := strings.Repeat(" ", max(p.req.Anchor.X, 0))
	lines := strings.Split(box, "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Repeat("\n", max(p.req.Anchor.Y, 0)) + strings.Join(lines, "\n")
}

// modalChooser runs the popup as its own program while the main program
// has released the terminal.
type modalChooser struct {
	parent *tea.Program
}

func (c *modalChooser) Choose(req gridbind.ChoiceRequest) (string, bool) {
	if len(req.Options) == 0 {
		return "", false
	}
	p := &popup{req: req, cursor: max(slices.Index(req.Options, req.Current), 0)}

	if c.parent != nil {
		if err := c.parent.ReleaseTerminal(); err != nil {
			return "", false
		}
		defer c.parent.RestoreTerminal()
	}
	if _, err := tea.NewProgram(p, tea.WithAltScreen()).Run(); err != nil || p.cancelled {
		return "", false
	}
	return req.Options[p.cursor], true
}
