// gridbind-demo edits a small team roster in the terminal. The roster is a
// gridbind collection bound to an in-memory sheet; every key either drives
// the sheet the way a user would or mutates the collection directly, and the
// binding keeps the two in step.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kungfusheep/gridbind"
	"github.com/kungfusheep/gridbind/grid"
	"github.com/kungfusheep/gridbind/sheet"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var logPath = flag.String("log", "", "append diagnostics to this file")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const gutter = 4

type mode int

const (
	modeNormal mode = iota
	modeEdit
)

type model struct {
	sheet   *sheet.Sheet
	rt      *gridbind.RecordType[*Person]
	binding *gridbind.Binding[*Person]
	last    *gridbind.Diagnostic

	cx, cy  int
	mode    mode
	editBuf string
	clip    [][]any
	status  string
	width   int
	height  int
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.mode == modeEdit {
			m.updateEdit(msg)
			return m, nil
		}
		return m, m.updateNormal(msg)
	}
	return m, nil
}

func (m *model) records() *gridbind.Collection[*Person] { return m.binding.Records() }

func (m *model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	m.status = ""
	rows := m.records().Len()
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "left", "h":
		m.cx = max(m.cx-1, 0)
	case "right", "l", "tab":
		m.cx = min(m.cx+1, m.sheet.Columns()-1)
	case "up", "k":
		m.cy = max(m.cy-1, 0)
	case "down", "j":
		// one past the last record is a blank row for typing new entries
		m.cy = min(m.cy+1, rows)
	case "enter":
		if acc, ok := m.rt.Field(m.field()); ok && acc.Kind.Choice() {
			// the binding opens its chooser from the edit notification
			m.sheet.EditCell(m.cy, m.cx, m.sheet.Text(m.cy, m.cx))
			return nil
		}
		m.mode = modeEdit
		m.editBuf = m.sheet.Text(m.cy, m.cx)
	case "x":
		m.sheet.ClearRange(grid.Range{Row: m.cy, Col: m.cx, Rows: 1, Cols: 1})
	case "d":
		m.sheet.ClearRows(m.cy, 1)
		m.cy = min(m.cy, m.records().Len())
		m.status = "row deleted from the sheet"
	case "a":
		p := m.rt.New()
		p.Name = "New hire"
		m.records().Add(p)
		m.cy = m.records().Len() - 1
	case "o":
		p := m.rt.New()
		p.Name = "Inserted"
		m.records().Insert(m.cy+1, p)
		m.cy = min(m.cy+1, m.records().Len()-1)
	case "D":
		m.records().RemoveAt(m.cy)
		m.status = "record removed from the collection"
	case "J":
		if m.cy+1 < rows {
			m.records().Move(m.cy, m.cy+1)
			m.cy++
		}
	case "K":
		if m.cy > 0 && m.cy < rows {
			m.records().Move(m.cy, m.cy-1)
			m.cy--
		}
	case "y":
		m.clip = m.copyRow(m.cy)
		m.status = "row copied"
	case "p":
		if m.clip != nil {
			r := m.sheet.Paste(m.cy, 0, m.clip)
			m.status = fmt.Sprintf("pasted %d×%d", r.Rows, r.Cols)
		}
	case "+":
		if p := m.records().At(m.cy); p != nil {
			p.Age++
			m.binding.UpdateRecord(p)
		}
	case "r":
		m.records().Set(seed())
		m.cy = min(m.cy, m.records().Len())
		m.status = "roster reloaded"
	case "<":
		m.sheet.ResizeColumn(m.cx, max(m.sheet.ColumnWidth(m.cx)-1, 3))
	case ">":
		m.sheet.ResizeColumn(m.cx, m.sheet.ColumnWidth(m.cx)+1)
	}
	return nil
}

func (m *model) updateEdit(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = modeNormal
		m.sheet.EditCell(m.cy, m.cx, m.editBuf)
		m.cy = min(m.cy+1, m.records().Len())
	case tea.KeyEsc:
		m.mode = modeNormal
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.editBuf += " "
	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
	}
}

func (m *model) field() string {
	tag, _ := m.sheet.ColumnHeader(m.cx).Tag.(string)
	return tag
}

func (m *model) copyRow(row int) [][]any {
	line := make([]any, m.sheet.Columns())
	for c := range line {
		line[c] = m.sheet.CellData(row, c)
	}
	return [][]any{line}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" " + m.sheet.Name()))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d records", m.records().Len())))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(strings.Repeat(" ", gutter)))
	for c := 0; c < m.sheet.Columns(); c++ {
		h := m.sheet.ColumnHeader(c)
		b.WriteString(headerStyle.Render(fit(h.Text, m.sheet.ColumnWidth(c), false)))
	}
	b.WriteString("\n")

	for r := 0; r <= m.records().Len(); r++ {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%*d ", gutter-1, r+1)))
		for c := 0; c < m.sheet.Columns(); c++ {
			w := m.sheet.ColumnWidth(c)
			text, red := m.sheet.Display(r, c)
			cell := fit(text, w, numeric(m.sheet.CellData(r, c)))
			switch {
			case r == m.cy && c == m.cx && m.mode == modeEdit:
				cell = cursorStyle.Render(fit(m.editBuf+"_", w, false))
			case r == m.cy && c == m.cx:
				cell = cursorStyle.Render(cell)
			case red:
				cell = errorStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.status != "":
		b.WriteString(statusStyle.Render(" " + m.status))
	case m.last != nil:
		b.WriteString(errorStyle.Render(" " + m.last.String()))
	default:
		b.WriteString(dimStyle.Render(" hjkl move  enter edit  x clear  d/D delete  a/o add  J/K move  y/p copy  + age  < > width  r reload  q quit"))
	}
	return b.String()
}

// fit pads or truncates s to exactly w display cells.
func fit(s string, w int, right bool) string {
	if w <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, w-1, "…")
	if right {
		return runewidth.FillLeft(s, w-1) + " "
	}
	return runewidth.FillRight(s, w)
}

func numeric(v any) bool {
	switch v.(type) {
	case int, float64:
		return true
	}
	return false
}

func main() {
	flag.Parse()
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "gridbind-demo needs a terminal")
		os.Exit(1)
	}

	// the alt screen owns stderr, so diagnostics only go to a file
	var logger *log.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	rt, err := personType()
	if err != nil {
		log.Fatal(err)
	}

	// one sheet unit is one terminal cell
	s := sheet.New(
		sheet.WithDefaultColumnWidth(10),
		sheet.WithDefaultRowHeight(1),
		sheet.WithRowHeaderWidth(gutter),
		sheet.WithColumnHeaderHeight(1),
		sheet.WithOrigin(0, 1),
		sheet.WithMeasure(func(text string) int { return runewidth.StringWidth(text) + 2 }),
	)

	m := &model{sheet: s, rt: rt}
	chooser := &modalChooser{}
	m.binding = gridbind.Attach(s, rt, gridbind.NewCollection(seed()...),
		gridbind.WithVeto(ageLimit),
		gridbind.WithChooser[*Person](chooser),
		gridbind.WithLogger[*Person](logger),
		gridbind.WithDiagnosticHandler[*Person](func(d gridbind.Diagnostic) { m.last = &d }),
	)
	defer m.binding.Detach()

	p := tea.NewProgram(m, tea.WithAltScreen())
	chooser.parent = p
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
