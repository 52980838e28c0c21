// Package sheet is an in-memory grid.Grid. It stores typed cell values,
// header metadata and range formats, raises the same edit notifications a
// widget would, and can simulate user actions (typing into a cell, pasting a
// block, clearing a selection, dragging a row or column border).
package sheet

import (
	"github.com/kungfusheep/gridbind/grid"

	"github.com/mattn/go-runewidth"
)

// Sizes are abstract units; a pixel widget and a terminal host just pick
// different defaults.
const (
	defaultColumnWidth        = 70
	defaultRowHeight          = 20
	defaultRowHeaderWidth     = 40
	defaultColumnHeaderHeight = 20
)

type rangeFormat struct {
	r    grid.Range
	open bool // runs to the last row, however many there are
	flag grid.FormatFlag
	args any
}

func (f rangeFormat) covers(row, col int) bool {
	if f.open {
		return row >= f.r.Row && col >= f.r.Col && col <= f.r.EndCol()
	}
	return f.r.Contains(row, col)
}

type listenerEntry struct {
	id int
	l  grid.Listener
}

// Sheet is a single worksheet held in memory. It is not safe for
// concurrent use; like a widget it expects to be driven from one goroutine.
type Sheet struct {
	name    string
	cells   [][]any
	heights []int
	headers []grid.ColumnHeader
	widths  []int
	formats []rangeFormat

	suspended int
	listeners []listenerEntry
	nextID    int

	columnWidth        int
	rowHeight          int
	rowHeaderWidth     int
	columnHeaderHeight int
	scale              float64
	origin             grid.Point
	measure            func(string) int
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithRows preallocates n empty rows.
func WithRows(n int) Option { return func(s *Sheet) { s.SetRows(n) } }

// WithColumns preallocates n columns.
func WithColumns(n int) Option { return func(s *Sheet) { s.SetColumns(n) } }

// WithDefaultColumnWidth sets the width given to new columns.
func WithDefaultColumnWidth(w int) Option { return func(s *Sheet) { s.columnWidth = w } }

// WithDefaultRowHeight sets the height given to new rows.
func WithDefaultRowHeight(h int) Option { return func(s *Sheet) { s.rowHeight = h } }

// WithRowHeaderWidth sets the width of the row number gutter.
func WithRowHeaderWidth(w int) Option { return func(s *Sheet) { s.rowHeaderWidth = w } }

// WithColumnHeaderHeight sets the height of the column title band.
func WithColumnHeaderHeight(h int) Option { return func(s *Sheet) { s.columnHeaderHeight = h } }

// WithScale sets the zoom factor.
func WithScale(f float64) Option { return func(s *Sheet) { s.scale = f } }

// WithOrigin sets the screen position of the sheet's top-left corner.
func WithOrigin(x, y int) Option { return func(s *Sheet) { s.origin = grid.Point{X: x, Y: y} } }

// WithMeasure sets the function used to size auto-width columns.
// The default measures display cells with go-runewidth at 7 units per cell.
func WithMeasure(fn func(string) int) Option { return func(s *Sheet) { s.measure = fn } }

// New creates an empty sheet.
func New(opts ...Option) *Sheet {
	s := &Sheet{
		name:               "Sheet1",
		columnWidth:        defaultColumnWidth,
		rowHeight:          defaultRowHeight,
		rowHeaderWidth:     defaultRowHeaderWidth,
		columnHeaderHeight: defaultColumnHeaderHeight,
		scale:              1,
		measure: func(text string) int {
			return runewidth.StringWidth(text)*7 + 6
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ grid.Grid = (*Sheet)(nil)

func (s *Sheet) Name() string        { return s.name }
func (s *Sheet) SetName(name string) { s.name = name }

func (s *Sheet) Rows() int    { return len(s.cells) }
func (s *Sheet) Columns() int { return len(s.headers) }

// SetRows grows or truncates the sheet to n rows.
func (s *Sheet) SetRows(n int) {
	if n < 0 {
		n = 0
	}
	for len(s.cells) < n {
		s.cells = append(s.cells, nil)
		s.heights = append(s.heights, s.rowHeight)
	}
	s.cells = s.cells[:n]
	s.heights = s.heights[:n]
}

// SetColumns grows or truncates the sheet to n columns.
func (s *Sheet) SetColumns(n int) {
	if n < 0 {
		n = 0
	}
	for len(s.headers) < n {
		s.headers = append(s.headers, grid.ColumnHeader{Visible: true})
		s.widths = append(s.widths, s.columnWidth)
	}
	s.headers = s.headers[:n]
	s.widths = s.widths[:n]
	for i, row := range s.cells {
		if len(row) > n {
			s.cells[i] = row[:n]
		}
	}
}

// InsertRows inserts count empty rows before row.
func (s *Sheet) InsertRows(row, count int) {
	if count <= 0 {
		return
	}
	row = clamp(row, 0, len(s.cells))
	blank := make([][]any, count)
	s.cells = append(s.cells[:row], append(blank, s.cells[row:]...)...)
	hs := make([]int, count)
	for i := range hs {
		hs[i] = s.rowHeight
	}
	s.heights = append(s.heights[:row], append(hs, s.heights[row:]...)...)

	for i := range s.formats {
		f := &s.formats[i].r
		switch {
		case row < f.Row:
			f.Row += count
		case row <= f.EndRow() || s.formats[i].open:
			f.Rows += count
		}
	}
}

// DeleteRows removes count rows starting at row. Out of range parts are ignored.
func (s *Sheet) DeleteRows(row, count int) {
	if row < 0 || row >= len(s.cells) || count <= 0 {
		return
	}
	end := min(row+count, len(s.cells))
	s.cells = append(s.cells[:row], s.cells[end:]...)
	s.heights = append(s.heights[:row], s.heights[end:]...)

	n := end - row
	for i := range s.formats {
		f := &s.formats[i].r
		lo, hi := max(f.Row, row), min(f.EndRow(), end-1)
		overlap := max(0, hi-lo+1)
		if row < f.Row {
			f.Row -= min(n, f.Row-row)
		}
		f.Rows = max(f.Rows-overlap, 0)
	}
}

// UsedRange returns the bounding range of non-empty cells.
func (s *Sheet) UsedRange() grid.Range {
	rows, cols := 0, 0
	for r, row := range s.cells {
		for c, v := range row {
			if v == nil {
				continue
			}
			rows = max(rows, r+1)
			cols = max(cols, c+1)
		}
	}
	return grid.Range{Rows: rows, Cols: cols}
}

// CellData returns the stored value, or nil outside the sheet.
func (s *Sheet) CellData(row, col int) any {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return nil
	}
	return s.cells[row][col]
}

// SetCellData stores v, growing the sheet when needed, and raises
// CellDataChanged.
func (s *Sheet) SetCellData(row, col int, v any) {
	if !s.put(row, col, v) {
		return
	}
	s.autoFit(col)
	if s.suspended == 0 {
		s.emit(func(l grid.Listener) { l.CellDataChanged(grid.CellEvent{Row: row, Col: col}) })
	}
}

// put writes without notifying.
func (s *Sheet) put(row, col int, v any) bool {
	if row < 0 || col < 0 {
		return false
	}
	if row >= len(s.cells) {
		s.SetRows(row + 1)
	}
	if col >= len(s.headers) {
		s.SetColumns(col + 1)
	}
	cells := s.cells[row]
	for len(cells) <= col {
		cells = append(cells, nil)
	}
	cells[col] = v
	s.cells[row] = cells
	return true
}

// SetRangeDataFormat assigns a formatter to every cell in r. A range that
// reaches the last row, including any range on an empty sheet, stays
// attached to the bottom of the sheet as rows come and go.
func (s *Sheet) SetRangeDataFormat(r grid.Range, flag grid.FormatFlag, args any) {
	if r.Cols <= 0 {
		return
	}
	open := r.EndRow() >= len(s.cells)-1
	s.formats = append(s.formats, rangeFormat{r: r, open: open, flag: flag, args: args})
}

// FormatAt returns the formatter covering a cell. Later assignments win.
func (s *Sheet) FormatAt(row, col int) (grid.FormatFlag, any) {
	for i := len(s.formats) - 1; i >= 0; i-- {
		f := s.formats[i]
		if f.covers(row, col) {
			return f.flag, f.args
		}
	}
	return grid.FormatGeneral, nil
}

func (s *Sheet) ColumnHeader(col int) grid.ColumnHeader {
	if col < 0 || col >= len(s.headers) {
		return grid.ColumnHeader{}
	}
	h := s.headers[col]
	h.Width = s.widths[col]
	return h
}

// SetColumnHeader stores h. A positive Width resizes the column; AutoWidth
// fits it to its content.
func (s *Sheet) SetColumnHeader(col int, h grid.ColumnHeader) {
	if col < 0 {
		return
	}
	if col >= len(s.headers) {
		s.SetColumns(col + 1)
	}
	s.headers[col] = h
	if h.Width > 0 && !h.AutoWidth {
		s.widths[col] = h.Width
	}
	s.autoFit(col)
}

func (s *Sheet) ColumnWidth(col int) int {
	if col < 0 || col >= len(s.widths) {
		return s.columnWidth
	}
	return s.widths[col]
}

func (s *Sheet) RowHeight(row int) int {
	if row < 0 || row >= len(s.heights) {
		return s.rowHeight
	}
	return s.heights[row]
}

func (s *Sheet) SuspendDataChangedEvents() { s.suspended++ }

func (s *Sheet) ResumeDataChangedEvents() {
	if s.suspended > 0 {
		s.suspended--
	}
}

// Suspended reports whether data-changed events are currently held back.
func (s *Sheet) Suspended() bool { return s.suspended > 0 }

func (s *Sheet) ScaleFactor() float64    { return s.scale }
func (s *Sheet) SetScaleFactor(f float64) { s.scale = f }
func (s *Sheet) RowHeaderWidth() int      { return s.rowHeaderWidth }
func (s *Sheet) ColumnHeaderHeight() int  { return s.columnHeaderHeight }

func (s *Sheet) PointToScreen(p grid.Point) grid.Point {
	return grid.Point{X: p.X + s.origin.X, Y: p.Y + s.origin.Y}
}

// AddListener registers l; the returned function removes it.
func (s *Sheet) AddListener(l grid.Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, l: l})
	return func() {
		for i, e := range s.listeners {
			if e.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of registered listeners.
func (s *Sheet) Listeners() int { return len(s.listeners) }

func (s *Sheet) emit(fn func(grid.Listener)) {
	// snapshot so handlers may add or remove listeners
	snapshot := append([]listenerEntry(nil), s.listeners...)
	for _, e := range snapshot {
		fn(e.l)
	}
}

// autoFit grows an auto-width column to fit its header and content.
func (s *Sheet) autoFit(col int) {
	if col < 0 || col >= len(s.headers) || !s.headers[col].AutoWidth {
		return
	}
	w := s.measure(s.headers[col].Text)
	for r := range s.cells {
		w = max(w, s.measure(s.Text(r, col)))
	}
	if w == s.widths[col] {
		return
	}
	s.widths[col] = w
	s.emit(func(l grid.Listener) { l.ColumnWidthChanged(grid.ResizeEvent{Index: col, Size: w}) })
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
