package sheet

import "github.com/kungfusheep/gridbind/grid"

// EditCell simulates a user typing text into a cell and confirming it.
// BeforeCellEdit handlers may replace the text or cancel; on commit the
// text is stored and CellDataChanged is raised. It reports whether the edit
// was committed.
func (s *Sheet) EditCell(row, col int, text string) bool {
	e := &grid.BeforeEditEvent{Row: row, Col: col, EditText: text}
	s.emit(func(l grid.Listener) { l.BeforeCellEdit(e) })
	if e.Cancel {
		return false
	}
	s.SetCellData(row, col, e.EditText)
	return true
}

// Paste writes a block of values with its top-left corner at row, col and
// raises AfterPaste for the covered range. Values past the last column are
// dropped; rows are added as needed.
func (s *Sheet) Paste(row, col int, block [][]any) grid.Range {
	if row < 0 || col < 0 || len(block) == 0 {
		return grid.Range{}
	}
	cols := 0
	for _, line := range block {
		cols = max(cols, len(line))
	}
	if limit := len(s.headers) - col; cols > limit {
		cols = max(limit, 0)
	}
	r := grid.Range{Row: row, Col: col, Rows: len(block), Cols: cols}
	if r.Empty() {
		return grid.Range{}
	}
	for i, line := range block {
		for j := 0; j < cols && j < len(line); j++ {
			s.put(row+i, col+j, line[j])
		}
	}
	for j := 0; j < cols; j++ {
		s.autoFit(col + j)
	}
	s.emit(func(l grid.Listener) { l.AfterPaste(grid.RangeEvent{Range: r}) })
	return r
}

// ClearRange empties every cell in r and raises RangeDataChanged.
func (s *Sheet) ClearRange(r grid.Range) {
	if r.Empty() {
		return
	}
	for row := r.Row; row <= r.EndRow() && row < len(s.cells); row++ {
		for col := r.Col; col <= r.EndCol() && col < len(s.cells[row]); col++ {
			s.cells[row][col] = nil
		}
	}
	if s.suspended == 0 {
		s.emit(func(l grid.Listener) { l.RangeDataChanged(grid.RangeEvent{Range: r}) })
	}
}

// ClearRows empties whole rows across every column, as selecting row
// headers and pressing delete would.
func (s *Sheet) ClearRows(row, count int) {
	s.ClearRange(grid.Range{Row: row, Col: 0, Rows: count, Cols: len(s.headers)})
}

// ResizeColumn sets a column width the way dragging its border would.
func (s *Sheet) ResizeColumn(col, width int) {
	if col < 0 || col >= len(s.widths) {
		return
	}
	s.widths[col] = width
	s.emit(func(l grid.Listener) { l.ColumnWidthChanged(grid.ResizeEvent{Index: col, Size: width}) })
}

// ResizeRow sets a row height the way dragging its border would.
func (s *Sheet) ResizeRow(row, height int) {
	if row < 0 || row >= len(s.heights) {
		return
	}
	s.heights[row] = height
	s.emit(func(l grid.Listener) { l.RowHeightChanged(grid.ResizeEvent{Index: row, Size: height}) })
}
