// Package grid describes the capability surface gridbind consumes from a
// spreadsheet-style widget: cell storage, header metadata, range formats,
// row/column sizing, coordinate translation and edit lifecycle events.
//
// Nothing here renders or stores anything. A widget (or the in-memory
// sheet package) implements Grid and delivers notifications to Listeners.
package grid

// Grid is the widget surface a binding drives.
type Grid interface {
	Name() string
	SetName(name string)

	// Rows and Columns are the allocated size of the sheet.
	Rows() int
	SetRows(n int)
	Columns() int
	SetColumns(n int)

	InsertRows(row, count int)
	DeleteRows(row, count int)

	// UsedRange is the bounding range of non-empty cells, anchored at 0,0.
	UsedRange() Range

	CellData(row, col int) any
	// SetCellData raises CellDataChanged unless data-changed events are suspended.
	SetCellData(row, col int, v any)

	// SetRangeDataFormat assigns a formatter to r. A range that reaches the
	// last row is a column format: it also covers rows added later and
	// survives row deletion.
	SetRangeDataFormat(r Range, flag FormatFlag, args any)

	ColumnHeader(col int) ColumnHeader
	SetColumnHeader(col int, h ColumnHeader)

	ColumnWidth(col int) int
	RowHeight(row int) int

	// Suspend/Resume nest. While suspended, CellDataChanged and
	// RangeDataChanged are not delivered.
	SuspendDataChangedEvents()
	ResumeDataChangedEvents()

	ScaleFactor() float64
	RowHeaderWidth() int
	ColumnHeaderHeight() int
	PointToScreen(p Point) Point

	// AddListener registers l and returns a function that removes it.
	AddListener(l Listener) func()
}

// ColumnHeader is the per-column header storage of a widget.
// Tag is opaque to the widget; bindings keep the mapped field name there.
type ColumnHeader struct {
	Text      string
	Width     int
	AutoWidth bool
	Visible   bool
	Tag       any
}

// Point is a position in widget or screen coordinates.
type Point struct {
	X, Y int
}

// Range is a rectangular block of cells.
type Range struct {
	Row, Col   int
	Rows, Cols int
}

// EndRow returns the last row inside the range.
func (r Range) EndRow() int { return r.Row + r.Rows - 1 }

// EndCol returns the last column inside the range.
func (r Range) EndCol() int { return r.Col + r.Cols - 1 }

// Empty reports whether the range covers no cells.
func (r Range) Empty() bool { return r.Rows <= 0 || r.Cols <= 0 }

// Contains reports whether row, col lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.Row && row <= r.EndRow() && col >= r.Col && col <= r.EndCol()
}
