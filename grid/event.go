package grid

// Listener receives widget notifications. All calls happen synchronously on
// the goroutine that caused them.
type Listener interface {
	// BeforeCellEdit fires before an edit commits. Handlers may replace
	// EditText or set Cancel.
	BeforeCellEdit(e *BeforeEditEvent)
	CellDataChanged(e CellEvent)
	// RangeDataChanged fires after a range of cells was cleared.
	RangeDataChanged(e RangeEvent)
	AfterPaste(e RangeEvent)
	RowHeightChanged(e ResizeEvent)
	ColumnWidthChanged(e ResizeEvent)
}

// BeforeEditEvent describes a pending cell edit.
type BeforeEditEvent struct {
	Row, Col int
	EditText string
	Cancel   bool
	// EditorSuppressed is set when a custom editor replaced the default
	// text editor for this edit.
	EditorSuppressed bool
}

// CellEvent identifies a single changed cell.
type CellEvent struct {
	Row, Col int
}

// RangeEvent identifies a changed block of cells.
type RangeEvent struct {
	Range Range
}

// ResizeEvent reports the new size of a row or column.
type ResizeEvent struct {
	Index int
	Size  int
}

// NopListener implements Listener with no-ops. Embed it to handle a subset.
type NopListener struct{}

func (NopListener) BeforeCellEdit(*BeforeEditEvent) {}
func (NopListener) CellDataChanged(CellEvent)       {}
func (NopListener) RangeDataChanged(RangeEvent)     {}
func (NopListener) AfterPaste(RangeEvent)           {}
func (NopListener) RowHeightChanged(ResizeEvent)    {}
func (NopListener) ColumnWidthChanged(ResizeEvent)  {}
