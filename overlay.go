package gridbind

import "github.com/kungfusheep/gridbind/grid"

// ChoiceRequest asks a Chooser to pick one of Options for a cell.
type ChoiceRequest struct {
	Row, Col int
	Field    string
	Options  []string
	Current  string     // edit text the grid proposed
	Anchor   grid.Point // screen position of the cell's top-left corner
	Width    int        // scaled column width
	Scale    float64
}

// Chooser shows a pick-one list over a cell and blocks until the user
// selects an entry or dismisses it. ok is false when nothing was selected.
type Chooser interface {
	Choose(req ChoiceRequest) (value string, ok bool)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(req ChoiceRequest) (string, bool)

func (f ChooserFunc) Choose(req ChoiceRequest) (string, bool) { return f(req) }

// beforeCellEdit replaces the text editor with the chooser for enumeration
// and boolean columns, then hands the event to the host hook.
func (b *Binding[R]) beforeCellEdit(e *grid.BeforeEditEvent) {
	if bc := b.bound(e.Col); bc != nil && bc.acc.Kind.Choice() && b.chooser != nil {
		e.EditorSuppressed = true
		scale := b.grid.ScaleFactor()
		req := ChoiceRequest{
			Row:     e.Row,
			Col:     e.Col,
			Field:   bc.Field,
			Options: bc.acc.Options(),
			Current: e.EditText,
			Anchor:  b.anchor(e.Row, e.Col),
			Width:   int(float64(b.columnWidth(e.Col)) * scale),
			Scale:   scale,
		}
		if v, ok := b.chooser.Choose(req); ok {
			e.EditText = v
		} else {
			e.Cancel = true
		}
	}
	if b.beforeEdit != nil {
		b.beforeEdit(e)
	}
}

// anchor returns the screen position of a cell: the header gutter plus the
// scaled size of every column left of it and every row down to and
// including row, so the list opens just below the cell's top edge.
func (b *Binding[R]) anchor(row, col int) grid.Point {
	scale := b.grid.ScaleFactor()
	x := int(float64(b.grid.RowHeaderWidth()) * scale)
	for c := 0; c < col; c++ {
		x += int(float64(b.columnWidth(c)) * scale)
	}
	y := int(float64(b.grid.ColumnHeaderHeight()) * scale)
	for r := 0; r <= row; r++ {
		y += int(float64(b.rowHeight(r)) * scale)
	}
	return b.grid.PointToScreen(grid.Point{X: x, Y: y})
}

func (b *Binding[R]) columnWidth(col int) int {
	if col < len(b.widths) && b.widths[col] > 0 {
		return b.widths[col]
	}
	return b.grid.ColumnWidth(col)
}

func (b *Binding[R]) rowHeight(row int) int {
	if row < len(b.heights) && b.heights[row] > 0 {
		return b.heights[row]
	}
	return b.grid.RowHeight(row)
}
