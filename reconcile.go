package gridbind

import "github.com/kungfusheep/gridbind/grid"

// onRecordsChanged mirrors a collection change into the grid. Every cell
// write goes through writeRecordToRow, so none of it echoes back.
func (b *Binding[R]) onRecordsChanged(c Change[R]) {
	defer b.recoverIn("collection " + c.Type.String())

	switch c.Type {
	case ChangeAdd:
		end := c.Index + len(c.Items)
		inserted := end < b.records.Len()
		if inserted {
			b.grid.InsertRows(c.Index, len(c.Items))
		}
		for i, item := range c.Items {
			b.writeRecordToRow(c.Index+i, item)
		}
		if inserted {
			b.restamp(end)
		}

	case ChangeRemove:
		for _, item := range c.Old {
			row := item.RowIndex()
			b.grid.DeleteRows(row, 1)
			b.restamp(row)
		}

	case ChangeReplace:
		for i, item := range c.Items {
			row := c.Index
			if i < len(c.Old) {
				row = c.Old[i].RowIndex()
			}
			b.writeRecordToRow(row, item)
		}

	case ChangeMove:
		for i, item := range b.records.Items() {
			if item.RowIndex() != i {
				b.writeRecordToRow(i, item)
			}
		}

	case ChangeReset:
		if used := b.grid.UsedRange(); used.Rows > 0 {
			b.grid.DeleteRows(0, used.Rows)
		}
		b.loadRecords()
	}
}

// restamp renumbers records from row on after rows shifted.
func (b *Binding[R]) restamp(from int) {
	for i := max(from, 0); i < b.records.Len(); i++ {
		b.records.At(i).SetRowIndex(i)
	}
}

// recordAt finds the record stamped with row.
func (b *Binding[R]) recordAt(row int) (R, bool) {
	for _, rec := range b.records.Items() {
		if rec.RowIndex() == row {
			return rec, true
		}
	}
	var zero R
	return zero, false
}

// deleteRows removes the records shown in r, then the rows themselves.
// The collection listener is detached while the records go, so only this
// handler touches the grid.
func (b *Binding[R]) deleteRows(r grid.Range) {
	var doomed []R
	for row := r.Row; row <= r.EndRow(); row++ {
		if rec, ok := b.recordAt(row); ok {
			doomed = append(doomed, rec)
		}
	}
	func() {
		scope := b.muteRecords()
		defer scope.Release()
		for _, rec := range doomed {
			b.records.Remove(rec)
		}
	}()
	b.grid.DeleteRows(r.Row, r.Rows)
	b.restamp(r.Row)
}

// wholeRows reports whether r spans every bound column.
func (b *Binding[R]) wholeRows(r grid.Range) bool {
	return r.Col <= 0 && r.EndCol() >= b.grid.Columns()-1
}

func setSize(cache []int, i, size int) []int {
	if i < 0 {
		return cache
	}
	for len(cache) <= i {
		cache = append(cache, 0)
	}
	cache[i] = size
	return cache
}

// gridListener adapts grid notifications to the binding.
type gridListener[R Bindable] struct {
	b *Binding[R]
}

func (l *gridListener[R]) CellDataChanged(e grid.CellEvent) {
	b := l.b
	defer b.recoverIn("cell changed")
	b.readRow(e.Row, e.Col, e.Col)
}

func (l *gridListener[R]) RangeDataChanged(e grid.RangeEvent) {
	b := l.b
	defer b.recoverIn("range changed")
	r := e.Range
	if r.Empty() {
		return
	}
	if b.wholeRows(r) {
		b.deleteRows(r)
		return
	}
	for row := r.Row; row <= r.EndRow() && row < b.records.Len(); row++ {
		b.readRow(row, r.Col, r.EndCol())
	}
}

func (l *gridListener[R]) AfterPaste(e grid.RangeEvent) {
	b := l.b
	defer b.recoverIn("paste")
	r := e.Range
	for row := r.Row; row <= r.EndRow(); row++ {
		b.readRow(row, r.Col, r.EndCol())
	}
}

func (l *gridListener[R]) BeforeCellEdit(e *grid.BeforeEditEvent) {
	b := l.b
	defer b.recoverIn("before edit")
	b.beforeCellEdit(e)
}

func (l *gridListener[R]) RowHeightChanged(e grid.ResizeEvent) {
	l.b.heights = setSize(l.b.heights, e.Index, e.Size)
}

func (l *gridListener[R]) ColumnWidthChanged(e grid.ResizeEvent) {
	l.b.widths = setSize(l.b.widths, e.Index, e.Size)
}
