package gridbind

// bound returns the column mapped at grid column col, identified by the
// field name stored in the header tag. It reports an unmapped column once
// per column.
func (b *Binding[R]) bound(col int) *boundColumn[R] {
	field, _ := b.grid.ColumnHeader(col).Tag.(string)
	if bc, ok := b.columns[field]; ok {
		return bc
	}
	if !b.unmapped[col] {
		b.unmapped[col] = true
		b.reportf(CodeUnmappedColumn, -1, col, field, nil, "column has no field mapping; skipped")
	}
	return nil
}

// loadRecords projects every record into the row matching its position.
func (b *Binding[R]) loadRecords() {
	for i, rec := range b.records.Items() {
		b.writeRecordToRow(i, rec)
	}
}

// writeRecordToRow writes every mapped field of rec into row and stamps the
// record with that row. Grid notifications are held back for the duration.
func (b *Binding[R]) writeRecordToRow(row int, rec R) {
	scope := suspendGrid(b.grid)
	defer scope.Release()

	rec.SetRowIndex(row)
	if row >= b.grid.Rows() {
		b.grid.SetRows(row + 1)
	}
	for col := 0; col < b.grid.Columns(); col++ {
		bc := b.bound(col)
		if bc == nil {
			continue
		}
		b.guard(row, col, bc.Field, func() {
			b.grid.SetCellData(row, col, bc.acc.Get(rec))
		})
	}
}

// writeCell stores v without raising a notification.
func (b *Binding[R]) writeCell(row, col int, v any) {
	scope := suspendGrid(b.grid)
	defer scope.Release()
	b.grid.SetCellData(row, col, v)
}

// clearRow empties every mapped cell of row without raising a notification.
func (b *Binding[R]) clearRow(row int) {
	scope := suspendGrid(b.grid)
	defer scope.Release()
	for col := 0; col < b.grid.Columns(); col++ {
		b.grid.SetCellData(row, col, nil)
	}
}

// readRow pulls columns startCol..endCol of row into the record shown
// there. A row past the end of the collection becomes a new record, which
// is appended once every column has been read.
func (b *Binding[R]) readRow(row, startCol, endCol int) {
	if row < 0 {
		return
	}
	var rec R
	isNew := row >= b.records.Len()
	if isNew {
		if b.rt.New == nil {
			b.reportf(CodeRowOutOfRange, row, -1, "", nil, "row past the end and no record constructor; ignored")
			return
		}
		rec = b.rt.New()
		rec.SetRowIndex(row)
	} else {
		rec = b.records.At(row)
	}

	b.readRowIntoRecord(row, startCol, endCol, rec)

	if isNew {
		b.appendRecord(row, rec)
	}
}

// appendRecord adds a record read from row to the collection with the
// binding's own subscription detached, then projects it. A row typed into a
// gap lands at the end and the typed row is cleared.
func (b *Binding[R]) appendRecord(row int, rec R) {
	func() {
		scope := b.muteRecords()
		defer scope.Release()
		b.records.Add(rec)
	}()
	at := b.records.IndexOf(rec)
	if at < 0 {
		return
	}
	b.writeRecordToRow(at, rec)
	if at != row {
		b.clearRow(row)
	}
}

// readRowIntoRecord coerces each cell in the column span and assigns it to
// rec unless the veto hook cancels. A value that cannot be coerced is
// reported and leaves the field unchanged; the remaining columns are still
// read. Accepted values are written back in canonical form, cancelled ones
// are reverted to the field's current value.
func (b *Binding[R]) readRowIntoRecord(row, startCol, endCol int, rec R) {
	for col := max(startCol, 0); col <= endCol && col < b.grid.Columns(); col++ {
		bc := b.bound(col)
		if bc == nil {
			continue
		}
		raw := b.grid.CellData(row, col)
		v, err := bc.acc.Coerce(raw, bc.Format)
		if err != nil {
			b.reportf(CodeCoercion, row, col, bc.Field, err, "value not applied")
			continue
		}
		b.guard(row, col, bc.Field, func() {
			if b.veto != nil && b.veto(rec, bc.Column, v) == Cancel {
				b.writeCell(row, col, bc.acc.Get(rec))
				return
			}
			bc.acc.Set(rec, v)
			b.writeCell(row, col, bc.acc.Get(rec))
		})
	}
}

// guard runs fn, turning a panic into a diagnostic for that cell.
func (b *Binding[R]) guard(row, col int, field string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.reportf(CodeHandlerPanic, row, col, field, nil, "recovered: %v", r)
			ok = false
		}
	}()
	fn()
	return true
}
