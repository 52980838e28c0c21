package gridbind

// Record is an application object bound to one grid row. RowIndex is the
// record's current position in both the collection and the grid; the
// binding re-stamps it after every structural change.
type Record interface {
	RowIndex() int
	SetRowIndex(int)
}

// Bindable is the constraint for record types a Binding can hold. Records
// are identified by reference, so the type is normally a pointer.
type Bindable interface {
	comparable
	Record
}

// Indexed implements Record. Embed it in a record struct.
type Indexed struct {
	row int
}

func (i *Indexed) RowIndex() int       { return i.row }
func (i *Indexed) SetRowIndex(row int) { i.row = row }
