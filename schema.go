package gridbind

import (
	"cmp"
	"errors"
	"slices"
)

// ErrNoVisibleColumns is returned when a sheet description has no visible field.
var ErrNoVisibleColumns = errors.New("gridbind: no visible columns")

// SheetSpec is the declarative description of how one record type is shown.
type SheetSpec struct {
	Title   string
	Columns []ColumnSpec
}

// ColumnSpec describes one record field. The zero value of Hidden shows the
// field; a Width of zero or less asks the grid to size the column itself.
type ColumnSpec struct {
	Field  string
	Title  string
	Order  int
	Width  int
	Hidden bool
	Format Format
}

// Column is one entry of a derived schema.
type Column struct {
	Index     int // dense, 0-based grid column
	Field     string
	Title     string
	Width     int
	AutoWidth bool
	Format    Format
}

// Schema is the ordered column layout derived from a SheetSpec.
type Schema struct {
	Title   string
	Columns []Column
}

// Len returns the number of columns.
func (s Schema) Len() int { return len(s.Columns) }

// Column returns the column bound to field.
func (s Schema) Column(field string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

// DeriveSchema orders the visible columns of spec by declared Order (ties
// keep declaration order) and numbers them from zero.
func DeriveSchema(spec SheetSpec) (Schema, error) {
	visible := make([]ColumnSpec, 0, len(spec.Columns))
	for _, c := range spec.Columns {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return Schema{Title: spec.Title}, ErrNoVisibleColumns
	}
	slices.SortStableFunc(visible, func(a, b ColumnSpec) int {
		return cmp.Compare(a.Order, b.Order)
	})

	cols := make([]Column, len(visible))
	for i, c := range visible {
		title := c.Title
		if title == "" {
			title = c.Field
		}
		cols[i] = Column{
			Index:     i,
			Field:     c.Field,
			Title:     title,
			Width:     c.Width,
			AutoWidth: c.Width <= 0,
			Format:    c.Format,
		}
	}
	return Schema{Title: spec.Title, Columns: cols}, nil
}
