package gridbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSchema(t *testing.T) {
	s, err := DeriveSchema(SheetSpec{
		Title: "People",
		Columns: []ColumnSpec{
			{Field: "Age", Order: 20},
			{Field: "Secret", Order: 0, Hidden: true},
			{Field: "Name", Title: "Full name", Order: 5, Width: 120},
			{Field: "Level", Order: 20},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	assert.Equal(t, "People", s.Title)
	assert.Equal(t, Column{Index: 0, Field: "Name", Title: "Full name", Width: 120}, s.Columns[0])
	assert.Equal(t, Column{Index: 1, Field: "Age", Title: "Age", AutoWidth: true}, s.Columns[1])
	assert.Equal(t, Column{Index: 2, Field: "Level", Title: "Level", AutoWidth: true}, s.Columns[2])

	c, ok := s.Column("Level")
	require.True(t, ok)
	assert.Equal(t, 2, c.Index)
	_, ok = s.Column("Secret")
	assert.False(t, ok)
}

func TestDeriveSchemaNoVisibleColumns(t *testing.T) {
	tests := []struct {
		name string
		spec SheetSpec
	}{
		{"empty", SheetSpec{}},
		{"all hidden", SheetSpec{Columns: []ColumnSpec{{Field: "A", Hidden: true}, {Field: "B", Hidden: true}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DeriveSchema(tt.spec)
			assert.ErrorIs(t, err, ErrNoVisibleColumns)
			assert.Zero(t, s.Len())
		})
	}
}
