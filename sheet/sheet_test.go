package sheet

import (
	"testing"
	"time"

	"github.com/kungfusheep/gridbind/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	grid.NopListener
	cells  []grid.CellEvent
	ranges []grid.RangeEvent
	pastes []grid.RangeEvent
	widths []grid.ResizeEvent
	rows   []grid.ResizeEvent
	edit   func(e *grid.BeforeEditEvent)
}

func (r *recorder) CellDataChanged(e grid.CellEvent)     { r.cells = append(r.cells, e) }
func (r *recorder) RangeDataChanged(e grid.RangeEvent)   { r.ranges = append(r.ranges, e) }
func (r *recorder) AfterPaste(e grid.RangeEvent)         { r.pastes = append(r.pastes, e) }
func (r *recorder) ColumnWidthChanged(e grid.ResizeEvent) { r.widths = append(r.widths, e) }
func (r *recorder) RowHeightChanged(e grid.ResizeEvent)   { r.rows = append(r.rows, e) }
func (r *recorder) BeforeCellEdit(e *grid.BeforeEditEvent) {
	if r.edit != nil {
		r.edit(e)
	}
}

func TestSetCellDataGrowsAndNotifies(t *testing.T) {
	s := New()
	rec := &recorder{}
	s.AddListener(rec)

	s.SetCellData(2, 1, "x")
	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 2, s.Columns())
	assert.Equal(t, "x", s.CellData(2, 1))
	assert.Nil(t, s.CellData(0, 0))
	assert.Nil(t, s.CellData(99, 99))
	require.Len(t, rec.cells, 1)
	assert.Equal(t, grid.CellEvent{Row: 2, Col: 1}, rec.cells[0])
}

func TestSuspendNests(t *testing.T) {
	s := New(WithColumns(1))
	rec := &recorder{}
	s.AddListener(rec)

	s.SuspendDataChangedEvents()
	s.SuspendDataChangedEvents()
	s.SetCellData(0, 0, 1)
	s.ResumeDataChangedEvents()
	s.SetCellData(0, 0, 2)
	assert.True(t, s.Suspended())
	s.ResumeDataChangedEvents()
	s.SetCellData(0, 0, 3)

	assert.False(t, s.Suspended())
	assert.Len(t, rec.cells, 1)
}

func TestRemoveListener(t *testing.T) {
	s := New()
	a, b := &recorder{}, &recorder{}
	removeA := s.AddListener(a)
	s.AddListener(b)
	removeA()
	removeA()

	s.SetCellData(0, 0, "v")
	assert.Empty(t, a.cells)
	assert.Len(t, b.cells, 1)
	assert.Equal(t, 1, s.Listeners())
}

func TestUsedRange(t *testing.T) {
	s := New(WithRows(10), WithColumns(5))
	assert.True(t, s.UsedRange().Empty())

	s.SetCellData(1, 2, "a")
	s.SetCellData(3, 0, "b")
	assert.Equal(t, grid.Range{Rows: 4, Cols: 3}, s.UsedRange())
}

func TestInsertDeleteRows(t *testing.T) {
	s := New(WithColumns(1))
	for i := 0; i < 5; i++ {
		s.SetCellData(i, 0, i)
	}
	s.ResizeRow(3, 44)

	s.DeleteRows(1, 2)
	require.Equal(t, 3, s.Rows())
	assert.Equal(t, 0, s.CellData(0, 0))
	assert.Equal(t, 3, s.CellData(1, 0))
	assert.Equal(t, 44, s.RowHeight(1))

	s.InsertRows(1, 1)
	require.Equal(t, 4, s.Rows())
	assert.Nil(t, s.CellData(1, 0))
	assert.Equal(t, 3, s.CellData(2, 0))

	s.DeleteRows(10, 1)
	assert.Equal(t, 4, s.Rows())
}

func TestFormatRangesFollowRows(t *testing.T) {
	s := New(WithRows(4), WithColumns(2))
	s.SetRangeDataFormat(grid.Range{Row: 0, Col: 1, Rows: 4, Cols: 1}, grid.FormatNumber, grid.DefaultNumberFormatArgs())

	s.InsertRows(2, 2)
	flag, _ := s.FormatAt(5, 1)
	assert.Equal(t, grid.FormatNumber, flag)

	s.DeleteRows(0, 3)
	flag, _ = s.FormatAt(2, 1)
	assert.Equal(t, grid.FormatNumber, flag)
	flag, _ = s.FormatAt(0, 0)
	assert.Equal(t, grid.FormatGeneral, flag)
}

func TestColumnFormatCoversNewRows(t *testing.T) {
	s := New(WithRows(2), WithColumns(2))
	s.SetRangeDataFormat(grid.Range{Row: 0, Col: 1, Rows: 2, Cols: 1}, grid.FormatPercent, grid.PercentFormatArgs{})

	s.SetCellData(5, 1, 0.5)
	flag, _ := s.FormatAt(5, 1)
	assert.Equal(t, grid.FormatPercent, flag)
	assert.Equal(t, "50%", s.Text(5, 1))

	s.DeleteRows(0, s.Rows())
	s.SetCellData(0, 1, 0.25)
	assert.Equal(t, "25%", s.Text(0, 1))
}

func TestColumnFormatOnEmptySheet(t *testing.T) {
	s := New(WithColumns(1))
	s.SetRangeDataFormat(grid.Range{Col: 0, Rows: 0, Cols: 1}, grid.FormatNumber, grid.NumberFormatArgs{DecimalPlaces: 1})

	s.SetCellData(3, 0, 2)
	assert.Equal(t, "2.0", s.Text(3, 0))
}

func TestClosedFormatRange(t *testing.T) {
	s := New(WithRows(6), WithColumns(1))
	s.SetRangeDataFormat(grid.Range{Row: 0, Col: 0, Rows: 2, Cols: 1}, grid.FormatNumber, nil)

	flag, _ := s.FormatAt(2, 0)
	assert.Equal(t, grid.FormatGeneral, flag)

	s.InsertRows(3, 1)
	flag, _ = s.FormatAt(1, 0)
	assert.Equal(t, grid.FormatNumber, flag)
	flag, _ = s.FormatAt(2, 0)
	assert.Equal(t, grid.FormatGeneral, flag)

	s.DeleteRows(0, 6)
	flag, _ = s.FormatAt(0, 0)
	assert.Equal(t, grid.FormatGeneral, flag)
}

func TestEditCell(t *testing.T) {
	s := New(WithColumns(2))
	rec := &recorder{}
	s.AddListener(rec)

	assert.True(t, s.EditCell(0, 1, "typed"))
	assert.Equal(t, "typed", s.CellData(0, 1))

	rec.edit = func(e *grid.BeforeEditEvent) { e.EditText = "replaced" }
	s.EditCell(0, 1, "typed")
	assert.Equal(t, "replaced", s.CellData(0, 1))

	rec.edit = func(e *grid.BeforeEditEvent) { e.Cancel = true }
	assert.False(t, s.EditCell(0, 1, "nope"))
	assert.Equal(t, "replaced", s.CellData(0, 1))
	assert.Len(t, rec.cells, 2)
}

func TestPasteClipsColumns(t *testing.T) {
	s := New(WithColumns(3))
	rec := &recorder{}
	s.AddListener(rec)

	r := s.Paste(1, 1, [][]any{{"a", "b", "c"}, {"d"}})
	assert.Equal(t, grid.Range{Row: 1, Col: 1, Rows: 2, Cols: 2}, r)
	assert.Equal(t, "b", s.CellData(1, 2))
	assert.Equal(t, "d", s.CellData(2, 1))
	assert.Nil(t, s.CellData(2, 2))
	assert.Empty(t, rec.cells)
	require.Len(t, rec.pastes, 1)
	assert.Equal(t, r, rec.pastes[0].Range)
}

func TestClearRows(t *testing.T) {
	s := New(WithColumns(2))
	s.SetCellData(0, 0, 1)
	s.SetCellData(0, 1, 2)
	rec := &recorder{}
	s.AddListener(rec)

	s.ClearRows(0, 1)
	assert.Nil(t, s.CellData(0, 0))
	assert.Nil(t, s.CellData(0, 1))
	require.Len(t, rec.ranges, 1)
	assert.Equal(t, grid.Range{Rows: 1, Cols: 2}, rec.ranges[0].Range)
}

func TestAutoWidthUsesDisplayWidth(t *testing.T) {
	s := New(WithMeasure(func(text string) int { return len([]rune(text)) }))
	rec := &recorder{}
	s.AddListener(rec)

	s.SetColumnHeader(0, grid.ColumnHeader{Text: "Name", AutoWidth: true, Visible: true})
	assert.Equal(t, 4, s.ColumnWidth(0))

	s.SetCellData(0, 0, "Gabriella")
	assert.Equal(t, 9, s.ColumnWidth(0))
	require.NotEmpty(t, rec.widths)
	assert.Equal(t, grid.ResizeEvent{Index: 0, Size: 9}, rec.widths[len(rec.widths)-1])

	s.SetColumnHeader(1, grid.ColumnHeader{Text: "Fixed", Width: 33, Visible: true})
	assert.Equal(t, 33, s.ColumnWidth(1))
	assert.Equal(t, 33, s.ColumnHeader(1).Width)
}

func TestDefaultMeasureCountsWideRunes(t *testing.T) {
	s := New()
	s.SetColumnHeader(0, grid.ColumnHeader{Text: "名前", AutoWidth: true})
	assert.Equal(t, 4*7+6, s.ColumnWidth(0))
}

func TestResizeNotifies(t *testing.T) {
	s := New(WithRows(2), WithColumns(2))
	rec := &recorder{}
	s.AddListener(rec)

	s.ResizeColumn(1, 120)
	s.ResizeRow(0, 30)
	s.ResizeRow(9, 30)

	assert.Equal(t, []grid.ResizeEvent{{Index: 1, Size: 120}}, rec.widths)
	assert.Equal(t, []grid.ResizeEvent{{Index: 0, Size: 30}}, rec.rows)
	assert.Equal(t, 120, s.ColumnWidth(1))
	assert.Equal(t, 30, s.RowHeight(0))
}

func TestPointToScreen(t *testing.T) {
	s := New(WithOrigin(100, 50))
	assert.Equal(t, grid.Point{X: 110, Y: 70}, s.PointToScreen(grid.Point{X: 10, Y: 20}))
}

func TestText(t *testing.T) {
	when := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	tests := []struct {
		name string
		v    any
		flag grid.FormatFlag
		args any
		want string
		red  bool
	}{
		{"general string", "abc", grid.FormatGeneral, nil, "abc", false},
		{"general bool", true, grid.FormatGeneral, nil, "True", false},
		{"general float", 1.5, grid.FormatGeneral, nil, "1.5", false},
		{"number default", 1234.5, grid.FormatNumber, nil, "1234.50", false},
		{"number separator", 1234567.891, grid.FormatNumber, grid.NumberFormatArgs{DecimalPlaces: 1, UseSeparator: true}, "1,234,567.9", false},
		{"number brackets red", -42, grid.FormatNumber, grid.NumberFormatArgs{NegativeStyle: grid.NegativeBrackets | grid.NegativeRed}, "(42)", true},
		{"number minus", -3, grid.FormatNumber, grid.NumberFormatArgs{NegativeStyle: grid.NegativeMinus}, "-3", false},
		{"number custom affix", -3, grid.FormatNumber, grid.NumberFormatArgs{NegativeStyle: grid.NegativePrefixSymbol, CustomNegativePrefix: "neg ", CustomNegativePostfix: "!"}, "neg 3!", false},
		{"number on text", "n/a", grid.FormatNumber, nil, "n/a", false},
		{"percent", 0.256, grid.FormatPercent, grid.PercentFormatArgs{DecimalPlaces: 1}, "25.6%", false},
		{"currency", 1500.0, grid.FormatCurrency, grid.CurrencyFormatArgs{DecimalPlaces: 2, PrefixSymbol: "$"}, "$1,500.00", false},
		{"currency negative", -2.0, grid.FormatCurrency, grid.CurrencyFormatArgs{PostfixSymbol: " EUR", NegativeStyle: grid.NegativeBrackets}, "(2 EUR)", false},
		{"datetime", when, grid.FormatDateTime, grid.DateTimeFormatArgs{Format: "2006/01/02"}, "2024/03/09", false},
		{"datetime default", when, grid.FormatDateTime, nil, "2024-03-09 14:05:00", false},
		{"datetime culture ignored", when, grid.FormatDateTime, grid.DateTimeFormatArgs{Format: "Jan 2, 2006", CultureName: "de-DE"}, "Mar 9, 2024", false},
		{"custom", 7, grid.FormatCustom, grid.CustomFormatArgs{Pattern: "#%03d"}, "#007", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, red := formatValue(tt.v, tt.flag, tt.args)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.red, red)
		})
	}
}

func TestInsertCommas(t *testing.T) {
	assert.Equal(t, "1", insertCommas("1"))
	assert.Equal(t, "999", insertCommas("999"))
	assert.Equal(t, "1,000", insertCommas("1000"))
	assert.Equal(t, "123,456.78", insertCommas("123456.78"))
}
