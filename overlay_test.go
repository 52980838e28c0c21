package gridbind

import (
	"testing"

	"github.com/kungfusheep/gridbind/grid"
	"github.com/kungfusheep/gridbind/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zoomed attaches to a sheet at origin (100, 50), scale 1.5, where every
// auto-width column measures 50.
func zoomed(t *testing.T, recs []*person, opts ...Option[*person]) (*Binding[*person], *sheet.Sheet) {
	t.Helper()
	s := sheet.New(
		sheet.WithOrigin(100, 50),
		sheet.WithScale(1.5),
		sheet.WithMeasure(func(string) int { return 50 }),
	)
	b := Attach(s, personType(peopleSheet()), NewCollection(recs...), opts...)
	require.True(t, b.Active())
	return b, s
}

func TestChooserForEnum(t *testing.T) {
	var got []ChoiceRequest
	pick := ChooserFunc(func(req ChoiceRequest) (string, bool) {
		got = append(got, req)
		return "Lead", true
	})
	b, s := zoomed(t, people("a", "b"), WithChooser[*person](pick))

	require.True(t, s.EditCell(1, colLevel, "Senior"))
	assert.Equal(t, lead, b.Records().At(1).Level)
	assert.Equal(t, "Lead", s.CellData(1, colLevel))

	require.Len(t, got, 1)
	req := got[0]
	assert.Equal(t, 1, req.Row)
	assert.Equal(t, colLevel, req.Col)
	assert.Equal(t, "Level", req.Field)
	assert.Equal(t, levelNames, req.Options)
	assert.Equal(t, "Senior", req.Current)
	// x: 40*1.5 + 120*1.5 + 3*(50*1.5), y: 20*1.5 + 2*(20*1.5), plus origin
	assert.Equal(t, grid.Point{X: 565, Y: 140}, req.Anchor)
	assert.Equal(t, 75, req.Width)
	assert.Equal(t, 1.5, req.Scale)
}

func TestChooserDismissedCancelsEdit(t *testing.T) {
	pick := ChooserFunc(func(ChoiceRequest) (string, bool) { return "", false })
	b, s := zoomed(t, people("a"), WithChooser[*person](pick))

	assert.False(t, s.EditCell(0, colLevel, "Lead"))
	assert.Equal(t, junior, b.Records().At(0).Level)
	assert.Equal(t, "Junior", s.CellData(0, colLevel))
}

func TestChooserForBool(t *testing.T) {
	var options []string
	pick := ChooserFunc(func(req ChoiceRequest) (string, bool) {
		options = req.Options
		return FalseText, true
	})
	b, s := zoomed(t, people("a"), WithChooser[*person](pick))
	require.True(t, b.Records().At(0).Active)

	s.EditCell(0, colActive, "")
	assert.Equal(t, []string{TrueText, FalseText}, options)
	assert.False(t, b.Records().At(0).Active)
}

func TestChooserSkipsTextColumns(t *testing.T) {
	calls := 0
	pick := ChooserFunc(func(ChoiceRequest) (string, bool) { calls++; return "", false })
	b, s := zoomed(t, people("a"), WithChooser[*person](pick))

	s.EditCell(0, colName, "typed")
	s.EditCell(0, colAge, "31")
	assert.Zero(t, calls)
	assert.Equal(t, "typed", b.Records().At(0).Name)
}

func TestHostHookRunsAfterChooser(t *testing.T) {
	var seen []grid.BeforeEditEvent
	hook := func(e *grid.BeforeEditEvent) {
		seen = append(seen, *e)
		if e.Col == colName {
			e.Cancel = true
		}
	}
	pick := ChooserFunc(func(ChoiceRequest) (string, bool) { return "Senior", true })
	b, s := zoomed(t, people("a"), WithChooser[*person](pick), WithBeforeCellEdit[*person](hook))

	s.EditCell(0, colLevel, "")
	assert.False(t, s.EditCell(0, colName, "nope"))

	require.Len(t, seen, 2)
	assert.Equal(t, "Senior", seen[0].EditText)
	assert.True(t, seen[0].EditorSuppressed)
	assert.False(t, seen[1].EditorSuppressed)
	assert.Equal(t, senior, b.Records().At(0).Level)
	assert.Equal(t, "a", b.Records().At(0).Name)
}

func TestAnchorFollowsResizes(t *testing.T) {
	b, s := zoomed(t, people("a", "b"))

	s.ResizeRow(0, 41)
	s.ResizeColumn(colName, 101)
	assert.Equal(t, 41, b.heights[0])
	assert.Equal(t, 101, b.widths[colName])

	// each term truncates on its own: int(41*1.5) = 61, int(101*1.5) = 151
	assert.Equal(t, grid.Point{X: 100 + 60 + 151 + 3*75, Y: 50 + 30 + 61 + 30}, b.anchor(1, colLevel))
}

func TestAnchorFallsBackToGridSizes(t *testing.T) {
	b, _ := zoomed(t, people("a"))
	require.Len(t, b.heights, 1)

	b.Records().Add(&person{Name: "b"})
	b.Records().Add(&person{Name: "c"})

	assert.Equal(t, grid.Point{X: 160, Y: 50 + 30 + 3*30}, b.anchor(2, 0))
}

func TestSetSizeGrowsCache(t *testing.T) {
	assert.Equal(t, []int{5, 0, 7}, setSize([]int{5}, 2, 7))
	assert.Equal(t, []int{5}, setSize([]int{5}, -1, 7))
}
