package gridbind

import (
	"github.com/kungfusheep/gridbind/grid"
)

// Format is a column format specifier. A nil Format means none.
// Implementations are NumberFormat, DateTimeFormat, PercentFormat,
// CurrencyFormat, TextFormat and CustomFormat.
type Format interface {
	// native returns the widget formatter flag and argument value.
	native() (grid.FormatFlag, any)
}

// NumberFormat shows numbers with a fixed number of decimals.
// A nil DecimalPlaces keeps the widget default.
type NumberFormat struct {
	DecimalPlaces   *int
	NegativeStyle   grid.NegativeStyle
	UseSeparator    bool
	NegativePrefix  string
	NegativePostfix string
}

// DateTimeFormat shows time values with a Go reference layout. Culture is
// handed to the grid untouched; the in-memory sheet ignores it and renders
// the layout as given.
type DateTimeFormat struct {
	Pattern string
	Culture string
}

// PercentFormat shows fractions as percentages.
type PercentFormat struct {
	DecimalPlaces *int
}

// CurrencyFormat shows amounts with a currency symbol.
type CurrencyFormat struct {
	DecimalPlaces *int
	Symbol        string
	SymbolAfter   bool
	NegativeStyle grid.NegativeStyle
}

// TextFormat stores values as plain text.
type TextFormat struct{}

// CustomFormat renders values through a fmt pattern.
type CustomFormat struct {
	Pattern string
}

// Decimals returns a pointer to n for the DecimalPlaces fields.
func Decimals(n int) *int { return &n }

func decimalsOr(p *int) int {
	if p == nil {
		return grid.DefaultDecimalPlaces
	}
	return *p
}

func (f NumberFormat) native() (grid.FormatFlag, any) {
	args := grid.DefaultNumberFormatArgs()
	if f.DecimalPlaces != nil {
		args.DecimalPlaces = *f.DecimalPlaces
	}
	args.NegativeStyle = f.NegativeStyle
	args.UseSeparator = f.UseSeparator
	args.CustomNegativePrefix = f.NegativePrefix
	args.CustomNegativePostfix = f.NegativePostfix
	return grid.FormatNumber, args
}

func (f DateTimeFormat) native() (grid.FormatFlag, any) {
	return grid.FormatDateTime, grid.DateTimeFormatArgs{Format: f.Pattern, CultureName: f.Culture}
}

func (f PercentFormat) native() (grid.FormatFlag, any) {
	return grid.FormatPercent, grid.PercentFormatArgs{DecimalPlaces: decimalsOr(f.DecimalPlaces)}
}

func (f CurrencyFormat) native() (grid.FormatFlag, any) {
	args := grid.CurrencyFormatArgs{
		DecimalPlaces: decimalsOr(f.DecimalPlaces),
		NegativeStyle: f.NegativeStyle,
	}
	if f.SymbolAfter {
		args.PostfixSymbol = f.Symbol
	} else {
		args.PrefixSymbol = f.Symbol
	}
	return grid.FormatCurrency, args
}

func (TextFormat) native() (grid.FormatFlag, any) { return grid.FormatText, nil }

func (f CustomFormat) native() (grid.FormatFlag, any) {
	return grid.FormatCustom, grid.CustomFormatArgs{Pattern: f.Pattern}
}

// applyFormats issues one range format per formatted column. Each range
// reaches the last row, so the grid keeps it as a column format covering
// rows added later.
func applyFormats(g grid.Grid, s Schema) int {
	n := 0
	for _, c := range s.Columns {
		if c.Format == nil {
			continue
		}
		flag, args := c.Format.native()
		g.SetRangeDataFormat(grid.Range{Row: 0, Col: c.Index, Rows: g.Rows(), Cols: 1}, flag, args)
		n++
	}
	return n
}
