package gridbind

import (
	"testing"

	"github.com/kungfusheep/gridbind/grid"
	"github.com/kungfusheep/gridbind/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNative(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		flag grid.FormatFlag
		args any
	}{
		{
			"number default decimals",
			NumberFormat{NegativeStyle: grid.NegativeBrackets, UseSeparator: true},
			grid.FormatNumber,
			grid.NumberFormatArgs{DecimalPlaces: 2, NegativeStyle: grid.NegativeBrackets, UseSeparator: true},
		},
		{
			"number explicit decimals and affixes",
			NumberFormat{DecimalPlaces: Decimals(0), NegativeStyle: grid.NegativePrefixSymbol, NegativePrefix: "<", NegativePostfix: ">"},
			grid.FormatNumber,
			grid.NumberFormatArgs{DecimalPlaces: 0, NegativeStyle: grid.NegativePrefixSymbol, CustomNegativePrefix: "<", CustomNegativePostfix: ">"},
		},
		{
			"datetime",
			DateTimeFormat{Pattern: "2006-01-02", Culture: "en-GB"},
			grid.FormatDateTime,
			grid.DateTimeFormatArgs{Format: "2006-01-02", CultureName: "en-GB"},
		},
		{"percent", PercentFormat{DecimalPlaces: Decimals(1)}, grid.FormatPercent, grid.PercentFormatArgs{DecimalPlaces: 1}},
		{
			"currency prefix",
			CurrencyFormat{Symbol: "$"},
			grid.FormatCurrency,
			grid.CurrencyFormatArgs{DecimalPlaces: 2, PrefixSymbol: "$"},
		},
		{
			"currency postfix",
			CurrencyFormat{Symbol: " kr", SymbolAfter: true, DecimalPlaces: Decimals(0)},
			grid.FormatCurrency,
			grid.CurrencyFormatArgs{DecimalPlaces: 0, PostfixSymbol: " kr"},
		},
		{"text", TextFormat{}, grid.FormatText, nil},
		{"custom", CustomFormat{Pattern: "#%d"}, grid.FormatCustom, grid.CustomFormatArgs{Pattern: "#%d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag, args := tt.f.native()
			assert.Equal(t, tt.flag, flag)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestApplyFormatsSpansAllRows(t *testing.T) {
	s := sheet.New(sheet.WithRows(4))
	schema, err := DeriveSchema(SheetSpec{Columns: []ColumnSpec{
		{Field: "Name"},
		{Field: "Salary", Format: CurrencyFormat{Symbol: "$"}},
		{Field: "Ratio", Format: PercentFormat{}},
	}})
	require.NoError(t, err)

	n := applyFormats(s, schema)
	assert.Equal(t, 2, n)

	flag, args := s.FormatAt(3, 1)
	assert.Equal(t, grid.FormatCurrency, flag)
	assert.Equal(t, grid.CurrencyFormatArgs{DecimalPlaces: 2, PrefixSymbol: "$"}, args)

	flag, _ = s.FormatAt(0, 2)
	assert.Equal(t, grid.FormatPercent, flag)

	flag, _ = s.FormatAt(0, 0)
	assert.Equal(t, grid.FormatGeneral, flag)
	flag, _ = s.FormatAt(4, 1)
	assert.Equal(t, grid.FormatGeneral, flag)
}
