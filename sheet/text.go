package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kungfusheep/gridbind/grid"
)

// Text returns the display text of a cell after its range format is applied.
func (s *Sheet) Text(row, col int) string {
	text, _ := s.Display(row, col)
	return text
}

// Display returns the display text of a cell and whether the format asks
// for it to be drawn in red.
func (s *Sheet) Display(row, col int) (string, bool) {
	v := s.CellData(row, col)
	if v == nil {
		return "", false
	}
	flag, args := s.FormatAt(row, col)
	return formatValue(v, flag, args)
}

func formatValue(v any, flag grid.FormatFlag, args any) (string, bool) {
	switch flag {
	case grid.FormatNumber:
		f, ok := toFloat64(v)
		if !ok {
			break
		}
		a := grid.DefaultNumberFormatArgs()
		switch x := args.(type) {
		case grid.NumberFormatArgs:
			a = x
		case *grid.NumberFormatArgs:
			a = *x
		}
		return formatSigned(f, a.DecimalPlaces, a.UseSeparator, a.NegativeStyle, a.CustomNegativePrefix, a.CustomNegativePostfix)

	case grid.FormatPercent:
		f, ok := toFloat64(v)
		if !ok {
			break
		}
		decimals := grid.DefaultDecimalPlaces
		if a, ok := args.(grid.PercentFormatArgs); ok {
			decimals = a.DecimalPlaces
		}
		return strconv.FormatFloat(f*100, 'f', decimals, 64) + "%", false

	case grid.FormatCurrency:
		f, ok := toFloat64(v)
		if !ok {
			break
		}
		a, _ := args.(grid.CurrencyFormatArgs)
		text, red := formatSigned(math.Abs(f), a.DecimalPlaces, true, 0, "", "")
		text = a.PrefixSymbol + text + a.PostfixSymbol
		if f < 0 {
			return negative(text, a.NegativeStyle, "", "")
		}
		return text, red

	case grid.FormatDateTime:
		t, ok := v.(time.Time)
		if !ok {
			break
		}
		// CultureName is not applied here; the layout already fixes the text.
		layout := time.DateTime
		if a, ok := args.(grid.DateTimeFormatArgs); ok && a.Format != "" {
			layout = a.Format
		}
		return t.Format(layout), false

	case grid.FormatCustom:
		if a, ok := args.(grid.CustomFormatArgs); ok && a.Pattern != "" {
			return fmt.Sprintf(a.Pattern, v), false
		}
	}
	return general(v), false
}

// general renders a value with no format applied.
func general(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case time.Time:
		return x.Format(time.DateTime)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

func formatSigned(f float64, decimals int, sep bool, style grid.NegativeStyle, prefix, postfix string) (string, bool) {
	s := strconv.FormatFloat(math.Abs(f), 'f', decimals, 64)
	if sep {
		s = insertCommas(s)
	}
	if f < 0 {
		return negative(s, style, prefix, postfix)
	}
	return s, false
}

// negative decorates an absolute number per style.
func negative(s string, style grid.NegativeStyle, prefix, postfix string) (string, bool) {
	red := style&grid.NegativeRed != 0
	switch {
	case style&grid.NegativePrefixSymbol != 0:
		return prefix + s + postfix, red
	case style&grid.NegativeBrackets != 0:
		return "(" + s + ")", red
	case style&grid.NegativeMinus != 0, style == 0:
		return "-" + s, red
	}
	return s, red
}

// toFloat64 converts common numeric types to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// insertCommas adds thousand separators to an unsigned numeric string.
func insertCommas(s string) string {
	integer, decimal, hasDecimal := strings.Cut(s, ".")

	n := len(integer)
	if n > 3 {
		var b strings.Builder
		b.Grow(n + n/3)
		start := n % 3
		if start == 0 {
			start = 3
		}
		b.WriteString(integer[:start])
		for i := start; i < n; i += 3 {
			b.WriteByte(',')
			b.WriteString(integer[i : i+3])
		}
		integer = b.String()
	}

	if hasDecimal {
		return integer + "." + decimal
	}
	return integer
}
