package gridbind

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kungfusheep/gridbind/grid"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format kind or negative style the
// loader does not recognise.
var ErrUnknownFormat = errors.New("gridbind: unknown format")

// sheetFile is the YAML shape of a SheetSpec.
type sheetFile struct {
	Title   string       `yaml:"title,omitempty"`
	Columns []columnFile `yaml:"columns"`
}

type columnFile struct {
	Field  string      `yaml:"field"`
	Title  string      `yaml:"title,omitempty"`
	Order  *int        `yaml:"order,omitempty"`
	Width  int         `yaml:"width,omitempty"`
	Hidden bool        `yaml:"hidden,omitempty"`
	Format *formatFile `yaml:"format,omitempty"`
}

type formatFile struct {
	Kind            string   `yaml:"kind"`
	DecimalPlaces   *int     `yaml:"decimal_places,omitempty"`
	Negative        []string `yaml:"negative,omitempty"`
	Separator       bool     `yaml:"separator,omitempty"`
	NegativePrefix  string   `yaml:"negative_prefix,omitempty"`
	NegativePostfix string   `yaml:"negative_postfix,omitempty"`
	Pattern         string   `yaml:"pattern,omitempty"`
	Culture         string   `yaml:"culture,omitempty"`
	Symbol          string   `yaml:"symbol,omitempty"`
	SymbolAfter     bool     `yaml:"symbol_after,omitempty"`
}

// LoadSheetSpec loads and parses a YAML sheet description from path.
func LoadSheetSpec(path string) (SheetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SheetSpec{}, fmt.Errorf("failed to read sheet file %s: %w", path, err)
	}
	return ParseSheetSpec(data)
}

// ParseSheetSpec parses a YAML sheet description. Columns without an
// explicit order take their position in the file.
func ParseSheetSpec(data []byte) (SheetSpec, error) {
	var sf sheetFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return SheetSpec{}, fmt.Errorf("failed to parse sheet YAML: %w", err)
	}

	spec := SheetSpec{Title: sf.Title, Columns: make([]ColumnSpec, 0, len(sf.Columns))}
	for i, c := range sf.Columns {
		if c.Field == "" {
			return SheetSpec{}, fmt.Errorf("column %d: field is required", i)
		}
		cs := ColumnSpec{
			Field:  c.Field,
			Title:  c.Title,
			Order:  i,
			Width:  c.Width,
			Hidden: c.Hidden,
		}
		if c.Order != nil {
			cs.Order = *c.Order
		}
		if c.Format != nil {
			f, err := c.Format.format()
			if err != nil {
				return SheetSpec{}, fmt.Errorf("column %s: %w", c.Field, err)
			}
			cs.Format = f
		}
		spec.Columns = append(spec.Columns, cs)
	}
	return spec, nil
}

func (f *formatFile) format() (Format, error) {
	switch strings.ToLower(f.Kind) {
	case "", "none":
		return nil, nil
	case "number":
		style, err := negativeStyle(f.Negative)
		if err != nil {
			return nil, err
		}
		return NumberFormat{
			DecimalPlaces:   f.DecimalPlaces,
			NegativeStyle:   style,
			UseSeparator:    f.Separator,
			NegativePrefix:  f.NegativePrefix,
			NegativePostfix: f.NegativePostfix,
		}, nil
	case "datetime":
		return DateTimeFormat{Pattern: f.Pattern, Culture: f.Culture}, nil
	case "percent":
		return PercentFormat{DecimalPlaces: f.DecimalPlaces}, nil
	case "currency":
		style, err := negativeStyle(f.Negative)
		if err != nil {
			return nil, err
		}
		return CurrencyFormat{
			DecimalPlaces: f.DecimalPlaces,
			Symbol:        f.Symbol,
			SymbolAfter:   f.SymbolAfter,
			NegativeStyle: style,
		}, nil
	case "text":
		return TextFormat{}, nil
	case "custom":
		return CustomFormat{Pattern: f.Pattern}, nil
	}
	return nil, fmt.Errorf("%w kind %q", ErrUnknownFormat, f.Kind)
}

func negativeStyle(names []string) (grid.NegativeStyle, error) {
	var style grid.NegativeStyle
	for _, n := range names {
		switch strings.ToLower(n) {
		case "minus":
			style |= grid.NegativeMinus
		case "red":
			style |= grid.NegativeRed
		case "brackets":
			style |= grid.NegativeBrackets
		case "prefix", "custom":
			style |= grid.NegativePrefixSymbol
		default:
			return 0, fmt.Errorf("%w negative style %q", ErrUnknownFormat, n)
		}
	}
	return style, nil
}
