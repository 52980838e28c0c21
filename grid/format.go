package grid

// FormatFlag selects the widget's cell data formatter.
type FormatFlag int

const (
	FormatGeneral FormatFlag = iota
	FormatNumber
	FormatDateTime
	FormatPercent
	FormatCurrency
	FormatText
	FormatCustom
)

func (f FormatFlag) String() string {
	switch f {
	case FormatGeneral:
		return "general"
	case FormatNumber:
		return "number"
	case FormatDateTime:
		return "datetime"
	case FormatPercent:
		return "percent"
	case FormatCurrency:
		return "currency"
	case FormatText:
		return "text"
	case FormatCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// NegativeStyle controls how negative numbers are displayed. Flags combine.
type NegativeStyle uint8

const (
	NegativeMinus NegativeStyle = 1 << iota
	NegativeRed
	NegativeBrackets
	NegativePrefixSymbol
)

// DefaultDecimalPlaces is used by numeric formatters when none is given.
const DefaultDecimalPlaces = 2

// NumberFormatArgs configures FormatNumber.
type NumberFormatArgs struct {
	DecimalPlaces         int
	NegativeStyle         NegativeStyle
	UseSeparator          bool
	CustomNegativePrefix  string
	CustomNegativePostfix string
}

// DefaultNumberFormatArgs returns the widget defaults for FormatNumber.
func DefaultNumberFormatArgs() NumberFormatArgs {
	return NumberFormatArgs{
		DecimalPlaces: DefaultDecimalPlaces,
		NegativeStyle: NegativeMinus,
	}
}

// DateTimeFormatArgs configures FormatDateTime. Format is a Go reference
// layout; CultureName is carried for widgets that localize.
type DateTimeFormatArgs struct {
	Format      string
	CultureName string
}

// PercentFormatArgs configures FormatPercent.
type PercentFormatArgs struct {
	DecimalPlaces int
}

// CurrencyFormatArgs configures FormatCurrency.
type CurrencyFormatArgs struct {
	DecimalPlaces int
	PrefixSymbol  string
	PostfixSymbol string
	NegativeStyle NegativeStyle
}

// CustomFormatArgs configures FormatCustom. Pattern is a fmt verb string
// applied to the cell value.
type CustomFormatArgs struct {
	Pattern string
}
