package gridbind

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ErrCoercion is wrapped by every cell-to-field conversion failure.
var ErrCoercion = errors.New("gridbind: cannot convert cell value")

func coercionError(raw any, kind Kind, reason string) error {
	return fmt.Errorf("%w %q (%T) to %s: %s", ErrCoercion, fmt.Sprint(raw), raw, kind, reason)
}

// layouts tried by toTime after cast's own list.
var layouts = []string{
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// blank reports whether a cell holds nothing, which coerces to the zero value.
func blank(raw any) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) == ""
}

func toString(raw any) string {
	switch x := raw.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case time.Time:
		return x.Format(time.DateTime)
	default:
		return fmt.Sprint(raw)
	}
}

// toInt64 parses whole numbers. Text is cleaned of display decoration and
// always read as base 10.
func toInt64(raw any, f Format) (int64, error) {
	if blank(raw) {
		return 0, nil
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Bool:
		return 0, coercionError(raw, KindInt, "unsupported cell type")
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt64 {
			return 0, coercionError(raw, KindInt, "out of range")
		}
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return integral(rv.Float(), raw)
	case reflect.String:
		s, neg := cleanNumber(rv.String(), f)
		n, err := cast.ToInt64E(decimal(s))
		if err != nil {
			x, ferr := cast.ToFloat64E(s)
			if ferr != nil {
				return 0, coercionError(raw, KindInt, "not a number")
			}
			if n, err = integral(x, raw); err != nil {
				return 0, err
			}
		}
		if neg {
			n = -n
		}
		return n, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	}
	return 0, coercionError(raw, KindInt, "unsupported cell type")
}

// decimal drops leading zeros so cast, which parses with base prefixes,
// reads "042" as 42 rather than octal.
func decimal(s string) string {
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	t := strings.TrimLeft(s, "0")
	if t == "" || t[0] == '.' {
		t = "0" + t
	}
	return sign + t
}

func integral(x float64, raw any) (int64, error) {
	if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, coercionError(raw, KindInt, "not a whole number")
	}
	if x < math.MinInt64 || x >= math.MaxInt64 {
		return 0, coercionError(raw, KindInt, "out of range")
	}
	return int64(x), nil
}

func toUint64(raw any, f Format) (uint64, error) {
	if blank(raw) {
		return 0, nil
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	}
	n, err := toInt64(raw, f)
	if err != nil {
		return 0, coercionError(raw, KindUint, "not a whole number")
	}
	u, err := cast.ToUint64E(n)
	if err != nil {
		return 0, coercionError(raw, KindUint, "negative")
	}
	return u, nil
}

func toFloat(raw any, f Format) (float64, error) {
	if blank(raw) {
		return 0, nil
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Bool:
		return 0, coercionError(raw, KindFloat, "unsupported cell type")
	case reflect.String:
		s, neg := cleanNumber(rv.String(), f)
		percent := strings.HasSuffix(s, "%")
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		x, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, coercionError(raw, KindFloat, "not a number")
		}
		if percent {
			x /= 100
		}
		if neg {
			x = -x
		}
		return x, nil
	}
	if x, err := cast.ToFloat64E(raw); err == nil {
		return x, nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, coercionError(raw, KindFloat, "unsupported cell type")
}

// cleanNumber strips display decoration from typed or pasted numeric text:
// grouping separators, currency symbols, bracketed or custom-affixed
// negatives. neg reports a negative marker that was removed.
func cleanNumber(s string, f Format) (clean string, neg bool) {
	s = strings.TrimSpace(s)
	switch nf := f.(type) {
	case NumberFormat:
		if nf.NegativePrefix != "" || nf.NegativePostfix != "" {
			if t, ok := cutAffixes(s, nf.NegativePrefix, nf.NegativePostfix); ok {
				s, neg = t, true
			}
		}
	case CurrencyFormat:
		if nf.Symbol != "" {
			s = strings.TrimSpace(strings.ReplaceAll(s, nf.Symbol, ""))
		}
	}
	if t, ok := cutAffixes(s, "(", ")"); ok {
		s, neg = t, !neg
	}
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s), neg
}

func cutAffixes(s, prefix, postfix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, postfix) || len(s) < len(prefix)+len(postfix)+1 {
		return s, false
	}
	return s[len(prefix) : len(s)-len(postfix)], true
}

func toBool(raw any) (bool, error) {
	if blank(raw) {
		return false, nil
	}
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	switch raw.(type) {
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
	default:
		return false, coercionError(raw, KindBool, "unsupported cell type")
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return false, coercionError(raw, KindBool, "not a boolean")
	}
	return b, nil
}

// toTime reads time values and date text. Text is tried against the
// column's own layout first. Numbers are rejected rather than read as Unix
// seconds.
func toTime(raw any, f Format) (time.Time, error) {
	if blank(raw) {
		return time.Time{}, nil
	}
	switch x := raw.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, nil
		}
		return *x, nil
	case string:
		s := strings.TrimSpace(x)
		if df, ok := f.(DateTimeFormat); ok && df.Pattern != "" {
			if t, err := time.Parse(df.Pattern, s); err == nil {
				return t, nil
			}
		}
		if t, err := cast.ToTimeInDefaultLocationE(s, time.UTC); err == nil {
			return t, nil
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, coercionError(raw, KindTime, "unrecognized date")
	}
	return time.Time{}, coercionError(raw, KindTime, "unsupported cell type")
}

// enumOrdinal parses an enumeration value by its declared name, or by
// ordinal when given a number or numeric text.
func enumOrdinal(raw any, names []string) (int64, error) {
	if blank(raw) {
		return 0, nil
	}
	var text string
	switch x := raw.(type) {
	case string:
		text = strings.TrimSpace(x)
	case fmt.Stringer:
		text = x.String()
	default:
		rv := reflect.ValueOf(raw)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return ordinal(rv.Int(), raw, names)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
			return ordinal(int64(rv.Uint()), raw, names)
		case reflect.String:
			text = strings.TrimSpace(rv.String())
		default:
			return 0, coercionError(raw, KindEnum, "unsupported cell type")
		}
	}
	for i, n := range names {
		if n == text {
			return int64(i), nil
		}
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ordinal(n, raw, names)
	}
	return 0, coercionError(raw, KindEnum, "unknown name")
}

func ordinal(n int64, raw any, names []string) (int64, error) {
	if n < 0 || n >= int64(len(names)) {
		return 0, coercionError(raw, KindEnum, "ordinal out of range")
	}
	return n, nil
}
