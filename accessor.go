package gridbind

import (
	"fmt"
	"time"
)

// Boolean literals offered by the inline chooser.
const (
	TrueText  = "True"
	FalseText = "False"
)

// Kind is the declared type of a record field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Choice kinds get the inline chooser instead of the text editor.
func (k Kind) Choice() bool { return k == KindEnum || k == KindBool }

// Accessor reads and writes one field of R. Build one with StringField,
// IntField, UintField, FloatField, BoolField, TimeField or EnumField.
type Accessor[R any] struct {
	Name string
	Kind Kind
	Enum []string // declared names, ordinal order

	get   func(R) any
	set   func(R, any)
	parse func(raw any, f Format) (any, error)
}

// Get returns the field value as it is written into a cell.
func (a Accessor[R]) Get(r R) any { return a.get(r) }

// Set assigns a value produced by Coerce.
func (a Accessor[R]) Set(r R, v any) { a.set(r, v) }

// Coerce converts a raw cell value into the field's native type.
func (a Accessor[R]) Coerce(raw any, f Format) (any, error) { return a.parse(raw, f) }

// Options returns the values offered by the inline chooser.
func (a Accessor[R]) Options() []string {
	switch a.Kind {
	case KindEnum:
		return a.Enum
	case KindBool:
		return []string{TrueText, FalseText}
	}
	return nil
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// StringField maps a text field.
func StringField[R any, V ~string](name string, get func(R) V, set func(R, V)) Accessor[R] {
	return Accessor[R]{
		Name: name,
		Kind: KindString,
		get:  func(r R) any { return get(r) },
		set:  func(r R, v any) { set(r, v.(V)) },
		parse: func(raw any, _ Format) (any, error) {
			return V(toString(raw)), nil
		},
	}
}

// IntField maps a signed integer field. Values that overflow V are rejected.
func IntField[R any, V signed](name string, get func(R) V, set func(R, V)) Accessor[R] {
	return Accessor[R]{
		Name: name,
		Kind: KindInt,
		get:  func(r R) any { return get(r) },
		set:  func(r R, v any) { set(r, v.(V)) },
		parse: func(raw any, f Format) (any, error) {
			n, err := toInt64(raw, f)
			if err != nil {
				return nil, err
			}
			v := V(n)
			if int64(v) != n {
				return nil, coercionError(raw, KindInt, "out of range")
			}
			return v, nil
		},
	}
}

// UintField maps an unsigned integer field.
func UintField[R any, V unsigned](name string, get func(R) V, set func(R, V)) Accessor[R] {
	return Accessor[R]{
		Name: name,
		Kind: KindUint,
		get:  func(r R) any { return get(r) },
		set:  func(r R, v any) { set(r, v.(V)) },
		parse: func(raw any, f Format) (any, error) {
			n, err := toUint64(raw, f)
			if err != nil {
				return nil, err
			}
			v := V(n)
			if uint64(v) != n {
				return nil, coercionError(raw, KindUint, "out of range")
			}
			return v, nil
		},
	}
}

// FloatField maps a floating point field.
func FloatField[R any, V float](name string, get func(R) V, set func(R, V)) Accessor[R] {
	return Accessor[R]{
		Name: name,
		Kind: KindFloat,
		get:  func(r R) any { return get(r) },
		set:  func(r R, v any) { set(r, v.(V)) },
		parse: func(raw any, f Format) (any, error) {
			x, err := toFloat(raw, f)
			if err != nil {
				return nil, err
			}
			return V(x), nil
		},
	}
}

// BoolField maps a boolean field.
func BoolField[R any, V ~bool](name string, get func(R) V, set func(R, V)) Accessor[R] {
	return Accessor[R]{
		Name: name,
		Kind: KindBool,
		get:  func(r R) any { return bool(get(r)) },
		set:  func(r R, v any) { set(r, v.(V)) },
		parse: func(raw any, _ Format) (any, error) {
			b, err := toBool(raw)
			if err != nil {
				return nil, err
			}
			return V(b), nil
		},
	}
}

// TimeField maps a time.Time field.
func TimeField[R any](name string, get func(R) time.Time, set func(R, time.Time)) Accessor[R] {
	return Accessor[R]{
		Name: name,
		Kind: KindTime,
		get:  func(r R) any { return get(r) },
		set:  func(r R, v any) { set(r, v.(time.Time)) },
		parse: func(raw any, f Format) (any, error) {
			return toTime(raw, f)
		},
	}
}

// EnumField maps an enumeration whose values are the ordinals of names.
// Cells hold the value's name; they are parsed back by name or ordinal.
func EnumField[R any, V signed](name string, names []string, get func(R) V, set func(R, V)) Accessor[R] {
	return Accessor[R]{
		Name: name,
		Kind: KindEnum,
		Enum: names,
		get: func(r R) any {
			v := int64(get(r))
			if v >= 0 && v < int64(len(names)) {
				return names[v]
			}
			return fmt.Sprint(v)
		},
		set: func(r R, v any) { set(r, v.(V)) },
		parse: func(raw any, _ Format) (any, error) {
			n, err := enumOrdinal(raw, names)
			if err != nil {
				return nil, err
			}
			return V(n), nil
		},
	}
}

// RecordType registers a record type with a binding: its sheet
// description, a constructor for rows typed past the end of the
// collection, and the accessor table.
type RecordType[R Bindable] struct {
	Name  string
	Sheet SheetSpec
	New   func() R

	fields map[string]Accessor[R]
}

// NewRecordType creates a record type. Accessors are matched to sheet
// columns by name.
func NewRecordType[R Bindable](name string, sheet SheetSpec, newFn func() R, fields ...Accessor[R]) *RecordType[R] {
	t := &RecordType[R]{
		Name:   name,
		Sheet:  sheet,
		New:    newFn,
		fields: make(map[string]Accessor[R], len(fields)),
	}
	for _, f := range fields {
		t.fields[f.Name] = f
	}
	return t
}

// Field returns the accessor registered under name.
func (t *RecordType[R]) Field(name string) (Accessor[R], bool) {
	a, ok := t.fields[name]
	return a, ok
}

// Title returns the sheet title, falling back to the type name.
func (t *RecordType[R]) Title() string {
	if t.Sheet.Title != "" {
		return t.Sheet.Title
	}
	return t.Name
}
