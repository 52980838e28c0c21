package gridbind

import (
	"io"
	"log"

	"github.com/kungfusheep/gridbind/grid"

	"github.com/google/uuid"
)

// Verdict is a veto hook's answer for one pending field assignment.
type Verdict int

const (
	NoOpinion Verdict = iota // apply the value
	Allow                    // apply the value
	Cancel                   // keep the field, revert the cell
)

func (v Verdict) String() string {
	switch v {
	case NoOpinion:
		return "no-opinion"
	case Allow:
		return "allow"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// VetoFunc is consulted before every grid-driven field assignment with the
// record, the target column and the coerced value.
type VetoFunc[R any] func(rec R, col Column, proposed any) Verdict

// Option configures a Binding.
type Option[R Bindable] func(*Binding[R])

// WithVeto installs the before-change hook.
func WithVeto[R Bindable](fn VetoFunc[R]) Option[R] {
	return func(b *Binding[R]) { b.veto = fn }
}

// WithBeforeCellEdit installs a hook that sees every cell edit after the
// inline chooser has run. It may change EditText or cancel.
func WithBeforeCellEdit[R Bindable](fn func(e *grid.BeforeEditEvent)) Option[R] {
	return func(b *Binding[R]) { b.beforeEdit = fn }
}

// WithChooser sets the inline editor used for enumeration and boolean
// columns. Without one those columns use the grid's text editor.
func WithChooser[R Bindable](c Chooser) Option[R] {
	return func(b *Binding[R]) { b.chooser = c }
}

// WithLogger sends diagnostics to l. By default they are discarded.
func WithLogger[R Bindable](l *log.Logger) Option[R] {
	return func(b *Binding[R]) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithDiagnosticHandler calls fn for every reported diagnostic.
func WithDiagnosticHandler[R Bindable](fn func(Diagnostic)) Option[R] {
	return func(b *Binding[R]) { b.onDiagnostic = fn }
}

// boundColumn joins a schema column to its accessor.
type boundColumn[R Bindable] struct {
	Column
	acc Accessor[R]
}

// Binding is one session between a grid and a record collection. It owns
// the schema, the size caches and both subscriptions; it observes but does
// not own the collection.
type Binding[R Bindable] struct {
	id      uuid.UUID
	grid    grid.Grid
	rt      *RecordType[R]
	schema  Schema
	columns map[string]*boundColumn[R]
	records *Collection[R]

	// size caches, written by resize notifications only
	widths  []int
	heights []int

	veto         VetoFunc[R]
	beforeEdit   func(e *grid.BeforeEditEvent)
	chooser      Chooser
	logger       *log.Logger
	onDiagnostic func(Diagnostic)
	diags        []Diagnostic
	unmapped     map[int]bool

	unsubRecords func()
	unsubGrid    func()
	active       bool
	detached     bool
}

// Attach binds records to g using the layout and accessors of rt. A nil
// collection starts empty. If rt describes no visible column the binding is
// inert: the grid is left untouched and a diagnostic is reported.
func Attach[R Bindable](g grid.Grid, rt *RecordType[R], records *Collection[R], opts ...Option[R]) *Binding[R] {
	if records == nil {
		records = NewCollection[R]()
	}
	b := &Binding[R]{
		id:       uuid.New(),
		grid:     g,
		rt:       rt,
		records:  records,
		columns:  make(map[string]*boundColumn[R]),
		unmapped: make(map[int]bool),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.init()
	return b
}

func (b *Binding[R]) init() {
	schema, err := DeriveSchema(b.rt.Sheet)
	b.schema = schema
	if err != nil {
		b.reportf(CodeNoVisibleColumns, -1, -1, "", err, "sheet %q: grid setup skipped", b.rt.Title())
		return
	}
	for i := range schema.Columns {
		c := schema.Columns[i]
		acc, ok := b.rt.Field(c.Field)
		if !ok {
			b.reportf(CodeMissingAccessor, -1, c.Index, c.Field, nil, "no accessor registered; column left unmapped")
			continue
		}
		b.columns[c.Field] = &boundColumn[R]{Column: c, acc: acc}
	}

	g := b.grid
	g.SetName(b.rt.Title())
	g.SetColumns(schema.Len())
	if g.Rows() < b.records.Len() {
		g.SetRows(b.records.Len())
	}
	applyFormats(g, schema)

	for _, c := range schema.Columns {
		h := grid.ColumnHeader{Text: c.Title, Width: c.Width, AutoWidth: c.AutoWidth, Visible: true}
		if _, ok := b.columns[c.Field]; ok {
			h.Tag = c.Field
		}
		g.SetColumnHeader(c.Index, h)
	}

	b.widths = make([]int, g.Columns())
	for i := range b.widths {
		b.widths[i] = g.ColumnWidth(i)
	}
	b.heights = make([]int, g.Rows())
	for i := range b.heights {
		b.heights[i] = g.RowHeight(i)
	}

	b.unsubGrid = g.AddListener(&gridListener[R]{b: b})
	b.subscribeRecords()
	b.active = true

	b.loadRecords()
}

func (b *Binding[R]) subscribeRecords() {
	b.unsubRecords = b.records.Subscribe(b.onRecordsChanged)
}

// Detach removes both subscriptions. The grid keeps its contents.
func (b *Binding[R]) Detach() {
	if b.detached {
		return
	}
	b.detached = true
	b.active = false
	if b.unsubRecords != nil {
		b.unsubRecords()
		b.unsubRecords = nil
	}
	if b.unsubGrid != nil {
		b.unsubGrid()
		b.unsubGrid = nil
	}
}

// UpdateRecord re-projects rec into its row, for changes made outside the grid.
func (b *Binding[R]) UpdateRecord(rec R) {
	if !b.active {
		return
	}
	row := rec.RowIndex()
	if b.records.At(row) != rec {
		row = b.records.IndexOf(rec)
	}
	if row < 0 {
		b.reportf(CodeRowOutOfRange, rec.RowIndex(), -1, "", nil, "record is not in the bound collection")
		return
	}
	b.writeRecordToRow(row, rec)
}

// ID identifies the session in log lines.
func (b *Binding[R]) ID() uuid.UUID { return b.id }

// Active reports whether the binding is attached and has a schema.
func (b *Binding[R]) Active() bool { return b.active }

// Schema returns the derived column schema.
func (b *Binding[R]) Schema() Schema { return b.schema }

// Records returns the bound collection.
func (b *Binding[R]) Records() *Collection[R] { return b.records }

// Grid returns the bound grid.
func (b *Binding[R]) Grid() grid.Grid { return b.grid }

// recoverIn stops a panic in host code from escaping a notification handler.
func (b *Binding[R]) recoverIn(what string) {
	if r := recover(); r != nil {
		b.reportf(CodeHandlerPanic, -1, -1, "", nil, "%s: recovered: %v", what, r)
	}
}
