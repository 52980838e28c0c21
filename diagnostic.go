package gridbind

import (
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeNoVisibleColumns = "schema.no-visible-columns"
	CodeMissingAccessor  = "schema.missing-accessor"
	CodeUnmappedColumn   = "projection.unmapped-column"
	CodeCoercion         = "coerce.failed"
	CodeRowOutOfRange    = "projection.row-out-of-range"
	CodeHandlerPanic     = "handler.panic"
)

// Diagnostic is a recoverable condition the binding skipped over.
// Row and Col are -1 when they do not apply.
type Diagnostic struct {
	Code    string
	Message string
	Field   string
	Row     int
	Col     int
	Err     error
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	var pos string
	if d.Row >= 0 {
		pos += fmt.Sprintf("R%d", d.Row)
	}
	if d.Col >= 0 {
		pos += fmt.Sprintf("C%d", d.Col)
	}
	if pos != "" {
		prefix = append(prefix, pos)
	}
	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := fmt.Sprintf("[%s] %s", d.Code, d.Message)
	if d.Err != nil {
		msg += ": " + d.Err.Error()
	}
	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}
	return msg
}

// report records d, logs it and hands it to the diagnostic handler.
func (b *Binding[R]) report(d Diagnostic) {
	b.diags = append(b.diags, d)
	b.logger.Printf("gridbind[%s] %s", b.id.String()[:8], d)
	if b.onDiagnostic != nil {
		b.onDiagnostic(d)
	}
}

func (b *Binding[R]) reportf(code string, row, col int, field string, err error, format string, args ...any) {
	b.report(Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
		Row:     row,
		Col:     col,
		Err:     err,
	})
}

// Diagnostics returns every condition reported since the binding was
// attached or last cleared.
func (b *Binding[R]) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), b.diags...)
}

// ClearDiagnostics forgets reported diagnostics.
func (b *Binding[R]) ClearDiagnostics() {
	b.diags = nil
}
