package lexer

import (
	"changeset/internal/diag"
	"changeset/internal/source"
)

// ReporterAdapter bridges the lexer's Reporter to a diag.Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Report implements Reporter; every lexer finding is an error.
func (r *ReporterAdapter) Report(code diag.Code, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(diag.NewError(code, span, msg))
}
