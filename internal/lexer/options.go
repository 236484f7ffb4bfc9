package lexer

import (
	"changeset/internal/diag"
	"changeset/internal/source"
)

// Reporter is a thin interface so the lexer does not format diagnostics
// itself; it only calls out with the code, span, and message.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: errors are dropped, lexing continues
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
