package parser

import (
	"slices"

	"changeset/internal/ast"
	"changeset/internal/diag"
	"changeset/internal/lexer"
	"changeset/internal/source"
	"changeset/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the maximum error count is reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File *ast.File
	Bag  *diag.Bag
}

// Parser is per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	file     *ast.File
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseFile is the entry point for parsing one declaration file.
// It requires an already constructed lexer (over a source.File).
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		fs:       fs,
		file:     &ast.File{Span: lx.EmptySpan()},
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseItems()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseItems is the top-level loop: imports first, then declarations.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		if !p.parseItem() {
			p.resyncTop()
		}
	}
	p.file.Span = startSpan.Cover(p.lastSpan)
}

// parseItem dispatches on the first token of a top-level construct.
func (p *Parser) parseItem() bool {
	switch p.lx.Peek().Kind {
	case token.KwImport:
		return p.parseImport()
	case token.KwPub, token.Ident:
		return p.parseChangeset()
	default:
		p.err(diag.SynUnexpectedTopLevel, "expected a changeset declaration or import")
		return false
	}
}

// resyncTop recovers from a top-level error: skip until the start of the
// next item or EOF.
func (p *Parser) resyncTop() {
	p.advance() // skip the offending token
	for {
		k := p.lx.Peek().Kind
		if k == token.EOF || isTopLevelStarter(k) {
			return
		}
		p.advance()
	}
}

// isTopLevelStarter reports whether k begins a top-level item.
func isTopLevelStarter(k token.Kind) bool {
	switch k {
	case token.KwImport, token.KwPub:
		return true
	default:
		return false
	}
}
