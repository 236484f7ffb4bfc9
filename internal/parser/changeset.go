package parser

import (
	"changeset/internal/ast"
	"changeset/internal/diag"
	"changeset/internal/token"
)

// parseChangeset parses one declaration:
//
//	doc? 'pub'? NAME '{' field (',' field)* ','? '}'
//
// Struct-level documentation rides on the leading trivia of the first token
// ('pub' when present, the name otherwise).
func (p *Parser) parseChangeset() bool {
	first := p.lx.Peek()
	doc := first.DocText()

	vis := ast.VisPrivate
	if p.at(token.KwPub) {
		p.advance()
		vis = ast.VisPublic
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected changeset name")
	if !ok {
		return false
	}

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after changeset name"); !ok {
		return false
	}

	decl := ast.ChangesetDecl{
		Span:     first.Span,
		NameSpan: nameTok.Span,
		Vis:      vis,
		Name:     nameTok.Text,
		Doc:      doc,
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		field, ok := p.parseField()
		if !ok {
			p.resyncField()
			continue
		}
		decl.Fields = append(decl.Fields, field)

		// Fields are comma-separated; the trailing comma is optional.
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.RBrace) {
			p.err(diag.SynExpectComma, "expected ',' or '}' after field")
			p.resyncField()
		}
	}

	rbrace, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close changeset '"+decl.Name+"'")
	if !ok {
		return false
	}
	decl.Span = decl.Span.Cover(rbrace.Span)

	if len(decl.Fields) == 0 {
		p.report(diag.SynEmptyChangeset, diag.SevWarning, decl.NameSpan,
			"changeset '"+decl.Name+"' has no fields")
	}

	p.file.Decls = append(p.file.Decls, decl)
	return true
}

// parseField parses: doc? FIELD_NAME ':' TYPE
func (p *Parser) parseField() (ast.FieldDecl, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
	if !ok {
		return ast.FieldDecl{}, false
	}

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name '"+nameTok.Text+"'"); !ok {
		return ast.FieldDecl{}, false
	}

	typ, ok := p.parseType()
	if !ok {
		return ast.FieldDecl{}, false
	}

	return ast.FieldDecl{
		Span:     nameTok.Span.Cover(typ.Span),
		NameSpan: nameTok.Span,
		Name:     nameTok.Text,
		Type:     typ,
		Doc:      nameTok.DocText(),
	}, true
}

// resyncField recovers inside a field list: skip to the next ',' (consumed)
// or stop at '}' / EOF.
func (p *Parser) resyncField() {
	for {
		switch p.lx.Peek().Kind {
		case token.Comma:
			p.advance()
			return
		case token.RBrace, token.EOF:
			return
		default:
			p.advance()
		}
	}
}
