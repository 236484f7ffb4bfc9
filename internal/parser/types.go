package parser

import (
	"changeset/internal/ast"
	"changeset/internal/diag"
	"changeset/internal/token"
)

// parseType parses the restricted Go type-expression grammar:
//
//	TYPE := IDENT | IDENT '.' IDENT | '*' TYPE | '[' ']' TYPE
//	      | 'map' '[' TYPE ']' TYPE
func (p *Parser) parseType() (*ast.TypeExpr, bool) {
	switch p.lx.Peek().Kind {
	case token.Star:
		star := p.advance()
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.TypeExpr{
			Kind: ast.TypePointer,
			Span: star.Span.Cover(elem.Span),
			Elem: elem,
		}, true

	case token.LBracket:
		lb := p.advance()
		if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' in slice type"); !ok {
			return nil, false
		}
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.TypeExpr{
			Kind: ast.TypeSlice,
			Span: lb.Span.Cover(elem.Span),
			Elem: elem,
		}, true

	case token.KwMap:
		kw := p.advance()
		if _, ok := p.expect(token.LBracket, diag.SynExpectType, "expected '[' after 'map'"); !ok {
			return nil, false
		}
		key, ok := p.parseType()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' after map key type"); !ok {
			return nil, false
		}
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.TypeExpr{
			Kind: ast.TypeMap,
			Span: kw.Span.Cover(elem.Span),
			Key:  key,
			Elem: elem,
		}, true

	case token.Ident:
		name := p.advance()
		if p.at(token.Dot) {
			p.advance()
			member, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '.'")
			if !ok {
				return nil, false
			}
			return &ast.TypeExpr{
				Kind:      ast.TypeQualified,
				Span:      name.Span.Cover(member.Span),
				Qualifier: name.Text,
				Name:      member.Text,
			}, true
		}
		return &ast.TypeExpr{
			Kind: ast.TypeName,
			Span: name.Span,
			Name: name.Text,
		}, true

	default:
		p.err(diag.SynExpectType, "expected a type")
		return nil, false
	}
}
