package parser

import (
	"changeset/internal/ast"
	"changeset/internal/diag"
	"changeset/internal/token"
)

// parseImport parses: 'import' STRING
func (p *Parser) parseImport() bool {
	kw := p.advance() // 'import'

	pathTok, ok := p.expect(token.StringLit, diag.SynExpectImportPath, "expected quoted import path after 'import'")
	if !ok {
		return false
	}
	if pathTok.Text == "" {
		p.report(diag.SynExpectImportPath, diag.SevError, pathTok.Span, "import path must not be empty")
		return false
	}

	p.file.Imports = append(p.file.Imports, ast.ImportDecl{
		Span: kw.Span.Cover(pathTok.Span),
		Path: pathTok.Text,
	})
	return true
}
