package lexer

import (
	"changeset/internal/diag"
	"changeset/internal/token"
)

// scanString scans a double-quoted import path. Token.Text is the unquoted
// content; escapes are not interpreted (import paths never need them).
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	contentStart := lx.cursor.Off
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' || b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	contentEnd := lx.cursor.Off

	if !lx.cursor.Eat('"') {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnterminatedString, sp, "unterminated string")
		return token.Token{
			Kind: token.Invalid,
			Span: sp,
			Text: string(lx.file.Content[contentStart:contentEnd]),
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[contentStart:contentEnd]),
	}
}
