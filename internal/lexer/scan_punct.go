package lexer

import (
	"fmt"

	"changeset/internal/diag"
	"changeset/internal/token"
)

// scanPunct scans a single punctuation byte. Anything unrecognized is
// reported and returned as Invalid so the parser can resynchronize.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ':':
		return emit(token.Colon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '*':
		return emit(token.Star)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", ch))
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
