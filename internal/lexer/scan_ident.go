package lexer

import (
	"golang.org/x/text/unicode/norm"

	"changeset/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks it via LookupKeyword.
// Keywords are case-sensitive (lowercase only). Unicode identifiers are
// normalized to NFC so visually identical names compare equal downstream.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp}
	}
	ascii := true
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanPunct()
		}
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if b >= utf8RuneSelf {
				ascii = false
				break
			}
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanPunct()
		}
		ascii = false
		lx.bumpRune()
	}

	if !ascii {
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if !ascii {
		text = norm.NFC.String(text)
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
