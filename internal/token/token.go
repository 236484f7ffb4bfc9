package token

import (
	"changeset/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsPunct reports whether the token is a punctuation token.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LBrace, RBrace, LBracket, RBracket, Colon, Comma, Dot, Star:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwPub, KwImport, KwMap:
		return true
	default:
		return false
	}
}

// DocText extracts the documentation text from the token's leading trivia:
// the contiguous run of '///' lines directly before the token, with the
// marker and a single following space stripped. Returns nil when the token
// carries no documentation.
func (t Token) DocText() []string {
	var doc []string
	for _, tr := range t.Leading {
		switch tr.Kind {
		case TriviaDocLine:
			doc = append(doc, trimDocMarker(tr.Text))
		case TriviaLineComment, TriviaBlockComment:
			// Plain comments break a doc run; only lines adjacent to the
			// token (separated by whitespace trivia at most) count.
			doc = nil
		}
	}
	return doc
}

func trimDocMarker(text string) string {
	s := text
	if len(s) >= 3 && s[:3] == "///" {
		s = s[3:]
	}
	if len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	return s
}
