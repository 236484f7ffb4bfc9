package token

// Kind represents the category of a declaration-file token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwPub represents the 'pub' visibility marker.
	KwPub // pub
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwMap represents the 'map' keyword inside type expressions.
	KwMap // map

	// StringLit represents a quoted import path.
	StringLit

	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Colon represents ':'.
	Colon // :
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Star represents '*'.
	Star // *
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwPub:     "KwPub",
	KwImport:  "KwImport",
	KwMap:     "KwMap",
	StringLit: "StringLit",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Colon:     "Colon",
	Comma:     "Comma",
	Dot:       "Dot",
	Star:      "Star",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
