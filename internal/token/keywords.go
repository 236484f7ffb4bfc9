package token

var keywords = map[string]Kind{
	"pub":    KwPub,
	"import": KwImport,
	"map":    KwMap,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive: only the lowercase form is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
