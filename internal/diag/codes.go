package diag

import (
	"fmt"
)

// Code is a stable identifier for a diagnostic kind.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntactic
	SynUnexpectedTopLevel Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectColon        Code = 2003
	SynExpectType         Code = 2004
	SynExpectLBrace       Code = 2005
	SynExpectRBrace       Code = 2006
	SynExpectRBracket     Code = 2007
	SynExpectComma        Code = 2008
	SynExpectImportPath   Code = 2009
	SynEmptyChangeset     Code = 2010

	// Semantic
	SemaDuplicateField     Code = 3001
	SemaReservedFieldName  Code = 3002
	SemaFieldMatchesType   Code = 3003
	SemaDuplicateChangeset Code = 3004
	SemaUnknownQualifier   Code = 3005
	SemaUnusedImport       Code = 3006
	SemaDuplicateImport    Code = 3007
	SemaNotExportable      Code = 3008
	SemaFieldNameConflict  Code = 3009
	SemaBadFieldName       Code = 3010

	// I/O
	IOLoadFileError Code = 4001

	// Generation
	GenFormatError Code = 5001
	GenWriteError  Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectColon:              "Expect colon",
	SynExpectType:               "Expect type",
	SynExpectLBrace:             "Expect '{'",
	SynExpectRBrace:             "Expect '}'",
	SynExpectRBracket:           "Expect ']'",
	SynExpectComma:              "Expect comma",
	SynExpectImportPath:         "Expect quoted import path",
	SynEmptyChangeset:           "Changeset has no fields",
	SemaDuplicateField:          "Duplicate field",
	SemaReservedFieldName:       "Field name is reserved",
	SemaFieldMatchesType:        "Field name collides with changeset name",
	SemaDuplicateChangeset:      "Duplicate changeset declaration",
	SemaUnknownQualifier:        "Unknown package qualifier",
	SemaUnusedImport:            "Unused import",
	SemaDuplicateImport:         "Duplicate import",
	SemaNotExportable:           "Public changeset name is not exportable",
	SemaFieldNameConflict:       "Field names map to the same Go name",
	SemaBadFieldName:            "Field name does not map to a Go identifier",
	IOLoadFileError:             "I/O load file error",
	GenFormatError:              "Generated source failed to format",
	GenWriteError:               "Failed to write generated file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("GEN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
