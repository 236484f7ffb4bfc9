package ast

import "changeset/internal/source"

// File is one parsed declaration file.
type File struct {
	Span    source.Span
	Imports []ImportDecl
	Decls   []ChangesetDecl
}

// ImportDecl makes a package available to field type expressions.
type ImportDecl struct {
	Span source.Span
	Path string
}

// Qualifier returns the package name the import binds, i.e. the last
// slash-separated segment of the path.
func (d ImportDecl) Qualifier() string {
	path := d.Path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

// ChangesetDecl is one changeset declaration: visibility, name, struct-level
// documentation, and an ordered field list.
type ChangesetDecl struct {
	Span     source.Span
	NameSpan source.Span
	Vis      Visibility
	Name     string
	Doc      []string
	Fields   []FieldDecl
}

// FieldDecl is a (name, type, documentation) triple.
type FieldDecl struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Type     *TypeExpr
	Doc      []string
}
