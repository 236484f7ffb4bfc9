package ast

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase maps a declaration-file name onto its exported Go form:
// underscores are dropped and the following letter uppercased, and the
// first letter is uppercased. "created_at" -> "CreatedAt", "name" -> "Name".
func CamelCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upperNext := true
	for _, r := range name {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func lowerFirst(name string) string {
	r, sz := utf8.DecodeRuneInString(name)
	if sz == 0 {
		return name
	}
	return string(unicode.ToLower(r)) + name[sz:]
}

func upperFirst(name string) string {
	r, sz := utf8.DecodeRuneInString(name)
	if sz == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[sz:]
}

// GoName returns the generated type name: the exported form for public
// declarations, the unexported form otherwise. Visibility in Go is spelled
// through identifier case, so the marker decides the case of the first rune.
func (d *ChangesetDecl) GoName() string {
	if d.Vis == VisPublic {
		return upperFirst(d.Name)
	}
	return lowerFirst(d.Name)
}

// Exportable reports whether the declaration name can carry the requested
// visibility: a public changeset needs a name whose first rune has an
// uppercase form.
func (d *ChangesetDecl) Exportable() bool {
	if d.Vis != VisPublic {
		return true
	}
	r, sz := utf8.DecodeRuneInString(d.Name)
	if sz == 0 {
		return false
	}
	return unicode.IsUpper(unicode.ToUpper(r))
}

// CtorName returns the generated constructor name: NewN for public
// declarations, newN for private ones (N keeps its exported spelling so
// "newUserChangeset" stays readable).
func (d *ChangesetDecl) CtorName() string {
	if d.Vis == VisPublic {
		return "New" + upperFirst(d.Name)
	}
	return "new" + upperFirst(d.Name)
}

// GoFieldName returns the generated struct field name. Fields are always
// exported so Merge works across packages for public changesets.
func (f *FieldDecl) GoFieldName() string {
	return CamelCase(f.Name)
}

// SetterName returns the generated fluent setter name. The Rust original
// names the setter after the field itself; in Go a method may not share its
// name with a struct field, so setters take the With prefix.
func (f *FieldDecl) SetterName() string {
	return "With" + f.GoFieldName()
}
