package ast

import "changeset/internal/source"

// TypeKind classifies the restricted type-expression grammar of field types.
type TypeKind uint8

const (
	// TypeName is a bare identifier: string, int, MyType.
	TypeName TypeKind = iota
	// TypeQualified is a package-qualified name: time.Time.
	TypeQualified
	// TypePointer is *T.
	TypePointer
	// TypeSlice is []T.
	TypeSlice
	// TypeMap is map[K]V.
	TypeMap
)

// TypeExpr is one node of a field type. Elem holds the pointee/element type
// (pointer, slice) or the map value; Key holds the map key.
type TypeExpr struct {
	Kind      TypeKind
	Span      source.Span
	Name      string // TypeName: the identifier; TypeQualified: the member name
	Qualifier string // TypeQualified: the package qualifier
	Key       *TypeExpr
	Elem      *TypeExpr
}

// GoString renders the type expression as Go source text.
func (t *TypeExpr) GoString() string {
	switch t.Kind {
	case TypeName:
		return t.Name
	case TypeQualified:
		return t.Qualifier + "." + t.Name
	case TypePointer:
		return "*" + t.Elem.GoString()
	case TypeSlice:
		return "[]" + t.Elem.GoString()
	case TypeMap:
		return "map[" + t.Key.GoString() + "]" + t.Elem.GoString()
	}
	return ""
}

// Qualifiers appends every package qualifier referenced by the type to out.
func (t *TypeExpr) Qualifiers(out []string) []string {
	switch t.Kind {
	case TypeQualified:
		out = append(out, t.Qualifier)
	case TypePointer, TypeSlice:
		out = t.Elem.Qualifiers(out)
	case TypeMap:
		out = t.Key.Qualifiers(out)
		out = t.Elem.Qualifiers(out)
	}
	return out
}

// coreConvertible lists predeclared types usable as a '~U' constraint core
// for the generated generic setter.
var coreConvertible = map[string]bool{
	"bool":    true,
	"string":  true,
	"int":     true,
	"int8":    true,
	"int16":   true,
	"int32":   true,
	"int64":   true,
	"uint":    true,
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"uintptr": true,
	"float32": true,
	"float64": true,
	"byte":    true,
	"rune":    true,
}

// CoreType returns the predeclared core type usable in a '~U' generic
// constraint, or "" when the type has none (named, qualified, or composite
// types).
func (t *TypeExpr) CoreType() string {
	if t.Kind == TypeName && coreConvertible[t.Name] {
		return t.Name
	}
	return ""
}
