// Package sema validates parsed declaration files before generation.
// All findings are definition-time diagnostics; generation refuses files
// with errors.
package sema

import (
	"fmt"
	"unicode"

	"changeset/internal/ast"
	"changeset/internal/diag"
	"changeset/internal/source"
)

// Check runs every semantic check over the file, reporting findings to r.
func Check(file *ast.File, r diag.Reporter) {
	c := checker{file: file, reporter: r}
	c.checkImports()
	c.checkDecls()
	c.checkQualifiers()
}

type checker struct {
	file     *ast.File
	reporter diag.Reporter

	usedImports map[string]bool
}

func (c *checker) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes ...diag.Note) {
	if c.reporter == nil {
		return
	}
	c.reporter.Report(code, sev, sp, msg, notes)
}

func (c *checker) checkImports() {
	seen := make(map[string]source.Span, len(c.file.Imports))
	for _, imp := range c.file.Imports {
		if prev, ok := seen[imp.Path]; ok {
			c.report(diag.SemaDuplicateImport, diag.SevWarning, imp.Span,
				fmt.Sprintf("duplicate import %q", imp.Path),
				diag.Note{Span: prev, Msg: "first imported here"})
			continue
		}
		seen[imp.Path] = imp.Span
	}
}

// checkDecls validates each declaration and the uniqueness of generated
// type names within the file.
func (c *checker) checkDecls() {
	declNames := make(map[string]source.Span, len(c.file.Decls))
	for i := range c.file.Decls {
		decl := &c.file.Decls[i]

		if !decl.Exportable() {
			c.report(diag.SemaNotExportable, diag.SevError, decl.NameSpan,
				fmt.Sprintf("public changeset '%s' needs a name that can start with an uppercase letter", decl.Name))
		}

		goName := decl.GoName()
		if prev, ok := declNames[goName]; ok {
			c.report(diag.SemaDuplicateChangeset, diag.SevError, decl.NameSpan,
				fmt.Sprintf("changeset '%s' generates type '%s' which is already declared in this file", decl.Name, goName),
				diag.Note{Span: prev, Msg: "previous declaration here"})
		} else {
			declNames[goName] = decl.NameSpan
		}

		c.checkFields(decl)
	}
}

// Generated member names reserved by the expansion itself. A field mapping
// onto one of these would redeclare the method on the generated type, so it
// is rejected up front with a diagnostic naming the declaration and field.
var reservedMembers = map[string]string{
	"Merge":      "the merge method",
	"HasChanged": "the has-changed predicate",
}

// checkFields validates field uniqueness inside one declaration. Every
// generated member name (struct field, fluent setter, Merge, HasChanged)
// must be distinct after the Go-name mapping, and distinct from the
// generated type name itself.
func (c *checker) checkFields(decl *ast.ChangesetDecl) {
	rawSeen := make(map[string]source.Span, len(decl.Fields))
	memberSeen := make(map[string]source.Span, 2*len(decl.Fields))

	for i := range decl.Fields {
		field := &decl.Fields[i]

		if prev, ok := rawSeen[field.Name]; ok {
			c.report(diag.SemaDuplicateField, diag.SevError, field.NameSpan,
				fmt.Sprintf("duplicate field '%s' in changeset '%s'", field.Name, decl.Name),
				diag.Note{Span: prev, Msg: "first declared here"})
			continue
		}
		rawSeen[field.Name] = field.NameSpan

		goField := field.GoFieldName()
		if !validIdentifier(goField) {
			c.report(diag.SemaBadFieldName, diag.SevError, field.NameSpan,
				fmt.Sprintf("field '%s' in changeset '%s' does not map to a Go identifier", field.Name, decl.Name))
			continue
		}
		if why, ok := reservedMembers[goField]; ok {
			c.report(diag.SemaReservedFieldName, diag.SevError, field.NameSpan,
				fmt.Sprintf("field '%s' in changeset '%s' is reserved for %s", field.Name, decl.Name, why))
			continue
		}
		if goField == decl.GoName() {
			c.report(diag.SemaFieldMatchesType, diag.SevError, field.NameSpan,
				fmt.Sprintf("field '%s' in changeset '%s' maps to '%s', the changeset's own type name", field.Name, decl.Name, goField))
			continue
		}

		for _, member := range []string{goField, field.SetterName()} {
			if prev, ok := memberSeen[member]; ok {
				c.report(diag.SemaFieldNameConflict, diag.SevError, field.NameSpan,
					fmt.Sprintf("field '%s' in changeset '%s' maps to generated name '%s' which is already taken", field.Name, decl.Name, member),
					diag.Note{Span: prev, Msg: "conflicting field here"})
			} else {
				memberSeen[member] = field.NameSpan
			}
		}
	}
}

// validIdentifier reports whether name is a legal Go identifier. The name
// mapping drops underscores, so a field like '_' maps to nothing at all,
// and '_1' maps to a name starting with a digit.
func validIdentifier(name string) bool {
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return name != ""
}

// checkQualifiers verifies that every package qualifier used by a field type
// is bound by an import, and that every import is used by some field type.
func (c *checker) checkQualifiers() {
	imported := make(map[string]source.Span, len(c.file.Imports))
	for _, imp := range c.file.Imports {
		imported[imp.Qualifier()] = imp.Span
	}
	c.usedImports = make(map[string]bool, len(imported))

	for i := range c.file.Decls {
		decl := &c.file.Decls[i]
		for j := range decl.Fields {
			field := &decl.Fields[j]
			for _, q := range field.Type.Qualifiers(nil) {
				if _, ok := imported[q]; !ok {
					c.report(diag.SemaUnknownQualifier, diag.SevError, field.Type.Span,
						fmt.Sprintf("field '%s' in changeset '%s' references package '%s' which is not imported", field.Name, decl.Name, q))
					continue
				}
				c.usedImports[q] = true
			}
		}
	}

	for _, imp := range c.file.Imports {
		if !c.usedImports[imp.Qualifier()] {
			c.report(diag.SemaUnusedImport, diag.SevWarning, imp.Span,
				fmt.Sprintf("import %q is unused", imp.Path))
		}
	}
}
