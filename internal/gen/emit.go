// Package gen renders parsed declaration files into Go source.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"

	"changeset/internal/ast"
)

// optionImportPath is the package providing Option[T] for generated fields.
const optionImportPath = "changeset/option"

// header marks the output as machine-generated, in the form the Go tooling
// convention expects.
const header = "// Code generated by changeset; DO NOT EDIT."

type Options struct {
	// Package is the package clause of the generated file.
	Package string
}

// File renders one parsed declaration file into formatted Go source.
// On a formatting failure the unformatted source is returned alongside the
// error so callers can show what the emitter produced.
func File(f *ast.File, opts Options) ([]byte, error) {
	e := emitter{file: f, opts: opts}
	raw := e.render()
	formatted, err := format.Source(raw)
	if err != nil {
		return raw, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

type emitter struct {
	file *ast.File
	opts Options
	buf  bytes.Buffer
}

func (e *emitter) printf(f string, args ...any) {
	fmt.Fprintf(&e.buf, f, args...)
}

func (e *emitter) render() []byte {
	e.printf("%s\n\npackage %s\n", header, e.opts.Package)
	e.emitImports()
	for i := range e.file.Decls {
		e.emitDecl(&e.file.Decls[i])
	}
	return e.buf.Bytes()
}

// emitImports writes the import block: the declaration file's imports that
// field types actually reference, then the option package when any field
// exists. go/format does not regroup imports, so they come out sorted here.
func (e *emitter) emitImports() {
	used := make(map[string]bool)
	hasFields := false
	for i := range e.file.Decls {
		for j := range e.file.Decls[i].Fields {
			hasFields = true
			for _, q := range e.file.Decls[i].Fields[j].Type.Qualifiers(nil) {
				used[q] = true
			}
		}
	}

	var paths []string
	for _, imp := range e.file.Imports {
		if used[imp.Qualifier()] {
			paths = append(paths, imp.Path)
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 && !hasFields {
		return
	}
	e.printf("\nimport (\n")
	for _, p := range paths {
		e.printf("\t%q\n", p)
	}
	if hasFields {
		if len(paths) > 0 {
			e.printf("\n")
		}
		e.printf("\t%q\n", optionImportPath)
	}
	e.printf(")\n")
}

func (e *emitter) emitDoc(doc []string, indent string) {
	for _, line := range doc {
		if line == "" {
			e.printf("%s//\n", indent)
			continue
		}
		e.printf("%s// %s\n", indent, line)
	}
}

func (e *emitter) emitDecl(d *ast.ChangesetDecl) {
	e.emitStruct(d)
	e.emitCtor(d)
	for i := range d.Fields {
		e.emitSetter(d, &d.Fields[i])
	}
	e.emitMerge(d)
	e.emitHasChanged(d)
}

func (e *emitter) emitStruct(d *ast.ChangesetDecl) {
	e.printf("\n")
	e.emitDoc(d.Doc, "")
	e.printf("type %s struct {\n", d.GoName())
	for i := range d.Fields {
		f := &d.Fields[i]
		e.emitDoc(f.Doc, "\t")
		e.printf("\t%s option.Option[%s]\n", f.GoFieldName(), f.Type.GoString())
	}
	e.printf("}\n")
}

func (e *emitter) emitCtor(d *ast.ChangesetDecl) {
	name := d.GoName()
	e.printf("\n// %s returns a %s with no fields set.\n", d.CtorName(), name)
	e.printf("func %s() %s {\n\treturn %s{}\n}\n", d.CtorName(), name, name)
}

// emitSetter writes the fluent per-field setter, plus a package-level
// generic variant when the field type has a predeclared core. Methods cannot
// carry type parameters, so accepting defined types with a matching
// underlying type takes a free function with a '~core' constraint.
func (e *emitter) emitSetter(d *ast.ChangesetDecl, f *ast.FieldDecl) {
	name := d.GoName()
	goField := f.GoFieldName()
	goType := f.Type.GoString()

	e.printf("\n// %s returns a copy of the changeset with %s set.\n", f.SetterName(), goField)
	e.printf("func (c %s) %s(v %s) %s {\n", name, f.SetterName(), goType, name)
	e.printf("\tc.%s = option.Some(v)\n\treturn c\n}\n", goField)

	core := f.Type.CoreType()
	if core == "" {
		return
	}
	fn := name + f.SetterName()
	e.printf("\n// %s is %s for any value whose underlying type is %s.\n", fn, f.SetterName(), core)
	e.printf("func %s[S ~%s](c %s, v S) %s {\n", fn, core, name, name)
	e.printf("\tc.%s = option.Some(%s(v))\n\treturn c\n}\n", goField, core)
}

// emitMerge writes the right-biased merge: every field set in other
// overwrites the corresponding field of the receiver.
func (e *emitter) emitMerge(d *ast.ChangesetDecl) {
	name := d.GoName()
	e.printf("\n// Merge copies every set field of other into c, overwriting any\n")
	e.printf("// value already present. Unset fields of other are ignored.\n")
	e.printf("func (c *%s) Merge(other %s) {\n", name, name)
	for i := range d.Fields {
		goField := d.Fields[i].GoFieldName()
		e.printf("\tif other.%s.IsSome() {\n\t\tc.%s = other.%s\n\t}\n", goField, goField, goField)
	}
	e.printf("}\n")
}

func (e *emitter) emitHasChanged(d *ast.ChangesetDecl) {
	name := d.GoName()
	e.printf("\n// HasChanged reports whether at least one field is set.\n")
	e.printf("func (c %s) HasChanged() bool {\n", name)
	if len(d.Fields) == 0 {
		e.printf("\treturn false\n}\n")
		return
	}
	e.printf("\treturn ")
	for i := range d.Fields {
		if i > 0 {
			e.printf(" ||\n\t\t")
		}
		e.printf("c.%s.IsSome()", d.Fields[i].GoFieldName())
	}
	e.printf("\n}\n")
}
