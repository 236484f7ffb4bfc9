package gen

import (
	"strings"
	"testing"

	"changeset/internal/ast"
	"changeset/internal/diag"
	"changeset/internal/lexer"
	"changeset/internal/parser"
	"changeset/internal/source"
)

func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.chg", []byte(src))
	bag := diag.NewBag(64)

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	res := parser.ParseFile(fs, lx, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("source failed to parse: %v", bag.Items())
	}
	return res.File
}

func render(t *testing.T, src string) string {
	t.Helper()
	out, err := File(parseFile(t, src), Options{Package: "model"})
	if err != nil {
		t.Fatalf("File: %v\n%s", err, out)
	}
	return string(out)
}

func wantContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("generated output missing %q\n---\n%s", w, out)
		}
	}
}

func wantNotContains(t *testing.T, out string, donts ...string) {
	t.Helper()
	for _, d := range donts {
		if strings.Contains(out, d) {
			t.Errorf("generated output must not contain %q\n---\n%s", d, out)
		}
	}
}

func TestFileHeaderAndPackage(t *testing.T) {
	out := render(t, `User { name: string }`)
	if !strings.HasPrefix(out, "// Code generated by changeset; DO NOT EDIT.\n") {
		t.Fatalf("missing generated-code header:\n%s", out)
	}
	wantContains(t, out, "package model\n")
}

func TestFileStructFields(t *testing.T) {
	out := render(t, `
pub User {
	name: string,
	created_at: int64,
}
`)
	// gofmt aligns the type column, so the longest field name is the only
	// one followed by a single space.
	wantContains(t, out,
		"type User struct {",
		"option.Option[string]",
		"CreatedAt option.Option[int64]",
	)
}

func TestFileVisibility(t *testing.T) {
	out := render(t, `
pub User { name: string }

draft { note: string }
`)
	wantContains(t, out,
		"func NewUser() User",
		"type draft struct {",
		"func newDraft() draft",
		"func (c draft) WithNote(v string) draft",
	)
	wantNotContains(t, out, "type Draft struct")
}

func TestFileSetters(t *testing.T) {
	out := render(t, `
import "time"

pub User {
	age: int,
	seen: time.Time,
}
`)
	wantContains(t, out,
		"func (c User) WithAge(v int) User",
		"c.Age = option.Some(v)",
		"func (c User) WithSeen(v time.Time) User",
	)
}

func TestFileGenericSettersOnlyForCoreTypes(t *testing.T) {
	out := render(t, `
import "time"

pub User {
	age: int,
	seen: time.Time,
	tags: []string,
}
`)
	// Defined types with a predeclared underlying type go through the
	// package-level generic setter; composite and qualified types do not.
	wantContains(t, out,
		"func UserWithAge[S ~int](c User, v S) User",
		"c.Age = option.Some(int(v))",
	)
	wantNotContains(t, out,
		"UserWithSeen[",
		"UserWithTags[",
	)
}

func TestFileMergeRightBias(t *testing.T) {
	out := render(t, `
pub User {
	name: string,
	age: int,
}
`)
	wantContains(t, out,
		"func (c *User) Merge(other User)",
		"if other.Name.IsSome() {",
		"c.Name = other.Name",
		"if other.Age.IsSome() {",
	)
}

func TestFileHasChanged(t *testing.T) {
	out := render(t, `
pub User {
	name: string,
	age: int,
}
`)
	wantContains(t, out,
		"func (c User) HasChanged() bool",
		"c.Name.IsSome() ||",
		"c.Age.IsSome()",
	)
}

func TestFileEmptyChangeset(t *testing.T) {
	out := render(t, `pub Empty { }`)
	wantContains(t, out, "func (c Empty) HasChanged() bool", "return false")
}

func TestFileDocPropagation(t *testing.T) {
	out := render(t, `
/// Tracks pending edits to a user profile.
/// Built by the service layer.
pub User {
	/// Display name shown in the UI.
	name: string,
}
`)
	wantContains(t, out,
		"// Tracks pending edits to a user profile.\n// Built by the service layer.\ntype User struct {",
		"// Display name shown in the UI.\n\tName option.Option[string]",
	)
}

func TestFileImports(t *testing.T) {
	out := render(t, `
import "time"
import "net/url"

pub User {
	seen: time.Time,
	home: *url.URL,
}
`)
	wantContains(t, out,
		"\"net/url\"",
		"\"time\"",
		"\"changeset/option\"",
	)
}

func TestFileUnusedImportOmitted(t *testing.T) {
	out := render(t, `
import "time"

pub User { name: string }
`)
	wantNotContains(t, out, "\"time\"")
}

func TestFileCompositeTypes(t *testing.T) {
	out := render(t, `
pub Filter {
	labels: map[string][]string,
	parent: *Filter,
}
`)
	wantContains(t, out,
		"Labels option.Option[map[string][]string]",
		"Parent option.Option[*Filter]",
	)
}
