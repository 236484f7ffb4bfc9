package parser

import (
	"testing"

	"changeset/internal/ast"
	"changeset/internal/diag"
	"changeset/internal/lexer"
	"changeset/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.chg", []byte(src))
	bag := diag.NewBag(32)

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	res := ParseFile(fs, lx, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return res.File, bag
}

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	file, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	return file
}

func wantCode(t *testing.T, bag *diag.Bag, code diag.Code) {
	t.Helper()
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("expected %s, got %v", code.ID(), bag.Items())
}

func TestParseFullFile(t *testing.T) {
	file := mustParse(t, `
import "time"
import "net/url"

/// Pending edits to a user profile.
pub UserChangeset {
	/// Display name.
	name: string,
	age: int,
	home: *url.URL,
	seen_at: time.Time,
	tags: map[string][]string,
}

draft {
	note: string
}
`)

	if len(file.Imports) != 2 {
		t.Fatalf("imports = %d", len(file.Imports))
	}
	if file.Imports[0].Path != "time" || file.Imports[1].Path != "net/url" {
		t.Fatalf("import paths = %v, %v", file.Imports[0].Path, file.Imports[1].Path)
	}
	if file.Imports[1].Qualifier() != "url" {
		t.Fatalf("qualifier = %q", file.Imports[1].Qualifier())
	}

	if len(file.Decls) != 2 {
		t.Fatalf("decls = %d", len(file.Decls))
	}

	user := file.Decls[0]
	if user.Name != "UserChangeset" || user.Vis != ast.VisPublic {
		t.Fatalf("decl = %q %v", user.Name, user.Vis)
	}
	if len(user.Doc) != 1 || user.Doc[0] != "Pending edits to a user profile." {
		t.Fatalf("decl doc = %#v", user.Doc)
	}
	if len(user.Fields) != 5 {
		t.Fatalf("fields = %d", len(user.Fields))
	}
	if user.Fields[0].Name != "name" || len(user.Fields[0].Doc) != 1 {
		t.Fatalf("first field = %+v", user.Fields[0])
	}

	draft := file.Decls[1]
	if draft.Vis != ast.VisPrivate || len(draft.Fields) != 1 {
		t.Fatalf("draft = %+v", draft)
	}
}

func TestParseTypeShapes(t *testing.T) {
	file := mustParse(t, `
T {
	a: string,
	b: pkg.Name,
	c: *int,
	d: []byte,
	e: map[string]*pkg.Value,
}
`)
	want := []string{"string", "pkg.Name", "*int", "[]byte", "map[string]*pkg.Value"}
	fields := file.Decls[0].Fields
	if len(fields) != len(want) {
		t.Fatalf("fields = %d", len(fields))
	}
	for i, w := range want {
		if got := fields[i].Type.GoString(); got != w {
			t.Errorf("field %d type = %q, want %q", i, got, w)
		}
	}
}

func TestParseTrailingCommaOptional(t *testing.T) {
	withComma := mustParse(t, "T { a: int, b: int, }")
	withoutComma := mustParse(t, "T { a: int, b: int }")
	if len(withComma.Decls[0].Fields) != 2 || len(withoutComma.Decls[0].Fields) != 2 {
		t.Fatal("trailing comma must not change the field list")
	}
}

func TestParseEmptyChangesetWarns(t *testing.T) {
	file, bag := parseSource(t, "T {}")
	if bag.HasErrors() {
		t.Fatalf("empty changeset must parse: %v", bag.Items())
	}
	wantCode(t, bag, diag.SynEmptyChangeset)
	if len(file.Decls) != 1 {
		t.Fatalf("decls = %d", len(file.Decls))
	}
}

func TestParseMissingColon(t *testing.T) {
	_, bag := parseSource(t, "T { name string }")
	wantCode(t, bag, diag.SynExpectColon)
}

func TestParseMissingComma(t *testing.T) {
	_, bag := parseSource(t, "T { a: int b: int }")
	wantCode(t, bag, diag.SynExpectComma)
}

func TestParseRecoversWithinFieldList(t *testing.T) {
	// The broken field is skipped up to the next comma; later fields survive.
	file, bag := parseSource(t, "T { a: , b: int }")
	if !bag.HasErrors() {
		t.Fatal("expected a type error")
	}
	fields := file.Decls[0].Fields
	if len(fields) != 1 || fields[0].Name != "b" {
		t.Fatalf("recovered fields = %+v", fields)
	}
}

func TestParseRecoversAcrossDecls(t *testing.T) {
	file, bag := parseSource(t, `
T { a: %%% }

pub Next { ok: bool }
`)
	if !bag.HasErrors() {
		t.Fatal("expected errors")
	}
	found := false
	for _, d := range file.Decls {
		if d.Name == "Next" && len(d.Fields) == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("second decl lost during recovery: %+v", file.Decls)
	}
}

func TestParseImportErrors(t *testing.T) {
	_, bag := parseSource(t, "import time")
	wantCode(t, bag, diag.SynExpectImportPath)

	_, bag = parseSource(t, `import ""`)
	wantCode(t, bag, diag.SynExpectImportPath)
}

func TestParseUnexpectedTopLevel(t *testing.T) {
	_, bag := parseSource(t, ": T {}")
	wantCode(t, bag, diag.SynUnexpectedTopLevel)
}

func TestParseMaxErrorsStopsReporting(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.chg", []byte("T { a: , b: , c: , d: , e: }"))
	bag := diag.NewBag(32)

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	ParseFile(fs, lx, Options{MaxErrors: 2, Reporter: &diag.BagReporter{Bag: bag}})

	if bag.Len() > 2 {
		t.Fatalf("expected at most 2 diagnostics, got %d", bag.Len())
	}
}

func TestParseDocOnPubToken(t *testing.T) {
	file := mustParse(t, "/// Documented.\npub T { a: int }")
	if doc := file.Decls[0].Doc; len(doc) != 1 || doc[0] != "Documented." {
		t.Fatalf("doc = %#v", doc)
	}
}
