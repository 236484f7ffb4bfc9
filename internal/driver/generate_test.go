package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"changeset/internal/diag"
	"changeset/internal/token"
	"changeset/internal/version"
)

const validSource = `
import "time"

/// Pending edits to a user profile.
pub User {
	name: string,
	seen: time.Time,
}
`

func writeChg(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateValidFile(t *testing.T) {
	path := writeChg(t, t.TempDir(), "user.chg", validSource)

	_, res, err := Generate(path, Options{Package: "model", MaxDiagnostics: 16})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	out := string(res.Output)
	for _, want := range []string{
		"package model",
		"type User struct {",
		"func (c User) WithName(v string) User",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateBrokenFileProducesNoOutput(t *testing.T) {
	path := writeChg(t, t.TempDir(), "bad.chg", `User { name string }`)

	_, res, err := Generate(path, Options{Package: "model", MaxDiagnostics: 16})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected syntax errors")
	}
	if res.Output != nil {
		t.Fatal("broken file must not produce output")
	}
}

func TestGenerateSemaErrorBlocksOutput(t *testing.T) {
	path := writeChg(t, t.TempDir(), "dup.chg", `
User {
	name: string,
	name: int,
}
`)
	_, res, err := Generate(path, Options{Package: "model", MaxDiagnostics: 16})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a duplicate-field error")
	}
	if res.Output != nil {
		t.Fatal("file with semantic errors must not produce output")
	}
}

func TestGenerateMissingFile(t *testing.T) {
	_, _, err := Generate(filepath.Join(t.TempDir(), "absent.chg"), Options{Package: "model"})
	if err == nil {
		t.Fatal("expected a load error")
	}
}

func TestOutputPath(t *testing.T) {
	res := FileResult{Path: "models/user.chg"}
	if got := res.OutputPath(); got != "models/user_changeset.go" {
		t.Fatalf("OutputPath() = %q", got)
	}
}

func TestGenerateDir(t *testing.T) {
	dir := t.TempDir()
	writeChg(t, dir, "user.chg", validSource)
	writeChg(t, dir, "account.chg", `pub Account { balance: int64 }`)
	writeChg(t, dir, "broken.chg", `Account { x }`)

	_, results, err := GenerateDir(context.Background(), dir, Options{
		Package: "model", MaxDiagnostics: 16, Jobs: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Sorted order: account, broken, user.
	if results[0].Output == nil || results[2].Output == nil {
		t.Fatal("clean files must produce output")
	}
	if results[1].Output != nil || !results[1].Bag.HasErrors() {
		t.Fatal("broken file must fail with diagnostics")
	}
}

func TestGenerateDirEmpty(t *testing.T) {
	_, results, err := GenerateDir(context.Background(), t.TempDir(), Options{Package: "model"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestGenerateUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeChg(t, dir, "user.chg", validSource)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, ".cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Package: "model", MaxDiagnostics: 16, Cache: cache}

	_, first, err := Generate(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first run must be a cache miss")
	}

	_, second, err := Generate(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second run must hit the cache")
	}
	if string(first.Output) != string(second.Output) {
		t.Fatal("cached output differs from generated output")
	}
}

func TestCacheKeyedByPackage(t *testing.T) {
	dir := t.TempDir()
	path := writeChg(t, dir, "user.chg", validSource)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, ".cache"))
	if err != nil {
		t.Fatal(err)
	}

	if _, res, err := Generate(path, Options{Package: "model", MaxDiagnostics: 16, Cache: cache}); err != nil || res.Cached {
		t.Fatalf("seed run: err=%v cached=%v", err, res.Cached)
	}
	_, res, err := Generate(path, Options{Package: "other", MaxDiagnostics: 16, Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Fatal("changing the target package must miss the cache")
	}
	if !strings.Contains(string(res.Output), "package other") {
		t.Fatal("output must carry the new package clause")
	}
}

func TestCacheKeyedByToolVersion(t *testing.T) {
	dir := t.TempDir()
	path := writeChg(t, dir, "user.chg", validSource)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, ".cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Package: "model", MaxDiagnostics: 16, Cache: cache}

	if _, res, err := Generate(path, opts); err != nil || res.Cached {
		t.Fatalf("seed run: err=%v cached=%v", err, res.Cached)
	}

	old := version.Number
	version.Number = old + "+next"
	defer func() { version.Number = old }()

	_, res, err := Generate(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Fatal("a new tool version must not serve entries written by the old one")
	}
}

func TestWriteAndCheckOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeChg(t, dir, "user.chg", validSource)

	_, res, err := Generate(path, Options{Package: "model", MaxDiagnostics: 16})
	if err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "gen")
	target, err := WriteOutput(&res, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(target) != "user_changeset.go" {
		t.Fatalf("unexpected target %q", target)
	}

	if _, stale, err := CheckOutput(&res, outDir); err != nil || stale {
		t.Fatalf("freshly written output must be up to date: stale=%v err=%v", stale, err)
	}

	if err := os.WriteFile(target, []byte("tampered"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, stale, err := CheckOutput(&res, outDir); err != nil || !stale {
		t.Fatalf("tampered output must be stale: stale=%v err=%v", stale, err)
	}
}

func TestTokenize(t *testing.T) {
	path := writeChg(t, t.TempDir(), "user.chg", `pub User { name: string }`)

	res, err := Tokenize(path, 16)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if len(res.Tokens) == 0 {
		t.Fatal("expected tokens")
	}
	if res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatal("token stream must end with EOF")
	}
}

func TestIOLoadErrorCode(t *testing.T) {
	if diag.IOLoadFileError.ID() != "IO4001" {
		t.Fatalf("IOLoadFileError.ID() = %q", diag.IOLoadFileError.ID())
	}
}
