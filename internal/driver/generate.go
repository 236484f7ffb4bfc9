// Package driver wires the lex/parse/check/emit phases into the pipelines
// the CLI runs: single-file generation, parallel directory generation, and
// tokenization for debugging.
package driver

import (
	"strings"

	"fortio.org/safecast"

	"changeset/internal/diag"
	"changeset/internal/gen"
	"changeset/internal/lexer"
	"changeset/internal/observ"
	"changeset/internal/parser"
	"changeset/internal/sema"
	"changeset/internal/source"
)

// Options configures a generation run.
type Options struct {
	// Package is the package clause of generated files.
	Package string
	// MaxDiagnostics caps the diagnostics collected per file.
	MaxDiagnostics int
	// Jobs bounds parallelism for directory runs; <=0 means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, skips the pipeline for unchanged clean files.
	Cache *DiskCache
	// Timer, when non-nil, records phase durations.
	Timer *observ.Timer
}

// FileResult is the outcome of generating one declaration file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	// Output is the generated Go source; nil when diagnostics blocked
	// generation.
	Output []byte
	// Cached reports whether Output came from the disk cache.
	Cached bool
}

// OutputPath maps a declaration file path to its generated file name:
// user.chg -> user_changeset.go.
func (r *FileResult) OutputPath() string {
	base := strings.TrimSuffix(r.Path, ".chg")
	return base + "_changeset.go"
}

// GenerateFile runs the full pipeline over one loaded file. Errors surface
// as diagnostics in the result's Bag, never as a Go error.
func GenerateFile(fs *source.FileSet, file *source.File, opts Options) FileResult {
	res := FileResult{
		Path:   file.Path,
		FileID: file.ID,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}

	if opts.Cache != nil {
		key := cacheKey(file, opts.Package)
		var payload CachePayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			res.Output = payload.Output
			res.Cached = true
			return res
		}
	}

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		maxErrors = 0
	}

	var parseIdx int
	if opts.Timer != nil {
		parseIdx = opts.Timer.Begin("parse " + file.Path)
	}
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: res.Bag}})
	parsed := parser.ParseFile(fs, lx, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  &diag.BagReporter{Bag: res.Bag},
	})
	if opts.Timer != nil {
		opts.Timer.End(parseIdx, "")
	}
	if res.Bag.HasErrors() {
		return res
	}

	sema.Check(parsed.File, &diag.BagReporter{Bag: res.Bag})
	if res.Bag.HasErrors() {
		return res
	}

	var emitIdx int
	if opts.Timer != nil {
		emitIdx = opts.Timer.Begin("emit " + file.Path)
	}
	out, err := gen.File(parsed.File, gen.Options{Package: opts.Package})
	if opts.Timer != nil {
		opts.Timer.End(emitIdx, "")
	}
	if err != nil {
		res.Bag.Add(diag.NewError(diag.GenFormatError, source.Span{File: file.ID},
			"generated code does not format: "+err.Error()))
		return res
	}
	res.Output = out

	// Only clean files are cached: a hit must not swallow warnings.
	if opts.Cache != nil && res.Bag.Len() == 0 {
		key := cacheKey(file, opts.Package)
		_ = opts.Cache.Put(key, &CachePayload{
			Schema:     cacheSchemaVersion,
			SourceHash: file.Hash,
			Package:    opts.Package,
			Output:     out,
		})
	}
	return res
}

// Generate loads a single file from disk and runs the pipeline over it.
func Generate(path string, opts Options) (*source.FileSet, FileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, FileResult{}, err
	}
	return fs, GenerateFile(fs, fs.Get(fileID), opts), nil
}
