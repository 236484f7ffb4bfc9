package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"changeset/internal/diag"
	"changeset/internal/source"
)

// listChgFiles returns the sorted list of *.chg files under dir.
func listChgFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".chg") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of filesystem enumeration.
	sort.Strings(files)
	return files, nil
}

// GenerateDir runs the generation pipeline over every *.chg file under dir
// in parallel. Results come back in the sorted file order; per-file findings
// stay in each result's Bag, while a non-nil error means the run itself
// failed (walk error, cancellation).
func GenerateDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := listChgFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Load up front: FileSet mutation is not concurrency-safe, the pipeline
	// over loaded files is.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Timer is not safe for concurrent use; the run is timed as one phase.
	fileOpts := opts
	fileOpts.Timer = nil
	if opts.Timer != nil {
		idx := opts.Timer.Begin("generate " + dir)
		defer opts.Timer.End(idx, "")
	}

	// Each goroutine owns its own index; no mutex needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: path, Bag: bag}
				return nil
			}

			results[i] = GenerateFile(fileSet, fileSet.Get(fileIDs[path]), fileOpts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
