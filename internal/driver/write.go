package driver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteOutput places one generated file next to its source, or under outDir
// when set, writing through a temp file and an atomic rename. Returns the
// final path.
func WriteOutput(res *FileResult, outDir string) (string, error) {
	if res.Output == nil {
		return "", fmt.Errorf("%s: nothing to write", res.Path)
	}

	target := res.OutputPath()
	if outDir != "" {
		target = filepath.Join(outDir, filepath.Base(target))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(filepath.Dir(target), "tmp-*")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if _, err := f.Write(res.Output); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(f.Name(), target); err != nil {
		return "", err
	}
	return target, nil
}

// CheckOutput verifies that the file on disk matches the generated output.
// Returns the target path and whether it is stale (missing or different).
func CheckOutput(res *FileResult, outDir string) (string, bool, error) {
	if res.Output == nil {
		return "", false, fmt.Errorf("%s: nothing to check", res.Path)
	}

	target := res.OutputPath()
	if outDir != "" {
		target = filepath.Join(outDir, filepath.Base(target))
	}

	existing, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return target, true, nil
		}
		return target, false, err
	}
	return target, !bytes.Equal(existing, res.Output), nil
}
