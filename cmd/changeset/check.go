package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"changeset/internal/diag"
	"changeset/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Validate .chg declaration files without writing output",
	Long: `Check runs the full pipeline (parse, validate, emit) over the given
files or directories and reports diagnostics, writing nothing to disk.
Without arguments the inputs come from changeset.toml.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	targets := args
	pkg := "model" // emit still runs; the package clause is irrelevant here
	if len(targets) == 0 {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s", noManifestMessage)
		}
		targets = manifest.includeDirs()
		pkg = manifest.Config.Generate.Package
	}

	opts := driver.Options{Package: pkg, MaxDiagnostics: maxDiagnostics}

	var errCount, fileCount int
	for _, target := range targets {
		fileSet, results, err := generateTarget(cmd, target, opts)
		if err != nil {
			return err
		}
		// One merged, sorted stream per target instead of per-file chunks.
		merged := diag.NewBag(maxDiagnostics)
		for i := range results {
			fileCount++
			if results[i].Bag.HasErrors() {
				errCount++
			}
			merged.Merge(results[i].Bag)
		}
		printDiagnostics(cmd, merged, fileSet)
	}

	if errCount > 0 {
		return fmt.Errorf("check failed for %d of %d file(s)", errCount, fileCount)
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "checked %d file(s), no errors\n", fileCount)
	}
	return nil
}
