package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"changeset/internal/diag"
	"changeset/internal/diagfmt"
	"changeset/internal/driver"
	"changeset/internal/observ"
	"changeset/internal/source"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [path...]",
	Short: "Generate Go source from .chg declaration files",
	Long: `Generate expands every .chg file in the given files or directories.
Without arguments the inputs come from changeset.toml ([generate].include).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("package", "", "package clause for generated files (defaults to [generate].package)")
	generateCmd.Flags().String("out-dir", "", "collect generated files into this directory")
	generateCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	generateCmd.Flags().Bool("no-cache", false, "bypass the generation cache")
	generateCmd.Flags().Bool("check", false, "verify generated files are up to date without writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	pkg, _ := cmd.Flags().GetString("package")
	outDir, _ := cmd.Flags().GetString("out-dir")
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	checkOnly, _ := cmd.Flags().GetBool("check")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	targets := args
	if len(args) == 0 || pkg == "" || outDir == "" {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if ok {
			if len(targets) == 0 {
				targets = manifest.includeDirs()
			}
			if pkg == "" {
				pkg = manifest.Config.Generate.Package
			}
			if outDir == "" {
				outDir = manifest.outDir()
			}
		}
	}
	if len(targets) == 0 {
		return fmt.Errorf("%s", noManifestMessage)
	}
	if pkg == "" {
		return fmt.Errorf("no target package: pass --package or set [generate].package in changeset.toml")
	}

	opts := driver.Options{
		Package:        pkg,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if !noCache {
		if cache, err := driver.OpenDiskCache("changeset"); err == nil {
			opts.Cache = cache
		}
	}
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
		opts.Timer = timer
	}

	var errCount, staleCount int
	for _, target := range targets {
		fileSet, results, err := generateTarget(cmd, target, opts)
		if err != nil {
			return err
		}

		for i := range results {
			res := &results[i]
			printDiagnostics(cmd, res.Bag, fileSet)
			if res.Bag.HasErrors() {
				errCount++
				continue
			}
			if res.Output == nil {
				continue
			}

			if checkOnly {
				path, stale, err := driver.CheckOutput(res, outDir)
				if err != nil {
					return err
				}
				if stale {
					staleCount++
					fmt.Fprintf(os.Stderr, "stale: %s\n", path)
				}
				continue
			}

			path, err := driver.WriteOutput(res, outDir)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", diag.GenWriteError.ID(), res.Path, err)
			}
			if !quiet {
				fmt.Fprintf(os.Stdout, "wrote %s\n", path)
			}
		}
	}

	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if errCount > 0 {
		return fmt.Errorf("generation failed for %d file(s)", errCount)
	}
	if staleCount > 0 {
		return fmt.Errorf("%d generated file(s) out of date; run 'changeset generate'", staleCount)
	}
	return nil
}

// generateTarget runs the pipeline over one CLI argument, which may be a
// directory or a single .chg file.
func generateTarget(cmd *cobra.Command, target string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	st, err := os.Stat(target)
	if err != nil {
		return nil, nil, err
	}
	if st.IsDir() {
		return driver.GenerateDir(cmd.Context(), target, opts)
	}
	fs, res, err := driver.Generate(target, opts)
	if err != nil {
		return nil, nil, err
	}
	return fs, []driver.FileResult{res}, nil
}

// printDiagnostics renders a bag to stderr in the pretty format.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd),
		Context:   1,
		ShowNotes: true,
	})
}
