package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new changeset project",
	Long: `Initialize a changeset project by creating a manifest (changeset.toml)
and a sample declaration file (models/user.chg). If [path|name] is omitted,
initializes the current directory. If a non-existing name is provided, a
directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "changeset-project"
	}

	manifestPath := filepath.Join(target, "changeset.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	samplePath := filepath.Join(target, "models", "user.chg")
	createdSample := false
	if _, err := os.Stat(samplePath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(samplePath), 0o755); err != nil {
			return fmt.Errorf("failed to create models directory: %w", err)
		}
		if err := os.WriteFile(samplePath, []byte(defaultSampleChg()), 0o600); err != nil {
			return fmt.Errorf("failed to write user.chg: %w", err)
		}
		createdSample = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized changeset project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - changeset.toml\n")
	if createdSample {
		fmt.Fprintf(os.Stdout, "  - models/user.chg\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - models/user.chg (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest pointing generation at
// the models directory.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# changeset project manifest
[package]
name = "%s"

[generate]
include = ["models"]
package = "models"
`, name)
}

// defaultSampleChg returns the starter declaration file.
func defaultSampleChg() string {
	return `import "time"

/// Pending edits to a user profile. Unset fields keep their
/// current value when the changeset is applied.
pub UserChangeset {
    /// Display name shown in the UI.
    name: string,
    email: string,
    age: int,
    updated_at: time.Time,
}
`
}
