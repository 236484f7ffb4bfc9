package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"changeset/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the generation cache",
	Long:  `Clean removes every cached generation artifact. The next run regenerates everything from source.`,
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	cache, err := driver.OpenDiskCache("changeset")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop cache: %w", err)
	}
	if !quiet {
		fmt.Fprintln(os.Stdout, "cache dropped")
	}
	return nil
}
