package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cardwatch-dev/cardwatch/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new cardwatch project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	// Create directory structure. The models dir must exist up front; the
	// persister refuses to create it at train time.
	dirs := []string{
		"data",
		"models",
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write cardwatch.yaml.
	if err := config.Save(filepath.Join(dir, "cardwatch.yaml"), config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write .gitignore.
	gitignore := "models/\nlogs/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized cardwatch project at %s\n", dir)
	return nil
}
