package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cardwatch-dev/cardwatch/internal/config"
	"github.com/cardwatch-dev/cardwatch/internal/synth"
)

func newGenerateCommand() *cobra.Command {
	var out string
	var rows int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fabricate a synthetic records CSV for exercising the pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, out, rows, seed)
		},
	}

	cmd.Flags().StringVar(&out, "out", config.Default().Data.Path, "destination CSV path")
	cmd.Flags().IntVar(&rows, "rows", synth.DefaultRows, "number of records to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "random seed")

	return cmd
}

func runGenerate(cmd *cobra.Command, out string, rows int, seed uint64) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	if err := synth.WriteCSV(out, synth.Options{Rows: rows, Seed: seed}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d synthetic records to %s\n", rows, out)
	return nil
}
