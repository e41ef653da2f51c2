package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardwatch-dev/cardwatch/internal/runlog"
)

func newRunsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded training runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRuns(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runRuns(cmd *cobra.Command, dir string) error {
	entries, err := runlog.Read(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No training runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIMESTAMP\tRUN ID\tROWS\tACCURACY\tMODEL")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%s\n",
			e.Timestamp.Format(time.RFC3339), e.RunID, e.Rows, e.Accuracy, e.ModelPath)
	}
	return tw.Flush()
}
