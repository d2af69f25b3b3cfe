package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/morsely/internal/export"
	"github.com/abhisek/morsely/internal/tracker"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export statistics and recent history to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("output")

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		stats, err := rt.tracker.StatsSnapshot(ctx)
		if err != nil {
			return err
		}
		history, err := rt.tracker.History(ctx, tracker.MaxHistory)
		if err != nil {
			return err
		}

		if path == "-" {
			return export.WriteWorkbook(cmd.OutOrStdout(), stats, history)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := export.WriteWorkbook(f, stats, history); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d characters and %d attempts to %s\n", len(stats), len(history), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "morsely.xlsx", "Output file ('-' for stdout)")
}
