package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/morsely/internal/logger"
	"github.com/abhisek/morsely/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Record and inspect progress snapshots",
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		snaps, err := rt.store.SnapshotRepo().List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(snaps) == 0 {
			fmt.Fprintln(out, "No snapshots yet.")
			return nil
		}
		rows := make([][]string, 0, len(snaps))
		for _, s := range snaps {
			rows = append(rows, []string{
				strconv.Itoa(s.ID),
				s.Timestamp.Local().Format("2006-01-02 15:04:05"),
				strconv.Itoa(s.TotalAttempts),
				strconv.Itoa(len(s.Data.Stats)),
			})
		}
		fmt.Fprintln(out, renderTable([]string{"ID", "Timestamp", "Attempts", "Chars"}, rows))
		return nil
	},
}

var progressSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture a snapshot now and show what changed since the last one",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		repo := rt.store.SnapshotRepo()
		prev, err := repo.Latest(ctx)
		if err != nil {
			return err
		}

		rec := progress.NewRecorder(rt.tracker, repo, rt.cfg.Snapshots.Keep,
			progress.WithLogger(logger.Component(rt.log, "progress")))
		cur, err := rec.Capture(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Snapshot %d: %d attempts\n", cur.ID, cur.TotalAttempts)
		deltas := progress.Compare(prev, cur)
		if len(deltas) == 0 {
			fmt.Fprintln(out, "No change since the previous snapshot.")
			return nil
		}
		rows := make([][]string, 0, len(deltas))
		for _, d := range deltas {
			rows = append(rows, []string{
				d.Character,
				"+" + strconv.Itoa(d.Attempts),
				fmt.Sprintf("%+.1f", d.AccuracyDelta),
			})
		}
		fmt.Fprintln(out, renderTable([]string{"Char", "Attempts", "Accuracy"}, rows))
		return nil
	},
}

func init() {
	progressListCmd.Flags().IntP("limit", "n", 10, "Number of snapshots to show (0 = all)")

	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressSnapshotCmd)
}
