package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/morsely/internal/drill"
	"github.com/abhisek/morsely/internal/tracker"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Key characters interactively in the terminal",
	Long: "Shows one character at a time; type its pattern with '.' and '-'.\n" +
		"Weak characters come up more often. Every answer is recorded.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		picker := drill.NewPicker(rt.cfg.Practice.WeakFactor, uint64(time.Now().UnixNano()))
		correct, total, err := drill.Run(rt.tracker, picker)
		if err != nil {
			return err
		}
		if total > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Session: %d/%d correct (%.0f%%)\n",
				correct, total, tracker.Accuracy(correct, total))
		}
		return nil
	},
}
