package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/morsely/internal/morse"
)

var reportCmd = &cobra.Command{
	Use:   "report <text>",
	Short: "Record a practice attempt for every character in text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed, _ := cmd.Flags().GetBool("fail")

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		text := strings.Join(args, " ")
		if err := rt.tracker.Report(cmd.Context(), text, !failed); err != nil {
			return err
		}

		result := "success"
		if failed {
			result = "failure"
		}
		n := len(morse.Symbols(text))
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d attempt(s) as %s.\n", n, result)
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("fail", false, "Record the attempt as a failure")
}
