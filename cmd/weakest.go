package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/morsely/internal/morse"
)

var weakestCmd = &cobra.Command{
	Use:   "weakest",
	Short: "List the characters with the lowest accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		n, _ := cmd.Flags().GetInt("count")
		if !cmd.Flags().Changed("count") {
			n = rt.cfg.Practice.WeakestCount
		}

		chars, err := rt.tracker.WeakestCharacters(cmd.Context(), n)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(chars) == 0 {
			fmt.Fprintln(out, "No practice recorded yet.")
			return nil
		}
		lines := make([]string, len(chars))
		for i, c := range chars {
			pattern, _ := morse.Pattern([]rune(c)[0])
			lines[i] = fmt.Sprintf("%s  %s", c, pattern)
		}
		fmt.Fprintln(out, strings.Join(lines, "\n"))
		return nil
	},
}

func init() {
	weakestCmd.Flags().IntP("count", "n", 3, "Number of characters (default from config)")
}
