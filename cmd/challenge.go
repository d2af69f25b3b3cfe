package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Generate a practice sentence built around your weakest characters",
	RunE: func(cmd *cobra.Command, args []string) error {
		focus, _ := cmd.Flags().GetInt("focus")
		offline, _ := cmd.Flags().GetBool("offline")
		asJSON, _ := cmd.Flags().GetBool("json")

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		c, err := rt.challenges(cmd.Context(), offline).Next(cmd.Context(), focus)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, c)
		}
		fmt.Fprintf(out, "Focus:  %s (%s)\n", strings.Join(c.Focus, " "), c.Source)
		fmt.Fprintf(out, "Text:   %s\n", c.Text)
		fmt.Fprintf(out, "Morse:  %s\n", c.Morse)
		return nil
	},
}

func init() {
	challengeCmd.Flags().Int("focus", 0, "Number of weak characters to focus on (default from config)")
	challengeCmd.Flags().Bool("offline", false, "Use the built-in word list instead of an LLM")
	challengeCmd.Flags().Bool("json", false, "Print the challenge as JSON")
}
