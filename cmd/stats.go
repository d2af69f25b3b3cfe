package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/morsely/internal/morse"
	"github.com/abhisek/morsely/internal/ui/components"
	"github.com/abhisek/morsely/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-character statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		stats, err := rt.tracker.StatsSnapshot(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, stats)
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, "No practice recorded yet.")
			return nil
		}

		rows := make([][]string, 0, len(stats))
		for _, s := range stats {
			pattern, _ := morse.Pattern([]rune(s.Character)[0])
			rows = append(rows, []string{
				s.Character,
				pattern,
				strconv.Itoa(s.Attempts),
				strconv.Itoa(s.Successes),
				components.NewAccuracyMeter("", s.Accuracy, 10).View(),
			})
		}
		fmt.Fprintln(out, renderTable([]string{"Char", "Code", "Attempts", "Successes", "Accuracy"}, rows))
		return nil
	},
}

// renderTable draws a bordered table in the shared theme.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeader
			}
			return theme.TableCell
		})
	return t.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print JSON instead of a table")
}
