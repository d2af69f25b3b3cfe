package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "morsely",
	Short: "Morse code trainer that drills your weakest characters",
	Long: "Morsely translates text to Morse code, tracks how well you copy each\n" +
		"character and builds practice challenges around the ones you miss most.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Database DSN or SQLite file path (overrides MORSELY_DB env var)")
	pf.String("db-driver", "", "Database driver: sqlite or postgres (overrides MORSELY_DB_DRIVER)")
	pf.String("config", "", "Path to config.toml (default $XDG_CONFIG_HOME/morsely/config.toml)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: console or json")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(weakestCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
