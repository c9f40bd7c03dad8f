package cmd

import (
	"github.com/arrayfan/arrayfan/internal"
	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/ui"
	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run in the foreground and re-evaluate on a fixed interval",
	Long: `Instead of a single run, repeat decision runs on the configured
interval and optionally serve the REST api and metrics endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		err := configuration.Validate(configPath)
		if err != nil {
			ui.Fatal("Config validation error: %s", err.Error())
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}
