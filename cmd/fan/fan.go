package fan

import (
	"github.com/arrayfan/arrayfan/internal"
	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/fans"
	"github.com/arrayfan/arrayfan/internal/ui"
	"github.com/spf13/cobra"
)

var fanId string

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&fanId,
		"id", "i",
		"",
		"Fan ID as specified in the config",
	)
	_ = Command.MarkPersistentFlagRequired("id")
}

func getFan(id string) (fans.Fan, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate(configPath)
	if err != nil {
		ui.Fatal(err.Error())
	}

	return internal.FindFan(id)
}
