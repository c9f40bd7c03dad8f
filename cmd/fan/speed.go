package fan

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Get the current speed (PWM) of a fan",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan(fanId)
		if err != nil {
			return err
		}

		pwm, err := fan.GetPwm()
		if err != nil {
			return err
		}
		fmt.Printf("%d", pwm)

		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
