package fan

import (
	"fmt"
	"strconv"

	"github.com/arrayfan/arrayfan/internal/fans"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the speed of a fan to the given PWM value ([0..255])",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		pwmValue, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if pwmValue < fans.MinPwmValue || pwmValue > fans.MaxPwmValue {
			return fmt.Errorf("pwm value out of range [0..255]: %d", pwmValue)
		}

		fan, err := getFan(fanId)
		if err != nil {
			return err
		}

		return fans.ApplyPwm(fan, pwmValue)
	},
}

func init() {
	Command.AddCommand(setCmd)
}
