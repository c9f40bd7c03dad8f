package fan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arrayfan/arrayfan/internal/fans"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get/Set the current pwm mode setting of a fan",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan(fanId)
		if err != nil {
			return err
		}

		if !fan.Supports(fans.FeatureControlMode) {
			return fmt.Errorf("fan %s has no control mode", fan.GetId())
		}

		if len(args) > 0 {
			firstArg := args[0]
			argAsInt, err := strconv.Atoi(firstArg)
			var mode fans.ControlMode
			if err != nil {
				switch strings.ToLower(firstArg) {
				case "auto":
					mode = fans.ControlModeAutomatic
				case "pwm":
					mode = fans.ControlModePWM
				case "disabled":
					mode = fans.ControlModeDisabled
				default:
					return fmt.Errorf("unknown mode: %s, must be an integer in (0..2) or one of: 'auto', 'pwm', 'disabled'", firstArg)
				}
			} else {
				mode = fans.ControlMode(argAsInt)
				switch mode {
				case fans.ControlModeAutomatic, fans.ControlModePWM, fans.ControlModeDisabled:
					break
				default:
					return fmt.Errorf("unknown mode: %d, must be an integer in (0..2) or one of: 'auto', 'pwm', 'disabled'", argAsInt)
				}
			}
			if err := fan.SetControlMode(mode); err != nil {
				return err
			}
		}

		mode, err := fan.GetControlMode()
		if err != nil {
			return err
		}

		switch mode {
		case fans.ControlModeDisabled:
			fmt.Printf("No control, 100%% all the time (%d)", mode)
		case fans.ControlModePWM:
			fmt.Printf("Manual PWM control, gives arrayfan control (%d)", mode)
		case fans.ControlModeAutomatic:
			fmt.Printf("Automatic control by integrated hardware (%d)", mode)
		default:
			fmt.Printf("Unknown (%d)", mode)
		}

		return nil
	},
}

func init() {
	Command.AddCommand(modeCmd)
}
