package cmd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/arrayfan/arrayfan/cmd/global"
	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/engine"
	"github.com/arrayfan/arrayfan/internal/ui"
	"github.com/arrayfan/arrayfan/internal/util"
	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

// padding of the plotted temperature range below the low and above the
// high threshold, to make the flat segments visible
const curveRangePadding = 5

var (
	curveCsv    bool
	curveOutput string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the temperature to PWM mapping of each source",
	Long: `Evaluates the configured thresholds over a padded temperature range
and prints the resulting PWM value per temperature, for the drives,
the cache pool and the CPU.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		if err := configuration.Validate(configPath); err != nil {
			ui.Fatal(err.Error())
		}

		policy := configuration.CurrentConfig.Policy
		limits := engine.LimitsFromPolicy(policy)

		sources := []struct {
			name       string
			thresholds configuration.ThresholdConfig
		}{
			{string(engine.SourceDrives), policy.DriveTemps},
			{string(engine.SourceCache), policy.CacheTemps},
			{string(engine.SourceCpu), policy.CpuTemps},
		}

		for idx, source := range sources {
			if idx > 0 {
				ui.Printfln("")
			}

			start := source.thresholds.Low - curveRangePadding
			stop := source.thresholds.High + curveRangePadding

			var temps []int
			var values []float64
			for temp := start; temp <= stop; temp++ {
				pwm := engine.Curve(temp, source.thresholds.Low, source.thresholds.High, limits)
				temps = append(temps, temp)
				values = append(values, float64(pwm))
			}

			if curveCsv {
				for i, temp := range temps {
					ui.Printfln("%s,%d,%d", source.name, temp, int(values[i]))
				}
				continue
			}

			if len(curveOutput) > 0 {
				var sb strings.Builder
				for i, temp := range temps {
					sb.WriteString(fmt.Sprintf("%s,%d,%d\n", source.name, temp, int(values[i])))
				}
				path := fmt.Sprintf("%s.%s", curveOutput, source.name)
				if err := util.WriteFileAtomic(path, []byte(sb.String())); err != nil {
					return err
				}
				ui.Info("Wrote plot data to: %s", path)
				continue
			}

			tab := table.Table{
				Headers: []string{"Source", "Low", "High", "MinPwm", "MaxPwm"},
				Rows: [][]string{
					{
						source.name,
						strconv.Itoa(source.thresholds.Low),
						strconv.Itoa(source.thresholds.High),
						strconv.Itoa(limits.Min),
						strconv.Itoa(limits.Max),
					},
				},
			}
			var buf bytes.Buffer
			tableErr := tab.WriteTable(&buf, &table.Config{
				ShowIndex:       false,
				Color:           !global.NoColor,
				AlternateColors: true,
				TitleColorCode:  ansi.ColorCode("white+buf"),
				AltColorCodes: []string{
					ansi.ColorCode("white"),
					ansi.ColorCode("white:236"),
				},
			})
			if tableErr != nil {
				panic(tableErr)
			}
			ui.Printfln(buf.String())

			caption := fmt.Sprintf("PWM / Temp (%d..%d)", start, stop)
			graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
			ui.Printfln(graph)
		}

		return nil
	},
}

func init() {
	curveCmd.Flags().BoolVarP(&curveCsv, "csv", "", false, "Print the curve data as CSV to stdout")
	curveCmd.Flags().StringVarP(&curveOutput, "output", "o", "", "Write plot data to the given file path (one file per source)")
	rootCmd.AddCommand(curveCmd)
}
