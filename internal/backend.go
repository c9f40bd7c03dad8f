package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"regexp"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/arrayfan/arrayfan/internal/api"
	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/engine"
	"github.com/arrayfan/arrayfan/internal/fans"
	"github.com/arrayfan/arrayfan/internal/hwmon"
	"github.com/arrayfan/arrayfan/internal/inventory"
	"github.com/arrayfan/arrayfan/internal/sensors"
	"github.com/arrayfan/arrayfan/internal/state"
	"github.com/arrayfan/arrayfan/internal/statistics"
	"github.com/arrayfan/arrayfan/internal/ui"
	"github.com/arrayfan/arrayfan/internal/util"
	"github.com/oklog/run"
)

// RunOnce executes a single decision run: snapshot the sensor and
// inventory state, evaluate, apply the result to all configured fan
// outputs and print the status report. This is the default mode, meant
// to be triggered by a periodic scheduler.
func RunOnce() error {
	requireRoot()
	InitializeObjects()

	return runCycle()
}

// RunDaemon repeats decision runs on a fixed interval and optionally
// serves the REST API and metrics endpoint until terminated.
func RunDaemon() {
	requireRoot()
	InitializeObjects()

	interval := configuration.CurrentConfig.Daemon.Interval
	if interval <= 0 {
		interval = 3 * time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === decision loop
		g.Add(func() error {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			// run immediately, then on every tick; a failed cycle is
			// logged but does not stop the daemon, transient sensor
			// glitches self-correct on the next run
			if err := runCycle(); err != nil {
				ui.Error("Decision run failed: %v", err)
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := runCycle(); err != nil {
						ui.Error("Decision run failed: %v", err)
					}
				}
			}
		}, func(err error) {
			cancel()
		})
	}
	{
		apiConfig := configuration.CurrentConfig.Api
		if apiConfig.Enabled {
			// === REST API + metrics
			restService := api.CreateRestService()
			g.Add(func() error {
				addr := fmt.Sprintf("%s:%d", apiConfig.Host, apiConfig.Port)
				if err := restService.Start(addr); err != nil {
					ui.Error("Cannot start REST api endpoint (%s)", err.Error())
				}

				<-ctx.Done()
				ui.Info("Stopping REST api...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				return restService.Shutdown(timeoutCtx)
			}, func(err error) {
				if err != nil {
					ui.Warning("Error stopping REST api: " + err.Error())
				} else {
					ui.Info("REST api stopped.")
				}
			})
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// runCycle performs one full snapshot -> decide -> apply sequence.
func runCycle() error {
	snapshot, err := takeSnapshot()
	if err != nil {
		return err
	}

	policy := configuration.CurrentConfig.Policy
	decision := engine.Run(*snapshot, policy)
	state.SetLatestDecision(decision)

	for _, fan := range fans.FanMap.Items() {
		if err := fans.ApplyPwm(fan, decision.Pwm); err != nil {
			return err
		}
	}

	report := engine.BuildReport(decision, policy)
	for _, line := range strings.Split(report, "\n") {
		ui.Printfln("%s", line)
	}

	statusFile := configuration.CurrentConfig.StatusFile
	if len(statusFile) > 0 {
		if err := writeStatusFile(statusFile, decision); err != nil {
			ui.Warning("Unable to write status file %s: %v", statusFile, err)
		}
	}

	return nil
}

// takeSnapshot reads all inputs of a decision run exactly once.
func takeSnapshot() (*engine.Snapshot, error) {
	config := configuration.CurrentConfig

	disks, err := inventory.ReadDisks(config.DiskStatePath)
	if err != nil {
		// never guess disk state, abort before making any decision
		return nil, err
	}

	unassigned, err := inventory.ReadUnassigned(config.UnassignedStatePath)
	if err != nil {
		ui.Warning("%v", err)
	}
	disks = append(disks, unassigned...)

	status, err := inventory.ReadStatus(config.SystemStatePath)
	if err != nil {
		ui.Warning("%v", err)
	}

	cpuSensor, err := sensors.GetSensor(config.CpuSensor.ID)
	if err != nil {
		return nil, err
	}
	cpuTemp, err := cpuSensor.GetValue()
	if err != nil {
		// a missing CPU reading must not be replaced with a default
		// value, that could silently under-cool the system
		return nil, fmt.Errorf("unable to read cpu temperature: %w", err)
	}

	return &engine.Snapshot{
		Disks:   disks,
		Status:  status,
		CpuTemp: cpuTemp,
	}, nil
}

// InitializeObjects resolves hwmon references in the configuration,
// builds the cpu sensor and fan outputs and registers the metrics
// collectors.
func InitializeObjects() {
	var controllers []*hwmon.HwMonController
	if containsHwMonConfigs() {
		controllers = hwmon.GetChips()
	}

	sensorConfig := configuration.CurrentConfig.CpuSensor
	if sensorConfig.HwMon != nil {
		found := false
		for _, c := range controllers {
			matched, err := regexp.MatchString("(?i)"+sensorConfig.HwMon.Platform, c.Platform)
			if err != nil {
				ui.Fatal("Failed to match platform regex of %s (%s) against controller platform %s", sensorConfig.ID, sensorConfig.HwMon.Platform, c.Platform)
			}
			if matched && len(c.Sensors) >= sensorConfig.HwMon.Index {
				found = true
				sensorConfig.HwMon.TempInput = c.Sensors[sensorConfig.HwMon.Index-1].Input
				break
			}
		}
		if !found {
			ui.Fatal("Couldn't find hwmon device with platform '%s' for sensor: %s. Run 'arrayfan detect' and correct any mistake.", sensorConfig.HwMon.Platform, sensorConfig.ID)
		}
	}

	sensor, err := sensors.NewSensor(sensorConfig)
	if err != nil {
		ui.Fatal("Unable to process sensor configuration: %s", sensorConfig.ID)
	}
	sensors.SensorMap.Set(sensorConfig.ID, sensor)

	var fanList []fans.Fan
	for _, config := range configuration.CurrentConfig.Fans {
		fan, err := initializeFan(config, controllers)
		if err != nil {
			ui.Fatal("Unable to process fan configuration: %s: %v", config.ID, err)
		}
		fans.FanMap.Set(config.ID, fan)
		fanList = append(fanList, fan)
	}

	if configuration.CurrentConfig.Statistics.Enabled {
		statistics.Register(statistics.NewFanCollector(fanList))
		statistics.Register(statistics.NewDecisionCollector())
	}
}

// FindFan resolves and builds the configured fan with the given id.
func FindFan(id string) (fans.Fan, error) {
	var controllers []*hwmon.HwMonController
	if containsHwMonConfigs() {
		controllers = hwmon.GetChips()
	}

	for _, config := range configuration.CurrentConfig.Fans {
		if config.ID == id {
			return initializeFan(config, controllers)
		}
	}

	return nil, fmt.Errorf("no fan with id found: %s", id)
}

func initializeFan(config configuration.FanConfig, controllers []*hwmon.HwMonController) (fans.Fan, error) {
	if config.HwMon != nil {
		found := false
		for _, c := range controllers {
			matched, err := regexp.MatchString("(?i)"+config.HwMon.Platform, c.Platform)
			if err != nil {
				return nil, fmt.Errorf("failed to match platform regex of %s (%s) against controller platform %s", config.ID, config.HwMon.Platform, c.Platform)
			}
			if matched && len(c.Fans) >= config.HwMon.Index {
				fan := c.Fans[config.HwMon.Index-1]
				config.HwMon.PwmOutput = fan.PwmOutput
				config.HwMon.RpmInput = fan.RpmInput
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("couldn't find hwmon device with platform '%s' for fan: %s", config.HwMon.Platform, config.ID)
		}
		if len(config.HwMon.PwmOutput) <= 0 {
			return nil, fmt.Errorf("unable to find pwm output for fan %s", config.ID)
		}
	}

	return fans.NewFan(config)
}

func containsHwMonConfigs() bool {
	if configuration.CurrentConfig.CpuSensor.HwMon != nil {
		return true
	}
	for _, config := range configuration.CurrentConfig.Fans {
		if config.HwMon != nil {
			return true
		}
	}
	return false
}

// statusFileContent is the machine-readable snapshot written after each
// run for consumption by UI plugins. It reflects only the latest run.
type statusFileContent struct {
	engine.Decision
	UpdatedAt time.Time `json:"updatedAt"`
}

func writeStatusFile(path string, decision engine.Decision) error {
	content := statusFileContent{
		Decision:  decision,
		UpdatedAt: time.Now(),
	}
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return err
	}
	return util.WriteFileAtomic(path, data)
}

func requireRoot() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to be able to modify fan speeds, please run arrayfan as root")
	}
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
