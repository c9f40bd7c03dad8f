package configuration

import (
	"os"
	"time"

	"github.com/arrayfan/arrayfan/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Configuration struct {
	// DiskStatePath is the primary disk inventory source, a sectioned
	// key-value state file with one section per disk slot.
	DiskStatePath string `json:"diskStatePath"`
	// UnassignedStatePath is the supplementary inventory source for disks
	// not (yet) assigned to the array. Optional.
	UnassignedStatePath string `json:"unassignedStatePath"`
	// SystemStatePath exposes global array state, including the
	// parity-check/resync indicator.
	SystemStatePath string `json:"systemStatePath"`

	// StatusFile receives a JSON snapshot of the latest decision after
	// each run. Empty disables it.
	StatusFile string `json:"statusFile"`

	Policy     PolicyConfig     `json:"policy"`
	CpuSensor  SensorConfig     `json:"cpuSensor"`
	Fans       []FanConfig      `json:"fans"`
	Daemon     DaemonConfig     `json:"daemon"`
	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("arrayfan")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/arrayfan/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("diskStatePath", "/var/local/emhttp/disks.ini")
	viper.SetDefault("unassignedStatePath", "/var/local/emhttp/devs.ini")
	viper.SetDefault("systemStatePath", "/var/local/emhttp/var.ini")
	viper.SetDefault("statusFile", "")

	viper.SetDefault("policy.includeParity", true)
	viper.SetDefault("policy.includeData", true)
	viper.SetDefault("policy.includeCache", true)
	viper.SetDefault("policy.includeFlash", false)
	viper.SetDefault("policy.includeUnassigned", false)
	viper.SetDefault("policy.excludeDisks", []string{})

	viper.SetDefault("policy.driveTemps", ThresholdConfig{Low: 41, High: 52})
	viper.SetDefault("policy.cacheTemps", ThresholdConfig{Low: 50, High: 65})
	viper.SetDefault("policy.cpuTemps", ThresholdConfig{Low: 55, High: 75})

	viper.SetDefault("policy.minPwm", 25)
	viper.SetDefault("policy.maxPwm", 255)
	viper.SetDefault("policy.offPwm", 0)

	viper.SetDefault("daemon.interval", 3*time.Minute)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9449)

	viper.SetDefault("statistics.enabled", false)

	viper.SetDefault("fans", []FanConfig{})
}

// DetectAndReadConfigFile reads the detected configuration file and
// returns the path that was used.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(thresholdHookFunc()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
