package configuration

import "time"

type DaemonConfig struct {
	// Interval between decision runs.
	Interval time.Duration `json:"interval"`
}
