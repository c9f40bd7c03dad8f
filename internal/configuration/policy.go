package configuration

// ThresholdConfig is a pair of temperatures bounding the linear part of
// the fan curve: below Low the fan is off, at Low it runs at MinPwm and
// above High at MaxPwm.
type ThresholdConfig struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// PolicyConfig selects which disks are monitored and how temperatures map
// to PWM values. It is immutable for the duration of a decision run.
type PolicyConfig struct {
	IncludeParity bool `json:"includeParity"`
	IncludeData   bool `json:"includeData"`
	// IncludeCache is accepted for symmetry with the other include flags
	// but has no effect on monitoring: cache disks always form their own
	// group and never enter the array group.
	IncludeCache      bool `json:"includeCache"`
	IncludeFlash      bool `json:"includeFlash"`
	IncludeUnassigned bool `json:"includeUnassigned"`

	// ExcludeDisks lists disk names (exact match) that are never monitored.
	ExcludeDisks []string `json:"excludeDisks"`

	DriveTemps ThresholdConfig `json:"driveTemps"`
	CacheTemps ThresholdConfig `json:"cacheTemps"`
	CpuTemps   ThresholdConfig `json:"cpuTemps"`

	// MinPwm is the PWM value assigned at the low threshold, MaxPwm the
	// value at and above the high threshold, OffPwm the value below the
	// low threshold.
	MinPwm int `json:"minPwm"`
	MaxPwm int `json:"maxPwm"`
	OffPwm int `json:"offPwm"`
}
