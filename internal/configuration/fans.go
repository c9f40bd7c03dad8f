package configuration

type FanConfig struct {
	ID    string          `json:"id"`
	HwMon *HwMonFanConfig `json:"hwMon,omitempty"`
	File  *FileFanConfig  `json:"file,omitempty"`
}

type HwMonFanConfig struct {
	Platform string `json:"platform"`
	Index    int    `json:"index"`

	// resolved at startup from platform + index
	PwmOutput string
	RpmInput  string
}

type FileFanConfig struct {
	Path string `json:"path"`
}
