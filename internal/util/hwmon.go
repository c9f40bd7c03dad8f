package util

import (
	"os"
	"strings"
)

// GetDeviceName reads the name file of a hwmon device path.
func GetDeviceName(devicePath string) string {
	content, _ := os.ReadFile(devicePath + "/name")
	return strings.TrimSpace(string(content))
}
