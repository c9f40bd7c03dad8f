package util

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", errors.New(fmt.Sprintf("Cannot execute %s: %s", executable, err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	out, err := cmd.Output()

	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("command timed out: %s", executable)
	}

	if err != nil {
		return "", fmt.Errorf("command failed to execute: %s: %w", executable, err)
	}

	strout := string(out)
	strout = strings.Trim(strout, "\n")

	return strout, nil
}
