//go:build windows

package windows

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"yuki/internal/application/port/output"
)

// Shell runs one command through cmd.exe and reports its combined
// output and exit status.
type Shell struct {
	log output.LoggerPort
}

var _ output.ShellPort = (*Shell)(nil)

func NewShell(log output.LoggerPort) *Shell {
	return &Shell{log: log}
}

func (s *Shell) Run(ctx context.Context, command string) (string, int, error) {
	cmd := exec.CommandContext(ctx, "cmd", "/C", command)
	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return text, exitErr.ExitCode(), nil
		}
		return text, -1, err
	}
	return text, 0, nil
}
