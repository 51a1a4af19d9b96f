package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*Shell)(nil)

type Shell struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewShellTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &Shell{desktop: d, log: log}
}

func (t *Shell) Name() entity.ToolName {
	return entity.ToolShell
}

func (t *Shell) Description() string {
	return "Runs a PowerShell command and returns its output and exit status. Prefer UI tools for anything visible on screen."
}

func (t *Shell) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"command": map[string]any{"type": "string", "description": "The command line to execute."},
		},
		"required": []string{"command"},
	}
}

func (t *Shell) Execute(ctx context.Context, params map[string]any) (string, error) {
	command := stringParam(params, "command", "")
	if command == "" {
		return "", fmt.Errorf("command is required")
	}

	out, status, err := t.desktop.RunShell(ctx, command)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("status %d\n%s", status, out), nil
}
