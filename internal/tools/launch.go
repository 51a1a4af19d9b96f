package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*Launch)(nil)

type Launch struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewLaunchTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &Launch{desktop: d, log: log}
}

func (t *Launch) Name() entity.ToolName {
	return entity.ToolLaunch
}

func (t *Launch) Description() string {
	return "Launches an application by name, or brings it to the foreground if it is already running."
}

func (t *Launch) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "description": "Application name, e.g. \"notepad\" or \"chrome\"."},
		},
		"required": []string{"name"},
	}
}

func (t *Launch) Execute(ctx context.Context, params map[string]any) (string, error) {
	name := stringParam(params, "name", "")
	if name == "" {
		return "", fmt.Errorf("name is required")
	}

	started, err := t.desktop.LaunchApp(ctx, name)
	if err != nil {
		return "", err
	}
	if started {
		return fmt.Sprintf("launched %s", name), nil
	}
	return fmt.Sprintf("%s was already running, brought to foreground", name), nil
}
