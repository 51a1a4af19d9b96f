package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*SwitchApp)(nil)

type SwitchApp struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewSwitchTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &SwitchApp{desktop: d, log: log}
}

func (t *SwitchApp) Name() entity.ToolName {
	return entity.ToolSwitch
}

func (t *SwitchApp) Description() string {
	return "Brings an already open window to the foreground by app name."
}

func (t *SwitchApp) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "description": "Name of an app from the open apps list."},
		},
		"required": []string{"name"},
	}
}

func (t *SwitchApp) Execute(ctx context.Context, params map[string]any) (string, error) {
	name := stringParam(params, "name", "")
	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	if err := t.desktop.SwitchApp(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("switched to %s", name), nil
}
