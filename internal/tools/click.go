package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*Click)(nil)

type Click struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewClickTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &Click{desktop: d, log: log}
}

func (t *Click) Name() entity.ToolName {
	return entity.ToolClick
}

func (t *Click) Description() string {
	return "Clicks at the given screen coordinates. Use the Loc value of an interactive element from the desktop state."
}

func (t *Click) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"loc":    locSchema("Screen coordinates [x, y] of the element center."),
			"button": map[string]any{"type": "string", "enum": []string{"left", "right", "middle"}, "description": "Mouse button, defaults to left."},
			"clicks": map[string]any{"type": "integer", "description": "Number of clicks, 1 for single, 2 for double."},
		},
		"required": []string{"loc"},
	}
}

func (t *Click) Execute(ctx context.Context, params map[string]any) (string, error) {
	loc, err := pointParam(params, "loc")
	if err != nil {
		return "", err
	}
	button := stringParam(params, "button", "left")
	clicks := intParam(params, "clicks", 1)

	if err := t.desktop.ClickAt(loc.X, loc.Y, button, clicks); err != nil {
		return "", err
	}
	return fmt.Sprintf("clicked %s at (%d,%d)", button, loc.X, loc.Y), nil
}
