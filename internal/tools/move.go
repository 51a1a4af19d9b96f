package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*Move)(nil)

type Move struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewMoveTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &Move{desktop: d, log: log}
}

func (t *Move) Name() entity.ToolName {
	return entity.ToolMove
}

func (t *Move) Description() string {
	return "Moves the mouse pointer to the given screen coordinates without clicking. Useful to reveal hover menus."
}

func (t *Move) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"to": locSchema("Target coordinates [x, y]."),
		},
		"required": []string{"to"},
	}
}

func (t *Move) Execute(ctx context.Context, params map[string]any) (string, error) {
	to, err := pointParam(params, "to")
	if err != nil {
		return "", err
	}
	if err := t.desktop.MoveTo(to.X, to.Y); err != nil {
		return "", err
	}
	return fmt.Sprintf("moved pointer to (%d,%d)", to.X, to.Y), nil
}
