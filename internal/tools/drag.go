package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*Drag)(nil)

type Drag struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewDragTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &Drag{desktop: d, log: log}
}

func (t *Drag) Name() entity.ToolName {
	return entity.ToolDrag
}

func (t *Drag) Description() string {
	return "Drags with the left button held from one screen coordinate to another."
}

func (t *Drag) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"from": locSchema("Start coordinates [x, y]."),
			"to":   locSchema("End coordinates [x, y]."),
		},
		"required": []string{"from", "to"},
	}
}

func (t *Drag) Execute(ctx context.Context, params map[string]any) (string, error) {
	from, err := pointParam(params, "from")
	if err != nil {
		return "", err
	}
	to, err := pointParam(params, "to")
	if err != nil {
		return "", err
	}
	if err := t.desktop.DragTo(from.X, from.Y, to.X, to.Y); err != nil {
		return "", err
	}
	return fmt.Sprintf("dragged (%d,%d) to (%d,%d)", from.X, from.Y, to.X, to.Y), nil
}
