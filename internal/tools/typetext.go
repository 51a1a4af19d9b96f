package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*TypeText)(nil)

type TypeText struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewTypeTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &TypeText{desktop: d, log: log}
}

func (t *TypeText) Name() entity.ToolName {
	return entity.ToolType
}

func (t *TypeText) Description() string {
	return "Clicks into the field at the given coordinates and types the text. Set clear to true to replace existing content."
}

func (t *TypeText) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"loc":   locSchema("Screen coordinates [x, y] of the input field."),
			"text":  map[string]any{"type": "string", "description": "The text to type."},
			"clear": map[string]any{"type": "boolean", "description": "Select and overwrite existing content first."},
		},
		"required": []string{"loc", "text"},
	}
}

func (t *TypeText) Execute(ctx context.Context, params map[string]any) (string, error) {
	loc, err := pointParam(params, "loc")
	if err != nil {
		return "", err
	}
	text := stringParam(params, "text", "")
	if text == "" {
		return "", fmt.Errorf("text is required")
	}
	clear := boolParam(params, "clear", false)

	if err := t.desktop.TypeAt(loc.X, loc.Y, text, clear); err != nil {
		return "", err
	}
	return fmt.Sprintf("typed %q at (%d,%d)", text, loc.X, loc.Y), nil
}
