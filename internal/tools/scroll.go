package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

const wheelDelta = 120

var _ output.ToolPort = (*Scroll)(nil)

type Scroll struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewScrollTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &Scroll{desktop: d, log: log}
}

func (t *Scroll) Name() entity.ToolName {
	return entity.ToolScroll
}

func (t *Scroll) Description() string {
	return "Scrolls at the given coordinates. Use the Loc of a scrollable element. Direction is up, down, left or right."
}

func (t *Scroll) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"loc":         locSchema("Screen coordinates [x, y] inside the scrollable area."),
			"direction":   map[string]any{"type": "string", "enum": []string{"up", "down", "left", "right"}},
			"wheel_times": map[string]any{"type": "integer", "description": "Number of wheel notches, defaults to 3."},
		},
		"required": []string{"loc", "direction"},
	}
}

func (t *Scroll) Execute(ctx context.Context, params map[string]any) (string, error) {
	loc, err := pointParam(params, "loc")
	if err != nil {
		return "", err
	}
	direction := stringParam(params, "direction", "")
	times := intParam(params, "wheel_times", 3)

	var dx, dy int
	switch direction {
	case "up":
		dy = wheelDelta * times
	case "down":
		dy = -wheelDelta * times
	case "left":
		dx = -wheelDelta * times
	case "right":
		dx = wheelDelta * times
	default:
		return "", fmt.Errorf("unknown direction %q", direction)
	}

	if err := t.desktop.ScrollAt(loc.X, loc.Y, dx, dy); err != nil {
		return "", err
	}
	return fmt.Sprintf("scrolled %s %d notches at (%d,%d)", direction, times, loc.X, loc.Y), nil
}
