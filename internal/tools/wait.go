package tools

import (
	"context"
	"fmt"
	"time"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"
)

// maxWaitSeconds caps a single Wait action so a confused oracle cannot
// park the loop for minutes.
const maxWaitSeconds = 30

var _ output.ToolPort = (*Wait)(nil)

type Wait struct {
	log output.LoggerPort
}

func NewWaitTool(log output.LoggerPort) output.ToolPort {
	return &Wait{log: log}
}

func (t *Wait) Name() entity.ToolName {
	return entity.ToolWait
}

func (t *Wait) Description() string {
	return "Waits the given number of seconds, for apps or pages that are still loading."
}

func (t *Wait) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"duration": map[string]any{"type": "integer", "description": "Seconds to wait, at most 30."},
		},
		"required": []string{"duration"},
	}
}

func (t *Wait) Execute(ctx context.Context, params map[string]any) (string, error) {
	seconds := intParam(params, "duration", 1)
	if seconds < 1 {
		seconds = 1
	}
	if seconds > maxWaitSeconds {
		seconds = maxWaitSeconds
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(time.Duration(seconds) * time.Second):
	}
	return fmt.Sprintf("waited %d seconds", seconds), nil
}
