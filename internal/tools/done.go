package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*Done)(nil)

// Done is the terminal action: its answer parameter becomes the final
// task output.
type Done struct {
	log output.LoggerPort
}

func NewDoneTool(log output.LoggerPort) output.ToolPort {
	return &Done{log: log}
}

func (t *Done) Name() entity.ToolName {
	return entity.ToolDone
}

func (t *Done) Description() string {
	return "Finishes the task. Put the complete final answer for the user into the answer parameter."
}

func (t *Done) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string", "description": "The final answer to present to the user."},
		},
		"required": []string{"answer"},
	}
}

func (t *Done) Execute(ctx context.Context, params map[string]any) (string, error) {
	answer := stringParam(params, "answer", "")
	if answer == "" {
		return "", fmt.Errorf("answer is required")
	}
	return answer, nil
}
