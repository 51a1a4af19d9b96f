package tools

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*Human)(nil)

// Human suspends the task with a question for the user. The loop treats
// it as a terminal action; the caller presents the question and starts a
// new invocation with the user's reply.
type Human struct {
	log output.LoggerPort
}

func NewHumanTool(log output.LoggerPort) output.ToolPort {
	return &Human{log: log}
}

func (t *Human) Name() entity.ToolName {
	return entity.ToolHuman
}

func (t *Human) Description() string {
	return "Asks the user for missing information or confirmation. The task suspends until the user responds."
}

func (t *Human) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "description": "The question for the user."},
		},
		"required": []string{"question"},
	}
}

func (t *Human) Execute(ctx context.Context, params map[string]any) (string, error) {
	question := stringParam(params, "question", "")
	if question == "" {
		return "", fmt.Errorf("question is required")
	}
	return question, nil
}
