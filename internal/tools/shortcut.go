package tools

import (
	"context"
	"fmt"
	"strings"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

var _ output.ToolPort = (*Shortcut)(nil)

type Shortcut struct {
	desktop *desktop.Desktop
	log     output.LoggerPort
}

func NewShortcutTool(d *desktop.Desktop, log output.LoggerPort) output.ToolPort {
	return &Shortcut{desktop: d, log: log}
}

func (t *Shortcut) Name() entity.ToolName {
	return entity.ToolShortcut
}

func (t *Shortcut) Description() string {
	return "Presses a key combination, e.g. \"ctrl+s\" or \"alt+f4\". Single keys like \"enter\" or \"esc\" work too."
}

func (t *Shortcut) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"shortcut": map[string]any{"type": "string", "description": "Keys joined with +, e.g. \"ctrl+shift+t\"."},
		},
		"required": []string{"shortcut"},
	}
}

func (t *Shortcut) Execute(ctx context.Context, params map[string]any) (string, error) {
	combo := stringParam(params, "shortcut", "")
	if combo == "" {
		return "", fmt.Errorf("shortcut is required")
	}

	keys := strings.Split(strings.ToLower(combo), "+")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	if err := t.desktop.PressShortcut(keys); err != nil {
		return "", err
	}
	return fmt.Sprintf("pressed %s", combo), nil
}
