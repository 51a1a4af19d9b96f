package output

import (
	"context"

	"yuki/internal/domain/entity"
)

// ToolPort is one named action handler. Tools receive decoded parameters
// and perform the literal OS action; validation of required parameters is
// the tool's job, not the control loop's.
type ToolPort interface {
	Name() entity.ToolName
	Description() string
	Parameters() map[string]any
	Execute(ctx context.Context, params map[string]any) (string, error)
}

// ToolRegistry dispatches actions by name. Execute never returns an
// error: an unknown tool or a failed tool both become a ToolResult the
// loop feeds back to the oracle as an observation.
type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	Definitions() []entity.ToolDefinition
	Execute(ctx context.Context, name entity.ToolName, params map[string]any) entity.ToolResult
}
