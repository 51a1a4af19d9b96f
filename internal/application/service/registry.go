package service

import (
	"context"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"
)

var _ output.ToolRegistry = (*ToolRegistryImpl)(nil)

// ToolRegistryImpl dispatches actions by name. Failures never escape as
// errors: an unknown or failing tool becomes a ToolResult observation
// for the oracle to react to.
type ToolRegistryImpl struct {
	tools map[entity.ToolName]output.ToolPort
	log   output.LoggerPort
}

func NewToolRegistry(log output.LoggerPort) *ToolRegistryImpl {
	return &ToolRegistryImpl{
		tools: make(map[entity.ToolName]output.ToolPort),
		log:   log,
	}
}

func (r *ToolRegistryImpl) Register(tool output.ToolPort) {
	r.tools[tool.Name()] = tool
}

func (r *ToolRegistryImpl) Get(name entity.ToolName) (output.ToolPort, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *ToolRegistryImpl) All() []output.ToolPort {
	result := make([]output.ToolPort, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, tool)
	}
	return result
}

func (r *ToolRegistryImpl) Definitions() []entity.ToolDefinition {
	result := make([]entity.ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, entity.ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return result
}

func (r *ToolRegistryImpl) Execute(ctx context.Context, name entity.ToolName, params map[string]any) entity.ToolResult {
	tool, ok := r.tools[name]
	if !ok {
		r.log.Warn("unknown tool called", "name", name.String())
		return entity.ToolFailure(fmt.Errorf("unknown tool %q", name))
	}

	r.log.Info("executing tool", "name", name.String(), "params", params)
	content, err := tool.Execute(ctx, params)
	if err != nil {
		r.log.Error("tool execution failed", "name", name.String(), "error", err)
		return entity.ToolFailure(err)
	}
	return entity.ToolSuccess(content)
}
