package service

import (
	"context"
	"errors"
	"testing"

	"yuki/internal/domain/entity"
	"yuki/internal/infrastructure/logger"
)

type fakeTool struct {
	name    entity.ToolName
	content string
	err     error
	params  map[string]any
}

func (t *fakeTool) Name() entity.ToolName       { return t.name }
func (t *fakeTool) Description() string         { return "fake" }
func (t *fakeTool) Parameters() map[string]any  { return map[string]any{"type": "object"} }
func (t *fakeTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	t.params = params
	return t.content, t.err
}

func TestExecute_Success(t *testing.T) {
	r := NewToolRegistry(logger.NewNop())
	tool := &fakeTool{name: entity.ToolWait, content: "waited 2s"}
	r.Register(tool)

	result := r.Execute(context.Background(), entity.ToolWait, map[string]any{"seconds": 2.0})

	if !result.IsSuccess {
		t.Fatalf("result = %+v", result)
	}
	if result.Observation() != "waited 2s" {
		t.Errorf("observation = %q", result.Observation())
	}
	if tool.params["seconds"] != 2.0 {
		t.Errorf("params not passed through: %v", tool.params)
	}
}

func TestExecute_UnknownToolIsObservation(t *testing.T) {
	r := NewToolRegistry(logger.NewNop())

	result := r.Execute(context.Background(), entity.ToolName("Bogus Tool"), nil)

	if result.IsSuccess {
		t.Fatal("unknown tool must fail")
	}
	if result.Observation() != `Error: unknown tool "Bogus Tool"` {
		t.Errorf("observation = %q", result.Observation())
	}
}

func TestExecute_ToolErrorBecomesFailure(t *testing.T) {
	r := NewToolRegistry(logger.NewNop())
	r.Register(&fakeTool{name: entity.ToolClick, err: errors.New("coordinates (5000, 100) outside the screen")})

	result := r.Execute(context.Background(), entity.ToolClick, nil)

	if result.IsSuccess {
		t.Fatal("tool error must fail the result")
	}
	if result.Error != "coordinates (5000, 100) outside the screen" {
		t.Errorf("error = %q", result.Error)
	}
}

func TestDefinitions_CoverRegisteredTools(t *testing.T) {
	r := NewToolRegistry(logger.NewNop())
	r.Register(&fakeTool{name: entity.ToolClick})
	r.Register(&fakeTool{name: entity.ToolType})

	defs := r.Definitions()
	if len(defs) != 2 {
		t.Fatalf("definitions = %d, want 2", len(defs))
	}
	names := map[entity.ToolName]bool{}
	for _, def := range defs {
		names[def.Name] = true
		if def.Parameters == nil {
			t.Errorf("%s: nil parameter schema", def.Name)
		}
	}
	if !names[entity.ToolClick] || !names[entity.ToolType] {
		t.Errorf("names = %v", names)
	}
}

func TestRegister_LastWins(t *testing.T) {
	r := NewToolRegistry(logger.NewNop())
	r.Register(&fakeTool{name: entity.ToolWait, content: "first"})
	r.Register(&fakeTool{name: entity.ToolWait, content: "second"})

	result := r.Execute(context.Background(), entity.ToolWait, nil)
	if result.Content != "second" {
		t.Errorf("content = %q", result.Content)
	}
	if len(r.All()) != 1 {
		t.Errorf("All() = %d entries, want 1", len(r.All()))
	}
}
