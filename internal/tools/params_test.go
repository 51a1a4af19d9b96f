package tools

import (
	"context"
	"encoding/json"
	"testing"

	"yuki/internal/domain/entity"
	"yuki/internal/infrastructure/logger"
)

// decoded mimics what the action parser produces: JSON into
// map[string]any, so all numbers arrive as float64.
func decoded(t *testing.T, raw string) map[string]any {
	t.Helper()
	var params map[string]any
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		t.Fatalf("bad test input: %v", err)
	}
	return params
}

func TestPointParam(t *testing.T) {
	p, err := pointParam(decoded(t, `{"loc": [120, 340]}`), "loc")
	if err != nil {
		t.Fatalf("pointParam: %v", err)
	}
	if p != (entity.Point{X: 120, Y: 340}) {
		t.Errorf("point = %+v", p)
	}
}

func TestPointParam_Missing(t *testing.T) {
	if _, err := pointParam(map[string]any{}, "loc"); err == nil {
		t.Error("missing key must error")
	}
}

func TestPointParam_WrongShape(t *testing.T) {
	cases := []string{
		`{"loc": [100]}`,
		`{"loc": [100, 200, 300]}`,
		`{"loc": "100,200"}`,
		`{"loc": ["a", "b"]}`,
	}
	for _, raw := range cases {
		if _, err := pointParam(decoded(t, raw), "loc"); err == nil {
			t.Errorf("%s: want error", raw)
		}
	}
}

func TestScalarParams(t *testing.T) {
	params := decoded(t, `{"text": "hi", "duration": 5, "clear": true}`)

	if got := stringParam(params, "text", ""); got != "hi" {
		t.Errorf("stringParam = %q", got)
	}
	if got := stringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("stringParam default = %q", got)
	}
	if got := intParam(params, "duration", 1); got != 5 {
		t.Errorf("intParam = %d", got)
	}
	if got := intParam(params, "text", 7); got != 7 {
		t.Errorf("intParam wrong type must default, got %d", got)
	}
	if got := boolParam(params, "clear", false); got != true {
		t.Errorf("boolParam = %t", got)
	}
}

func TestDoneTool_RequiresAnswer(t *testing.T) {
	tool := NewDoneTool(logger.NewNop())

	if _, err := tool.Execute(context.Background(), map[string]any{}); err == nil {
		t.Error("done without answer must error")
	}

	out, err := tool.Execute(context.Background(), map[string]any{"answer": "all set"})
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if out != "all set" {
		t.Errorf("out = %q", out)
	}
}

func TestHumanTool_RequiresQuestion(t *testing.T) {
	tool := NewHumanTool(logger.NewNop())

	if _, err := tool.Execute(context.Background(), map[string]any{}); err == nil {
		t.Error("human without question must error")
	}

	out, err := tool.Execute(context.Background(), map[string]any{"question": "which file?"})
	if err != nil {
		t.Fatalf("human: %v", err)
	}
	if out != "which file?" {
		t.Errorf("out = %q", out)
	}
}

func TestWaitTool_ClampsDuration(t *testing.T) {
	tool := NewWaitTool(logger.NewNop())

	out, err := tool.Execute(context.Background(), decoded(t, `{"duration": 0}`))
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if out != "waited 1 seconds" {
		t.Errorf("out = %q", out)
	}
}

func TestWaitTool_CancelledContext(t *testing.T) {
	tool := NewWaitTool(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := tool.Execute(ctx, decoded(t, `{"duration": 10}`)); err == nil {
		t.Error("cancelled wait must error")
	}
}
