package agent

import (
	"testing"

	"yuki/internal/domain/entity"
)

func TestParseAgentData_FullResponse(t *testing.T) {
	content := `<evaluate>The click landed on the button.</evaluate>
<plan>Type the text, then submit.</plan>
<thought>The field at (120,340) is focused now.</thought>
<action_name>Type Tool</action_name>
<action_input>{"loc": [120, 340], "text": "hello", "clear": true}</action_input>`

	data := ParseAgentData(content)

	if data.Evaluate != "The click landed on the button." {
		t.Errorf("evaluate = %q", data.Evaluate)
	}
	if data.Plan != "Type the text, then submit." {
		t.Errorf("plan = %q", data.Plan)
	}
	if data.Thought != "The field at (120,340) is focused now." {
		t.Errorf("thought = %q", data.Thought)
	}
	if data.Action.Name != entity.ToolType {
		t.Errorf("action = %q", data.Action.Name)
	}
	if data.Action.Params["text"] != "hello" {
		t.Errorf("text = %v", data.Action.Params["text"])
	}
	if data.Action.Params["clear"] != true {
		t.Errorf("clear = %v", data.Action.Params["clear"])
	}
	loc, ok := data.Action.Params["loc"].([]any)
	if !ok || len(loc) != 2 || loc[0] != float64(120) {
		t.Errorf("loc = %v", data.Action.Params["loc"])
	}
}

func TestParseAgentData_MultilineTagBodies(t *testing.T) {
	content := "<thought>line one\nline two</thought>\n<action_name>Wait Tool</action_name>\n<action_input>{}</action_input>"

	data := ParseAgentData(content)

	if data.Thought != "line one\nline two" {
		t.Errorf("thought = %q", data.Thought)
	}
	if data.Action.Name != entity.ToolWait {
		t.Errorf("action = %q", data.Action.Name)
	}
}

func TestParseAgentData_MissingActionInput(t *testing.T) {
	content := "<thought>just waiting</thought>\n<action_name>Wait Tool</action_name>"

	data := ParseAgentData(content)

	if data.Action.Name != entity.ToolWait {
		t.Errorf("action = %q", data.Action.Name)
	}
	if data.Action.Params == nil {
		t.Fatal("params must never be nil")
	}
	if len(data.Action.Params) != 0 {
		t.Errorf("params = %v", data.Action.Params)
	}
}

func TestParseAgentData_GarbledJSONDegrades(t *testing.T) {
	content := `<action_name>Click Tool</action_name>
<action_input>{"loc": [100, 200</action_input>`

	data := ParseAgentData(content)

	if data.Action.Name != entity.ToolClick {
		t.Errorf("action = %q", data.Action.Name)
	}
	if len(data.Action.Params) != 0 {
		t.Errorf("garbled input must degrade to empty params, got %v", data.Action.Params)
	}
}

func TestParseAgentData_NoTagsAtAll(t *testing.T) {
	data := ParseAgentData("Sure, I will click the button for you.")

	if data.Action.Name != "" {
		t.Errorf("action = %q", data.Action.Name)
	}
	if data.Evaluate != "" || data.Plan != "" || data.Thought != "" {
		t.Errorf("tags should be empty: %+v", data)
	}
	if data.Action.Params == nil {
		t.Error("params must never be nil")
	}
}

func TestParseAgentData_TrimsWhitespace(t *testing.T) {
	content := "<action_name>\n  Done Tool  \n</action_name>\n<action_input>\n{\"answer\": \"ok\"}\n</action_input>"

	data := ParseAgentData(content)

	if data.Action.Name != entity.ToolDone {
		t.Errorf("action = %q", data.Action.Name)
	}
	if data.Action.Params["answer"] != "ok" {
		t.Errorf("answer = %v", data.Action.Params["answer"])
	}
}
