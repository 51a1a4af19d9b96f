package agent

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"yuki/internal/domain/entity"
)

const systemPromptTemplate = `You are Yuki, an autonomous agent operating a Windows desktop through its accessibility tree. Work step by step. On every turn respond with exactly this structure and nothing else:

<evaluate>How the previous action worked out</evaluate>
<plan>Your remaining plan</plan>
<thought>Reasoning for the next single action</thought>
<action_name>One tool name from the list below</action_name>
<action_input>{"param": "value"}</action_input>

Available tools:
{{range .Tools}}- {{.Name}}: {{.Description}}
{{end}}
Rules:
- Use the element labels and Loc coordinates from the desktop state verbatim; never invent coordinates.
- Launch an app before interacting with it if it is not in the app list.
- Use "{{.DoneTool}}" with an "answer" parameter when the task is complete.
- Use "{{.HumanTool}}" with a "question" parameter when you need the user.`

const statePromptTemplate = `Task: {{.Query}}
Step: {{.Steps}}/{{.MaxSteps}}

Active app: {{.ActiveApp}}

Open apps:
{{.Apps}}
Interactive elements:
{{.Interactive}}
Scrollable elements:
{{.Scrollable}}
Visible text:
{{.Informative}}
{{if .Observation}}Previous observation: {{.Observation}}{{end}}`

var (
	systemTmpl = template.Must(template.New("system").Parse(systemPromptTemplate))
	stateTmpl  = template.Must(template.New("state").Parse(statePromptTemplate))
)

type toolInfo struct {
	Name        string
	Description string
}

// SystemPrompt renders the oracle's standing instructions with the
// registered tool set, sorted for a stable prompt.
func SystemPrompt(defs []entity.ToolDefinition) (string, error) {
	tools := make([]toolInfo, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, toolInfo{Name: def.Name.String(), Description: def.Description})
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })

	var buf bytes.Buffer
	err := systemTmpl.Execute(&buf, map[string]any{
		"Tools":     tools,
		"DoneTool":  entity.ToolDone.String(),
		"HumanTool": entity.ToolHuman.String(),
	})
	if err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return buf.String(), nil
}

// StatePrompt serializes one DesktopState plus loop bookkeeping into the
// next human turn for the oracle.
func StatePrompt(state *entity.DesktopState, agentState *entity.AgentState) (string, error) {
	var buf bytes.Buffer
	err := stateTmpl.Execute(&buf, map[string]any{
		"Query":       agentState.Input,
		"Steps":       agentState.Steps,
		"MaxSteps":    agentState.MaxSteps,
		"ActiveApp":   state.ActiveAppName(),
		"Apps":        entity.AppsDescription(state.Apps),
		"Interactive": state.TreeState.InteractiveDescription(),
		"Scrollable":  state.TreeState.ScrollableDescription(),
		"Informative": state.TreeState.InformativeDescription(),
		"Observation": agentState.PreviousObservation,
	})
	if err != nil {
		return "", fmt.Errorf("render state prompt: %w", err)
	}
	return buf.String(), nil
}
