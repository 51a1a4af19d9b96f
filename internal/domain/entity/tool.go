package entity

type ToolName string

const (
	ToolClick    ToolName = "Click Tool"
	ToolType     ToolName = "Type Tool"
	ToolLaunch   ToolName = "Launch Tool"
	ToolSwitch   ToolName = "Switch Tool"
	ToolScroll   ToolName = "Scroll Tool"
	ToolDrag     ToolName = "Drag Tool"
	ToolMove     ToolName = "Move Tool"
	ToolShortcut ToolName = "Shortcut Tool"
	ToolShell    ToolName = "Shell Tool"
	ToolWait     ToolName = "Wait Tool"
	ToolDone     ToolName = "Done Tool"
	ToolHuman    ToolName = "Human Tool"
)

func (t ToolName) String() string {
	return string(t)
}

// IsCoordinateBased reports whether the tool acts on absolute screen
// coordinates and therefore needs fresh element geometry before running.
func (t ToolName) IsCoordinateBased() bool {
	switch t {
	case ToolClick, ToolType, ToolScroll, ToolDrag, ToolMove:
		return true
	}
	return false
}

// IsTerminal reports whether the action ends the loop instead of
// executing a desktop operation.
func (t ToolName) IsTerminal() bool {
	return t == ToolDone || t == ToolHuman
}

// ToolDefinition is the name/description/schema triple advertised to the
// oracle in the system prompt.
type ToolDefinition struct {
	Name        ToolName
	Description string
	Parameters  map[string]any
}

// ToolResult is the uniform outcome of one tool execution. A failed tool
// is an observation for the oracle, not a loop-fatal error.
type ToolResult struct {
	IsSuccess bool
	Content   string
	Error     string
}

func ToolSuccess(content string) ToolResult {
	return ToolResult{IsSuccess: true, Content: content}
}

func ToolFailure(err error) ToolResult {
	return ToolResult{IsSuccess: false, Error: err.Error()}
}

// Observation renders the result the way the loop feeds it back to the
// oracle.
func (r ToolResult) Observation() string {
	if r.IsSuccess {
		return r.Content
	}
	return "Error: " + r.Error
}
