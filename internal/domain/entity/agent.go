package entity

// Action is the structured next step chosen by the reasoning oracle.
// Params carries the decoded <action_input> payload; it is empty (not
// nil-checked by callers) when the oracle omitted or garbled the input.
type Action struct {
	Name   ToolName
	Params map[string]any
}

// AgentData is the parsed oracle output for one loop iteration. It lives
// only long enough to produce the next prompt and action.
type AgentData struct {
	Evaluate string
	Plan     string
	Thought  string
	Action   Action
}

// AgentState is the mutable control-loop state, updated once per node
// visit of the reason/action/answer graph. Terminal when Output or Error
// is set or Steps reaches MaxSteps.
type AgentState struct {
	Input               string
	Steps               int
	MaxSteps            int
	AgentData           *AgentData
	Messages            []Message
	PreviousObservation string
	Output              string
	Error               string
}

// IsDone reports whether the loop reached a terminal condition.
func (s *AgentState) IsDone() bool {
	return s.Output != "" || s.Error != "" || s.Steps >= s.MaxSteps
}

// AgentResult is what Invoke returns to callers: either content or an
// error string, never both empty for a finished task and never an
// unhandled panic.
type AgentResult struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}
