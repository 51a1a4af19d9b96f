package agent

import (
	"encoding/json"
	"regexp"
	"strings"

	"yuki/internal/domain/entity"
)

var (
	evaluateRe    = regexp.MustCompile(`(?s)<evaluate>(.*?)</evaluate>`)
	planRe        = regexp.MustCompile(`(?s)<plan>(.*?)</plan>`)
	thoughtRe     = regexp.MustCompile(`(?s)<thought>(.*?)</thought>`)
	actionNameRe  = regexp.MustCompile(`(?s)<action_name>(.*?)</action_name>`)
	actionInputRe = regexp.MustCompile(`(?s)<action_input>(.*?)</action_input>`)
)

// ParseAgentData extracts the delimited structure from one oracle
// response. Missing tags degrade to empty strings and an unparsable
// <action_input> degrades to an empty parameter set: a malformed
// response must not crash a multi-minute task. Tool-level validation is
// what rejects an underspecified call.
func ParseAgentData(content string) *entity.AgentData {
	data := &entity.AgentData{
		Evaluate: extract(evaluateRe, content),
		Plan:     extract(planRe, content),
		Thought:  extract(thoughtRe, content),
		Action: entity.Action{
			Name:   entity.ToolName(extract(actionNameRe, content)),
			Params: map[string]any{},
		},
	}

	raw := extract(actionInputRe, content)
	if raw == "" {
		return data
	}
	var params map[string]any
	if err := json.Unmarshal([]byte(raw), &params); err == nil && params != nil {
		data.Action.Params = params
	}
	return data
}

func extract(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
