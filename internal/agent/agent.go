package agent

import (
	"context"
	"fmt"
	"time"

	"yuki/internal/application/port/input"
	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"
)

const maxObservationLen = 20000

// node is one state of the control-loop graph.
type node int

const (
	nodeReason node = iota
	nodeAction
	nodeAnswer
)

// Config tunes the control loop. The NoRefreshActions list is the
// empirically tuned set of actions that cannot change element geometry;
// refreshing after them risks an unwanted focus shift for no benefit.
type Config struct {
	MaxSteps              int
	UseVision             bool
	StaleAfter            time.Duration
	PreReasonRefreshAfter time.Duration
	LaunchSettleNew       time.Duration
	LaunchSettleKnown     time.Duration
	PollInterval          time.Duration
	NoRefreshActions      []entity.ToolName
}

func DefaultConfig() Config {
	return Config{
		MaxSteps:              25,
		StaleAfter:            2 * time.Second,
		PreReasonRefreshAfter: time.Second,
		LaunchSettleNew:       2500 * time.Millisecond,
		LaunchSettleKnown:     time.Second,
		PollInterval:          50 * time.Millisecond,
		NoRefreshActions: []entity.ToolName{
			entity.ToolShortcut, entity.ToolDone, entity.ToolWait, entity.ToolHuman,
		},
	}
}

var _ input.AgentPort = (*Agent)(nil)

// Agent drives the reason/action/answer machine: serialize the desktop
// state, ask the oracle, execute one tool, repeat until a terminal
// action or the step budget. One Invoke runs on one worker; steps are
// strictly sequential.
type Agent struct {
	desktop   *desktop.Desktop
	oracle    output.OraclePort
	tools     output.ToolRegistry
	ctrl      *Controller
	log       output.LoggerPort
	cfg       Config
	noRefresh map[entity.ToolName]bool
}

func New(d *desktop.Desktop, oracle output.OraclePort, tools output.ToolRegistry, cfg Config, log output.LoggerPort) *Agent {
	noRefresh := make(map[entity.ToolName]bool, len(cfg.NoRefreshActions))
	for _, name := range cfg.NoRefreshActions {
		noRefresh[name] = true
	}
	return &Agent{
		desktop:   d,
		oracle:    oracle,
		tools:     tools,
		ctrl:      NewController(cfg.PollInterval),
		log:       log,
		cfg:       cfg,
		noRefresh: noRefresh,
	}
}

func (a *Agent) Pause()          { a.ctrl.Pause() }
func (a *Agent) Resume()         { a.ctrl.Resume() }
func (a *Agent) Stop()           { a.ctrl.Stop() }
func (a *Agent) IsPaused() bool  { return a.ctrl.IsPaused() }
func (a *Agent) IsStopped() bool { return a.ctrl.IsStopped() }

// Invoke runs one query to completion. Every failure category comes back
// in the result's Error field; nothing escapes as a panic.
func (a *Agent) Invoke(ctx context.Context, query string) (result *entity.AgentResult) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("agent panic", "panic", r)
			result = &entity.AgentResult{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	a.ctrl.Reset()
	a.log.Info("task started", "query", query)

	state := &entity.AgentState{
		Input:    query,
		MaxSteps: a.cfg.MaxSteps,
	}
	if err := a.initMessages(state); err != nil {
		return &entity.AgentResult{Error: err.Error()}
	}

	var lastAction entity.ToolName
	current := nodeReason
	for {
		switch current {
		case nodeReason:
			next, err := a.reason(ctx, state, lastAction)
			if err != nil {
				return a.failure(state, err)
			}
			current = next
		case nodeAction:
			if err := a.action(ctx, state); err != nil {
				return a.failure(state, err)
			}
			lastAction = state.AgentData.Action.Name
			current = nodeReason
		case nodeAnswer:
			out, err := a.answer(ctx, state)
			if err != nil {
				return a.failure(state, err)
			}
			a.log.Info("task finished", "steps", state.Steps)
			return &entity.AgentResult{Content: out}
		}
	}
}

func (a *Agent) initMessages(state *entity.AgentState) error {
	system, err := SystemPrompt(a.tools.Definitions())
	if err != nil {
		return err
	}
	state.Messages = []entity.Message{entity.SystemMessage(system)}
	return nil
}

// reason serializes the current snapshot, consults the oracle and parses
// the next action, then decides the transition: Human goes straight to
// answer (the task suspends for the user instead of executing), Done and
// budget exhaustion terminate, everything else executes.
func (a *Agent) reason(ctx context.Context, state *entity.AgentState, lastAction entity.ToolName) (node, error) {
	if err := a.ctrl.Checkpoint(ctx); err != nil {
		return 0, err
	}
	state.Steps++

	// A Launch has likely changed the UI, but skip the refresh when the
	// snapshot is practically new; the post-action refresh already ran.
	if lastAction == entity.ToolLaunch && a.desktop.StateAge() > a.cfg.PreReasonRefreshAfter {
		a.refresh(ctx, state, true, a.desktop.TrackedTarget())
	}
	if a.desktop.Snapshot() == nil {
		a.refresh(ctx, state, false, "")
	}

	snapshot := a.desktop.Snapshot()
	if snapshot == nil {
		return 0, fmt.Errorf("desktop state unavailable")
	}
	prompt, err := StatePrompt(snapshot, state)
	if err != nil {
		return 0, err
	}
	msg := entity.UserMessage(prompt)
	if a.cfg.UseVision {
		msg.Image = snapshot.Screenshot
	}
	state.Messages = append(state.Messages, msg)

	content, err := a.oracle.Converse(ctx, state.Messages)
	if err != nil {
		return 0, fmt.Errorf("oracle: %w", err)
	}
	state.Messages = append(state.Messages, entity.AssistantMessage(content))
	state.AgentData = ParseAgentData(content)

	action := state.AgentData.Action.Name
	a.log.Info("reasoned",
		"step", state.Steps,
		"action", action.String(),
		"thought", state.AgentData.Thought)

	switch {
	case action == entity.ToolHuman:
		return nodeAnswer, nil
	case action == entity.ToolDone:
		return nodeAnswer, nil
	case state.Steps >= state.MaxSteps:
		return nodeAnswer, nil
	default:
		return nodeAction, nil
	}
}

// action executes exactly one tool call, bracketed by the pre/post
// refresh policy and by checkpoints on both sides.
func (a *Agent) action(ctx context.Context, state *entity.AgentState) error {
	if err := a.ctrl.Checkpoint(ctx); err != nil {
		return err
	}

	act := state.AgentData.Action
	a.beforeAction(ctx, state, act)

	result := a.tools.Execute(ctx, act.Name, act.Params)
	obs := result.Observation()
	if len(obs) > maxObservationLen {
		obs = obs[:maxObservationLen] + "\n... (truncated)"
	}
	state.PreviousObservation = obs
	if !result.IsSuccess {
		a.log.Warn("tool failed", "action", act.Name.String(), "error", result.Error)
	}

	a.afterAction(ctx, state, act, result)
	return a.ctrl.Checkpoint(ctx)
}

// beforeAction refreshes geometry ahead of a coordinate-based action
// when the snapshot has gone stale, restoring foreground focus to the
// tracked target first so a precise scan does not capture the wrong
// window.
func (a *Agent) beforeAction(ctx context.Context, state *entity.AgentState, act entity.Action) {
	if !act.Name.IsCoordinateBased() {
		return
	}
	target := a.desktop.TrackedTarget()
	if target != "" {
		if err := a.desktop.EnsureForeground(target); err != nil {
			a.log.Warn("could not restore foreground", "app", target, "error", err)
		}
	}
	if a.desktop.StateAge() > a.cfg.StaleAfter {
		a.refresh(ctx, state, false, target)
	}
}

// afterAction applies the per-action-kind refresh table. Launch always
// refreshes after a settle delay tuned to whether a process actually
// started; Switch refreshes precisely when the app supports it; the
// no-refresh set reuses the existing state deliberately; everything else
// refreshes only when stale.
func (a *Agent) afterAction(ctx context.Context, state *entity.AgentState, act entity.Action, result entity.ToolResult) {
	switch act.Name {
	case entity.ToolLaunch:
		if !result.IsSuccess {
			return
		}
		// The tracked target always follows the latest launch: a
		// non-precise app clears it, so stale precise scans and
		// foreground restores cannot point at the previous app.
		name, _ := act.Params["name"].(string)
		if desktop.PreciseDetectable(name) {
			a.desktop.TrackTarget(name)
		} else {
			a.desktop.TrackTarget("")
		}
		settle := a.cfg.LaunchSettleKnown
		if a.desktop.LastLaunchStarted() {
			settle = a.cfg.LaunchSettleNew
		}
		sleepCtx(ctx, settle)
		a.refresh(ctx, state, true, a.desktop.TrackedTarget())
	case entity.ToolSwitch:
		if !result.IsSuccess {
			return
		}
		name, _ := act.Params["name"].(string)
		target := ""
		if desktop.PreciseDetectable(name) {
			a.desktop.TrackTarget(name)
			target = name
		} else {
			a.desktop.TrackTarget("")
		}
		a.refresh(ctx, state, true, target)
	default:
		if a.noRefresh[act.Name] {
			return
		}
		if a.desktop.StateAge() > a.cfg.StaleAfter {
			a.refresh(ctx, state, false, a.desktop.TrackedTarget())
		}
	}
}

// answer executes the terminal action and produces the final output. A
// budget-exhausted loop lands here with a non-terminal action pending;
// that is a normal termination carrying whatever observation is left,
// not an error.
func (a *Agent) answer(ctx context.Context, state *entity.AgentState) (string, error) {
	if err := a.ctrl.Checkpoint(ctx); err != nil {
		return "", err
	}

	act := state.AgentData.Action
	if act.Name.IsTerminal() {
		result := a.tools.Execute(ctx, act.Name, act.Params)
		state.Output = result.Observation()
		return state.Output, nil
	}

	state.Output = fmt.Sprintf("Step budget reached after %d steps. Last observation: %s",
		state.Steps, state.PreviousObservation)
	return state.Output, nil
}

// refresh requests a new snapshot; a failed refresh keeps the previous
// state rather than aborting the task.
func (a *Agent) refresh(ctx context.Context, state *entity.AgentState, force bool, targetApp string) {
	_, err := a.desktop.State(ctx, desktop.StateOptions{
		UseVision:    a.cfg.UseVision,
		TargetApp:    targetApp,
		Query:        state.Input,
		ForceRefresh: force,
	})
	if err != nil {
		a.log.Warn("state refresh failed", "error", err)
	}
}

func (a *Agent) failure(state *entity.AgentState, err error) *entity.AgentResult {
	state.Error = err.Error()
	a.log.Error("task aborted", "error", err)
	return &entity.AgentResult{Error: state.Error}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
