package input

import (
	"context"

	"yuki/internal/domain/entity"
)

// AgentPort is the single external entry point to the control loop plus
// its cooperative control surface. Invoke is synchronous: it drives the
// full reason/action/answer loop to a terminal action or step-budget
// exhaustion and always returns a result object, never panics.
type AgentPort interface {
	Invoke(ctx context.Context, query string) *entity.AgentResult

	Pause()
	Resume()
	Stop()
	IsPaused() bool
	IsStopped() bool
}
