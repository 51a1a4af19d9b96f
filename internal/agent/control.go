package agent

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrStopped is the distinguished abort surfaced when a stop request
// lands at a checkpoint. Callers special-case its message to present a
// user-initiated stop rather than a failure.
var ErrStopped = errors.New("Execution stopped by user")

// Controller carries the cooperative pause/stop flags. Both are polled
// at named checkpoints, never interrupt-driven: an in-flight OS call is
// allowed to finish, and up to one poll interval of latency is accepted
// before a pause or stop takes effect.
type Controller struct {
	mu      sync.Mutex
	paused  bool
	stopped bool
	poll    time.Duration
}

func NewController(pollInterval time.Duration) *Controller {
	if pollInterval <= 0 {
		pollInterval = 50 * time.Millisecond
	}
	return &Controller{poll: pollInterval}
}

// Pause parks the worker at its next checkpoint until Resume or Stop.
func (c *Controller) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

func (c *Controller) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// Stop aborts at the next checkpoint, including while paused.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.paused = false
	c.mu.Unlock()
}

// Reset clears both flags before a new invocation.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.paused = false
	c.stopped = false
	c.mu.Unlock()
}

func (c *Controller) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *Controller) IsStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// Checkpoint blocks while paused and returns ErrStopped once a stop is
// requested. The pause sleep-poll loop lets a caller handle an unrelated
// user question on its own synchronous side channel while the task
// worker is parked here.
func (c *Controller) Checkpoint(ctx context.Context) error {
	for {
		c.mu.Lock()
		stopped, paused := c.stopped, c.paused
		c.mu.Unlock()

		if stopped {
			return ErrStopped
		}
		if !paused {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.poll):
		}
	}
}
