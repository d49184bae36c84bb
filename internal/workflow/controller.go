package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrActionInFlight is returned when a mutating action is requested for a
// project that already has one outstanding. Mutating actions are serialized
// per project so overlapping triggers cannot race on the backend.
var ErrActionInFlight = errors.New("another action is already in flight for this project")

// Controller drives one project through a variant's stage graph. It owns no
// status of its own: every advance re-reads the server-reported status and
// fires the matching trigger.
type Controller struct {
	variant Variant
	stages  []Stage

	mu     sync.Mutex
	active map[string]struct{}
}

// NewController builds a controller for the given variant.
func NewController(variant Variant, triggers Triggers) *Controller {
	return &Controller{
		variant: variant,
		stages:  StagesFor(variant, triggers),
		active:  make(map[string]struct{}),
	}
}

// Variant returns the pipeline this controller drives.
func (c *Controller) Variant() Variant {
	return c.variant
}

// NextAction reports the stage a project at the given status can trigger next.
func (c *Controller) NextAction(status Status) (Stage, bool) {
	return NextStage(c.stages, status)
}

// Advance fires the trigger for the project's current status. It refuses to
// overlap with another in-flight action for the same project and is a no-op
// error when the status has no outgoing stage (terminal or server-driven).
func (c *Controller) Advance(ctx context.Context, projectID string, status Status) error {
	stage, ok := c.NextAction(status)
	if !ok {
		if IsTerminal(status) {
			return fmt.Errorf("project is already %s", status)
		}
		return fmt.Errorf("status %q has no client-triggered stage; the backend is still working", status)
	}
	if stage.Trigger == nil {
		return fmt.Errorf("stage %q has no trigger bound", stage.Name)
	}

	if err := c.begin(projectID); err != nil {
		return err
	}
	defer c.finish(projectID)

	if err := stage.Trigger(ctx, projectID); err != nil {
		return fmt.Errorf("%s: %w", stage.Name, err)
	}
	return nil
}

func (c *Controller) begin(projectID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.active[projectID]; busy {
		return ErrActionInFlight
	}
	c.active[projectID] = struct{}{}
	return nil
}

func (c *Controller) finish(projectID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.active, projectID)
}
