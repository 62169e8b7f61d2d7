// Package wizard implements the step state machine of the application
// form. Moving forward is gated on the step being left; moving back is
// always allowed.
package wizard

import (
	"fmt"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/validate"
)

// StepValidator validates the inputs of one step.
type StepValidator interface {
	ValidateStep(step domain.Step) validate.Report
}

// Direction classifies a transition relative to the active step.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
	DirectionStay     Direction = "stay"
)

// Transition is the outcome of a transition request.
type Transition struct {
	From      domain.Step
	To        domain.Step
	Direction Direction
	Granted   bool
	// Failures holds the validation failures of From when a forward move
	// was refused.
	Failures validate.Report
}

// Controller owns the active step.
type Controller struct {
	active    domain.Step
	validator StepValidator
	observer  TransitionObserver
}

// NewController starts at the Personal step.
func NewController(v StepValidator, observers ...TransitionObserver) *Controller {
	return &Controller{
		active:    domain.StepPersonal,
		validator: v,
		observer:  observerOrNoop(observers),
	}
}

// Active returns the active step.
func (c *Controller) Active() domain.Step { return c.active }

// RequestTransition moves to target. A forward move (target after the
// active step, as with "next" or a later tab header) runs the validator of
// the active step and is refused if it reports failures. A backward move
// never validates. Requesting the active step is a granted no-op.
//
// target must be a known step; anything else is a programming error and
// panics.
func (c *Controller) RequestTransition(target domain.Step) Transition {
	if !target.Valid() {
		panic(fmt.Sprintf("wizard: invalid target step %d", int(target)))
	}

	t := Transition{From: c.active, To: target, Granted: true}
	switch {
	case target > c.active:
		t.Direction = DirectionForward
		if report := c.validator.ValidateStep(c.active); !report.Valid() {
			t.Granted = false
			t.Failures = report
		}
	case target < c.active:
		t.Direction = DirectionBackward
	default:
		t.Direction = DirectionStay
	}

	if t.Granted {
		c.active = target
	}
	c.observer.ObserveTransition(t)
	return t
}

// Next requests the step after the active one. On the last step it is a
// granted no-op.
func (c *Controller) Next() Transition {
	if c.active == domain.StepIncome {
		return c.RequestTransition(c.active)
	}
	return c.RequestTransition(c.active + 1)
}

// Back requests the step before the active one. On the first step it is a
// granted no-op.
func (c *Controller) Back() Transition {
	if c.active == domain.StepPersonal {
		return c.RequestTransition(c.active)
	}
	return c.RequestTransition(c.active - 1)
}
