package wizard

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator fails the steps listed in failing and counts calls.
type stubValidator struct {
	failing map[domain.Step]bool
	calls   []domain.Step
}

func (s *stubValidator) ValidateStep(step domain.Step) validate.Report {
	s.calls = append(s.calls, step)
	if s.failing[step] {
		return validate.Report{{Field: step.Key() + "Field", Message: "bad"}}
	}
	return nil
}

type recordingObserver struct {
	seen []Transition
}

func (r *recordingObserver) ObserveTransition(t Transition) { r.seen = append(r.seen, t) }

func TestNewController_StartsAtPersonal(t *testing.T) {
	c := NewController(&stubValidator{})
	assert.Equal(t, domain.StepPersonal, c.Active())
}

func TestForward_ValidatesStepBeingLeft(t *testing.T) {
	v := &stubValidator{}
	c := NewController(v)

	tr := c.RequestTransition(domain.StepMarks)
	assert.True(t, tr.Granted)
	assert.Equal(t, DirectionForward, tr.Direction)
	assert.Equal(t, domain.StepMarks, c.Active())
	assert.Equal(t, []domain.Step{domain.StepPersonal}, v.calls)
}

func TestForward_RefusedOnInvalidCurrentStep(t *testing.T) {
	v := &stubValidator{failing: map[domain.Step]bool{domain.StepPersonal: true}}
	c := NewController(v)

	tr := c.Next()
	assert.False(t, tr.Granted)
	assert.Equal(t, domain.StepPersonal, c.Active(), "no state change on refusal")
	require.Len(t, tr.Failures, 1)
	assert.Equal(t, "personalField", tr.Failures[0].Field)
}

func TestForward_TabJumpValidatesOnlyCurrentStep(t *testing.T) {
	v := &stubValidator{failing: map[domain.Step]bool{domain.StepMarks: true}}
	c := NewController(v)

	tr := c.RequestTransition(domain.StepIncome)
	assert.True(t, tr.Granted)
	assert.Equal(t, []domain.Step{domain.StepPersonal}, v.calls)
}

func TestBackward_NeverValidates(t *testing.T) {
	v := &stubValidator{}
	c := NewController(v)
	require.True(t, c.Next().Granted)
	require.True(t, c.Next().Granted)
	require.Equal(t, domain.StepIncome, c.Active())

	// Every step now fails validation; going back must still succeed.
	v.failing = map[domain.Step]bool{domain.StepPersonal: true, domain.StepMarks: true, domain.StepIncome: true}
	v.calls = nil

	tr := c.Back()
	assert.True(t, tr.Granted)
	assert.Equal(t, DirectionBackward, tr.Direction)
	assert.Equal(t, domain.StepMarks, c.Active())

	tr = c.RequestTransition(domain.StepPersonal)
	assert.True(t, tr.Granted)
	assert.Equal(t, domain.StepPersonal, c.Active())
	assert.Empty(t, v.calls, "backward transitions must not run validators")
}

func TestStay_IsGrantedNoop(t *testing.T) {
	v := &stubValidator{failing: map[domain.Step]bool{domain.StepPersonal: true}}
	c := NewController(v)

	tr := c.RequestTransition(domain.StepPersonal)
	assert.True(t, tr.Granted)
	assert.Equal(t, DirectionStay, tr.Direction)
	assert.Empty(t, v.calls)

	tr = c.Back()
	assert.True(t, tr.Granted)
	assert.Equal(t, domain.StepPersonal, c.Active())
}

func TestNext_OnLastStepStays(t *testing.T) {
	c := NewController(&stubValidator{})
	c.Next()
	c.Next()
	tr := c.Next()
	assert.Equal(t, DirectionStay, tr.Direction)
	assert.Equal(t, domain.StepIncome, c.Active())
}

func TestRequestTransition_InvalidTargetPanics(t *testing.T) {
	c := NewController(&stubValidator{})
	assert.Panics(t, func() { c.RequestTransition(domain.Step(3)) })
	assert.Panics(t, func() { c.RequestTransition(domain.Step(-1)) })
	assert.Equal(t, domain.StepPersonal, c.Active())
}

func TestObserver_SeesEveryOutcome(t *testing.T) {
	obs := &recordingObserver{}
	v := &stubValidator{failing: map[domain.Step]bool{domain.StepPersonal: true}}
	c := NewController(v, nil, obs)

	c.Next()
	v.failing = nil
	c.Next()

	require.Len(t, obs.seen, 2)
	assert.False(t, obs.seen[0].Granted)
	assert.True(t, obs.seen[1].Granted)
}

func TestWriterObserver_LogsRefusal(t *testing.T) {
	var buf bytes.Buffer
	v := &stubValidator{failing: map[domain.Step]bool{domain.StepPersonal: true}}
	c := NewController(v, NewWriterObserver(&buf))

	c.Next()
	out := buf.String()
	assert.Contains(t, out, "wizard_transition")
	assert.Contains(t, out, "granted=false")
	assert.Contains(t, out, "from=personal")
	assert.Contains(t, out, "to=marks")
}

func TestWriterObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopObserver{}, NewWriterObserver(nil))
	assert.IsType(t, NoopObserver{}, NewLogObserver(nil))
}
