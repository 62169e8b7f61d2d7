package wizard

import (
	"io"
	"log/slog"
)

// TransitionObserver receives every transition outcome.
type TransitionObserver interface {
	ObserveTransition(t Transition)
}

// NoopObserver ignores all transitions.
type NoopObserver struct{}

func (NoopObserver) ObserveTransition(Transition) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver logs transitions to logger.
func NewLogObserver(logger *slog.Logger) TransitionObserver {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

// NewWriterObserver logs transitions as text records to w.
func NewWriterObserver(w io.Writer) TransitionObserver {
	if w == nil {
		return NoopObserver{}
	}
	return NewLogObserver(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

func (o *logObserver) ObserveTransition(t Transition) {
	attrs := []any{
		"from", t.From.Key(),
		"to", t.To.Key(),
		"direction", string(t.Direction),
		"granted", t.Granted,
	}
	if !t.Granted {
		fields := make([]string, len(t.Failures))
		for i, fe := range t.Failures {
			fields[i] = fe.Field
		}
		attrs = append(attrs, "failures", len(t.Failures), "fields", fields)
		o.logger.Warn("wizard_transition", attrs...)
		return
	}
	o.logger.Info("wizard_transition", attrs...)
}

func observerOrNoop(observers []TransitionObserver) TransitionObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
