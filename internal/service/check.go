package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/validate"
)

// ErrInvalidApplication is wrapped by Submit when a step fails validation.
var ErrInvalidApplication = errors.New("application is invalid")

// CheckResult holds the validation outcome of each step.
type CheckResult struct {
	Steps map[domain.Step]validate.Report
}

// Valid reports whether every step passed.
func (r *CheckResult) Valid() bool {
	for _, report := range r.Steps {
		if !report.Valid() {
			return false
		}
	}
	return true
}

// FailureCount is the number of field failures across all steps.
func (r *CheckResult) FailureCount() int {
	n := 0
	for _, report := range r.Steps {
		n += len(report)
	}
	return n
}

// ValidationError lists the failures that blocked a submission.
type ValidationError struct {
	Result *CheckResult
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed (%d errors):", e.Result.FailureCount())
	for _, step := range domain.Steps {
		for _, fe := range e.Result.Steps[step] {
			fmt.Fprintf(&b, "\n  - %s: %s", step.Key(), fe.Error())
		}
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrInvalidApplication }
