package domain

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scholarform/internal/validate"
)

// SubjectField names an editable column of a subject row.
type SubjectField string

const (
	SubjectName       SubjectField = "name"
	SubjectTotalMarks SubjectField = "totalMarks"
	SubjectScore      SubjectField = "score"
)

// SubjectFields lists the editable columns in display order.
var SubjectFields = []SubjectField{SubjectName, SubjectTotalMarks, SubjectScore}

// ParseSubjectField resolves a column name.
func ParseSubjectField(s string) (SubjectField, error) {
	for _, f := range SubjectFields {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown subject field %q", s)
}

// Row validation messages.
const (
	MsgSubjectNameRequired = "Subject name is required"
	MsgInvalidTotalMarks   = "Enter valid total marks"
	MsgInvalidScore        = "Enter valid score"
	MsgScoreExceedsTotal   = "Score cannot exceed total marks"
)

// SubjectEntry is one academic subject line. Inputs are kept as typed so
// that non-numeric text is reported by validation instead of being lost.
// The percentage is recomputed on every mutation and cannot be set.
type SubjectEntry struct {
	name       string
	totalMarks string
	score      string
	percentage Percentage
}

// NewSubjectEntry builds an entry from raw input.
func NewSubjectEntry(name, totalMarks, score string) SubjectEntry {
	e := SubjectEntry{name: name, totalMarks: totalMarks, score: score}
	e.recompute()
	return e
}

func (e *SubjectEntry) Name() string           { return e.name }
func (e *SubjectEntry) TotalMarks() string     { return e.totalMarks }
func (e *SubjectEntry) Score() string          { return e.score }
func (e *SubjectEntry) Percentage() Percentage { return e.percentage }

// Value returns the raw input for field.
func (e *SubjectEntry) Value(field SubjectField) string {
	switch field {
	case SubjectName:
		return e.name
	case SubjectTotalMarks:
		return e.totalMarks
	case SubjectScore:
		return e.score
	}
	return ""
}

func (e *SubjectEntry) set(field SubjectField, value string) error {
	switch field {
	case SubjectName:
		e.name = value
	case SubjectTotalMarks:
		e.totalMarks = value
	case SubjectScore:
		e.score = value
	default:
		return fmt.Errorf("unknown subject field %q", field)
	}
	e.recompute()
	return nil
}

func (e *SubjectEntry) recompute() {
	e.percentage = ComputePercentage(e.totalMarks, e.score)
}

// EntryError is a failed check on one column of a row.
type EntryError struct {
	Field   SubjectField
	Message string
}

// Validate checks the row and returns at most one error per column.
func (e *SubjectEntry) Validate() []EntryError {
	var errs []EntryError

	if strings.TrimSpace(e.name) == "" {
		errs = append(errs, EntryError{Field: SubjectName, Message: MsgSubjectNameRequired})
	}

	total, totalOK := validate.ParseNumber(e.totalMarks)
	if !totalOK || total <= 0 {
		errs = append(errs, EntryError{Field: SubjectTotalMarks, Message: MsgInvalidTotalMarks})
	}

	score, scoreOK := validate.ParseNumber(e.score)
	switch {
	case !scoreOK || score < 0:
		errs = append(errs, EntryError{Field: SubjectScore, Message: MsgInvalidScore})
	case totalOK && score > total:
		errs = append(errs, EntryError{Field: SubjectScore, Message: MsgScoreExceedsTotal})
	}

	return errs
}

// Valid reports whether the row passes every check.
func (e *SubjectEntry) Valid() bool {
	return len(e.Validate()) == 0
}
