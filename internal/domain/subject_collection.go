package domain

import (
	"errors"
	"fmt"
)

const (
	MinSubjects = 1
	MaxSubjects = 5
)

// Structural rejections from Append and Remove. The collection is left
// unchanged whenever one of these is returned.
var (
	ErrMaxRowsExceeded     = errors.New("maximum 5 subjects allowed")
	ErrLastRowInvalid      = errors.New("complete the last subject before adding another")
	ErrCannotRemoveLastRow = errors.New("at least one subject is required")
	ErrRowOutOfRange       = errors.New("subject row out of range")
)

// SubjectRow is a read-only snapshot of an entry at its display position.
type SubjectRow struct {
	Index      int // 1-based display index
	Name       string
	TotalMarks string
	Score      string
	Percentage Percentage
}

// CollectionReport is the result of validating every row. Errors is keyed
// by 0-based row position and only holds rows that failed.
type CollectionReport struct {
	Valid  bool
	Errors map[int][]EntryError
}

// For returns the errors of the row at position i.
func (r CollectionReport) For(i int) []EntryError {
	return r.Errors[i]
}

// SubjectCollection is the ordered, bounded list of subject rows. Its
// length stays within [MinSubjects, MaxSubjects] across every operation.
type SubjectCollection struct {
	entries []*SubjectEntry
}

// NewSubjectCollection returns a collection holding one empty row.
func NewSubjectCollection() *SubjectCollection {
	return &SubjectCollection{entries: []*SubjectEntry{{percentage: Percentage{State: PercentUnset}}}}
}

// NewSubjectCollectionFrom rebuilds a collection from stored or imported
// entries. An empty input yields the single bootstrap row.
func NewSubjectCollectionFrom(entries []SubjectEntry) (*SubjectCollection, error) {
	if len(entries) > MaxSubjects {
		return nil, fmt.Errorf("%d subjects: %w", len(entries), ErrMaxRowsExceeded)
	}
	if len(entries) == 0 {
		return NewSubjectCollection(), nil
	}
	c := &SubjectCollection{entries: make([]*SubjectEntry, 0, len(entries))}
	for _, e := range entries {
		e := NewSubjectEntry(e.name, e.totalMarks, e.score)
		c.entries = append(c.entries, &e)
	}
	return c, nil
}

// Len returns the number of rows.
func (c *SubjectCollection) Len() int { return len(c.entries) }

// Entry returns a copy of the row at position i.
func (c *SubjectCollection) Entry(i int) (SubjectEntry, error) {
	if err := c.checkIndex(i); err != nil {
		return SubjectEntry{}, err
	}
	return *c.entries[i], nil
}

// Entries returns copies of all rows in order.
func (c *SubjectCollection) Entries() []SubjectEntry {
	out := make([]SubjectEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = *e
	}
	return out
}

// Rows returns display snapshots numbered 1..Len.
func (c *SubjectCollection) Rows() []SubjectRow {
	rows := make([]SubjectRow, len(c.entries))
	for i, e := range c.entries {
		rows[i] = SubjectRow{
			Index:      i + 1,
			Name:       e.name,
			TotalMarks: e.totalMarks,
			Score:      e.score,
			Percentage: e.percentage,
		}
	}
	return rows
}

// Append adds an empty row at the end. It is refused when the collection
// is full or when the current last row does not validate.
func (c *SubjectCollection) Append() error {
	if len(c.entries) >= MaxSubjects {
		return ErrMaxRowsExceeded
	}
	if last := c.entries[len(c.entries)-1]; !last.Valid() {
		return ErrLastRowInvalid
	}
	c.entries = append(c.entries, &SubjectEntry{percentage: Percentage{State: PercentUnset}})
	return nil
}

// Remove deletes the row at position i. Later rows shift down so display
// indices stay contiguous.
func (c *SubjectCollection) Remove(i int) error {
	if len(c.entries) <= MinSubjects {
		return ErrCannotRemoveLastRow
	}
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return nil
}

// UpdateField sets one column of row i and recomputes its percentage.
// It does not validate; callers revalidate when they need to.
func (c *SubjectCollection) UpdateField(i int, field SubjectField, value string) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	return c.entries[i].set(field, value)
}

// ValidateAll checks every row.
func (c *SubjectCollection) ValidateAll() CollectionReport {
	report := CollectionReport{Valid: true, Errors: make(map[int][]EntryError)}
	for i, e := range c.entries {
		if errs := e.Validate(); len(errs) > 0 {
			report.Valid = false
			report.Errors[i] = errs
		}
	}
	return report
}

func (c *SubjectCollection) checkIndex(i int) error {
	if i < 0 || i >= len(c.entries) {
		return fmt.Errorf("row %d of %d: %w", i+1, len(c.entries), ErrRowOutOfRange)
	}
	return nil
}
