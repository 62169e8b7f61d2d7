package domain

import "time"

// Application is a submitted scholarship application. Field values are
// stored as entered; they were validated before submission.
type Application struct {
	ID string

	// Personal
	FullName     string
	Age          string
	ParentName   string
	Occupation   string
	Address      string
	Relationship string

	// Marks
	Subjects []SubjectEntry

	// Income
	AnnualIncome      string
	RequisitionAmount string
	NatureRequisition string
	FundAmount        string

	SubmittedAt time.Time
}

// DisplayID returns the first 8 characters of the ID.
func (a *Application) DisplayID() string {
	if len(a.ID) >= 8 {
		return a.ID[:8]
	}
	return a.ID
}

// AveragePercentage averages the rows with a numeric percentage. ok is
// false when no row has one.
func (a *Application) AveragePercentage() (avg float64, ok bool) {
	var sum float64
	var n int
	for i := range a.Subjects {
		p := a.Subjects[i].Percentage()
		if p.State != PercentSet {
			continue
		}
		sum += p.Value
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
