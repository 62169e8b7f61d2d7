package testutil

import (
	"time"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/google/uuid"
)

// ApplicationOption customizes a fixture application.
type ApplicationOption func(*domain.Application)

func WithFullName(name string) ApplicationOption {
	return func(a *domain.Application) {
		a.FullName = name
	}
}

func WithSubjects(subjects ...domain.SubjectEntry) ApplicationOption {
	return func(a *domain.Application) {
		a.Subjects = subjects
	}
}

func WithAmounts(requisition, fund string) ApplicationOption {
	return func(a *domain.Application) {
		a.RequisitionAmount = requisition
		a.FundAmount = fund
	}
}

func WithSubmittedAt(t time.Time) ApplicationOption {
	return func(a *domain.Application) {
		a.SubmittedAt = t
	}
}

// NewTestApplication returns an application that passes every step.
func NewTestApplication(opts ...ApplicationOption) *domain.Application {
	a := &domain.Application{
		ID:                uuid.New().String(),
		FullName:          "Ada Lovelace",
		Age:               "20",
		ParentName:        "Anne Byron",
		Occupation:        "Teacher",
		Address:           "12 Mill Road, Leeds",
		Relationship:      "Mother",
		Subjects:          []domain.SubjectEntry{domain.NewSubjectEntry("Math", "100", "85")},
		AnnualIncome:      "250000",
		RequisitionAmount: "5000",
		NatureRequisition: "Tuition fees",
		FundAmount:        "4000",
		SubmittedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
