package importer

import (
	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/form"
)

// Convert builds a domain Application from a document that passed
// ValidateDocument. Missing values become empty strings so the form
// validators report them as they would for an untouched input.
func Convert(doc *Document) *domain.Application {
	personal := section(doc.Raw, SectionPersonal)
	income := section(doc.Raw, SectionIncome)

	app := &domain.Application{
		FullName:          text(personal, form.FieldFullName),
		Age:               text(personal, form.FieldAge),
		ParentName:        text(personal, form.FieldParentName),
		Occupation:        text(personal, form.FieldOccupation),
		Address:           text(personal, form.FieldAddress),
		Relationship:      text(personal, form.FieldRelationship),
		AnnualIncome:      text(income, form.FieldAnnualIncome),
		RequisitionAmount: text(income, form.FieldRequisitionAmount),
		NatureRequisition: text(income, form.FieldNatureRequisition),
		FundAmount:        text(income, form.FieldFundAmount),
	}

	list, _ := doc.Raw[SectionSubjects].([]any)
	for _, item := range list {
		row, _ := item.(map[string]any)
		app.Subjects = append(app.Subjects, domain.NewSubjectEntry(
			text(row, string(domain.SubjectName)),
			text(row, string(domain.SubjectTotalMarks)),
			text(row, string(domain.SubjectScore)),
		))
	}
	return app
}

func section(raw map[string]any, name string) map[string]any {
	m, _ := raw[name].(map[string]any)
	return m
}

func text(m map[string]any, key string) string {
	s, _ := scalar(m[key])
	return s
}
