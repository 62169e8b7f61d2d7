// Package form binds the scholarship application's inputs to validation
// rules and holds the live state of one wizard run.
package form

import (
	"fmt"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/validate"
)

// Personal step fields.
const (
	FieldFullName     = "fullName"
	FieldAge          = "age"
	FieldParentName   = "parentName"
	FieldOccupation   = "occupation"
	FieldAddress      = "address"
	FieldRelationship = "relationship"
)

// Income step fields.
const (
	FieldAnnualIncome      = "annualIncome"
	FieldRequisitionAmount = "requisitionAmount"
	FieldNatureRequisition = "natureRequisition"
	FieldFundAmount        = "fundAmount"
)

// fieldSpec is the declarative form of a field: rule specs are resolved
// through a Registry so custom rules can be plugged in by name.
type fieldSpec struct {
	name     string
	label    string
	rules    []string
	messages map[string]string
}

var personalSpecs = []fieldSpec{
	{FieldFullName, "Full Name", []string{"required", "lettersonly"}, map[string]string{
		"required":    "Full name is required",
		"lettersonly": "Only alphabets are allowed",
	}},
	{FieldAge, "Age", []string{"required", "range[15,35]"}, map[string]string{
		"required": "Age is required",
		"range":    "Age must be between 15 and 35",
	}},
	{FieldParentName, "Parent/Guardian Name", []string{"required", "lettersonly"}, nil},
	{FieldOccupation, "Occupation", []string{"required", "lettersonly"}, nil},
	{FieldAddress, "Address", []string{"required"}, nil},
	{FieldRelationship, "Relationship", []string{"required", "lettersonly"}, nil},
}

var incomeSpecs = []fieldSpec{
	{FieldAnnualIncome, "Annual Family Income", []string{"required"}, nil},
	{FieldRequisitionAmount, "Requisition Amount", []string{"required", "digits"}, nil},
	{FieldNatureRequisition, "Nature of Requisition", []string{"required", "lettersonly"}, nil},
	{FieldFundAmount, "Fund Amount Requested", []string{"required", "digits", "max[@" + FieldRequisitionAmount + "]"}, nil},
}

// Definition holds the resolved field rules of the Personal and Income steps.
// The Marks step is validated by the subject collection.
type Definition struct {
	Personal []validate.Field
	Income   []validate.Field
}

// NewDefinition resolves the field specs against reg.
func NewDefinition(reg *validate.Registry) (Definition, error) {
	personal, err := resolve(reg, personalSpecs)
	if err != nil {
		return Definition{}, err
	}
	income, err := resolve(reg, incomeSpecs)
	if err != nil {
		return Definition{}, err
	}
	return Definition{Personal: personal, Income: income}, nil
}

// Fields returns the rule-bound fields of step (nil for Marks).
func (d Definition) Fields(step domain.Step) []validate.Field {
	switch step {
	case domain.StepPersonal:
		return d.Personal
	case domain.StepIncome:
		return d.Income
	}
	return nil
}

// Lookup finds a field by name across all steps.
func (d Definition) Lookup(name string) (validate.Field, domain.Step, bool) {
	for _, f := range d.Personal {
		if f.Name == name {
			return f, domain.StepPersonal, true
		}
	}
	for _, f := range d.Income {
		if f.Name == name {
			return f, domain.StepIncome, true
		}
	}
	return validate.Field{}, 0, false
}

// Names returns every rule-bound field name.
func (d Definition) Names() []string {
	names := make([]string, 0, len(d.Personal)+len(d.Income))
	for _, f := range d.Personal {
		names = append(names, f.Name)
	}
	for _, f := range d.Income {
		names = append(names, f.Name)
	}
	return names
}

func resolve(reg *validate.Registry, specs []fieldSpec) ([]validate.Field, error) {
	fields := make([]validate.Field, 0, len(specs))
	for _, s := range specs {
		rules, err := reg.ParseAll(s.rules...)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", s.name, err)
		}
		fields = append(fields, validate.Field{Name: s.name, Label: s.label, Rules: rules, Messages: s.messages})
	}
	return fields, nil
}

var subjectKeyPrefix = map[domain.SubjectField]string{
	domain.SubjectName:       "subject",
	domain.SubjectTotalMarks: "totalMarks",
	domain.SubjectScore:      "score",
}

// SubjectKey is the error-list key for a column of row i (0-based), e.g.
// "score_2".
func SubjectKey(i int, field domain.SubjectField) string {
	return fmt.Sprintf("%s_%d", subjectKeyPrefix[field], i)
}

// subjectScope lists every key a Marks validation may set or clear,
// including rows that no longer exist.
func subjectScope() []string {
	scope := make([]string, 0, domain.MaxSubjects*len(domain.SubjectFields))
	for i := 0; i < domain.MaxSubjects; i++ {
		for _, f := range domain.SubjectFields {
			scope = append(scope, SubjectKey(i, f))
		}
	}
	return scope
}
