package form

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/validate"
)

// Values is the live store of field input. Rules read it by reference, so
// a cross-field rule always sees the latest value of the field it names.
type Values struct {
	m map[string]string
}

// NewValues returns an empty store.
func NewValues() *Values {
	return &Values{m: make(map[string]string)}
}

// Set records the current input of field.
func (v *Values) Set(field, value string) { v.m[field] = value }

// Value implements validate.Values.
func (v *Values) Value(field string) string { return v.m[field] }

// Snapshot copies the current values.
func (v *Values) Snapshot() map[string]string {
	out := make(map[string]string, len(v.m))
	for k, val := range v.m {
		out[k] = val
	}
	return out
}

// Application is the state of one wizard run: field values, the subject
// collection and the error list shown next to fields.
type Application struct {
	Def      Definition
	Values   *Values
	Subjects *domain.SubjectCollection
	Errors   *validate.ErrorSet
}

// New returns an empty application with one bootstrap subject row.
func New(def Definition) *Application {
	return &Application{
		Def:      def,
		Values:   NewValues(),
		Subjects: domain.NewSubjectCollection(),
		Errors:   validate.NewErrorSet(),
	}
}

// ValidateStep checks every input of step without touching the error list.
func (a *Application) ValidateStep(step domain.Step) validate.Report {
	switch step {
	case domain.StepPersonal, domain.StepIncome:
		return validate.CheckAll(a.Def.Fields(step), a.Values)
	case domain.StepMarks:
		return a.marksReport()
	}
	panic(fmt.Sprintf("form: unknown step %d", int(step)))
}

// Refresh validates step and replaces that step's entries in the error list.
func (a *Application) Refresh(step domain.Step) validate.Report {
	report := a.ValidateStep(step)
	a.Errors.Apply(a.scope(step), report)
	return report
}

// SetField stores value and revalidates only that field, the way a form
// re-checks an input as the user types. Fields whose rules depend on
// another field are not revalidated here.
func (a *Application) SetField(name, value string) (validate.FieldError, bool) {
	a.Values.Set(name, value)
	f, _, ok := a.Def.Lookup(name)
	if !ok {
		return validate.FieldError{}, true
	}
	fe, valid := f.Check(a.Values)
	if valid {
		a.Errors.Clear(name)
	} else {
		a.Errors.Set(name, fe.Message)
	}
	return fe, valid
}

// SetSubjectField updates one column of row i and revalidates the whole
// collection.
func (a *Application) SetSubjectField(i int, field domain.SubjectField, value string) error {
	if err := a.Subjects.UpdateField(i, field, value); err != nil {
		return err
	}
	a.Refresh(domain.StepMarks)
	return nil
}

// AddSubject appends a row. A rejection caused by an invalid last row
// also refreshes the Marks errors so the offending fields are shown.
func (a *Application) AddSubject() error {
	err := a.Subjects.Append()
	if errors.Is(err, domain.ErrLastRowInvalid) {
		a.Refresh(domain.StepMarks)
	}
	return err
}

// RemoveSubject removes row i and revalidates the remaining rows so error
// keys follow the renumbering.
func (a *Application) RemoveSubject(i int) error {
	if err := a.Subjects.Remove(i); err != nil {
		return err
	}
	if a.Errors.Len() > 0 {
		a.Refresh(domain.StepMarks)
	}
	return nil
}

// StepHasErrors reports whether the error list holds an entry for step.
func (a *Application) StepHasErrors(step domain.Step) bool {
	for _, name := range a.scope(step) {
		if a.Errors.Has(name) {
			return true
		}
	}
	return false
}

// Valid reports whether every step passes.
func (a *Application) Valid() bool {
	for _, s := range domain.Steps {
		if !a.ValidateStep(s).Valid() {
			return false
		}
	}
	return true
}

// Build converts the live state into a domain Application.
func (a *Application) Build(now time.Time) *domain.Application {
	v := a.Values
	return &domain.Application{
		FullName:          v.Value(FieldFullName),
		Age:               v.Value(FieldAge),
		ParentName:        v.Value(FieldParentName),
		Occupation:        v.Value(FieldOccupation),
		Address:           v.Value(FieldAddress),
		Relationship:      v.Value(FieldRelationship),
		Subjects:          a.Subjects.Entries(),
		AnnualIncome:      v.Value(FieldAnnualIncome),
		RequisitionAmount: v.Value(FieldRequisitionAmount),
		NatureRequisition: v.Value(FieldNatureRequisition),
		FundAmount:        v.Value(FieldFundAmount),
		SubmittedAt:       now,
	}
}

// Load fills the live state from a domain Application.
func (a *Application) Load(app *domain.Application) error {
	subjects, err := domain.NewSubjectCollectionFrom(app.Subjects)
	if err != nil {
		return err
	}
	a.Subjects = subjects
	for name, val := range map[string]string{
		FieldFullName:          app.FullName,
		FieldAge:               app.Age,
		FieldParentName:        app.ParentName,
		FieldOccupation:        app.Occupation,
		FieldAddress:           app.Address,
		FieldRelationship:      app.Relationship,
		FieldAnnualIncome:      app.AnnualIncome,
		FieldRequisitionAmount: app.RequisitionAmount,
		FieldNatureRequisition: app.NatureRequisition,
		FieldFundAmount:        app.FundAmount,
	} {
		a.Values.Set(name, val)
	}
	a.Errors.Reset()
	return nil
}

func (a *Application) marksReport() validate.Report {
	cr := a.Subjects.ValidateAll()
	if cr.Valid {
		return nil
	}
	var report validate.Report
	for i := 0; i < a.Subjects.Len(); i++ {
		for _, ee := range cr.For(i) {
			report = append(report, validate.FieldError{
				Field:   SubjectKey(i, ee.Field),
				Rule:    string(ee.Field),
				Message: ee.Message,
			})
		}
	}
	return report
}

func (a *Application) scope(step domain.Step) []string {
	if step == domain.StepMarks {
		return subjectScope()
	}
	fields := a.Def.Fields(step)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}
