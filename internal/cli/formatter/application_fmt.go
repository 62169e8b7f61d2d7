package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/service"
	"github.com/charmbracelet/lipgloss"
)

const labelWidth = 12

// FormatApplicationList renders submitted applications inside a box.
func FormatApplicationList(apps []*domain.Application, now time.Time) string {
	if len(apps) == 0 {
		return RenderBox("Applications", Dim("No applications submitted yet."))
	}

	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		avg := Dim("--")
		if v, ok := a.AveragePercentage(); ok {
			avg = fmt.Sprintf("%.1f%%", v)
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			Bold(a.FullName),
			strconv.Itoa(len(a.Subjects)),
			avg,
			a.FundAmount,
			RelativeDateFrom(a.SubmittedAt, now),
		})
	}

	table := Table{
		Headers:    []string{"ID", "NAME", "SUBJECTS", "AVERAGE", "FUND", "SUBMITTED"},
		Rows:       rows,
		RightAlign: map[int]bool{2: true, 3: true, 4: true},
	}
	return RenderBox("Applications", table.Render())
}

// FormatApplication renders one application as three panels, one per step.
func FormatApplication(a *domain.Application) string {
	var personal strings.Builder
	personal.WriteString(StyleBold.Render(a.FullName) + "  " + TruncID(a.ID) + "\n\n")
	for _, f := range [][2]string{
		{"Age", a.Age},
		{"Parent", a.ParentName},
		{"Relation", a.Relationship},
		{"Occupation", a.Occupation},
		{"Address", a.Address},
		{"Submitted", a.SubmittedAt.Local().Format("Jan 2, 2006 15:04")},
	} {
		personal.WriteString(Field(f[0], f[1], labelWidth) + "\n")
	}

	var income strings.Builder
	for _, f := range [][2]string{
		{"Income", a.AnnualIncome},
		{"Requisition", a.RequisitionAmount},
		{"Nature", a.NatureRequisition},
		{"Fund", a.FundAmount},
	} {
		income.WriteString(Field(f[0], f[1], labelWidth) + "\n")
	}

	sections := []string{
		Header(domain.StepPersonal.Title()) + "\n" + personal.String(),
		Header(domain.StepMarks.Title()) + "\n" + FormatSubjects(a.Subjects),
		Header(domain.StepIncome.Title()) + "\n" + income.String(),
	}
	if avg, ok := a.AveragePercentage(); ok {
		sections[1] += Field("Average", RenderProgress(avg, 20), labelWidth) + "\n"
	}
	return RenderBox("", lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// FormatSubjects renders subject rows with their percentages.
func FormatSubjects(subjects []domain.SubjectEntry) string {
	rows := make([][]string, 0, len(subjects))
	for i := range subjects {
		s := &subjects[i]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Name(),
			s.TotalMarks(),
			s.Score(),
			Percent(s.Percentage()),
		})
	}
	return Table{
		Headers:    []string{"#", "SUBJECT", "TOTAL", "SCORE", "PERCENT"},
		Rows:       rows,
		RightAlign: map[int]bool{0: true, 2: true, 3: true, 4: true},
	}.Render()
}

// FormatCheckResult lists validation failures grouped by step.
func FormatCheckResult(path string, r *service.CheckResult) string {
	var b strings.Builder
	if r.Valid() {
		b.WriteString(StyleGreen.Render("✔ "+path) + Dim(" passes every step") + "\n")
		return b.String()
	}

	b.WriteString(StyleRed.Render("✖ "+path) + Dim(fmt.Sprintf(" has %d errors", r.FailureCount())) + "\n")
	for _, step := range domain.Steps {
		report := r.Steps[step]
		if report.Valid() {
			b.WriteString("\n" + StyleGreen.Render("✔ ") + Dim(step.Title()) + "\n")
			continue
		}
		b.WriteString("\n" + StyleRed.Render("✖ ") + Bold(step.Title()) + "\n")
		for _, fe := range report {
			b.WriteString(fmt.Sprintf("  %s  %s\n", StyleYellow.Render(fe.Field), fe.Message))
		}
	}
	return b.String()
}

// FormatImportErrors lists answers-file shape errors.
func FormatImportErrors(path string, errs []error) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render("✖ "+path) + Dim(fmt.Sprintf(" is malformed (%d errors)", len(errs))) + "\n")
	for _, err := range errs {
		b.WriteString("  " + Dim("-") + " " + err.Error() + "\n")
	}
	return b.String()
}

// FormatRules lists registered validation rule names.
func FormatRules(names []string) string {
	var b strings.Builder
	b.WriteString(Header("Rules") + "\n")
	for _, n := range names {
		b.WriteString("  " + StyleBlue.Render(n) + "\n")
	}
	return b.String()
}

// FormatSubmitted confirms a stored application.
func FormatSubmitted(a *domain.Application) string {
	return StyleGreen.Render("✔ Application submitted") + "  " + Bold(a.FullName) + "  " + TruncID(a.ID)
}
