package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/scholarform/internal/cli/formatter"
	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/form"
	"github.com/alexanderramin/scholarform/internal/wizard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldInputWidth   = 32
	subjectInputWidth = 14
	subjectColumns    = 3
)

// Notices shown under the wizard.
const (
	noticeMaxSubjects    = "Maximum 5 subjects allowed"
	noticeLastRowInvalid = "Complete the last subject before adding another"
	noticeKeepOneSubject = "At least one subject is required"
)

type fieldInput struct {
	name  string
	label string
	input textinput.Model
}

// applicationView is the three-step application form. Personal and Income
// fields are single inputs; Marks is a grid of subject rows.
type applicationView struct {
	state  *SharedState
	form   *form.Application
	ctrl   *wizard.Controller
	fields map[domain.Step][]fieldInput
	rows   [][]textinput.Model
	focus  int
	keys   applicationKeyMap
}

func newApplicationView(state *SharedState) *applicationView {
	app := form.New(state.App.Definition)
	v := &applicationView{
		state:  state,
		form:   app,
		ctrl:   wizard.NewController(app, state.App.Transitions),
		fields: make(map[domain.Step][]fieldInput),
		keys:   newApplicationKeyMap(),
	}
	for _, step := range []domain.Step{domain.StepPersonal, domain.StepIncome} {
		for _, f := range app.Def.Fields(step) {
			v.fields[step] = append(v.fields[step], fieldInput{
				name:  f.Name,
				label: f.Label,
				input: newInput(f.Label, fieldInputWidth),
			})
		}
	}
	v.syncRows()
	return v
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = width
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// syncRows rebuilds the subject inputs from the collection so the grid
// follows appends and renumbering after a removal.
func (v *applicationView) syncRows() {
	subjects := v.form.Subjects.Rows()
	v.rows = make([][]textinput.Model, len(subjects))
	for i, r := range subjects {
		row := make([]textinput.Model, subjectColumns)
		for c, val := range []string{r.Name, r.TotalMarks, r.Score} {
			row[c] = newInput(string(domain.SubjectFields[c]), subjectInputWidth)
			row[c].SetValue(val)
		}
		v.rows[i] = row
	}
}

func (v *applicationView) focusCount() int {
	if v.ctrl.Active() == domain.StepMarks {
		return len(v.rows) * subjectColumns
	}
	return len(v.fields[v.ctrl.Active()])
}

// applyFocus focuses the input at v.focus on the active step and blurs
// every other input.
func (v *applicationView) applyFocus() tea.Cmd {
	if n := v.focusCount(); v.focus >= n {
		v.focus = n - 1
	}
	if v.focus < 0 {
		v.focus = 0
	}

	var cmd tea.Cmd
	active := v.ctrl.Active()
	for step, fields := range v.fields {
		for i := range fields {
			if step == active && i == v.focus {
				cmd = fields[i].input.Focus()
				continue
			}
			fields[i].input.Blur()
		}
	}
	for r := range v.rows {
		for c := range v.rows[r] {
			if active == domain.StepMarks && r*subjectColumns+c == v.focus {
				cmd = v.rows[r][c].Focus()
				continue
			}
			v.rows[r][c].Blur()
		}
	}
	return cmd
}

func (v *applicationView) Init() tea.Cmd {
	return v.applyFocus()
}

func (v *applicationView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	case submittedMsg:
		v.state.Submitted = msg.app
		return v, replaceView(newResultView(v.state, msg.app))
	case submitFailedMsg:
		return v, notice(msg.err.Error())
	}
	return v, nil
}

func (v *applicationView) handleKey(msg tea.KeyMsg) tea.Cmd {
	active := v.ctrl.Active()
	switch {
	case key.Matches(msg, v.keys.Personal):
		return v.transition(v.ctrl.RequestTransition(domain.StepPersonal))
	case key.Matches(msg, v.keys.Marks):
		return v.transition(v.ctrl.RequestTransition(domain.StepMarks))
	case key.Matches(msg, v.keys.Income):
		return v.transition(v.ctrl.RequestTransition(domain.StepIncome))
	case key.Matches(msg, v.keys.Next):
		return v.transition(v.ctrl.Next())
	case key.Matches(msg, v.keys.Back):
		return v.transition(v.ctrl.Back())
	case key.Matches(msg, v.keys.Advance):
		if active == domain.StepIncome {
			return v.submit()
		}
		return v.transition(v.ctrl.Next())
	case key.Matches(msg, v.keys.FocusNext):
		v.focus = (v.focus + 1) % v.focusCount()
		return v.applyFocus()
	case key.Matches(msg, v.keys.FocusPrev):
		v.focus = (v.focus - 1 + v.focusCount()) % v.focusCount()
		return v.applyFocus()
	case active == domain.StepMarks && key.Matches(msg, v.keys.AddRow):
		return v.addRow()
	case active == domain.StepMarks && key.Matches(msg, v.keys.RemoveRow):
		return v.removeRow()
	}
	return v.updateFocused(msg)
}

// transition applies the outcome of a step change. A refused move shows
// the errors of the step that blocked it.
func (v *applicationView) transition(t wizard.Transition) tea.Cmd {
	if !t.Granted {
		v.form.Refresh(t.From)
		return notice(fmt.Sprintf("%s has %d errors", t.From.Title(), len(t.Failures)))
	}
	if t.Direction != wizard.DirectionStay {
		v.focus = 0
	}
	return v.applyFocus()
}

// updateFocused forwards msg to the focused input and revalidates when its
// value changed.
func (v *applicationView) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	active := v.ctrl.Active()

	if active == domain.StepMarks {
		r, c := v.focus/subjectColumns, v.focus%subjectColumns
		if r >= len(v.rows) {
			return nil
		}
		before := v.rows[r][c].Value()
		v.rows[r][c], cmd = v.rows[r][c].Update(msg)
		if after := v.rows[r][c].Value(); after != before {
			_ = v.form.SetSubjectField(r, domain.SubjectFields[c], after)
		}
		return cmd
	}

	fields := v.fields[active]
	if v.focus >= len(fields) {
		return nil
	}
	fi := &fields[v.focus]
	before := fi.input.Value()
	fi.input, cmd = fi.input.Update(msg)
	if after := fi.input.Value(); after != before {
		v.form.SetField(fi.name, after)
	}
	return cmd
}

func (v *applicationView) addRow() tea.Cmd {
	err := v.form.AddSubject()
	switch {
	case errors.Is(err, domain.ErrMaxRowsExceeded):
		return notice(noticeMaxSubjects)
	case errors.Is(err, domain.ErrLastRowInvalid):
		return notice(noticeLastRowInvalid)
	case err != nil:
		return notice(err.Error())
	}
	v.syncRows()
	v.focus = (len(v.rows) - 1) * subjectColumns
	return v.applyFocus()
}

func (v *applicationView) removeRow() tea.Cmd {
	err := v.form.RemoveSubject(v.focus / subjectColumns)
	switch {
	case errors.Is(err, domain.ErrCannotRemoveLastRow):
		return notice(noticeKeepOneSubject)
	case err != nil:
		return notice(err.Error())
	}
	v.syncRows()
	return v.applyFocus()
}

// submit checks the Income step, then every step, and asks for
// confirmation when the whole application is valid.
func (v *applicationView) submit() tea.Cmd {
	if report := v.form.Refresh(domain.StepIncome); !report.Valid() {
		return notice(fmt.Sprintf("%s has %d errors", domain.StepIncome.Title(), len(report)))
	}
	if !v.form.Valid() {
		for _, s := range domain.Steps {
			v.form.Refresh(s)
		}
		return notice("Some steps still have errors")
	}
	return pushView(newSubmitConfirmView(v.state, v.form.Build(v.state.App.now())))
}

func notice(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func (v *applicationView) View() string {
	active := v.ctrl.Active()
	flagged := make(map[domain.Step]bool, len(domain.Steps))
	for _, s := range domain.Steps {
		flagged[s] = v.form.StepHasErrors(s)
	}

	var b strings.Builder
	b.WriteString(formatter.StepTabs(active, flagged) + "\n\n")
	if active == domain.StepMarks {
		b.WriteString(v.renderMarks())
	} else {
		b.WriteString(v.renderFields(active))
	}
	return b.String()
}

func (v *applicationView) renderFields(step domain.Step) string {
	var b strings.Builder
	for i, f := range v.fields[step] {
		label := formatter.Dim(f.label)
		marker := "  "
		if i == v.focus {
			label = formatter.StyleHeader.Render(f.label)
			marker = formatter.StyleHeader.Render("› ")
		}
		b.WriteString(marker + label + "\n")
		b.WriteString("  " + f.input.View() + "\n")
		if v.form.Errors.Has(f.name) {
			b.WriteString("  " + formatter.ErrorText(v.form.Errors.Message(f.name)) + "\n")
		}
	}
	return b.String()
}

func (v *applicationView) renderMarks() string {
	cell := lipgloss.NewStyle().Width(subjectInputWidth + 2)
	num := lipgloss.NewStyle().Width(4)

	var b strings.Builder
	b.WriteString(num.Render(formatter.StyleHeader.Render("#")))
	for _, h := range []string{"SUBJECT", "TOTAL", "SCORE", "PERCENT"} {
		b.WriteString(cell.Render(formatter.StyleHeader.Render(h)))
	}
	b.WriteString("\n")

	subjects := v.form.Subjects.Rows()
	for r, row := range v.rows {
		b.WriteString(num.Render(fmt.Sprintf("%d", r+1)))
		for _, in := range row {
			b.WriteString(cell.Render(in.View()))
		}
		if r < len(subjects) {
			b.WriteString(formatter.Percent(subjects[r].Percentage))
		}
		b.WriteString("\n")
		for _, f := range domain.SubjectFields {
			k := form.SubjectKey(r, f)
			if v.form.Errors.Has(k) {
				b.WriteString("    " + formatter.ErrorText(v.form.Errors.Message(k)) + "\n")
			}
		}
	}
	b.WriteString(fmt.Sprintf("\n%s\n", formatter.Dim(fmt.Sprintf("%d of %d subjects", len(v.rows), domain.MaxSubjects))))
	return b.String()
}

func (v *applicationView) ID() ViewID { return ViewApplication }

func (v *applicationView) Title() string { return v.ctrl.Active().Title() }

func (v *applicationView) ShortHelp() []key.Binding {
	bindings := []key.Binding{v.keys.Personal, v.keys.FocusNext, v.keys.Next, v.keys.Back}
	switch v.ctrl.Active() {
	case domain.StepMarks:
		bindings = append(bindings, v.keys.AddRow, v.keys.RemoveRow)
	case domain.StepIncome:
		bindings = append(bindings, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")))
	}
	return bindings
}
