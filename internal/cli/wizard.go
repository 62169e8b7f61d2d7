package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/scholarform/internal/cli/formatter"
	"github.com/alexanderramin/scholarform/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// scholarformHuhTheme styles huh forms with the formatter palette.
func scholarformHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// submissionSummary is the review text shown before submitting.
func submissionSummary(a *domain.Application) string {
	avg := "--"
	if v, ok := a.AveragePercentage(); ok {
		avg = fmt.Sprintf("%.1f%%", v)
	}
	return fmt.Sprintf("%s, age %s\n%d subjects, average %s\nRequesting %s of %s for %s",
		a.FullName, a.Age, len(a.Subjects), avg, a.FundAmount, a.RequisitionAmount, a.NatureRequisition)
}

// newSubmitConfirmView asks before storing application.
func newSubmitConfirmView(state *SharedState, application *domain.Application) View {
	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Review").
				Description(submissionSummary(application)),
			huh.NewConfirm().
				Title("Submit application?").
				Affirmative("Submit").
				Negative("Keep editing").
				Value(&confirmed),
		),
	).WithTheme(scholarformHuhTheme()).WithShowHelp(false)

	return newWizardView(state, "Confirm", form, func() tea.Cmd {
		if !confirmed {
			return notice("Submission cancelled.")
		}
		return submitApplicationCmd(state, application)
	})
}

// submitApplicationCmd stores application through the service.
func submitApplicationCmd(state *SharedState, application *domain.Application) tea.Cmd {
	return func() tea.Msg {
		if err := state.App.Applications.Submit(context.Background(), application); err != nil {
			return submitFailedMsg{err: err}
		}
		return submittedMsg{app: application}
	}
}

// confirmDelete asks on the terminal before deleting an application.
func confirmDelete(a *domain.Application) (bool, error) {
	confirmed := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete application %s (%s)?", a.DisplayID(), a.FullName)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(scholarformHuhTheme()).WithShowHelp(false).Run()
	return confirmed, err
}
