package cli

import (
	"fmt"

	"github.com/alexanderramin/scholarform/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "apply",
		Short:       "Fill in a scholarship application step by step",
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, app)
		},
	}
}

func runApply(cmd *cobra.Command, app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	if m, ok := final.(appModel); ok && m.state.Submitted != nil {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSubmitted(m.state.Submitted))
	}
	return nil
}
