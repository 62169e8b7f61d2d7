package cli

import (
	"time"

	"github.com/alexanderramin/scholarform/internal/form"
	"github.com/alexanderramin/scholarform/internal/service"
	"github.com/alexanderramin/scholarform/internal/validate"
	"github.com/alexanderramin/scholarform/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// annotationTUI marks commands that take over the terminal. Logging is
// kept off stderr while they run.
const annotationTUI = "scholarform/tui"

// App holds the services and settings used by CLI commands.
type App struct {
	Applications service.ApplicationService
	Registry     *validate.Registry
	Definition   form.Definition
	Transitions  wizard.TransitionObserver

	// ShowHelp toggles the key hint bar in the wizard.
	ShowHelp bool

	// Bootstrap loads configuration and wires the fields above before any
	// command runs. Nil when the App is prebuilt, as in tests.
	Bootstrap func(flags *pflag.FlagSet, tui bool) error

	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "scholarform" command. Run bare on a
// terminal it starts the application wizard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "scholarform",
		Short:         "Scholarship application wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{annotationTUI: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap == nil {
				return nil
			}
			return app.Bootstrap(cmd.Flags(), cmd.Annotations[annotationTUI] == "true")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runApply(cmd, app)
		},
	}

	root.PersistentFlags().String("db", "", "SQLite database path")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-file", "", "Write logs to this file")

	root.AddCommand(
		newApplyCmd(app),
		newCheckCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newDeleteCmd(app),
		newRulesCmd(app),
	)

	return root
}
