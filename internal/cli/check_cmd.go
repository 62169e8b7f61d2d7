package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/scholarform/internal/cli/formatter"
	"github.com/alexanderramin/scholarform/internal/importer"
	"github.com/spf13/cobra"
)

// errCheckFailed makes the process exit non-zero after the failures have
// been printed.
var errCheckFailed = errors.New("check failed")

func newCheckCmd(app *App) *cobra.Command {
	var submit bool

	cmd := &cobra.Command{
		Use:   "check <answers.json|answers.yaml>",
		Short: "Validate an answers file against every step",
		Long: `Runs the wizard's validators over an answers file without the TUI.
The file has three sections: personal, subjects (a list of name, totalMarks
and score) and income. Field names match the wizard inputs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			doc, err := importer.LoadDocument(path)
			if err != nil {
				return fmt.Errorf("loading answers file: %w", err)
			}
			if errs := importer.ValidateDocument(doc); len(errs) > 0 {
				fmt.Fprint(out, formatter.FormatImportErrors(path, errs))
				return errCheckFailed
			}

			application := importer.Convert(doc)
			result, err := app.Applications.Check(application)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatCheckResult(path, result))
			if !result.Valid() {
				return errCheckFailed
			}

			if submit {
				if err := app.Applications.Submit(cmd.Context(), application); err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatSubmitted(application))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&submit, "submit", false, "Store the application when it is valid")

	return cmd
}
