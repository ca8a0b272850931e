// Package cli implements the odooplan command-line interface: answers-file
// validation, plan generation with CSV export, and an interactive
// questionnaire wizard.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arkode-mx/odooplan/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Plans service.PlanService

	// IsInteractive reports whether stdin is a terminal. The wizard
	// refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "odooplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "odooplan",
		Short:         "Generate Odoo implementation plans from questionnaire answers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newValidateCmd(app),
		newWizardCmd(app),
	)

	return root
}
