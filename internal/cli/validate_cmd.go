package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkode-mx/odooplan/internal/cli/formatter"
	"github.com/arkode-mx/odooplan/internal/contract"
)

// newValidateCmd creates "odooplan validate <answers-file>": parse and
// validate without generating anything.
func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <answers-file>",
		Short: "Check an answers file without generating a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := contract.LoadFile(args[0])
			if err != nil {
				return err
			}
			if errs := contract.Validate(req); len(errs) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderValidationErrors(errs))
				return contract.CombineErrors(errs)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✓ answers file is valid"))
			return nil
		},
	}
}
