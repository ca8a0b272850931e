package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arkode-mx/odooplan/internal/cli/formatter"
	"github.com/arkode-mx/odooplan/internal/contract"
	"github.com/arkode-mx/odooplan/internal/export"
)

// newGenerateCmd creates "odooplan generate <answers-file>": load answers,
// generate the plan and write the Odoo import CSVs.
func newGenerateCmd(app *App) *cobra.Command {
	var (
		outDir           string
		showTree         bool
		dryRun           bool
		deliverablesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "generate <answers-file>",
		Short: "Generate a plan and export the Odoo import CSVs",
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

			plan, err := app.Plans.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.RenderPlanSummary(plan))
			if showTree {
				fmt.Fprintln(out, formatter.RenderTaskTree(plan))
			}

			if dryRun {
				fmt.Fprintln(out, formatter.Dim("Dry run, no files written."))
				return nil
			}

			paths, err := export.WriteFiles(outDir, contract.ToProject(req), plan)
			if err != nil {
				return err
			}
			if deliverablesOnly {
				path := filepath.Join(outDir,
					export.SanitizeFilename(plan.ProjectName)+"_deliverables.csv")
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := export.WriteDeliverablesOnly(f, plan); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				paths = append(paths, path)
			}

			statsPath, err := writeStats(outDir, plan.ProjectName, app.Plans.Stats(plan))
			if err != nil {
				return err
			}
			paths = append(paths, statsPath)

			for _, p := range paths {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("wrote"), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the exported CSV files")
	cmd.Flags().BoolVar(&showTree, "tree", false, "print the full deliverable/subtask tree")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate and summarize without writing files")
	cmd.Flags().BoolVar(&deliverablesOnly, "deliverables-only", false,
		"additionally export a task CSV without subtask rows")
	return cmd
}

// writeStats serializes the generation summary next to the CSV export.
func writeStats(dir, projectName string, stats contract.PlanStats) (string, error) {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding stats: %w", err)
	}
	path := filepath.Join(dir, export.SanitizeFilename(projectName)+"_stats.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing stats: %w", err)
	}
	return path, nil
}
