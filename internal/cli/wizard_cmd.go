package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arkode-mx/odooplan/internal/catalog"
	"github.com/arkode-mx/odooplan/internal/cli/formatter"
	"github.com/arkode-mx/odooplan/internal/contract"
	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/export"
)

// wizardAnswers collects raw questionnaire input. Numeric fields stay
// strings until conversion because huh inputs are text.
type wizardAnswers struct {
	projectName string
	clientName  string
	manager     string
	language    string
	startDate   string
	deadline    string

	clarityEnabled bool
	clarityHours   string

	implEnabled    bool
	modules        []string
	implHours      string
	migrationHours string
	customizations bool

	adoptionEnabled bool
	trainingHours   string
	goLiveHours     string
	supportMonthly  string
	supportMonths   string

	aiEnabled   bool
	developers  string
	consultants string
}

// newWizardCmd creates "odooplan wizard": an interactive questionnaire that
// produces an answers file and optionally generates the plan directly.
func newWizardCmd(app *App) *cobra.Command {
	var (
		outDir       string
		savePath     string
		generateSoon bool
	)

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer the questionnaire interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("wizard requires an interactive terminal; use 'generate' with an answers file instead")
			}

			var a wizardAnswers
			a.language = string(domain.LangEnglish)
			a.clarityEnabled = true

			if err := buildWizardForm(&a).Run(); err != nil {
				return err
			}

			req := answersToRequest(&a)
			if errs := contract.Validate(req); len(errs) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderValidationErrors(errs))
				return contract.CombineErrors(errs)
			}

			out := cmd.OutOrStdout()
			if savePath != "" {
				data, err := yaml.Marshal(req)
				if err != nil {
					return fmt.Errorf("encoding answers: %w", err)
				}
				if err := os.WriteFile(savePath, data, 0o644); err != nil {
					return fmt.Errorf("saving answers: %w", err)
				}
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("saved"), savePath)
			}

			if !generateSoon {
				return nil
			}

			plan, err := app.Plans.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.RenderPlanSummary(plan))

			paths, err := export.WriteFiles(outDir, contract.ToProject(req), plan)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("wrote"), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the exported CSV files")
	cmd.Flags().StringVar(&savePath, "save", "", "write the collected answers to this YAML file")
	cmd.Flags().BoolVar(&generateSoon, "generate", true, "generate the plan immediately after the questionnaire")
	return cmd
}

func buildWizardForm(a *wizardAnswers) *huh.Form {
	moduleOptions := make([]huh.Option[string], 0, len(catalog.KnownModules()))
	for _, m := range catalog.KnownModules() {
		moduleOptions = append(moduleOptions, huh.NewOption(m, m))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project Name").Value(&a.projectName).Validate(validateRequired),
			huh.NewInput().Title("Client Name").Value(&a.clientName).Validate(validateRequired),
			huh.NewInput().Title("Project Manager").Value(&a.manager),
			huh.NewSelect[string]().Title("Plan Language").
				Options(
					huh.NewOption("English", string(domain.LangEnglish)),
					huh.NewOption("Spanish", string(domain.LangSpanish)),
				).
				Value(&a.language),
			huh.NewInput().Title("Start Date (YYYY-MM-DD, blank for today)").
				Placeholder("2025-06-30").Value(&a.startDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Deadline (YYYY-MM-DD, blank for none)").
				Value(&a.deadline).Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Include the Clarity (discovery) phase?").Value(&a.clarityEnabled),
			huh.NewInput().Title("Clarity Hours").Placeholder("40").
				Value(&a.clarityHours).Validate(validateOptionalInt),
			huh.NewConfirm().Title("Include the Implementation phase?").Value(&a.implEnabled),
			huh.NewConfirm().Title("Include the Adoption phase?").Value(&a.adoptionEnabled),
			huh.NewConfirm().Title("Add AI-suggested tasks?").Value(&a.aiEnabled),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Odoo Modules").
				Options(moduleOptions...).Value(&a.modules),
			huh.NewInput().Title("Implementation Hours (total)").Placeholder("120").
				Value(&a.implHours).Validate(validateOptionalInt),
			huh.NewInput().Title("Data Migration Hours").Placeholder("0").
				Value(&a.migrationHours).Validate(validateOptionalInt),
			huh.NewConfirm().Title("Custom development needed?").Value(&a.customizations),
		).WithHideFunc(func() bool { return !a.implEnabled }),
		huh.NewGroup(
			huh.NewInput().Title("Training Hours").Placeholder("24").
				Value(&a.trainingHours).Validate(validateOptionalInt),
			huh.NewInput().Title("Go-Live Support Hours").Placeholder("8").
				Value(&a.goLiveHours).Validate(validateOptionalInt),
			huh.NewInput().Title("Support Hours per Month").Placeholder("10").
				Value(&a.supportMonthly).Validate(validateOptionalInt),
			huh.NewInput().Title("Support Months").Placeholder("3").
				Value(&a.supportMonths).Validate(validateOptionalInt),
		).WithHideFunc(func() bool { return !a.adoptionEnabled }),
		huh.NewGroup(
			huh.NewInput().Title("Developers (comma-separated names)").Value(&a.developers),
			huh.NewInput().Title("Consultants (comma-separated names)").Value(&a.consultants),
		),
	).WithTheme(odooplanHuhTheme()).WithShowHelp(false)
}

// answersToRequest converts wizard input into an answers-file request.
// Modules carry no per-module budget here; generation sizes them from the
// implementation remainder.
func answersToRequest(a *wizardAnswers) *contract.PlanRequest {
	req := &contract.PlanRequest{
		ProjectName:    a.projectName,
		ClientName:     a.clientName,
		ProjectManager: a.manager,
		Language:       a.language,
		StartDate:      a.startDate,
		Deadline:       a.deadline,
		AIEnabled:      a.aiEnabled,
	}

	for _, name := range splitNames(a.developers) {
		req.Team = append(req.Team, contract.TeamMember{Name: name, Role: domain.RoleDeveloper})
	}
	for _, name := range splitNames(a.consultants) {
		req.Team = append(req.Team, contract.TeamMember{Name: name, Role: domain.RoleConsultant})
	}

	if a.clarityEnabled {
		req.Clarity = contract.ClarityAnswers{Enabled: true, Hours: atoiOrZero(a.clarityHours)}
	}
	if a.implEnabled {
		req.Implementation = contract.ImplementationAnswers{
			Enabled:        true,
			TotalHours:     atoiOrZero(a.implHours),
			MigrationHours: atoiOrZero(a.migrationHours),
			Customizations: a.customizations,
		}
		for _, m := range a.modules {
			req.Implementation.Modules = append(req.Implementation.Modules,
				contract.ModuleAnswer{Name: m})
		}
	}
	if a.adoptionEnabled {
		req.Adoption = contract.AdoptionAnswers{
			Enabled:              true,
			TrainingHours:        atoiOrZero(a.trainingHours),
			GoLiveHours:          atoiOrZero(a.goLiveHours),
			SupportHoursPerMonth: atoiOrZero(a.supportMonthly),
			SupportMonths:        atoiOrZero(a.supportMonths),
		}
	}
	return req
}
