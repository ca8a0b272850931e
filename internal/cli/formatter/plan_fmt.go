package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arkode-mx/odooplan/internal/contract"
	"github.com/arkode-mx/odooplan/internal/domain"
)

// RenderPlanSummary renders the post-generation overview: per-phase hour
// totals, the milestone schedule and any generation warnings.
func RenderPlanSummary(plan *domain.Plan) string {
	var b strings.Builder

	b.WriteString(Header("Plan: " + plan.ProjectName))
	b.WriteString("\n\n")

	type phaseRow struct {
		deliverables int
		subtasks     int
		hours        int
	}
	byPhase := map[domain.Phase]*phaseRow{}
	order := []domain.Phase{domain.PhaseClarity, domain.PhaseImplementation, domain.PhaseAdoption}

	for _, d := range plan.ActiveDeliverables() {
		row := byPhase[d.Phase]
		if row == nil {
			row = &phaseRow{}
			byPhase[d.Phase] = row
		}
		row.deliverables++
		row.subtasks += len(d.Subtasks)
		row.hours += d.AllocatedHours
	}

	rows := make([][]string, 0, len(order)+1)
	for _, ph := range order {
		row := byPhase[ph]
		if row == nil {
			continue
		}
		rows = append(rows, []string{
			PhaseStyle(ph).Render(string(ph)),
			strconv.Itoa(row.deliverables),
			strconv.Itoa(row.subtasks),
			strconv.Itoa(row.hours),
		})
	}
	rows = append(rows, []string{
		Bold("Total"), "", "", Bold(strconv.Itoa(plan.TotalHours())),
	})
	b.WriteString(RenderTable([]string{"Phase", "Deliverables", "Subtasks", "Hours"}, rows))

	if len(plan.Milestones) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Milestones"))
		b.WriteString("\n\n")
		mrows := make([][]string, 0, len(plan.Milestones))
		for _, m := range plan.Milestones {
			mrows = append(mrows, []string{m.Name, Dim(m.Deadline)})
		}
		b.WriteString(RenderTable([]string{"Milestone", "Deadline"}, mrows))
	}

	if plan.Meta.Normalized {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Hours normalized %d -> %d (factor %.3f)",
			plan.Meta.RawOutputHours, plan.Meta.InputHours, plan.Meta.ScaleFactor)))
		b.WriteString("\n")
	}
	if plan.Meta.AITasksAdded > 0 {
		b.WriteString(StylePurple.Render(fmt.Sprintf("%d AI-suggested tasks merged", plan.Meta.AITasksAdded)))
		b.WriteString("\n")
	}

	b.WriteString(RenderWarnings(plan.Meta.Warnings))
	return b.String()
}

// RenderWarnings renders non-fatal generation warnings, empty input yields
// an empty string.
func RenderWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("⚠ " + w))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderValidationErrors renders answers-file validation failures, one per
// line with the offending field path.
func RenderValidationErrors(errs []contract.ValidationError) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("%d validation error(s):", len(errs))))
	b.WriteString("\n")
	for _, e := range errs {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render(e.Field+":"), e.Message))
	}
	return b.String()
}

// RenderTaskTree renders the deliverable/subtask hierarchy with hours and
// assignees, used by the generate command's verbose output.
func RenderTaskTree(plan *domain.Plan) string {
	var b strings.Builder
	active := plan.ActiveDeliverables()
	for di, d := range active {
		connector := "├─"
		childPrefix := "│  "
		if di == len(active)-1 {
			connector = "└─"
			childPrefix = "   "
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
			Dim(connector),
			PhaseStyle(d.Phase).Render(d.Title),
			Bold(fmt.Sprintf("%dh", d.AllocatedHours)),
			PriorityLabel(d.Priority),
			Dim(d.Assignee)))
		for si, st := range d.Subtasks {
			sc := "├─"
			if si == len(d.Subtasks)-1 {
				sc = "└─"
			}
			b.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
				Dim(childPrefix), Dim(sc), st.Title,
				fmt.Sprintf("%dh", st.AllocatedHours), Dim(st.Assignee)))
		}
	}
	return b.String()
}
