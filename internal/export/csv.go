// Package export serializes generated plans into the CSV files Odoo's
// project importer accepts: one file for tasks, one for milestones and
// one for the project itself.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/arkode-mx/odooplan/internal/domain"
)

var tasksHeader = []string{
	"Title", "Project", "Assignees", "Allocated Time", "Deadline",
	"Stage", "Priority", "Tags", "Milestone", "Parent Task", "Description",
}

// WriteTasks writes the flat task CSV: every active deliverable followed
// by its subtasks. Parent linkage is exported as the parent's title, the
// format Odoo's importer matches on; the numeric parent IDs stay internal.
func WriteTasks(w io.Writer, plan *domain.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tasksHeader); err != nil {
		return fmt.Errorf("writing tasks header: %w", err)
	}

	for _, d := range plan.ActiveDeliverables() {
		row := taskRow(plan.ProjectName, d.Title, d.Assignee, d.AllocatedHours,
			d.Deadline, d.Priority, d.Phase, d.Type, d.Milestone, "", d.Description)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing task row: %w", err)
		}
		for _, st := range d.Subtasks {
			row := taskRow(plan.ProjectName, st.Title, st.Assignee, st.AllocatedHours,
				st.Deadline, st.Priority, st.Phase, st.Type, d.Milestone, d.Title, st.Description)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing subtask row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func taskRow(project, title, assignee string, hours int, deadline string,
	priority domain.Priority, phase domain.Phase, taskType domain.TaskType,
	milestone, parent, description string) []string {

	return []string{
		title,
		project,
		assignee,
		strconv.Itoa(hours),
		deadline,
		"Backlog",
		priorityLabel(priority),
		phaseTag(phase) + "," + typeTag(taskType),
		milestone,
		parent,
		description,
	}
}

// WriteDeliverablesOnly writes the task CSV restricted to top-level
// deliverables, for imports that keep subtask breakdown out of Odoo.
func WriteDeliverablesOnly(w io.Writer, plan *domain.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tasksHeader); err != nil {
		return fmt.Errorf("writing tasks header: %w", err)
	}
	for _, d := range plan.ActiveDeliverables() {
		row := taskRow(plan.ProjectName, d.Title, d.Assignee, d.AllocatedHours,
			d.Deadline, d.Priority, d.Phase, d.Type, d.Milestone, "", d.Description)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing task row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMilestones writes one row per milestone in canonical plan order.
func WriteMilestones(w io.Writer, plan *domain.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Project", "Milestone", "Deadline"}); err != nil {
		return fmt.Errorf("writing milestones header: %w", err)
	}
	for _, m := range plan.Milestones {
		if err := cw.Write([]string{plan.ProjectName, m.Name, m.Deadline}); err != nil {
			return fmt.Errorf("writing milestone row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteProject writes the single project row.
func WriteProject(w io.Writer, p *domain.Project, plan *domain.Plan) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Display Name", "Customer", "Company", "Project Manager",
		"Last Update Status", "Status",
		"Start Date", "Expiration Date", "Allocated Time",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing project header: %w", err)
	}
	// Company and Status stay blank; Odoo fills them on import.
	row := []string{
		p.Name,
		p.Client,
		"",
		p.Manager,
		"Set Status",
		"",
		p.StartDate,
		p.Deadline,
		strconv.Itoa(plan.TotalHours()),
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("writing project row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// priorityLabel maps priorities to the labels Odoo's importer expects.
func priorityLabel(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "High priority"
	case domain.PriorityMedium:
		return "Medium priority"
	default:
		return "Low priority"
	}
}

// phaseTag maps a phase to its Odoo project tag.
func phaseTag(phase domain.Phase) string {
	switch phase {
	case domain.PhaseClarity:
		return "Process Mapping"
	case domain.PhaseAdoption:
		return "Soporte"
	default:
		return "Odoo Implementation"
	}
}

func typeTag(t domain.TaskType) string {
	switch t {
	case domain.TaskCustom:
		return "Custom"
	case domain.TaskAIGenerated:
		return "AI Generated"
	default:
		return "Native"
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SanitizeFilename collapses anything outside [a-zA-Z0-9] into single
// underscores, falling back to "project" for empty names.
func SanitizeFilename(name string) string {
	out := unsafeFilenameChars.ReplaceAllString(name, "_")
	if out == "" || out == "_" {
		return "project"
	}
	return out
}
