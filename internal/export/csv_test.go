package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *domain.Plan {
	return &domain.Plan{
		ID:          "plan-1",
		ProjectName: "Acme ERP",
		Deliverables: []*domain.Deliverable{
			{
				ID:             1,
				Title:          "Current Process Mapping",
				Description:    "Document how the business runs today",
				AllocatedHours: 16,
				Priority:       domain.PriorityHigh,
				Phase:          domain.PhaseClarity,
				Milestone:      "Process Discovery Complete",
				Type:           domain.TaskNative,
				Assignee:       "Consultant One",
				Deadline:       "2025-01-10",
				Subtasks: []domain.Subtask{
					{
						ID: 2, ParentID: 1, Title: "Stakeholder interviews",
						AllocatedHours: 7, Priority: domain.PriorityHigh,
						Phase: domain.PhaseClarity, Type: domain.TaskNative,
						Assignee: "Consultant One", Deadline: "2025-01-05",
					},
				},
			},
			{
				ID:             3,
				Title:          "CRM Implementation",
				AllocatedHours: 30,
				Priority:       domain.PriorityMedium,
				Phase:          domain.PhaseImplementation,
				Milestone:      "CRM Module Implementation",
				Type:           domain.TaskNative,
				Assignee:       "Dev One",
				Deadline:       "2025-02-10",
			},
			{
				ID:             4,
				Title:          "Inventory pain point workshop",
				AllocatedHours: 6,
				Priority:       domain.PriorityLow,
				Phase:          domain.PhaseAdoption,
				Type:           domain.TaskAIGenerated,
				Deadline:       "2025-03-01",
			},
		},
		Milestones: []domain.Milestone{
			{Name: "Process Discovery Complete", Phase: domain.PhaseClarity, Order: 1, Deadline: "2025-01-10"},
			{Name: "CRM Module Implementation", Phase: domain.PhaseImplementation, Order: 11, Deadline: "2025-02-10"},
			{Name: "Training and Go-Live", Phase: domain.PhaseAdoption, Order: 100, Deadline: "2025-03-15"},
		},
		Deleted: make(map[int]bool),
	}
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteTasks_ColumnsAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTasks(&buf, samplePlan()))

	rows := parseCSV(t, buf.Bytes())
	require.Len(t, rows, 5, "header plus three deliverables plus one subtask")

	assert.Equal(t, []string{
		"Title", "Project", "Assignees", "Allocated Time", "Deadline",
		"Stage", "Priority", "Tags", "Milestone", "Parent Task", "Description",
	}, rows[0])

	deliverable := rows[1]
	assert.Equal(t, "Current Process Mapping", deliverable[0])
	assert.Equal(t, "Acme ERP", deliverable[1])
	assert.Equal(t, "Consultant One", deliverable[2])
	assert.Equal(t, "16", deliverable[3])
	assert.Equal(t, "2025-01-10", deliverable[4])
	assert.Equal(t, "Backlog", deliverable[5])
	assert.Equal(t, "High priority", deliverable[6])
	assert.Equal(t, "Process Mapping,Native", deliverable[7])
	assert.Equal(t, "Process Discovery Complete", deliverable[8])
	assert.Empty(t, deliverable[9], "deliverables have no parent")

	subtask := rows[2]
	assert.Equal(t, "Stakeholder interviews", subtask[0])
	assert.Equal(t, "Current Process Mapping", subtask[9],
		"subtask parent exported as the deliverable title")
	assert.Equal(t, "Process Discovery Complete", subtask[8],
		"subtask inherits the parent milestone")
}

func TestWriteTasks_TagsByPhaseAndType(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTasks(&buf, samplePlan()))
	rows := parseCSV(t, buf.Bytes())

	assert.Equal(t, "Odoo Implementation,Native", rows[3][7])
	assert.Equal(t, "Soporte,AI Generated", rows[4][7])
	assert.Equal(t, "Medium priority", rows[3][6])
	assert.Equal(t, "Low priority", rows[4][6])
}

func TestWriteTasks_SkipsDeletedTasks(t *testing.T) {
	plan := samplePlan()
	plan.Delete(3)
	plan.Delete(2)

	var buf bytes.Buffer
	require.NoError(t, WriteTasks(&buf, plan))
	rows := parseCSV(t, buf.Bytes())

	require.Len(t, rows, 3, "deleted deliverable and subtask excluded")
	for _, row := range rows[1:] {
		assert.NotEqual(t, "CRM Implementation", row[0])
		assert.NotEqual(t, "Stakeholder interviews", row[0])
	}
}

func TestWriteDeliverablesOnly_NoSubtaskRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDeliverablesOnly(&buf, samplePlan()))
	rows := parseCSV(t, buf.Bytes())

	require.Len(t, rows, 4, "header plus three deliverables")
	for _, row := range rows[1:] {
		assert.Empty(t, row[9], "no parent linkage in deliverables-only export")
		assert.NotEqual(t, "Stakeholder interviews", row[0])
	}
}

func TestWriteMilestones_CanonicalOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMilestones(&buf, samplePlan()))
	rows := parseCSV(t, buf.Bytes())

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Project", "Milestone", "Deadline"}, rows[0])
	assert.Equal(t, []string{"Acme ERP", "Process Discovery Complete", "2025-01-10"}, rows[1])
	assert.Equal(t, []string{"Acme ERP", "CRM Module Implementation", "2025-02-10"}, rows[2])
	assert.Equal(t, []string{"Acme ERP", "Training and Go-Live", "2025-03-15"}, rows[3])
}

func TestWriteProject_SingleRow(t *testing.T) {
	p := &domain.Project{
		Name:      "Acme ERP",
		Client:    "Acme Corp",
		Manager:   "PM One",
		StartDate: "2025-01-01",
		Deadline:  "2025-04-01",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProject(&buf, p, samplePlan()))
	rows := parseCSV(t, buf.Bytes())

	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"Display Name", "Customer", "Company", "Project Manager",
		"Last Update Status", "Status",
		"Start Date", "Expiration Date", "Allocated Time",
	}, rows[0])
	assert.Equal(t, []string{
		"Acme ERP", "Acme Corp", "", "PM One", "Set Status", "",
		"2025-01-01", "2025-04-01", "52",
	}, rows[1])
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Acme ERP":           "Acme_ERP",
		"Acme / ERP (2025)!": "Acme_ERP_2025_",
		"cliente-ñ":          "cliente_",
		"":                   "project",
		"---":                "project",
		"clean":              "clean",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}

func TestWriteFiles_CreatesAllThree(t *testing.T) {
	dir := t.TempDir()
	p := &domain.Project{Name: "Acme ERP", Client: "Acme Corp"}

	paths, err := WriteFiles(dir, p, samplePlan())
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for _, suffix := range []string{"project", "milestones", "tasks"} {
		path := filepath.Join(dir, "Acme_ERP_"+suffix+".csv")
		assert.Contains(t, paths, path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}
