package augment

import (
	"context"
	"errors"
	"testing"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	text string
	err  error
}

func (s *stubClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.text, Model: "stub"}, nil
}

func sampleProject() *domain.Project {
	return &domain.Project{
		Name:     "Acme ERP",
		Industry: "Manufacturing",
		Country:  "Mexico",
		Language: domain.LangEnglish,
		Modules:  []domain.ModuleBudget{{Name: "CRM", Hours: 30}, {Name: "Inventory", Hours: 20}},
	}
}

func TestGenerateTasks_ParsesModelOutput(t *testing.T) {
	client := &stubClient{text: `[
		{"name": "Map lead routing", "description": "Route by region", "estimated_hours": 6, "priority": "High", "category": "Discovery", "tags": ["CRM"]},
		{"name": "Warehouse walkthrough", "description": "", "estimated_hours": 4, "priority": "Medium", "category": "Discovery", "tags": ["Inventory"]}
	]`}

	tasks, err := New(client).GenerateTasks(context.Background(), sampleProject(), domain.PhaseClarity)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Map lead routing", tasks[0].Title)
	assert.Equal(t, 6, tasks[0].AllocatedHours)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, domain.TaskAIGenerated, tasks[0].Type)
	assert.Equal(t, domain.PhaseClarity, tasks[0].Phase)
}

func TestGenerateTasks_DefensiveDefaults(t *testing.T) {
	client := &stubClient{text: `[
		{"name": "Odd task", "estimated_hours": "7.6", "priority": "Urgent", "tags": "Setup"},
		{"name": "Zero hours", "estimated_hours": 0},
		{"name": ""}
	]`}

	tasks, err := New(client).GenerateTasks(context.Background(), sampleProject(), domain.PhaseImplementation)

	require.NoError(t, err)
	require.Len(t, tasks, 2, "nameless task dropped")

	assert.Equal(t, 8, tasks[0].AllocatedHours, "numeric string rounded to int")
	assert.Equal(t, domain.PriorityMedium, tasks[0].Priority, "unknown priority defaulted")
	assert.Equal(t, []string{"Setup"}, tasks[0].Tags, "bare string tag wrapped")
	assert.Equal(t, "AI Suggested", tasks[0].Category)

	assert.Equal(t, 1, tasks[1].AllocatedHours, "hours floored at 1")
	assert.Equal(t, []string{"Implementation"}, tasks[1].Tags, "missing tags default to phase")
}

func TestGenerateTasks_ClientErrorNotFatal(t *testing.T) {
	client := &stubClient{err: llm.ErrUnavailable}

	tasks, err := New(client).GenerateTasks(context.Background(), sampleProject(), domain.PhaseAdoption)

	assert.ErrorIs(t, err, llm.ErrUnavailable)
	assert.Empty(t, tasks)
}

func TestGenerateTasks_MalformedOutput(t *testing.T) {
	client := &stubClient{text: "I cannot generate tasks right now."}

	tasks, err := New(client).GenerateTasks(context.Background(), sampleProject(), domain.PhaseClarity)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.Empty(t, tasks)
}

func TestGenerateTasks_EmptyArrayYieldsNoTasks(t *testing.T) {
	client := &stubClient{text: "[]"}

	tasks, err := New(client).GenerateTasks(context.Background(), sampleProject(), domain.PhaseClarity)

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestReservation_PerPhase(t *testing.T) {
	assert.InDelta(t, 0.30, Reservation(domain.PhaseClarity), 1e-9)
	assert.InDelta(t, 0.50, Reservation(domain.PhaseImplementation), 1e-9)
	assert.InDelta(t, 0.50, Reservation(domain.PhaseAdoption), 1e-9)
}

func TestReservedHours_Rounds(t *testing.T) {
	assert.Equal(t, 12, ReservedHours(domain.PhaseClarity, 40))
	assert.Equal(t, 15, ReservedHours(domain.PhaseImplementation, 30))
	assert.Equal(t, 0, ReservedHours(domain.PhaseClarity, 0))
}

func TestRescaleToReservation_ExactSum(t *testing.T) {
	tasks := []*domain.Deliverable{
		{Title: "a", AllocatedHours: 10},
		{Title: "b", AllocatedHours: 5},
		{Title: "c", AllocatedHours: 5},
	}

	RescaleToReservation(tasks, 12)

	sum := 0
	for _, task := range tasks {
		sum += task.AllocatedHours
		assert.GreaterOrEqual(t, task.AllocatedHours, 1)
	}
	assert.Equal(t, 12, sum)
	assert.Equal(t, 6, tasks[0].AllocatedHours, "relative weight preserved")
}

func TestRescaleToReservation_FloorHolds(t *testing.T) {
	tasks := []*domain.Deliverable{
		{Title: "a", AllocatedHours: 40},
		{Title: "b", AllocatedHours: 1},
		{Title: "c", AllocatedHours: 1},
	}

	RescaleToReservation(tasks, 5)

	sum := 0
	for _, task := range tasks {
		sum += task.AllocatedHours
		assert.GreaterOrEqual(t, task.AllocatedHours, 1)
	}
	assert.Equal(t, 5, sum)
}

func TestRescaleToReservation_NoTasksNoop(t *testing.T) {
	assert.NotPanics(t, func() { RescaleToReservation(nil, 10) })
}

func TestBuildPrompt_PhaseSections(t *testing.T) {
	p := sampleProject()
	p.PainPoints = "manual invoicing"
	p.UserCount = 25
	ctx := BuildContext(p)

	clarity := BuildPrompt(ctx, domain.PhaseClarity)
	assert.Contains(t, clarity, "Clarity phase")
	assert.Contains(t, clarity, "manual invoicing")
	assert.Contains(t, clarity, "Manufacturing")
	assert.Contains(t, clarity, "JSON array")

	adoption := BuildPrompt(ctx, domain.PhaseAdoption)
	assert.Contains(t, adoption, "User Count: 25")
	assert.Contains(t, adoption, "Hybrid")
}

func TestBuildContext_Defaults(t *testing.T) {
	ctx := BuildContext(&domain.Project{})

	assert.Equal(t, "General", ctx.Industry)
	assert.Equal(t, "English", ctx.Language)
	assert.Equal(t, "Hybrid", ctx.TrainingFormat)
	assert.Equal(t, 1, ctx.WarehouseCount)
}

func TestBuildContext_CollectsModulesAndScope(t *testing.T) {
	p := sampleProject()
	p.CustomModules = []domain.CustomModule{{Name: "Fleet Portal", Description: "driver portal", Hours: 20}}
	p.MigrationHours = 16
	p.Integrations = []string{"Shopify", "Stripe"}

	ctx := BuildContext(p)

	assert.Equal(t, []string{"CRM", "Inventory", "Fleet Portal"}, ctx.Modules)
	assert.Contains(t, ctx.CustomizationScope, "Fleet Portal: driver portal")
	assert.Equal(t, "Legacy data migration required", ctx.MigrationScope)
	assert.Equal(t, "Shopify, Stripe", ctx.IntegrationList)
}

func TestFlexDecoding(t *testing.T) {
	var h flexInt
	require.NoError(t, h.UnmarshalJSON([]byte(`"12"`)))
	assert.Equal(t, flexInt(12), h)
	require.NoError(t, h.UnmarshalJSON([]byte(`3.2`)))
	assert.Equal(t, flexInt(3), h)
	assert.Error(t, h.UnmarshalJSON([]byte(`"lots"`)))

	var tags flexTags
	require.NoError(t, tags.UnmarshalJSON([]byte(`["a","b"]`)))
	assert.Equal(t, flexTags{"a", "b"}, tags)
	require.NoError(t, tags.UnmarshalJSON([]byte(`{"weird": true}`)))
	assert.Empty(t, tags)
}

func TestGenerateTasks_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &stubClient{err: errors.New("context canceled")}
	tasks, err := New(client).GenerateTasks(ctx, sampleProject(), domain.PhaseClarity)

	assert.Error(t, err)
	assert.Empty(t, tasks)
}
