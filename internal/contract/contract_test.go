package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *PlanRequest {
	return &PlanRequest{
		ProjectName: "Acme ERP",
		ClientName:  "Acme Corp",
		Language:    "English",
		StartDate:   "2025-01-01",
		Deadline:    "2025-04-01",
		Team: []TeamMember{
			{Name: "Dev One", Role: "Odoo Developer"},
			{Name: "Consultant One", Role: "Process Consultant"},
		},
		Clarity: ClarityAnswers{Enabled: true, Hours: 40},
		Implementation: ImplementationAnswers{
			Enabled: true,
			Modules: []ModuleAnswer{{Name: "CRM", Hours: 30}},
		},
	}
}

func TestValidate_AcceptsValidRequest(t *testing.T) {
	assert.Empty(t, Validate(validRequest()))
}

func TestValidate_RequiredFields(t *testing.T) {
	req := validRequest()
	req.ProjectName = ""
	req.ClientName = ""

	errs := Validate(req)

	require.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "project_name")
	assert.Contains(t, fields, "client_name")
}

func TestValidate_NoPhaseEnabled(t *testing.T) {
	req := validRequest()
	req.Clarity.Enabled = false
	req.Implementation.Enabled = false

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "phases", errs[0].Field)
}

func TestValidate_DeadlineBeforeStart(t *testing.T) {
	req := validRequest()
	req.Deadline = "2024-12-01"

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "deadline", errs[0].Field)
}

func TestValidate_BadDateFormat(t *testing.T) {
	req := validRequest()
	req.StartDate = "01/01/2025"

	errs := Validate(req)

	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "YYYY-MM-DD")
}

func TestValidate_BadLanguage(t *testing.T) {
	req := validRequest()
	req.Language = "French"

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "language", errs[0].Field)
}

func TestValidate_EmptyImplementation(t *testing.T) {
	req := validRequest()
	req.Implementation.Modules = nil

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "implementation", errs[0].Field)
}

func TestValidate_NestedTeamMember(t *testing.T) {
	req := validRequest()
	req.Team = append(req.Team, TeamMember{Name: "", Role: "Odoo Developer"})

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Field, "name")
}

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, CombineErrors(nil))

	err := CombineErrors([]ValidationError{{Field: "x", Message: "is required"}})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "x: is required")
}

func TestToProject_MapsAllFields(t *testing.T) {
	req := validRequest()
	req.Industry = "Retail"
	req.Implementation.CustomModules = []CustomModuleAnswer{{Name: "Loyalty", Description: "points engine", Hours: 25}}
	req.Adoption = AdoptionAnswers{Enabled: true, TrainingHours: 24, GoLiveHours: 8, SupportHoursPerMonth: 10, SupportMonths: 2}
	req.Integrations = []string{"Shopify"}

	p := ToProject(req)

	assert.Equal(t, "Acme ERP", p.Name)
	assert.Equal(t, domain.LangEnglish, p.Language)
	assert.Equal(t, []string{"Dev One", "Consultant One"}, p.Team)
	assert.Equal(t, domain.RoleDeveloper, p.RoleMap["Dev One"])
	assert.Equal(t, []domain.ModuleBudget{{Name: "CRM", Hours: 30}}, p.Modules)
	assert.Equal(t, "Loyalty", p.CustomModules[0].Name)
	assert.Equal(t, 52, p.AdoptionBudget())
	assert.Equal(t, []string{"Shopify"}, p.Integrations)
}

func TestToProject_Defaults(t *testing.T) {
	req := validRequest()
	req.Language = ""
	req.Team = []TeamMember{{Name: "Someone"}}

	p := ToProject(req)

	assert.Equal(t, domain.LangEnglish, p.Language)
	assert.Equal(t, domain.RoleConsultant, p.RoleMap["Someone"], "role defaults to consultant")
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
project_name: Acme ERP
client_name: Acme Corp
language: Spanish
clarity:
  enabled: true
  hours: 40
implementation:
  enabled: true
  modules:
    - name: CRM
      hours: 30
    - name: Sales
      hours: 20
`), 0o644))

	req, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Acme ERP", req.ProjectName)
	assert.Equal(t, "Spanish", req.Language)
	require.Len(t, req.Implementation.Modules, 2)
	assert.Equal(t, "CRM", req.Implementation.Modules[0].Name, "module order preserved")
}

func TestLoadFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"project_name": "Acme ERP",
		"client_name": "Acme Corp",
		"clarity": {"enabled": true, "hours": 40}
	}`), 0o644))

	req, err := LoadFile(path)

	require.NoError(t, err)
	assert.True(t, req.Clarity.Enabled)
	assert.Equal(t, 40, req.Clarity.Hours)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	_, err := LoadFile(path)

	assert.ErrorContains(t, err, "unsupported answers file extension")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("/nonexistent/answers.yaml")
	assert.Error(t, err)
}
