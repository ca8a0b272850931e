// Package contract defines the external answers-file schema and its
// conversion into the domain project snapshot. Everything user-facing
// enters through here; the generation pipeline only ever sees a validated
// domain.Project.
package contract

// PlanRequest is the questionnaire answers file, accepted as JSON or YAML.
type PlanRequest struct {
	ProjectName    string `json:"project_name" yaml:"project_name" validate:"required"`
	ClientName     string `json:"client_name" yaml:"client_name" validate:"required"`
	ProjectManager string `json:"project_manager" yaml:"project_manager"`
	Language       string `json:"language" yaml:"language" validate:"omitempty,oneof=English Spanish"`
	StartDate      string `json:"start_date" yaml:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Deadline       string `json:"deadline" yaml:"deadline" validate:"omitempty,datetime=2006-01-02"`

	Team []TeamMember `json:"team" yaml:"team" validate:"dive"`

	Industry       string `json:"industry" yaml:"industry"`
	Country        string `json:"country" yaml:"country"`
	CurrentSystems string `json:"current_systems" yaml:"current_systems"`
	PainPoints     string `json:"pain_points" yaml:"pain_points"`
	CoreProcesses  string `json:"core_processes" yaml:"core_processes"`
	UserCount      int    `json:"user_count" yaml:"user_count" validate:"min=0"`
	UserBreakdown  string `json:"user_breakdown" yaml:"user_breakdown"`
	TrainingFormat string `json:"training_format" yaml:"training_format" validate:"omitempty,oneof=On-site Remote Hybrid"`

	Clarity        ClarityAnswers        `json:"clarity" yaml:"clarity"`
	Implementation ImplementationAnswers `json:"implementation" yaml:"implementation"`
	Adoption       AdoptionAnswers       `json:"adoption" yaml:"adoption"`

	AIEnabled bool `json:"ai_customization" yaml:"ai_customization"`

	MultiWarehouse bool     `json:"multi_warehouse" yaml:"multi_warehouse"`
	WarehouseCount int      `json:"warehouse_count" yaml:"warehouse_count" validate:"min=0"`
	Integrations   []string `json:"integrations" yaml:"integrations"`
}

// TeamMember pairs a roster name with its assignment role.
type TeamMember struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Role string `json:"role" yaml:"role" validate:"omitempty,oneof='Odoo Developer' 'Process Consultant'"`
}

// ClarityAnswers covers the discovery phase questions.
type ClarityAnswers struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Hours   int  `json:"hours" yaml:"hours" validate:"min=0"`
}

// ImplementationAnswers covers module selection and budgets. Modules is an
// ordered list, not a map: module order fixes deliverable and milestone
// order in the generated plan.
type ImplementationAnswers struct {
	Enabled        bool                 `json:"enabled" yaml:"enabled"`
	TotalHours     int                  `json:"total_hours" yaml:"total_hours" validate:"min=0"`
	Modules        []ModuleAnswer       `json:"modules" yaml:"modules" validate:"dive"`
	CustomModules  []CustomModuleAnswer `json:"custom_modules" yaml:"custom_modules" validate:"dive"`
	MigrationHours int                  `json:"migration_hours" yaml:"migration_hours" validate:"min=0"`
	Customizations bool                 `json:"customizations" yaml:"customizations"`
}

// ModuleAnswer selects one standard Odoo module with an optional budget.
type ModuleAnswer struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Hours int    `json:"hours" yaml:"hours" validate:"min=0"`
}

// CustomModuleAnswer describes a bespoke development module.
type CustomModuleAnswer struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Hours       int    `json:"hours" yaml:"hours" validate:"min=0"`
}

// AdoptionAnswers covers training, go-live and post go-live support.
type AdoptionAnswers struct {
	Enabled              bool `json:"enabled" yaml:"enabled"`
	TrainingHours        int  `json:"training_hours" yaml:"training_hours" validate:"min=0"`
	GoLiveHours          int  `json:"go_live_hours" yaml:"go_live_hours" validate:"min=0"`
	SupportHoursPerMonth int  `json:"support_hours_per_month" yaml:"support_hours_per_month" validate:"min=0"`
	SupportMonths        int  `json:"support_months" yaml:"support_months" validate:"min=0"`
}

// PlanStats is the generation summary shown to the user and serialized
// next to the CSV export.
type PlanStats struct {
	Deliverables int      `json:"deliverables"`
	Subtasks     int      `json:"subtasks"`
	TotalTasks   int      `json:"total_tasks"`
	TotalHours   int      `json:"total_hours"`
	InputHours   int      `json:"input_hours"`
	ScaleFactor  float64  `json:"scale_factor"`
	AITasksAdded int      `json:"ai_tasks_added"`
	Warnings     []string `json:"warnings,omitempty"`
}
