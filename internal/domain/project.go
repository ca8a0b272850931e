package domain

// ModuleBudget pairs a standard Odoo module with its user-specified hour
// budget. Hours of zero means "size this module from the unallocated
// implementation remainder".
type ModuleBudget struct {
	Name  string
	Hours int
}

// CustomModule is a user-defined development module with its own budget.
type CustomModule struct {
	Name        string
	Description string
	Hours       int
}

// Project is the immutable questionnaire snapshot a plan is generated from.
// Generation never mutates it; re-running generation on the same snapshot
// must produce an identical plan.
type Project struct {
	Name     string
	Client   string
	Manager  string
	Language Language

	StartDate string // YYYY-MM-DD; empty means "today" at generation time
	Deadline  string // YYYY-MM-DD; empty means no hard deadline

	Team    []string          // ordered roster of member names
	RoleMap map[string]string // member name -> role (RoleDeveloper / RoleConsultant)

	// Context fed to the AI augmenter.
	Industry       string
	Country        string
	CurrentSystems string
	PainPoints     string
	CoreProcesses  string
	UserCount      int
	UserBreakdown  string
	TrainingFormat string

	ClarityEnabled bool
	ClarityHours   int

	ImplementationEnabled bool
	ImplementationHours   int // explicit total; 0 means "derive from parts"
	Modules               []ModuleBudget
	CustomModules         []CustomModule
	MigrationHours        int
	CustomizationsNeeded  bool

	AdoptionEnabled      bool
	TrainingHours        int
	GoLiveHours          int
	SupportHoursPerMonth int
	SupportMonths        int

	AIEnabled      bool
	MultiWarehouse bool
	WarehouseCount int
	Integrations   []string
}

// ClarityBudget returns the clarity phase hour budget, zero when disabled.
func (p *Project) ClarityBudget() int {
	if !p.ClarityEnabled {
		return 0
	}
	return p.ClarityHours
}

// ImplementationBudget returns the implementation phase hour budget.
// An explicit total wins; otherwise the budget is the sum of module,
// custom-module and migration hours.
func (p *Project) ImplementationBudget() int {
	if !p.ImplementationEnabled {
		return 0
	}
	if p.ImplementationHours > 0 {
		return p.ImplementationHours
	}
	total := p.MigrationHours
	for _, m := range p.Modules {
		total += m.Hours
	}
	for _, cm := range p.CustomModules {
		total += cm.Hours
	}
	return total
}

// AdoptionBudget returns the adoption phase hour budget: training plus
// go-live plus the monthly support block.
func (p *Project) AdoptionBudget() int {
	if !p.AdoptionEnabled {
		return 0
	}
	return p.TrainingHours + p.GoLiveHours + p.SupportHoursPerMonth*p.SupportMonths
}

// TotalBudgetHours is the sum of all enabled phase budgets. The generated
// plan's total allocated hours must reconcile against this number.
func (p *Project) TotalBudgetHours() int {
	return p.ClarityBudget() + p.ImplementationBudget() + p.AdoptionBudget()
}

// IsSpanish reports whether plan text should be rendered in Spanish.
func (p *Project) IsSpanish() bool {
	return p.Language == LangSpanish
}

// MembersWithRole returns roster members carrying the given role, in
// roster order. Roster order is significant: the assigner indexes into
// this slice by task ID.
func (p *Project) MembersWithRole(role string) []string {
	var out []string
	for _, m := range p.Team {
		if p.RoleMap[m] == role {
			out = append(out, m)
		}
	}
	return out
}
