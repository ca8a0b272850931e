package contract

import (
	"github.com/arkode-mx/odooplan/internal/domain"
)

// ToProject converts a validated request into the immutable domain
// snapshot the generation pipeline consumes. Roster members without an
// explicit role default to Process Consultant, matching how the team
// usually staffs discovery-heavy projects.
func ToProject(req *PlanRequest) *domain.Project {
	p := &domain.Project{
		Name:      req.ProjectName,
		Client:    req.ClientName,
		Manager:   req.ProjectManager,
		Language:  domain.Language(domain.CoalesceStr(req.Language, string(domain.LangEnglish))),
		StartDate: req.StartDate,
		Deadline:  req.Deadline,

		Industry:       req.Industry,
		Country:        req.Country,
		CurrentSystems: req.CurrentSystems,
		PainPoints:     req.PainPoints,
		CoreProcesses:  req.CoreProcesses,
		UserCount:      req.UserCount,
		UserBreakdown:  req.UserBreakdown,
		TrainingFormat: req.TrainingFormat,

		ClarityEnabled: req.Clarity.Enabled,
		ClarityHours:   req.Clarity.Hours,

		ImplementationEnabled: req.Implementation.Enabled,
		ImplementationHours:   req.Implementation.TotalHours,
		MigrationHours:        req.Implementation.MigrationHours,
		CustomizationsNeeded:  req.Implementation.Customizations,

		AdoptionEnabled:      req.Adoption.Enabled,
		TrainingHours:        req.Adoption.TrainingHours,
		GoLiveHours:          req.Adoption.GoLiveHours,
		SupportHoursPerMonth: req.Adoption.SupportHoursPerMonth,
		SupportMonths:        req.Adoption.SupportMonths,

		AIEnabled:      req.AIEnabled,
		MultiWarehouse: req.MultiWarehouse,
		WarehouseCount: req.WarehouseCount,
		Integrations:   append([]string(nil), req.Integrations...),
	}

	p.RoleMap = make(map[string]string, len(req.Team))
	for _, m := range req.Team {
		p.Team = append(p.Team, m.Name)
		p.RoleMap[m.Name] = domain.CoalesceStr(m.Role, domain.RoleConsultant)
	}

	for _, m := range req.Implementation.Modules {
		p.Modules = append(p.Modules, domain.ModuleBudget{Name: m.Name, Hours: m.Hours})
	}
	for _, cm := range req.Implementation.CustomModules {
		p.CustomModules = append(p.CustomModules, domain.CustomModule{
			Name:        cm.Name,
			Description: cm.Description,
			Hours:       cm.Hours,
		})
	}

	return p
}
