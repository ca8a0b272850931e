package augment

import (
	"strings"

	"github.com/arkode-mx/odooplan/internal/domain"
)

// Context is the project snapshot rendered into the model prompt. One
// Context serves all three phase prompts; each prompt picks the fields
// relevant to its phase.
type Context struct {
	Industry string
	Country  string
	Language string

	CurrentSystems string
	PainPoints     string
	CoreProcesses  string

	Modules            []string
	MigrationScope     string
	IntegrationList    string
	CustomizationScope string
	MultiWarehouse     bool
	WarehouseCount     int

	UserCount      int
	UserBreakdown  string
	TrainingFormat string
}

// BuildContext extracts augmentation context from a project snapshot,
// applying defaults for fields the questionnaire left blank.
func BuildContext(p *domain.Project) Context {
	ctx := Context{
		Industry:       domain.CoalesceStr(p.Industry, "General"),
		Country:        p.Country,
		Language:       string(p.Language),
		CurrentSystems: p.CurrentSystems,
		PainPoints:     p.PainPoints,
		CoreProcesses:  p.CoreProcesses,
		MultiWarehouse: p.MultiWarehouse,
		WarehouseCount: domain.IntWithDefault(1, p.WarehouseCount),
		UserCount:      p.UserCount,
		UserBreakdown:  p.UserBreakdown,
		TrainingFormat: domain.CoalesceStr(p.TrainingFormat, "Hybrid"),
	}
	if ctx.Language == "" {
		ctx.Language = string(domain.LangEnglish)
	}

	for _, m := range p.Modules {
		ctx.Modules = append(ctx.Modules, m.Name)
	}
	for _, cm := range p.CustomModules {
		ctx.Modules = append(ctx.Modules, cm.Name)
		if cm.Description != "" {
			ctx.CustomizationScope = joinScope(ctx.CustomizationScope, cm.Name+": "+cm.Description)
		}
	}

	if p.MigrationHours > 0 {
		ctx.MigrationScope = "Legacy data migration required"
	}
	ctx.IntegrationList = strings.Join(p.Integrations, ", ")

	return ctx
}

func joinScope(existing, addition string) string {
	if existing == "" {
		return addition
	}
	return existing + "; " + addition
}
