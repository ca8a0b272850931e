package augment

import (
	"fmt"
	"strings"

	"github.com/arkode-mx/odooplan/internal/domain"
)

// BuildPrompt renders the phase-specific instruction prompt. The model is
// told to answer with a bare JSON array of task objects so the response
// can be parsed without special casing.
func BuildPrompt(ctx Context, phase domain.Phase) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert Odoo implementation consultant. Generate 3-5 specific, actionable tasks for the %s phase.

IMPORTANT RULES:
- Tasks must be SPECIFIC to this project (not generic)
- Use the provided context to create relevant tasks
- Estimated hours must be whole numbers only (no decimals)
- Return ONLY a valid JSON array, no other text
- Tasks must be in %s language
- Each task must have: name, description, estimated_hours, priority, category, tags

Context:
Industry: %s
Country: %s
Modules: %s
`, phase, ctx.Language, ctx.Industry, ctx.Country, strings.Join(ctx.Modules, ", "))

	switch phase {
	case domain.PhaseClarity:
		fmt.Fprintf(&b, `Current Systems: %s
Pain Points: %s
Core Processes: %s

Generate 3-5 specific Clarity phase tasks that:
- Address the pain points mentioned
- Cover migration planning from current systems
- Map the core business processes mentioned
- Are specific to the %s industry
- Include discovery workshops for critical areas
`, ctx.CurrentSystems, ctx.PainPoints, ctx.CoreProcesses, ctx.Industry)

	case domain.PhaseImplementation:
		warehouse := "No"
		if ctx.MultiWarehouse {
			warehouse = fmt.Sprintf("Yes (%d warehouses)", ctx.WarehouseCount)
		}
		fmt.Fprintf(&b, `Data Migration: %s
Integrations: %s
Customizations: %s
Multi-warehouse: %s

Generate 3-5 specific Implementation phase tasks that:
- Address complex data migration needs
- Configure integrations mentioned
- Handle multi-warehouse complexity
- Are specific to the %s industry
- Focus on the selected modules: %s
`, ctx.MigrationScope, ctx.IntegrationList, ctx.CustomizationScope, warehouse,
			ctx.Industry, strings.Join(ctx.Modules, ", "))

	case domain.PhaseAdoption:
		fmt.Fprintf(&b, `User Count: %d
User Breakdown: %s
Training Format: %s
Pain Points to Address: %s

Generate 3-5 specific Adoption phase tasks that:
- Create role-based training for user groups mentioned
- Address change management for pain points
- Are specific to the %s industry
- Match the %s training format
- Focus on process adoption for: %s
`, ctx.UserCount, ctx.UserBreakdown, ctx.TrainingFormat, ctx.PainPoints,
			ctx.Industry, ctx.TrainingFormat, ctx.CoreProcesses)
	}

	b.WriteString(`
Example format:
[
  {
    "name": "Map order-to-cash process from legacy system",
    "description": "Document the flow and identify gaps before configuration",
    "estimated_hours": 8,
    "priority": "High",
    "category": "Process Mapping",
    "tags": ["Discovery"]
  }
]

Return only the JSON array:`)

	return b.String()
}
