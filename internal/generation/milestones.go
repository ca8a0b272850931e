package generation

import (
	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/scheduler"
)

// Milestone ordering: the three clarity milestones lead, module milestones
// follow in deliverable order, and the single adoption milestone closes
// the plan.
const (
	clarityMilestoneBase = 1
	moduleMilestoneBase  = 10
	adoptionMilestoneOrd = 100
)

// Milestones builds the canonical milestone list for a generated plan.
// Module milestones are derived from the implementation deliverables that
// carry a module name, so standard and custom modules appear in the order
// they were generated.
func Milestones(p *domain.Project, deliverables []*domain.Deliverable, tl scheduler.Timeline) []domain.Milestone {
	spanish := p.IsSpanish()
	var out []domain.Milestone

	if p.ClarityEnabled {
		names := []string{
			pick(spanish, "Process Mapping", "Mapeo de Procesos"),
			pick(spanish, "Findings and TO-BE", "Hallazgos y TO-BE"),
			pick(spanish, "Master of Implementation", "Master de Implementación"),
		}
		windows := clarityMilestoneWindows(tl)
		for i, name := range names {
			out = append(out, domain.Milestone{
				Name:      name,
				Phase:     domain.PhaseClarity,
				Order:     clarityMilestoneBase + i,
				StartDate: windows[i].Start,
				Deadline:  windows[i].End,
			})
		}
	}

	order := moduleMilestoneBase + 1
	for _, d := range deliverables {
		if d.Phase != domain.PhaseImplementation || d.Module == "" {
			continue
		}
		out = append(out, domain.Milestone{
			Name:      d.Milestone,
			Phase:     domain.PhaseImplementation,
			Order:     order,
			StartDate: d.StartDate,
			Deadline:  d.Deadline,
		})
		order++
	}

	if p.AdoptionEnabled {
		out = append(out, domain.Milestone{
			Name:      adoptionMilestoneName(spanish),
			Phase:     domain.PhaseAdoption,
			Order:     adoptionMilestoneOrd,
			StartDate: tl.Adoption.Start,
			Deadline:  tl.Adoption.End,
		})
	}

	return out
}

// clarityMilestoneWindows splits the clarity window into thirds, one per
// fixed clarity milestone, weighted like the deliverables themselves.
func clarityMilestoneWindows(tl scheduler.Timeline) [3]scheduler.Window {
	var out [3]scheduler.Window
	if !tl.Clarity.Enabled {
		return out
	}

	days := scheduler.DaysBetween(tl.Clarity.Start, tl.Clarity.End)
	shares := scheduler.Allocate(days, clarityWeights)
	cursor := tl.Clarity.Start
	for i, d := range shares {
		end := scheduler.AddDays(cursor, d)
		out[i] = scheduler.Window{Start: cursor, End: end}
		cursor = end
	}
	out[2].End = tl.Clarity.End
	return out
}
