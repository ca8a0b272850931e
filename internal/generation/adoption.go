package generation

import (
	"fmt"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/scheduler"
)

// Share of the adoption template budget consumed by the core training and
// go-live work; the rest becomes the monthly support blocks.
const adoptionCoreShare = 0.40

// Adoption deliverable categories, used by the scheduling pass to place
// the support blocks after go-live.
const (
	CategoryTraining = "Training"
	CategoryGoLive   = "Go-Live"
	CategorySupport  = "Support"
)

// adoptionMilestoneName is the single adoption milestone, also referenced
// by implementation deliverables that are not tied to one module.
func adoptionMilestoneName(spanish bool) string {
	return pick(spanish, "Training and Go-Live", "Capacitación y Go-Live")
}

// Adoption builds the adoption-phase deliverables. The core training and
// go-live catalog scales to 40% of the template budget when monthly
// support is requested; without support months the core work takes the
// whole budget. Support hours split evenly across the requested months.
func Adoption(p *domain.Project, budget int, ids *domain.IDGenerator) []*domain.Deliverable {
	if budget <= 0 {
		return nil
	}
	spanish := p.IsSpanish()

	coreHours, supportHours := budget, 0
	if p.SupportMonths > 0 {
		split := scheduler.Allocate(budget, []float64{adoptionCoreShare, 1 - adoptionCoreShare})
		coreHours, supportHours = split[0], split[1]
	}

	// Training and go-live share the core budget in proportion to the
	// questionnaire answers; a 3:1 default applies when both are blank.
	trainingWeight := float64(p.TrainingHours)
	goLiveWeight := float64(p.GoLiveHours)
	if trainingWeight == 0 && goLiveWeight == 0 {
		trainingWeight, goLiveWeight = 3, 1
	}
	core := scheduler.Allocate(coreHours, []float64{trainingWeight, goLiveWeight})

	var out []*domain.Deliverable
	if core[0] > 0 {
		out = append(out, training(core[0], spanish, ids))
	}
	if core[1] > 0 {
		out = append(out, goLive(core[1], spanish, ids))
	}
	if supportHours > 0 && p.SupportMonths > 0 {
		out = append(out, monthlySupport(supportHours, p.SupportMonths, spanish, ids))
	}
	return out
}

func training(hours int, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	d := &domain.Deliverable{
		ID:    ids.Next(),
		Title: pick(spanish, "Training", "Capacitación"),
		Description: pick(spanish,
			"Admin and end-user training sessions",
			"Capacitación de administradores y usuarios finales del sistema"),
		AllocatedHours: hours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseAdoption,
		Milestone:      adoptionMilestoneName(spanish),
		Category:       CategoryTraining,
		Type:           domain.TaskNative,
	}
	d.Subtasks = buildSubtasks(ids, d, spanish, hours,
		[]float64{0.35, 0.50, 0.15},
		[]subtaskSpec{
			{
				"Admin training (power users)", "Capacitación de administradores (power users)",
				"Advanced training for key users who will provide internal support",
				"Entrenamiento avanzado para usuarios clave que darán soporte interno",
				domain.PriorityHigh,
			},
			{
				"End-user training", "Capacitación de usuarios finales",
				"Training sessions by department for day-to-day users",
				"Sesiones de capacitación por departamento para usuarios del día a día",
				domain.PriorityHigh,
			},
			{
				"Training materials", "Materiales de capacitación",
				"Quick guides, tutorial videos and user documentation",
				"Guías rápidas, videos tutoriales y documentación de usuario",
				domain.PriorityMedium,
			},
		})
	return d
}

func goLive(hours int, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	d := &domain.Deliverable{
		ID:    ids.Next(),
		Title: "Go-Live",
		Description: pick(spanish,
			"Go-live preparation and execution with intensive support",
			"Preparación y ejecución de go-live con soporte intensivo"),
		AllocatedHours: hours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseAdoption,
		Milestone:      adoptionMilestoneName(spanish),
		Category:       CategoryGoLive,
		Type:           domain.TaskNative,
	}
	d.Subtasks = buildSubtasks(ids, d, spanish, hours,
		[]float64{0.25, 0.75},
		[]subtaskSpec{
			{
				"Go-live preparation & checklist", "Preparación y checklist de go-live",
				"Verify configuration, data, users and permissions before production",
				"Verificar configuración, datos, usuarios y permisos antes de producción",
				domain.PriorityHigh,
			},
			{
				"Go-live support", "Soporte de go-live",
				"Intensive support during first days in production",
				"Soporte intensivo durante los primeros días de producción",
				domain.PriorityHigh,
			},
		})
	return d
}

func monthlySupport(hours, months int, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	d := &domain.Deliverable{
		ID:    ids.Next(),
		Title: pick(spanish, "Post Go-Live Support", "Soporte Post Go-Live"),
		Description: pick(spanish,
			fmt.Sprintf("%d months of support with %d hours total", months, hours),
			fmt.Sprintf("%d meses de soporte con %d horas en total", months, hours)),
		AllocatedHours: hours,
		Priority:       domain.PriorityMedium,
		Phase:          domain.PhaseAdoption,
		Milestone:      adoptionMilestoneName(spanish),
		Category:       CategorySupport,
		Type:           domain.TaskNative,
	}

	shares := scheduler.Allocate(hours, make([]float64, months))
	for month := 1; month <= months; month++ {
		d.Subtasks = append(d.Subtasks, domain.Subtask{
			ID:       ids.Next(),
			ParentID: d.ID,
			Title: pick(spanish,
				fmt.Sprintf("Month %d: Support and optimization", month),
				fmt.Sprintf("Mes %d: Soporte y optimización", month)),
			Description: pick(spanish,
				fmt.Sprintf("Technical support, incident resolution and minor improvements during month %d", month),
				fmt.Sprintf("Soporte técnico, resolución de incidencias y mejoras menores durante el mes %d", month)),
			AllocatedHours: shares[month-1],
			Priority:       domain.PriorityMedium,
			Phase:          domain.PhaseAdoption,
			Type:           domain.TaskNative,
		})
	}
	return d
}
