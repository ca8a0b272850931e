package generation

import (
	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/scheduler"
)

// Budget shares for the three clarity deliverables.
var clarityWeights = []float64{0.40, 0.35, 0.25}

// Clarity splits the clarity budget into the three fixed discovery
// deliverables: Current Process Mapping (40%), TO-BE Process Design (35%)
// and Master of Implementation (25%), each with its own subtask split.
func Clarity(budget int, spanish bool, ids *domain.IDGenerator) []*domain.Deliverable {
	if budget <= 0 {
		return nil
	}

	shares := scheduler.Allocate(budget, clarityWeights)

	mapping := clarityDeliverable(ids, shares[0], spanish,
		"Current Process Mapping", "Mapeo de Procesos Actuales",
		"Discovery sessions and AS-IS process documentation by area",
		"Sesiones de discovery y documentación de procesos AS-IS por área",
		pick(spanish, "Process Mapping", "Mapeo de Procesos"),
		[]float64{0.40, 0.40, 0.20},
		[]subtaskSpec{
			{
				"Discovery sessions", "Sesiones de discovery",
				"Meetings with stakeholders to understand current processes and requirements",
				"Reuniones con stakeholders para entender procesos y requerimientos actuales",
				domain.PriorityHigh,
			},
			{
				"Document AS-IS process by department", "Documentar proceso AS-IS por departamento",
				"Create flowcharts and documentation of current processes by area",
				"Crear diagramas de flujo y documentación de procesos actuales por área",
				domain.PriorityHigh,
			},
			{
				"Identify opportunity areas", "Identificar áreas de oportunidad",
				"Detect inefficiencies, bottlenecks and improvement opportunities",
				"Detectar ineficiencias, cuellos de botella y oportunidades de mejora",
				domain.PriorityMedium,
			},
		})

	design := clarityDeliverable(ids, shares[1], spanish,
		"TO-BE Process Design", "Diseño de Proceso TO-BE",
		"Future process design, Odoo module mapping and customization identification",
		"Diseño de procesos futuros, mapeo a módulos de Odoo e identificación de personalizaciones",
		pick(spanish, "Findings and TO-BE", "Hallazgos y TO-BE"),
		[]float64{0.35, 0.35, 0.30},
		[]subtaskSpec{
			{
				"Map requirements to Odoo modules", "Mapear requisitos a módulos de Odoo",
				"Relate business needs to standard Odoo functionalities",
				"Relacionar necesidades del negocio con funcionalidades estándar de Odoo",
				domain.PriorityHigh,
			},
			{
				"Identify customization needs", "Identificar necesidades de personalización",
				"Document gaps between standard functionality and specific requirements",
				"Documentar gaps entre funcionalidad estándar y requerimientos específicos",
				domain.PriorityHigh,
			},
			{
				"Define workflows and business rules", "Definir workflows y reglas de negocio",
				"Design workflows and automation rules for each process",
				"Diseñar flujos de trabajo y reglas de automatización para cada proceso",
				domain.PriorityHigh,
			},
		})

	master := clarityDeliverable(ids, shares[2], spanish,
		"Master of Implementation", "Master de Implementación",
		"Module definition, properties, business rules and Odoo layout design",
		"Definición de módulos, propiedades, reglas de negocio y maquetado de Odoo",
		pick(spanish, "Master of Implementation", "Master de Implementación"),
		[]float64{0.30, 0.40, 0.30},
		[]subtaskSpec{
			{
				"Define modules to implement", "Definir módulos a implementar",
				"Final module list with scope and dependencies",
				"Listado final de módulos con alcance y dependencias",
				domain.PriorityHigh,
			},
			{
				"Document properties and business rules", "Bajar propiedades y reglas de negocio",
				"Detailed specification of fields, default values and validations",
				"Especificación detallada de campos, valores por defecto y validaciones",
				domain.PriorityHigh,
			},
			{
				"Design Odoo layout", "Diseñar maquetado de Odoo",
				"Menu structure, views and custom dashboards",
				"Estructura de menús, vistas y dashboards personalizados",
				domain.PriorityHigh,
			},
		})

	return []*domain.Deliverable{mapping, design, master}
}

// subtaskSpec is a template subtask before hours are allocated.
type subtaskSpec struct {
	title    string
	titleES  string
	desc     string
	descES   string
	priority domain.Priority
}

func clarityDeliverable(ids *domain.IDGenerator, hours int, spanish bool,
	title, titleES, desc, descES, milestone string,
	weights []float64, specs []subtaskSpec) *domain.Deliverable {

	d := &domain.Deliverable{
		ID:             ids.Next(),
		Title:          pick(spanish, title, titleES),
		Description:    pick(spanish, desc, descES),
		AllocatedHours: hours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseClarity,
		Milestone:      milestone,
		Type:           domain.TaskNative,
	}
	d.Subtasks = buildSubtasks(ids, d, spanish, hours, weights, specs)
	return d
}

// buildSubtasks allocates hours across template subtasks so they sum to
// the parent deliverable's hours exactly.
func buildSubtasks(ids *domain.IDGenerator, d *domain.Deliverable, spanish bool,
	hours int, weights []float64, specs []subtaskSpec) []domain.Subtask {

	shares := scheduler.Allocate(hours, weights)
	out := make([]domain.Subtask, 0, len(specs))
	for i, spec := range specs {
		out = append(out, domain.Subtask{
			ID:             ids.Next(),
			ParentID:       d.ID,
			Title:          pick(spanish, spec.title, spec.titleES),
			Description:    pick(spanish, spec.desc, spec.descES),
			AllocatedHours: shares[i],
			Priority:       spec.priority,
			Phase:          d.Phase,
			Module:         d.Module,
			Type:           d.Type,
		})
	}
	return out
}
