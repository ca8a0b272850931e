package generation

import (
	"fmt"
	"strings"

	"github.com/arkode-mx/odooplan/internal/catalog"
	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/scheduler"
)

const (
	generalSetupHours    = 8
	integrationHours     = 16
	warehouseConfigHours = 6
	securityMinHours     = 3
	securityBudgetShare  = 0.02
	customDevFallback    = 16
)

// Module subtask split: configuration / data migration / testing.
var moduleWeights = []float64{0.70, 0.15, 0.15}

// Custom module subtask split: design+dev / testing / documentation.
var customWeights = []float64{0.60, 0.25, 0.15}

// Implementation builds the implementation-phase deliverables: the fixed
// general setup block, one work package per selected module, custom module
// developments, then cross-cutting tasks (migration, integrations,
// multi-warehouse, security).
//
// Modules with an explicit hour budget keep it; modules left at zero split
// whatever remains of the phase budget evenly. When nothing remains, the
// zero-hour modules are omitted rather than emitted as empty work.
func Implementation(p *domain.Project, budget int, ids *domain.IDGenerator) []*domain.Deliverable {
	spanish := p.IsSpanish()
	var out []*domain.Deliverable

	out = append(out, generalSetup(spanish, ids))

	moduleHours := resolveModuleHours(p, budget)
	for i, m := range p.Modules {
		hours := moduleHours[i]
		if hours <= 0 {
			continue
		}
		out = append(out, moduleWorkPackage(m.Name, hours, spanish, ids))
	}

	for _, cm := range p.CustomModules {
		if cm.Name == "" || cm.Hours <= 0 {
			continue
		}
		out = append(out, customModuleWorkPackage(cm, spanish, ids))
	}

	// The generic custom-development block only exists when the model is
	// not being asked for customization tasks; with AI on, that budget
	// share belongs to the generated tasks instead.
	if p.CustomizationsNeeded && !p.AIEnabled {
		out = append(out, customDevelopment(p, budget, spanish, ids))
	}

	if p.MigrationHours > 0 {
		out = append(out, dataMigration(p.MigrationHours, spanish, ids))
	}

	if len(p.Integrations) > 0 {
		out = append(out, integrations(p.Integrations, spanish, ids))
	}

	if p.MultiWarehouse {
		out = append(out, multiWarehouse(domain.IntWithDefault(2, p.WarehouseCount), spanish, ids))
	}

	out = append(out, securityDesign(budget, spanish, ids))

	return out
}

// resolveModuleHours returns the hour budget per selected module, in
// module order. Explicit budgets pass through; zero-budget modules share
// the unallocated remainder evenly.
func resolveModuleHours(p *domain.Project, budget int) []int {
	out := make([]int, len(p.Modules))
	explicitSum := 0
	var zeroIdx []int

	for i, m := range p.Modules {
		if m.Hours > 0 {
			out[i] = m.Hours
			explicitSum += m.Hours
		} else {
			zeroIdx = append(zeroIdx, i)
		}
	}
	if len(zeroIdx) == 0 {
		return out
	}

	remainder := budget - explicitSum - p.MigrationHours
	for _, cm := range p.CustomModules {
		remainder -= cm.Hours
	}
	if remainder <= 0 {
		return out
	}

	shares := scheduler.Allocate(remainder, make([]float64, len(zeroIdx)))
	for j, i := range zeroIdx {
		out[i] = shares[j]
	}
	return out
}

func generalSetup(spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	d := &domain.Deliverable{
		ID: ids.Next(),
		Title: pick(spanish,
			"General Odoo Configuration", "Configuración General de Odoo"),
		Description: pick(spanish,
			"Initial instance configuration, companies, users and roles setup",
			"Configuración inicial de la instancia, empresas, usuarios y roles"),
		AllocatedHours: generalSetupHours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseImplementation,
		Milestone:      adoptionMilestoneName(spanish),
		Type:           domain.TaskNative,
	}
	d.Subtasks = buildSubtasks(ids, d, spanish, generalSetupHours,
		[]float64{1, 1, 1, 1},
		[]subtaskSpec{
			{
				"Odoo instance configuration", "Configuración de instancia Odoo",
				"Base instance setup: language, timezone, currency and general settings",
				"Configuración base de la instancia: idioma, zona horaria, moneda y ajustes generales",
				domain.PriorityHigh,
			},
			{
				"Company(ies) setup", "Configuración de empresa(s)",
				"Company data, logo, tax info and multi-company setup if applicable",
				"Datos de empresa, logo, información fiscal y configuración multi-compañía si aplica",
				domain.PriorityHigh,
			},
			{
				"Users and roles setup", "Configuración de usuarios y roles",
				"Create users, assign access groups and configure profiles by department",
				"Crear usuarios, asignar grupos de acceso y configurar perfiles por departamento",
				domain.PriorityHigh,
			},
			{
				"Access and security configuration", "Configuración de accesos y seguridad",
				"Record rules, group permissions and security restrictions",
				"Reglas de registro, permisos por grupo y restricciones de seguridad",
				domain.PriorityMedium,
			},
		})
	return d
}

// moduleMilestoneName is the per-module milestone title, shared by the
// deliverable and the milestones list.
func moduleMilestoneName(module string, spanish bool) string {
	if spanish {
		return fmt.Sprintf("Implementación del Módulo de %s", module)
	}
	return fmt.Sprintf("%s Module Implementation", module)
}

func moduleWorkPackage(module string, hours int, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	activities := catalog.ModuleActivities(module, spanish)
	title := moduleMilestoneName(module, spanish)

	d := &domain.Deliverable{
		ID:    ids.Next(),
		Title: title,
		Description: pick(spanish,
			fmt.Sprintf("Configuration, migration and testing of %s module", module),
			fmt.Sprintf("Configuración, migración y pruebas del módulo de %s", module)),
		AllocatedHours: hours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseImplementation,
		Module:         module,
		Milestone:      title,
		Type:           domain.TaskNative,
	}

	shares := scheduler.Allocate(hours, moduleWeights)
	d.Subtasks = []domain.Subtask{
		moduleSubtask(ids, d, shares[0], domain.PriorityHigh,
			pick(spanish,
				fmt.Sprintf("%s Configuration & Setup", module),
				fmt.Sprintf("Configuración y Setup de %s", module)),
			strings.Join(activities.Config, ", ")),
		moduleSubtask(ids, d, shares[1], domain.PriorityHigh,
			pick(spanish,
				fmt.Sprintf("%s Data Migration", module),
				fmt.Sprintf("Migración de Datos de %s", module)),
			strings.Join(activities.Migration, ", ")),
		moduleSubtask(ids, d, shares[2], domain.PriorityHigh,
			pick(spanish,
				fmt.Sprintf("%s Testing & Validation", module),
				fmt.Sprintf("Testing y Validación de %s", module)),
			strings.Join(activities.Testing, ", ")),
	}
	return d
}

func moduleSubtask(ids *domain.IDGenerator, d *domain.Deliverable, hours int, priority domain.Priority, title, desc string) domain.Subtask {
	return domain.Subtask{
		ID:             ids.Next(),
		ParentID:       d.ID,
		Title:          title,
		Description:    desc,
		AllocatedHours: hours,
		Priority:       priority,
		Phase:          d.Phase,
		Module:         d.Module,
		Type:           d.Type,
	}
}

func customModuleWorkPackage(cm domain.CustomModule, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	title := moduleMilestoneName(cm.Name, spanish)

	desc := cm.Description
	if desc == "" {
		desc = pick(spanish,
			fmt.Sprintf("Development of custom module: %s", cm.Name),
			fmt.Sprintf("Desarrollo del módulo personalizado: %s", cm.Name))
	}

	d := &domain.Deliverable{
		ID:             ids.Next(),
		Title:          title,
		Description:    desc,
		AllocatedHours: cm.Hours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseImplementation,
		Module:         cm.Name,
		Milestone:      title,
		Type:           domain.TaskCustom,
	}

	shares := scheduler.Allocate(cm.Hours, customWeights)
	d.Subtasks = []domain.Subtask{
		moduleSubtask(ids, d, shares[0], domain.PriorityHigh,
			pick(spanish,
				fmt.Sprintf("%s Design & Development", cm.Name),
				fmt.Sprintf("Diseño y Desarrollo de %s", cm.Name)),
			pick(spanish,
				fmt.Sprintf("Technical design and development of %s module", cm.Name),
				fmt.Sprintf("Diseño técnico y desarrollo del módulo %s", cm.Name))),
		moduleSubtask(ids, d, shares[1], domain.PriorityHigh,
			pick(spanish,
				fmt.Sprintf("%s Testing & QA", cm.Name),
				fmt.Sprintf("Testing y QA de %s", cm.Name)),
			pick(spanish,
				fmt.Sprintf("Unit and integration testing for %s", cm.Name),
				fmt.Sprintf("Pruebas unitarias y de integración para %s", cm.Name))),
		moduleSubtask(ids, d, shares[2], domain.PriorityMedium,
			pick(spanish,
				fmt.Sprintf("%s Documentation", cm.Name),
				fmt.Sprintf("Documentación de %s", cm.Name)),
			pick(spanish,
				fmt.Sprintf("Technical and user documentation for %s", cm.Name),
				fmt.Sprintf("Documentación técnica y de usuario para %s", cm.Name))),
	}
	return d
}

// customDevelopment is the template block for unscoped customization work.
// It absorbs whatever implementation budget the named modules left behind,
// with a fallback size when nothing is left.
func customDevelopment(p *domain.Project, budget int, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	hours := budget - p.MigrationHours
	for _, m := range p.Modules {
		hours -= m.Hours
	}
	for _, cm := range p.CustomModules {
		hours -= cm.Hours
	}
	if hours <= 0 {
		hours = customDevFallback
	}

	d := &domain.Deliverable{
		ID: ids.Next(),
		Title: pick(spanish,
			"Custom Developments", "Desarrollos Personalizados"),
		Description: pick(spanish,
			"Design, development and testing of customizations identified during discovery",
			"Diseño, desarrollo y pruebas de personalizaciones identificadas durante el discovery"),
		AllocatedHours: hours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseImplementation,
		Milestone:      adoptionMilestoneName(spanish),
		Type:           domain.TaskCustom,
	}

	shares := scheduler.Allocate(hours, customWeights)
	d.Subtasks = []domain.Subtask{
		moduleSubtask(ids, d, shares[0], domain.PriorityHigh,
			pick(spanish, "Customization design & development", "Diseño y desarrollo de personalizaciones"),
			pick(spanish,
				"Technical design and development of approved customizations",
				"Diseño técnico y desarrollo de las personalizaciones aprobadas")),
		moduleSubtask(ids, d, shares[1], domain.PriorityHigh,
			pick(spanish, "Customization testing & QA", "Testing y QA de personalizaciones"),
			pick(spanish,
				"Unit and integration testing of customizations",
				"Pruebas unitarias y de integración de personalizaciones")),
		moduleSubtask(ids, d, shares[2], domain.PriorityMedium,
			pick(spanish, "Customization documentation", "Documentación de personalizaciones"),
			pick(spanish,
				"Technical and user documentation of customizations",
				"Documentación técnica y de usuario de personalizaciones")),
	}
	return d
}

func dataMigration(hours int, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	d := &domain.Deliverable{
		ID: ids.Next(),
		Title: pick(spanish,
			"Legacy Data Migration", "Migración de Datos Legados"),
		Description: pick(spanish,
			"Extraction, cleanup and import of data from legacy systems",
			"Extracción, limpieza e importación de datos de sistemas legados"),
		AllocatedHours: hours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseImplementation,
		Milestone:      adoptionMilestoneName(spanish),
		Type:           domain.TaskNative,
	}
	d.Subtasks = buildSubtasks(ids, d, spanish, hours,
		[]float64{0.25, 0.50, 0.25},
		[]subtaskSpec{
			{
				"Data extraction and cleanup", "Extracción y limpieza de datos",
				"Extract data from legacy systems and normalize it for import",
				"Extraer datos de sistemas legados y normalizarlos para importación",
				domain.PriorityHigh,
			},
			{
				"Data import", "Importación de datos",
				"Load master data and transactional history into Odoo",
				"Cargar datos maestros e historial transaccional en Odoo",
				domain.PriorityHigh,
			},
			{
				"Migration validation", "Validación de migración",
				"Reconcile imported records against the source systems",
				"Conciliar registros importados contra los sistemas de origen",
				domain.PriorityHigh,
			},
		})
	return d
}

func integrations(list []string, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	joined := strings.Join(list, ", ")

	d := &domain.Deliverable{
		ID: ids.Next(),
		Title: pick(spanish,
			"External System Integrations", "Integraciones con Sistemas Externos"),
		Description: pick(spanish,
			"Development and integration with: "+joined,
			"Desarrollo e integración con: "+joined),
		AllocatedHours: integrationHours,
		Priority:       domain.PriorityHigh,
		Phase:          domain.PhaseImplementation,
		Milestone:      adoptionMilestoneName(spanish),
		Type:           domain.TaskNative,
	}
	d.Subtasks = buildSubtasks(ids, d, spanish, integrationHours,
		[]float64{0.25, 0.50, 0.25},
		[]subtaskSpec{
			{
				"Integration requirements analysis", "Análisis de requerimientos de integración",
				"Document endpoints, data formats and required integration flows",
				"Documentar endpoints, formatos de datos y flujos de integración requeridos",
				domain.PriorityHigh,
			},
			{
				"Connector development", "Desarrollo de conectores",
				"API connector development and data transformation between systems",
				"Desarrollo de conectores API y transformación de datos entre sistemas",
				domain.PriorityHigh,
			},
			{
				"Integration testing", "Pruebas de integración",
				"Validate data sync, error handling and edge cases",
				"Validar sincronización de datos, manejo de errores y casos límite",
				domain.PriorityHigh,
			},
		})
	return d
}

func multiWarehouse(count int, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	transferHours := 2 * count
	if transferHours > 12 {
		transferHours = 12
	}
	total := warehouseConfigHours*count + transferHours

	d := &domain.Deliverable{
		ID: ids.Next(),
		Title: pick(spanish,
			"Multi-Warehouse Configuration", "Configuración Multi-Almacén"),
		Description: pick(spanish,
			fmt.Sprintf("Configuration of %d warehouses with locations, routes, and rules", count),
			fmt.Sprintf("Configuración de %d almacenes con ubicaciones, rutas y reglas", count)),
		AllocatedHours: total,
		Priority:       domain.PriorityMedium,
		Phase:          domain.PhaseImplementation,
		Milestone:      adoptionMilestoneName(spanish),
		Type:           domain.TaskNative,
	}

	for i := 1; i <= count; i++ {
		d.Subtasks = append(d.Subtasks, domain.Subtask{
			ID:       ids.Next(),
			ParentID: d.ID,
			Title: pick(spanish,
				fmt.Sprintf("Warehouse %d configuration", i),
				fmt.Sprintf("Configuración de almacén %d", i)),
			Description: pick(spanish,
				"Locations, zones, routes and reordering rules for this warehouse",
				"Ubicaciones, zonas, rutas y reglas de reabastecimiento de este almacén"),
			AllocatedHours: warehouseConfigHours,
			Priority:       domain.PriorityMedium,
			Phase:          domain.PhaseImplementation,
			Type:           domain.TaskNative,
		})
	}
	d.Subtasks = append(d.Subtasks, domain.Subtask{
		ID:       ids.Next(),
		ParentID: d.ID,
		Title: pick(spanish,
			"Inter-warehouse transfer rules", "Reglas de transferencia entre almacenes"),
		Description: pick(spanish,
			"Resupply routes and transfer flows between warehouses",
			"Rutas de reabastecimiento y flujos de transferencia entre almacenes"),
		AllocatedHours: transferHours,
		Priority:       domain.PriorityMedium,
		Phase:          domain.PhaseImplementation,
		Type:           domain.TaskNative,
	})
	return d
}

// securityDesign is appended once after all module work, sized against the
// phase budget with a 3-hour minimum.
func securityDesign(budget int, spanish bool, ids *domain.IDGenerator) *domain.Deliverable {
	hours := int(float64(budget) * securityBudgetShare)
	if hours < securityMinHours {
		hours = securityMinHours
	}

	return &domain.Deliverable{
		ID: ids.Next(),
		Title: pick(spanish,
			"User Access & Security Design", "Diseño de Accesos y Seguridad"),
		Description: pick(spanish,
			"Access group matrix, record rules and segregation-of-duties review across all modules",
			"Matriz de grupos de acceso, reglas de registro y revisión de segregación de funciones en todos los módulos"),
		AllocatedHours: hours,
		Priority:       domain.PriorityMedium,
		Phase:          domain.PhaseImplementation,
		Milestone:      adoptionMilestoneName(spanish),
		Type:           domain.TaskNative,
	}
}
