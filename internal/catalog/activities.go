// Package catalog holds the static per-module activity descriptions used
// to fill configuration, migration and testing task descriptions. Pure
// lookup tables, no logic beyond language selection and the generic
// fallback for unrecognized module names.
package catalog

import "strings"

// Activities lists the activity descriptions for one Odoo module, already
// resolved to a single language.
type Activities struct {
	Config    []string
	Migration []string
	Testing   []string
}

type moduleEntry struct {
	config      []string
	configES    []string
	migration   []string
	migrationES []string
	testing     []string
	testingES   []string
}

var moduleActivities = map[string]moduleEntry{
	"CRM": {
		config:      []string{"Pipeline stages and sales team structure", "Lead scoring rules and automation", "Email integration and templates", "Custom fields and views"},
		configES:    []string{"Etapas de pipeline y estructura de equipo de ventas", "Reglas de scoring de leads y automatización", "Integración de email y plantillas", "Campos personalizados y vistas"},
		migration:   []string{"Import contacts and companies", "Import leads and opportunities", "Historical activities and notes"},
		migrationES: []string{"Importar contactos y empresas", "Importar leads y oportunidades", "Actividades históricas y notas"},
		testing:     []string{"Sales workflow validation", "Lead conversion testing", "Report accuracy verification"},
		testingES:   []string{"Validación del flujo de ventas", "Pruebas de conversión de leads", "Verificación de precisión de reportes"},
	},
	"Sales": {
		config:      []string{"Quotation templates and pricing rules", "Product catalog structure", "Approval workflows", "Discount policies"},
		configES:    []string{"Plantillas de cotización y reglas de precios", "Estructura del catálogo de productos", "Flujos de aprobación", "Políticas de descuento"},
		migration:   []string{"Import product catalog", "Import historical orders", "Customer payment terms"},
		migrationES: []string{"Importar catálogo de productos", "Importar órdenes históricas", "Términos de pago de clientes"},
		testing:     []string{"Order-to-invoice flow", "Pricing rules validation", "Discount and approval testing"},
		testingES:   []string{"Flujo de orden a factura", "Validación de reglas de precios", "Pruebas de descuentos y aprobaciones"},
	},
	"Inventory": {
		config:      []string{"Warehouse locations and zones", "Routes and reordering rules", "Lot/serial number tracking", "Barcode configuration"},
		configES:    []string{"Ubicaciones y zonas de almacén", "Rutas y reglas de reabastecimiento", "Seguimiento de lotes/números de serie", "Configuración de código de barras"},
		migration:   []string{"Import product inventory", "Opening stock balances", "Supplier lead times"},
		migrationES: []string{"Importar inventario de productos", "Saldos de stock inicial", "Tiempos de entrega de proveedores"},
		testing:     []string{"Stock movement validation", "Reordering rule testing", "Inventory adjustment flows"},
		testingES:   []string{"Validación de movimientos de stock", "Pruebas de reglas de reabastecimiento", "Flujos de ajuste de inventario"},
	},
	"Purchase": {
		config:      []string{"Vendor management setup", "RFQ and PO workflows", "Approval matrix", "Purchase agreements"},
		configES:    []string{"Configuración de gestión de proveedores", "Flujos de RFQ y PO", "Matriz de aprobación", "Acuerdos de compra"},
		migration:   []string{"Import vendor master data", "Purchase history", "Open purchase orders"},
		migrationES: []string{"Importar datos maestros de proveedores", "Historial de compras", "Órdenes de compra abiertas"},
		testing:     []string{"Requisition to PO flow", "Three-way matching", "Vendor performance tracking"},
		testingES:   []string{"Flujo de requisición a PO", "Conciliación tripartita", "Seguimiento de desempeño de proveedores"},
	},
	"Accounting": {
		config:      []string{"Chart of accounts setup", "Tax configuration and rules", "Payment terms and methods", "Bank reconciliation setup"},
		configES:    []string{"Configuración del plan de cuentas", "Configuración de impuestos y reglas", "Términos y métodos de pago", "Configuración de conciliación bancaria"},
		migration:   []string{"Opening balances", "Customer/vendor balances", "Fixed asset register"},
		migrationES: []string{"Saldos de apertura", "Saldos de clientes/proveedores", "Registro de activos fijos"},
		testing:     []string{"Invoice to payment flow", "Tax calculation validation", "Financial report accuracy"},
		testingES:   []string{"Flujo de factura a pago", "Validación de cálculo de impuestos", "Precisión de reportes financieros"},
	},
	"Manufacturing": {
		config:      []string{"Bill of Materials structure", "Work centers and routings", "Manufacturing orders workflow", "Quality control points"},
		configES:    []string{"Estructura de Lista de Materiales", "Centros de trabajo y rutas", "Flujo de órdenes de manufactura", "Puntos de control de calidad"},
		migration:   []string{"Import BOMs", "Work center capacity", "WIP inventory"},
		migrationES: []string{"Importar BOMs", "Capacidad de centros de trabajo", "Inventario en proceso"},
		testing:     []string{"MO creation and completion", "Material consumption tracking", "Production scheduling"},
		testingES:   []string{"Creación y completación de MO", "Seguimiento de consumo de materiales", "Programación de producción"},
	},
	"Project": {
		config:      []string{"Project stages and templates", "Task types and workflows", "Time tracking setup", "Billing rules"},
		configES:    []string{"Etapas y plantillas de proyecto", "Tipos de tarea y flujos", "Configuración de seguimiento de tiempo", "Reglas de facturación"},
		migration:   []string{"Import active projects", "Historical timesheets", "Project templates"},
		migrationES: []string{"Importar proyectos activos", "Hojas de tiempo históricas", "Plantillas de proyecto"},
		testing:     []string{"Project lifecycle flow", "Timesheet to billing", "Resource allocation"},
		testingES:   []string{"Flujo del ciclo de vida del proyecto", "Hoja de tiempo a facturación", "Asignación de recursos"},
	},
	"HR": {
		config:      []string{"Employee records structure", "Department hierarchy", "Leave types and policies", "Expense categories"},
		configES:    []string{"Estructura de registros de empleados", "Jerarquía departamental", "Tipos de ausencia y políticas", "Categorías de gastos"},
		migration:   []string{"Import employee data", "Leave balances", "Expense history"},
		migrationES: []string{"Importar datos de empleados", "Saldos de ausencias", "Historial de gastos"},
		testing:     []string{"Leave request workflow", "Expense approval flow", "Payroll integration"},
		testingES:   []string{"Flujo de solicitud de ausencia", "Flujo de aprobación de gastos", "Integración con nómina"},
	},
}

var genericActivities = moduleEntry{
	config:      []string{"Initial module configuration", "Custom fields and views", "Automation rules"},
	configES:    []string{"Configuración inicial del módulo", "Campos y vistas personalizadas", "Reglas de automatización"},
	migration:   []string{"Data preparation", "Import and validation"},
	migrationES: []string{"Preparación de datos", "Importación y validación"},
	testing:     []string{"Workflow testing", "User validation"},
	testingES:   []string{"Pruebas de flujo de trabajo", "Validación con usuarios"},
}

// ModuleActivities returns the activity lists for the named module in the
// requested language. Lookup is case-insensitive; unknown modules get the
// generic fallback entry.
func ModuleActivities(moduleName string, spanish bool) Activities {
	entry := genericActivities
	for key, e := range moduleActivities {
		if strings.EqualFold(key, moduleName) {
			entry = e
			break
		}
	}
	if spanish {
		return Activities{Config: entry.configES, Migration: entry.migrationES, Testing: entry.testingES}
	}
	return Activities{Config: entry.config, Migration: entry.migration, Testing: entry.testing}
}

// KnownModules lists the modules with dedicated catalog entries.
func KnownModules() []string {
	return []string{"CRM", "Sales", "Inventory", "Purchase", "Accounting", "Manufacturing", "Project", "HR"}
}
