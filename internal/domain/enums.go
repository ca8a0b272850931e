package domain

type Phase string

const (
	PhaseClarity        Phase = "Clarity"
	PhaseImplementation Phase = "Implementation"
	PhaseAdoption       Phase = "Adoption"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"High": true, "Medium": true, "Low": true,
}

type TaskType string

const (
	TaskNative      TaskType = "native"
	TaskCustom      TaskType = "custom"
	TaskAIGenerated TaskType = "ai_generated"
)

type Language string

const (
	LangEnglish Language = "English"
	LangSpanish Language = "Spanish"
)

// Team roles recognized by the assigner.
const (
	RoleDeveloper  = "Odoo Developer"
	RoleConsultant = "Process Consultant"
)
