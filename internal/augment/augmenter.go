package augment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/llm"
	"github.com/arkode-mx/odooplan/internal/scheduler"
)

// Reserved share of each phase budget set aside for model-suggested tasks
// when augmentation is on. Template generators receive the complement.
const (
	ClarityReservation        = 0.30
	ImplementationReservation = 0.50
	AdoptionReservation       = 0.50
)

// Reservation returns the AI budget share for a phase.
func Reservation(phase domain.Phase) float64 {
	switch phase {
	case domain.PhaseClarity:
		return ClarityReservation
	case domain.PhaseImplementation:
		return ImplementationReservation
	case domain.PhaseAdoption:
		return AdoptionReservation
	default:
		return 0
	}
}

// ReservedHours computes the whole-hour AI reservation for a phase budget.
func ReservedHours(phase domain.Phase, budget int) int {
	return int(math.Round(float64(budget) * Reservation(phase)))
}

// aiTask mirrors the JSON shape the model is asked to produce. Hours and
// tags use tolerant decoders because models drift from the schema.
type aiTask struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	EstimatedHours flexInt  `json:"estimated_hours"`
	Priority       string   `json:"priority"`
	Category       string   `json:"category"`
	Tags           flexTags `json:"tags"`
}

// flexInt accepts an integer, a float, or a numeric string.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("hours %q is not numeric", s)
	}
	*f = flexInt(math.Round(v))
	return nil
}

// flexTags accepts a JSON array of strings or a single bare string.
type flexTags []string

func (f *flexTags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			*f = []string{single}
		}
		return nil
	}
	// Unusable tag shape is not worth failing the whole task over.
	*f = nil
	return nil
}

// Augmenter asks a language model for project-specific extra tasks.
type Augmenter struct {
	client llm.Client
}

// New creates an Augmenter backed by the given model client.
func New(client llm.Client) *Augmenter {
	return &Augmenter{client: client}
}

// GenerateTasks requests extra tasks for one phase. Any failure, from a
// network error to unparsable output, returns an empty slice and the
// error for the caller to record as a warning; it is never fatal.
func (a *Augmenter) GenerateTasks(ctx context.Context, project *domain.Project, phase domain.Phase) ([]*domain.Deliverable, error) {
	prompt := BuildPrompt(BuildContext(project), phase)

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Phase:  strings.ToLower(string(phase)),
		Prompt: prompt,
	})
	if err != nil {
		return nil, err
	}

	raw, err := llm.ExtractJSONArray[aiTask](resp.Text, nil)
	if err != nil {
		return nil, err
	}

	return buildDeliverables(raw, phase), nil
}

// buildDeliverables converts parsed model tasks into plan deliverables,
// applying defensive defaults. IDs are assigned later by the assembler so
// the model call order cannot influence id sequencing.
func buildDeliverables(raw []aiTask, phase domain.Phase) []*domain.Deliverable {
	out := make([]*domain.Deliverable, 0, len(raw))
	for _, t := range raw {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}

		priority := domain.PriorityMedium
		if domain.ValidPriorities[t.Priority] {
			priority = domain.Priority(t.Priority)
		}

		hours := int(t.EstimatedHours)
		if hours < 1 {
			hours = 1
		}

		tags := append([]string(nil), t.Tags...)
		if len(tags) == 0 {
			tags = []string{string(phase)}
		}

		out = append(out, &domain.Deliverable{
			Title:          name,
			Description:    t.Description,
			AllocatedHours: hours,
			Priority:       priority,
			Phase:          phase,
			Category:       domain.CoalesceStr(t.Category, "AI Suggested"),
			Tags:           tags,
			Type:           domain.TaskAIGenerated,
		})
	}
	return out
}

// RescaleToReservation forces the summed hours of a phase's AI tasks to
// exactly match the reserved budget, keeping every task at 1h or more.
func RescaleToReservation(tasks []*domain.Deliverable, reservedHours int) {
	if len(tasks) == 0 || reservedHours <= 0 {
		return
	}
	weights := make([]float64, len(tasks))
	for i, t := range tasks {
		weights[i] = float64(t.AllocatedHours)
	}
	shares := scheduler.AllocateWithFloor(reservedHours, weights, 1)
	for i, t := range tasks {
		t.AllocatedHours = shares[i]
	}
}
