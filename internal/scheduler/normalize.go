package scheduler

import (
	"math"
	"sort"

	"github.com/arkode-mx/odooplan/internal/domain"
)

// Tolerance before global rescaling kicks in: within 5% of the budget the
// generated hours are left untouched.
const normalizeTolerance = 0.05

// NormalizeResult records what the global normalizer did, for plan
// metadata and auditing.
type NormalizeResult struct {
	Applied     bool
	Factor      float64
	BeforeHours int
	AfterHours  int
}

// Normalize reconciles the plan's total hours against the user's budget.
// When the summed deliverable hours drift more than 5% from
// totalInputHours, every deliverable is rescaled by one global factor
// (floored, minimum one hour) and the rounding shortfall is given back to
// the deliverables with the largest fractional remainders until the total
// matches the budget exactly. Subtask hours are then re-fit to each
// deliverable's new total so the parent/child invariant holds.
func Normalize(deliverables []*domain.Deliverable, totalInputHours int) NormalizeResult {
	before := 0
	for _, d := range deliverables {
		before += d.AllocatedHours
	}
	res := NormalizeResult{Factor: 1.0, BeforeHours: before, AfterHours: before}

	if totalInputHours <= 0 || before == 0 || len(deliverables) == 0 {
		return res
	}
	drift := math.Abs(float64(before-totalInputHours)) / float64(totalInputHours)
	if drift <= normalizeTolerance {
		return res
	}

	factor := float64(totalInputHours) / float64(before)

	type entry struct {
		index     int
		remainder float64
	}
	entries := make([]entry, len(deliverables))
	flooredSum := 0

	for i, d := range deliverables {
		exact := float64(d.AllocatedHours) * factor
		floored := int(math.Floor(exact))
		remainder := exact - math.Floor(exact)
		if floored < 1 {
			floored = 1
			remainder = 0
		}
		d.AllocatedHours = floored
		flooredSum += floored
		entries[i] = entry{index: i, remainder: remainder}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].remainder > entries[b].remainder
	})

	// Top up the shortfall, largest remainders first.
	for i := 0; flooredSum < totalInputHours; i = (i + 1) % len(entries) {
		deliverables[entries[i].index].AllocatedHours++
		flooredSum++
	}
	// The one-hour floor can overshoot tiny budgets; trim the largest
	// deliverables back down without breaking the floor.
	for flooredSum > totalInputHours {
		best := -1
		for i, d := range deliverables {
			if d.AllocatedHours > 1 && (best == -1 || d.AllocatedHours > deliverables[best].AllocatedHours) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		deliverables[best].AllocatedHours--
		flooredSum--
	}

	for _, d := range deliverables {
		ReconcileSubtasks(d)
	}

	res.Applied = true
	res.Factor = factor
	res.AfterHours = flooredSum
	return res
}

// ReconcileSubtasks re-fits a deliverable's subtask hours so they sum to
// exactly the deliverable's allocated hours, preserving their relative
// weights. Deliverables without subtasks are left alone.
func ReconcileSubtasks(d *domain.Deliverable) {
	if len(d.Subtasks) == 0 {
		return
	}
	weights := make([]float64, len(d.Subtasks))
	for i, st := range d.Subtasks {
		weights[i] = float64(st.AllocatedHours)
	}
	shares := Allocate(d.AllocatedHours, weights)
	for i := range d.Subtasks {
		d.Subtasks[i].AllocatedHours = shares[i]
	}
}
