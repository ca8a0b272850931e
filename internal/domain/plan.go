package domain

import "time"

// Subtask is a leaf unit of work under a deliverable. ParentID references
// the owning deliverable's numeric ID; the title-based "Parent Task" field
// the CSV export needs is derived at serialization time only.
type Subtask struct {
	ID             int
	ParentID       int
	Title          string
	Description    string
	AllocatedHours int
	Priority       Priority
	Phase          Phase
	Module         string
	Category       string
	Tags           []string
	Type           TaskType
	Assignee       string
	StartDate      string
	Deadline       string
}

// Deliverable is a billable work package with its subtasks. Its allocated
// hours always equal the sum of its subtasks' hours (when it has any).
type Deliverable struct {
	ID             int
	Title          string
	Description    string
	AllocatedHours int
	Priority       Priority
	Phase          Phase
	Module         string
	Milestone      string
	Category       string
	Tags           []string
	Type           TaskType
	Assignee       string
	StartDate      string
	Deadline       string
	Subtasks       []Subtask
}

// SubtaskHoursSum returns the total hours across subtasks.
func (d *Deliverable) SubtaskHoursSum() int {
	sum := 0
	for _, st := range d.Subtasks {
		sum += st.AllocatedHours
	}
	return sum
}

// Milestone is a named grouping marker for the CSV export. Order fixes the
// canonical export sequence: Clarity milestones first, then one per module,
// then the adoption go-live milestone.
type Milestone struct {
	Name      string
	Phase     Phase
	Order     int
	StartDate string
	Deadline  string
}

// PlanMeta records generation bookkeeping for auditability: the hour
// totals before and after normalization, the scale factor applied (1.0
// when the output already matched the budget), and any non-fatal warnings
// such as timeline overflow.
type PlanMeta struct {
	GeneratedAt    time.Time
	InputHours     int
	RawOutputHours int
	ScaleFactor    float64
	Normalized     bool
	AITasksAdded   int
	Warnings       []string
}

// Plan is the full generated output for one project snapshot.
// Deliverables and milestones are created once per generation; user edits
// afterward mutate hours, dates and the deleted set only.
type Plan struct {
	ID           string
	ProjectName  string
	Deliverables []*Deliverable
	Milestones   []Milestone
	Meta         PlanMeta

	// Soft-deleted task IDs. Deletion never removes entries from
	// Deliverables; filtering happens at read/export time so a delete
	// can always be undone.
	Deleted map[int]bool
}

// Delete marks a task ID as soft-deleted.
func (p *Plan) Delete(id int) {
	if p.Deleted == nil {
		p.Deleted = make(map[int]bool)
	}
	p.Deleted[id] = true
}

// Restore clears a soft delete.
func (p *Plan) Restore(id int) {
	delete(p.Deleted, id)
}

// ActiveDeliverables returns deliverables that are not soft-deleted, each
// with its own soft-deleted subtasks filtered out. The underlying plan is
// not modified.
func (p *Plan) ActiveDeliverables() []*Deliverable {
	out := make([]*Deliverable, 0, len(p.Deliverables))
	for _, d := range p.Deliverables {
		if p.Deleted[d.ID] {
			continue
		}
		if !p.hasDeletedSubtask(d) {
			out = append(out, d)
			continue
		}
		cp := *d
		cp.Subtasks = make([]Subtask, 0, len(d.Subtasks))
		for _, st := range d.Subtasks {
			if !p.Deleted[st.ID] {
				cp.Subtasks = append(cp.Subtasks, st)
			}
		}
		out = append(out, &cp)
	}
	return out
}

func (p *Plan) hasDeletedSubtask(d *Deliverable) bool {
	for _, st := range d.Subtasks {
		if p.Deleted[st.ID] {
			return true
		}
	}
	return false
}

// TotalHours sums allocated hours across active top-level deliverables.
func (p *Plan) TotalHours() int {
	sum := 0
	for _, d := range p.ActiveDeliverables() {
		sum += d.AllocatedHours
	}
	return sum
}

// FindTask locates a deliverable or subtask by ID. Exactly one of the
// returned pointers is non-nil on a hit.
func (p *Plan) FindTask(id int) (*Deliverable, *Subtask) {
	for _, d := range p.Deliverables {
		if d.ID == id {
			return d, nil
		}
		for i := range d.Subtasks {
			if d.Subtasks[i].ID == id {
				return nil, &d.Subtasks[i]
			}
		}
	}
	return nil, nil
}

// Stats summarizes an active plan for display.
type Stats struct {
	DeliverableCount int
	SubtaskCount     int
	TotalTasks       int
	TotalHours       int
	DeletedCount     int
}

// Stats computes counters over the active (non-deleted) plan.
func (p *Plan) Stats() Stats {
	active := p.ActiveDeliverables()
	s := Stats{DeliverableCount: len(active), DeletedCount: len(p.Deleted)}
	for _, d := range active {
		s.SubtaskCount += len(d.Subtasks)
		s.TotalHours += d.AllocatedHours
	}
	s.TotalTasks = s.DeliverableCount + s.SubtaskCount
	return s
}
