package generation

import (
	"fmt"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/scheduler"
)

const (
	clarityTaskMinDays = 3
	implTaskMinDays    = 7
	smallTaskMinDays   = 3
	smallTaskMaxHours  = 6

	// Trailing tasks per phase that advance the scheduling cursor their
	// full duration instead of overlapping the next task.
	clarityFullTail = 1
	implFullTail    = 2
)

// Schedule assigns start and deadline dates to every deliverable and
// subtask inside the phase windows of tl. Adoption's core work is pinned
// to the two weeks before go-live and its support blocks follow go-live
// month by month. Returns non-fatal warnings, e.g. when scheduled work
// overflows a hard deadline.
func Schedule(deliverables []*domain.Deliverable, tl scheduler.Timeline) []string {
	scheduleOverlapping(phaseSlice(deliverables, domain.PhaseClarity),
		tl.Clarity.Start, clarityTaskMinDays, clarityFullTail)
	scheduleOverlapping(phaseSlice(deliverables, domain.PhaseImplementation),
		tl.Implementation.Start, implTaskMinDays, implFullTail)
	scheduleAdoption(phaseSlice(deliverables, domain.PhaseAdoption), tl)

	return overflowWarnings(deliverables, tl.Deadline)
}

func phaseSlice(deliverables []*domain.Deliverable, phase domain.Phase) []*domain.Deliverable {
	var out []*domain.Deliverable
	for _, d := range deliverables {
		if d.Phase == phase {
			out = append(out, d)
		}
	}
	return out
}

// scheduleOverlapping lays phase deliverables out with the half-duration
// overlap heuristic, then lets each deliverable's subtasks share its
// window.
func scheduleOverlapping(ds []*domain.Deliverable, start string, minDays, fullTail int) {
	if len(ds) == 0 || start == "" {
		return
	}

	items := make([]scheduler.SeqItem, len(ds))
	for i, d := range ds {
		md := minDays
		if d.AllocatedHours <= smallTaskMaxHours {
			md = smallTaskMinDays
		}
		items[i] = scheduler.SeqItem{Hours: d.AllocatedHours, MinDays: md}
	}

	windows := scheduler.ScheduleSequential(start, items, fullTail)
	for i, d := range ds {
		setWindow(d, windows[i].Start, windows[i].End)
	}
}

// scheduleAdoption pins training and go-live work into the two weeks
// leading up to go-live, then stacks each support month after it.
func scheduleAdoption(ds []*domain.Deliverable, tl scheduler.Timeline) {
	if len(ds) == 0 || !tl.Adoption.Enabled {
		return
	}

	goLive := tl.GoLive()
	coreStart := scheduler.AddWeeks(goLive, -2)
	if !tl.Implementation.Enabled || coreStart == "" {
		coreStart = tl.Adoption.Start
		goLive = scheduler.AddWeeks(coreStart, 2)
	}

	for _, d := range ds {
		if d.Category != CategorySupport {
			setWindow(d, coreStart, goLive)
			continue
		}

		wpm := tl.WeeksPerSupportMonth
		months := len(d.Subtasks)
		d.StartDate = goLive
		d.Deadline = scheduler.AddWeeks(goLive, months*wpm)
		for i := range d.Subtasks {
			d.Subtasks[i].StartDate = scheduler.AddWeeks(goLive, i*wpm)
			d.Subtasks[i].Deadline = scheduler.AddWeeks(goLive, (i+1)*wpm)
		}
	}
}

func setWindow(d *domain.Deliverable, start, end string) {
	d.StartDate = start
	d.Deadline = end
	for i := range d.Subtasks {
		d.Subtasks[i].StartDate = start
		d.Subtasks[i].Deadline = end
	}
}

// overflowWarnings reports work scheduled past the hard deadline. Work is
// never dropped or silently truncated to fit; the overflow surfaces as
// plan metadata instead.
func overflowWarnings(deliverables []*domain.Deliverable, deadline string) []string {
	if deadline == "" {
		return nil
	}
	overflowing := 0
	last := ""
	for _, d := range deliverables {
		if scheduler.After(d.Deadline, deadline) {
			overflowing++
			if d.Deadline > last {
				last = d.Deadline
			}
		}
	}
	if overflowing == 0 {
		return nil
	}
	return []string{fmt.Sprintf(
		"%d tasks are scheduled past the project deadline %s (latest ends %s)",
		overflowing, deadline, last)}
}
