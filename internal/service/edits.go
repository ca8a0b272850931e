package service

import (
	"time"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/scheduler"
)

// SetTaskHours updates a task's allocated hours. Editing a deliverable
// redistributes its subtask hours proportionally; editing a subtask
// updates the parent total so the parent/child invariant holds.
func (s *planService) SetTaskHours(plan *domain.Plan, taskID, hours int) error {
	if hours < 1 {
		return ErrInvalidHours
	}
	d, st := plan.FindTask(taskID)
	switch {
	case d != nil:
		d.AllocatedHours = hours
		scheduler.ReconcileSubtasks(d)
	case st != nil:
		parent, _ := plan.FindTask(st.ParentID)
		st.AllocatedHours = hours
		if parent != nil {
			parent.AllocatedHours = parent.SubtaskHoursSum()
		}
	default:
		return ErrTaskNotFound
	}
	return nil
}

// SetTaskDates updates a task's start and deadline. Either value may be
// empty to leave it unchanged.
func (s *planService) SetTaskDates(plan *domain.Plan, taskID int, start, deadline string) error {
	for _, v := range []string{start, deadline} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return ErrInvalidDate
		}
	}

	d, st := plan.FindTask(taskID)
	switch {
	case d != nil:
		if start != "" {
			d.StartDate = start
		}
		if deadline != "" {
			d.Deadline = deadline
		}
	case st != nil:
		if start != "" {
			st.StartDate = start
		}
		if deadline != "" {
			st.Deadline = deadline
		}
	default:
		return ErrTaskNotFound
	}
	return nil
}

// SetAssignee reassigns a task.
func (s *planService) SetAssignee(plan *domain.Plan, taskID int, assignee string) error {
	d, st := plan.FindTask(taskID)
	switch {
	case d != nil:
		d.Assignee = assignee
	case st != nil:
		st.Assignee = assignee
	default:
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask soft-deletes a task. The task list is never mutated, so the
// delete can always be undone with RestoreTask.
func (s *planService) DeleteTask(plan *domain.Plan, taskID int) error {
	d, st := plan.FindTask(taskID)
	if d == nil && st == nil {
		return ErrTaskNotFound
	}
	plan.Delete(taskID)
	return nil
}

// RestoreTask undoes a soft delete. Restoring an ID that was never
// deleted is a no-op.
func (s *planService) RestoreTask(plan *domain.Plan, taskID int) {
	plan.Restore(taskID)
}
