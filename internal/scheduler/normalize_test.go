package scheduler

import (
	"testing"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliverable(id, hours int, subtaskHours ...int) *domain.Deliverable {
	d := &domain.Deliverable{ID: id, AllocatedHours: hours}
	for i, h := range subtaskHours {
		d.Subtasks = append(d.Subtasks, domain.Subtask{ID: id*100 + i, ParentID: id, AllocatedHours: h})
	}
	return d
}

func totalHours(ds []*domain.Deliverable) int {
	sum := 0
	for _, d := range ds {
		sum += d.AllocatedHours
	}
	return sum
}

func TestNormalize_WithinToleranceUntouched(t *testing.T) {
	ds := []*domain.Deliverable{deliverable(1, 51), deliverable(2, 52)} // 103 vs 100: 3% drift
	res := Normalize(ds, 100)

	assert.False(t, res.Applied)
	assert.Equal(t, 1.0, res.Factor)
	assert.Equal(t, 103, totalHours(ds))
}

func TestNormalize_RescalesToExactBudget(t *testing.T) {
	ds := []*domain.Deliverable{
		deliverable(1, 60, 30, 20, 10),
		deliverable(2, 40, 25, 15),
		deliverable(3, 30),
	}
	res := Normalize(ds, 100) // 130 output vs 100 budget: 30% drift

	require.True(t, res.Applied)
	assert.Equal(t, 130, res.BeforeHours)
	assert.Equal(t, 100, res.AfterHours)
	assert.Equal(t, 100, totalHours(ds))
	assert.InDelta(t, 100.0/130.0, res.Factor, 1e-9)

	for _, d := range ds {
		if len(d.Subtasks) > 0 {
			assert.Equal(t, d.AllocatedHours, d.SubtaskHoursSum(),
				"deliverable %d parent/child invariant after rescale", d.ID)
		}
	}
}

func TestNormalize_ScalesUpAsWellAsDown(t *testing.T) {
	ds := []*domain.Deliverable{deliverable(1, 20, 10, 10), deliverable(2, 20)}
	res := Normalize(ds, 80)

	require.True(t, res.Applied)
	assert.Equal(t, 80, totalHours(ds))
	assert.Equal(t, ds[0].AllocatedHours, ds[0].SubtaskHoursSum())
}

func TestNormalize_OneHourFloor(t *testing.T) {
	ds := []*domain.Deliverable{deliverable(1, 100), deliverable(2, 1), deliverable(3, 1)}
	res := Normalize(ds, 50)

	require.True(t, res.Applied)
	assert.Equal(t, 50, totalHours(ds))
	for _, d := range ds {
		assert.GreaterOrEqual(t, d.AllocatedHours, 1)
	}
}

func TestNormalize_ZeroBudgetNoop(t *testing.T) {
	ds := []*domain.Deliverable{deliverable(1, 30)}
	res := Normalize(ds, 0)

	assert.False(t, res.Applied)
	assert.Equal(t, 30, totalHours(ds))
}

func TestNormalize_EmptyPlanNoop(t *testing.T) {
	res := Normalize(nil, 100)
	assert.False(t, res.Applied)
}

func TestReconcileSubtasks_ExactFit(t *testing.T) {
	d := deliverable(1, 17, 10, 5, 2)
	d.AllocatedHours = 12
	ReconcileSubtasks(d)

	assert.Equal(t, 12, d.SubtaskHoursSum())
	assert.Greater(t, d.Subtasks[0].AllocatedHours, d.Subtasks[2].AllocatedHours,
		"relative weights preserved")
}

func TestReconcileSubtasks_NoSubtasksNoop(t *testing.T) {
	d := deliverable(1, 9)
	ReconcileSubtasks(d)
	assert.Equal(t, 9, d.AllocatedHours)
}
