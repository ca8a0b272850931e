package service

import (
	"context"

	"github.com/arkode-mx/odooplan/internal/contract"
	"github.com/arkode-mx/odooplan/internal/domain"
)

// PlanService generates plans from questionnaire answers and applies
// post-generation edits.
type PlanService interface {
	// Generate validates the request and builds the full plan. Only
	// input validation failures return an error; AI and scheduling
	// problems degrade to warnings in the plan metadata.
	Generate(ctx context.Context, req *contract.PlanRequest) (*domain.Plan, error)

	SetTaskHours(plan *domain.Plan, taskID, hours int) error
	SetTaskDates(plan *domain.Plan, taskID int, start, deadline string) error
	SetAssignee(plan *domain.Plan, taskID int, assignee string) error
	DeleteTask(plan *domain.Plan, taskID int) error
	RestoreTask(plan *domain.Plan, taskID int)

	Stats(plan *domain.Plan) contract.PlanStats
}
