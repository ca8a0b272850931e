package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arkode-mx/odooplan/internal/augment"
	"github.com/arkode-mx/odooplan/internal/contract"
	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/arkode-mx/odooplan/internal/generation"
	"github.com/arkode-mx/odooplan/internal/llm"
	"github.com/arkode-mx/odooplan/internal/scheduler"
)

type planService struct {
	ai       *augment.Augmenter
	observer UseCaseObserver
	now      func() time.Time
}

// Option configures a PlanService.
type Option func(*planService)

// WithAIClient enables AI task augmentation through the given model
// client. Without it, plans are template-only even when the answers file
// asks for AI customization.
func WithAIClient(c llm.Client) Option {
	return func(s *planService) {
		if c != nil {
			s.ai = augment.New(c)
		}
	}
}

// WithObserver attaches use-case telemetry.
func WithObserver(o UseCaseObserver) Option {
	return func(s *planService) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithClock overrides the time source. Tests use this to make generation
// fully deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *planService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewPlanService creates the plan generation service.
func NewPlanService(opts ...Option) PlanService {
	s := &planService{
		observer: NoopUseCaseObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *planService) Generate(ctx context.Context, req *contract.PlanRequest) (*domain.Plan, error) {
	start := s.now()
	plan, err := s.generate(ctx, req)

	fields := map[string]any{"project": req.ProjectName}
	if plan != nil {
		fields["deliverables"] = len(plan.Deliverables)
		fields["total_hours"] = plan.TotalHours()
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "generate_plan",
		Duration:  s.now().Sub(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	return plan, err
}

// generate runs the pipeline: validate, compute the timeline, generate
// template deliverables per phase, fan out AI calls, merge and rescale,
// normalize to the input budget, schedule, and assign. Everything past
// validation degrades to warnings instead of failing; the user's answers
// must always yield a plan.
func (s *planService) generate(ctx context.Context, req *contract.PlanRequest) (*domain.Plan, error) {
	if errs := contract.Validate(req); len(errs) > 0 {
		return nil, contract.CombineErrors(errs)
	}

	p := contract.ToProject(req)
	today := s.now().Format("2006-01-02")
	tl := scheduler.ComputeTimeline(p, today)
	warnings := append([]string(nil), tl.Warnings...)

	aiActive := p.AIEnabled && s.ai != nil

	budgets := map[domain.Phase]int{
		domain.PhaseClarity:        p.ClarityBudget(),
		domain.PhaseImplementation: p.ImplementationBudget(),
		domain.PhaseAdoption:       p.AdoptionBudget(),
	}
	reserved := map[domain.Phase]int{}
	if aiActive {
		for ph, budget := range budgets {
			reserved[ph] = augment.ReservedHours(ph, budget)
		}
	}

	ids := domain.NewIDGenerator()
	var deliverables []*domain.Deliverable
	if p.ClarityEnabled {
		budget := budgets[domain.PhaseClarity] - reserved[domain.PhaseClarity]
		deliverables = append(deliverables, generation.Clarity(budget, p.IsSpanish(), ids)...)
	}
	if p.ImplementationEnabled {
		budget := budgets[domain.PhaseImplementation] - reserved[domain.PhaseImplementation]
		deliverables = append(deliverables, generation.Implementation(p, budget, ids)...)
	}
	if p.AdoptionEnabled {
		budget := budgets[domain.PhaseAdoption] - reserved[domain.PhaseAdoption]
		deliverables = append(deliverables, generation.Adoption(p, budget, ids)...)
	}

	aiAdded := 0
	if aiActive {
		deliverables, aiAdded, warnings = s.mergeAITasks(ctx, p, deliverables, budgets, reserved, ids, warnings)
	}

	raw := 0
	for _, d := range deliverables {
		raw += d.AllocatedHours
	}
	norm := scheduler.Normalize(deliverables, p.TotalBudgetHours())

	warnings = append(warnings, generation.Schedule(deliverables, tl)...)
	milestones := generation.Milestones(p, deliverables, tl)

	assigner := scheduler.NewAssigner(p)
	for _, d := range deliverables {
		d.Assignee = assigner.Assign(d.ID, d.Tags, d.Phase)
		for i := range d.Subtasks {
			st := &d.Subtasks[i]
			st.Assignee = assigner.Assign(st.ID, st.Tags, st.Phase)
		}
	}

	return &domain.Plan{
		ID:           uuid.NewString(),
		ProjectName:  p.Name,
		Deliverables: deliverables,
		Milestones:   milestones,
		Meta: domain.PlanMeta{
			GeneratedAt:    s.now(),
			InputHours:     p.TotalBudgetHours(),
			RawOutputHours: raw,
			ScaleFactor:    norm.Factor,
			Normalized:     norm.Applied,
			AITasksAdded:   aiAdded,
			Warnings:       warnings,
		},
		Deleted: make(map[int]bool),
	}, nil
}

// mergeAITasks fans out one model call per reserved phase, waits for all
// of them, then merges the results in fixed phase order so task IDs do
// not depend on network timing. A failed or empty phase gets its template
// deliverables scaled back up to the full phase budget; no hours are ever
// lost to a reservation that went unfilled.
func (s *planService) mergeAITasks(ctx context.Context, p *domain.Project,
	deliverables []*domain.Deliverable, budgets, reserved map[domain.Phase]int,
	ids *domain.IDGenerator, warnings []string) ([]*domain.Deliverable, int, []string) {

	phases := []domain.Phase{domain.PhaseClarity, domain.PhaseImplementation, domain.PhaseAdoption}

	type aiResult struct {
		tasks []*domain.Deliverable
		err   error
	}
	results := make([]aiResult, len(phases))

	var wg sync.WaitGroup
	for i, ph := range phases {
		if reserved[ph] <= 0 {
			continue
		}
		wg.Add(1)
		go func(i int, ph domain.Phase) {
			defer wg.Done()
			tasks, err := s.ai.GenerateTasks(ctx, p, ph)
			results[i] = aiResult{tasks: tasks, err: err}
		}(i, ph)
	}
	wg.Wait()

	added := 0
	for i, ph := range phases {
		if reserved[ph] <= 0 {
			continue
		}
		res := results[i]
		if res.err != nil || len(res.tasks) == 0 {
			if res.err != nil {
				warnings = append(warnings, fmt.Sprintf(
					"AI tasks for %s phase unavailable (%v); template tasks cover the full budget", ph, res.err))
			}
			restorePhaseBudget(deliverables, ph, budgets[ph])
			continue
		}

		for _, t := range res.tasks {
			t.ID = ids.Next()
		}
		augment.RescaleToReservation(res.tasks, reserved[ph])
		deliverables = append(deliverables, res.tasks...)
		added += len(res.tasks)
	}
	return deliverables, added, warnings
}

// restorePhaseBudget scales a phase's template deliverables up to the full
// phase budget after an unfilled AI reservation.
func restorePhaseBudget(deliverables []*domain.Deliverable, phase domain.Phase, budget int) {
	var ds []*domain.Deliverable
	current := 0
	for _, d := range deliverables {
		if d.Phase == phase {
			ds = append(ds, d)
			current += d.AllocatedHours
		}
	}
	if len(ds) == 0 || current == 0 || current == budget {
		return
	}

	weights := make([]float64, len(ds))
	for i, d := range ds {
		weights[i] = float64(d.AllocatedHours)
	}
	shares := scheduler.Allocate(budget, weights)
	for i, d := range ds {
		d.AllocatedHours = shares[i]
		scheduler.ReconcileSubtasks(d)
	}
}

func (s *planService) Stats(plan *domain.Plan) contract.PlanStats {
	ps := plan.Stats()
	return contract.PlanStats{
		Deliverables: ps.DeliverableCount,
		Subtasks:     ps.SubtaskCount,
		TotalTasks:   ps.TotalTasks,
		TotalHours:   ps.TotalHours,
		InputHours:   plan.Meta.InputHours,
		ScaleFactor:  plan.Meta.ScaleFactor,
		AITasksAdded: plan.Meta.AITasksAdded,
		Warnings:     plan.Meta.Warnings,
	}
}
