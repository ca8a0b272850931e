package scheduler

import (
	"github.com/arkode-mx/odooplan/internal/domain"
)

// Default phase lengths used when the project has no hard deadline.
const (
	defaultClarityDays    = 28 // 4 weeks
	defaultGoLiveDays     = 14
	defaultWeeksPerMonth  = 4
	minImplementationDays = 28
	clarityCapDays        = 28
	clarityShare          = 0.30
	implementationShare   = 0.60
)

// PhaseWindow is the scheduled calendar window for one phase.
type PhaseWindow struct {
	Enabled bool
	Start   string
	End     string
}

// Timeline is the phase-level schedule a plan's tasks are laid out in.
// With a hard deadline the phases are compressed to fit inside it; without
// one they take their default lengths.
type Timeline struct {
	Start    string
	Deadline string

	// TotalDays is the start-to-deadline span; zero without a deadline.
	TotalDays int

	Clarity        PhaseWindow
	Implementation PhaseWindow
	Adoption       PhaseWindow

	// WeeksPerSupportMonth compresses adoption's monthly support blocks
	// so they stay inside the deadline.
	WeeksPerSupportMonth int

	Warnings []string
}

// GoLive returns the go-live date: implementation end when implementation
// is enabled, otherwise the adoption window start.
func (t Timeline) GoLive() string {
	if t.Implementation.Enabled {
		return t.Implementation.End
	}
	return t.Adoption.Start
}

// ComputeTimeline lays the enabled phases out sequentially from the
// project start date. When the project carries a hard deadline, Clarity is
// capped at min(4 weeks, 30% of the available days) and the remainder
// splits 60/40 between Implementation and Adoption (all of it to whichever
// is enabled alone). A deadline at or before the start date is ignored
// with a warning rather than rejected.
func ComputeTimeline(p *domain.Project, today string) Timeline {
	start := domain.CoalesceStr(p.StartDate, today)
	tl := Timeline{
		Start:                start,
		Deadline:             p.Deadline,
		WeeksPerSupportMonth: defaultWeeksPerMonth,
	}

	totalDays := 0
	if p.Deadline != "" {
		totalDays = DaysBetween(start, p.Deadline)
		if totalDays == 0 {
			tl.Warnings = append(tl.Warnings, "project deadline is not after the start date; scheduling without a timeline constraint")
		}
	}
	tl.TotalDays = totalDays

	clarityDays, implDays, adoptionDays := phaseDays(p, totalDays)

	cursor := start
	if p.ClarityEnabled {
		tl.Clarity = PhaseWindow{Enabled: true, Start: cursor, End: AddDays(cursor, clarityDays)}
		cursor = tl.Clarity.End
	}
	if p.ImplementationEnabled {
		tl.Implementation = PhaseWindow{Enabled: true, Start: cursor, End: AddDays(cursor, implDays)}
		cursor = tl.Implementation.End
	}
	if p.AdoptionEnabled {
		tl.Adoption = PhaseWindow{Enabled: true, Start: cursor, End: AddDays(cursor, adoptionDays)}
	}

	if p.AdoptionEnabled && p.SupportMonths > 0 && totalDays > 0 {
		availableWeeks := adoptionDays / 7
		wpm := availableWeeks / p.SupportMonths
		if wpm < 1 {
			wpm = 1
		}
		if wpm < tl.WeeksPerSupportMonth {
			tl.WeeksPerSupportMonth = wpm
		}
	}

	return tl
}

func phaseDays(p *domain.Project, totalDays int) (clarity, impl, adoption int) {
	if totalDays <= 0 {
		// Unconstrained: default lengths scaled loosely from budgets.
		if p.ClarityEnabled {
			clarity = defaultClarityDays
		}
		if p.ImplementationEnabled {
			impl = 7 * ((p.ImplementationBudget() + 39) / 40)
			if impl < minImplementationDays {
				impl = minImplementationDays
			}
		}
		if p.AdoptionEnabled {
			adoption = defaultGoLiveDays + p.SupportMonths*defaultWeeksPerMonth*7
		}
		return clarity, impl, adoption
	}

	if p.ClarityEnabled {
		clarity = int(clarityShare * float64(totalDays))
		if clarity > clarityCapDays {
			clarity = clarityCapDays
		}
	}
	remaining := totalDays - clarity

	switch {
	case p.ImplementationEnabled && p.AdoptionEnabled:
		impl = int(implementationShare * float64(remaining))
		adoption = remaining - impl
	case p.ImplementationEnabled:
		impl = remaining
	case p.AdoptionEnabled:
		adoption = remaining
	}
	return clarity, impl, adoption
}
