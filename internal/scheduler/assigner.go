package scheduler

import "github.com/arkode-mx/odooplan/internal/domain"

// Assigner maps tasks to team members deterministically. Given the same
// roster, role map and task ID sequence it always produces the same
// assignment, so regenerating a plan never reshuffles owners.
type Assigner struct {
	Roster  []string
	RoleMap map[string]string
	Manager string
}

// NewAssigner builds an assigner from a project snapshot.
func NewAssigner(p *domain.Project) Assigner {
	return Assigner{Roster: p.Team, RoleMap: p.RoleMap, Manager: p.Manager}
}

// Assign picks the team member for a task. Implementation-phase tasks (or
// tasks tagged with the developer role) prefer the developer pool; Clarity
// and Adoption tasks prefer the consultant pool. Within a pool the member
// is roster-order pool[taskID % len(pool)]. An empty preferred pool falls
// back to the opposite pool, then to the whole roster, then the manager.
func (a Assigner) Assign(taskID int, tags []string, phase domain.Phase) string {
	if len(a.Roster) == 0 {
		return a.Manager
	}

	developers := a.membersWithRole(domain.RoleDeveloper)
	consultants := a.membersWithRole(domain.RoleConsultant)

	preferDeveloper := phase == domain.PhaseImplementation || hasTag(tags, domain.RoleDeveloper)
	if hasTag(tags, domain.RoleConsultant) {
		preferDeveloper = false
	}

	pools := [][]string{consultants, developers}
	if preferDeveloper {
		pools = [][]string{developers, consultants}
	}
	for _, pool := range pools {
		if len(pool) > 0 {
			return pool[taskID%len(pool)]
		}
	}
	return a.Roster[taskID%len(a.Roster)]
}

func (a Assigner) membersWithRole(role string) []string {
	var out []string
	for _, m := range a.Roster {
		if a.RoleMap[m] == role {
			out = append(out, m)
		}
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
