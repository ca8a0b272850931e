package scheduler

import (
	"testing"

	"github.com/arkode-mx/odooplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testAssigner() Assigner {
	return Assigner{
		Roster: []string{"Ana", "Bruno", "Carla", "Diego"},
		RoleMap: map[string]string{
			"Ana":   domain.RoleConsultant,
			"Bruno": domain.RoleDeveloper,
			"Carla": domain.RoleConsultant,
			"Diego": domain.RoleDeveloper,
		},
		Manager: "Marta",
	}
}

func TestAssign_ImplementationPrefersDevelopers(t *testing.T) {
	a := testAssigner()

	// Developer pool is [Bruno, Diego]; id % 2 picks within it.
	assert.Equal(t, "Bruno", a.Assign(4, nil, domain.PhaseImplementation))
	assert.Equal(t, "Diego", a.Assign(5, nil, domain.PhaseImplementation))
}

func TestAssign_ClarityAndAdoptionPreferConsultants(t *testing.T) {
	a := testAssigner()

	assert.Equal(t, "Ana", a.Assign(2, nil, domain.PhaseClarity))
	assert.Equal(t, "Carla", a.Assign(3, nil, domain.PhaseAdoption))
}

func TestAssign_RoleTagOverridesPhase(t *testing.T) {
	a := testAssigner()

	got := a.Assign(0, []string{domain.RoleDeveloper}, domain.PhaseClarity)
	assert.Equal(t, "Bruno", got, "developer tag pulls a clarity task into the dev pool")

	got = a.Assign(0, []string{domain.RoleConsultant}, domain.PhaseImplementation)
	assert.Equal(t, "Ana", got, "consultant tag wins over implementation phase")
}

func TestAssign_FallsBackToOppositePool(t *testing.T) {
	a := Assigner{
		Roster:  []string{"Ana", "Carla"},
		RoleMap: map[string]string{"Ana": domain.RoleConsultant, "Carla": domain.RoleConsultant},
	}

	got := a.Assign(1, nil, domain.PhaseImplementation)
	assert.Equal(t, "Carla", got, "no developers: implementation falls back to consultants")
}

func TestAssign_UntaggedRosterUsesWholeTeam(t *testing.T) {
	a := Assigner{Roster: []string{"X", "Y", "Z"}}

	assert.Equal(t, "Y", a.Assign(4, nil, domain.PhaseClarity))
}

func TestAssign_EmptyRosterFallsBackToManager(t *testing.T) {
	a := Assigner{Manager: "Marta"}
	assert.Equal(t, "Marta", a.Assign(1, nil, domain.PhaseImplementation))

	a = Assigner{}
	assert.Equal(t, "", a.Assign(1, nil, domain.PhaseImplementation))
}

func TestAssign_Deterministic(t *testing.T) {
	a := testAssigner()
	for id := 0; id < 50; id++ {
		first := a.Assign(id, []string{"Odoo Developer"}, domain.PhaseImplementation)
		second := a.Assign(id, []string{"Odoo Developer"}, domain.PhaseImplementation)
		assert.Equal(t, first, second, "id %d", id)
	}
}
