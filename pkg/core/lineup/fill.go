package lineup

import (
	"github.com/kaiolohia/roster/pkg/core/model"
)

// Assignment is one occupied seat: a (canoe, seat, paddler) fact.
type Assignment struct {
	CanoeID   string
	Seat      int
	PaddlerID string
}

// FillPolicy selects the seat-visiting order of the fill engine.
type FillPolicy string

const (
	// PolicySequential fills each canoe completely (seats 1-6) before
	// moving to the next canoe. This is the canonical default.
	PolicySequential FillPolicy = "sequential"

	// PolicyRoundRobin fills seat 1 of every canoe, then seat 2 of every
	// canoe, and so on, spreading top-ranked paddlers across canoes.
	PolicyRoundRobin FillPolicy = "round-robin"
)

func (p FillPolicy) IsValid() bool {
	return p == PolicySequential || p == PolicyRoundRobin
}

// FillConfig contains the inputs for an optimal fill.
type FillConfig struct {
	// Paddlers is the eligible pool. The caller has already applied
	// attendance gating and removed occupants of locked canoes.
	Paddlers []model.Paddler

	// Canoes are the canoes to fill, in order. Locked canoes must be
	// excluded by the caller.
	Canoes []model.Canoe

	// Priority is the ordered sort criteria. Empty means descending
	// ability only.
	Priority []Criterion

	// Policy selects the seat-visiting order. Zero value means sequential.
	Policy FillPolicy
}

// FillOutcome is the result of an optimal fill.
type FillOutcome struct {
	// Assignments holds one entry per filled seat.
	Assignments []Assignment

	// Unassigned are pool paddlers left over after every seat was filled,
	// still in sorted order.
	Unassigned []model.Paddler
}

// Fill computes a fresh set of seat assignments for the given pool and
// canoes. It is pure: no store access, no randomness, deterministic for
// fixed inputs. Excess paddlers are left in Unassigned without error;
// an empty pool or empty canoe list yields no assignments.
func Fill(cfg FillConfig) FillOutcome {
	sorted := SortPaddlers(cfg.Paddlers, cfg.Priority)

	capacity := len(cfg.Canoes) * model.SeatsPerCanoe
	assignments := make([]Assignment, 0, min(len(sorted), capacity))
	next := 0

	assign := func(canoeID string, seat int) bool {
		if next >= len(sorted) {
			return false
		}
		assignments = append(assignments, Assignment{
			CanoeID:   canoeID,
			Seat:      seat,
			PaddlerID: sorted[next].ID,
		})
		next++
		return true
	}

	switch cfg.Policy {
	case PolicyRoundRobin:
		for seat := 1; seat <= model.SeatsPerCanoe; seat++ {
			for _, canoe := range cfg.Canoes {
				if !assign(canoe.ID, seat) {
					return FillOutcome{Assignments: assignments}
				}
			}
		}
	default:
		for _, canoe := range cfg.Canoes {
			for seat := 1; seat <= model.SeatsPerCanoe; seat++ {
				if !assign(canoe.ID, seat) {
					return FillOutcome{Assignments: assignments}
				}
			}
		}
	}

	return FillOutcome{
		Assignments: assignments,
		Unassigned:  sorted[next:],
	}
}
