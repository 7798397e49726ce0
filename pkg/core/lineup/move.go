package lineup

import (
	"github.com/kaiolohia/roster/pkg/core/model"
)

// Slot addresses a single seat within a canoe.
type Slot struct {
	CanoeID string
	Seat    int
}

// DropZone categorizes where a drag gesture ended.
type DropZone string

const (
	// DropSeat targets a specific (canoe, seat) slot.
	DropSeat DropZone = "seat"
	// DropStaging is the unassigned pool.
	DropStaging DropZone = "staging"
	// DropTrash deletes the paddler (global scope) or marks them absent
	// (event scope). Handled above the planner.
	DropTrash DropZone = "trash"
	// DropEdit opens the edit form; no assignment change.
	DropEdit DropZone = "edit"
)

// Move describes one completed drag gesture.
type Move struct {
	PaddlerID string
	Zone      DropZone
	Seat      Slot // only meaningful when Zone is DropSeat
}

// Plan is the ordered set of assignment-row changes for a move. Unassigns
// are applied before assigns so a swap never transits through a state
// where two paddlers hold the same seat.
type Plan struct {
	Unassign []Assignment
	Assign   []Assignment
}

// Empty reports whether the move is a no-op.
func (p Plan) Empty() bool {
	return len(p.Unassign) == 0 && len(p.Assign) == 0
}

// PlanMove computes the row changes for a drag gesture against the current
// assignment set of one scope. Locked canoes are a hard barrier on both
// ends of a move; locked or malformed destinations yield an empty plan
// rather than an error, since they can only arise from a stale or
// malformed gesture, not valid user input.
func PlanMove(current []Assignment, move Move, lockedCanoeIDs map[string]bool) Plan {
	src, hasSrc := findByPaddler(current, move.PaddlerID)

	switch move.Zone {
	case DropStaging:
		if !hasSrc {
			return Plan{}
		}
		return Plan{Unassign: []Assignment{src}}

	case DropSeat:
		// Fall through to seat handling below.

	default:
		// Trash and edit drops never change assignments here.
		return Plan{}
	}

	dst := move.Seat
	if !model.ValidSeat(dst.Seat) || dst.CanoeID == "" {
		return Plan{}
	}
	if lockedCanoeIDs[dst.CanoeID] {
		return Plan{}
	}
	if hasSrc {
		if lockedCanoeIDs[src.CanoeID] {
			return Plan{}
		}
		if src.CanoeID == dst.CanoeID && src.Seat == dst.Seat {
			return Plan{}
		}
	}

	occupant, occupied := findBySlot(current, dst)
	if occupied && occupant.PaddlerID == move.PaddlerID {
		return Plan{}
	}

	plan := Plan{}

	if occupied {
		plan.Unassign = append(plan.Unassign, occupant)
		if hasSrc {
			// Swap: the occupant takes the dragged paddler's old slot.
			plan.Unassign = append(plan.Unassign, src)
			plan.Assign = append(plan.Assign, Assignment{
				CanoeID:   src.CanoeID,
				Seat:      src.Seat,
				PaddlerID: occupant.PaddlerID,
			})
		}
		// No old slot: the occupant is evicted to staging.
	} else if hasSrc {
		plan.Unassign = append(plan.Unassign, src)
	}

	plan.Assign = append(plan.Assign, Assignment{
		CanoeID:   dst.CanoeID,
		Seat:      dst.Seat,
		PaddlerID: move.PaddlerID,
	})

	return plan
}

func findByPaddler(assignments []Assignment, paddlerID string) (Assignment, bool) {
	for _, a := range assignments {
		if a.PaddlerID == paddlerID {
			return a, true
		}
	}
	return Assignment{}, false
}

func findBySlot(assignments []Assignment, slot Slot) (Assignment, bool) {
	for _, a := range assignments {
		if a.CanoeID == slot.CanoeID && a.Seat == slot.Seat {
			return a, true
		}
	}
	return Assignment{}, false
}
