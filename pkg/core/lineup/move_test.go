package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanMove_AssignToEmptySeat(t *testing.T) {
	plan := PlanMove(nil, Move{
		PaddlerID: "p1",
		Zone:      DropSeat,
		Seat:      Slot{CanoeID: "c1", Seat: 3},
	}, nil)

	assert.Empty(t, plan.Unassign)
	require.Len(t, plan.Assign, 1)
	assert.Equal(t, Assignment{CanoeID: "c1", Seat: 3, PaddlerID: "p1"}, plan.Assign[0])
}

func TestPlanMove_RelocateClearsOldSlot(t *testing.T) {
	current := []Assignment{{CanoeID: "c1", Seat: 1, PaddlerID: "p1"}}

	plan := PlanMove(current, Move{
		PaddlerID: "p1",
		Zone:      DropSeat,
		Seat:      Slot{CanoeID: "c2", Seat: 4},
	}, nil)

	assert.Equal(t, []Assignment{{CanoeID: "c1", Seat: 1, PaddlerID: "p1"}}, plan.Unassign)
	assert.Equal(t, []Assignment{{CanoeID: "c2", Seat: 4, PaddlerID: "p1"}}, plan.Assign)
}

func TestPlanMove_Swap(t *testing.T) {
	// A in (c1, 2), B in (c2, 5); dragging A onto B's seat swaps them.
	// Neither paddler passes through staging.
	current := []Assignment{
		{CanoeID: "c1", Seat: 2, PaddlerID: "A"},
		{CanoeID: "c2", Seat: 5, PaddlerID: "B"},
	}

	plan := PlanMove(current, Move{
		PaddlerID: "A",
		Zone:      DropSeat,
		Seat:      Slot{CanoeID: "c2", Seat: 5},
	}, nil)

	assert.ElementsMatch(t, []Assignment{
		{CanoeID: "c2", Seat: 5, PaddlerID: "B"},
		{CanoeID: "c1", Seat: 2, PaddlerID: "A"},
	}, plan.Unassign)
	assert.ElementsMatch(t, []Assignment{
		{CanoeID: "c1", Seat: 2, PaddlerID: "B"},
		{CanoeID: "c2", Seat: 5, PaddlerID: "A"},
	}, plan.Assign)
}

func TestPlanMove_EvictOccupantWhenDraggedFromStaging(t *testing.T) {
	current := []Assignment{{CanoeID: "c1", Seat: 1, PaddlerID: "seated"}}

	plan := PlanMove(current, Move{
		PaddlerID: "staged",
		Zone:      DropSeat,
		Seat:      Slot{CanoeID: "c1", Seat: 1},
	}, nil)

	// The occupant has nowhere to go and is evicted to staging.
	assert.Equal(t, []Assignment{{CanoeID: "c1", Seat: 1, PaddlerID: "seated"}}, plan.Unassign)
	assert.Equal(t, []Assignment{{CanoeID: "c1", Seat: 1, PaddlerID: "staged"}}, plan.Assign)
}

func TestPlanMove_DropToStaging(t *testing.T) {
	current := []Assignment{{CanoeID: "c1", Seat: 6, PaddlerID: "p1"}}

	plan := PlanMove(current, Move{PaddlerID: "p1", Zone: DropStaging}, nil)
	assert.Equal(t, []Assignment{{CanoeID: "c1", Seat: 6, PaddlerID: "p1"}}, plan.Unassign)
	assert.Empty(t, plan.Assign)

	// Already staged: no-op.
	plan = PlanMove(nil, Move{PaddlerID: "p1", Zone: DropStaging}, nil)
	assert.True(t, plan.Empty())
}

func TestPlanMove_SameSlotIsNoop(t *testing.T) {
	current := []Assignment{{CanoeID: "c1", Seat: 2, PaddlerID: "p1"}}

	plan := PlanMove(current, Move{
		PaddlerID: "p1",
		Zone:      DropSeat,
		Seat:      Slot{CanoeID: "c1", Seat: 2},
	}, nil)
	assert.True(t, plan.Empty())
}

func TestPlanMove_LockedCanoeRejectsBothEnds(t *testing.T) {
	locked := map[string]bool{"locked": true}
	current := []Assignment{
		{CanoeID: "locked", Seat: 1, PaddlerID: "insider"},
		{CanoeID: "open", Seat: 1, PaddlerID: "outsider"},
	}

	// Destination in a locked canoe.
	plan := PlanMove(current, Move{
		PaddlerID: "outsider",
		Zone:      DropSeat,
		Seat:      Slot{CanoeID: "locked", Seat: 2},
	}, locked)
	assert.True(t, plan.Empty())

	// Source in a locked canoe.
	plan = PlanMove(current, Move{
		PaddlerID: "insider",
		Zone:      DropSeat,
		Seat:      Slot{CanoeID: "open", Seat: 2},
	}, locked)
	assert.True(t, plan.Empty())
}

func TestPlanMove_InvalidSeatIsSilentNoop(t *testing.T) {
	for _, seat := range []int{0, -1, 7, 42} {
		plan := PlanMove(nil, Move{
			PaddlerID: "p1",
			Zone:      DropSeat,
			Seat:      Slot{CanoeID: "c1", Seat: seat},
		}, nil)
		assert.True(t, plan.Empty(), "seat %d should be rejected", seat)
	}

	// Missing canoe id is a malformed destination.
	plan := PlanMove(nil, Move{PaddlerID: "p1", Zone: DropSeat, Seat: Slot{Seat: 3}}, nil)
	assert.True(t, plan.Empty())
}

func TestPlanMove_TrashAndEditChangeNothing(t *testing.T) {
	current := []Assignment{{CanoeID: "c1", Seat: 1, PaddlerID: "p1"}}

	assert.True(t, PlanMove(current, Move{PaddlerID: "p1", Zone: DropTrash}, nil).Empty())
	assert.True(t, PlanMove(current, Move{PaddlerID: "p1", Zone: DropEdit}, nil).Empty())
}
