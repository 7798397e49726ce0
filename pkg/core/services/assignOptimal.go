package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/core/lineup"
	"github.com/kaiolohia/roster/pkg/core/model"
	"github.com/kaiolohia/roster/pkg/db"
)

// AssignOptimalParams configures an optimal-fill recompute.
type AssignOptimalParams struct {
	// EventID scopes the recompute; empty means the whole roster, in
	// which case every paddler is eligible. For an event only paddlers
	// marked attending are eligible.
	EventID string
	// Priority is the admin-configured criterion order. Empty falls
	// back to descending ability.
	Priority []lineup.Criterion
	// LockedCanoeIDs are excluded from the recompute; their current
	// occupants keep their seats and leave the eligible pool.
	LockedCanoeIDs []string
	// Policy selects the seat-filling order; zero value is sequential.
	Policy lineup.FillPolicy
}

// AssignOptimalResult reports the recomputed lineup.
type AssignOptimalResult struct {
	Assignments []lineup.Assignment
	// Unassigned are eligible paddlers left without a seat after all
	// unlocked canoes were filled.
	Unassigned []model.Paddler
}

// AssignOptimalStore defines the database operations needed for an
// optimal-fill recompute
type AssignOptimalStore interface {
	GetPaddlers(ctx context.Context) ([]db.Paddler, error)
	GetCanoes(ctx context.Context) ([]db.Canoe, error)
	GetAssignments(ctx context.Context, eventID string) ([]db.SeatAssignment, error)
	GetAttendance(ctx context.Context, eventID string) ([]db.Attendance, error)
	ReplaceAssignments(ctx context.Context, eventID string, keepCanoeIDs []string, assignments []db.SeatAssignment) error
}

// AssignOptimal clears all eligible prior assignments in the scope and
// refills the unlocked canoes by iterating the eligible pool in sorted
// order. The clear and refill run in one transaction; locked canoes and
// their occupants are untouched. The recompute is deterministic for a
// fixed pool, canoe list, and priority.
func AssignOptimal(ctx context.Context, store AssignOptimalStore, logger *zap.Logger, params AssignOptimalParams) (*AssignOptimalResult, error) {
	logger.Info("Computing optimal lineup",
		zap.String("event_id", params.EventID),
		zap.Int("locked_canoes", len(params.LockedCanoeIDs)),
		zap.String("policy", string(params.Policy)))

	paddlers, err := store.GetPaddlers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paddlers: %w", err)
	}

	canoes, err := store.GetCanoes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch canoes: %w", err)
	}

	current, err := store.GetAssignments(ctx, params.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	locked := lockedSet(params.LockedCanoeIDs)

	// Occupants of locked canoes keep their seats and must not be
	// reseated elsewhere.
	lockedPaddlers := make(map[string]bool)
	for _, a := range current {
		if locked[a.CanoeID] {
			lockedPaddlers[a.PaddlerID] = true
		}
	}

	eligible, err := eligiblePool(ctx, store, params.EventID, paddlers)
	if err != nil {
		return nil, err
	}

	pool := make([]model.Paddler, 0, len(eligible))
	for _, p := range eligible {
		if lockedPaddlers[p.ID] {
			continue
		}
		pool = append(pool, toModelPaddler(p))
	}

	openCanoes := make([]model.Canoe, 0, len(canoes))
	for _, c := range canoes {
		if locked[c.ID] {
			continue
		}
		openCanoes = append(openCanoes, toModelCanoe(c))
	}

	outcome := lineup.Fill(lineup.FillConfig{
		Paddlers: pool,
		Canoes:   openCanoes,
		Priority: params.Priority,
		Policy:   params.Policy,
	})

	rows := make([]db.SeatAssignment, len(outcome.Assignments))
	for i, a := range outcome.Assignments {
		rows[i] = db.SeatAssignment{
			ID:        uuid.New().String(),
			EventID:   params.EventID,
			CanoeID:   a.CanoeID,
			Seat:      a.Seat,
			PaddlerID: a.PaddlerID,
		}
	}

	if err := store.ReplaceAssignments(ctx, params.EventID, params.LockedCanoeIDs, rows); err != nil {
		return nil, fmt.Errorf("failed to store lineup: %w", err)
	}

	logger.Info("Optimal lineup stored",
		zap.Int("assigned", len(outcome.Assignments)),
		zap.Int("unassigned", len(outcome.Unassigned)))

	return &AssignOptimalResult{
		Assignments: outcome.Assignments,
		Unassigned:  outcome.Unassigned,
	}, nil
}

// eligiblePool applies attendance gating: the whole roster in global
// scope, only attending paddlers for an event.
func eligiblePool(ctx context.Context, store AssignOptimalStore, eventID string, paddlers []db.Paddler) ([]db.Paddler, error) {
	if eventID == "" {
		return paddlers, nil
	}

	attendance, err := store.GetAttendance(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}

	attending := make(map[string]bool, len(attendance))
	for _, a := range attendance {
		if a.Attending {
			attending[a.PaddlerID] = true
		}
	}

	eligible := make([]db.Paddler, 0, len(paddlers))
	for _, p := range paddlers {
		if attending[p.ID] {
			eligible = append(eligible, p)
		}
	}
	return eligible, nil
}
