package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/core/lineup"
	"github.com/kaiolohia/roster/pkg/db"
)

// MoveRequest describes one completed drag gesture from the UI.
type MoveRequest struct {
	// EventID scopes the move; empty means the whole-roster lineup.
	EventID   string
	PaddlerID string
	Zone      lineup.DropZone
	// CanoeID and Seat identify the destination slot when Zone is
	// lineup.DropSeat.
	CanoeID string
	Seat    int
	// LockedCanoeIDs are canoes the admin has locked; moves touching
	// them are silently rejected.
	LockedCanoeIDs []string
}

// MoveResult reports what a move did.
type MoveResult struct {
	// Applied is false when the gesture was a no-op (identical slot,
	// locked canoe, malformed destination, already staged).
	Applied bool
	// Unassigned and Assigned mirror the executed plan.
	Unassigned []lineup.Assignment
	Assigned   []lineup.Assignment
	// Paddler is set for edit drops: the record to pre-populate the
	// edit form with.
	Paddler *db.Paddler
}

// MoveStore defines the database operations needed to process a move
type MoveStore interface {
	GetPaddler(ctx context.Context, id string) (*db.Paddler, error)
	GetAssignments(ctx context.Context, eventID string) ([]db.SeatAssignment, error)
	ApplyMove(ctx context.Context, eventID string, unassign, assign []db.SeatAssignment) error
	DeletePaddler(ctx context.Context, id string) error
	SetAttendance(ctx context.Context, paddlerID, eventID string, attending bool) error
}

// HandleMove processes a single drag-and-drop gesture: assign to an empty
// seat, unassign to staging, swap two occupants, delete/mark-absent, or
// open the edit form. A referenced paddler that does not exist is a hard
// failure; locked canoes and malformed destinations are silent no-ops.
// All row changes of one gesture are applied in a single transaction.
func HandleMove(ctx context.Context, store MoveStore, logger *zap.Logger, req MoveRequest) (*MoveResult, error) {
	logger.Debug("Handling move",
		zap.String("event_id", req.EventID),
		zap.String("paddler_id", req.PaddlerID),
		zap.String("zone", string(req.Zone)),
		zap.String("canoe_id", req.CanoeID),
		zap.Int("seat", req.Seat))

	paddler, err := store.GetPaddler(ctx, req.PaddlerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dragged paddler: %w", err)
	}

	switch req.Zone {
	case lineup.DropEdit:
		// Presentation-only: no assignment state changes.
		return &MoveResult{Paddler: paddler}, nil

	case lineup.DropTrash:
		return handleTrashDrop(ctx, store, logger, req, paddler)
	}

	rows, err := store.GetAssignments(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	plan := lineup.PlanMove(toLineupAssignments(rows), lineup.Move{
		PaddlerID: req.PaddlerID,
		Zone:      req.Zone,
		Seat:      lineup.Slot{CanoeID: req.CanoeID, Seat: req.Seat},
	}, lockedSet(req.LockedCanoeIDs))

	if plan.Empty() {
		logger.Debug("Move is a no-op")
		return &MoveResult{}, nil
	}

	unassign := make([]db.SeatAssignment, len(plan.Unassign))
	for i, a := range plan.Unassign {
		unassign[i] = db.SeatAssignment{
			EventID:   req.EventID,
			CanoeID:   a.CanoeID,
			Seat:      a.Seat,
			PaddlerID: a.PaddlerID,
		}
	}
	assign := make([]db.SeatAssignment, len(plan.Assign))
	for i, a := range plan.Assign {
		assign[i] = db.SeatAssignment{
			ID:        uuid.New().String(),
			EventID:   req.EventID,
			CanoeID:   a.CanoeID,
			Seat:      a.Seat,
			PaddlerID: a.PaddlerID,
		}
	}

	if err := store.ApplyMove(ctx, req.EventID, unassign, assign); err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	logger.Info("Move applied",
		zap.String("paddler_id", req.PaddlerID),
		zap.Int("unassigned", len(plan.Unassign)),
		zap.Int("assigned", len(plan.Assign)))

	return &MoveResult{
		Applied:    true,
		Unassigned: plan.Unassign,
		Assigned:   plan.Assign,
	}, nil
}

// handleTrashDrop implements the delete/mark-absent drop target: in the
// whole-roster scope the paddler record is hard-deleted (seat eviction
// cascades in the store); in an event scope the paddler is marked absent
// for that event, which cascades into seat unassignment.
func handleTrashDrop(ctx context.Context, store MoveStore, logger *zap.Logger, req MoveRequest, paddler *db.Paddler) (*MoveResult, error) {
	if req.EventID == "" {
		if err := store.DeletePaddler(ctx, paddler.ID); err != nil {
			return nil, fmt.Errorf("failed to delete paddler: %w", err)
		}
		logger.Info("Paddler deleted via trash drop", zap.String("paddler_id", paddler.ID))
		return &MoveResult{Applied: true}, nil
	}

	if err := store.SetAttendance(ctx, paddler.ID, req.EventID, false); err != nil {
		return nil, fmt.Errorf("failed to mark paddler absent: %w", err)
	}
	logger.Info("Paddler marked absent via trash drop",
		zap.String("paddler_id", paddler.ID),
		zap.String("event_id", req.EventID))
	return &MoveResult{Applied: true}, nil
}
