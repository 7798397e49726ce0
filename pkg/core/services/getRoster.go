package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/core/model"
	"github.com/kaiolohia/roster/pkg/db"
)

// SeatView is one seat of a canoe in a roster view. PaddlerID is empty
// for an open seat.
type SeatView struct {
	Seat      int
	PaddlerID string
}

// CanoeView is a canoe with its derived status and per-seat occupancy
// for one scope.
type CanoeView struct {
	model.Canoe
	Status model.CanoeStatus
	Seats  []SeatView
}

// PaddlerView is a paddler with their denormalized seat position in the
// requested scope. AssignedCanoe is empty and AssignedSeat zero for a
// staged (unseated) paddler.
type PaddlerView struct {
	model.Paddler
	AssignedCanoe string
	AssignedSeat  int
}

// RosterResult is the full roster read model for one scope.
type RosterResult struct {
	Paddlers []PaddlerView
	Canoes   []CanoeView
}

// RosterStore defines the database operations needed to read a roster
type RosterStore interface {
	GetPaddlers(ctx context.Context) ([]db.Paddler, error)
	GetCanoes(ctx context.Context) ([]db.Canoe, error)
	GetAssignments(ctx context.Context, eventID string) ([]db.SeatAssignment, error)
}

// GetRoster loads paddlers, canoes, and the seat assignments of one scope
// (eventID "" = whole-roster) and builds the denormalized views the UI
// renders. Canoe status is derived: full iff all six seats are occupied.
func GetRoster(ctx context.Context, store RosterStore, logger *zap.Logger, eventID string) (*RosterResult, error) {
	logger.Debug("Loading roster", zap.String("event_id", eventID))

	paddlers, err := store.GetPaddlers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paddlers: %w", err)
	}

	canoes, err := store.GetCanoes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch canoes: %w", err)
	}

	assignments, err := store.GetAssignments(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	seatByPaddler := make(map[string]db.SeatAssignment, len(assignments))
	seatsByCanoe := make(map[string]map[int]string)
	for _, a := range assignments {
		seatByPaddler[a.PaddlerID] = a
		if seatsByCanoe[a.CanoeID] == nil {
			seatsByCanoe[a.CanoeID] = make(map[int]string)
		}
		seatsByCanoe[a.CanoeID][a.Seat] = a.PaddlerID
	}

	result := &RosterResult{
		Paddlers: make([]PaddlerView, 0, len(paddlers)),
		Canoes:   make([]CanoeView, 0, len(canoes)),
	}

	for _, p := range paddlers {
		view := PaddlerView{Paddler: toModelPaddler(p)}
		if a, seated := seatByPaddler[p.ID]; seated {
			view.AssignedCanoe = a.CanoeID
			view.AssignedSeat = a.Seat
		}
		result.Paddlers = append(result.Paddlers, view)
	}

	for _, c := range canoes {
		occupancy := seatsByCanoe[c.ID]
		view := CanoeView{
			Canoe:  toModelCanoe(c),
			Status: model.StatusForCount(len(occupancy)),
			Seats:  make([]SeatView, model.SeatsPerCanoe),
		}
		for seat := 1; seat <= model.SeatsPerCanoe; seat++ {
			view.Seats[seat-1] = SeatView{Seat: seat, PaddlerID: occupancy[seat]}
		}
		result.Canoes = append(result.Canoes, view)
	}

	logger.Debug("Roster loaded",
		zap.Int("paddlers", len(result.Paddlers)),
		zap.Int("canoes", len(result.Canoes)),
		zap.Int("assignments", len(assignments)))

	return result, nil
}
