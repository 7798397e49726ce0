package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/db"
)

// AttendanceStore defines the database operations needed for attendance
// changes
type AttendanceStore interface {
	GetPaddler(ctx context.Context, id string) (*db.Paddler, error)
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetAttendance(ctx context.Context, eventID string) ([]db.Attendance, error)
	SetAttendance(ctx context.Context, paddlerID, eventID string, attending bool) error
}

// SetAttendance records whether a paddler is attending an event. Marking
// a seated paddler absent also clears their seat for that event, as one
// user-visible action (the store sequences attendance first, then the
// seat, inside one transaction). Marking attending never auto-assigns a
// seat.
func SetAttendance(ctx context.Context, store AttendanceStore, logger *zap.Logger, paddlerID, eventID string, attending bool) error {
	if _, err := store.GetPaddler(ctx, paddlerID); err != nil {
		return fmt.Errorf("failed to fetch paddler: %w", err)
	}
	if _, err := store.GetEvent(ctx, eventID); err != nil {
		return fmt.Errorf("failed to fetch event: %w", err)
	}

	if err := store.SetAttendance(ctx, paddlerID, eventID, attending); err != nil {
		return fmt.Errorf("failed to set attendance: %w", err)
	}

	logger.Info("Attendance updated",
		zap.String("paddler_id", paddlerID),
		zap.String("event_id", eventID),
		zap.Bool("attending", attending))

	return nil
}

// ToggleAttendance flips a paddler's attendance for an event. A missing
// row counts as absent, so the first toggle marks the paddler attending.
func ToggleAttendance(ctx context.Context, store AttendanceStore, logger *zap.Logger, paddlerID, eventID string) (bool, error) {
	records, err := store.GetAttendance(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch attendance: %w", err)
	}

	current := false
	for _, r := range records {
		if r.PaddlerID == paddlerID {
			current = r.Attending
			break
		}
	}

	next := !current
	if err := SetAttendance(ctx, store, logger, paddlerID, eventID, next); err != nil {
		return false, err
	}
	return next, nil
}
