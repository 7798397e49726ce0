package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/db"
)

// EmailSender sends a single email.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// NotifyStore defines the database operations needed to notify attendees
type NotifyStore interface {
	RosterStore
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetAttendance(ctx context.Context, eventID string) ([]db.Attendance, error)
}

// FailedNotification records one recipient the notifier could not reach.
type FailedNotification struct {
	PaddlerID string
	Email     string
	Error     string
}

// NotifyResult summarizes a notification run.
type NotifyResult struct {
	Sent   int
	Failed []FailedNotification
}

// NotifyAttendees emails every attending paddler their seat for an
// event. Sending is best-effort per recipient: failures are collected
// in the result, not returned as an error, so one bad address never
// blocks the rest of the crew.
func NotifyAttendees(ctx context.Context, store NotifyStore, mailer EmailSender, logger *zap.Logger, eventID string) (*NotifyResult, error) {
	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	roster, err := GetRoster(ctx, store, logger, eventID)
	if err != nil {
		return nil, err
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

	canoeNames := make(map[string]string, len(roster.Canoes))
	for _, c := range roster.Canoes {
		canoeNames[c.ID] = c.Name
	}

	result := &NotifyResult{}
	subject := fmt.Sprintf("%s %s lineup", event.Title, event.Date)

	for _, p := range roster.Paddlers {
		if !attending[p.ID] || p.Email == "" {
			continue
		}

		var body string
		if p.AssignedCanoe != "" {
			body = fmt.Sprintf("Aloha %s,\n\nYou are paddling in %s, seat %d, on %s at %s (%s).\n\nSee you on the water!",
				p.FirstName, canoeNames[p.AssignedCanoe], p.AssignedSeat, event.Date, event.Time, event.Location)
		} else {
			body = fmt.Sprintf("Aloha %s,\n\nYou are marked attending on %s at %s (%s) but have no seat yet. Check with your coach.",
				p.FirstName, event.Date, event.Time, event.Location)
		}

		if err := mailer.SendEmail(p.Email, subject, body); err != nil {
			logger.Warn("Failed to notify paddler",
				zap.String("paddler_id", p.ID),
				zap.String("email", p.Email),
				zap.Error(err))
			result.Failed = append(result.Failed, FailedNotification{
				PaddlerID: p.ID,
				Email:     p.Email,
				Error:     err.Error(),
			})
			continue
		}
		result.Sent++
	}

	logger.Info("Attendee notifications sent",
		zap.String("event_id", eventID),
		zap.Int("sent", result.Sent),
		zap.Int("failed", len(result.Failed)))

	return result, nil
}
