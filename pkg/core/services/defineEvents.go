package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/db"
)

// RecurrenceFreq selects how an event series repeats.
type RecurrenceFreq string

const (
	RecurNone    RecurrenceFreq = "none"
	RecurWeekly  RecurrenceFreq = "weekly"
	RecurMonthly RecurrenceFreq = "monthly"
)

// EventInput describes an event, or a recurring series of events, to
// create. The recurrence descriptor is consumed only here: it is
// expanded into concrete dated rows sharing a series id and never
// stored itself.
type EventInput struct {
	Title     string `validate:"required"`
	Date      string `validate:"required,datetime=2006-01-02"`
	Time      string
	Location  string
	EventType string `validate:"required,oneof=practice race other"`

	Freq RecurrenceFreq `validate:"omitempty,oneof=none weekly monthly"`
	// Weekdays are lowercase day names ("monday") for weekly series.
	Weekdays []string
	// MonthDays are days of month (1-31) for monthly series.
	MonthDays []int `validate:"omitempty,dive,min=1,max=31"`
	// Until is the inclusive series end date, required unless Freq is none.
	Until string `validate:"omitempty,datetime=2006-01-02"`
}

// EventsStore defines the database operations needed to create events
type EventsStore interface {
	InsertEvents(ctx context.Context, events []db.Event) error
}

var rruleWeekdays = map[string]rrule.Weekday{
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
	"sunday":    rrule.SU,
}

// DefineEvents expands the input into concrete dated event rows and
// inserts them in one transaction. A non-recurring input yields exactly
// one row; recurring inputs yield one row per occurrence up to and
// including the Until date, all sharing a generated series id.
func DefineEvents(ctx context.Context, store EventsStore, logger *zap.Logger, input EventInput) ([]db.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("event validation failed: %w", err)
	}

	dates, err := expandRecurrence(input)
	if err != nil {
		return nil, err
	}

	seriesID := uuid.New().String()
	events := make([]db.Event, len(dates))
	for i, date := range dates {
		events[i] = db.Event{
			ID:        uuid.New().String(),
			SeriesID:  seriesID,
			Title:     input.Title,
			Date:      date.Format("2006-01-02"),
			Time:      input.Time,
			Location:  input.Location,
			EventType: input.EventType,
		}
	}

	if err := store.InsertEvents(ctx, events); err != nil {
		return nil, fmt.Errorf("failed to insert events: %w", err)
	}

	logger.Info("Events created",
		zap.String("series_id", seriesID),
		zap.String("freq", string(input.Freq)),
		zap.Int("count", len(events)))

	return events, nil
}

func expandRecurrence(input EventInput) ([]time.Time, error) {
	start, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event date: %w", err)
	}

	freq := input.Freq
	if freq == "" || freq == RecurNone {
		return []time.Time{start}, nil
	}

	if input.Until == "" {
		return nil, fmt.Errorf("recurring events require an end date")
	}
	until, err := time.Parse("2006-01-02", input.Until)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}
	if until.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", input.Until, input.Date)
	}

	opt := rrule.ROption{
		Dtstart: start,
		Until:   until,
	}

	switch freq {
	case RecurWeekly:
		opt.Freq = rrule.WEEKLY
		for _, name := range input.Weekdays {
			day, ok := rruleWeekdays[name]
			if !ok {
				return nil, fmt.Errorf("unknown weekday %q", name)
			}
			opt.Byweekday = append(opt.Byweekday, day)
		}
	case RecurMonthly:
		opt.Freq = rrule.MONTHLY
		opt.Bymonthday = input.MonthDays
	default:
		return nil, fmt.Errorf("unknown recurrence frequency %q", freq)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
	}

	dates := rule.All()
	if len(dates) == 0 {
		return nil, fmt.Errorf("recurrence produced no occurrences")
	}
	return dates, nil
}
