package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kaiolohia/roster/pkg/db"
)

// GetEvents retrieves all event records ordered by date
func (d *DB) GetEvents(ctx context.Context) ([]db.Event, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, series_id, title, date, time, location, event_type
		FROM event
		ORDER BY date, time
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// GetEvent retrieves a single event by id
func (d *DB) GetEvent(ctx context.Context, id string) (*db.Event, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, series_id, title, date, time, location, event_type
		FROM event
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("event %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// InsertEvents inserts event records, one per series occurrence, in a
// single transaction so a recurrence expansion is all-or-nothing.
func (d *DB) InsertEvents(ctx context.Context, events []db.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range events {
		_, err := tx.Exec(ctx, `
			INSERT INTO event (id, series_id, title, date, time, location, event_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, e.ID, e.SeriesID, e.Title, e.Date, e.Time, e.Location, e.EventType)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteEvent removes an event; its attendance and seat-assignment rows
// go with it via ON DELETE CASCADE.
func (d *DB) DeleteEvent(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM event WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, db.ErrNotFound)
	}
	return nil
}

func scanEvent(row pgx.Row) (*db.Event, error) {
	var e db.Event
	var date time.Time
	if err := row.Scan(&e.ID, &e.SeriesID, &e.Title, &date, &e.Time, &e.Location, &e.EventType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	e.Date = date.Format("2006-01-02")
	return &e, nil
}
