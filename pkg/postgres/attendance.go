package postgres

import (
	"context"
	"fmt"

	"github.com/kaiolohia/roster/pkg/db"
)

// GetAttendance retrieves all attendance rows for an event
func (d *DB) GetAttendance(ctx context.Context, eventID string) ([]db.Attendance, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT paddler_id, event_id, attending
		FROM attendance
		WHERE event_id = $1
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []db.Attendance
	for rows.Next() {
		var a db.Attendance
		if err := rows.Scan(&a.PaddlerID, &a.EventID, &a.Attending); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}

	return records, nil
}

// SetAttendance upserts a paddler's attendance flag for an event. When
// the flag flips to false the paddler's seat assignment for that event
// is removed in the same transaction: attendance row first, then the
// seat, so the cascade is a single user-visible action.
func (d *DB) SetAttendance(ctx context.Context, paddlerID, eventID string, attending bool) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO attendance (paddler_id, event_id, attending)
		VALUES ($1, $2, $3)
		ON CONFLICT (paddler_id, event_id) DO UPDATE SET attending = $3
	`, paddlerID, eventID, attending)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	if !attending {
		_, err = tx.Exec(ctx, `
			DELETE FROM seat_assignment
			WHERE event_id = $1 AND paddler_id = $2
		`, eventID, paddlerID)
		if err != nil {
			return fmt.Errorf("failed to cascade seat unassignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
