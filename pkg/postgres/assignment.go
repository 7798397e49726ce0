package postgres

import (
	"context"
	"fmt"

	"github.com/kaiolohia/roster/pkg/db"
)

// GetAssignments retrieves all seat assignments for one scope. An empty
// eventID selects the whole-roster (global) lineup.
func (d *DB) GetAssignments(ctx context.Context, eventID string) ([]db.SeatAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, COALESCE(event_id, ''), canoe_id, seat, paddler_id
		FROM seat_assignment
		WHERE event_id IS NOT DISTINCT FROM $1
		ORDER BY canoe_id, seat
	`, scopeArg(eventID))
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.SeatAssignment
	for rows.Next() {
		var a db.SeatAssignment
		if err := rows.Scan(&a.ID, &a.EventID, &a.CanoeID, &a.Seat, &a.PaddlerID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// ApplyMove applies the row changes of one drag gesture atomically:
// all unassigns, then all assigns, in a single transaction. A swap is
// therefore never observable half-done.
func (d *DB) ApplyMove(ctx context.Context, eventID string, unassign, assign []db.SeatAssignment) error {
	if len(unassign) == 0 && len(assign) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	scope := scopeArg(eventID)

	for _, a := range unassign {
		// No-op when the tuple no longer matches current state, which
		// makes repeated unassigns idempotent.
		_, err := tx.Exec(ctx, `
			DELETE FROM seat_assignment
			WHERE event_id IS NOT DISTINCT FROM $1 AND canoe_id = $2 AND seat = $3 AND paddler_id = $4
		`, scope, a.CanoeID, a.Seat, a.PaddlerID)
		if err != nil {
			return fmt.Errorf("failed to unassign seat: %w", err)
		}
	}

	for _, a := range assign {
		_, err := tx.Exec(ctx, `
			INSERT INTO seat_assignment (id, event_id, canoe_id, seat, paddler_id)
			VALUES ($1, $2, $3, $4, $5)
		`, a.ID, scope, a.CanoeID, a.Seat, a.PaddlerID)
		if err != nil {
			return fmt.Errorf("failed to assign seat: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ReplaceAssignments clears every assignment in the scope except rows of
// the listed (locked) canoes, then inserts the new set, all in one
// transaction. Locked-canoe rows are left byte-for-byte untouched.
func (d *DB) ReplaceAssignments(ctx context.Context, eventID string, keepCanoeIDs []string, assignments []db.SeatAssignment) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	scope := scopeArg(eventID)

	if len(keepCanoeIDs) > 0 {
		_, err = tx.Exec(ctx, `
			DELETE FROM seat_assignment
			WHERE event_id IS NOT DISTINCT FROM $1 AND canoe_id != ALL($2)
		`, scope, keepCanoeIDs)
	} else {
		_, err = tx.Exec(ctx, `
			DELETE FROM seat_assignment
			WHERE event_id IS NOT DISTINCT FROM $1
		`, scope)
	}
	if err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO seat_assignment (id, event_id, canoe_id, seat, paddler_id)
			VALUES ($1, $2, $3, $4, $5)
		`, a.ID, scope, a.CanoeID, a.Seat, a.PaddlerID)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
