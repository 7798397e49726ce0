package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kaiolohia/roster/pkg/db"
)

// GetPaddlers retrieves all paddler records ordered by last then first name
func (d *DB) GetPaddlers(ctx context.Context) ([]db.Paddler, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, gender, type, ability, seat_preference, email
		FROM paddler
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query paddlers: %w", err)
	}
	defer rows.Close()

	var paddlers []db.Paddler
	for rows.Next() {
		var p db.Paddler
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.Type, &p.Ability, &p.SeatPreference, &p.Email); err != nil {
			return nil, fmt.Errorf("failed to scan paddler: %w", err)
		}
		paddlers = append(paddlers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating paddlers: %w", err)
	}

	return paddlers, nil
}

// GetPaddler retrieves a single paddler by id
func (d *DB) GetPaddler(ctx context.Context, id string) (*db.Paddler, error) {
	var p db.Paddler
	err := d.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, gender, type, ability, seat_preference, email
		FROM paddler
		WHERE id = $1
	`, id).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.Type, &p.Ability, &p.SeatPreference, &p.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("paddler %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query paddler: %w", err)
	}
	return &p, nil
}

// InsertPaddler inserts a new paddler record
func (d *DB) InsertPaddler(ctx context.Context, paddler *db.Paddler) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO paddler (id, first_name, last_name, gender, type, ability, seat_preference, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, paddler.ID, paddler.FirstName, paddler.LastName, paddler.Gender, paddler.Type, paddler.Ability, paddler.SeatPreference, paddler.Email)
	if err != nil {
		return fmt.Errorf("failed to insert paddler: %w", err)
	}
	return nil
}

// UpdatePaddler updates an existing paddler record
func (d *DB) UpdatePaddler(ctx context.Context, paddler *db.Paddler) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE paddler
		SET first_name = $2, last_name = $3, gender = $4, type = $5, ability = $6, seat_preference = $7, email = $8
		WHERE id = $1
	`, paddler.ID, paddler.FirstName, paddler.LastName, paddler.Gender, paddler.Type, paddler.Ability, paddler.SeatPreference, paddler.Email)
	if err != nil {
		return fmt.Errorf("failed to update paddler: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paddler %s: %w", paddler.ID, db.ErrNotFound)
	}
	return nil
}

// DeletePaddler removes a paddler and, in the same transaction, every
// seat assignment and attendance row that references them.
func (d *DB) DeletePaddler(ctx context.Context, id string) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM seat_assignment WHERE paddler_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete paddler assignments: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE paddler_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete paddler attendance: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM paddler WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete paddler: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paddler %s: %w", id, db.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
