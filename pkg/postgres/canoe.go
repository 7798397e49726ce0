package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kaiolohia/roster/pkg/db"
)

// GetCanoes retrieves all canoe records ordered by name
func (d *DB) GetCanoes(ctx context.Context) ([]db.Canoe, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, designation
		FROM canoe
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query canoes: %w", err)
	}
	defer rows.Close()

	var canoes []db.Canoe
	for rows.Next() {
		var c db.Canoe
		if err := rows.Scan(&c.ID, &c.Name, &c.Designation); err != nil {
			return nil, fmt.Errorf("failed to scan canoe: %w", err)
		}
		canoes = append(canoes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating canoes: %w", err)
	}

	return canoes, nil
}

// GetCanoe retrieves a single canoe by id
func (d *DB) GetCanoe(ctx context.Context, id string) (*db.Canoe, error) {
	var c db.Canoe
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, designation FROM canoe WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Designation)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("canoe %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query canoe: %w", err)
	}
	return &c, nil
}

// InsertCanoe inserts a new canoe record
func (d *DB) InsertCanoe(ctx context.Context, canoe *db.Canoe) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO canoe (id, name, designation)
		VALUES ($1, $2, $3)
	`, canoe.ID, canoe.Name, canoe.Designation)
	if err != nil {
		return fmt.Errorf("failed to insert canoe: %w", err)
	}
	return nil
}

// DeleteCanoe removes a canoe. It refuses to delete a canoe that still
// has occupants in any scope.
func (d *DB) DeleteCanoe(ctx context.Context, id string) error {
	var occupied int
	err := d.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM seat_assignment WHERE canoe_id = $1
	`, id).Scan(&occupied)
	if err != nil {
		return fmt.Errorf("failed to check canoe occupancy: %w", err)
	}
	if occupied > 0 {
		return fmt.Errorf("canoe %s has %d seated paddlers", id, occupied)
	}

	tag, err := d.pool.Exec(ctx, `DELETE FROM canoe WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete canoe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("canoe %s: %w", id, db.ErrNotFound)
	}
	return nil
}
