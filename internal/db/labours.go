package db

import (
	"context"
	"fmt"
	"time"

	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/google/uuid"
)

// ListLabours returns the labour roster ordered by name
func (db *Database) ListLabours(ctx context.Context) ([]models.Labour, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT labour_id, name, rate_per_day, created_at
		FROM labours
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query labours: %w", err)
	}
	defer rows.Close()

	labours := make([]models.Labour, 0)
	for rows.Next() {
		var l models.Labour
		if err := rows.Scan(&l.ID, &l.Name, &l.RatePerDay, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan labour: %w", err)
		}
		labours = append(labours, l)
	}
	return labours, rows.Err()
}

// CreateLabour inserts a new labourer with a server-assigned ID
func (db *Database) CreateLabour(ctx context.Context, labour models.Labour) (*models.Labour, error) {
	labour.ID = uuid.NewString()
	labour.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO labours (labour_id, name, rate_per_day, created_at)
		VALUES ($1, $2, $3, $4)`,
		labour.ID, labour.Name, labour.RatePerDay, labour.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert labour: %w", err)
	}
	return &labour, nil
}

// UpdateLabour replaces every mutable field of an existing labourer
func (db *Database) UpdateLabour(ctx context.Context, id string, labour models.Labour) (*models.Labour, error) {
	labour.ID = id
	result, err := db.Pool.Exec(ctx, `
		UPDATE labours
		SET name = $2, rate_per_day = $3
		WHERE labour_id = $1`,
		id, labour.Name, labour.RatePerDay,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update labour: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return &labour, nil
}

// DeleteLabour removes a labourer from the roster
func (db *Database) DeleteLabour(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM labours WHERE labour_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete labour: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
