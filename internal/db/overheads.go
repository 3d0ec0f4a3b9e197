package db

import (
	"context"
	"fmt"
	"time"

	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/google/uuid"
)

// ListOverheads returns overhead expenses, newest first. When siteID is
// non-empty the result is scoped to that site.
func (db *Database) ListOverheads(ctx context.Context, siteID string) ([]models.Overhead, error) {
	query := `
		SELECT overhead_id, site_id, site_name, date, category, amount, description, created_at
		FROM overheads`
	args := []interface{}{}
	if siteID != "" {
		query += ` WHERE site_id = $1`
		args = append(args, siteID)
	}
	query += ` ORDER BY date DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overheads: %w", err)
	}
	defer rows.Close()

	overheads := make([]models.Overhead, 0)
	for rows.Next() {
		var o models.Overhead
		if err := rows.Scan(&o.ID, &o.SiteID, &o.SiteName, &o.Date, &o.Category, &o.Amount, &o.Description, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan overhead: %w", err)
		}
		overheads = append(overheads, o)
	}
	return overheads, rows.Err()
}

// CreateOverhead inserts a new overhead expense with a server-assigned ID
func (db *Database) CreateOverhead(ctx context.Context, overhead models.Overhead) (*models.Overhead, error) {
	overhead.ID = uuid.NewString()
	overhead.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO overheads (overhead_id, site_id, site_name, date, category, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		overhead.ID, overhead.SiteID, overhead.SiteName, overhead.Date, overhead.Category, overhead.Amount, overhead.Description, overhead.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert overhead: %w", err)
	}
	return &overhead, nil
}

// UpdateOverhead replaces every mutable field of an existing overhead
func (db *Database) UpdateOverhead(ctx context.Context, id string, overhead models.Overhead) (*models.Overhead, error) {
	overhead.ID = id
	result, err := db.Pool.Exec(ctx, `
		UPDATE overheads
		SET site_id = $2, site_name = $3, date = $4, category = $5, amount = $6, description = $7
		WHERE overhead_id = $1`,
		id, overhead.SiteID, overhead.SiteName, overhead.Date, overhead.Category, overhead.Amount, overhead.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update overhead: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return &overhead, nil
}

// DeleteOverhead removes an overhead expense
func (db *Database) DeleteOverhead(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM overheads WHERE overhead_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overhead: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
