package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a targeted row does not exist.
var ErrNotFound = errors.New("not found")

// ListSites returns all sites ordered by creation time, newest first
func (db *Database) ListSites(ctx context.Context) ([]models.Site, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT site_id, name, owner_name, owner_phone, owner_email, location, maps_link, start_date, status, created_at
		FROM sites
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	sites := make([]models.Site, 0)
	for rows.Next() {
		var s models.Site
		if err := rows.Scan(&s.ID, &s.Name, &s.OwnerName, &s.OwnerPhone, &s.OwnerEmail, &s.Location, &s.MapsLink, &s.StartDate, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}

// GetSite returns one site by ID
func (db *Database) GetSite(ctx context.Context, id string) (*models.Site, error) {
	var s models.Site
	err := db.Pool.QueryRow(ctx, `
		SELECT site_id, name, owner_name, owner_phone, owner_email, location, maps_link, start_date, status, created_at
		FROM sites
		WHERE site_id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.OwnerName, &s.OwnerPhone, &s.OwnerEmail, &s.Location, &s.MapsLink, &s.StartDate, &s.Status, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch site: %w", err)
	}
	return &s, nil
}

// CreateSite inserts a new site with a server-assigned ID
func (db *Database) CreateSite(ctx context.Context, site models.Site) (*models.Site, error) {
	site.ID = uuid.NewString()
	site.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if site.Status == "" {
		site.Status = models.SiteStatusRunning
	}

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO sites (site_id, name, owner_name, owner_phone, owner_email, location, maps_link, start_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		site.ID, site.Name, site.OwnerName, site.OwnerPhone, site.OwnerEmail, site.Location, site.MapsLink, site.StartDate, site.Status, site.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert site: %w", err)
	}
	return &site, nil
}

// UpdateSite replaces every mutable field of an existing site
func (db *Database) UpdateSite(ctx context.Context, id string, site models.Site) (*models.Site, error) {
	site.ID = id
	result, err := db.Pool.Exec(ctx, `
		UPDATE sites
		SET name = $2, owner_name = $3, owner_phone = $4, owner_email = $5, location = $6, maps_link = $7, start_date = $8, status = $9
		WHERE site_id = $1`,
		id, site.Name, site.OwnerName, site.OwnerPhone, site.OwnerEmail, site.Location, site.MapsLink, site.StartDate, site.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update site: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return &site, nil
}

// DeleteSite removes a site together with its daily logs and overheads
func (db *Database) DeleteSite(ctx context.Context, id string) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM sites WHERE site_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM site_daily_logs WHERE site_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete site logs: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM overheads WHERE site_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete site overheads: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
