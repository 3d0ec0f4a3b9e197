package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListSiteLogs returns daily logs, newest first. When siteID is non-empty the
// result is scoped to that site.
func (db *Database) ListSiteLogs(ctx context.Context, siteID string) ([]models.SiteDailyLog, error) {
	query := `
		SELECT log_id, site_id, site_name, log_date, materials_used, labours_used, notes,
		       total_material_cost, total_labour_cost, total_cost, created_at
		FROM site_daily_logs`
	args := []interface{}{}
	if siteID != "" {
		query += ` WHERE site_id = $1`
		args = append(args, siteID)
	}
	query += ` ORDER BY log_date DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query site logs: %w", err)
	}
	defer rows.Close()

	logs := make([]models.SiteDailyLog, 0)
	for rows.Next() {
		l, err := scanSiteLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *l)
	}
	return logs, rows.Err()
}

// GetSiteLog returns one daily log by ID
func (db *Database) GetSiteLog(ctx context.Context, id string) (*models.SiteDailyLog, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT log_id, site_id, site_name, log_date, materials_used, labours_used, notes,
		       total_material_cost, total_labour_cost, total_cost, created_at
		FROM site_daily_logs
		WHERE log_id = $1`, id)
	l, err := scanSiteLog(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

// CreateSiteLog recomputes the log's cost totals from its usage lines,
// inserts it, and decrements the central stock for every material used.
// Everything runs in one transaction.
func (db *Database) CreateSiteLog(ctx context.Context, log models.SiteDailyLog) (*models.SiteDailyLog, error) {
	log.ID = uuid.NewString()
	log.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	recomputeLogTotals(&log)

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertSiteLog(ctx, tx, log); err != nil {
		return nil, err
	}
	if err := adjustStock(ctx, tx, log.MaterialsUsed, -1); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &log, nil
}

// UpdateSiteLog restores the stock consumed by the previous version of the
// log, then applies the new version (recomputed totals, fresh stock
// decrement) in the same transaction.
func (db *Database) UpdateSiteLog(ctx context.Context, id string, log models.SiteDailyLog) (*models.SiteDailyLog, error) {
	old, err := db.GetSiteLog(ctx, id)
	if err != nil {
		return nil, err
	}

	log.ID = id
	log.CreatedAt = old.CreatedAt
	recomputeLogTotals(&log)

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := adjustStock(ctx, tx, old.MaterialsUsed, +1); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM site_daily_logs WHERE log_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to replace site log: %w", err)
	}
	if err := insertSiteLog(ctx, tx, log); err != nil {
		return nil, err
	}
	if err := adjustStock(ctx, tx, log.MaterialsUsed, -1); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &log, nil
}

// DeleteSiteLog removes a daily log and restores the stock it consumed
func (db *Database) DeleteSiteLog(ctx context.Context, id string) error {
	old, err := db.GetSiteLog(ctx, id)
	if err != nil {
		return err
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := adjustStock(ctx, tx, old.MaterialsUsed, +1); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM site_daily_logs WHERE log_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete site log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// recomputeLogTotals derives the three cost totals from the usage lines.
// The server owns these fields; values sent by clients are ignored.
func recomputeLogTotals(log *models.SiteDailyLog) {
	var materialCost, labourCost float64
	for _, m := range log.MaterialsUsed {
		materialCost += m.TotalCost
	}
	for _, l := range log.LaboursUsed {
		labourCost += l.TotalCost
	}
	log.TotalMaterialCost = materialCost
	log.TotalLabourCost = labourCost
	log.TotalCost = materialCost + labourCost
}

func insertSiteLog(ctx context.Context, tx pgx.Tx, log models.SiteDailyLog) error {
	materialsJSON, err := json.Marshal(log.MaterialsUsed)
	if err != nil {
		return fmt.Errorf("failed to marshal materials_used: %w", err)
	}
	laboursJSON, err := json.Marshal(log.LaboursUsed)
	if err != nil {
		return fmt.Errorf("failed to marshal labours_used: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO site_daily_logs
			(log_id, site_id, site_name, log_date, materials_used, labours_used, notes,
			 total_material_cost, total_labour_cost, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		log.ID, log.SiteID, log.SiteName, log.LogDate, materialsJSON, laboursJSON, log.Notes,
		log.TotalMaterialCost, log.TotalLabourCost, log.TotalCost, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert site log: %w", err)
	}
	return nil
}

// adjustStock shifts current_stock by sign × quantity for every usage line.
// Missing materials are skipped: a log may reference inventory that has since
// been deleted.
func adjustStock(ctx context.Context, tx pgx.Tx, used []models.MaterialUsed, sign float64) error {
	for _, m := range used {
		_, err := tx.Exec(ctx, `
			UPDATE materials
			SET current_stock = current_stock + $2
			WHERE material_id = $1`,
			m.MaterialID, sign*m.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to adjust stock for material %s: %w", m.MaterialID, err)
		}
	}
	return nil
}

// scanSiteLog reads one log row, decoding the JSONB usage lines.
func scanSiteLog(row pgx.Row) (*models.SiteDailyLog, error) {
	var l models.SiteDailyLog
	var materialsJSON, laboursJSON []byte
	err := row.Scan(&l.ID, &l.SiteID, &l.SiteName, &l.LogDate, &materialsJSON, &laboursJSON, &l.Notes,
		&l.TotalMaterialCost, &l.TotalLabourCost, &l.TotalCost, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(materialsJSON, &l.MaterialsUsed); err != nil {
		return nil, fmt.Errorf("failed to decode materials_used: %w", err)
	}
	if err := json.Unmarshal(laboursJSON, &l.LaboursUsed); err != nil {
		return nil, fmt.Errorf("failed to decode labours_used: %w", err)
	}
	return &l, nil
}
