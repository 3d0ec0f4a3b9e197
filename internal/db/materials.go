package db

import (
	"context"
	"fmt"
	"time"

	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/google/uuid"
)

// ListMaterials returns the full central inventory ordered by name
func (db *Database) ListMaterials(ctx context.Context) ([]models.Material, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT material_id, name, unit, rate_per_unit, current_stock, created_at
		FROM materials
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	materials := make([]models.Material, 0)
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.RatePerUnit, &m.CurrentStock, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// CreateMaterial inserts a new material with a server-assigned ID
func (db *Database) CreateMaterial(ctx context.Context, material models.Material) (*models.Material, error) {
	material.ID = uuid.NewString()
	material.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO materials (material_id, name, unit, rate_per_unit, current_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		material.ID, material.Name, material.Unit, material.RatePerUnit, material.CurrentStock, material.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert material: %w", err)
	}
	return &material, nil
}

// UpdateMaterial replaces every mutable field of an existing material
func (db *Database) UpdateMaterial(ctx context.Context, id string, material models.Material) (*models.Material, error) {
	material.ID = id
	result, err := db.Pool.Exec(ctx, `
		UPDATE materials
		SET name = $2, unit = $3, rate_per_unit = $4, current_stock = $5
		WHERE material_id = $1`,
		id, material.Name, material.Unit, material.RatePerUnit, material.CurrentStock,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return &material, nil
}

// DeleteMaterial removes a material from the inventory
func (db *Database) DeleteMaterial(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM materials WHERE material_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
