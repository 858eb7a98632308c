package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/jackc/pgx/v5"
)

// AreaRepository handles property area data access
type AreaRepository struct {
	db *DB
}

// NewAreaRepository creates a new area repository
func NewAreaRepository(db *DB) *AreaRepository {
	return &AreaRepository{db: db}
}

// CreateBatch persists a generated area set for a property in one round
// trip. IDs are assigned here; the generator leaves them zero.
func (r *AreaRepository) CreateBatch(ctx context.Context, propertyID uuid.UUID, areas []domain.PropertyArea) error {
	if len(areas) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO property_areas (id, property_id, area_key, name, area_type, icon, is_default, condition, inventory_complete, photo_refs, assets, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	for i := range areas {
		area := &areas[i]
		area.ID = uuid.New()
		area.PropertyID = propertyID

		assets, err := json.Marshal(area.Assets)
		if err != nil {
			return fmt.Errorf("failed to marshal assets: %w", err)
		}

		batch.Queue(query,
			area.ID,
			area.PropertyID,
			area.Key,
			area.Name,
			area.Type,
			area.Icon,
			area.IsDefault,
			area.Condition,
			area.InventoryComplete,
			area.PhotoRefs,
			assets,
			area.SortOrder,
		)
	}

	results := r.db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range areas {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert area: %w", err)
		}
	}

	return nil
}

// ListByProperty retrieves a property's areas in generation order
func (r *AreaRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyArea, error) {
	query := `
		SELECT id, property_id, area_key, name, area_type, icon, is_default, condition, inventory_complete, photo_refs, assets, sort_order
		FROM property_areas
		WHERE property_id = $1
		ORDER BY sort_order
	`

	rows, err := r.db.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	var areas []domain.PropertyArea
	for rows.Next() {
		var area domain.PropertyArea
		var assetsJSON []byte

		if err := rows.Scan(
			&area.ID,
			&area.PropertyID,
			&area.Key,
			&area.Name,
			&area.Type,
			&area.Icon,
			&area.IsDefault,
			&area.Condition,
			&area.InventoryComplete,
			&area.PhotoRefs,
			&assetsJSON,
			&area.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("failed to scan area: %w", err)
		}

		if len(assetsJSON) > 0 {
			if err := json.Unmarshal(assetsJSON, &area.Assets); err != nil {
				return nil, fmt.Errorf("failed to unmarshal assets: %w", err)
			}
		}
		if area.PhotoRefs == nil {
			area.PhotoRefs = []string{}
		}
		if area.Assets == nil {
			area.Assets = []domain.AreaAsset{}
		}

		areas = append(areas, area)
	}

	return areas, nil
}
