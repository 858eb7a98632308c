package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/jackc/pgx/v5"
)

// PropertyRepository handles property data access
type PropertyRepository struct {
	db *DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	query := `
		INSERT INTO properties (id, owner_profile_id, name, address, city, property_type, bedrooms, bathrooms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		property.ID,
		property.OwnerProfileID,
		property.Name,
		property.Address,
		property.City,
		property.Type,
		property.Bedrooms,
		property.Bathrooms,
		property.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

const propertyColumns = `id, owner_profile_id, name, address, city, property_type, bedrooms, bathrooms, created_at`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var property domain.Property
	err := row.Scan(
		&property.ID,
		&property.OwnerProfileID,
		&property.Name,
		&property.Address,
		&property.City,
		&property.Type,
		&property.Bedrooms,
		&property.Bathrooms,
		&property.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	property, err := scanProperty(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return property, nil
}

// ListByOwner retrieves all properties owned by a profile
func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerProfileID uuid.UUID) ([]domain.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE owner_profile_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, ownerProfileID)
}

// ListJoined retrieves all properties a profile is linked to as a tenant
func (r *PropertyRepository) ListJoined(ctx context.Context, tenantProfileID uuid.UUID) ([]domain.Property, error) {
	query := `
		SELECT p.id, p.owner_profile_id, p.name, p.address, p.city, p.property_type, p.bedrooms, p.bathrooms, p.created_at
		FROM properties p
		INNER JOIN tenant_property_links l ON p.id = l.property_id
		WHERE l.tenant_profile_id = $1 AND l.is_active
		ORDER BY l.created_at DESC
	`
	return r.list(ctx, query, tenantProfileID)
}

func (r *PropertyRepository) list(ctx context.Context, query string, arg any) ([]domain.Property, error) {
	rows, err := r.db.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, *property)
	}

	return properties, nil
}

// Summary retrieves the public summary shown on the invite preview screen
func (r *PropertyRepository) Summary(ctx context.Context, id uuid.UUID) (*domain.PropertySummary, error) {
	query := `
		SELECT p.id, p.name, p.city, COUNT(a.id)
		FROM properties p
		LEFT JOIN property_areas a ON a.property_id = p.id
		WHERE p.id = $1
		GROUP BY p.id, p.name, p.city
	`

	var summary domain.PropertySummary
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&summary.ID,
		&summary.Name,
		&summary.City,
		&summary.AreaCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property summary: %w", err)
	}

	return &summary, nil
}
