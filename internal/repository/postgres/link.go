package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// LinkRepository handles tenant-property link data access. A partial unique
// index on (tenant_profile_id, property_id) where is_active is the only
// concurrency control for acceptance races.
type LinkRepository struct {
	db *DB
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// isUniqueViolation checks for a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Insert attempts to create an active link. Returns InsertAlreadyExists
// with a nil error when the uniqueness constraint fires, so two concurrent
// acceptances for the same pair both succeed with one row materializing.
func (r *LinkRepository) Insert(ctx context.Context, link *domain.TenantPropertyLink) (domain.InsertOutcome, error) {
	query := `
		INSERT INTO tenant_property_links (tenant_profile_id, property_id, is_active, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		link.TenantProfileID,
		link.PropertyID,
		link.IsActive,
		link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.InsertAlreadyExists, nil
		}
		return 0, fmt.Errorf("failed to insert link: %w", err)
	}

	return domain.InsertCreated, nil
}

// HasActiveLink checks whether an active link exists for the pair
func (r *LinkRepository) HasActiveLink(ctx context.Context, tenantProfileID, propertyID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM tenant_property_links
			WHERE tenant_profile_id = $1 AND property_id = $2 AND is_active
		)
	`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, tenantProfileID, propertyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check link: %w", err)
	}

	return exists, nil
}
