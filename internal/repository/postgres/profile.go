package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ProfileRepository handles profile data access
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, external_id, email, display_name, phone_encrypted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		profile.ID,
		profile.ExternalID,
		profile.Email,
		profile.DisplayName,
		profile.PhoneCiphertext,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile by internal ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByExternalID retrieves a profile by the identity provider's user ID
func (r *ProfileRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Profile, error) {
	return r.get(ctx, `WHERE external_id = $1`, externalID)
}

func (r *ProfileRepository) get(ctx context.Context, where string, arg any) (*domain.Profile, error) {
	query := `
		SELECT id, external_id, email, display_name, phone_encrypted, created_at, updated_at
		FROM profiles
	` + where

	var profile domain.Profile
	err := r.db.Pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.ExternalID,
		&profile.Email,
		&profile.DisplayName,
		&profile.PhoneCiphertext,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// Update updates display name and/or phone ciphertext
func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, displayName *string, phoneCiphertext []byte) error {
	query := `
		UPDATE profiles
		SET display_name = COALESCE($2, display_name),
		    phone_encrypted = COALESCE($3, phone_encrypted),
		    updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Pool.Exec(ctx, query, id, displayName, phoneCiphertext)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}
