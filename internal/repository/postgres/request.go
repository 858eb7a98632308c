package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/jackc/pgx/v5"
)

// RequestRepository handles maintenance request data access
type RequestRepository struct {
	db *DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *DB) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestColumns = `id, property_id, area_id, reporter_profile_id, title, description, priority, status, vendor_name, vendor_phone, created_at, updated_at`

// Create creates a new maintenance request
func (r *RequestRepository) Create(ctx context.Context, request *domain.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		request.ID,
		request.PropertyID,
		request.AreaID,
		request.ReporterProfileID,
		request.Title,
		request.Description,
		request.Priority,
		request.Status,
		request.VendorName,
		request.VendorPhone,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return nil
}

func scanRequest(row pgx.Row) (*domain.MaintenanceRequest, error) {
	var request domain.MaintenanceRequest
	err := row.Scan(
		&request.ID,
		&request.PropertyID,
		&request.AreaID,
		&request.ReporterProfileID,
		&request.Title,
		&request.Description,
		&request.Priority,
		&request.Status,
		&request.VendorName,
		&request.VendorPhone,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByID retrieves a request by ID
func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM maintenance_requests WHERE id = $1`

	request, err := scanRequest(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return request, nil
}

// ListByProperty retrieves a property's requests, newest first
func (r *RequestRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.MaintenanceRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM maintenance_requests
		WHERE property_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.MaintenanceRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, *request)
	}

	return requests, nil
}

// Update persists status and vendor changes
func (r *RequestRepository) Update(ctx context.Context, request *domain.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests
		SET status = $2, vendor_name = $3, vendor_phone = $4, updated_at = $5
		WHERE id = $1
	`

	_, err := r.db.Pool.Exec(ctx, query,
		request.ID,
		request.Status,
		request.VendorName,
		request.VendorPhone,
		request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}

	return nil
}
