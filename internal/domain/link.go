package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TenantPropertyLink is an active association between a tenant profile and a
// property. The database enforces at most one active link per
// (tenant, property) pair; the workflow treats a violation of that
// constraint as "already linked", never as failure.
type TenantPropertyLink struct {
	TenantProfileID uuid.UUID `json:"tenant_profile_id"`
	PropertyID      uuid.UUID `json:"property_id"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// InsertOutcome is the result of a link insertion attempt. A duplicate key
// is reported as InsertAlreadyExists with a nil error so callers branch on
// the type, not on a database error code.
type InsertOutcome int

const (
	InsertCreated InsertOutcome = iota + 1
	InsertAlreadyExists
)

// LinkOutcome tags the terminal state of invite acceptance.
type LinkOutcome string

const (
	LinkCreated       LinkOutcome = "created"
	LinkAlreadyLinked LinkOutcome = "already_linked"
)

// LinkRepository defines the interface for tenant-property link storage
type LinkRepository interface {
	// Insert attempts to create an active link. It returns
	// InsertAlreadyExists, nil when the uniqueness constraint fires.
	Insert(ctx context.Context, link *TenantPropertyLink) (InsertOutcome, error)
	HasActiveLink(ctx context.Context, tenantProfileID, propertyID uuid.UUID) (bool, error)
}
