package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RequestPriority ranks a maintenance request.
type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityNormal RequestPriority = "normal"
	PriorityHigh   RequestPriority = "high"
	PriorityUrgent RequestPriority = "urgent"
)

// RequestStatus is the lifecycle state of a maintenance request.
type RequestStatus string

const (
	StatusOpen       RequestStatus = "open"
	StatusInProgress RequestStatus = "in_progress"
	StatusResolved   RequestStatus = "resolved"
	StatusCancelled  RequestStatus = "cancelled"
)

// CanTransitionTo reports whether a status change is allowed. Resolved and
// cancelled are terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case StatusOpen:
		return next == StatusInProgress || next == StatusResolved || next == StatusCancelled
	case StatusInProgress:
		return next == StatusResolved || next == StatusCancelled
	default:
		return false
	}
}

// MaintenanceRequest is a tenant-reported issue against a property area.
type MaintenanceRequest struct {
	ID                uuid.UUID       `json:"id"`
	PropertyID        uuid.UUID       `json:"property_id"`
	AreaID            *uuid.UUID      `json:"area_id,omitempty"`
	ReporterProfileID uuid.UUID       `json:"reporter_profile_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Priority          RequestPriority `json:"priority"`
	Status            RequestStatus   `json:"status"`
	VendorName        string          `json:"vendor_name,omitempty"`
	VendorPhone       string          `json:"vendor_phone,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// RequestCreate represents maintenance request creation data
type RequestCreate struct {
	AreaID      *uuid.UUID `json:"area_id,omitempty"`
	Title       string     `json:"title" validate:"required,max=140"`
	Description string     `json:"description" validate:"max=2000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

// RequestUpdate represents a status change and/or vendor assignment
type RequestUpdate struct {
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved cancelled"`
	VendorName  *string `json:"vendor_name,omitempty" validate:"omitempty,max=140"`
	VendorPhone *string `json:"vendor_phone,omitempty" validate:"omitempty,max=32"`
}

// RequestRepository defines the interface for maintenance request storage
type RequestRepository interface {
	Create(ctx context.Context, request *MaintenanceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceRequest, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]MaintenanceRequest, error)
	Update(ctx context.Context, request *MaintenanceRequest) error
}
