package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PropertyType classifies a property for area generation purposes.
type PropertyType string

const (
	PropertyHouse     PropertyType = "house"
	PropertyApartment PropertyType = "apartment"
	PropertyCondo     PropertyType = "condo"
	PropertyOther     PropertyType = "other"
)

// Property represents a managed property
type Property struct {
	ID             uuid.UUID    `json:"id"`
	OwnerProfileID uuid.UUID    `json:"owner_profile_id"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	City           string       `json:"city"`
	Type           PropertyType `json:"type"`
	Bedrooms       int          `json:"bedrooms"`
	Bathrooms      float64      `json:"bathrooms"`
	CreatedAt      time.Time    `json:"created_at"`
}

// PropertyCreate represents property onboarding data
type PropertyCreate struct {
	Name      string  `json:"name" validate:"required,max=140"`
	Address   string  `json:"address" validate:"required,max=255"`
	City      string  `json:"city" validate:"required,max=100"`
	Type      string  `json:"type" validate:"required,oneof=house apartment condo other"`
	Bedrooms  int     `json:"bedrooms" validate:"min=0,max=20"`
	Bathrooms float64 `json:"bathrooms" validate:"min=0,max=20"`
}

// PropertyData is the room-count profile a property declares at onboarding.
// It is the sole input to area generation.
type PropertyData struct {
	Bedrooms  int
	Bathrooms float64
	Type      PropertyType
}

// Data returns the property's room-count profile.
func (p *Property) Data() PropertyData {
	return PropertyData{Bedrooms: p.Bedrooms, Bathrooms: p.Bathrooms, Type: p.Type}
}

// PropertySummary is the public view shown on the invite confirmation screen.
type PropertySummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	AreaCount int       `json:"area_count"`
}

// PropertyRepository defines the interface for property storage
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*Property, error)
	ListByOwner(ctx context.Context, ownerProfileID uuid.UUID) ([]Property, error)
	ListJoined(ctx context.Context, tenantProfileID uuid.UUID) ([]Property, error)
	Summary(ctx context.Context, id uuid.UUID) (*PropertySummary, error)
}
