package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/rs/zerolog/log"
)

// PropertyService handles property onboarding and access
type PropertyService struct {
	propertyRepo domain.PropertyRepository
	areaRepo     domain.AreaRepository
	linkRepo     domain.LinkRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(
	propertyRepo domain.PropertyRepository,
	areaRepo domain.AreaRepository,
	linkRepo domain.LinkRepository,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		areaRepo:     areaRepo,
		linkRepo:     linkRepo,
	}
}

// OnboardResult bundles the created property with its generated areas.
type OnboardResult struct {
	Property *domain.Property      `json:"property"`
	Areas    []domain.PropertyArea `json:"areas"`
}

// Onboard creates a property owned by the caller and expands its declared
// room counts into the persisted area set.
func (s *PropertyService) Onboard(ctx context.Context, ownerProfileID uuid.UUID, input domain.PropertyCreate) (*OnboardResult, error) {
	property := &domain.Property{
		ID:             uuid.New(),
		OwnerProfileID: ownerProfileID,
		Name:           input.Name,
		Address:        input.Address,
		City:           input.City,
		Type:           domain.PropertyType(input.Type),
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		CreatedAt:      time.Now(),
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	areas := GenerateFromProfile(property.Data())
	if err := s.areaRepo.CreateBatch(ctx, property.ID, areas); err != nil {
		return nil, fmt.Errorf("failed to persist areas: %w", err)
	}

	log.Info().
		Str("property_id", property.ID.String()).
		Int("areas", len(areas)).
		Msg("property onboarded")

	return &OnboardResult{Property: property, Areas: areas}, nil
}

// Get returns a property for its owner or a linked tenant.
func (s *PropertyService) Get(ctx context.Context, profileID, propertyID uuid.UUID) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}
	if property.OwnerProfileID != profileID {
		linked, err := s.linkRepo.HasActiveLink(ctx, profileID, propertyID)
		if err != nil {
			return nil, fmt.Errorf("failed to check link: %w", err)
		}
		if !linked {
			return nil, domain.ErrAccessDenied
		}
	}
	return property, nil
}

// PropertyList splits the caller's properties by their relationship to them.
type PropertyList struct {
	Owned  []domain.Property `json:"owned"`
	Joined []domain.Property `json:"joined"`
}

// List returns the properties the caller owns and those they joined as a
// tenant.
func (s *PropertyService) List(ctx context.Context, profileID uuid.UUID) (*PropertyList, error) {
	owned, err := s.propertyRepo.ListByOwner(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned properties: %w", err)
	}
	joined, err := s.propertyRepo.ListJoined(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list joined properties: %w", err)
	}
	return &PropertyList{Owned: owned, Joined: joined}, nil
}
