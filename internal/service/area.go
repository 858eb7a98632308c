package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/rs/zerolog/log"
)

// Area generation expands a property's declared room counts into concrete,
// named areas. Both entry points are pure: no I/O, deterministic output for
// identical input.
//
// Naming policy for bedrooms and bathrooms: a single room gets the bare
// label ("Bedroom"), the first of several is "Master <label>", and the rest
// are numbered from 2.

// GenerateFromProfile expands a full property profile into its area set:
// kitchen and living room first (always, marked default), then bedrooms,
// then whole bathrooms plus at most one half bathroom, then the
// type-dependent optional set (marked non-default).
func GenerateFromProfile(data domain.PropertyData) []domain.PropertyArea {
	areas := []domain.PropertyArea{
		newArea("kitchen", "Kitchen", domain.AreaKitchen, true),
		newArea("living_room", "Living Room", domain.AreaLivingRoom, true),
	}

	areas = append(areas, bedroomAreas(data.Bedrooms)...)
	areas = append(areas, bathroomAreas(data.Bathrooms)...)
	areas = append(areas, optionalAreas(data.Type)...)

	for i := range areas {
		areas[i].SortOrder = i
	}
	return areas
}

// GenerateFromCounts expands bedrooms/bathrooms from data (nil means zero
// counts) followed by one area per unit of each entry in counts, in the
// given order. Unlike GenerateFromProfile it emits no hardcoded essential
// areas; the custom flow's caller decides which essentials it already has.
func GenerateFromCounts(data *domain.PropertyData, counts []domain.AreaCount) []domain.PropertyArea {
	var areas []domain.PropertyArea
	if data != nil {
		areas = append(areas, bedroomAreas(data.Bedrooms)...)
		areas = append(areas, bathroomAreas(data.Bathrooms)...)
	}

	for _, c := range counts {
		for i := 0; i < c.Count; i++ {
			key := fmt.Sprintf("%s%d", c.Type, i+1)
			areas = append(areas, newArea(key, countName(c.Type, i, c.Count), c.Type, false))
		}
	}

	for i := range areas {
		areas[i].SortOrder = i
	}
	return areas
}

func newArea(key, name string, typ domain.AreaType, isDefault bool) domain.PropertyArea {
	return domain.PropertyArea{
		Key:       key,
		Name:      name,
		Type:      typ,
		Icon:      typ.Icon(),
		IsDefault: isDefault,
		Condition: domain.ConditionGood,
		PhotoRefs: []string{},
		Assets:    []domain.AreaAsset{},
	}
}

func bedroomAreas(count int) []domain.PropertyArea {
	areas := make([]domain.PropertyArea, 0, count)
	for i := 0; i < count; i++ {
		key := fmt.Sprintf("bedroom%d", i+1)
		areas = append(areas, newArea(key, ordinalName("Bedroom", i, count), domain.AreaBedroom, true))
	}
	return areas
}

func bathroomAreas(count float64) []domain.PropertyArea {
	whole := int(math.Floor(count))
	areas := make([]domain.PropertyArea, 0, whole+1)
	for i := 0; i < whole; i++ {
		key := fmt.Sprintf("bathroom%d", i+1)
		areas = append(areas, newArea(key, ordinalName("Bathroom", i, whole), domain.AreaBathroom, true))
	}
	// A fractional count means exactly one half bath, regardless of how
	// fractional it is.
	if count > float64(whole) {
		areas = append(areas, newArea("half-bathroom", "Half Bathroom", domain.AreaBathroom, true))
	}
	return areas
}

// ordinalName applies the singular/"Master"/numbered policy: "Bedroom" for a
// single room, "Master Bedroom" then "Bedroom 2".."Bedroom n" otherwise.
func ordinalName(label string, index, total int) string {
	if total == 1 {
		return label
	}
	if index == 0 {
		return "Master " + label
	}
	return fmt.Sprintf("%s %d", label, index+1)
}

func optionalAreas(typ domain.PropertyType) []domain.PropertyArea {
	if typ == domain.PropertyApartment || typ == domain.PropertyCondo {
		return []domain.PropertyArea{
			newArea("balcony", "Balcony/Patio", domain.AreaOutdoor, false),
			newArea("laundry", "Laundry Room", domain.AreaLaundry, false),
			newArea("storage", "Storage Closet", domain.AreaOther, false),
		}
	}
	return []domain.PropertyArea{
		newArea("garage", "Garage", domain.AreaGarage, false),
		newArea("yard", "Yard", domain.AreaOutdoor, false),
		newArea("basement", "Basement", domain.AreaOther, false),
		newArea("laundry", "Laundry Room", domain.AreaLaundry, false),
	}
}

// countName names the i-th of total areas of a type in the custom flow.
// Types with a fixed label use it; unrecognized types fall back to "Room".
// A single area gets the bare label, multiples are numbered from 1 to match
// their keys.
func countName(typ domain.AreaType, index, total int) string {
	label, ok := countLabels[typ]
	if !ok {
		label = "Room"
	}
	if total == 1 {
		return label
	}
	return fmt.Sprintf("%s %d", label, index+1)
}

var countLabels = map[domain.AreaType]string{
	domain.AreaKitchen:    "Kitchen",
	domain.AreaLivingRoom: "Living Room",
	domain.AreaGarage:     "Garage",
	domain.AreaOutdoor:    "Outdoor Space",
	domain.AreaLaundry:    "Laundry Room",
}

// AreaService persists and lists generated areas
type AreaService struct {
	areaRepo     domain.AreaRepository
	propertyRepo domain.PropertyRepository
	linkRepo     domain.LinkRepository
	cache        PreviewCache
}

// NewAreaService creates a new area service
func NewAreaService(
	areaRepo domain.AreaRepository,
	propertyRepo domain.PropertyRepository,
	linkRepo domain.LinkRepository,
	cache PreviewCache,
) *AreaService {
	return &AreaService{
		areaRepo:     areaRepo,
		propertyRepo: propertyRepo,
		linkRepo:     linkRepo,
		cache:        cache,
	}
}

// List returns a property's areas for any profile with access to it.
func (s *AreaService) List(ctx context.Context, profileID, propertyID uuid.UUID) ([]domain.PropertyArea, error) {
	if err := s.authorize(ctx, profileID, propertyID, false); err != nil {
		return nil, err
	}
	areas, err := s.areaRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

// GenerateCustom runs the count-driven flow for an existing property and
// persists the result. Owner only: custom rooms change the property's shape.
func (s *AreaService) GenerateCustom(ctx context.Context, profileID, propertyID uuid.UUID, counts []domain.AreaCount) ([]domain.PropertyArea, error) {
	if err := s.authorize(ctx, profileID, propertyID, true); err != nil {
		return nil, err
	}

	areas := GenerateFromCounts(nil, counts)
	if len(areas) == 0 {
		return []domain.PropertyArea{}, nil
	}

	if err := s.areaRepo.CreateBatch(ctx, propertyID, areas); err != nil {
		return nil, fmt.Errorf("failed to persist areas: %w", err)
	}

	// The invite preview shows an area count; drop the stale entry.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, propertyID); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate invite preview")
		}
	}
	return areas, nil
}

func (s *AreaService) authorize(ctx context.Context, profileID, propertyID uuid.UUID, ownerOnly bool) error {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return domain.ErrNotFound
	}
	if property.OwnerProfileID == profileID {
		return nil
	}
	if ownerOnly {
		return domain.ErrAccessDenied
	}

	linked, err := s.linkRepo.HasActiveLink(ctx, profileID, propertyID)
	if err != nil {
		return fmt.Errorf("failed to check link: %w", err)
	}
	if !linked {
		return domain.ErrAccessDenied
	}
	return nil
}
