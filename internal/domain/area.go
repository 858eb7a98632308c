package domain

import (
	"context"

	"github.com/google/uuid"
)

// AreaType classifies a physical zone of a property.
type AreaType string

const (
	AreaKitchen    AreaType = "kitchen"
	AreaLivingRoom AreaType = "living_room"
	AreaBedroom    AreaType = "bedroom"
	AreaBathroom   AreaType = "bathroom"
	AreaGarage     AreaType = "garage"
	AreaOutdoor    AreaType = "outdoor"
	AreaLaundry    AreaType = "laundry"
	AreaOther      AreaType = "other"
)

// Icon returns the cosmetic icon tag for an area type. Unknown types fall
// back to "home".
func (t AreaType) Icon() string {
	switch t {
	case AreaKitchen:
		return "kitchen"
	case AreaLivingRoom:
		return "sofa"
	case AreaBedroom:
		return "bed"
	case AreaBathroom:
		return "shower"
	case AreaGarage:
		return "car"
	case AreaOutdoor:
		return "tree"
	case AreaLaundry:
		return "washing-machine"
	case AreaOther:
		return "door"
	default:
		return "home"
	}
}

// Label returns the display label for an area type. Unknown types fall back
// to "Other".
func (t AreaType) Label() string {
	switch t {
	case AreaKitchen:
		return "Kitchen"
	case AreaLivingRoom:
		return "Living Room"
	case AreaBedroom:
		return "Bedroom"
	case AreaBathroom:
		return "Bathroom"
	case AreaGarage:
		return "Garage"
	case AreaOutdoor:
		return "Outdoor"
	case AreaLaundry:
		return "Laundry"
	default:
		return "Other"
	}
}

// AreaCondition tracks the assessed state of an area.
type AreaCondition string

const (
	ConditionGood AreaCondition = "good"
	ConditionFair AreaCondition = "fair"
	ConditionPoor AreaCondition = "poor"
)

// AreaAsset is an opaque inventory item attached to an area. The core never
// interprets assets; downstream screens do.
type AreaAsset struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

// PropertyArea represents one physical room/zone of a property. Key is
// stable within a property ("bedroom2", "half-bathroom", ...) and unique per
// generated set; ID is assigned on persistence.
type PropertyArea struct {
	ID                uuid.UUID     `json:"id,omitempty"`
	PropertyID        uuid.UUID     `json:"property_id,omitempty"`
	Key               string        `json:"key"`
	Name              string        `json:"name"`
	Type              AreaType      `json:"type"`
	Icon              string        `json:"icon"`
	IsDefault         bool          `json:"is_default"`
	Condition         AreaCondition `json:"condition"`
	PhotoRefs         []string      `json:"photo_refs"`
	InventoryComplete bool          `json:"inventory_complete"`
	Assets            []AreaAsset   `json:"assets"`
	SortOrder         int           `json:"sort_order"`
}

// AreaCount is one entry of the ordered room-count mapping used by the
// custom area flow. A slice preserves the caller's insertion order.
type AreaCount struct {
	Type  AreaType `json:"type" validate:"required"`
	Count int      `json:"count" validate:"min=1,max=20"`
}

// AreaRepository defines the interface for area storage
type AreaRepository interface {
	CreateBatch(ctx context.Context, propertyID uuid.UUID, areas []PropertyArea) error
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]PropertyArea, error)
}
