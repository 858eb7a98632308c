package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPropertyService_Onboard(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	input := domain.PropertyCreate{
		Name:      "Oak House",
		Address:   "12 Oak St",
		City:      "Portland",
		Type:      "house",
		Bedrooms:  3,
		Bathrooms: 2,
	}

	t.Run("creates property and generated areas", func(t *testing.T) {
		propertyRepo := new(MockPropertyRepository)
		areaRepo := new(MockAreaRepository)
		linkRepo := new(MockLinkRepository)
		svc := NewPropertyService(propertyRepo, areaRepo, linkRepo)

		propertyRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Property) bool {
			return p.OwnerProfileID == ownerID && p.Type == domain.PropertyHouse
		})).Return(nil)

		var persisted []domain.PropertyArea
		areaRepo.On("CreateBatch", ctx, mock.Anything, mock.MatchedBy(func(areas []domain.PropertyArea) bool {
			persisted = areas
			return len(areas) > 0
		})).Return(nil)

		result, err := svc.Onboard(ctx, ownerID, input)
		assert.NoError(t, err)
		assert.Equal(t, "Oak House", result.Property.Name)
		assert.Equal(t, result.Areas, persisted)
		assert.Equal(t, "Kitchen", result.Areas[0].Name)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("property create failure", func(t *testing.T) {
		propertyRepo := new(MockPropertyRepository)
		areaRepo := new(MockAreaRepository)
		linkRepo := new(MockLinkRepository)
		svc := NewPropertyService(propertyRepo, areaRepo, linkRepo)

		propertyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Property")).
			Return(errors.New("insert failed"))

		_, err := svc.Onboard(ctx, ownerID, input)
		assert.Error(t, err)
		areaRepo.AssertNotCalled(t, "CreateBatch")
	})
}

func TestPropertyService_Get(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	tenantID := uuid.New()
	propertyID := uuid.New()
	property := &domain.Property{ID: propertyID, OwnerProfileID: ownerID}

	t.Run("owner", func(t *testing.T) {
		propertyRepo := new(MockPropertyRepository)
		linkRepo := new(MockLinkRepository)
		svc := NewPropertyService(propertyRepo, new(MockAreaRepository), linkRepo)

		propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)

		got, err := svc.Get(ctx, ownerID, propertyID)
		assert.NoError(t, err)
		assert.Equal(t, property, got)
		linkRepo.AssertNotCalled(t, "HasActiveLink")
	})

	t.Run("linked tenant", func(t *testing.T) {
		propertyRepo := new(MockPropertyRepository)
		linkRepo := new(MockLinkRepository)
		svc := NewPropertyService(propertyRepo, new(MockAreaRepository), linkRepo)

		propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		linkRepo.On("HasActiveLink", ctx, tenantID, propertyID).Return(true, nil)

		got, err := svc.Get(ctx, tenantID, propertyID)
		assert.NoError(t, err)
		assert.Equal(t, property, got)
	})

	t.Run("stranger", func(t *testing.T) {
		propertyRepo := new(MockPropertyRepository)
		linkRepo := new(MockLinkRepository)
		svc := NewPropertyService(propertyRepo, new(MockAreaRepository), linkRepo)

		propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		linkRepo.On("HasActiveLink", ctx, tenantID, propertyID).Return(false, nil)

		_, err := svc.Get(ctx, tenantID, propertyID)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		propertyRepo := new(MockPropertyRepository)
		svc := NewPropertyService(propertyRepo, new(MockAreaRepository), new(MockLinkRepository))

		propertyRepo.On("GetByID", ctx, propertyID).Return(nil, nil)

		_, err := svc.Get(ctx, ownerID, propertyID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPropertyService_List(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	propertyRepo := new(MockPropertyRepository)
	svc := NewPropertyService(propertyRepo, new(MockAreaRepository), new(MockLinkRepository))

	owned := []domain.Property{{Name: "Oak House"}}
	joined := []domain.Property{{Name: "Pine Flat"}}
	propertyRepo.On("ListByOwner", ctx, profileID).Return(owned, nil)
	propertyRepo.On("ListJoined", ctx, profileID).Return(joined, nil)

	list, err := svc.List(ctx, profileID)
	assert.NoError(t, err)
	assert.Equal(t, owned, list.Owned)
	assert.Equal(t, joined, list.Joined)
}
