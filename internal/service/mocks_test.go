package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository mocks the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Profile, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, id uuid.UUID, displayName *string, phoneCiphertext []byte) error {
	args := m.Called(ctx, id, displayName, phoneCiphertext)
	return args.Error(0)
}

// MockPropertyRepository mocks the PropertyRepository interface
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListByOwner(ctx context.Context, ownerProfileID uuid.UUID) ([]domain.Property, error) {
	args := m.Called(ctx, ownerProfileID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListJoined(ctx context.Context, tenantProfileID uuid.UUID) ([]domain.Property, error) {
	args := m.Called(ctx, tenantProfileID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) Summary(ctx context.Context, id uuid.UUID) (*domain.PropertySummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertySummary), args.Error(1)
}

// MockAreaRepository mocks the AreaRepository interface
type MockAreaRepository struct {
	mock.Mock
}

func (m *MockAreaRepository) CreateBatch(ctx context.Context, propertyID uuid.UUID, areas []domain.PropertyArea) error {
	args := m.Called(ctx, propertyID, areas)
	return args.Error(0)
}

func (m *MockAreaRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyArea, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.PropertyArea), args.Error(1)
}

// MockLinkRepository mocks the LinkRepository interface
type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) Insert(ctx context.Context, link *domain.TenantPropertyLink) (domain.InsertOutcome, error) {
	args := m.Called(ctx, link)
	return args.Get(0).(domain.InsertOutcome), args.Error(1)
}

func (m *MockLinkRepository) HasActiveLink(ctx context.Context, tenantProfileID, propertyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantProfileID, propertyID)
	return args.Bool(0), args.Error(1)
}

// MockRequestRepository mocks the RequestRepository interface
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, request *domain.MaintenanceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, request *domain.MaintenanceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockPreviewCache mocks the PreviewCache interface
type MockPreviewCache struct {
	mock.Mock
}

func (m *MockPreviewCache) Get(ctx context.Context, propertyID uuid.UUID) (*domain.PropertySummary, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertySummary), args.Error(1)
}

func (m *MockPreviewCache) Set(ctx context.Context, propertyID uuid.UUID, summary *domain.PropertySummary) error {
	args := m.Called(ctx, propertyID, summary)
	return args.Error(0)
}

func (m *MockPreviewCache) Invalidate(ctx context.Context, propertyID uuid.UUID) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}
