package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
)

// RequestService handles maintenance request operations
type RequestService struct {
	requestRepo  domain.RequestRepository
	propertyRepo domain.PropertyRepository
	linkRepo     domain.LinkRepository
}

// NewRequestService creates a new request service
func NewRequestService(
	requestRepo domain.RequestRepository,
	propertyRepo domain.PropertyRepository,
	linkRepo domain.LinkRepository,
) *RequestService {
	return &RequestService{
		requestRepo:  requestRepo,
		propertyRepo: propertyRepo,
		linkRepo:     linkRepo,
	}
}

// Create files a maintenance request against a property. The reporter must
// be the owner or a linked tenant.
func (s *RequestService) Create(ctx context.Context, reporterProfileID, propertyID uuid.UUID, input domain.RequestCreate) (*domain.MaintenanceRequest, error) {
	if _, err := s.accessProperty(ctx, reporterProfileID, propertyID, false); err != nil {
		return nil, err
	}

	priority := domain.RequestPriority(input.Priority)
	if priority == "" {
		priority = domain.PriorityNormal
	}

	now := time.Now()
	request := &domain.MaintenanceRequest{
		ID:                uuid.New(),
		PropertyID:        propertyID,
		AreaID:            input.AreaID,
		ReporterProfileID: reporterProfileID,
		Title:             input.Title,
		Description:       input.Description,
		Priority:          priority,
		Status:            domain.StatusOpen,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return request, nil
}

// ListByProperty returns a property's requests for the owner or a linked
// tenant.
func (s *RequestService) ListByProperty(ctx context.Context, profileID, propertyID uuid.UUID) ([]domain.MaintenanceRequest, error) {
	if _, err := s.accessProperty(ctx, profileID, propertyID, false); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// Update applies a status change and/or vendor assignment. Owner only;
// status changes must follow the request lifecycle.
func (s *RequestService) Update(ctx context.Context, profileID, requestID uuid.UUID, input domain.RequestUpdate) (*domain.MaintenanceRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}

	if _, err := s.accessProperty(ctx, profileID, request.PropertyID, true); err != nil {
		return nil, err
	}

	if input.Status != nil {
		next := domain.RequestStatus(*input.Status)
		if !request.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, request.Status, next)
		}
		request.Status = next
	}
	if input.VendorName != nil {
		request.VendorName = *input.VendorName
	}
	if input.VendorPhone != nil {
		request.VendorPhone = *input.VendorPhone
	}
	request.UpdatedAt = time.Now()

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}
	return request, nil
}

func (s *RequestService) accessProperty(ctx context.Context, profileID, propertyID uuid.UUID, ownerOnly bool) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}
	if property.OwnerProfileID == profileID {
		return property, nil
	}
	if ownerOnly {
		return nil, domain.ErrAccessDenied
	}
	linked, err := s.linkRepo.HasActiveLink(ctx, profileID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check link: %w", err)
	}
	if !linked {
		return nil, domain.ErrAccessDenied
	}
	return property, nil
}
