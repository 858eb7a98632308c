package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/rs/zerolog/log"
)

// inviteParam is the single required query parameter of a shareable invite
// URL: https://<host>/invite?property=<id>
const inviteParam = "property"

// ParseInviteURL extracts the property reference from an invite URL. It
// fails with domain.ErrInvalidInvite when the URL is malformed or the
// parameter is absent or empty; it performs no further validation. Pure and
// side-effect free.
func ParseInviteURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", domain.ErrInvalidInvite
	}
	ref := u.Query().Get(inviteParam)
	if ref == "" {
		return "", domain.ErrInvalidInvite
	}
	return ref, nil
}

// PreviewCache caches property summaries for the invite confirmation screen.
type PreviewCache interface {
	Get(ctx context.Context, propertyID uuid.UUID) (*domain.PropertySummary, error)
	Set(ctx context.Context, propertyID uuid.UUID, summary *domain.PropertySummary) error
	Invalidate(ctx context.Context, propertyID uuid.UUID) error
}

// AcceptResult is the terminal state of a successful invite acceptance.
type AcceptResult struct {
	Outcome  domain.LinkOutcome `json:"outcome"`
	Property *domain.Property   `json:"property"`
}

// InviteService turns a validated invite reference plus an authenticated
// caller identity into a persisted tenant-property link.
type InviteService struct {
	profileRepo  domain.ProfileRepository
	propertyRepo domain.PropertyRepository
	linkRepo     domain.LinkRepository
	cache        PreviewCache
}

// NewInviteService creates a new invite service
func NewInviteService(
	profileRepo domain.ProfileRepository,
	propertyRepo domain.PropertyRepository,
	linkRepo domain.LinkRepository,
	cache PreviewCache,
) *InviteService {
	return &InviteService{
		profileRepo:  profileRepo,
		propertyRepo: propertyRepo,
		linkRepo:     linkRepo,
		cache:        cache,
	}
}

// Accept runs the acceptance workflow: resolve the caller's profile
// (creating it if absent), short-circuit when an active link already
// exists, otherwise insert one. A uniqueness violation on insert is folded
// into the "already linked" outcome so two concurrent acceptances both
// succeed with a single row materializing. There is no retry and no
// rollback; each step is independently safe to repeat.
func (s *InviteService) Accept(ctx context.Context, ident domain.Identity, inviteURL string) (*AcceptResult, error) {
	ref, err := ParseInviteURL(inviteURL)
	if err != nil {
		return nil, err
	}

	propertyID, err := uuid.Parse(ref)
	if err != nil {
		return nil, domain.ErrInvalidInvite
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, domain.ErrInvalidInvite
	}

	profile, err := s.resolveProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	linked, err := s.linkRepo.HasActiveLink(ctx, profile.ID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLinkPersistence, err)
	}
	if linked {
		return &AcceptResult{Outcome: domain.LinkAlreadyLinked, Property: property}, nil
	}

	outcome, err := s.linkRepo.Insert(ctx, &domain.TenantPropertyLink{
		TenantProfileID: profile.ID,
		PropertyID:      propertyID,
		IsActive:        true,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLinkPersistence, err)
	}

	if outcome == domain.InsertAlreadyExists {
		// Lost a race against another acceptance for the same pair.
		log.Debug().
			Str("profile_id", profile.ID.String()).
			Str("property_id", propertyID.String()).
			Msg("duplicate link insert folded into already-linked")
		return &AcceptResult{Outcome: domain.LinkAlreadyLinked, Property: property}, nil
	}

	return &AcceptResult{Outcome: domain.LinkCreated, Property: property}, nil
}

// resolveProfile looks up the caller's internal profile by external identity
// key, creating it on first contact.
func (s *InviteService) resolveProfile(ctx context.Context, ident domain.Identity) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByExternalID(ctx, ident.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileUnavailable, err)
	}
	if profile != nil {
		return profile, nil
	}

	now := time.Now()
	profile = &domain.Profile{
		ID:         uuid.New(),
		ExternalID: ident.ExternalID,
		Email:      ident.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileUnavailable, err)
	}
	return profile, nil
}

// Preview resolves an invite reference to the property's public summary,
// consulting the cache first. Unknown references fail with ErrInvalidInvite.
func (s *InviteService) Preview(ctx context.Context, ref string) (*domain.PropertySummary, error) {
	propertyID, err := uuid.Parse(ref)
	if err != nil {
		return nil, domain.ErrInvalidInvite
	}

	if s.cache != nil {
		if summary, err := s.cache.Get(ctx, propertyID); err == nil && summary != nil {
			return summary, nil
		}
	}

	summary, err := s.propertyRepo.Summary(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property summary: %w", err)
	}
	if summary == nil {
		return nil, domain.ErrInvalidInvite
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, propertyID, summary); err != nil {
			log.Warn().Err(err).Msg("failed to cache invite preview")
		}
	}
	return summary, nil
}
