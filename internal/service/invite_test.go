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

func TestParseInviteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "valid invite", url: "https://homekeep.app/invite?property=abc123", want: "abc123"},
		{name: "extra params ignored", url: "https://homekeep.app/invite?utm=x&property=p1", want: "p1"},
		{name: "missing param", url: "https://homekeep.app/invite", wantErr: true},
		{name: "empty param", url: "https://homekeep.app/invite?property=", wantErr: true},
		{name: "wrong param", url: "https://homekeep.app/invite?prop=abc", wantErr: true},
		{name: "unparseable", url: "://missing-scheme", wantErr: true},
		{name: "plain text", url: "not a url", wantErr: true},
		{name: "empty string", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInviteURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInvite)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type inviteMocks struct {
	profileRepo  *MockProfileRepository
	propertyRepo *MockPropertyRepository
	linkRepo     *MockLinkRepository
	cache        *MockPreviewCache
}

func newInviteService() (*InviteService, inviteMocks) {
	m := inviteMocks{
		profileRepo:  new(MockProfileRepository),
		propertyRepo: new(MockPropertyRepository),
		linkRepo:     new(MockLinkRepository),
		cache:        new(MockPreviewCache),
	}
	return NewInviteService(m.profileRepo, m.propertyRepo, m.linkRepo, m.cache), m
}

func TestInviteService_Accept(t *testing.T) {
	ctx := context.Background()
	ident := domain.Identity{ExternalID: "ext-1", Email: "tenant@example.com"}
	propertyID := uuid.New()
	property := &domain.Property{ID: propertyID, Name: "Oak House"}
	profile := &domain.Profile{ID: uuid.New(), ExternalID: ident.ExternalID}
	inviteURL := "https://homekeep.app/invite?property=" + propertyID.String()

	t.Run("creates link for existing profile", func(t *testing.T) {
		svc, m := newInviteService()
		m.propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		m.profileRepo.On("GetByExternalID", ctx, ident.ExternalID).Return(profile, nil)
		m.linkRepo.On("HasActiveLink", ctx, profile.ID, propertyID).Return(false, nil)
		m.linkRepo.On("Insert", ctx, mock.AnythingOfType("*domain.TenantPropertyLink")).
			Return(domain.InsertCreated, nil)

		result, err := svc.Accept(ctx, ident, inviteURL)
		assert.NoError(t, err)
		assert.Equal(t, domain.LinkCreated, result.Outcome)
		assert.Equal(t, property, result.Property)
		m.linkRepo.AssertExpectations(t)
	})

	t.Run("creates profile on first contact", func(t *testing.T) {
		svc, m := newInviteService()
		m.propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		m.profileRepo.On("GetByExternalID", ctx, ident.ExternalID).Return(nil, nil)
		m.profileRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.ExternalID == ident.ExternalID && p.Email == ident.Email
		})).Return(nil)
		m.linkRepo.On("HasActiveLink", ctx, mock.Anything, propertyID).Return(false, nil)
		m.linkRepo.On("Insert", ctx, mock.AnythingOfType("*domain.TenantPropertyLink")).
			Return(domain.InsertCreated, nil)

		result, err := svc.Accept(ctx, ident, inviteURL)
		assert.NoError(t, err)
		assert.Equal(t, domain.LinkCreated, result.Outcome)
		m.profileRepo.AssertExpectations(t)
	})

	t.Run("existing link short-circuits insert", func(t *testing.T) {
		svc, m := newInviteService()
		m.propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		m.profileRepo.On("GetByExternalID", ctx, ident.ExternalID).Return(profile, nil)
		m.linkRepo.On("HasActiveLink", ctx, profile.ID, propertyID).Return(true, nil)

		result, err := svc.Accept(ctx, ident, inviteURL)
		assert.NoError(t, err)
		assert.Equal(t, domain.LinkAlreadyLinked, result.Outcome)
		m.linkRepo.AssertNotCalled(t, "Insert")
	})

	t.Run("duplicate insert folds into already linked", func(t *testing.T) {
		svc, m := newInviteService()
		m.propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		m.profileRepo.On("GetByExternalID", ctx, ident.ExternalID).Return(profile, nil)
		m.linkRepo.On("HasActiveLink", ctx, profile.ID, propertyID).Return(false, nil)
		m.linkRepo.On("Insert", ctx, mock.AnythingOfType("*domain.TenantPropertyLink")).
			Return(domain.InsertAlreadyExists, nil)

		result, err := svc.Accept(ctx, ident, inviteURL)
		assert.NoError(t, err)
		assert.Equal(t, domain.LinkAlreadyLinked, result.Outcome)
	})

	t.Run("malformed invite URL", func(t *testing.T) {
		svc, _ := newInviteService()
		_, err := svc.Accept(ctx, ident, "https://homekeep.app/invite")
		assert.ErrorIs(t, err, domain.ErrInvalidInvite)
	})

	t.Run("non-uuid reference", func(t *testing.T) {
		svc, _ := newInviteService()
		_, err := svc.Accept(ctx, ident, "https://homekeep.app/invite?property=abc123")
		assert.ErrorIs(t, err, domain.ErrInvalidInvite)
	})

	t.Run("unknown property", func(t *testing.T) {
		svc, m := newInviteService()
		m.propertyRepo.On("GetByID", ctx, propertyID).Return(nil, nil)

		_, err := svc.Accept(ctx, ident, inviteURL)
		assert.ErrorIs(t, err, domain.ErrInvalidInvite)
	})

	t.Run("profile lookup failure", func(t *testing.T) {
		svc, m := newInviteService()
		m.propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		m.profileRepo.On("GetByExternalID", ctx, ident.ExternalID).
			Return(nil, errors.New("connection refused"))

		_, err := svc.Accept(ctx, ident, inviteURL)
		assert.ErrorIs(t, err, domain.ErrProfileUnavailable)
	})

	t.Run("profile create failure", func(t *testing.T) {
		svc, m := newInviteService()
		m.propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		m.profileRepo.On("GetByExternalID", ctx, ident.ExternalID).Return(nil, nil)
		m.profileRepo.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).
			Return(errors.New("insert failed"))

		_, err := svc.Accept(ctx, ident, inviteURL)
		assert.ErrorIs(t, err, domain.ErrProfileUnavailable)
	})

	t.Run("insert failure", func(t *testing.T) {
		svc, m := newInviteService()
		m.propertyRepo.On("GetByID", ctx, propertyID).Return(property, nil)
		m.profileRepo.On("GetByExternalID", ctx, ident.ExternalID).Return(profile, nil)
		m.linkRepo.On("HasActiveLink", ctx, profile.ID, propertyID).Return(false, nil)
		m.linkRepo.On("Insert", ctx, mock.AnythingOfType("*domain.TenantPropertyLink")).
			Return(domain.InsertOutcome(0), errors.New("deadlock"))

		_, err := svc.Accept(ctx, ident, inviteURL)
		assert.ErrorIs(t, err, domain.ErrLinkPersistence)
	})
}

func TestInviteService_Preview(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	summary := &domain.PropertySummary{ID: propertyID, Name: "Oak House", City: "Portland", AreaCount: 9}

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newInviteService()
		m.cache.On("Get", ctx, propertyID).Return(nil, nil)
		m.propertyRepo.On("Summary", ctx, propertyID).Return(summary, nil)
		m.cache.On("Set", ctx, propertyID, summary).Return(nil)

		got, err := svc.Preview(ctx, propertyID.String())
		assert.NoError(t, err)
		assert.Equal(t, summary, got)
		m.cache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, m := newInviteService()
		m.cache.On("Get", ctx, propertyID).Return(summary, nil)

		got, err := svc.Preview(ctx, propertyID.String())
		assert.NoError(t, err)
		assert.Equal(t, summary, got)
		m.propertyRepo.AssertNotCalled(t, "Summary")
	})

	t.Run("unknown property", func(t *testing.T) {
		svc, m := newInviteService()
		m.cache.On("Get", ctx, propertyID).Return(nil, nil)
		m.propertyRepo.On("Summary", ctx, propertyID).Return(nil, nil)

		_, err := svc.Preview(ctx, propertyID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidInvite)
	})

	t.Run("non-uuid reference", func(t *testing.T) {
		svc, _ := newInviteService()
		_, err := svc.Preview(ctx, "abc123")
		assert.ErrorIs(t, err, domain.ErrInvalidInvite)
	})
}
