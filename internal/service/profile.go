package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/homekeep/homekeep/internal/security"
)

// ProfileService syncs external identities to internal profile rows and
// handles contact details. Phone numbers are encrypted before storage.
type ProfileService struct {
	profileRepo domain.ProfileRepository
	encryptor   *security.Encryptor
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo domain.ProfileRepository, encryptor *security.Encryptor) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, encryptor: encryptor}
}

// GetOrCreate returns the caller's profile, creating the row on first
// contact with this identity.
func (s *ProfileService) GetOrCreate(ctx context.Context, ident domain.Identity) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByExternalID(ctx, ident.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileUnavailable, err)
	}
	if profile == nil {
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
	}
	return s.withPhone(profile)
}

// Update applies display name and phone changes for the caller.
func (s *ProfileService) Update(ctx context.Context, ident domain.Identity, input domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.GetOrCreate(ctx, ident)
	if err != nil {
		return nil, err
	}

	var ciphertext []byte
	if input.Phone != nil && *input.Phone != "" {
		ciphertext, err = s.encryptor.Encrypt([]byte(*input.Phone))
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt phone: %w", err)
		}
	}

	if err := s.profileRepo.Update(ctx, profile.ID, input.DisplayName, ciphertext); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	return profile, nil
}

// withPhone decrypts the stored phone ciphertext into the in-memory view.
func (s *ProfileService) withPhone(profile *domain.Profile) (*domain.Profile, error) {
	if len(profile.PhoneCiphertext) == 0 {
		return profile, nil
	}
	plaintext, err := s.encryptor.Decrypt(profile.PhoneCiphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt phone: %w", err)
	}
	profile.Phone = string(plaintext)
	return profile, nil
}
