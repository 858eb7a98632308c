package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is the internal user record, keyed by the external identity
// provider's user ID. Rows are created lazily on the first authenticated
// call rather than by a signup flow.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	ExternalID  string    `json:"external_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	// Phone holds the decrypted number; PhoneCiphertext is what the
	// repository actually reads and writes.
	Phone           string    `json:"phone,omitempty"`
	PhoneCiphertext []byte    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileUpdate represents profile update data
type ProfileUpdate struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=120"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// Identity is the authenticated caller as asserted by the external identity
// provider's token. It is passed explicitly to every operation that needs
// it; nothing reads it from ambient state.
type Identity struct {
	ExternalID string
	Email      string
}

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByExternalID(ctx context.Context, externalID string) (*Profile, error)
	Update(ctx context.Context, id uuid.UUID, displayName *string, phoneCiphertext []byte) error
}
