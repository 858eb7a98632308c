package domain

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses by the
// handlers. They propagate unmodified; wrap with fmt.Errorf("%w: ...") when
// attaching detail.
var (
	// ErrInvalidInvite marks a malformed invite URL or a reference that
	// does not denote a property. User-correctable.
	ErrInvalidInvite = errors.New("invalid invite link")

	// ErrProfileUnavailable marks a failed profile lookup-or-create.
	ErrProfileUnavailable = errors.New("profile unavailable")

	// ErrLinkPersistence marks a non-duplicate link insertion failure.
	ErrLinkPersistence = errors.New("failed to persist property link")

	// ErrInvalidTransition marks a request status change the lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
)
