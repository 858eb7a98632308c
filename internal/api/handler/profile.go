package handler

import (
	"encoding/json"
	"net/http"

	"github.com/homekeep/homekeep/internal/api/middleware"
	"github.com/homekeep/homekeep/internal/api/response"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/homekeep/homekeep/internal/service"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Me returns the caller's profile, creating it on first contact
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	profile, err := h.profileService.GetOrCreate(r.Context(), ident)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, profile)
}

// Update applies display name and phone changes for the caller
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		validationError(w, err)
		return
	}

	profile, err := h.profileService.Update(r.Context(), ident, input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, profile)
}
