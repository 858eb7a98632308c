package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/homekeep/homekeep/internal/api/middleware"
	"github.com/homekeep/homekeep/internal/api/response"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/homekeep/homekeep/internal/service"
)

// InviteHandler handles invite endpoints
type InviteHandler struct {
	inviteService *service.InviteService
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteService *service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// AcceptInviteRequest is the invite acceptance payload
type AcceptInviteRequest struct {
	InviteURL string `json:"invite_url" validate:"required,max=2048"`
}

// Accept handles invite acceptance for the authenticated caller
func (h *InviteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		validationError(w, err)
		return
	}

	result, err := h.inviteService.Accept(r.Context(), ident, input.InviteURL)
	if err != nil {
		serviceError(w, err)
		return
	}

	if result.Outcome == domain.LinkCreated {
		response.Created(w, result)
		return
	}
	response.OK(w, result)
}

// Preview handles the public invite preview screen
func (h *InviteHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("property")
	if ref == "" {
		response.BadRequest(w, domain.ErrInvalidInvite.Error())
		return
	}

	summary, err := h.inviteService.Preview(r.Context(), ref)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInvite) {
			response.NotFound(w, domain.ErrInvalidInvite.Error())
			return
		}
		serviceError(w, err)
		return
	}

	response.OK(w, summary)
}
