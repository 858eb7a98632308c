package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/api/middleware"
	"github.com/homekeep/homekeep/internal/api/response"
	"github.com/homekeep/homekeep/internal/domain"
	"github.com/homekeep/homekeep/internal/service"
)

// RequestHandler handles maintenance request endpoints
type RequestHandler struct {
	requestService *service.RequestService
	profileService *service.ProfileService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *service.RequestService, profileService *service.ProfileService) *RequestHandler {
	return &RequestHandler{requestService: requestService, profileService: profileService}
}

func (h *RequestHandler) callerProfile(w http.ResponseWriter, r *http.Request) (*domain.Profile, bool) {
	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return nil, false
	}

	profile, err := h.profileService.GetOrCreate(r.Context(), ident)
	if err != nil {
		serviceError(w, err)
		return nil, false
	}
	return profile, true
}

// Create handles filing a maintenance request against a property
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.callerProfile(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	var input domain.RequestCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		validationError(w, err)
		return
	}

	request, err := h.requestService.Create(r.Context(), profile.ID, id, input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, request)
}

// List handles listing a property's maintenance requests
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.callerProfile(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	requests, err := h.requestService.ListByProperty(r.Context(), profile.ID, id)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, requests)
}

// Update handles status changes and vendor assignment
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.callerProfile(w, r)
	if !ok {
		return
	}

	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		response.BadRequest(w, "invalid request ID")
		return
	}

	var input domain.RequestUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		validationError(w, err)
		return
	}

	request, err := h.requestService.Update(r.Context(), profile.ID, requestID, input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, request)
}
