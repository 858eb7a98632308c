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

// PropertyHandler handles property and area endpoints
type PropertyHandler struct {
	propertyService *service.PropertyService
	areaService     *service.AreaService
	profileService  *service.ProfileService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(
	propertyService *service.PropertyService,
	areaService *service.AreaService,
	profileService *service.ProfileService,
) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		areaService:     areaService,
		profileService:  profileService,
	}
}

// callerProfile resolves the authenticated identity to its profile row.
func (h *PropertyHandler) callerProfile(w http.ResponseWriter, r *http.Request) (*domain.Profile, bool) {
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

func propertyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		response.BadRequest(w, "invalid property ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create handles property onboarding
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.callerProfile(w, r)
	if !ok {
		return
	}

	var input domain.PropertyCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		validationError(w, err)
		return
	}

	result, err := h.propertyService.Onboard(r.Context(), profile.ID, input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, result)
}

// List handles listing the caller's owned and joined properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.callerProfile(w, r)
	if !ok {
		return
	}

	list, err := h.propertyService.List(r.Context(), profile.ID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, list)
}

// Get handles getting a property by ID
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.callerProfile(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	property, err := h.propertyService.Get(r.Context(), profile.ID, id)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, property)
}

// ListAreas handles listing a property's areas
func (h *PropertyHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.callerProfile(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	areas, err := h.areaService.List(r.Context(), profile.ID, id)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, areas)
}

// CustomAreasRequest is the count-driven custom area payload. Order of the
// counts array is preserved in the generated output.
type CustomAreasRequest struct {
	Counts []domain.AreaCount `json:"counts" validate:"required,min=1,max=50,dive"`
}

// GenerateCustomAreas handles the count-driven custom area flow
func (h *PropertyHandler) GenerateCustomAreas(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.callerProfile(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	var input CustomAreasRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		validationError(w, err)
		return
	}

	areas, err := h.areaService.GenerateCustom(r.Context(), profile.ID, id, input.Counts)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, areas)
}
