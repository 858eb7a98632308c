package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/homekeep/homekeep/internal/api/response"
	"github.com/homekeep/homekeep/internal/domain"
)

var validate = validator.New()

// serviceError maps service-layer sentinel errors to HTTP responses.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInvite):
		response.BadRequest(w, domain.ErrInvalidInvite.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, domain.ErrNotFound.Error())
	case errors.Is(err, domain.ErrAccessDenied):
		response.Forbidden(w, domain.ErrAccessDenied.Error())
	case errors.Is(err, domain.ErrProfileUnavailable):
		response.Error(w, http.StatusServiceUnavailable, domain.ErrProfileUnavailable.Error())
	default:
		response.InternalError(w, "internal error")
	}
}

// validationError turns validator errors into a field → message map.
func validationError(w http.ResponseWriter, err error) {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errs := make(map[string]string)
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = "field is required"
			case "min":
				errs[field] = "must be at least " + e.Param()
			case "max":
				errs[field] = "must be at most " + e.Param()
			case "oneof":
				errs[field] = "must be one of: " + e.Param()
			default:
				errs[field] = "validation failed on " + e.Tag()
			}
		}
		response.BadRequest(w, errs)
		return
	}
	response.BadRequest(w, err.Error())
}
