package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"activitydesk/internal/delivery/http/helpers"
	"activitydesk/internal/domain"
)

// writeServiceError maps a service error to the API status code and envelope.
// The sentinel errors form a closed set; anything else is logged and returned
// as a 500 without leaking store internals into the mapping.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrFullCapacity):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, domain.ErrFullCapacity.Error())
	case errors.Is(err, domain.ErrAlreadySubscribed):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, domain.ErrAlreadySubscribed.Error())
	case errors.Is(err, domain.ErrTimeConflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, domain.ErrTimeConflict.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
