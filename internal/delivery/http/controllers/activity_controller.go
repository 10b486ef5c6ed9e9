package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"activitydesk/internal/delivery/http/helpers"
	"activitydesk/internal/delivery/http/middleware"
	"activitydesk/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListByDateSuccessResponse is the success response envelope for GET /activities.
type ListByDateSuccessResponse struct {
	Data  []*domain.ActivityView `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ListByDate godoc
// @Summary List activities on a date
// @Description Returns the activities starting on the given date, with HH:mm times. Requires a paid, in-person, hotel-inclusive ticket.
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} controllers.ListByDateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /activities [get]
func (c *ActivityController) ListByDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	activities, err := c.Service.ListByDate(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, activities)
}

// ListDays godoc
// @Summary List distinct activity days
// @Description Returns the distinct calendar days that have activities, with Portuguese weekday names.
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /activities/days [get]
func (c *ActivityController) ListDays(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	days, err := c.Service.ListDays(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, days)
}

// ListPlacesByDate godoc
// @Summary List places with their activities on a date
// @Description Returns every place with its activities on the given date, each with the number of spots still available.
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /activities/places [get]
func (c *ActivityController) ListPlacesByDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	places, err := c.Service.ListPlacesByDate(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, places)
}

// SubscribeSuccessResponse is the success response envelope for POST /activities/{activityID}/subscription.
type SubscribeSuccessResponse struct {
	Data  *domain.Enrollment `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Subscribe godoc
// @Summary Subscribe to an activity
// @Description Enrolls the authenticated user in the activity, subject to eligibility, capacity, and time-conflict rules.
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param activityID path int true "Activity ID"
// @Success 201 {object} controllers.SubscribeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (ticket not eligible or activity full)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already subscribed or time conflict)"
// @Router /activities/{activityID}/subscription [post]
func (c *ActivityController) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	activityID, err := strconv.ParseInt(r.PathValue("activityID"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid activityID")
		return
	}

	enrollment, err := c.Service.Subscribe(r.Context(), userID, activityID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, enrollment)
}

// Unsubscribe godoc
// @Summary Unsubscribe from an activity
// @Description Removes the authenticated user's enrollment in the activity.
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param activityID path int true "Activity ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /activities/{activityID}/subscription [delete]
func (c *ActivityController) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	activityID, err := strconv.ParseInt(r.PathValue("activityID"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid activityID")
		return
	}

	if err := c.Service.Unsubscribe(r.Context(), userID, activityID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
