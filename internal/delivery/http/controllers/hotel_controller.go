package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"activitydesk/internal/delivery/http/helpers"
	"activitydesk/internal/delivery/http/middleware"
	"activitydesk/internal/domain"
)

type HotelController struct {
	Logger  *slog.Logger
	Service domain.HotelService
}

func NewHotelController(logger *slog.Logger, svc domain.HotelService) *HotelController {
	return &HotelController{
		Logger:  logger,
		Service: svc,
	}
}

// GetHotels godoc
// @Summary List hotels
// @Description Returns the partner hotels with total room capacity and room kinds. Requires a paid, in-person, hotel-inclusive ticket.
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /hotels [get]
func (c *HotelController) GetHotels(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	hotels, err := c.Service.GetHotels(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, hotels)
}

// GetHotelWithRooms godoc
// @Summary Get a hotel with its rooms
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotelID path int true "Hotel ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /hotels/{hotelID} [get]
func (c *HotelController) GetHotelWithRooms(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	hotelID, err := strconv.ParseInt(r.PathValue("hotelID"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid hotelID")
		return
	}

	hotel, err := c.Service.GetHotelWithRooms(r.Context(), userID, hotelID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, hotel)
}
