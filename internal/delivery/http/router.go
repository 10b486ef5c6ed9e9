package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"activitydesk/internal/delivery/http/controllers"
	"activitydesk/internal/delivery/http/middleware"
	"activitydesk/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	verifier domain.TokenVerifier,
	activityController *controllers.ActivityController,
	eventController *controllers.EventController,
	hotelController *controllers.HotelController,
	authController *controllers.AuthController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Activities
	mux.HandleFunc("GET /activities", auth(activityController.ListByDate))
	mux.HandleFunc("GET /activities/days", auth(activityController.ListDays))
	mux.HandleFunc("GET /activities/places", auth(activityController.ListPlacesByDate))
	mux.HandleFunc("POST /activities/{activityID}/subscription", auth(activityController.Subscribe))
	mux.HandleFunc("DELETE /activities/{activityID}/subscription", auth(activityController.Unsubscribe))

	// Event
	mux.HandleFunc("GET /event", eventController.GetEvent)

	// Hotels
	mux.HandleFunc("GET /hotels", auth(hotelController.GetHotels))
	mux.HandleFunc("GET /hotels/{hotelID}", auth(hotelController.GetHotelWithRooms))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
