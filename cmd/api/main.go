package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"activitydesk/config"
	_ "activitydesk/docs"
	"activitydesk/internal/adapters/auth"
	"activitydesk/internal/adapters/cache"
	"activitydesk/internal/adapters/email"
	delivery "activitydesk/internal/delivery/http"
	"activitydesk/internal/delivery/http/controllers"
	"activitydesk/internal/delivery/http/middleware"
	"activitydesk/internal/repository/postgres"
	"activitydesk/internal/services"
)

// @title activitydesk API
// @version 1.0
// @description Event activity subscriptions, places, hotels, and the event record.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	// Repositories
	ticketRepo := postgres.NewTicketRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Adapters
	eventCache := cache.NewRedisEventCache(redisClient, cfg.EventCacheTTL)
	hasher := auth.NewBcryptHasher(10)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	activityService := services.NewActivityService(ticketRepo, activityRepo, placeRepo, enrollmentRepo, userRepo, emailService)
	eventService := services.NewEventService(eventRepo, eventCache)
	hotelService := services.NewHotelService(ticketRepo, hotelRepo)
	authService := services.NewAuthService(userRepo, hasher, issuer, cfg.JWTExpiry)

	// HTTP
	mux := delivery.NewRouter(
		verifier,
		controllers.NewActivityController(logger, activityService),
		controllers.NewEventController(logger, eventService),
		controllers.NewHotelController(logger, hotelService),
		controllers.NewAuthController(logger, authService),
	)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
