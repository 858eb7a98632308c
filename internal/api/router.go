package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/homekeep/homekeep/internal/api/handler"
	custommw "github.com/homekeep/homekeep/internal/api/middleware"
	"github.com/homekeep/homekeep/internal/config"
	"github.com/homekeep/homekeep/internal/repository/postgres"
	"github.com/homekeep/homekeep/internal/repository/redis"
	"github.com/homekeep/homekeep/internal/security"
	"github.com/homekeep/homekeep/internal/service"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Identity verification
	verifier := security.NewTokenVerifier(cfg.Auth.ProviderSecret, cfg.Auth.ProviderIssuer)

	// Contact encryption
	encryptor, err := security.NewEncryptorFromBase64(cfg.Auth.EncryptionKeyB64)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid contact encryption key")
	}

	// Repositories
	profileRepo := postgres.NewProfileRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	areaRepo := postgres.NewAreaRepository(db)
	linkRepo := postgres.NewLinkRepository(db)
	requestRepo := postgres.NewRequestRepository(db)

	// Redis-backed pieces
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)
	previewCache := redis.NewPreviewCache(redisClient)

	// Services
	profileService := service.NewProfileService(profileRepo, encryptor)
	propertyService := service.NewPropertyService(propertyRepo, areaRepo, linkRepo)
	areaService := service.NewAreaService(areaRepo, propertyRepo, linkRepo, previewCache)
	inviteService := service.NewInviteService(profileRepo, propertyRepo, linkRepo, previewCache)
	requestService := service.NewRequestService(requestRepo, propertyRepo, linkRepo)

	// Handlers
	profileHandler := handler.NewProfileHandler(profileService)
	propertyHandler := handler.NewPropertyHandler(propertyService, areaService, profileService)
	inviteHandler := handler.NewInviteHandler(inviteService)
	requestHandler := handler.NewRequestHandler(requestService, profileService)

	authMiddleware := custommw.NewAuthMiddleware(verifier)
	rateLimitMiddleware := custommw.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Public invite preview (the confirmation screen before sign-in)
		r.Get("/invites/preview", inviteHandler.Preview)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Post("/invites/accept", inviteHandler.Accept)

			r.Get("/me", profileHandler.Me)
			r.Patch("/me", profileHandler.Update)

			r.Route("/properties", func(r chi.Router) {
				r.Get("/", propertyHandler.List)
				r.Post("/", propertyHandler.Create)

				r.Route("/{propertyID}", func(r chi.Router) {
					r.Get("/", propertyHandler.Get)
					r.Get("/areas", propertyHandler.ListAreas)
					r.Post("/areas/custom", propertyHandler.GenerateCustomAreas)

					r.Get("/requests", requestHandler.List)
					r.Post("/requests", requestHandler.Create)
				})
			})

			r.Patch("/requests/{requestID}", requestHandler.Update)
		})
	})

	return r
}
