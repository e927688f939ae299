package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/medetk/castlink/backend/internal/handlers"
	"github.com/medetk/castlink/backend/internal/middleware"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/medetk/castlink/backend/internal/repositories"
	"github.com/medetk/castlink/backend/internal/storage"
	"github.com/medetk/castlink/backend/pkg/apperrors"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// mgClient and firebaseAuthClient may be nil; the activity stream and the
// Firebase sign-in path are then disabled.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, store storage.Storage, jwtSecret string) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Profile{},
		&models.PortfolioItem{},
		&models.MediaAsset{},
		&models.Follow{},
		&models.Session{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	portfolioRepo := repositories.NewPostgresPortfolioRepository(pgdb)
	mediaRepo := repositories.NewPostgresMediaRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	sessionRepo := repositories.NewPostgresSessionRepository(pgdb)

	var activityRepo repositories.ActivityRepository
	if mgClient != nil {
		activityRepo = repositories.NewMongoActivityRepository(mgClient.Database("castlink"))
	}

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(profileRepo, sessionRepo, firebaseAuthClient, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require an active session) ---
	api := e.Group("/api/v1")
	api.Use(middleware.SessionAuthMiddleware(jwtSecret, sessionRepo))
	authHandler.RegisterSessionRoutes(api)

	profileHandler := handlers.NewProfileHandler(profileRepo)
	profileHandler.RegisterProfileRoutes(api)
	log.Println("Profile routes configured.")

	portfolioHandler := handlers.NewPortfolioHandler(portfolioRepo)
	portfolioHandler.RegisterPortfolioRoutes(api)
	log.Println("Portfolio routes configured.")

	mediaHandler := handlers.NewMediaHandler(mediaRepo, activityRepo, store)
	mediaHandler.RegisterMediaRoutes(api)
	log.Println("Media routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo, profileRepo, activityRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	if activityRepo != nil {
		activityHandler := handlers.NewActivityHandler(activityRepo)
		activityHandler.RegisterActivityRoutes(api)
		log.Println("Activity routes configured.")
	}

	log.Println("All routes configured.")
}
