package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"gcs-food-backend/internal/api/handlers"
	"gcs-food-backend/internal/api/routes"
	"gcs-food-backend/internal/middleware"
	"gcs-food-backend/internal/utils"
	"gcs-food-backend/internal/utils/storage"
	"gcs-food-backend/pkg/catalog"
	"gcs-food-backend/pkg/harmonization"
	"gcs-food-backend/pkg/jwt"
	"gcs-food-backend/pkg/recipe"
	"gcs-food-backend/pkg/user"
)

func NewApp(cfg *utils.Config, repos Repositories, images storage.ImageStore, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	// Parsed request values are stored as-is, so they must not alias fasthttp buffers.
	app := fiber.New(fiber.Config{
		AppName:   "gcs-food-backend",
		Immutable: true,
	})
	middlewares := middleware.NewMiddleware(cfg.CORSAllowOrigins, log)
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Sao_Paulo",
		Output:     file,
	}))
	// CORS answers preflight requests before the limiter counts them.
	app.Use(middlewares.CORSMiddleware())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret)
	var (
		recipeReferences recipe.ReferenceChecker
		owners           harmonization.OwnerChecker
	)
	if cfg.StrictReferences {
		references := catalog.NewReferenceChecker(repos.Nationalities, repos.Categories, repos.Users)
		recipeReferences, owners = references, references
	}
	recipeService := recipe.NewRecipeService(repos.Recipes, recipeReferences, images)
	harmonizationService := harmonization.NewHarmonizationService(repos.Harmonizations, owners, images)
	catalogService := catalog.NewCatalogService(repos.Nationalities, repos.Categories)
	userService := user.NewUserService(repos.Users, jwtService)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	harmonizationHandler := handlers.NewHarmonizationHandler(harmonizationService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		RecipeHandler:        recipeHandler,
		HarmonizationHandler: harmonizationHandler,
		CatalogHandler:       catalogHandler,
		UserHandler:          userHandler,
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
