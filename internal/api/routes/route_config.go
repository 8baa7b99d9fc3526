package routes

import (
	"github.com/gofiber/fiber/v2"

	"gcs-food-backend/internal/api/handlers"
	"gcs-food-backend/internal/middleware"
	"gcs-food-backend/pkg/jwt"
)

type Config struct {
	App                  *fiber.App
	RecipeHandler        handlers.RecipeHandler
	HarmonizationHandler handlers.HarmonizationHandler
	CatalogHandler       handlers.CatalogHandler
	UserHandler          handlers.UserHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.ErrorLogger())
	c.GuestRoute()
	c.Auth()
	c.Recipes()
	c.Harmonizations()
	c.Catalog()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	optionalAuth := c.Middleware.OptionalAuthMiddleware(c.JWTService)
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", optionalAuth, c.RecipeHandler.CreateRecipe)
		recipes.Post("/create", optionalAuth, c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
	}
}

func (c *Config) Harmonizations() {
	harmonizations := c.App.Group("/api/harmonizations")
	optionalAuth := c.Middleware.OptionalAuthMiddleware(c.JWTService)
	{
		harmonizations.Get("", c.HarmonizationHandler.GetHarmonizations)
		harmonizations.Post("", optionalAuth, c.HarmonizationHandler.CreateHarmonization)
		harmonizations.Post("/create", optionalAuth, c.HarmonizationHandler.CreateHarmonization)
		harmonizations.Get("/:id", c.HarmonizationHandler.GetHarmonization)
	}
}

func (c *Config) Catalog() {
	c.App.Get("/api/nationalities", c.CatalogHandler.GetNationalities)
	c.App.Post("/api/nationalities", c.CatalogHandler.CreateNationality)
	c.App.Get("/api/categories", c.CatalogHandler.GetCategories)
	c.App.Post("/api/categories", c.CatalogHandler.CreateCategory)
}
