package routes

import (
	"github.com/gofiber/fiber/v2"

	"nutricart-backend/internal/api/handlers"
	"nutricart-backend/internal/middleware"
	"nutricart-backend/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	CatalogHandler handlers.CatalogHandler
	CartHandler    handlers.CartHandler
	MealHandler    handlers.MealHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Cart()
	c.Meals()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog", c.Middleware.AuthMiddleware(c.JWTService))

	catalog.Get("", c.CatalogHandler.GetCatalog)
	catalog.Post("/foods", c.CatalogHandler.CreateFood)
	catalog.Post("/favorite", c.CatalogHandler.ToggleFavorite)
	catalog.Get("/:kind/:id", c.CatalogHandler.GetCatalogItem)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))

	cart.Get("", c.CartHandler.GetCart)
	cart.Delete("", c.CartHandler.ClearCart)
	cart.Post("/entries", c.CartHandler.AddEntry)
	cart.Patch("/entries/:id", c.CartHandler.UpdateEntry)
	cart.Delete("/entries/:id", c.CartHandler.RemoveEntry)

	// lifecycle signal from the navigation layer
	cart.Post("/focus", c.CartHandler.ScreenFocus)
	cart.Get("/name-suggestion", c.CartHandler.SuggestName)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))

	meals.Post("", c.MealHandler.LogMeal)
	meals.Get("", c.MealHandler.GetMeals)
	meals.Post("/image", c.MealHandler.UploadMealImage)
	meals.Get("/:id", c.MealHandler.GetMealDetails)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
