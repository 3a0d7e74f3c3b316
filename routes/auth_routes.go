package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/polyglotlc/backend/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
}
