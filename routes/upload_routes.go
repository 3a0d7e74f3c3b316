package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/polyglotlc/backend/handlers"
	"github.com/polyglotlc/backend/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.Protected(), middleware.AdminRequired())

	uploads := api.Group("/uploads")
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
