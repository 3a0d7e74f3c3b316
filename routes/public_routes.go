package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/polyglotlc/backend/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/home", handlers.Home)
	api.Get("/about", handlers.About)
	api.Get("/faq", handlers.GetFAQ)
	api.Get("/settings", handlers.GetPublicSettings)
	api.Get("/search", handlers.Search)

	courses := api.Group("/courses")
	courses.Get("", handlers.ListCourses)
	courses.Get("/:slug", handlers.GetCourse)
	courses.Post("/:slug/enroll", handlers.EnrollInCourse)

	teachers := api.Group("/teachers")
	teachers.Get("", handlers.ListTeachers)
	teachers.Get("/:slug", handlers.GetTeacher)

	api.Post("/teacher-applications", handlers.ApplyToBeATeacher)

	news := api.Group("/news")
	news.Get("", handlers.ListNews)
	news.Get("/:slug", handlers.GetNews)

	api.Get("/gallery", handlers.GetGallery)

	api.Post("/contact", handlers.SubmitContact)

	certificates := api.Group("/certificates")
	certificates.Get("", handlers.ListCertificates)
	certificates.Get("/verify", handlers.VerifyCertificate)
}
