package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/polyglotlc/backend/handlers"
	"github.com/polyglotlc/backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/badges", handlers.GetDashboardBadges)

	enrollments := admin.Group("/enrollments")
	enrollments.Get("", handlers.ListEnrollments)
	enrollments.Put("/bulk-status", handlers.BulkUpdateEnrollments)
	enrollments.Put("/:id", handlers.UpdateEnrollment)

	applications := admin.Group("/applications")
	applications.Get("", handlers.ListApplications)
	applications.Put("/bulk-status", handlers.BulkUpdateApplications)
	applications.Post("/promote", handlers.PromoteApplications)
	applications.Put("/:id", handlers.UpdateApplication)

	contacts := admin.Group("/contacts")
	contacts.Get("", handlers.ListContacts)
	contacts.Put("/bulk-status", handlers.BulkUpdateContacts)
	contacts.Put("/:id", handlers.UpdateContact)

	subjects := admin.Group("/subjects")
	subjects.Get("", handlers.ListAllSubjects)
	subjects.Post("", handlers.CreateSubject)
	subjects.Put("/:id", handlers.UpdateSubject)
	subjects.Delete("/:id", handlers.DeleteSubject)

	teachers := admin.Group("/teachers")
	teachers.Get("", handlers.ListAllTeachers)
	teachers.Post("", handlers.CreateTeacher)
	teachers.Put("/:id", handlers.UpdateTeacher)
	teachers.Delete("/:id", handlers.DeleteTeacher)

	courses := admin.Group("/courses")
	courses.Get("", handlers.ListAllCourses)
	courses.Post("", handlers.CreateCourse)
	courses.Put("/:id", handlers.UpdateCourse)
	courses.Delete("/:id", handlers.DeleteCourse)

	news := admin.Group("/news")
	news.Get("", handlers.ListAllNews)
	news.Post("", handlers.CreateNews)
	news.Put("/:id", handlers.UpdateNews)
	news.Delete("/:id", handlers.DeleteNews)
	news.Post("/:id/gallery", handlers.AddNewsGalleryImages)

	galleryCategories := admin.Group("/gallery-categories")
	galleryCategories.Post("", handlers.CreateGalleryCategory)
	galleryCategories.Put("/:id", handlers.UpdateGalleryCategory)
	galleryCategories.Delete("/:id", handlers.DeleteGalleryCategory)

	gallery := admin.Group("/gallery")
	gallery.Post("", handlers.CreateGalleryImage)
	gallery.Put("/:id", handlers.UpdateGalleryImage)
	gallery.Delete("/:id", handlers.DeleteGalleryImage)

	testimonials := admin.Group("/testimonials")
	testimonials.Get("", handlers.ListAllTestimonials)
	testimonials.Post("", handlers.CreateTestimonial)
	testimonials.Put("/:id", handlers.UpdateTestimonial)
	testimonials.Delete("/:id", handlers.DeleteTestimonial)

	faqCategories := admin.Group("/faq-categories")
	faqCategories.Post("", handlers.CreateFAQCategory)
	faqCategories.Put("/:id", handlers.UpdateFAQCategory)
	faqCategories.Delete("/:id", handlers.DeleteFAQCategory)

	faqs := admin.Group("/faqs")
	faqs.Post("", handlers.CreateFAQ)
	faqs.Put("/:id", handlers.UpdateFAQ)
	faqs.Delete("/:id", handlers.DeleteFAQ)

	certificates := admin.Group("/certificates")
	certificates.Get("", handlers.ListCertificates)
	certificates.Post("", handlers.CreateCertificate)
	certificates.Put("/:id", handlers.UpdateCertificate)
	certificates.Delete("/:id", handlers.DeleteCertificate)
	certificates.Post("/:id/render", handlers.RenderCertificateImage)

	admin.Get("/settings", handlers.GetAdminSettings)
	admin.Put("/settings", handlers.UpdateAdminSettings)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
