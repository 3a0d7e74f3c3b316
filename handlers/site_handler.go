package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
	"github.com/polyglotlc/backend/services"
)

// Settings is the process-wide settings store, wired at startup.
var Settings *services.SettingsStore

func InitSettings(store *services.SettingsStore) {
	Settings = store
}

// siteSettings resolves the singleton settings through the cache; page
// handlers tolerate a missing row by embedding zero-valued settings.
func siteSettings(c *fiber.Ctx) models.SiteSettings {
	settings, err := Settings.Get(c.Context())
	if err != nil {
		return models.SiteSettings{}
	}
	return settings
}

// Home assembles the landing page data.
func Home(c *fiber.Ctx) error {
	var popularCourses []models.Course
	database.DB.Preload("Subject").Preload("Teachers").
		Where("is_active = ? AND is_popular = ?", true, true).
		Limit(6).Find(&popularCourses)

	var featuredTeachers []models.Teacher
	database.DB.Preload("Specializations").
		Where("is_active = ? AND is_featured = ?", true, true).
		Limit(4).Find(&featuredTeachers)

	var testimonials []models.Testimonial
	database.DB.Where("is_approved = ? AND is_featured = ?", true, true).
		Limit(6).Find(&testimonials)

	var latestNews []models.News
	database.DB.Where("is_published = ?", true).
		Order("publish_date desc").Limit(3).Find(&latestNews)

	return c.JSON(fiber.Map{
		"popular_courses":   popularCourses,
		"featured_teachers": featuredTeachers,
		"testimonials":      testimonials,
		"latest_news":       latestNews,
		"settings":          siteSettings(c),
	})
}

// About serves the about page counters and featured testimonials.
func About(c *fiber.Ctx) error {
	var teachersCount, coursesCount int64
	database.DB.Model(&models.Teacher{}).Where("is_active = ?", true).Count(&teachersCount)
	database.DB.Model(&models.Course{}).Where("is_active = ?", true).Count(&coursesCount)

	var testimonials []models.Testimonial
	database.DB.Where("is_approved = ? AND is_featured = ?", true, true).
		Limit(4).Find(&testimonials)

	settings := siteSettings(c)

	return c.JSON(fiber.Map{
		"teachers_count": teachersCount,
		"courses_count":  coursesCount,
		"students_count": settings.StudentsCount,
		"testimonials":   testimonials,
		"settings":       settings,
	})
}

// GetFAQ returns active questions grouped under their categories.
func GetFAQ(c *fiber.Ctx) error {
	var categories []models.FAQCategory
	database.DB.Preload("FAQs", "is_active = ?", true).
		Order("\"order\"").Find(&categories)

	var uncategorized []models.FAQ
	database.DB.Where("is_active = ? AND category_id IS NULL", true).
		Order("\"order\"").Find(&uncategorized)

	return c.JSON(fiber.Map{
		"categories":    categories,
		"uncategorized": uncategorized,
		"settings":      siteSettings(c),
	})
}

// GetPublicSettings exposes the cached site settings for the frontend shell.
func GetPublicSettings(c *fiber.Ctx) error {
	settings, err := Settings.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
	}
	return c.JSON(settings)
}

// Search runs the global top-5 search over courses, teachers, and news.
func Search(c *fiber.Ctx) error {
	query := c.Query("q")

	courses := []models.Course{}
	teachers := []models.Teacher{}
	news := []models.News{}

	if query != "" {
		searchTerm := "%" + query + "%"

		database.DB.Where("is_active = ? AND (title ILIKE ? OR short_description ILIKE ?)", true, searchTerm, searchTerm).
			Limit(5).Find(&courses)

		database.DB.Where("is_active = ? AND (first_name ILIKE ? OR last_name ILIKE ?)", true, searchTerm, searchTerm).
			Limit(5).Find(&teachers)

		database.DB.Where("is_published = ? AND (title ILIKE ? OR short_description ILIKE ?)", true, searchTerm, searchTerm).
			Limit(5).Find(&news)
	}

	return c.JSON(fiber.Map{
		"query":    query,
		"courses":  courses,
		"teachers": teachers,
		"news":     news,
	})
}
