package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
)

const galleryPerPage = 24

// GetGallery lists gallery images, optionally filtered by category slug.
func GetGallery(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Gallery{})
	countQuery := database.DB.Model(&models.Gallery{})

	if categorySlug := c.Query("category"); categorySlug != "" {
		var category models.GalleryCategory
		if err := database.DB.Where("slug = ?", categorySlug).First(&category).Error; err == nil {
			query = query.Where("category_id = ?", category.ID)
			countQuery = countQuery.Where("category_id = ?", category.ID)
		}
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * galleryPerPage

	var total int64
	countQuery.Count(&total)

	var images []models.Gallery
	if err := query.Preload("Category").
		Order("created_at desc").Offset(offset).Limit(galleryPerPage).
		Find(&images).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var categories []models.GalleryCategory
	database.DB.Order("\"order\", name").Find(&categories)

	return c.JSON(fiber.Map{
		"data":       images,
		"categories": categories,
		"meta": fiber.Map{
			"total":        total,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(galleryPerPage))),
		},
	})
}
