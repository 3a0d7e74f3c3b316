package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
)

const newsPerPage = 9

// ListNews returns published news with search and pagination, plus the
// featured strip.
func ListNews(c *fiber.Ctx) error {
	query := database.DB.Model(&models.News{}).Where("is_published = ?", true)
	countQuery := database.DB.Model(&models.News{}).Where("is_published = ?", true)

	if search := c.Query("search"); search != "" {
		searchTerm := "%" + search + "%"
		cond := "title ILIKE ? OR short_description ILIKE ? OR content ILIKE ?"
		query = query.Where(cond, searchTerm, searchTerm, searchTerm)
		countQuery = countQuery.Where(cond, searchTerm, searchTerm, searchTerm)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * newsPerPage

	var total int64
	countQuery.Count(&total)

	var news []models.News
	if err := query.Order("publish_date desc").Offset(offset).Limit(newsPerPage).Find(&news).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var featured []models.News
	database.DB.Where("is_published = ? AND is_featured = ?", true, true).
		Order("publish_date desc").Limit(3).Find(&featured)

	return c.JSON(fiber.Map{
		"data":     news,
		"featured": featured,
		"meta": fiber.Map{
			"total":        total,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(newsPerPage))),
		},
	})
}

// GetNews serves one published article and bumps its view counter.
func GetNews(c *fiber.Ctx) error {
	var news models.News
	err := database.DB.Preload("GalleryImages").Preload("Author").
		Where("slug = ? AND is_published = ?", c.Params("slug"), true).
		First(&news).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "News not found"})
	}

	database.DB.Model(&news).UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	news.ViewsCount++

	var related []models.News
	database.DB.Where("is_published = ? AND id <> ?", true, news.ID).
		Order("publish_date desc").Limit(3).Find(&related)

	return c.JSON(fiber.Map{
		"news":    news,
		"related": related,
	})
}
