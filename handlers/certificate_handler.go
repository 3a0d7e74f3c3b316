package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
)

const certificatesPerPage = 12

// ListCertificates shows issued certificates with course filter and search
// over student name or certificate number.
func ListCertificates(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Certificate{})
	countQuery := database.DB.Model(&models.Certificate{})

	if courseSlug := c.Query("course"); courseSlug != "" {
		var course models.Course
		if err := database.DB.Where("slug = ?", courseSlug).First(&course).Error; err == nil {
			query = query.Where("course_id = ?", course.ID)
			countQuery = countQuery.Where("course_id = ?", course.ID)
		}
	}

	if search := c.Query("search"); search != "" {
		searchTerm := "%" + search + "%"
		cond := "student_name ILIKE ? OR certificate_number ILIKE ?"
		query = query.Where(cond, searchTerm, searchTerm)
		countQuery = countQuery.Where(cond, searchTerm, searchTerm)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * certificatesPerPage

	var total int64
	countQuery.Count(&total)

	var certificates []models.Certificate
	if err := query.Preload("Course").Preload("Teacher").
		Order("issue_date desc").Offset(offset).Limit(certificatesPerPage).
		Find(&certificates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"data": certificates,
		"meta": fiber.Map{
			"total":        total,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(certificatesPerPage))),
		},
	})
}

// VerifyCertificate looks a certificate up by its exact number. A miss is a
// benign outcome for the visitor, not a server error.
func VerifyCertificate(c *fiber.Ctx) error {
	number := c.Query("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Certificate number is required"})
	}

	var certificate models.Certificate
	err := database.DB.Preload("Course").Preload("Teacher").
		Where("certificate_number = ?", number).
		First(&certificate).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"found":   false,
			"message": "Certificate not found. Please check the number and try again.",
		})
	}

	return c.JSON(fiber.Map{
		"found":       true,
		"certificate": certificate,
	})
}
