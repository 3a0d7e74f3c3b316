package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
	"github.com/polyglotlc/backend/notifications"
	"github.com/polyglotlc/backend/websocket"
)

const coursesPerPage = 12

// ListCourses returns active courses with search, subject/level filters,
// sorting, and pagination.
func ListCourses(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Course{}).Where("is_active = ?", true)
	countQuery := database.DB.Model(&models.Course{}).Where("is_active = ?", true)

	if search := c.Query("search"); search != "" {
		searchTerm := "%" + search + "%"
		cond := "title ILIKE ? OR short_description ILIKE ? OR full_description ILIKE ?"
		query = query.Where(cond, searchTerm, searchTerm, searchTerm)
		countQuery = countQuery.Where(cond, searchTerm, searchTerm, searchTerm)
	}

	if subjectSlug := c.Query("subject"); subjectSlug != "" {
		var subject models.Subject
		if err := database.DB.Where("slug = ?", subjectSlug).First(&subject).Error; err == nil {
			query = query.Where("subject_id = ?", subject.ID)
			countQuery = countQuery.Where("subject_id = ?", subject.ID)
		}
	}

	if level := c.Query("level"); level != "" {
		if !models.CourseLevel(level).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown course level"})
		}
		query = query.Where("level = ?", level)
		countQuery = countQuery.Where("level = ?", level)
	}

	order := "created_at desc"
	switch c.Query("sort") {
	case "price":
		order = "price asc"
	case "-price":
		order = "price desc"
	case "title":
		order = "title asc"
	case "popular":
		order = "enrollments_count desc"
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * coursesPerPage

	var total int64
	countQuery.Count(&total)

	var courses []models.Course
	if err := query.Preload("Subject").Preload("Teachers").
		Order(order).Offset(offset).Limit(coursesPerPage).
		Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var subjects []models.Subject
	database.DB.Where("is_active = ?", true).Order("\"order\", name").Find(&subjects)

	return c.JSON(fiber.Map{
		"data":     courses,
		"subjects": subjects,
		"meta": fiber.Map{
			"total":        total,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(coursesPerPage))),
		},
	})
}

// GetCourse serves the course detail page data and bumps the view counter.
// The increment is a plain read-modify-write; lost updates under concurrency
// are accepted.
func GetCourse(c *fiber.Ctx) error {
	var course models.Course
	err := database.DB.Preload("Subject").Preload("Teachers").
		Where("slug = ? AND is_active = ?", c.Params("slug"), true).
		First(&course).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	database.DB.Model(&course).UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	course.ViewsCount++

	var related []models.Course
	database.DB.Where("subject_id = ? AND is_active = ? AND id <> ?", course.SubjectID, true, course.ID).
		Limit(3).Find(&related)

	var testimonials []models.Testimonial
	database.DB.Where("course_id = ? AND is_approved = ?", course.ID, true).
		Limit(6).Find(&testimonials)

	return c.JSON(fiber.Map{
		"course":          course,
		"related_courses": related,
		"testimonials":    testimonials,
	})
}

type EnrollRequest struct {
	FullName string  `json:"full_name" validate:"required,min=3,max=200"`
	Phone    string  `json:"phone" validate:"required,min=7,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Message  string  `json:"message,omitempty"`
}

// EnrollInCourse records an enrollment lead for the course and bumps the
// course's increment-only enrollment counter.
func EnrollInCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.Where("slug = ? AND is_active = ?", c.Params("slug"), true).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	enrollment := models.CourseEnrollment{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		CourseID: course.ID,
		Message:  req.Message,
	}

	if err := database.DB.Create(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit enrollment"})
	}

	database.DB.Model(&course).UpdateColumn("enrollments_count", gorm.Expr("enrollments_count + 1"))

	go notifications.NotifyAdminOfLead("enrollment", req.FullName+" — "+course.Title)
	websocket.NotifyLead("enrollment", enrollment.ID, req.FullName+" — "+course.Title)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your request has been received! We will contact you shortly.",
		"id":      enrollment.ID,
	})
}
