package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
	"github.com/polyglotlc/backend/notifications"
	"github.com/polyglotlc/backend/websocket"
)

const teachersPerPage = 12

// ListTeachers returns active teachers with search, specialization filter,
// and pagination.
func ListTeachers(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Teacher{}).Where("teachers.is_active = ?", true)
	countQuery := database.DB.Model(&models.Teacher{}).Where("teachers.is_active = ?", true)

	if search := c.Query("search"); search != "" {
		searchTerm := "%" + search + "%"
		cond := "first_name ILIKE ? OR last_name ILIKE ? OR education ILIKE ?"
		query = query.Where(cond, searchTerm, searchTerm, searchTerm)
		countQuery = countQuery.Where(cond, searchTerm, searchTerm, searchTerm)
	}

	if subjectSlug := c.Query("subject"); subjectSlug != "" {
		join := "JOIN teacher_specializations ts ON ts.teacher_id = teachers.id " +
			"JOIN subjects ON subjects.id = ts.subject_id AND subjects.slug = ?"
		query = query.Joins(join, subjectSlug)
		countQuery = countQuery.Joins(join, subjectSlug)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * teachersPerPage

	var total int64
	countQuery.Count(&total)

	var teachers []models.Teacher
	if err := query.Preload("Specializations").
		Order("is_featured desc, \"order\", first_name").
		Offset(offset).Limit(teachersPerPage).
		Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var subjects []models.Subject
	database.DB.Where("is_active = ?", true).Order("\"order\", name").Find(&subjects)

	return c.JSON(fiber.Map{
		"data":     teachers,
		"subjects": subjects,
		"meta": fiber.Map{
			"total":        total,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(teachersPerPage))),
		},
	})
}

// GetTeacher serves a teacher profile with the courses they teach.
func GetTeacher(c *fiber.Ctx) error {
	var teacher models.Teacher
	err := database.DB.Preload("Specializations").
		Where("slug = ? AND is_active = ?", c.Params("slug"), true).
		First(&teacher).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	var courses []models.Course
	database.DB.Joins("JOIN course_teachers ct ON ct.course_id = courses.id AND ct.teacher_id = ?", teacher.ID).
		Where("courses.is_active = ?", true).
		Limit(6).Find(&courses)

	return c.JSON(fiber.Map{
		"teacher": teacher,
		"courses": courses,
	})
}

type TeacherApplicationRequest struct {
	FirstName       string  `json:"first_name" validate:"required,max=100"`
	LastName        string  `json:"last_name" validate:"required,max=100"`
	Phone           string  `json:"phone" validate:"required,min=7,max=20"`
	Email           string  `json:"email" validate:"required,email"`
	Education       string  `json:"education" validate:"required,max=200"`
	ExperienceYears int     `json:"experience_years" validate:"gte=0"`
	SubjectID       *string `json:"subject_id,omitempty" validate:"omitempty,uuid"`
	CvFileURL       string  `json:"cv_file_url" validate:"required,url"`
	CertificatesURL *string `json:"certificates_url,omitempty" validate:"omitempty,url"`
	PhotoURL        *string `json:"photo_url,omitempty" validate:"omitempty,url"`
	AboutMe         string  `json:"about_me" validate:"required"`
	WhyTeach        string  `json:"why_teach" validate:"required"`
}

// ApplyToBeATeacher records a teacher application lead. File fields carry
// references into the upload store; their contents are never inspected here.
func ApplyToBeATeacher(c *fiber.Ctx) error {
	var req TeacherApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	application := models.TeacherApplication{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Email:           req.Email,
		Education:       req.Education,
		ExperienceYears: req.ExperienceYears,
		CvFileURL:       req.CvFileURL,
		CertificatesURL: req.CertificatesURL,
		PhotoURL:        req.PhotoURL,
		AboutMe:         req.AboutMe,
		WhyTeach:        req.WhyTeach,
	}

	if req.SubjectID != nil {
		subjectID, err := uuid.Parse(*req.SubjectID)
		if err == nil {
			var subject models.Subject
			if database.DB.Where("id = ?", subjectID).First(&subject).Error == nil {
				application.SubjectID = &subjectID
			}
		}
	}

	if err := database.DB.Create(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit application"})
	}

	go notifications.NotifyAdminOfLead("teacher application", req.FirstName+" "+req.LastName)
	websocket.NotifyLead("application", application.ID, req.FirstName+" "+req.LastName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your application has been submitted! We will contact you shortly.",
		"id":      application.ID,
	})
}
