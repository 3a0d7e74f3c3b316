package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
	"github.com/polyglotlc/backend/services"
)

type CertificateCreateRequest struct {
	StudentName     string     `json:"student_name" validate:"required,min=3,max=200"`
	StudentPhotoURL *string    `json:"student_photo_url" validate:"omitempty,url"`
	CourseID        *uuid.UUID `json:"course_id" validate:"omitempty,uuid4"`
	TeacherID       *uuid.UUID `json:"teacher_id" validate:"omitempty,uuid4"`
	Score           string     `json:"score"`
	IssueDate       *time.Time `json:"issue_date"`
	IsFeatured      bool       `json:"is_featured"`
	Order           int        `json:"order"`
}

// CreateCertificate issues a certificate with the next number in this
// year's sequence. Two admins issuing at the same moment can race for the
// same number; the loser gets a 409 and retries.
func CreateCertificate(c *fiber.Ctx) error {
	var req CertificateCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	issueDate := time.Now()
	if req.IssueDate != nil {
		issueDate = *req.IssueDate
	}

	number, err := services.NextCertificateNumber(database.DB, issueDate.Year())
	if err != nil {
		if errors.Is(err, services.ErrCertificateSequenceExhausted) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Certificate sequence for this year is exhausted"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to allocate certificate number"})
	}

	certificate := models.Certificate{
		StudentName:       req.StudentName,
		StudentPhotoURL:   req.StudentPhotoURL,
		CourseID:          req.CourseID,
		TeacherID:         req.TeacherID,
		Score:             req.Score,
		CertificateNumber: number,
		IssueDate:         issueDate,
		IsFeatured:        req.IsFeatured,
		Order:             req.Order,
	}

	if err := database.DB.Create(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Certificate number already taken, please retry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create certificate"})
	}

	return c.Status(fiber.StatusCreated).JSON(certificate)
}

type CertificateUpdateRequest struct {
	StudentName     *string    `json:"student_name" validate:"omitempty,min=3,max=200"`
	StudentPhotoURL *string    `json:"student_photo_url"`
	CourseID        *uuid.UUID `json:"course_id"`
	TeacherID       *uuid.UUID `json:"teacher_id"`
	Score           *string    `json:"score"`
	IssueDate       *time.Time `json:"issue_date"`
	IsFeatured      *bool      `json:"is_featured"`
	Order           *int       `json:"order"`
}

// UpdateCertificate edits the mutable fields of a certificate. The number
// itself never changes once issued.
func UpdateCertificate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	var certificate models.Certificate
	if err := database.DB.First(&certificate, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	var req CertificateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.StudentName != nil {
		certificate.StudentName = *req.StudentName
	}
	if req.StudentPhotoURL != nil {
		certificate.StudentPhotoURL = req.StudentPhotoURL
	}
	if req.CourseID != nil {
		certificate.CourseID = req.CourseID
	}
	if req.TeacherID != nil {
		certificate.TeacherID = req.TeacherID
	}
	if req.Score != nil {
		certificate.Score = *req.Score
	}
	if req.IssueDate != nil {
		certificate.IssueDate = *req.IssueDate
	}
	if req.IsFeatured != nil {
		certificate.IsFeatured = *req.IsFeatured
	}
	if req.Order != nil {
		certificate.Order = *req.Order
	}

	if err := database.DB.Save(&certificate).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update certificate"})
	}

	return c.JSON(certificate)
}

// DeleteCertificate removes a certificate record. The number is not
// returned to the pool.
func DeleteCertificate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	result := database.DB.Delete(&models.Certificate{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete certificate"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	return c.JSON(fiber.Map{"message": "Certificate deleted"})
}

// RenderCertificateImage regenerates the printable image for a certificate
// and stores the uploaded URL on the record.
func RenderCertificateImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	var certificate models.Certificate
	if err := database.DB.Preload("Course").Preload("Teacher").
		First(&certificate, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	imageURL, err := services.GenerateCertificateImage(certificate)
	if err != nil {
		log.Printf("🔥 Failed to render certificate %s: %v", certificate.CertificateNumber, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render certificate image"})
	}

	if err := database.DB.Model(&certificate).
		Update("certificate_image_url", imageURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save certificate image URL"})
	}

	certificate.CertificateImageURL = imageURL
	return c.JSON(certificate)
}
