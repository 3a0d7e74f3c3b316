package handlers

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
	"github.com/polyglotlc/backend/notifications"
	"github.com/polyglotlc/backend/services"
)

const leadsPerPage = 20

func leadPagination(c *fiber.Ctx) (page, offset int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * leadsPerPage
}

func leadMeta(total int64, page int) fiber.Map {
	return fiber.Map{
		"total":        total,
		"current_page": page,
		"total_pages":  int(math.Ceil(float64(total) / float64(leadsPerPage))),
	}
}

// ListEnrollments returns course enrollment leads, newest first, with an
// optional status filter.
func ListEnrollments(c *fiber.Ctx) error {
	query := database.DB.Model(&models.CourseEnrollment{})

	if status := c.Query("status"); status != "" {
		if !models.EnrollmentStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	page, offset := leadPagination(c)

	var enrollments []models.CourseEnrollment
	if err := query.Preload("Course").Order("created_at desc").
		Offset(offset).Limit(leadsPerPage).Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"data": enrollments, "meta": leadMeta(total, page)})
}

type EnrollmentUpdateRequest struct {
	Status     *models.EnrollmentStatus `json:"status"`
	AdminNotes *string                  `json:"admin_notes"`
}

// UpdateEnrollment changes the triage status and admin notes of a single
// enrollment lead.
func UpdateEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid enrollment ID"})
	}

	var enrollment models.CourseEnrollment
	if err := database.DB.First(&enrollment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	var req EnrollmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Status != nil {
		if !enrollment.Status.CanTransition(*req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		enrollment.Status = *req.Status
	}
	if req.AdminNotes != nil {
		enrollment.AdminNotes = *req.AdminNotes
	}

	if err := database.DB.Save(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update enrollment"})
	}

	return c.JSON(enrollment)
}

type BulkStatusRequest struct {
	IDs    []uuid.UUID `json:"ids" validate:"required,min=1"`
	Status string      `json:"status" validate:"required"`
}

// BulkUpdateEnrollments moves a batch of enrollment leads to one status.
func BulkUpdateEnrollments(c *fiber.Ctx) error {
	var req BulkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status := models.EnrollmentStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	result := database.DB.Model(&models.CourseEnrollment{}).
		Where("id IN ?", req.IDs).
		Update("status", status)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update enrollments"})
	}

	return c.JSON(fiber.Map{"updated": result.RowsAffected})
}

// ListApplications returns teacher application leads with an optional status
// filter.
func ListApplications(c *fiber.Ctx) error {
	query := database.DB.Model(&models.TeacherApplication{})

	if status := c.Query("status"); status != "" {
		if !models.ApplicationStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	page, offset := leadPagination(c)

	var applications []models.TeacherApplication
	if err := query.Preload("Subject").Order("created_at desc").
		Offset(offset).Limit(leadsPerPage).Find(&applications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"data": applications, "meta": leadMeta(total, page)})
}

type ApplicationUpdateRequest struct {
	Status     *models.ApplicationStatus `json:"status"`
	AdminNotes *string                   `json:"admin_notes"`
}

// UpdateApplication changes an application's triage status and admin notes.
// Any move into a non-pending status re-stamps ReviewedAt; moving back to
// pending clears it.
func UpdateApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application ID"})
	}

	var application models.TeacherApplication
	if err := database.DB.First(&application, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	var req ApplicationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Status != nil {
		if !application.Status.CanTransition(*req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		application.Status = *req.Status
		if *req.Status == models.ApplicationPending {
			application.ReviewedAt = nil
		} else {
			now := time.Now()
			application.ReviewedAt = &now
		}
	}
	if req.AdminNotes != nil {
		application.AdminNotes = *req.AdminNotes
	}

	if err := database.DB.Save(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application"})
	}

	if req.Status != nil {
		if subject, body, ok := notifications.ApplicantDecisionMessage(string(*req.Status)); ok {
			go notifications.SendEmail(application.FirstName+" "+application.LastName, application.Email, subject, body)
		}
	}

	return c.JSON(application)
}

// BulkUpdateApplications moves a batch of applications to one status,
// stamping or clearing ReviewedAt the same way single updates do.
func BulkUpdateApplications(c *fiber.Ctx) error {
	var req BulkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	updates := map[string]interface{}{"status": status}
	if status == models.ApplicationPending {
		updates["reviewed_at"] = nil
	} else {
		updates["reviewed_at"] = time.Now()
	}

	result := database.DB.Model(&models.TeacherApplication{}).
		Where("id IN ?", req.IDs).
		Updates(updates)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update applications"})
	}

	if subject, body, ok := notifications.ApplicantDecisionMessage(req.Status); ok {
		var recipients []models.TeacherApplication
		database.DB.Select("first_name", "last_name", "email").
			Where("id IN ?", req.IDs).Find(&recipients)
		for _, app := range recipients {
			go notifications.SendEmail(app.FirstName+" "+app.LastName, app.Email, subject, body)
		}
	}

	return c.JSON(fiber.Map{"updated": result.RowsAffected})
}

type PromoteRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// PromoteApplications turns accepted applications into teacher profiles.
// Applicants who already have a profile with the same name are skipped.
func PromoteApplications(c *fiber.Ctx) error {
	var req PromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := services.PromoteAcceptedApplications(database.DB, req.IDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to promote applications"})
	}

	return c.JSON(fiber.Map{"created": created})
}

// ListContacts returns contact messages with optional status and unread
// filters.
func ListContacts(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Contact{})

	if status := c.Query("status"); status != "" {
		if !models.ContactStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
		}
		query = query.Where("status = ?", status)
	}
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	query.Count(&total)

	page, offset := leadPagination(c)

	var contacts []models.Contact
	if err := query.Order("created_at desc").
		Offset(offset).Limit(leadsPerPage).Find(&contacts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"data": contacts, "meta": leadMeta(total, page)})
}

type ContactUpdateRequest struct {
	Status     *models.ContactStatus `json:"status"`
	IsRead     *bool                 `json:"is_read"`
	AdminNotes *string               `json:"admin_notes"`
}

// UpdateContact changes a contact's status, read flag and notes. Completing
// a contact implies it has been read.
func UpdateContact(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid contact ID"})
	}

	var contact models.Contact
	if err := database.DB.First(&contact, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contact not found"})
	}

	var req ContactUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Status != nil {
		if !contact.Status.CanTransition(*req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		contact.Status = *req.Status
	}
	if req.IsRead != nil {
		contact.IsRead = *req.IsRead
	}
	if contact.Status == models.ContactCompleted {
		contact.IsRead = true
	}
	if req.AdminNotes != nil {
		contact.AdminNotes = *req.AdminNotes
	}

	if err := database.DB.Save(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update contact"})
	}

	return c.JSON(contact)
}

// BulkUpdateContacts moves a batch of contacts to one status. Completing
// marks them read, same as the single update.
func BulkUpdateContacts(c *fiber.Ctx) error {
	var req BulkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status := models.ContactStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	updates := map[string]interface{}{"status": status}
	if status == models.ContactCompleted {
		updates["is_read"] = true
	}

	result := database.DB.Model(&models.Contact{}).
		Where("id IN ?", req.IDs).
		Updates(updates)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update contacts"})
	}

	return c.JSON(fiber.Map{"updated": result.RowsAffected})
}

// GetDashboardBadges returns the untriaged lead counts for the admin
// sidebar. Cached values come from the periodic refresh job; a cache miss
// falls back to live counts.
func GetDashboardBadges(c *fiber.Ctx) error {
	badges := fiber.Map{}
	keys := map[string]string{
		"pending_enrollments":  "badges:pending_enrollments",
		"pending_applications": "badges:pending_applications",
		"new_contacts":         "badges:new_contacts",
	}

	if database.RDB != nil {
		ctx := context.Background()
		allHit := true
		for name, key := range keys {
			val, err := database.RDB.Get(ctx, key).Int64()
			if err != nil {
				allHit = false
				break
			}
			badges[name] = val
		}
		if allHit {
			return c.JSON(badges)
		}
	}

	var pendingEnrollments, pendingApplications, newContacts int64
	database.DB.Model(&models.CourseEnrollment{}).Where("status = ?", models.EnrollmentPending).Count(&pendingEnrollments)
	database.DB.Model(&models.TeacherApplication{}).Where("status = ?", models.ApplicationPending).Count(&pendingApplications)
	database.DB.Model(&models.Contact{}).Where("status = ?", models.ContactNew).Count(&newContacts)

	return c.JSON(fiber.Map{
		"pending_enrollments":  pendingEnrollments,
		"pending_applications": pendingApplications,
		"new_contacts":         newContacts,
	})
}
