package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
	"github.com/polyglotlc/backend/notifications"
	"github.com/polyglotlc/backend/websocket"
)

type ContactRequest struct {
	FullName string  `json:"full_name" validate:"required,min=3,max=200"`
	Phone    string  `json:"phone" validate:"required,min=7,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Subject  string  `json:"subject,omitempty" validate:"max=200"`
	Message  string  `json:"message" validate:"required"`
}

// SubmitContact records a contact-page message as a new lead.
func SubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	contact := models.Contact{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
	}

	if err := database.DB.Create(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit message"})
	}

	go notifications.NotifyAdminOfLead("contact message", req.FullName+" — "+req.Phone)
	websocket.NotifyLead("contact", contact.ID, req.FullName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your message has been sent! We will reply shortly.",
		"id":      contact.ID,
	})
}
