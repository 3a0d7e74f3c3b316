package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetAdminSettings returns the settings singleton for the admin form.
func GetAdminSettings(c *fiber.Ctx) error {
	settings, err := Settings.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
	}
	return c.JSON(settings)
}

// UpdateAdminSettings overwrites the settings singleton. Whatever identity
// the payload carries, the write lands on the one row.
func UpdateAdminSettings(c *fiber.Ctx) error {
	settings, err := Settings.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
	}

	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := Settings.Update(c.Context(), &settings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save settings"})
	}

	return c.JSON(settings)
}
