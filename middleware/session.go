package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
)

// RequireUser resolves the calling user from the X-User-ID header set by the
// host platform's gateway. Authentication itself happens upstream; this
// middleware only loads the session user for handlers.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing X-User-ID header",
			})
		}

		var user models.User
		if err := db.DB.Preload("Addresses").First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unknown user",
			})
		}

		c.Locals("userID", user.ID)
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireOperator loads the operator profile belonging to the session user.
// Runs after RequireUser.
func RequireOperator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User ID not found in context",
			})
		}

		var profile models.OperatorProfile
		if err := db.DB.Preload("OfferedTreatments").
			First(&profile, "user_id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "No operator profile for this user",
			})
		}

		c.Locals("operatorProfile", profile)
		return c.Next()
	}
}
