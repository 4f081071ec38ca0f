package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// CreateGiftCard issues a gift card with a generated redemption code
func CreateGiftCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var body struct {
		Amount         float64 `json:"amount"`
		RecipientEmail string  `json:"recipient_email"`
		Message        string  `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if body.Amount <= 0 || body.RecipientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Amount and recipient email are required",
		})
	}

	giftCard := models.GiftCard{
		ID:             utils.GenerateID("giftcard"),
		UserID:         userID,
		Amount:         body.Amount,
		RecipientEmail: body.RecipientEmail,
		Message:        body.Message,
		Code:           utils.GenerateCode(),
		CreatedAt:      time.Now(),
	}
	if err := db.DB.Create(&giftCard).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create gift card",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(giftCard)
}

// ListGiftCards returns the gift cards purchased by the session user
func ListGiftCards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var giftCards []models.GiftCard
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&giftCards).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch gift cards",
			Error:   err.Error(),
		})
	}
	return c.JSON(giftCards)
}
