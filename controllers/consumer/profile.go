package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// GetUserProfile returns the session user with their address book
func GetUserProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	return c.JSON(user)
}

// UpdateUserProfile patches name, contact, and location fields
func UpdateUserProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
		Country   *string `json:"country"`
		CityID    *string `json:"city_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if body.FirstName != nil {
		user.FirstName = *body.FirstName
	}
	if body.LastName != nil {
		user.LastName = *body.LastName
	}
	if body.Phone != nil {
		user.Phone = *body.Phone
	}
	if body.Country != nil {
		user.Country = body.Country
	}
	if body.CityID != nil {
		var city models.City
		if err := db.DB.First(&city, "id = ?", *body.CityID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "City not found",
				Error:   err.Error(),
			})
		}
		user.CityID = body.CityID
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update profile",
			Error:   err.Error(),
		})
	}

	// Keep the operator profile's display name in sync when one exists.
	db.DB.Model(&models.OperatorProfile{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		})

	return c.JSON(user)
}

// AddAddress appends an address to the user's address book
func AddAddress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var body struct {
		Street string `json:"street"`
		Number string `json:"number"`
		Zip    string `json:"zip"`
		City   string `json:"city"`
		Notes  string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if body.Street == "" || body.City == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Street and city are required",
		})
	}

	address := models.Address{
		ID:     utils.GenerateID("address"),
		UserID: userID,
		Street: body.Street,
		Number: body.Number,
		Zip:    body.Zip,
		City:   body.City,
		Notes:  body.Notes,
	}
	if err := db.DB.Create(&address).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add address",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// DeleteAddress removes an address from the user's address book
func DeleteAddress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	id := c.Params("id")

	result := db.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete address",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Address not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
