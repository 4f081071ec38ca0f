package consumer

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// ListOperators returns the operators the user can book: in their city when
// they have one, matching the category filter when given, and able to
// fulfil every treatment currently in the draft.
func ListOperators(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	user := c.Locals("user").(models.User)

	query := db.DB.Preload("OfferedTreatments").Preload("Categories")
	if user.CityID != nil {
		query = query.Where("city_id = ?", *user.CityID)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.
			Joins("JOIN operator_categories ON operator_categories.operator_profile_id = operator_profiles.id").
			Where("operator_categories.category_id = ?", categoryID)
	}

	var profiles []models.OperatorProfile
	if err := query.Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch operators",
			Error:   err.Error(),
		})
	}

	draft, err := loadDraft(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load draft",
			Error:   err.Error(),
		})
	}
	required := utils.RequiredTreatmentIDs(draft.Items())

	eligible := make([]models.OperatorProfile, 0, len(profiles))
	for _, profile := range profiles {
		if profile.OffersAll(required) {
			eligible = append(eligible, profile)
		}
	}

	return c.JSON(fiber.Map{
		"operators": eligible,
		"count":     len(eligible),
	})
}

// GetOperatorDetails returns a single operator with offerings and schedule
func GetOperatorDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var profile models.OperatorProfile
	if err := db.DB.Preload("OfferedTreatments").Preload("Categories").
		First(&profile, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Operator not found",
			Error:   err.Error(),
		})
	}

	windows, err := db.NewAvailabilityRepo(db.DB).ListByOperator(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"operator":     profile,
		"availability": windows,
	})
}

// ListOperatorReviews returns the reviews left for an operator
func ListOperatorReviews(c *fiber.Ctx) error {
	id := c.Params("id")

	var reviews []models.Review
	if err := db.DB.Where("operator_id = ?", id).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// CreateReview records feedback for an operator, optionally tied to one of
// the user's bookings
func CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var body struct {
		OperatorID string  `json:"operator_id"`
		BookingID  *string `json:"booking_id"`
		Rating     float64 `json:"rating"`
		Comment    string  `json:"comment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var profile models.OperatorProfile
	if err := db.DB.First(&profile, "id = ?", body.OperatorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Operator not found",
			Error:   err.Error(),
		})
	}

	if body.BookingID != nil {
		var booking models.Booking
		if err := db.DB.First(&booking, "id = ? AND user_id = ?", *body.BookingID, userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
				Error:   err.Error(),
			})
		}
	}

	review := models.Review{
		ID:         utils.GenerateID("review"),
		OperatorID: profile.ID,
		UserID:     userID,
		BookingID:  body.BookingID,
		Rating:     body.Rating,
		Comment:    body.Comment,
		CreatedAt:  time.Now(),
	}
	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create review",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
