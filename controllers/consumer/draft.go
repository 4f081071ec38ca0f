package consumer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/redis"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// Drafts live in Redis, one per user. A week of inactivity drops the draft.
const draftTTL = 7 * 24 * time.Hour

func draftKey(userID string) string {
	return fmt.Sprintf("draft:%s", userID)
}

func loadDraft(userID string) (*models.BookingDraft, error) {
	data, err := redis.Client.Get(redis.Ctx, draftKey(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return models.NewBookingDraft(), nil
	}
	if err != nil {
		return nil, err
	}
	draft := models.NewBookingDraft()
	if err := json.Unmarshal(data, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func saveDraft(userID string, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return redis.Client.Set(redis.Ctx, draftKey(userID), data, draftTTL).Err()
}

func clearDraft(userID string) error {
	return redis.Client.Del(redis.Ctx, draftKey(userID)).Err()
}

func draftResponse(draft *models.BookingDraft) fiber.Map {
	return fiber.Map{
		"draft":  draft,
		"totals": utils.BuildBookingTotals(draft.Items()),
	}
}

// GetDraft returns the user's current draft with recomputed totals
func GetDraft(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	draft, err := loadDraft(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load draft",
			Error:   err.Error(),
		})
	}
	return c.JSON(draftResponse(draft))
}

// AddDraftItem selects a treatment with a quantity. Selecting a treatment
// already in the draft updates its line in place.
func AddDraftItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var body struct {
		TreatmentID string `json:"treatment_id"`
		Quantity    int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	var treatment models.Treatment
	if err := db.DB.First(&treatment, "id = ?", body.TreatmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Treatment not found",
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
	draft.SelectTreatment(treatment, body.Quantity)

	if err := saveDraft(userID, draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save draft",
			Error:   err.Error(),
		})
	}
	return c.JSON(draftResponse(draft))
}

// RemoveDraftItem drops a treatment line from the draft
func RemoveDraftItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	treatmentID := c.Params("treatmentID")

	draft, err := loadDraft(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load draft",
			Error:   err.Error(),
		})
	}
	draft.RemoveTreatment(treatmentID)

	if err := saveDraft(userID, draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save draft",
			Error:   err.Error(),
		})
	}
	return c.JSON(draftResponse(draft))
}

// UpdateDraft patches operator choice, schedule, address, or payment mode
func UpdateDraft(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	user := c.Locals("user").(models.User)

	var body struct {
		OperatorID  *string    `json:"operator_id"`
		AutoAssign  *bool      `json:"auto_assign"`
		ScheduledAt *time.Time `json:"scheduled_at"`
		AddressID   *string    `json:"address_id"`
		PaymentMode *string    `json:"payment_mode"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
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

	if body.OperatorID != nil {
		var profile models.OperatorProfile
		if err := db.DB.First(&profile, "id = ?", *body.OperatorID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Operator not found",
				Error:   err.Error(),
			})
		}
		draft.OperatorID = profile.ID
		draft.AutoAssign = false
	}
	if body.AutoAssign != nil && *body.AutoAssign {
		draft.AutoAssign = true
		draft.OperatorID = ""
	}
	if body.ScheduledAt != nil {
		scheduled := *body.ScheduledAt
		draft.ScheduledAt = &scheduled
	}
	if body.AddressID != nil {
		address, ok := findAddress(user, *body.AddressID)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Address not found in address book",
			})
		}
		draft.Address = &address
	}
	if body.PaymentMode != nil {
		mode := models.PaymentMode(*body.PaymentMode)
		switch mode {
		case models.ModeDepositBalanceApp, models.ModeDepositBalanceCash, models.ModeFullApp:
			draft.PaymentMode = mode
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown payment mode",
			})
		}
	}

	if err := saveDraft(userID, draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save draft",
			Error:   err.Error(),
		})
	}
	return c.JSON(draftResponse(draft))
}

// ResetDraft throws away the current draft
func ResetDraft(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := clearDraft(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reset draft",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetDraftSlots resolves the bookable slots for a day given the draft's
// total duration. With a bound operator the grid is narrowed to their
// availability windows; in auto-assign mode the full grid is offered and
// operator choice is deferred to booking creation. Empty buckets mean
// nothing to offer on that day.
func GetDraftSlots(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	day := c.Query("day")
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter day must be YYYY-MM-DD",
		})
	}

	draft, err := loadDraft(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load draft",
			Error:   err.Error(),
		})
	}
	totals := utils.BuildBookingTotals(draft.Items())

	operatorID := c.Query("operator_id", draft.OperatorID)
	slots := utils.BuildDaySlots()

	if operatorID != "" {
		windows, err := db.NewAvailabilityRepo(db.DB).Get(operatorID, day)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch availability",
				Error:   err.Error(),
			})
		}
		slots = utils.FilterSlotsByWindows(slots, windows, totals.TotalDurationMinutes)
	}

	return c.JSON(fiber.Map{
		"day":    day,
		"groups": utils.GroupSlots(slots),
	})
}

func findAddress(user models.User, addressID string) (models.Address, bool) {
	for _, address := range user.Addresses {
		if address.ID == addressID {
			return address, true
		}
	}
	return models.Address{}, false
}
