package consumer

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// CreateBooking turns the user's draft into a persisted booking. The draft
// must carry at least one item, a schedule, and an address; otherwise
// nothing is written. When no operator is pinned, the best eligible
// operator in the user's city is auto-assigned; finding none leaves the
// booking unassigned rather than failing.
func CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	user := c.Locals("user").(models.User)

	draft, err := loadDraft(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load draft",
			Error:   err.Error(),
		})
	}
	if !draft.ReadyForCheckout() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Draft is not ready: items, schedule and address are required",
		})
	}

	items := draft.Items()
	totals := utils.BuildBookingTotals(items)

	var operatorID *string
	if draft.OperatorID != "" {
		operatorID = &draft.OperatorID
	} else if user.CityID != nil {
		required := utils.RequiredTreatmentIDs(items)

		var profiles []models.OperatorProfile
		if err := db.DB.Preload("OfferedTreatments").
			Where("city_id = ?", *user.CityID).
			Find(&profiles).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch operators",
				Error:   err.Error(),
			})
		}

		eligible := make([]models.OperatorProfile, 0, len(profiles))
		for _, profile := range profiles {
			if profile.OffersAll(required) {
				eligible = append(eligible, profile)
			}
		}
		if best, ok := utils.PickOperator(eligible); ok {
			operatorID = &best.ID
		}
	}

	now := time.Now()
	booking := models.Booking{
		ID:                   utils.GenerateID("booking"),
		UserID:               userID,
		OperatorID:           operatorID,
		Items:                items,
		TotalPrice:           totals.TotalPrice,
		TotalDurationMinutes: totals.TotalDurationMinutes,
		ScheduledAt:          *draft.ScheduledAt,
		Address:              *draft.Address,
		Status:               models.StatusPendingPayment,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	// The booking exists either way; a stale draft expires on its own.
	_ = clearDraft(userID)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ListBookings returns the session user's bookings, newest first
func ListBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var bookings []models.Booking
	if err := db.DB.Preload("Items").Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns one of the session user's bookings by ID
func GetBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.Preload("Items").Preload("Payment").
		First(&booking, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// RecordPayment computes the deposit/balance split server-side and attaches
// the payment to the booking. A paid payment confirms the booking; a
// pending or failed one is stored without advancing the status.
func RecordPayment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	id := c.Params("id")

	var body struct {
		Mode   string `json:"mode"`
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	mode := models.PaymentMode(body.Mode)
	switch mode {
	case models.ModeDepositBalanceApp, models.ModeDepositBalanceCash, models.ModeFullApp:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown payment mode",
		})
	}
	status := models.PaymentStatus(body.Status)
	switch status {
	case models.PaymentPending, models.PaymentPaid, models.PaymentFailed:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown payment status",
		})
	}

	var booking models.Booking
	if err := db.DB.Preload("Payment").
		First(&booking, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	now := time.Now()
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if booking.Payment != nil {
			// Amounts are frozen once recorded; only the status moves.
			booking.Payment.Status = status
			booking.Payment.UpdatedAt = now
			if err := tx.Save(booking.Payment).Error; err != nil {
				return err
			}
			booking.RecordPayment(booking.Payment, now)
		} else {
			split := utils.SplitPayment(booking.TotalPrice, mode)
			payment := &models.Payment{
				ID:            utils.GenerateID("payment"),
				BookingID:     booking.ID,
				Mode:          mode,
				DepositAmount: split.Deposit,
				BalanceAmount: split.Balance,
				Status:        status,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := tx.Create(payment).Error; err != nil {
				return err
			}
			booking.RecordPayment(payment, now)
		}
		return tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"status":     booking.Status,
				"updated_at": booking.UpdatedAt,
			}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to record payment",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// CancelBooking cancels the booking on the customer's behalf
func CancelBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.First(&booking, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if err := booking.ApplyTransition(models.EventCancelByUser, time.Now()); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot cancel booking",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// ModifyBooking reopens a booking as the user's draft so time or services
// can be changed. Refused when the booking starts within 24 hours; the
// booking itself is left untouched either way.
func ModifyBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.Preload("Items").Preload("Payment").
		First(&booking, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if !booking.CanModify(time.Now()) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Bookings can only be modified more than 24 hours before the scheduled time",
		})
	}

	draft := models.NewBookingDraft()
	draft.SetItems(booking.Items)
	if booking.OperatorID != nil {
		draft.OperatorID = *booking.OperatorID
	}
	scheduled := booking.ScheduledAt
	draft.ScheduledAt = &scheduled
	address := booking.Address
	draft.Address = &address
	if booking.Payment != nil {
		draft.PaymentMode = booking.Payment.Mode
	}

	if err := saveDraft(userID, draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save draft",
			Error:   err.Error(),
		})
	}
	return c.JSON(draftResponse(draft))
}
