package operator

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// Events an operator may fire on their assigned bookings. Confirmation
// happens through payment recording, never directly.
var operatorEvents = map[models.BookingEvent]bool{
	models.EventStart:            true,
	models.EventComplete:         true,
	models.EventCancelByOperator: true,
	models.EventNoShow:           true,
}

// ListAssignedBookings returns the bookings assigned to the session
// operator, optionally filtered by status
func ListAssignedBookings(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)

	query := db.DB.Preload("Items").Preload("Payment").
		Where("operator_id = ?", profile.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("scheduled_at").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// UpdateBookingStatus fires a lifecycle event on an assigned booking. The
// transition table decides what is legal; anything else is rejected with a
// conflict.
func UpdateBookingStatus(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)
	id := c.Params("id")

	var body struct {
		Event string `json:"event"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	event := models.BookingEvent(body.Event)
	if !operatorEvents[event] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown event",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, "id = ? AND operator_id = ?", id, profile.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if err := booking.ApplyTransition(event, time.Now()); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
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

// GetDashboard summarizes the operator's bookings and revenue
func GetDashboard(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		NoShowCount    int64     `json:"no_show_count"`
		TotalRevenue   float64   `json:"total_revenue"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	countByStatus := func(out *int64, statuses ...models.BookingStatus) {
		query := db.DB.Model(&models.Booking{}).Where("operator_id = ?", profile.ID)
		if len(statuses) > 0 {
			query = query.Where("status IN ?", statuses)
		}
		query.Count(out)
	}

	countByStatus(&statistics.TotalBookings)
	countByStatus(&statistics.PendingCount, models.StatusPendingPayment)
	countByStatus(&statistics.ConfirmedCount, models.StatusConfirmed)
	countByStatus(&statistics.CompletedCount, models.StatusCompleted)
	countByStatus(&statistics.CancelledCount, models.StatusCancelledByUser, models.StatusCancelledByOperator)
	countByStatus(&statistics.NoShowCount, models.StatusNoShow)

	var revenue struct {
		TotalRevenue float64
	}
	db.DB.Model(&models.Booking{}).
		Where("operator_id = ? AND status = ?", profile.ID, models.StatusCompleted).
		Select("COALESCE(SUM(total_price), 0) as total_revenue").
		Scan(&revenue)
	statistics.TotalRevenue = revenue.TotalRevenue

	statistics.LastUpdated = time.Now()
	return c.JSON(statistics)
}
