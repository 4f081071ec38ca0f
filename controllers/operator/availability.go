package operator

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// ListAvailability returns every window the session operator has declared
func ListAvailability(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)

	repo := db.NewAvailabilityRepo(db.DB)
	if day := c.Query("day"); day != "" {
		windows, err := repo.Get(profile.ID, day)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch availability",
				Error:   err.Error(),
			})
		}
		return c.JSON(windows)
	}

	windows, err := repo.ListByOperator(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(windows)
}

// UpsertAvailability declares the operator's window for a day. Updating a
// day that already has a window replaces its start and end.
func UpsertAvailability(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)

	var body struct {
		Day   string `json:"day"`
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if _, err := time.Parse("2006-01-02", body.Day); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Day must be YYYY-MM-DD",
		})
	}
	start, err := utils.ClockToMinutes(body.Start)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Start must be HH:MM",
		})
	}
	end, err := utils.ClockToMinutes(body.End)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "End must be HH:MM",
		})
	}
	if start >= end {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Start must be before end",
		})
	}

	window, err := db.NewAvailabilityRepo(db.DB).Upsert(profile.ID, body.Day, body.Start, body.End)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(window)
}
