package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/controllers/operator"
	"github.com/AndreaRizzo/beautyHome-v1/middleware"
)

// SetupOperatorRoutes configures the provider-side routes
func SetupOperatorRoutes(app *fiber.App) {
	operatorGroup := app.Group("/operator", middleware.RequireUser())

	// Profile bootstrap runs before an operator profile exists.
	operatorGroup.Post("/profile", operator.CreateProfile)

	protected := operatorGroup.Group("", middleware.RequireOperator())
	protected.Get("/profile", operator.GetProfile)
	protected.Patch("/profile", operator.UpdateProfile)
	protected.Put("/profile/treatments", operator.SetOfferedTreatments)
	protected.Post("/profile/treatments/:id/toggle", operator.ToggleOfferedTreatment)
	protected.Post("/profile/photo", operator.UploadProfilePhoto)

	protected.Get("/availability", operator.ListAvailability)
	protected.Put("/availability", operator.UpsertAvailability)

	protected.Get("/bookings", operator.ListAssignedBookings)
	protected.Post("/bookings/:id/status", operator.UpdateBookingStatus)
	protected.Get("/dashboard", operator.GetDashboard)
}
