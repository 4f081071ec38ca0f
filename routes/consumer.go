package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/controllers/consumer"
	"github.com/AndreaRizzo/beautyHome-v1/middleware"
)

// SetupConsumerRoutes configures the booking-flow routes for customers
func SetupConsumerRoutes(app *fiber.App) {
	consumerGroup := app.Group("/consumer", middleware.RequireUser())

	consumerGroup.Get("/profile", consumer.GetUserProfile)
	consumerGroup.Patch("/profile", consumer.UpdateUserProfile)
	consumerGroup.Post("/addresses", consumer.AddAddress)
	consumerGroup.Delete("/addresses/:id", consumer.DeleteAddress)

	consumerGroup.Get("/draft", consumer.GetDraft)
	consumerGroup.Patch("/draft", consumer.UpdateDraft)
	consumerGroup.Delete("/draft", consumer.ResetDraft)
	consumerGroup.Post("/draft/items", consumer.AddDraftItem)
	consumerGroup.Delete("/draft/items/:treatmentID", consumer.RemoveDraftItem)
	consumerGroup.Get("/draft/slots", consumer.GetDraftSlots)

	consumerGroup.Get("/operators", consumer.ListOperators)
	consumerGroup.Get("/operators/:id", consumer.GetOperatorDetails)
	consumerGroup.Get("/operators/:id/reviews", consumer.ListOperatorReviews)
	consumerGroup.Post("/reviews", consumer.CreateReview)

	consumerGroup.Post("/bookings", consumer.CreateBooking)
	consumerGroup.Get("/bookings", consumer.ListBookings)
	consumerGroup.Get("/bookings/:id", consumer.GetBooking)
	consumerGroup.Post("/bookings/:id/payment", consumer.RecordPayment)
	consumerGroup.Post("/bookings/:id/cancel", consumer.CancelBooking)
	consumerGroup.Post("/bookings/:id/modify", consumer.ModifyBooking)
}
