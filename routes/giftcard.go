package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/controllers"
	"github.com/AndreaRizzo/beautyHome-v1/middleware"
)

// SetupGiftCardRoutes configures the gift card routes
func SetupGiftCardRoutes(app *fiber.App) {
	giftCards := app.Group("/giftcards", middleware.RequireUser())
	giftCards.Post("/", controllers.CreateGiftCard)
	giftCards.Get("/", controllers.ListGiftCards)
}
