package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/controllers"
)

// SetupCatalogRoutes configures the public reference-data routes
func SetupCatalogRoutes(app *fiber.App) {
	catalog := app.Group("/catalog")
	catalog.Get("/countries", controllers.GetCountries)
	catalog.Get("/cities", controllers.GetCities)
	catalog.Get("/categories", controllers.GetCategories)
	catalog.Get("/categories/:id/subcategories", controllers.GetSubcategories)
	catalog.Get("/treatments", controllers.GetTreatments)
	catalog.Get("/treatments/:id", controllers.GetTreatment)
}
