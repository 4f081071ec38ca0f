package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// GetCountries returns the supported countries
func GetCountries(c *fiber.Ctx) error {
	var countries []models.Country
	if err := db.DB.Find(&countries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch countries",
			Error:   err.Error(),
		})
	}
	return c.JSON(countries)
}

// GetCities returns the serviceable cities, optionally by country
func GetCities(c *fiber.Ctx) error {
	query := db.DB.Model(&models.City{})
	if country := c.Query("country"); country != "" {
		query = query.Where("country_code = ?", country)
	}

	var cities []models.City
	if err := query.Find(&cities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch cities",
			Error:   err.Error(),
		})
	}
	return c.JSON(cities)
}

// GetCategories returns all treatment categories
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// GetSubcategories returns the subcategories of a category
func GetSubcategories(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	var subcategories []models.Subcategory
	if err := db.DB.Where("category_id = ?", categoryID).Find(&subcategories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch subcategories",
			Error:   err.Error(),
		})
	}
	return c.JSON(subcategories)
}

// GetTreatments returns treatments, optionally filtered by subcategory
func GetTreatments(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Treatment{})
	if subcategoryID := c.Query("subcategory_id"); subcategoryID != "" {
		query = query.Where("subcategory_id = ?", subcategoryID)
	}

	var treatments []models.Treatment
	if err := query.Find(&treatments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch treatments",
			Error:   err.Error(),
		})
	}
	return c.JSON(treatments)
}

// GetTreatment returns a treatment by ID
func GetTreatment(c *fiber.Ctx) error {
	id := c.Params("id")

	var treatment models.Treatment
	if err := db.DB.Preload("Subcategory").First(&treatment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Treatment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(treatment)
}
