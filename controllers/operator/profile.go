package operator

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AndreaRizzo/beautyHome-v1/db"
	"github.com/AndreaRizzo/beautyHome-v1/models"
	"github.com/AndreaRizzo/beautyHome-v1/utils"
)

// CreateProfile bootstraps an operator profile the first time a user
// switches to the operator role. Runs behind RequireUser only, since the
// profile does not exist yet.
func CreateProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var existing models.OperatorProfile
	err := db.DB.First(&existing, "user_id = ?", user.ID).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Operator profile already exists",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check operator profile",
			Error:   err.Error(),
		})
	}

	var body struct {
		CityID string `json:"city_id"`
	}
	// The body is optional; the user's own city is the default.
	_ = c.BodyParser(&body)

	cityID := body.CityID
	if cityID == "" && user.CityID != nil {
		cityID = *user.CityID
	}
	if cityID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A city is required to create an operator profile",
		})
	}

	now := time.Now()
	profile := models.OperatorProfile{
		ID:        utils.GenerateID("operator"),
		UserID:    user.ID,
		CityID:    cityID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Rating:    4.5,
		Verified:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create operator profile",
			Error:   err.Error(),
		})
	}

	db.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("role", models.RoleOperator)

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// GetProfile returns the session operator's profile
func GetProfile(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)

	if err := db.DB.Preload("OfferedTreatments").Preload("Categories").
		First(&profile, "id = ?", profile.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch operator profile",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// UpdateProfile patches the operator's display and location fields
func UpdateProfile(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		CityID    *string `json:"city_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if body.FirstName != nil {
		profile.FirstName = *body.FirstName
	}
	if body.LastName != nil {
		profile.LastName = *body.LastName
	}
	if body.CityID != nil {
		var city models.City
		if err := db.DB.First(&city, "id = ?", *body.CityID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "City not found",
				Error:   err.Error(),
			})
		}
		profile.CityID = *body.CityID
	}
	profile.UpdatedAt = time.Now()

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update operator profile",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// SetOfferedTreatments replaces the operator's offered treatment set
func SetOfferedTreatments(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)

	var body struct {
		TreatmentIDs []string `json:"treatment_ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var treatments []models.Treatment
	if len(body.TreatmentIDs) > 0 {
		if err := db.DB.Where("id IN ?", body.TreatmentIDs).Find(&treatments).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch treatments",
				Error:   err.Error(),
			})
		}
		if len(treatments) != len(body.TreatmentIDs) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "One or more treatments do not exist",
			})
		}
	}

	if err := db.DB.Model(&profile).Association("OfferedTreatments").Replace(&treatments); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update offered treatments",
			Error:   err.Error(),
		})
	}

	profile.OfferedTreatments = treatments
	return c.JSON(profile)
}

// ToggleOfferedTreatment adds or removes a single treatment from the set
func ToggleOfferedTreatment(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)
	treatmentID := c.Params("id")

	var treatment models.Treatment
	if err := db.DB.First(&treatment, "id = ?", treatmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Treatment not found",
			Error:   err.Error(),
		})
	}

	offered := false
	for _, t := range profile.OfferedTreatments {
		if t.ID == treatment.ID {
			offered = true
			break
		}
	}

	var err error
	if offered {
		err = db.DB.Model(&profile).Association("OfferedTreatments").Delete(&treatment)
	} else {
		err = db.DB.Model(&profile).Association("OfferedTreatments").Append(&treatment)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update offered treatments",
			Error:   err.Error(),
		})
	}

	return GetProfile(c)
}

// UploadProfilePhoto stores the operator's photo on Cloudinary and saves
// the resulting URL
func UploadProfilePhoto(c *fiber.Ctx) error {
	profile := c.Locals("operatorProfile").(models.OperatorProfile)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A photo file is required",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to read photo",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, profile.ID, "operators")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	profile.Photo = url
	profile.UpdatedAt = time.Now()
	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save photo",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}
