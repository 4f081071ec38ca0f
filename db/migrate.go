package db

import (
	"fmt"
	"log"

	"github.com/AndreaRizzo/beautyHome-v1/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Country{},
		&models.City{},
		&models.Category{},
		&models.Subcategory{},
		&models.Treatment{},
		&models.User{},
		&models.Address{},
		&models.OperatorProfile{},
		&models.AvailabilityWindow{},
		&models.Booking{},
		&models.BookingItem{},
		&models.Payment{},
		&models.Review{},
		&models.GiftCard{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	SeedCatalog()

	fmt.Println("✅ Migrations applied successfully!")
}
