package db

import (
	"log"

	"github.com/AndreaRizzo/beautyHome-v1/models"
)

// SeedCatalog loads the reference catalog the engine reads from. Existing
// rows are left alone so reruns are safe.
func SeedCatalog() {
	countries := []models.Country{
		{Code: "IT", Name: "Italia"},
		{Code: "ES", Name: "Spagna"},
	}

	cities := []models.City{
		{ID: "lecce", Name: "Lecce", CountryCode: "IT"},
		{ID: "brindisi", Name: "Brindisi", CountryCode: "IT"},
		{ID: "bari", Name: "Bari", CountryCode: "IT"},
	}

	categories := []models.Category{
		{ID: "beauty", Name: "Bellezza", Description: "Trattamenti per mani, viso e altro."},
		{ID: "massage", Name: "Massaggi", Description: "Relax, recupera e rigenera a casa."},
		{ID: "hair", Name: "Capelli & Make-up", Description: "Styling, trucco e grooming."},
		{ID: "physio", Name: "Fisioterapia & Osteopatia", Description: "Terapie mirate per recupero e mobilita."},
		{ID: "pregnancy", Name: "Gravidanza & Neomamme", Description: "Cura delicata e sicura per ogni trimestre."},
	}

	subcategories := []models.Subcategory{
		{ID: "massage", CategoryID: "massage", Name: "Massaggi"},
		{ID: "physio", CategoryID: "physio", Name: "Sessioni terapeutiche"},
		{ID: "pregnancy", CategoryID: "pregnancy", Name: "Gravidanza & Neomamme"},
		{ID: "beauty-hands", CategoryID: "beauty", Name: "Mani"},
		{ID: "beauty-feet", CategoryID: "beauty", Name: "Piedi"},
		{ID: "beauty-wax", CategoryID: "beauty", Name: "Ceretta"},
		{ID: "beauty-facial", CategoryID: "beauty", Name: "Trattamenti viso"},
		{ID: "hair-hair", CategoryID: "hair", Name: "Capelli"},
		{ID: "hair-makeup", CategoryID: "hair", Name: "Make-up"},
		{ID: "hair-barber", CategoryID: "hair", Name: "Barbiere"},
	}

	treatments := []models.Treatment{
		{ID: "t-mani-classic", SubcategoryID: "beauty-hands", Name: "Manicure Classica", Description: "Cuticole, limatura e finitura idratante.", DurationMinutes: 45, Price: 28},
		{ID: "t-gel-mani", SubcategoryID: "beauty-hands", Name: "Manicure Gel", Description: "Gel a lunga durata con finitura lucida.", DurationMinutes: 60, Price: 38},
		{ID: "t-pedi-classic", SubcategoryID: "beauty-feet", Name: "Pedicure Classica", Description: "Pediluvio, esfoliazione e smalto.", DurationMinutes: 50, Price: 34},
		{ID: "t-wax-full", SubcategoryID: "beauty-wax", Name: "Ceretta Corpo Completa", Description: "Ceretta delicata con trattamento lenitivo.", DurationMinutes: 75, Price: 62},
		{ID: "t-facial-glow", SubcategoryID: "beauty-facial", Name: "Trattamento Viso Glow", Description: "Detersione profonda, esfoliazione e maschera idratante.", DurationMinutes: 55, Price: 48},
		{ID: "t-massage-relax", SubcategoryID: "massage", Name: "Massaggio Relax", Description: "Massaggio lento e rilassante per sciogliere le tensioni.", DurationMinutes: 60, Price: 70},
		{ID: "t-massage-sport", SubcategoryID: "massage", Name: "Massaggio Sportivo", Description: "Recupero mirato con trattamento profondo.", DurationMinutes: 75, Price: 85},
		{ID: "t-hair-style", SubcategoryID: "hair-hair", Name: "Piega Signature", Description: "Volume, finitura liscia e styling.", DurationMinutes: 45, Price: 40},
		{ID: "t-hair-cut", SubcategoryID: "hair-hair", Name: "Taglio & Styling", Description: "Consulenza, taglio e styling.", DurationMinutes: 60, Price: 52},
		{ID: "t-makeup-evening", SubcategoryID: "hair-makeup", Name: "Make-up Sera", Description: "Smokey eyes, incarnato luminoso e lunga tenuta.", DurationMinutes: 50, Price: 60},
		{ID: "t-barber-classic", SubcategoryID: "hair-barber", Name: "Barbiere Classico", Description: "Taglio, rifinitura e panno caldo.", DurationMinutes: 40, Price: 35},
	}

	for _, country := range countries {
		DB.FirstOrCreate(&models.Country{}, country)
	}
	for _, city := range cities {
		DB.FirstOrCreate(&models.City{}, city)
	}
	for _, category := range categories {
		DB.FirstOrCreate(&models.Category{}, category)
	}
	for _, subcategory := range subcategories {
		DB.FirstOrCreate(&models.Subcategory{}, subcategory)
	}
	for _, treatment := range treatments {
		DB.FirstOrCreate(&models.Treatment{}, treatment)
	}

	log.Println("✅ Catalog seeded")
}
