package models

// Catalog entities are read-only reference data seeded at migration time.
// The engine never mutates them.

type Country struct {
	Code string `json:"code" gorm:"primaryKey;size:2"`
	Name string `json:"name"`
}

type City struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name"`
	CountryCode string  `json:"country_code"`
	Country     Country `json:"country,omitempty" gorm:"foreignKey:CountryCode"`
}

type Category struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type Subcategory struct {
	ID         string   `json:"id" gorm:"primaryKey"`
	CategoryID string   `json:"category_id"`
	Category   Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name       string   `json:"name"`
}
