package models

// Treatment is a bookable service from the catalog. Duration and price are
// per single unit; booking items multiply them by quantity.
type Treatment struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	SubcategoryID   string      `json:"subcategory_id"`
	Subcategory     Subcategory `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	DurationMinutes int         `json:"duration_minutes"`
	Price           float64     `json:"price"`
}
