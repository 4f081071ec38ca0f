package models

import (
	"time"
)

type Role string

const (
	RoleUser     Role = "user"
	RoleOperator Role = "operator"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email" gorm:"unique"`
	Role      Role      `json:"role" gorm:"default:user"`
	Country   *string   `json:"country,omitempty"`
	CityID    *string   `json:"city_id,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is where the operator performs the home visit. Bookings embed a
// snapshot of it, so later edits to the address book never alter a booking.
type Address struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id"`
	Street string `json:"street"`
	Number string `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
	Notes  string `json:"notes,omitempty"`
}
