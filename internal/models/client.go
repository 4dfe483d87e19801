package models

import "time"

// Person receiving care. Zipcode stays a string so leading zeros survive
// the round trip.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`

	HasPersonalCare bool `json:"has_personal_care"`
	HasLifting      bool `json:"has_lifting"`

	Address1    string `gorm:"size:255;not null" json:"address_1"`
	Address2    string `gorm:"size:255" json:"address_2"`
	Zipcode     string `gorm:"size:10" json:"zipcode"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
