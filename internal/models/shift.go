package models

import "time"

// A care shift linking a client to a service for a number of hours.
// Available means the shift has not been assigned to a staff member yet.
type Shift struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TotalHours int    `gorm:"type:smallint" json:"total_hours"`
	Zipcode    string `gorm:"size:10" json:"zipcode"`
	Available  bool   `json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
