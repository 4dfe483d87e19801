package models

import "time"

// Staff account. PasswordHash is accepted on create and stored as-is
// (hashing happens client-side or in a future auth service); it is never
// serialized back out.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null" json:"role"`

	DisplayName *string `gorm:"size:100" json:"display_name"`
	ImgURL      *string `gorm:"size:255" json:"img_url"`
	ShortBio    *string `gorm:"size:255" json:"short_bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
