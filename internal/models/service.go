package models

// Reference data: the catalogue of care services. Rows are seeded by the
// operator; the API only reads them.
type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ServiceName string `gorm:"size:100;not null" json:"service_name"`
}

// Join table between clients and the services they receive.
type ClientService struct {
	ClientID  uint `gorm:"primaryKey" json:"client_id"`
	ServiceID uint `gorm:"primaryKey" json:"service_id"`
}
