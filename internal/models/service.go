package models

import "time"

// Service is a billable offering of a service center. Price is in minor
// currency units.
type Service struct {
	ID              string `gorm:"primaryKey;size:36" json:"id"`
	ServiceCenterID string `gorm:"size:36;index" json:"service_center_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Price       int64  `json:"price"`
	DurationMin int    `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
