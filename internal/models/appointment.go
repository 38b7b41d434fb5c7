package models

import "time"

type Appointment struct {
	ID              string `gorm:"primaryKey;size:36" json:"id"`
	ServiceCenterID string `gorm:"size:36;index" json:"service_center_id"`

	ClientID string `gorm:"size:36;index" json:"client_id"`
	CarID    string `gorm:"size:36" json:"car_id"`

	ServiceIDs []string `gorm:"serializer:json" json:"service_ids"`

	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	TotalPrice      int64 `json:"total_price"`
	DiscountPercent int   `json:"discount_percent"`

	CreatedAt time.Time `json:"created_at"`
}
