package dto

import "time"

// AppointmentListDTO is the read model for schedule listings: the stored
// references are joined to display names at read time.
type AppointmentListDTO struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	ClientName      string    `json:"client_name"`
	CarLabel        string    `json:"car_label"`
	ServiceIDs      []string  `json:"service_ids"`
	TotalPrice      int64     `json:"total_price"`
	DiscountPercent int       `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
}
