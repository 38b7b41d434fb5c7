package appointment

import "github.com/garagedesk/garage-scheduler/internal/models"

// TotalPrice computes the discounted sum of service prices in minor currency
// units. Rounding is half-up: 1000+500 at 10% off is 1350, and a half-cent
// remainder rounds away from zero.
func TotalPrice(prices []int64, discountPercent int) int64 {
	var subtotal int64
	for _, p := range prices {
		subtotal += p
	}
	return (subtotal*int64(100-discountPercent) + 50) / 100
}

// Prices extracts service prices preserving order.
func Prices(services []models.Service) []int64 {
	out := make([]int64, 0, len(services))
	for _, s := range services {
		out = append(out, s.Price)
	}
	return out
}
