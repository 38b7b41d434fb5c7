package models

import "time"

// Client is a customer of a service center. Cars are embedded: a car has no
// lifecycle of its own, so the client record is its only storage site.
type Client struct {
	ID              string `json:"id"`
	ServiceCenterID string `json:"service_center_id"`

	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Birthdate string `json:"birthdate"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Note      string `json:"note"`

	Cars []Car `json:"cars"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Car struct {
	ID           string  `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	EngineVolume float64 `json:"engine_volume"`
	HorsePower   int     `json:"horse_power"`
}

// CarByID returns the embedded car with the given id, if any.
func (c *Client) CarByID(id string) (*Car, bool) {
	for i := range c.Cars {
		if c.Cars[i].ID == id {
			return &c.Cars[i], true
		}
	}
	return nil, false
}
