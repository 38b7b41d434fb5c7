package models

import "time"

// User is a shop operator. One User owns one service center; clients and
// services hang off it by id, never embedded in the record itself.
type User struct {
	ID string `json:"id"`

	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
