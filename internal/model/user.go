package model

import "time"

// User is a front-end visitor who left their email. Rows are append-only.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	IPAddress *string   `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest is the payload for registering an email.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
}
