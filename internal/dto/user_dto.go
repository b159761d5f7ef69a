package dto

import "time"

// UserResponse never carries the password.
type UserResponse struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserUpsertRequest is used for admin create and replace. On replace the
// username comes from the path and may be omitted from the body.
type UserUpsertRequest struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Role       string `json:"role"`
}
