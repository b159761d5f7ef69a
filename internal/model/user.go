package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User is keyed by Username. Password is stored and compared in plaintext.
type User struct {
	Username   string    `gorm:"primaryKey;type:varchar(128)" json:"username"`
	Name       string    `gorm:"not null" json:"name"`
	Password   string    `gorm:"not null" json:"password"`
	Department string    `json:"department"`
	Role       Role      `gorm:"type:varchar(16);not null;default:'student'" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
