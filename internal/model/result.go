package model

import "time"

// Result is one scored quiz submission. CourseTitle is copied from the course
// at write time and is not a reference: renaming a course leaves history alone.
type Result struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Username        string    `gorm:"type:varchar(128);not null;index" json:"username"`
	UserDisplayName string    `json:"user"`
	CourseTitle     string    `gorm:"column:course;not null;index" json:"course"`
	Score           int       `gorm:"not null" json:"score"`
	Total           int       `gorm:"not null" json:"total"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	CreatedAt       time.Time `json:"-"`
}
