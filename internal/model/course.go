package model

import (
	"time"

	"gorm.io/datatypes"
)

// OptionCount is the fixed number of choices on every quiz question.
const OptionCount = 4

type Course struct {
	ID        string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Video     string     `json:"video,omitempty"`
	Quiz      []Question `gorm:"foreignKey:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"quiz"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Question struct {
	ID          uint                        `gorm:"primarykey" json:"-"`
	CourseID    string                      `gorm:"type:varchar(64);not null;index" json:"-"`
	OrderInQuiz int                         `gorm:"not null" json:"-"`
	Text        string                      `gorm:"type:text;not null" json:"question"`
	Options     datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	AnswerIndex int                         `gorm:"not null" json:"answer"`
}
