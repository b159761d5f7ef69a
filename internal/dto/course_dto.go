package dto

import "time"

// QuestionDTO is a quiz question as served to clients. Answer is omitted for
// students.
type QuestionDTO struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   *int     `json:"answer,omitempty"`
}

type CourseSummaryDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Video         string    `json:"video,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type CourseResponseDTO struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Video     string        `json:"video,omitempty"`
	Quiz      []QuestionDTO `json:"quiz"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// QuestionRequest is one question in an admin course payload or an import file.
type QuestionRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   *int     `json:"answer"`
}

type CourseUpsertRequest struct {
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Video   string            `json:"video"`
	Quiz    []QuestionRequest `json:"quiz"`
}

type QuizDraftRequest struct {
	Content string `json:"content" binding:"required"`
	Count   int    `json:"count" binding:"omitempty,min=1,max=20"`
}

type QuizDraftResponse struct {
	Quiz []QuestionDTO `json:"quiz"`
}
