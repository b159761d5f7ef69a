package dto

import "time"

// SubmissionRequest maps question index to the chosen option index. JSON
// object keys are the indices as strings, e.g. {"answers": {"0": 2}}.
type SubmissionRequest struct {
	Answers map[int]int `json:"answers" binding:"required"`
}

type ResultDTO struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	UserDisplayName string    `json:"user"`
	CourseTitle     string    `json:"course"`
	Score           int       `json:"score"`
	Total           int       `json:"total"`
	Date            time.Time `json:"date"`
}

type SubmissionResponse struct {
	Result ResultDTO `json:"result"`
}
