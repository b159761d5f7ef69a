// Package grading scores a quiz attempt against the course's answer key.
package grading

import "github.com/lshigami/courseboard/internal/model"

// AnswerSet maps a question index to the chosen option index.
type AnswerSet map[int]int

type Outcome struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Empty reports whether the outcome came from a quiz with no questions.
// Such an outcome is "no quiz available", not a completed attempt.
func (o Outcome) Empty() bool {
	return o.Total == 0
}

// Grade counts the answers that match the key. Missing answers are wrong.
func Grade(quiz []model.Question, answers AnswerSet) Outcome {
	out := Outcome{Total: len(quiz)}
	for i, q := range quiz {
		if chosen, ok := answers[i]; ok && chosen == q.AnswerIndex {
			out.Score++
		}
	}
	return out
}

// Complete reports whether every question index in quiz has an answer.
// Grade does not require it; callers check it before submitting.
func Complete(quiz []model.Question, answers AnswerSet) bool {
	for i := range quiz {
		if _, ok := answers[i]; !ok {
			return false
		}
	}
	return true
}
