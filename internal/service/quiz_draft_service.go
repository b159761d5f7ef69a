package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/rs/zerolog/log"
)

const defaultDraftCount = 5

func errUnavailable(reason string) error {
	return fmt.Errorf("%s: %w", reason, apperror.ErrUnavailable)
}

// QuizDraftService asks the LLM for multiple-choice questions about a course
// body. Drafts are returned for review and never stored.
type QuizDraftService interface {
	Draft(ctx context.Context, req dto.QuizDraftRequest) ([]dto.QuestionDTO, error)
}

type quizDraftService struct {
	llm GeminiLLMService
}

func NewQuizDraftService(llm GeminiLLMService) QuizDraftService {
	return &quizDraftService{llm: llm}
}

func (s *quizDraftService) Draft(ctx context.Context, req dto.QuizDraftRequest) ([]dto.QuestionDTO, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.NewValidation("Course content is required", "content")
	}
	count := req.Count
	if count <= 0 {
		count = defaultDraftCount
	}

	raw, err := s.llm.Generate(ctx, draftPrompt(req.Content, count))
	if err != nil {
		return nil, err
	}
	quiz, err := parseDraft(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse quiz draft")
		return nil, err
	}
	if len(quiz) > count {
		quiz = quiz[:count]
	}
	return toQuestionDTOs(quiz, true), nil
}

func draftPrompt(content string, count int) string {
	var sb strings.Builder
	sb.WriteString("You are writing a short multiple-choice quiz for an employee training course.\n")
	fmt.Fprintf(&sb, "Write exactly %d questions about the course text below.\n", count)
	fmt.Fprintf(&sb, "Each question has exactly %d options and one correct option.\n\n", model.OptionCount)
	sb.WriteString("Course text:\n---\n")
	sb.WriteString(content)
	sb.WriteString("\n---\n\n")
	sb.WriteString("Respond with a JSON array only, no prose, in this shape:\n")
	sb.WriteString(`[{"question": "...", "options": ["...", "...", "...", "..."], "answer": 0}]`)
	sb.WriteString("\nwhere answer is the zero-based index of the correct option.\n")
	return sb.String()
}

// parseDraft decodes the model reply and drops questions that fail
// validation. A reply with no usable question is an error.
func parseDraft(raw string) ([]model.Question, error) {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSpace(body)

	var items []dto.QuestionRequest
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		return nil, fmt.Errorf("decode quiz draft: %w", err)
	}
	quiz := make([]model.Question, 0, len(items))
	for i, item := range items {
		q, bad := validateQuestion(item)
		if len(bad) > 0 {
			log.Warn().Int("index", i).Strs("fields", bad).Msg("Dropping invalid drafted question")
			continue
		}
		quiz = append(quiz, q)
	}
	if len(quiz) == 0 {
		return nil, fmt.Errorf("quiz draft contained no valid questions")
	}
	return quiz, nil
}
