package service

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/rs/zerolog/log"
)

func toQuestionDTOs(quiz []model.Question, withAnswers bool) []dto.QuestionDTO {
	out := make([]dto.QuestionDTO, 0, len(quiz))
	for _, q := range quiz {
		item := dto.QuestionDTO{
			Question: q.Text,
			Options:  append([]string(nil), q.Options...),
		}
		if withAnswers {
			answer := q.AnswerIndex
			item.Answer = &answer
		}
		out = append(out, item)
	}
	return out
}

func toCourseResponse(course *model.Course, withAnswers bool) *dto.CourseResponseDTO {
	var resp dto.CourseResponseDTO
	if err := copier.Copy(&resp, course); err != nil {
		log.Warn().Err(err).Str("courseID", course.ID).Msg("Failed to copy course to response")
	}
	resp.Quiz = toQuestionDTOs(course.Quiz, withAnswers)
	return &resp
}

func toCourseSummary(course *model.Course) dto.CourseSummaryDTO {
	var summary dto.CourseSummaryDTO
	if err := copier.Copy(&summary, course); err != nil {
		log.Warn().Err(err).Str("courseID", course.ID).Msg("Failed to copy course to summary")
	}
	summary.QuestionCount = len(course.Quiz)
	return summary
}

// validateCourse checks an admin or import payload and converts it into a
// model. Video is optional; every other field is required.
func validateCourse(req dto.CourseUpsertRequest) (*model.Course, error) {
	var fields []string
	if strings.TrimSpace(req.Title) == "" {
		fields = append(fields, "title")
	}
	if strings.TrimSpace(req.Content) == "" {
		fields = append(fields, "content")
	}
	if len(req.Quiz) == 0 {
		fields = append(fields, "quiz")
	}
	quiz := make([]model.Question, 0, len(req.Quiz))
	for i, q := range req.Quiz {
		question, bad := validateQuestion(q)
		for _, f := range bad {
			fields = append(fields, fmt.Sprintf("quiz[%d].%s", i, f))
		}
		quiz = append(quiz, question)
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidation("Please fill all fields and add at least one quiz question", fields...)
	}
	return &model.Course{
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
		Video:   strings.TrimSpace(req.Video),
		Quiz:    quiz,
	}, nil
}

func validateQuestion(q dto.QuestionRequest) (model.Question, []string) {
	var bad []string
	if strings.TrimSpace(q.Question) == "" {
		bad = append(bad, "question")
	}
	if len(q.Options) != model.OptionCount {
		bad = append(bad, "options")
	} else {
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				bad = append(bad, "options")
				break
			}
		}
	}
	answer := -1
	if q.Answer != nil {
		answer = *q.Answer
	}
	if answer < 0 || answer >= model.OptionCount {
		bad = append(bad, "answer")
	}
	return model.Question{
		Text:        strings.TrimSpace(q.Question),
		Options:     append([]string(nil), q.Options...),
		AnswerIndex: answer,
	}, bad
}
