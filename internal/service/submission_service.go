package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/cache"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/grading"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/lshigami/courseboard/internal/report"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/rs/zerolog/log"
)

// RecentResultsLimit is how many results the learner dashboard shows.
const RecentResultsLimit = 3

// ErrIncompleteAnswers rejects a submission that skips a question.
var ErrIncompleteAnswers error = apperror.NewValidation("Please answer all questions", "answers")

type SubmissionService interface {
	Submit(ctx context.Context, username, courseID string, answers grading.AnswerSet) (*dto.ResultDTO, error)
	RecentResults(ctx context.Context, username string) ([]dto.ResultDTO, error)
}

type submissionService struct {
	courses repository.CourseRepository
	users   repository.UserRepository
	results repository.ResultRepository
	cache   cache.CourseCache
	now     func() time.Time
}

func NewSubmissionService(
	courses repository.CourseRepository,
	users repository.UserRepository,
	results repository.ResultRepository,
	c cache.CourseCache,
) SubmissionService {
	return &submissionService{
		courses: courses,
		users:   users,
		results: results,
		cache:   c,
		now:     time.Now,
	}
}

// Submit grades answers against the course quiz and appends a new result.
// The title lookup and the append are separate repository calls.
func (s *submissionService) Submit(ctx context.Context, username, courseID string, answers grading.AnswerSet) (*dto.ResultDTO, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrUnknownUser
	}
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Submit: user lookup failed")
		return nil, err
	}

	course, err := loadCourse(ctx, s.courses, s.cache, courseID)
	if err != nil {
		return nil, err
	}
	if len(course.Quiz) == 0 {
		return nil, apperror.ErrNoQuiz
	}
	if !grading.Complete(course.Quiz, answers) {
		return nil, ErrIncompleteAnswers
	}

	outcome := grading.Grade(course.Quiz, answers)
	result := report.BuildResult(*user, courseID, s.courseTitle(ctx, courseID), outcome, s.now())

	if err := s.results.Append(ctx, &result); err != nil {
		log.Error().Err(err).Str("username", username).Str("courseID", courseID).Msg("Submit: failed to save result")
		return nil, err
	}
	log.Info().
		Str("username", username).
		Str("courseID", courseID).
		Int("score", outcome.Score).
		Int("total", outcome.Total).
		Msg("Quiz submitted")

	resp := toResultDTO(&result)
	return &resp, nil
}

// courseTitle re-reads the course so the stored title is current. Any failure
// falls back to the raw id.
func (s *submissionService) courseTitle(ctx context.Context, courseID string) string {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		log.Warn().Err(err).Str("courseID", courseID).Msg("Submit: title lookup failed, using course id")
		return courseID
	}
	if strings.TrimSpace(course.Title) == "" {
		log.Warn().Str("courseID", courseID).Msg("Submit: course has no title, using course id")
		return courseID
	}
	return course.Title
}

func (s *submissionService) RecentResults(ctx context.Context, username string) ([]dto.ResultDTO, error) {
	results, err := s.results.ListRecentByUsername(ctx, username, RecentResultsLimit)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("RecentResults: repository error")
		return nil, err
	}
	out := make([]dto.ResultDTO, 0, len(results))
	for i := range results {
		out = append(out, toResultDTO(&results[i]))
	}
	return out, nil
}

func toResultDTO(result *model.Result) dto.ResultDTO {
	var out dto.ResultDTO
	if err := copier.Copy(&out, result); err != nil {
		log.Warn().Err(err).Str("resultID", result.ID).Msg("Failed to copy result")
	}
	return out
}
