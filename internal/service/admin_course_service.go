package service

import (
	"context"

	"github.com/lshigami/courseboard/internal/cache"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminCourseService interface {
	ListCourses(ctx context.Context) ([]dto.CourseResponseDTO, error)
	GetCourse(ctx context.Context, id string) (*dto.CourseResponseDTO, error)
	CreateCourse(ctx context.Context, req dto.CourseUpsertRequest) (*dto.CourseResponseDTO, error)
	ReplaceCourse(ctx context.Context, id string, req dto.CourseUpsertRequest) (*dto.CourseResponseDTO, error)
	DeleteCourse(ctx context.Context, id string) error
}

type adminCourseService struct {
	courses repository.CourseRepository
	cache   cache.CourseCache
}

func NewAdminCourseService(courses repository.CourseRepository, c cache.CourseCache) AdminCourseService {
	return &adminCourseService{courses: courses, cache: c}
}

func (s *adminCourseService) ListCourses(ctx context.Context) ([]dto.CourseResponseDTO, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Admin ListCourses: repository error")
		return nil, err
	}
	out := make([]dto.CourseResponseDTO, 0, len(courses))
	for i := range courses {
		out = append(out, *toCourseResponse(&courses[i], true))
	}
	return out, nil
}

func (s *adminCourseService) GetCourse(ctx context.Context, id string) (*dto.CourseResponseDTO, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCourseResponse(course, true), nil
}

func (s *adminCourseService) CreateCourse(ctx context.Context, req dto.CourseUpsertRequest) (*dto.CourseResponseDTO, error) {
	course, err := validateCourse(req)
	if err != nil {
		return nil, err
	}
	if err := s.courses.Create(ctx, course); err != nil {
		log.Error().Err(err).Str("title", course.Title).Msg("Admin CreateCourse: repository error")
		return nil, err
	}
	log.Info().Str("courseID", course.ID).Int("questions", len(course.Quiz)).Msg("Course created")
	return toCourseResponse(course, true), nil
}

// ReplaceCourse overwrites the course wholesale. Last write wins.
func (s *adminCourseService) ReplaceCourse(ctx context.Context, id string, req dto.CourseUpsertRequest) (*dto.CourseResponseDTO, error) {
	course, err := validateCourse(req)
	if err != nil {
		return nil, err
	}
	course.ID = id
	err = writeCourse(ctx, s.cache, id, func() error { return s.courses.Replace(ctx, course) })
	if err != nil {
		log.Error().Err(err).Str("courseID", id).Msg("Admin ReplaceCourse: repository error")
		return nil, err
	}

	updated, err := s.courses.FindByID(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("courseID", id).Msg("Admin ReplaceCourse: reload failed, echoing request")
		return toCourseResponse(course, true), nil
	}
	return toCourseResponse(updated, true), nil
}

func (s *adminCourseService) DeleteCourse(ctx context.Context, id string) error {
	if err := writeCourse(ctx, s.cache, id, func() error { return s.courses.Delete(ctx, id) }); err != nil {
		return err
	}
	log.Info().Str("courseID", id).Msg("Course deleted")
	return nil
}
