package service

import (
	"context"

	"github.com/lshigami/courseboard/internal/cache"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/rs/zerolog/log"
)

// CourseService serves courses to learners. The answer key is only included
// when the caller asks for it, which controllers do for admins.
type CourseService interface {
	ListCourses(ctx context.Context) ([]dto.CourseSummaryDTO, error)
	GetCourse(ctx context.Context, id string, withAnswers bool) (*dto.CourseResponseDTO, error)
}

type courseService struct {
	courses repository.CourseRepository
	cache   cache.CourseCache
}

func NewCourseService(courses repository.CourseRepository, c cache.CourseCache) CourseService {
	return &courseService{courses: courses, cache: c}
}

func (s *courseService) ListCourses(ctx context.Context) ([]dto.CourseSummaryDTO, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListCourses: repository error")
		return nil, err
	}
	out := make([]dto.CourseSummaryDTO, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseSummary(&courses[i]))
	}
	return out, nil
}

func (s *courseService) GetCourse(ctx context.Context, id string, withAnswers bool) (*dto.CourseResponseDTO, error) {
	course, err := loadCourse(ctx, s.courses, s.cache, id)
	if err != nil {
		return nil, err
	}
	return toCourseResponse(course, withAnswers), nil
}

// loadCourse reads through the cache.
func loadCourse(ctx context.Context, courses repository.CourseRepository, c cache.CourseCache, id string) (*model.Course, error) {
	if course, ok := c.Get(ctx, id); ok {
		return course, nil
	}
	course, err := courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Set(ctx, course)
	return course, nil
}

// writeCourse clears the cached copy of id on both sides of write. The first
// clear stops readers being served the old quiz while the write is in
// flight; the second drops anything a concurrent loadCourse stored meanwhile.
func writeCourse(ctx context.Context, c cache.CourseCache, id string, write func() error) error {
	c.Invalidate(ctx, id)
	if err := write(); err != nil {
		return err
	}
	c.Invalidate(ctx, id)
	return nil
}
