package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/lshigami/courseboard/internal/cache"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/rs/zerolog/log"
)

// ImportService bulk-loads seed data. Every record is validated before any
// write; existing records with the same key are overwritten and their cached
// copies dropped.
type ImportService interface {
	ImportCourses(ctx context.Context, r io.Reader) (int, error)
	ImportUsers(ctx context.Context, r io.Reader) (int, error)
}

type importService struct {
	courses repository.CourseRepository
	users   repository.UserRepository
	cache   cache.CourseCache
}

func NewImportService(courses repository.CourseRepository, users repository.UserRepository, c cache.CourseCache) ImportService {
	return &importService{courses: courses, users: users, cache: c}
}

type courseFile struct {
	Courses map[string]dto.CourseUpsertRequest `json:"courses"`
}

// ImportCourses reads {"courses": {"<key>": {...}}} and stores each course
// under its key.
func (s *importService) ImportCourses(ctx context.Context, r io.Reader) (int, error) {
	var file courseFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return 0, fmt.Errorf("decode courses file: %w", err)
	}

	keys := make([]string, 0, len(file.Courses))
	for k := range file.Courses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := validateCourse(file.Courses[key]); err != nil {
			return 0, fmt.Errorf("course %q: %w", key, err)
		}
	}
	for _, key := range keys {
		course, _ := validateCourse(file.Courses[key])
		course.ID = key
		if err := writeCourse(ctx, s.cache, key, func() error { return s.courses.Upsert(ctx, course) }); err != nil {
			return 0, fmt.Errorf("course %q: %w", key, err)
		}
		log.Info().Str("courseID", key).Msg("Uploaded course")
	}
	return len(keys), nil
}

// ImportUsers accepts either a JSON object of users or a JSON array. Each
// user is stored under its username; object keys are ignored.
func (s *importService) ImportUsers(ctx context.Context, r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read users file: %w", err)
	}
	reqs, err := decodeUsers(raw)
	if err != nil {
		return 0, err
	}

	for i, req := range reqs {
		if _, err := validateUser(req); err != nil {
			return 0, fmt.Errorf("user %d: %w", i, err)
		}
	}
	for _, req := range reqs {
		user, _ := validateUser(req)
		if err := s.users.Upsert(ctx, user); err != nil {
			return 0, fmt.Errorf("user %q: %w", user.Username, err)
		}
	}
	log.Info().Int("count", len(reqs)).Msg("Users uploaded")
	return len(reqs), nil
}

func decodeUsers(raw []byte) ([]dto.UserUpsertRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []dto.UserUpsertRequest
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode users file: %w", err)
		}
		return list, nil
	}

	var byKey map[string]dto.UserUpsertRequest
	if err := json.Unmarshal(trimmed, &byKey); err != nil {
		return nil, fmt.Errorf("decode users file: %w", err)
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	list := make([]dto.UserUpsertRequest, 0, len(keys))
	for _, k := range keys {
		list = append(list, byKey[k])
	}
	return list, nil
}
