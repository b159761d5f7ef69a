package service

import (
	"context"
	"strings"
	"testing"

	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/grading"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coursesJSON = `{
  "courses": {
    "course1": {
      "title": "Workplace Safety",
      "content": "Wear protective gear.",
      "video": "https://example.com/v.mp4",
      "quiz": [
        {"question": "Gear?", "options": ["helmet", "sandals", "tie", "none"], "answer": 0}
      ]
    },
    "course2": {
      "title": "Ethics",
      "content": "Be honest.",
      "quiz": [
        {"question": "Honest?", "options": ["yes", "no", "sometimes", "never"], "answer": 0},
        {"question": "Report?", "options": ["never", "always", "maybe", "later"], "answer": 1}
      ]
    }
  }
}`

func TestImportCourses(t *testing.T) {
	courses := newFakeCourseRepo(model.Course{ID: "course2", Title: "Old ethics"})
	svc := NewImportService(courses, newFakeUserRepo(), newFakeCache())

	n, err := svc.ImportCourses(context.Background(), strings.NewReader(coursesJSON))
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, "Workplace Safety", courses.courses["course1"].Title)
	assert.Equal(t, "Ethics", courses.courses["course2"].Title)
	assert.Len(t, courses.courses["course2"].Quiz, 2)
}

func TestImportCourses_InvalidCourseWritesNothing(t *testing.T) {
	courses := newFakeCourseRepo()
	bad := strings.Replace(coursesJSON, `"answer": 1`, `"answer": 7`, 1)

	_, err := NewImportService(courses, newFakeUserRepo(), newFakeCache()).ImportCourses(context.Background(), strings.NewReader(bad))

	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, courses.courses)
}

func TestImportCourses_ReimportDropsCachedAnswerKey(t *testing.T) {
	ctx := context.Background()
	f := newSubmissionFixture(twoQuestionCourse("course1", "Safety"))

	_, err := NewCourseService(f.courses, f.cache).GetCourse(ctx, "course1", false)
	require.NoError(t, err)
	_, cached := f.cache.Get(ctx, "course1")
	require.True(t, cached)

	reimport := `{"courses": {"course1": {"title": "Safety", "content": "Body", "quiz": [
	  {"question": "Q1", "options": ["a", "b", "c", "d"], "answer": 3},
	  {"question": "Q2", "options": ["a", "b", "c", "d"], "answer": 3}
	]}}}`
	_, err = NewImportService(f.courses, newFakeUserRepo(), f.cache).ImportCourses(ctx, strings.NewReader(reimport))
	require.NoError(t, err)

	got, err := f.svc.Submit(ctx, "alice", "course1", grading.AnswerSet{0: 3, 1: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Score)
	assert.Equal(t, []string{"course1", "course1"}, f.cache.invalidated)
}

func TestImportUsers(t *testing.T) {
	t.Run("object keyed by anything", func(t *testing.T) {
		users := newFakeUserRepo()
		in := `{
		  "u1": {"username": "alice", "name": "Alice", "password": "pw", "department": "Ops", "role": "student"},
		  "u2": {"username": "root", "name": "Root", "password": "pw", "department": "IT", "role": "admin"}
		}`

		n, err := NewImportService(newFakeCourseRepo(), users, newFakeCache()).ImportUsers(context.Background(), strings.NewReader(in))
		require.NoError(t, err)

		assert.Equal(t, 2, n)
		assert.Equal(t, model.RoleAdmin, users.users["root"].Role)
		assert.Contains(t, users.users, "alice")
	})

	t.Run("array", func(t *testing.T) {
		users := newFakeUserRepo()
		in := `[{"username": "alice", "name": "Alice", "password": "pw", "department": "Ops", "role": "student"}]`

		n, err := NewImportService(newFakeCourseRepo(), users, newFakeCache()).ImportUsers(context.Background(), strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("missing field", func(t *testing.T) {
		users := newFakeUserRepo()
		in := `[{"username": "alice", "name": "Alice", "department": "Ops", "role": "student"}]`

		_, err := NewImportService(newFakeCourseRepo(), users, newFakeCache()).ImportUsers(context.Background(), strings.NewReader(in))
		assert.True(t, apperror.IsValidation(err))
		assert.Empty(t, users.users)
	})
}
