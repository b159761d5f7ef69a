//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/courseboard/config"
	"github.com/lshigami/courseboard/database"
	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func startPostgres(ctx context.Context, t *testing.T) *gorm.DB {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "courseboard",
			"POSTGRES_PASSWORD": "courseboard",
			"POSTGRES_DB":       "courseboard",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, pg.Terminate(ctx))
	})

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config.Config{Database: config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     "courseboard",
		Password: "courseboard",
		Name:     "courseboard",
	}}
	db, err := database.NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func sampleCourse(title string) *model.Course {
	return &model.Course{
		Title:   title,
		Content: "Read the handbook.",
		Quiz: []model.Question{
			{Text: "First?", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
			{Text: "Second?", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 3},
		},
	}
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	db := startPostgres(ctx, t)

	courses := repository.NewCourseRepository(db)
	users := repository.NewUserRepository(db)
	results := repository.NewResultRepository(db)

	t.Run("course lifecycle", func(t *testing.T) {
		c := sampleCourse("Safety")
		require.NoError(t, courses.Create(ctx, c))
		require.NotEmpty(t, c.ID)

		got, err := courses.FindByID(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, got.Quiz, 2)
		assert.Equal(t, "First?", got.Quiz[0].Text)
		assert.Equal(t, 3, got.Quiz[1].AnswerIndex)

		got.Title = "Safety II"
		got.Quiz = got.Quiz[:1]
		require.NoError(t, courses.Replace(ctx, got))

		again, err := courses.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Safety II", again.Title)
		assert.Len(t, again.Quiz, 1)

		require.NoError(t, courses.Delete(ctx, c.ID))
		_, err = courses.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.ErrorIs(t, courses.Delete(ctx, c.ID), apperror.ErrNotFound)
	})

	t.Run("course upsert keeps key", func(t *testing.T) {
		c := sampleCourse("Imported")
		c.ID = "course1"
		require.NoError(t, courses.Upsert(ctx, c))

		c2 := sampleCourse("Imported again")
		c2.ID = "course1"
		c2.Quiz = c2.Quiz[:1]
		require.NoError(t, courses.Upsert(ctx, c2))

		got, err := courses.FindByID(ctx, "course1")
		require.NoError(t, err)
		assert.Equal(t, "Imported again", got.Title)
		assert.Len(t, got.Quiz, 1)
	})

	t.Run("user lifecycle", func(t *testing.T) {
		u := &model.User{Username: "alice", Name: "Alice", Password: "pw", Department: "Ops", Role: model.RoleStudent}
		require.NoError(t, users.Create(ctx, u))
		assert.ErrorIs(t, users.Create(ctx, u), apperror.ErrDuplicate)

		u.Department = "Sales"
		require.NoError(t, users.Replace(ctx, u))
		got, err := users.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "Sales", got.Department)

		require.NoError(t, users.Delete(ctx, "alice"))
		_, err = users.FindByUsername(ctx, "alice")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("results accumulate", func(t *testing.T) {
		base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 4; i++ {
			r := &model.Result{Username: "bob", UserDisplayName: "Bob", CourseTitle: "Safety", Score: i, Total: 4, Date: base.Add(time.Duration(i) * time.Hour)}
			require.NoError(t, results.Append(ctx, r), fmt.Sprintf("append %d", i))
		}

		all, err := results.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)

		recent, err := results.ListRecentByUsername(ctx, "bob", 3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
		assert.Equal(t, 3, recent[0].Score)
		assert.Equal(t, 1, recent[2].Score)
	})
}
