// Command importer loads courses and users from JSON seed files into the
// database.
//
//	importer --courses courses.json --users users.json
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lshigami/courseboard/config"
	"github.com/lshigami/courseboard/database"
	"github.com/lshigami/courseboard/internal/cache"
	"github.com/lshigami/courseboard/internal/logger"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/lshigami/courseboard/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

type files struct {
	Courses string
	Users   string
}

func parseFlags(args []string) (*viper.Viper, files, error) {
	fs := pflag.NewFlagSet("importer", pflag.ContinueOnError)
	fs.String("courses", "", "path to a courses JSON file ({\"courses\": {\"<id>\": {...}}})")
	fs.String("users", "", "path to a users JSON file (object or array of users)")
	fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return nil, files{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, files{}, err
	}
	if err := v.BindPFlag("LOG_LEVEL", fs.Lookup("log-level")); err != nil {
		return nil, files{}, err
	}
	f := files{Courses: v.GetString("courses"), Users: v.GetString("users")}
	if f.Courses == "" && f.Users == "" {
		return nil, files{}, fmt.Errorf("nothing to import: pass --courses and/or --users")
	}
	return v, f, nil
}

func main() {
	v, f, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := fx.New(
		fx.Supply(v, f),
		fx.Provide(
			config.Load,
			database.NewDatabase,
			cache.NewCourseCache,
			repository.NewCourseRepository,
			repository.NewUserRepository,
			service.NewImportService,
		),
		fx.Invoke(func(cfg *config.Config) { logger.Init(cfg.LogLevel) }),
		fx.Invoke(database.Migrate),
		fx.Invoke(run),
		fx.Invoke(func(c cache.CourseCache) error { return c.Close() }),
	)
	if err := app.Err(); err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}
}

func run(svc service.ImportService, f files) error {
	ctx := context.Background()
	if f.Courses != "" {
		n, err := importFile(f.Courses, func(file *os.File) (int, error) { return svc.ImportCourses(ctx, file) })
		if err != nil {
			return err
		}
		log.Info().Int("count", n).Str("file", f.Courses).Msg("All courses uploaded successfully")
	}
	if f.Users != "" {
		n, err := importFile(f.Users, func(file *os.File) (int, error) { return svc.ImportUsers(ctx, file) })
		if err != nil {
			return err
		}
		log.Info().Int("count", n).Str("file", f.Users).Msg("Users uploaded successfully")
	}
	return nil
}

func importFile(path string, load func(*os.File) (int, error)) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	n, err := load(file)
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", path, err)
	}
	return n, nil
}
