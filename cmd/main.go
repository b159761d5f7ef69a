package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/courseboard/config"
	"github.com/lshigami/courseboard/database"
	_ "github.com/lshigami/courseboard/docs" // Swagger docs
	"github.com/lshigami/courseboard/internal/cache"
	"github.com/lshigami/courseboard/internal/controller"
	adminctrl "github.com/lshigami/courseboard/internal/controller/admin"
	userctrl "github.com/lshigami/courseboard/internal/controller/user"
	"github.com/lshigami/courseboard/internal/logger"
	"github.com/lshigami/courseboard/internal/middleware"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/lshigami/courseboard/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Courseboard API
// @version 1.0
// @description Training courses with embedded quizzes, graded results and an admin results dashboard.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewCourseCache,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewCourseRepository,
			repository.NewUserRepository,
			repository.NewResultRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewCourseService,
			service.NewSubmissionService,
			service.NewReportService,
			service.NewAdminCourseService,
			service.NewAdminUserService,
			NewGeminiLLMService,
			service.NewQuizDraftService,
		),

		fx.Provide(
			controller.NewAuthController,
			userctrl.NewCourseController,
			adminctrl.NewAdminCourseController,
			adminctrl.NewAdminUserController,
			adminctrl.NewAdminResultController,
		),

		fx.Invoke(InitLogger),
		fx.Invoke(database.Migrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}

func InitLogger(cfg *config.Config) {
	logger.Init(cfg.LogLevel)
}

// NewCourseCache ties the cache connection to the app lifecycle.
func NewCourseCache(lc fx.Lifecycle, cfg *config.Config) cache.CourseCache {
	c := cache.NewCourseCache(cfg)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error { return c.Close() },
	})
	return c
}

func NewGeminiLLMService(lc fx.Lifecycle, cfg *config.Config) (service.GeminiLLMService, error) {
	llm, err := service.NewGeminiLLMService(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error { return llm.Close() },
	})
	return llm, nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:  cfg.Server.CorsOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.CorsOrigins) == 0 || (len(cfg.Server.CorsOrigins) == 1 && cfg.Server.CorsOrigins[0] == "*") {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *controller.AuthController,
	courseCtrl *userctrl.CourseController,
	adminCourseCtrl *adminctrl.AdminCourseController,
	adminUserCtrl *adminctrl.AdminUserController,
	adminResultCtrl *adminctrl.AdminResultController,
) {
	api := router.Group("/api/v1")
	api.POST("/auth/login", authCtrl.Login)

	userAPIGroup := api.Group("", middleware.RequireAuth(authService))
	{
		userAPIGroup.GET("/courses", courseCtrl.ListCourses)
		userAPIGroup.GET("/courses/:course_id", courseCtrl.GetCourse)
		userAPIGroup.POST("/courses/:course_id/submissions", courseCtrl.SubmitQuiz)
		userAPIGroup.GET("/me/results/recent", courseCtrl.RecentResults)
	}

	adminAPIGroup := api.Group("/admin", middleware.RequireAuth(authService), middleware.RequireRole(model.RoleAdmin))
	{
		courses := adminAPIGroup.Group("/courses")
		courses.GET("", adminCourseCtrl.ListCourses)
		courses.POST("", adminCourseCtrl.CreateCourse)
		courses.POST("/quiz-draft", adminCourseCtrl.DraftQuiz)
		courses.GET("/:course_id", adminCourseCtrl.GetCourse)
		courses.PUT("/:course_id", adminCourseCtrl.ReplaceCourse)
		courses.DELETE("/:course_id", adminCourseCtrl.DeleteCourse)

		users := adminAPIGroup.Group("/users")
		users.GET("", adminUserCtrl.ListUsers)
		users.POST("", adminUserCtrl.CreateUser)
		users.PUT("/:username", adminUserCtrl.ReplaceUser)
		users.DELETE("/:username", adminUserCtrl.DeleteUser)

		results := adminAPIGroup.Group("/results")
		results.GET("", adminResultCtrl.Dashboard)
		results.GET("/export", adminResultCtrl.Export)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Courseboard API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
