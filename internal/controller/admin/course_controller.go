package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/courseboard/internal/controller"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminCourseController struct {
	courseService service.AdminCourseService
	draftService  service.QuizDraftService
}

func NewAdminCourseController(cs service.AdminCourseService, ds service.QuizDraftService) *AdminCourseController {
	return &AdminCourseController{courseService: cs, draftService: ds}
}

// ListCourses godoc
// @Summary (Admin) List courses with answer keys
// @Tags Admin - Courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses [get]
func (c *AdminCourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve courses")
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary (Admin) Get a course with its answer key
// @Tags Admin - Courses
// @Produce json
// @Security BearerAuth
// @Param course_id path string true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{course_id} [get]
func (c *AdminCourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("course_id"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve course")
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// CreateCourse godoc
// @Summary (Admin) Create a course
// @Description Title, content and at least one question are required. Each question needs 4 options and an answer index from 0 to 3.
// @Tags Admin - Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CourseUpsertRequest true "Course with quiz"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses [post]
func (c *AdminCourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create course")
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// ReplaceCourse godoc
// @Summary (Admin) Replace a course
// @Tags Admin - Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course_id path string true "Course ID"
// @Param course body dto.CourseUpsertRequest true "Course with quiz"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{course_id} [put]
func (c *AdminCourseController) ReplaceCourse(ctx *gin.Context) {
	var req dto.CourseUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	course, err := c.courseService.ReplaceCourse(ctx.Request.Context(), ctx.Param("course_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update course")
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary (Admin) Delete a course
// @Tags Admin - Courses
// @Security BearerAuth
// @Param course_id path string true "Course ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{course_id} [delete]
func (c *AdminCourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("course_id")); err != nil {
		controller.RespondError(ctx, err, "Failed to delete course")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DraftQuiz godoc
// @Summary (Admin) Draft quiz questions with Gemini
// @Description Generates multiple-choice questions from course content for review. Nothing is saved.
// @Tags Admin - Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body dto.QuizDraftRequest true "Course content and question count"
// @Success 200 {object} dto.QuizDraftResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 503 {object} dto.ErrorResponse "Gemini is not configured"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/quiz-draft [post]
func (c *AdminCourseController) DraftQuiz(ctx *gin.Context) {
	var req dto.QuizDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	quiz, err := c.draftService.Draft(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to draft quiz")
		return
	}
	log.Info().Int("questions", len(quiz)).Msg("Quiz drafted")
	ctx.JSON(http.StatusOK, dto.QuizDraftResponse{Quiz: quiz})
}
