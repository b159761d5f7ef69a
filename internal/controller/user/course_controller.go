package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/courseboard/internal/controller"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/grading"
	"github.com/lshigami/courseboard/internal/middleware"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/lshigami/courseboard/internal/service"
)

type CourseController struct {
	courseService     service.CourseService
	submissionService service.SubmissionService
}

func NewCourseController(cs service.CourseService, ss service.SubmissionService) *CourseController {
	return &CourseController{courseService: cs, submissionService: ss}
}

// ListCourses godoc
// @Summary List courses
// @Tags User - Courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve courses")
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary Get a course with its quiz
// @Description Returns the course content and quiz. Answer indices are only included for admins.
// @Tags User - Courses
// @Produce json
// @Security BearerAuth
// @Param course_id path string true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{course_id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	withAnswers := middleware.CurrentRole(ctx) == model.RoleAdmin
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("course_id"), withAnswers)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve course")
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Grades the answers, records a new result for the caller and returns it. Every question must be answered.
// @Tags User - Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course_id path string true "Course ID"
// @Param answers body dto.SubmissionRequest true "Chosen option per question index"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or unanswered questions"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course has no quiz"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{course_id}/submissions [post]
func (c *CourseController) SubmitQuiz(ctx *gin.Context) {
	var req dto.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	result, err := c.submissionService.Submit(
		ctx.Request.Context(),
		middleware.CurrentUsername(ctx),
		ctx.Param("course_id"),
		grading.AnswerSet(req.Answers),
	)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to save quiz result")
		return
	}
	ctx.JSON(http.StatusCreated, dto.SubmissionResponse{Result: *result})
}

// RecentResults godoc
// @Summary Recent results of the caller
// @Description The three most recent quiz results of the logged-in user, newest first.
// @Tags User - Courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/results/recent [get]
func (c *CourseController) RecentResults(ctx *gin.Context) {
	results, err := c.submissionService.RecentResults(ctx.Request.Context(), middleware.CurrentUsername(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve results")
		return
	}
	ctx.JSON(http.StatusOK, results)
}
